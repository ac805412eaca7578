package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/iuriimudrak/javarush-intership/internal/app/ds"
	"github.com/iuriimudrak/javarush-intership/internal/app/service"
)

type ShipHandler struct {
	Service interface {
		CreateShip(input service.ShipInput) (ds.Ship, error)
		GetShip(id int64) (ds.Ship, error)
		UpdateShip(id int64, input service.ShipInput) (ds.Ship, error)
		DeleteShip(id int64) error
		ListShips(filter ds.ShipFilter, order ds.ShipOrder, pageNumber, pageSize int) ([]ds.Ship, error)
		CountShips(filter ds.ShipFilter) (int64, error)
	}
}

// respondError - ValidationError -> 400, ErrShipNotFound -> 404, иначе 500
func respondError(c *gin.Context, err error) {
	logrus.Error(err.Error())

	var validationErr *service.ValidationError
	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &validationErr):
		status = http.StatusBadRequest
	case errors.Is(err, ds.ErrShipNotFound):
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{
		"description": err.Error(),
	})
}

// parseShipFilter собирает фильтр из необязательных query-параметров.
// Непарсящееся значение просто отбрасывает свой критерий.
func parseShipFilter(c *gin.Context) ds.ShipFilter {
	var filter ds.ShipFilter

	if v := c.Query("name"); v != "" {
		filter.Name = &v
	}
	if v := c.Query("planet"); v != "" {
		filter.Planet = &v
	}
	if v := c.Query("shipType"); v != "" {
		if shipType, err := ds.ParseShipType(v); err == nil {
			filter.ShipType = &shipType
		}
	}
	if v := c.Query("isUsed"); v != "" {
		if isUsed, err := strconv.ParseBool(v); err == nil {
			filter.IsUsed = &isUsed
		}
	}
	if v := c.Query("after"); v != "" {
		if after, err := strconv.ParseInt(v, 10, 64); err == nil {
			filter.After = &after
		}
	}
	if v := c.Query("before"); v != "" {
		if before, err := strconv.ParseInt(v, 10, 64); err == nil {
			filter.Before = &before
		}
	}
	if v := c.Query("minSpeed"); v != "" {
		if minSpeed, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinSpeed = &minSpeed
		}
	}
	if v := c.Query("maxSpeed"); v != "" {
		if maxSpeed, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MaxSpeed = &maxSpeed
		}
	}
	if v := c.Query("minCrewSize"); v != "" {
		if minCrewSize, err := strconv.Atoi(v); err == nil {
			filter.MinCrewSize = &minCrewSize
		}
	}
	if v := c.Query("maxCrewSize"); v != "" {
		if maxCrewSize, err := strconv.Atoi(v); err == nil {
			filter.MaxCrewSize = &maxCrewSize
		}
	}
	if v := c.Query("minRating"); v != "" {
		if minRating, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinRating = &minRating
		}
	}
	if v := c.Query("maxRating"); v != "" {
		if maxRating, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MaxRating = &maxRating
		}
	}

	return filter
}

func parseShipID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, &service.ValidationError{Field: "id", Reason: "must be a positive integer"}
	}
	return id, nil
}

// @Summary List ships
// @Description Filtered, ordered and paginated list of ships
// @Tags ships
// @Produce json
// @Param name query string false "Substring of the ship name"
// @Param planet query string false "Substring of the planet name"
// @Param shipType query string false "Ship type" Enums(TRANSPORT, MILITARY, MERCHANT)
// @Param after query integer false "Minimum production date, epoch ms"
// @Param before query integer false "Maximum production date, epoch ms"
// @Param isUsed query boolean false "Used flag"
// @Param minSpeed query number false "Minimum speed"
// @Param maxSpeed query number false "Maximum speed"
// @Param minCrewSize query integer false "Minimum crew size"
// @Param maxCrewSize query integer false "Maximum crew size"
// @Param minRating query number false "Minimum rating"
// @Param maxRating query number false "Maximum rating"
// @Param order query string false "Sort field" Enums(ID, NAME, PLANET, PROD_DATE, SPEED, CREW_SIZE, RATING) default(ID)
// @Param pageNumber query integer false "Zero-based page number" default(0)
// @Param pageSize query integer false "Page size" default(3)
// @Success 200 {array} ds.Ship
// @Failure 400 {object} object "description: message"
// @Router /rest/ships [get]
func (h *ShipHandler) GetShipsAPI(c *gin.Context) {
	filter := parseShipFilter(c)

	order := ds.OrderID
	if v := c.Query("order"); v != "" {
		parsed, err := ds.ParseShipOrder(v)
		if err != nil {
			respondError(c, &service.ValidationError{Field: "order", Reason: err.Error()})
			return
		}
		order = parsed
	}

	pageNumber, err := parsePageParam(c, "pageNumber", 0)
	if err != nil {
		respondError(c, err)
		return
	}
	pageSize, err := parsePageParam(c, "pageSize", 3)
	if err != nil {
		respondError(c, err)
		return
	}

	ships, err := h.Service.ListShips(filter, order, pageNumber, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ships)
}

func parsePageParam(c *gin.Context, name string, def int) (int, error) {
	v := c.Query(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, &service.ValidationError{Field: name, Reason: "must be a non-negative integer"}
	}
	return n, nil
}

// @Summary Count ships
// @Description Number of ships matching the same filters, ignoring pagination
// @Tags ships
// @Produce json
// @Param name query string false "Substring of the ship name"
// @Param planet query string false "Substring of the planet name"
// @Param shipType query string false "Ship type" Enums(TRANSPORT, MILITARY, MERCHANT)
// @Param after query integer false "Minimum production date, epoch ms"
// @Param before query integer false "Maximum production date, epoch ms"
// @Param isUsed query boolean false "Used flag"
// @Param minSpeed query number false "Minimum speed"
// @Param maxSpeed query number false "Maximum speed"
// @Param minCrewSize query integer false "Minimum crew size"
// @Param maxCrewSize query integer false "Maximum crew size"
// @Param minRating query number false "Minimum rating"
// @Param maxRating query number false "Maximum rating"
// @Success 200 {integer} integer
// @Router /rest/ships/count [get]
func (h *ShipHandler) GetShipsCountAPI(c *gin.Context) {
	count, err := h.Service.CountShips(parseShipFilter(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, count)
}

// @Summary Create ship
// @Description Create a ship; id and rating are assigned by the service
// @Tags ships
// @Accept json
// @Produce json
// @Param ship body service.ShipInput true "Ship payload, prodDate in epoch ms"
// @Success 200 {object} ds.Ship
// @Failure 400 {object} object "description: message"
// @Router /rest/ships [post]
func (h *ShipHandler) CreateShipAPI(c *gin.Context) {
	var input service.ShipInput
	if err := c.BindJSON(&input); err != nil {
		return // BindJSON уже ответил 400
	}

	ship, err := h.Service.CreateShip(input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ship)
}

// @Summary Get ship
// @Tags ships
// @Produce json
// @Param id path integer true "Ship ID"
// @Success 200 {object} ds.Ship
// @Failure 400 {object} object "description: message"
// @Failure 404 {object} object "description: message"
// @Router /rest/ships/{id} [get]
func (h *ShipHandler) GetShipAPI(c *gin.Context) {
	id, err := parseShipID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	ship, err := h.Service.GetShip(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ship)
}

// @Summary Update ship
// @Description Partial update: only supplied fields change, rating is recomputed
// @Tags ships
// @Accept json
// @Produce json
// @Param id path integer true "Ship ID"
// @Param ship body service.ShipInput true "Fields to change"
// @Success 200 {object} ds.Ship
// @Failure 400 {object} object "description: message"
// @Failure 404 {object} object "description: message"
// @Router /rest/ships/{id} [post]
func (h *ShipHandler) UpdateShipAPI(c *gin.Context) {
	id, err := parseShipID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var input service.ShipInput
	if err := c.BindJSON(&input); err != nil {
		return
	}

	ship, err := h.Service.UpdateShip(id, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ship)
}

// @Summary Delete ship
// @Tags ships
// @Param id path integer true "Ship ID"
// @Success 200
// @Failure 400 {object} object "description: message"
// @Failure 404 {object} object "description: message"
// @Router /rest/ships/{id} [delete]
func (h *ShipHandler) DeleteShipAPI(c *gin.Context) {
	id, err := parseShipID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.Service.DeleteShip(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusOK)
}
