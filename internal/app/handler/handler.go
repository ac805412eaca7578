package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iuriimudrak/javarush-intership/internal/app/handler/api"
	"github.com/iuriimudrak/javarush-intership/internal/app/service"
)

type Handler struct {
	Service        *service.ShipService
	ShipAPIHandler *api.ShipHandler
}

func NewHandler(svc *service.ShipService) *Handler {
	return &Handler{
		Service:        svc,
		ShipAPIHandler: &api.ShipHandler{Service: svc},
	}
}

func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// REST маршруты
	restGroup := router.Group("/rest")
	{
		restGroup.GET("/ships", h.ShipAPIHandler.GetShipsAPI)
		restGroup.GET("/ships/count", h.ShipAPIHandler.GetShipsCountAPI)
		restGroup.POST("/ships", h.ShipAPIHandler.CreateShipAPI)
		restGroup.GET("/ships/:id", h.ShipAPIHandler.GetShipAPI)
		restGroup.POST("/ships/:id", h.ShipAPIHandler.UpdateShipAPI)
		restGroup.DELETE("/ships/:id", h.ShipAPIHandler.DeleteShipAPI)
	}
}
