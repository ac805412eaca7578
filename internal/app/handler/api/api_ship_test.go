package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iuriimudrak/javarush-intership/internal/app/handler"
	"github.com/iuriimudrak/javarush-intership/internal/app/repository"
	"github.com/iuriimudrak/javarush-intership/internal/app/service"
)

type shipJSON struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Planet   string  `json:"planet"`
	ShipType string  `json:"shipType"`
	ProdDate int64   `json:"prodDate"`
	IsUsed   bool    `json:"isUsed"`
	Speed    float64 `json:"speed"`
	CrewSize int     `json:"crewSize"`
	Rating   float64 `json:"rating"`
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	hand := handler.NewHandler(service.NewShipService(repository.NewInMemory()))
	hand.SetupRoutes(router)
	return router
}

func do(t *testing.T, router *gin.Engine, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func prodDateMs(year int) int64 {
	return time.Date(year, time.June, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
}

func createPayload(name string) map[string]any {
	return map[string]any{
		"name":     name,
		"planet":   "Earth",
		"shipType": "TRANSPORT",
		"prodDate": prodDateMs(3000),
		"isUsed":   false,
		"speed":    0.5,
		"crewSize": 50,
	}
}

func createShip(t *testing.T, router *gin.Engine, payload map[string]any) shipJSON {
	t.Helper()

	rec := do(t, router, http.MethodPost, "/rest/ships", payload)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var ship shipJSON
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ship))
	return ship
}

func TestPing(t *testing.T) {
	rec := do(t, newRouter(), http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateShipAPI(t *testing.T) {
	router := newRouter()

	ship := createShip(t, router, createPayload("Venus"))
	assert.Positive(t, ship.ID)
	assert.Equal(t, "Venus", ship.Name)
	assert.Equal(t, "TRANSPORT", ship.ShipType)
	assert.Equal(t, prodDateMs(3000), ship.ProdDate)
	assert.InDelta(t, 2.0, ship.Rating, 1e-9)
}

func TestCreateShipAPI_BadPayloads(t *testing.T) {
	router := newRouter()

	tests := []struct {
		name   string
		modify func(map[string]any)
	}{
		{"speed above range", func(p map[string]any) { p["speed"] = 1.5 }},
		{"speed below range", func(p map[string]any) { p["speed"] = 0.001 }},
		{"missing name", func(p map[string]any) { delete(p, "name") }},
		{"unknown ship type", func(p map[string]any) { p["shipType"] = "PIRATE" }},
		{"year out of range", func(p map[string]any) { p["prodDate"] = prodDateMs(2500) }},
		{"crew size out of range", func(p map[string]any) { p["crewSize"] = 10000 }},
		{"wrong field type", func(p map[string]any) { p["speed"] = "fast" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := createPayload("Bad")
			tt.modify(payload)

			rec := do(t, router, http.MethodPost, "/rest/ships", payload)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}

	count := do(t, router, http.MethodGet, "/rest/ships/count", nil)
	assert.Equal(t, "0", count.Body.String())
}

func TestGetShipAPI(t *testing.T) {
	router := newRouter()
	created := createShip(t, router, createPayload("Venus"))

	rec := do(t, router, http.MethodGet, fmt.Sprintf("/rest/ships/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got shipJSON
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, created, got)

	assert.Equal(t, http.StatusNotFound, do(t, router, http.MethodGet, "/rest/ships/999", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, router, http.MethodGet, "/rest/ships/abc", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, router, http.MethodGet, "/rest/ships/-3", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, router, http.MethodGet, "/rest/ships/0", nil).Code)
}

func TestUpdateShipAPI(t *testing.T) {
	router := newRouter()
	created := createShip(t, router, createPayload("Venus"))

	rec := do(t, router, http.MethodPost, fmt.Sprintf("/rest/ships/%d", created.ID),
		map[string]any{"isUsed": true})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated shipJSON
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.True(t, updated.IsUsed)
	assert.Equal(t, created.Name, updated.Name)
	assert.InDelta(t, 1.0, updated.Rating, 1e-9)

	assert.Equal(t, http.StatusNotFound,
		do(t, router, http.MethodPost, "/rest/ships/999", map[string]any{"name": "X"}).Code)
	assert.Equal(t, http.StatusBadRequest,
		do(t, router, http.MethodPost, "/rest/ships/abc", map[string]any{"name": "X"}).Code)
	assert.Equal(t, http.StatusBadRequest,
		do(t, router, http.MethodPost, fmt.Sprintf("/rest/ships/%d", created.ID),
			map[string]any{"speed": 1.5}).Code)
}

func TestDeleteShipAPI(t *testing.T) {
	router := newRouter()
	created := createShip(t, router, createPayload("Venus"))

	target := fmt.Sprintf("/rest/ships/%d", created.ID)
	assert.Equal(t, http.StatusOK, do(t, router, http.MethodDelete, target, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, router, http.MethodGet, target, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, router, http.MethodDelete, target, nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, router, http.MethodDelete, "/rest/ships/-1", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, router, http.MethodDelete, "/rest/ships/abc", nil).Code)
}

func listShips(t *testing.T, router *gin.Engine, query string) []shipJSON {
	t.Helper()

	rec := do(t, router, http.MethodGet, "/rest/ships"+query, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var ships []shipJSON
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ships))
	return ships
}

func TestGetShipsAPI_DefaultsAndPagination(t *testing.T) {
	router := newRouter()
	for i := 0; i < 10; i++ {
		createShip(t, router, createPayload(fmt.Sprintf("Ship-%02d", i)))
	}

	// размер страницы по умолчанию 3, сортировка по id
	firstPage := listShips(t, router, "")
	require.Len(t, firstPage, 3)
	assert.Equal(t, "Ship-00", firstPage[0].Name)

	lastPage := listShips(t, router, "?pageNumber=3")
	require.Len(t, lastPage, 1)
	assert.Equal(t, "Ship-09", lastPage[0].Name)

	assert.Empty(t, listShips(t, router, "?pageNumber=4"))
	assert.Empty(t, listShips(t, router, "?pageSize=0"))
	assert.Len(t, listShips(t, router, "?pageSize=100"), 10)
}

func TestGetShipsAPI_OrderAndBadParams(t *testing.T) {
	router := newRouter()

	payload := createPayload("Slow")
	payload["speed"] = 0.9
	createShip(t, router, payload)
	payload = createPayload("Fast")
	payload["speed"] = 0.1
	createShip(t, router, payload)

	bySpeed := listShips(t, router, "?order=SPEED")
	require.Len(t, bySpeed, 2)
	assert.Equal(t, "Fast", bySpeed[0].Name)

	assert.Equal(t, http.StatusBadRequest, do(t, router, http.MethodGet, "/rest/ships?order=speed", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, router, http.MethodGet, "/rest/ships?pageNumber=-1", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, router, http.MethodGet, "/rest/ships?pageSize=x", nil).Code)
}

func TestGetShipsAPI_FiltersCombineConjunctively(t *testing.T) {
	router := newRouter()

	military := createPayload("Warship")
	military["shipType"] = "MILITARY"
	military["isUsed"] = true
	createShip(t, router, military)

	militaryNew := createPayload("Parade")
	militaryNew["shipType"] = "MILITARY"
	createShip(t, router, militaryNew)

	createShip(t, router, createPayload("Cargo"))

	ships := listShips(t, router, "?shipType=MILITARY&isUsed=true")
	require.Len(t, ships, 1)
	assert.Equal(t, "Warship", ships[0].Name)

	// непарсящееся значение фильтра отбрасывает критерий, а не дает ошибку
	assert.Len(t, listShips(t, router, "?isUsed=maybe&pageSize=100"), 3)
}

func TestGetShipsCountAPI(t *testing.T) {
	router := newRouter()
	for i := 0; i < 10; i++ {
		payload := createPayload(fmt.Sprintf("Ship-%02d", i))
		payload["crewSize"] = 10 * (i + 1)
		createShip(t, router, payload)
	}

	rec := do(t, router, http.MethodGet, "/rest/ships/count", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "10", rec.Body.String())

	// фильтр min == max выбирает ровно одно значение, пагинация не влияет
	rec = do(t, router, http.MethodGet, "/rest/ships/count?minCrewSize=50&maxCrewSize=50", nil)
	assert.Equal(t, "1", rec.Body.String())
}
