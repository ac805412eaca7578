package repository_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iuriimudrak/javarush-intership/internal/app/ds"
	"github.com/iuriimudrak/javarush-intership/internal/app/repository"
)

func seedShips(t *testing.T, store *repository.InMemory, count int) []ds.Ship {
	t.Helper()

	ships := make([]ds.Ship, 0, count)
	for i := 0; i < count; i++ {
		ship := ds.Ship{
			Name:     fmt.Sprintf("Ship-%02d", i),
			Planet:   "Earth",
			ShipType: ds.ShipTypeTransport,
			ProdDate: time.Date(2900+i, time.January, 1, 0, 0, 0, 0, time.UTC),
			Speed:    0.1 + 0.05*float64(i),
			CrewSize: 10 * (i + 1),
			Rating:   float64(i),
		}
		require.NoError(t, store.CreateShip(&ship))
		ships = append(ships, ship)
	}
	return ships
}

func TestInMemory_CreateAssignsSequentialIDs(t *testing.T) {
	store := repository.NewInMemory()
	ships := seedShips(t, store, 3)

	assert.Equal(t, int64(1), ships[0].ID)
	assert.Equal(t, int64(2), ships[1].ID)
	assert.Equal(t, int64(3), ships[2].ID)
}

func TestInMemory_IDsNotReusedAfterDelete(t *testing.T) {
	store := repository.NewInMemory()
	ships := seedShips(t, store, 2)

	require.NoError(t, store.DeleteShip(ships[1].ID))

	next := ds.Ship{
		Name:     "Replacement",
		Planet:   "Mars",
		ShipType: ds.ShipTypeMerchant,
		ProdDate: time.Date(3000, time.January, 1, 0, 0, 0, 0, time.UTC),
		Speed:    0.5,
		CrewSize: 5,
		Rating:   1.0,
	}
	require.NoError(t, store.CreateShip(&next))
	assert.Equal(t, int64(3), next.ID)
}

func TestInMemory_GetAndExists(t *testing.T) {
	store := repository.NewInMemory()
	ships := seedShips(t, store, 1)

	got, err := store.GetShip(ships[0].ID)
	require.NoError(t, err)
	assert.Equal(t, ships[0], got)

	exists, err := store.ExistsShip(ships[0].ID)
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = store.GetShip(99)
	require.ErrorIs(t, err, ds.ErrShipNotFound)

	exists, err = store.ExistsShip(99)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestInMemory_FindShips_Pagination(t *testing.T) {
	store := repository.NewInMemory()
	seedShips(t, store, 10)

	// 10 кораблей, размер страницы 3: последняя страница из одной записи
	page, err := store.FindShips(ds.ShipFilter{}, ds.OrderID, 3, 3)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, int64(10), page[0].ID)

	// за последней страницей - пусто, не ошибка
	page, err = store.FindShips(ds.ShipFilter{}, ds.OrderID, 4, 3)
	require.NoError(t, err)
	assert.Empty(t, page)

	// нулевой размер страницы - пусто
	page, err = store.FindShips(ds.ShipFilter{}, ds.OrderID, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, page)
}

func TestInMemory_FindShips_OrderAscending(t *testing.T) {
	store := repository.NewInMemory()
	seedShips(t, store, 5)

	bySpeed, err := store.FindShips(ds.ShipFilter{}, ds.OrderSpeed, 0, 5)
	require.NoError(t, err)
	require.Len(t, bySpeed, 5)
	for i := 1; i < len(bySpeed); i++ {
		assert.LessOrEqual(t, bySpeed[i-1].Speed, bySpeed[i].Speed)
	}

	byName, err := store.FindShips(ds.ShipFilter{}, ds.OrderName, 0, 5)
	require.NoError(t, err)
	for i := 1; i < len(byName); i++ {
		assert.LessOrEqual(t, byName[i-1].Name, byName[i].Name)
	}
}

func TestInMemory_FindShips_FilterAndCountAgree(t *testing.T) {
	store := repository.NewInMemory()
	seedShips(t, store, 10)

	crew := 50
	filter := ds.ShipFilter{MinCrewSize: &crew, MaxCrewSize: &crew}

	found, err := store.FindShips(filter, ds.OrderID, 0, 100)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, 50, found[0].CrewSize)

	count, err := store.CountShips(filter)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestInMemory_CountIgnoresPagination(t *testing.T) {
	store := repository.NewInMemory()
	seedShips(t, store, 10)

	count, err := store.CountShips(ds.ShipFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(10), count)
}

func TestInMemory_SaveReplacesShip(t *testing.T) {
	store := repository.NewInMemory()
	ships := seedShips(t, store, 1)

	ship := ships[0]
	ship.Name = "Renamed"
	require.NoError(t, store.SaveShip(&ship))

	got, err := store.GetShip(ship.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
}
