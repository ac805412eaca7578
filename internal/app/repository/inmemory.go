package repository

import (
	"sort"
	"sync"

	"github.com/samber/lo"

	"github.com/iuriimudrak/javarush-intership/internal/app/ds"
)

// InMemory - хранилище кораблей в памяти с тем же контрактом, что и
// постгресовый Repository. Фильтр здесь вычисляется предикатами ShipFilter
// по записи, а не условиями WHERE; наборы результатов обязаны совпадать.
type InMemory struct {
	mu     sync.RWMutex
	ships  map[int64]ds.Ship
	nextID int64
}

func NewInMemory() *InMemory {
	return &InMemory{
		ships:  make(map[int64]ds.Ship),
		nextID: 1,
	}
}

func (r *InMemory) filtered(filter ds.ShipFilter) []ds.Ship {
	all := lo.Values(r.ships)
	return lo.Filter(all, func(s ds.Ship, _ int) bool {
		return filter.Matches(s)
	})
}

func (r *InMemory) FindShips(filter ds.ShipFilter, order ds.ShipOrder, pageNumber, pageSize int) ([]ds.Ship, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ships := r.filtered(filter)
	sort.Slice(ships, func(i, j int) bool {
		return order.Less(ships[i], ships[j])
	})

	if pageSize <= 0 {
		return []ds.Ship{}, nil
	}
	from := pageNumber * pageSize
	if from >= len(ships) {
		return []ds.Ship{}, nil
	}
	to := from + pageSize
	if to > len(ships) {
		to = len(ships)
	}
	return ships[from:to], nil
}

func (r *InMemory) CountShips(filter ds.ShipFilter) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.filtered(filter))), nil
}

func (r *InMemory) GetShip(id int64) (ds.Ship, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ship, ok := r.ships[id]
	if !ok {
		return ds.Ship{}, ds.ErrShipNotFound
	}
	return ship, nil
}

func (r *InMemory) ExistsShip(id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.ships[id]
	return ok, nil
}

func (r *InMemory) CreateShip(ship *ds.Ship) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ship.ID = r.nextID
	r.nextID++ // id удаленных кораблей не переиспользуются
	r.ships[ship.ID] = *ship
	return nil
}

func (r *InMemory) SaveShip(ship *ds.Ship) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ships[ship.ID] = *ship
	return nil
}

func (r *InMemory) DeleteShip(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.ships, id)
	return nil
}
