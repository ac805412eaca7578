package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/iuriimudrak/javarush-intership/internal/app/ds"
)

func msToTime(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// applyShipFilter переводит заданные критерии в условия WHERE.
// Подстрочный поиск регистрозависимый, поэтому LIKE, а не ILIKE.
func applyShipFilter(query *gorm.DB, filter ds.ShipFilter) *gorm.DB {
	if filter.Name != nil {
		query = query.Where("name LIKE ?", "%"+*filter.Name+"%")
	}
	if filter.Planet != nil {
		query = query.Where("planet LIKE ?", "%"+*filter.Planet+"%")
	}
	if filter.ShipType != nil {
		query = query.Where("ship_type = ?", *filter.ShipType)
	}
	if filter.IsUsed != nil {
		query = query.Where("is_used = ?", *filter.IsUsed)
	}
	if filter.After != nil {
		query = query.Where("prod_date >= ?", msToTime(*filter.After))
	}
	if filter.Before != nil {
		query = query.Where("prod_date <= ?", msToTime(*filter.Before))
	}
	if filter.MinSpeed != nil {
		query = query.Where("speed >= ?", *filter.MinSpeed)
	}
	if filter.MaxSpeed != nil {
		query = query.Where("speed <= ?", *filter.MaxSpeed)
	}
	if filter.MinCrewSize != nil {
		query = query.Where("crew_size >= ?", *filter.MinCrewSize)
	}
	if filter.MaxCrewSize != nil {
		query = query.Where("crew_size <= ?", *filter.MaxCrewSize)
	}
	if filter.MinRating != nil {
		query = query.Where("rating >= ?", *filter.MinRating)
	}
	if filter.MaxRating != nil {
		query = query.Where("rating <= ?", *filter.MaxRating)
	}
	return query
}

// FindShips - страница кораблей по фильтру, сортировка по возрастанию
func (r *Repository) FindShips(filter ds.ShipFilter, order ds.ShipOrder, pageNumber, pageSize int) ([]ds.Ship, error) {
	ships := []ds.Ship{}
	if pageSize == 0 {
		return ships, nil
	}
	query := applyShipFilter(r.db.Model(&ds.Ship{}), filter)
	err := query.Order(order.Column()).
		Offset(pageNumber * pageSize).
		Limit(pageSize).
		Find(&ships).Error
	if err != nil {
		return nil, err
	}
	return ships, nil
}

// CountShips - количество кораблей по тому же фильтру, без пагинации
func (r *Repository) CountShips(filter ds.ShipFilter) (int64, error) {
	var count int64
	err := applyShipFilter(r.db.Model(&ds.Ship{}), filter).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *Repository) GetShip(id int64) (ds.Ship, error) {
	ship := ds.Ship{}
	err := r.db.Where("id = ?", id).First(&ship).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ds.Ship{}, ds.ErrShipNotFound
	}
	if err != nil {
		return ds.Ship{}, err
	}
	return ship, nil
}

func (r *Repository) ExistsShip(id int64) (bool, error) {
	var count int64
	err := r.db.Model(&ds.Ship{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateShip - создание корабля, id присваивает база
func (r *Repository) CreateShip(ship *ds.Ship) error {
	return r.db.Create(ship).Error
}

// SaveShip - сохранение всех полей существующего корабля
func (r *Repository) SaveShip(ship *ds.Ship) error {
	return r.db.Save(ship).Error
}

// DeleteShip - физическое удаление корабля
func (r *Repository) DeleteShip(id int64) error {
	return r.db.Delete(&ds.Ship{}, id).Error
}
