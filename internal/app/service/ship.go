package service

import (
	"fmt"
	"math"
	"time"

	"github.com/iuriimudrak/javarush-intership/internal/app/ds"
)

const (
	maxNameLen  = 50
	minSpeed    = 0.01
	maxSpeed    = 0.99
	maxCrewSize = 9999
	minProdYear = 2800

	// referenceYear - "текущий" год вселенной, от него считается возраст корабля
	referenceYear = 3019
)

// ShipInput - поля запроса на создание или обновление корабля.
// nil означает, что поле не передано.
type ShipInput struct {
	Name     *string  `json:"name"`
	Planet   *string  `json:"planet"`
	ShipType *string  `json:"shipType"`
	ProdDate *int64   `json:"prodDate"`
	IsUsed   *bool    `json:"isUsed"`
	Speed    *float64 `json:"speed"`
	CrewSize *int     `json:"crewSize"`
}

// ShipStore - контракт хранилища кораблей; реализуется постгресовым
// репозиторием и репозиторием в памяти
type ShipStore interface {
	FindShips(filter ds.ShipFilter, order ds.ShipOrder, pageNumber, pageSize int) ([]ds.Ship, error)
	CountShips(filter ds.ShipFilter) (int64, error)
	GetShip(id int64) (ds.Ship, error)
	ExistsShip(id int64) (bool, error)
	CreateShip(ship *ds.Ship) error
	SaveShip(ship *ds.Ship) error
	DeleteShip(id int64) error
}

type ShipService struct {
	store ShipStore
}

func NewShipService(store ShipStore) *ShipService {
	return &ShipService{store: store}
}

// Round2 округляет до двух знаков, половина - от нуля.
// Для неотрицательных скоростей и рейтингов это то же, что округление вверх.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Rating считает рейтинг корабля от уже округленной скорости
func Rating(speed float64, isUsed bool, prodDate time.Time) float64 {
	usedFactor := 1.0
	if isUsed {
		usedFactor = 0.5
	}
	age := float64(referenceYear - prodDate.UTC().Year() + 1)
	return Round2(80 * speed * usedFactor / age)
}

func validateID(id int64) error {
	if id <= 0 {
		return invalid("id", "must be a positive integer")
	}
	return nil
}

func prodYear(ms int64) int {
	return time.UnixMilli(ms).UTC().Year()
}

func validateProdDate(ms int64) error {
	year := prodYear(ms)
	if year < minProdYear || year > referenceYear {
		return invalid("prodDate", fmt.Sprintf("year must be in [%d, %d]", minProdYear, referenceYear))
	}
	return nil
}

func validateName(field, value string) error {
	if value == "" {
		return invalid(field, "must not be empty")
	}
	if len(value) > maxNameLen {
		return invalid(field, fmt.Sprintf("must be at most %d characters", maxNameLen))
	}
	return nil
}

func validateSpeed(value float64) error {
	if value < minSpeed || value > maxSpeed {
		return invalid("speed", fmt.Sprintf("must be in [%v, %v]", minSpeed, maxSpeed))
	}
	return nil
}

func validateCrewSize(value int) error {
	if value <= 0 || value > maxCrewSize {
		return invalid("crewSize", fmt.Sprintf("must be in (0, %d]", maxCrewSize))
	}
	return nil
}

// CreateShip проверяет все поля, нормализует скорость, считает рейтинг
// и сохраняет корабль. isUsed по умолчанию false.
func (s *ShipService) CreateShip(input ShipInput) (ds.Ship, error) {
	if input.Name == nil {
		return ds.Ship{}, invalid("name", "is required")
	}
	if input.Planet == nil {
		return ds.Ship{}, invalid("planet", "is required")
	}
	if input.ShipType == nil {
		return ds.Ship{}, invalid("shipType", "is required")
	}
	if input.ProdDate == nil {
		return ds.Ship{}, invalid("prodDate", "is required")
	}
	if input.Speed == nil {
		return ds.Ship{}, invalid("speed", "is required")
	}
	if input.CrewSize == nil {
		return ds.Ship{}, invalid("crewSize", "is required")
	}

	if err := validateName("name", *input.Name); err != nil {
		return ds.Ship{}, err
	}
	if err := validateName("planet", *input.Planet); err != nil {
		return ds.Ship{}, err
	}
	shipType, err := ds.ParseShipType(*input.ShipType)
	if err != nil {
		return ds.Ship{}, invalid("shipType", err.Error())
	}
	if err := validateProdDate(*input.ProdDate); err != nil {
		return ds.Ship{}, err
	}
	if err := validateSpeed(*input.Speed); err != nil {
		return ds.Ship{}, err
	}
	if err := validateCrewSize(*input.CrewSize); err != nil {
		return ds.Ship{}, err
	}

	isUsed := false
	if input.IsUsed != nil {
		isUsed = *input.IsUsed
	}

	// скорость округляется до записи, рейтинг считается от округленной
	speed := Round2(*input.Speed)
	prodDate := time.UnixMilli(*input.ProdDate).UTC()

	ship := ds.Ship{
		Name:     *input.Name,
		Planet:   *input.Planet,
		ShipType: shipType,
		ProdDate: prodDate,
		IsUsed:   isUsed,
		Speed:    speed,
		CrewSize: *input.CrewSize,
		Rating:   Rating(speed, isUsed, prodDate),
	}
	if err := s.store.CreateShip(&ship); err != nil {
		return ds.Ship{}, err
	}
	return ship, nil
}

func (s *ShipService) GetShip(id int64) (ds.Ship, error) {
	if err := validateID(id); err != nil {
		return ds.Ship{}, err
	}
	return s.store.GetShip(id)
}

// UpdateShip применяет только переданные поля. Любая непрошедшая проверка
// отменяет обновление целиком; рейтинг пересчитывается от итогового состояния.
func (s *ShipService) UpdateShip(id int64, input ShipInput) (ds.Ship, error) {
	if err := validateID(id); err != nil {
		return ds.Ship{}, err
	}

	ship, err := s.store.GetShip(id)
	if err != nil {
		return ds.Ship{}, err
	}

	if input.Name != nil {
		if err := validateName("name", *input.Name); err != nil {
			return ds.Ship{}, err
		}
		ship.Name = *input.Name
	}
	if input.Planet != nil {
		if err := validateName("planet", *input.Planet); err != nil {
			return ds.Ship{}, err
		}
		ship.Planet = *input.Planet
	}
	if input.ShipType != nil {
		shipType, err := ds.ParseShipType(*input.ShipType)
		if err != nil {
			return ds.Ship{}, invalid("shipType", err.Error())
		}
		ship.ShipType = shipType
	}
	if input.ProdDate != nil {
		if err := validateProdDate(*input.ProdDate); err != nil {
			return ds.Ship{}, err
		}
		ship.ProdDate = time.UnixMilli(*input.ProdDate).UTC()
	}
	if input.IsUsed != nil {
		ship.IsUsed = *input.IsUsed
	}
	if input.Speed != nil {
		if err := validateSpeed(*input.Speed); err != nil {
			return ds.Ship{}, err
		}
		ship.Speed = Round2(*input.Speed)
	}
	if input.CrewSize != nil {
		if err := validateCrewSize(*input.CrewSize); err != nil {
			return ds.Ship{}, err
		}
		ship.CrewSize = *input.CrewSize
	}

	ship.Rating = Rating(ship.Speed, ship.IsUsed, ship.ProdDate)

	if err := s.store.SaveShip(&ship); err != nil {
		return ds.Ship{}, err
	}
	return ship, nil
}

func (s *ShipService) DeleteShip(id int64) error {
	if err := validateID(id); err != nil {
		return err
	}
	exists, err := s.store.ExistsShip(id)
	if err != nil {
		return err
	}
	if !exists {
		return ds.ErrShipNotFound
	}
	return s.store.DeleteShip(id)
}

// ListShips - страница кораблей по фильтру, сортировка по order по возрастанию
func (s *ShipService) ListShips(filter ds.ShipFilter, order ds.ShipOrder, pageNumber, pageSize int) ([]ds.Ship, error) {
	return s.store.FindShips(filter, order, pageNumber, pageSize)
}

// CountShips - количество кораблей по фильтру, без пагинации и сортировки
func (s *ShipService) CountShips(filter ds.ShipFilter) (int64, error) {
	return s.store.CountShips(filter)
}
