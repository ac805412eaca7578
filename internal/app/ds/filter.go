package ds

import (
	"fmt"
	"strings"
)

// ShipFilter - необязательные критерии поиска кораблей.
// nil-поле означает, что критерий не задан и не участвует в отборе.
type ShipFilter struct {
	Name        *string
	Planet      *string
	ShipType    *ShipType
	IsUsed      *bool
	After       *int64 // миллисекунды эпохи
	Before      *int64 // миллисекунды эпохи
	MinSpeed    *float64
	MaxSpeed    *float64
	MinCrewSize *int
	MaxCrewSize *int
	MinRating   *float64
	MaxRating   *float64
}

// Predicates - список независимых условий по заданным критериям.
// Итоговый фильтр - их логическое И.
func (f ShipFilter) Predicates() []func(Ship) bool {
	var preds []func(Ship) bool

	if f.Name != nil {
		preds = append(preds, func(s Ship) bool { return strings.Contains(s.Name, *f.Name) })
	}
	if f.Planet != nil {
		preds = append(preds, func(s Ship) bool { return strings.Contains(s.Planet, *f.Planet) })
	}
	if f.ShipType != nil {
		preds = append(preds, func(s Ship) bool { return s.ShipType == *f.ShipType })
	}
	if f.IsUsed != nil {
		preds = append(preds, func(s Ship) bool { return s.IsUsed == *f.IsUsed })
	}
	if f.After != nil {
		preds = append(preds, func(s Ship) bool { return s.ProdDate.UnixMilli() >= *f.After })
	}
	if f.Before != nil {
		preds = append(preds, func(s Ship) bool { return s.ProdDate.UnixMilli() <= *f.Before })
	}
	if f.MinSpeed != nil {
		preds = append(preds, func(s Ship) bool { return s.Speed >= *f.MinSpeed })
	}
	if f.MaxSpeed != nil {
		preds = append(preds, func(s Ship) bool { return s.Speed <= *f.MaxSpeed })
	}
	if f.MinCrewSize != nil {
		preds = append(preds, func(s Ship) bool { return s.CrewSize >= *f.MinCrewSize })
	}
	if f.MaxCrewSize != nil {
		preds = append(preds, func(s Ship) bool { return s.CrewSize <= *f.MaxCrewSize })
	}
	if f.MinRating != nil {
		preds = append(preds, func(s Ship) bool { return s.Rating >= *f.MinRating })
	}
	if f.MaxRating != nil {
		preds = append(preds, func(s Ship) bool { return s.Rating <= *f.MaxRating })
	}

	return preds
}

func (f ShipFilter) Matches(s Ship) bool {
	for _, pred := range f.Predicates() {
		if !pred(s) {
			return false
		}
	}
	return true
}

// ShipOrder - поле сортировки списка кораблей
type ShipOrder string

const (
	OrderID       ShipOrder = "ID"
	OrderName     ShipOrder = "NAME"
	OrderPlanet   ShipOrder = "PLANET"
	OrderProdDate ShipOrder = "PROD_DATE"
	OrderSpeed    ShipOrder = "SPEED"
	OrderCrewSize ShipOrder = "CREW_SIZE"
	OrderRating   ShipOrder = "RATING"
)

func ParseShipOrder(s string) (ShipOrder, error) {
	o := ShipOrder(s)
	switch o {
	case OrderID, OrderName, OrderPlanet, OrderProdDate, OrderSpeed, OrderCrewSize, OrderRating:
		return o, nil
	}
	return "", fmt.Errorf("unknown ship order %q", s)
}

// Column - имя колонки в таблице ships
func (o ShipOrder) Column() string {
	switch o {
	case OrderName:
		return "name"
	case OrderPlanet:
		return "planet"
	case OrderProdDate:
		return "prod_date"
	case OrderSpeed:
		return "speed"
	case OrderCrewSize:
		return "crew_size"
	case OrderRating:
		return "rating"
	default:
		return "id"
	}
}

// Less - порядок сортировки по возрастанию для выборки в памяти
func (o ShipOrder) Less(a, b Ship) bool {
	switch o {
	case OrderName:
		return a.Name < b.Name
	case OrderPlanet:
		return a.Planet < b.Planet
	case OrderProdDate:
		return a.ProdDate.Before(b.ProdDate)
	case OrderSpeed:
		return a.Speed < b.Speed
	case OrderCrewSize:
		return a.CrewSize < b.CrewSize
	case OrderRating:
		return a.Rating < b.Rating
	default:
		return a.ID < b.ID
	}
}
