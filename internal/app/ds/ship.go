package ds

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrShipNotFound возвращается хранилищем, если корабля с таким id нет
var ErrShipNotFound = errors.New("ship not found")

// ShipType - тип корабля, закрытый набор значений
type ShipType string

const (
	ShipTypeTransport ShipType = "TRANSPORT"
	ShipTypeMilitary  ShipType = "MILITARY"
	ShipTypeMerchant  ShipType = "MERCHANT"
)

func (t ShipType) Valid() bool {
	switch t {
	case ShipTypeTransport, ShipTypeMilitary, ShipTypeMerchant:
		return true
	}
	return false
}

func ParseShipType(s string) (ShipType, error) {
	t := ShipType(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown ship type %q", s)
	}
	return t, nil
}

// @Schema(description="Ship model representing a space ship")
type Ship struct {
	ID       int64     `gorm:"primaryKey;column:id" json:"id"`
	Name     string    `gorm:"column:name;size:50" json:"name"`
	Planet   string    `gorm:"column:planet;size:50" json:"planet"`
	ShipType ShipType  `gorm:"column:ship_type" json:"shipType"`
	ProdDate time.Time `gorm:"column:prod_date" json:"-"`
	IsUsed   bool      `gorm:"column:is_used" json:"isUsed"`
	Speed    float64   `gorm:"column:speed" json:"speed"`
	CrewSize int       `gorm:"column:crew_size" json:"crewSize"`
	Rating   float64   `gorm:"column:rating" json:"rating"`
}

func (Ship) TableName() string {
	return "ships"
}

// ProdYear - год выпуска в UTC; по нему считается рейтинг и проверяется диапазон
func (s Ship) ProdYear() int {
	return s.ProdDate.UTC().Year()
}

// MarshalJSON - в API дата выпуска отдается миллисекундами эпохи
func (s Ship) MarshalJSON() ([]byte, error) {
	type alias Ship
	return json.Marshal(struct {
		alias
		ProdDate int64 `json:"prodDate"`
	}{alias(s), s.ProdDate.UnixMilli()})
}
