package vehicle

import (
	"errors"
	"time"
)

type Status string

const (
	StatusAvailable Status = "Available"
	StatusOnTrip    Status = "On Trip"
	StatusInShop    Status = "In Shop"
)

var (
	ErrNotFound       = errors.New("vehicle not found")
	ErrUnavailable    = errors.New("vehicle is not available")
	ErrActiveTrip     = errors.New("vehicle has an active trip")
	ErrInUse          = errors.New("vehicle has trip records and cannot be deleted")
	ErrDuplicatePlate = errors.New("license plate already registered")
)

type Vehicle struct {
	ID            uint64    `gorm:"primaryKey;column:id" json:"id"`
	ModelName     string    `gorm:"size:255;not null" json:"model_name"`
	LicensePlate  string    `gorm:"size:32;not null;uniqueIndex:ux_vehicles_plate" json:"license_plate"`
	MaxCapacityKg float64   `gorm:"column:max_capacity_kg;not null" json:"max_capacity_kg"`
	Odometer      int64     `gorm:"not null;default:0" json:"odometer"`
	Status        Status    `gorm:"type:enum('Available','On Trip','In Shop');default:'Available';not null;index" json:"status"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Vehicle) TableName() string { return "vehicles" }
