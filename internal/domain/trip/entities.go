package trip

import (
	"errors"
	"time"
)

type Status string

const (
	StatusDraft      Status = "Draft"
	StatusDispatched Status = "Dispatched"
	StatusCompleted  Status = "Completed"
	StatusCancelled  Status = "Cancelled"
)

var (
	ErrNotFound          = errors.New("trip not found")
	ErrInvalidTransition = errors.New("invalid trip status transition")
	ErrCapacityExceeded  = errors.New("cargo weight exceeds vehicle maximum capacity")
)

// allowedTransitions is the trip lifecycle as a directed graph. Completed and
// Cancelled are terminal.
var allowedTransitions = map[Status][]Status{
	StatusDraft:      {StatusDispatched, StatusCancelled},
	StatusDispatched: {StatusCompleted, StatusCancelled},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

func CanTransition(from, to Status) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

type Trip struct {
	ID          uint64    `gorm:"primaryKey;column:id" json:"id"`
	VehicleID   uint64    `gorm:"column:vehicle_id;not null;index" json:"vehicle_id"`
	DriverID    uint64    `gorm:"column:driver_id;not null;index" json:"driver_id"`
	CargoWeight float64   `gorm:"column:cargo_weight;not null" json:"cargo_weight"`
	Origin      string    `gorm:"size:255;not null" json:"origin"`
	Destination string    `gorm:"size:255;not null" json:"destination"`
	Status      Status    `gorm:"type:enum('Draft','Dispatched','Completed','Cancelled');default:'Draft';not null;index" json:"status"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Trip) TableName() string { return "trips" }

func (t *Trip) Terminal() bool {
	return t.Status == StatusCompleted || t.Status == StatusCancelled
}
