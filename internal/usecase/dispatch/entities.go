package dispatch

import (
	"time"

	"fleetflow-backend/internal/domain/trip"
)

type CreateTripInput struct {
	VehicleID   uint64
	DriverID    uint64
	CargoWeight float64
	Origin      string
	Destination string
}

type TripDTO struct {
	ID          uint64      `json:"id"`
	VehicleID   uint64      `json:"vehicle_id"`
	DriverID    uint64      `json:"driver_id"`
	CargoWeight float64     `json:"cargo_weight"`
	Origin      string      `json:"origin"`
	Destination string      `json:"destination"`
	Status      trip.Status `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
}

func toDTO(t *trip.Trip) *TripDTO {
	return &TripDTO{
		ID:          t.ID,
		VehicleID:   t.VehicleID,
		DriverID:    t.DriverID,
		CargoWeight: t.CargoWeight,
		Origin:      t.Origin,
		Destination: t.Destination,
		Status:      t.Status,
		CreatedAt:   t.CreatedAt,
	}
}
