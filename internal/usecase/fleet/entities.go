package fleet

import (
	"time"

	"fleetflow-backend/internal/domain/driver"
	"fleetflow-backend/internal/domain/vehicle"
)

type VehicleInput struct {
	ModelName     string
	LicensePlate  string
	MaxCapacityKg float64
	Odometer      int64
	Status        vehicle.Status // optional on create; defaults to Available
}

type DriverInput struct {
	Name              string
	LicenseNumber     string
	LicenseExpiryDate time.Time
	Status            driver.Status // optional on create; defaults to Available
	SafetyScore       *int          // nil keeps the current (or default) score
}
