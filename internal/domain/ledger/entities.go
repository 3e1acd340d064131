// Package ledger holds the append-only maintenance and fuel logs. Entries are
// never updated or deleted in normal operation; cost aggregation for the
// dashboards reads from here.
package ledger

import "time"

type MaintenanceLog struct {
	ID          uint64    `gorm:"primaryKey;column:id" json:"id"`
	VehicleID   uint64    `gorm:"column:vehicle_id;not null;index" json:"vehicle_id"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Cost        float64   `gorm:"not null" json:"cost"`
	Date        time.Time `gorm:"type:date;not null" json:"date"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (MaintenanceLog) TableName() string { return "maintenance_logs" }

type FuelLog struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"id"`
	VehicleID uint64    `gorm:"column:vehicle_id;not null;index" json:"vehicle_id"`
	Liters    float64   `gorm:"not null" json:"liters"`
	Cost      float64   `gorm:"not null" json:"cost"`
	Date      time.Time `gorm:"type:date;not null" json:"date"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (FuelLog) TableName() string { return "fuel_logs" }

// MaintenanceEntry / FuelEntry are log rows joined with the vehicle plate.
type MaintenanceEntry struct {
	MaintenanceLog
	LicensePlate string `json:"license_plate"`
}

type FuelEntry struct {
	FuelLog
	LicensePlate string `json:"license_plate"`
}

// VehicleCost is the per-vehicle financial breakdown. CostPerTrip is nil when
// the vehicle has no completed trips.
type VehicleCost struct {
	VehicleID       uint64   `json:"vehicle_id"`
	LicensePlate    string   `json:"license_plate"`
	ModelName       string   `json:"model_name"`
	FuelCost        float64  `json:"total_fuel_cost"`
	MaintenanceCost float64  `json:"total_maintenance_cost"`
	TotalCost       float64  `json:"total_operational_cost"`
	CompletedTrips  int64    `json:"completed_trips"`
	CostPerTrip     *float64 `json:"cost_per_trip"`
}
