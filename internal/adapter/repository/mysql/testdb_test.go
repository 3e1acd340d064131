package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schemas only for tests (no enums/engine specifics) ---

type userSQLite struct {
	ID           uint64    `gorm:"primaryKey;column:id;autoIncrement"`
	Username     string    `gorm:"size:255;uniqueIndex;column:username"`
	Name         string    `gorm:"size:255;column:name"`
	Email        string    `gorm:"size:255;column:email"`
	PasswordHash string    `gorm:"size:255;column:password_hash"`
	Role         string    `gorm:"size:32;column:role"`
	Status       string    `gorm:"size:16;column:status"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (userSQLite) TableName() string { return "users" }

type vehicleSQLite struct {
	ID            uint64    `gorm:"primaryKey;column:id;autoIncrement"`
	ModelName     string    `gorm:"size:255;column:model_name"`
	LicensePlate  string    `gorm:"size:32;uniqueIndex;column:license_plate"`
	MaxCapacityKg float64   `gorm:"column:max_capacity_kg"`
	Odometer      int64     `gorm:"column:odometer"`
	Status        string    `gorm:"size:16;column:status"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (vehicleSQLite) TableName() string { return "vehicles" }

type driverSQLite struct {
	ID                uint64    `gorm:"primaryKey;column:id;autoIncrement"`
	Name              string    `gorm:"size:255;column:name"`
	LicenseNumber     string    `gorm:"size:64;uniqueIndex;column:license_number"`
	LicenseExpiryDate time.Time `gorm:"column:license_expiry_date"`
	Status            string    `gorm:"size:16;column:status"`
	SafetyScore       int       `gorm:"column:safety_score"`
	CreatedAt         time.Time `gorm:"column:created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at"`
}

func (driverSQLite) TableName() string { return "drivers" }

type tripSQLite struct {
	ID          uint64    `gorm:"primaryKey;column:id;autoIncrement"`
	VehicleID   uint64    `gorm:"column:vehicle_id"`
	DriverID    uint64    `gorm:"column:driver_id"`
	CargoWeight float64   `gorm:"column:cargo_weight"`
	Origin      string    `gorm:"size:255;column:origin"`
	Destination string    `gorm:"size:255;column:destination"`
	Status      string    `gorm:"size:16;column:status"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (tripSQLite) TableName() string { return "trips" }

type maintenanceSQLite struct {
	ID          uint64    `gorm:"primaryKey;column:id;autoIncrement"`
	VehicleID   uint64    `gorm:"column:vehicle_id"`
	Description string    `gorm:"column:description"`
	Cost        float64   `gorm:"column:cost"`
	Date        time.Time `gorm:"column:date"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (maintenanceSQLite) TableName() string { return "maintenance_logs" }

type fuelSQLite struct {
	ID        uint64    `gorm:"primaryKey;column:id;autoIncrement"`
	VehicleID uint64    `gorm:"column:vehicle_id"`
	Liters    float64   `gorm:"column:liters"`
	Cost      float64   `gorm:"column:cost"`
	Date      time.Time `gorm:"column:date"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (fuelSQLite) TableName() string { return "fuel_logs" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the sqlite-safe
// schemas. TranslateError matches production so duplicate keys surface as
// gorm.ErrDuplicatedKey.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&userSQLite{},
		&vehicleSQLite{},
		&driverSQLite{},
		&tripSQLite{},
		&maintenanceSQLite{},
		&fuelSQLite{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
