package db

import (
	"context"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"fleetflow-backend/internal/domain/account"
	"fleetflow-backend/internal/domain/driver"
	"fleetflow-backend/internal/domain/ledger"
	"fleetflow-backend/internal/domain/trip"
	"fleetflow-backend/internal/domain/vehicle"
)

func OpenGorm(dsn string) (*gorm.DB, error) {
	return OpenGormWithDialector(mysql.Open(dsn))
}

// OpenGormWithDialector exists so tests can inject a mocked *sql.DB.
func OpenGormWithDialector(dial gorm.Dialector) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
		// Surface unique/FK violations as gorm sentinel errors so the
		// repositories can translate them to domain errors.
		TranslateError: true,
	}
	db, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	log.Println("gorm: connected")
	return db, nil
}

// Migrate creates or updates the six tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&account.Account{},
		&vehicle.Vehicle{},
		&driver.Driver{},
		&trip.Trip{},
		&ledger.MaintenanceLog{},
		&ledger.FuelLog{},
	)
}

// SeedManager inserts the approved Manager account if no manager exists yet.
// The manager is never created through registration.
func SeedManager(ctx context.Context, db *gorm.DB, username, password string) error {
	var n int64
	if err := db.WithContext(ctx).
		Model(&account.Account{}).
		Where("role = ?", account.RoleManager).
		Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	m := &account.Account{
		Username:     username,
		Name:         "Fleet Manager",
		PasswordHash: string(hash),
		Role:         account.RoleManager,
		Status:       account.StatusApproved,
	}
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	log.Printf("seeded manager account %q", username)
	return nil
}
