package mysql

import (
	"context"

	"gorm.io/gorm"

	"fleetflow-backend/internal/domain/uow"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

// WithinTx runs fn with every repository bound to one transaction, so a trip
// transition's writes to trips, vehicles and drivers commit or roll back as a
// unit.
func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := uow.Repos{
			Accounts:    &AccountRepository{db: tx},
			Vehicles:    &VehicleRepository{db: tx},
			Drivers:     &DriverRepository{db: tx},
			Trips:       &TripRepository{db: tx},
			Maintenance: &MaintenanceRepository{db: tx},
			Fuel:        &FuelRepository{db: tx},
		}
		return fn(r)
	})
}
