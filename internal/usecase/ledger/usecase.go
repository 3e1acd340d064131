// Package ledger appends maintenance and fuel records. Logging maintenance
// is deliberately a compound operation: the insert and the vehicle's move to
// In Shop commit together, so the side effect is visible at the API boundary
// instead of hiding in a store trigger.
package ledger

import (
	"context"
	"errors"
	"strings"
	"time"

	domain "fleetflow-backend/internal/domain/ledger"
	"fleetflow-backend/internal/domain/uow"
	"fleetflow-backend/internal/domain/vehicle"
)

var ErrInvalidInput = errors.New("invalid ledger input")

type Usecase struct {
	maintenance domain.MaintenanceRepository
	fuel        domain.FuelRepository
	uow         uow.UnitOfWork
}

func NewUsecase(maintenance domain.MaintenanceRepository, fuel domain.FuelRepository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{maintenance: maintenance, fuel: fuel, uow: tx}
}

type MaintenanceInput struct {
	VehicleID   uint64
	Description string
	Cost        float64
	Date        time.Time
}

type FuelInput struct {
	VehicleID uint64
	Liters    float64
	Cost      float64
	Date      time.Time
}

// LogMaintenance appends the record and takes the vehicle out of service
// unconditionally; a manager must explicitly restore it afterwards.
func (u *Usecase) LogMaintenance(ctx context.Context, in MaintenanceInput) (*domain.MaintenanceLog, error) {
	if strings.TrimSpace(in.Description) == "" || in.Cost < 0 || in.Date.IsZero() {
		return nil, ErrInvalidInput
	}

	var out *domain.MaintenanceLog
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Vehicles.GetByIDForUpdate(ctx, in.VehicleID); err != nil {
			return vehicle.ErrNotFound
		}
		m := &domain.MaintenanceLog{
			VehicleID:   in.VehicleID,
			Description: strings.TrimSpace(in.Description),
			Cost:        in.Cost,
			Date:        in.Date,
		}
		if err := r.Maintenance.Create(ctx, m); err != nil {
			return err
		}
		if err := r.Vehicles.UpdateStatus(ctx, in.VehicleID, vehicle.StatusInShop); err != nil {
			return err
		}
		out = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// LogFuel is a pure append with no status side effect.
func (u *Usecase) LogFuel(ctx context.Context, in FuelInput) (*domain.FuelLog, error) {
	if in.Liters <= 0 || in.Cost < 0 || in.Date.IsZero() {
		return nil, ErrInvalidInput
	}

	var out *domain.FuelLog
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Vehicles.GetByID(ctx, in.VehicleID); err != nil {
			return vehicle.ErrNotFound
		}
		f := &domain.FuelLog{
			VehicleID: in.VehicleID,
			Liters:    in.Liters,
			Cost:      in.Cost,
			Date:      in.Date,
		}
		if err := r.Fuel.Create(ctx, f); err != nil {
			return err
		}
		out = f
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (u *Usecase) ListMaintenance(ctx context.Context) ([]domain.MaintenanceEntry, error) {
	return u.maintenance.List(ctx)
}

func (u *Usecase) ListFuel(ctx context.Context) ([]domain.FuelEntry, error) {
	return u.fuel.List(ctx)
}
