// Package fleet is the vehicle and driver registry: manager-only CRUD plus
// the manager's restore-from-shop operation. Deleting a vehicle or driver
// with any trip history is refused; the store's restrict-on-delete foreign
// keys back this up.
package fleet

import (
	"context"
	"errors"
	"strings"
	"time"

	"fleetflow-backend/internal/domain/driver"
	"fleetflow-backend/internal/domain/trip"
	"fleetflow-backend/internal/domain/uow"
	"fleetflow-backend/internal/domain/vehicle"
)

var ErrInvalidInput = errors.New("invalid registry input")

type Usecase struct {
	vehicles vehicle.Repository
	drivers  driver.Repository
	trips    trip.Repository
	uow      uow.UnitOfWork
}

func NewUsecase(vehicles vehicle.Repository, drivers driver.Repository, trips trip.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{vehicles: vehicles, drivers: drivers, trips: trips, uow: tx}
}

func validVehicleStatus(s vehicle.Status) bool {
	switch s {
	case vehicle.StatusAvailable, vehicle.StatusOnTrip, vehicle.StatusInShop:
		return true
	}
	return false
}

func validDriverStatus(s driver.Status) bool {
	switch s {
	case driver.StatusAvailable, driver.StatusOnTrip, driver.StatusSuspended:
		return true
	}
	return false
}

func (u *Usecase) CreateVehicle(ctx context.Context, in VehicleInput) (*vehicle.Vehicle, error) {
	if in.Status == "" {
		in.Status = vehicle.StatusAvailable
	}
	if strings.TrimSpace(in.ModelName) == "" || strings.TrimSpace(in.LicensePlate) == "" ||
		in.MaxCapacityKg <= 0 || in.Odometer < 0 || !validVehicleStatus(in.Status) {
		return nil, ErrInvalidInput
	}
	v := &vehicle.Vehicle{
		ModelName:     strings.TrimSpace(in.ModelName),
		LicensePlate:  strings.ToUpper(strings.TrimSpace(in.LicensePlate)),
		MaxCapacityKg: in.MaxCapacityKg,
		Odometer:      in.Odometer,
		Status:        in.Status,
	}
	if err := u.vehicles.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (u *Usecase) UpdateVehicle(ctx context.Context, id uint64, in VehicleInput) (*vehicle.Vehicle, error) {
	if strings.TrimSpace(in.ModelName) == "" || strings.TrimSpace(in.LicensePlate) == "" ||
		in.MaxCapacityKg <= 0 || in.Odometer < 0 || !validVehicleStatus(in.Status) {
		return nil, ErrInvalidInput
	}
	v, err := u.vehicles.GetByID(ctx, id)
	if err != nil {
		return nil, vehicle.ErrNotFound
	}
	v.ModelName = strings.TrimSpace(in.ModelName)
	v.LicensePlate = strings.ToUpper(strings.TrimSpace(in.LicensePlate))
	v.MaxCapacityKg = in.MaxCapacityKg
	v.Odometer = in.Odometer
	v.Status = in.Status
	if err := u.vehicles.Save(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (u *Usecase) DeleteVehicle(ctx context.Context, id uint64) error {
	if _, err := u.vehicles.GetByID(ctx, id); err != nil {
		return vehicle.ErrNotFound
	}
	used, err := u.trips.ExistsForVehicle(ctx, id)
	if err != nil {
		return err
	}
	if used {
		return vehicle.ErrInUse
	}
	return u.vehicles.Delete(ctx, id)
}

func (u *Usecase) GetVehicle(ctx context.Context, id uint64) (*vehicle.Vehicle, error) {
	v, err := u.vehicles.GetByID(ctx, id)
	if err != nil {
		return nil, vehicle.ErrNotFound
	}
	return v, nil
}

func (u *Usecase) ListVehicles(ctx context.Context) ([]vehicle.Vehicle, error) {
	return u.vehicles.List(ctx)
}

// RestoreVehicle returns an In Shop vehicle to service. Refused while any
// dispatched trip still references the vehicle; the lock on the vehicle row
// serializes restore against a concurrent dispatch.
func (u *Usecase) RestoreVehicle(ctx context.Context, id uint64) (*vehicle.Vehicle, error) {
	var out *vehicle.Vehicle
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		v, err := r.Vehicles.GetByIDForUpdate(ctx, id)
		if err != nil {
			return vehicle.ErrNotFound
		}
		active, err := r.Trips.HasActiveForVehicle(ctx, id)
		if err != nil {
			return err
		}
		if active {
			return vehicle.ErrActiveTrip
		}
		if err := r.Vehicles.UpdateStatus(ctx, id, vehicle.StatusAvailable); err != nil {
			return err
		}
		v.Status = vehicle.StatusAvailable
		out = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (u *Usecase) CreateDriver(ctx context.Context, in DriverInput) (*driver.Driver, error) {
	if in.Status == "" {
		in.Status = driver.StatusAvailable
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.LicenseNumber) == "" ||
		in.LicenseExpiryDate.IsZero() || !validDriverStatus(in.Status) {
		return nil, ErrInvalidInput
	}
	score := driver.DefaultSafetyScore
	if in.SafetyScore != nil {
		score = *in.SafetyScore
	}
	if score < 0 || score > 100 {
		return nil, driver.ErrInvalidScore
	}
	d := &driver.Driver{
		Name:              strings.TrimSpace(in.Name),
		LicenseNumber:     strings.ToUpper(strings.TrimSpace(in.LicenseNumber)),
		LicenseExpiryDate: in.LicenseExpiryDate,
		Status:            in.Status,
		SafetyScore:       score,
	}
	if err := u.drivers.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (u *Usecase) UpdateDriver(ctx context.Context, id uint64, in DriverInput) (*driver.Driver, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.LicenseNumber) == "" ||
		in.LicenseExpiryDate.IsZero() || !validDriverStatus(in.Status) {
		return nil, ErrInvalidInput
	}
	d, err := u.drivers.GetByID(ctx, id)
	if err != nil {
		return nil, driver.ErrNotFound
	}
	d.Name = strings.TrimSpace(in.Name)
	d.LicenseNumber = strings.ToUpper(strings.TrimSpace(in.LicenseNumber))
	d.LicenseExpiryDate = in.LicenseExpiryDate
	d.Status = in.Status
	if in.SafetyScore != nil {
		if *in.SafetyScore < 0 || *in.SafetyScore > 100 {
			return nil, driver.ErrInvalidScore
		}
		d.SafetyScore = *in.SafetyScore
	}
	if err := u.drivers.Save(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (u *Usecase) DeleteDriver(ctx context.Context, id uint64) error {
	if _, err := u.drivers.GetByID(ctx, id); err != nil {
		return driver.ErrNotFound
	}
	used, err := u.trips.ExistsForDriver(ctx, id)
	if err != nil {
		return err
	}
	if used {
		return driver.ErrInUse
	}
	return u.drivers.Delete(ctx, id)
}

func (u *Usecase) GetDriver(ctx context.Context, id uint64) (*driver.Driver, error) {
	d, err := u.drivers.GetByID(ctx, id)
	if err != nil {
		return nil, driver.ErrNotFound
	}
	return d, nil
}

// ListDrivers returns all drivers, or only dispatch-eligible ones when
// eligibleOnly is set (the dispatcher's view).
func (u *Usecase) ListDrivers(ctx context.Context, eligibleOnly bool) ([]driver.Driver, error) {
	if eligibleOnly {
		return u.drivers.ListEligible(ctx, time.Now())
	}
	return u.drivers.List(ctx)
}
