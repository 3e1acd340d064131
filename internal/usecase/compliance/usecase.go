// Package compliance holds the safety officer's driver actions. Suspension
// of a driver on an active trip is refused, never silently deferred; the
// officer retries after the trip reaches a terminal state.
package compliance

import (
	"context"
	"errors"

	"fleetflow-backend/internal/domain/driver"
	"fleetflow-backend/internal/domain/uow"
)

var ErrInvalidStatus = errors.New("status must be Available or Suspended")

type Usecase struct {
	drivers driver.Repository
	uow     uow.UnitOfWork
}

func NewUsecase(drivers driver.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{drivers: drivers, uow: tx}
}

func (u *Usecase) Suspend(ctx context.Context, driverID uint64) (*driver.Driver, error) {
	var out *driver.Driver
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		d, err := r.Drivers.GetByIDForUpdate(ctx, driverID)
		if err != nil {
			return driver.ErrNotFound
		}
		if d.Status == driver.StatusOnTrip {
			return driver.ErrOnActiveTrip
		}
		if err := r.Drivers.UpdateStatus(ctx, driverID, driver.StatusSuspended); err != nil {
			return err
		}
		d.Status = driver.StatusSuspended
		out = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (u *Usecase) Reactivate(ctx context.Context, driverID uint64) (*driver.Driver, error) {
	var out *driver.Driver
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		d, err := r.Drivers.GetByIDForUpdate(ctx, driverID)
		if err != nil {
			return driver.ErrNotFound
		}
		if d.Status != driver.StatusSuspended {
			return driver.ErrNotSuspended
		}
		if err := r.Drivers.UpdateStatus(ctx, driverID, driver.StatusAvailable); err != nil {
			return err
		}
		d.Status = driver.StatusAvailable
		out = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateProfile sets safety score and Available/Suspended status in one call,
// with the same on-trip suspension guard.
func (u *Usecase) UpdateProfile(ctx context.Context, driverID uint64, safetyScore int, status driver.Status) (*driver.Driver, error) {
	if safetyScore < 0 || safetyScore > 100 {
		return nil, driver.ErrInvalidScore
	}
	if status != driver.StatusAvailable && status != driver.StatusSuspended {
		return nil, ErrInvalidStatus
	}

	var out *driver.Driver
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		d, err := r.Drivers.GetByIDForUpdate(ctx, driverID)
		if err != nil {
			return driver.ErrNotFound
		}
		if d.Status == driver.StatusOnTrip && status == driver.StatusSuspended {
			return driver.ErrOnActiveTrip
		}
		d.SafetyScore = safetyScore
		if d.Status != driver.StatusOnTrip {
			d.Status = status
		}
		if err := r.Drivers.Save(ctx, d); err != nil {
			return err
		}
		out = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
