// Package dispatch is the trip dispatch engine. It owns the trip lifecycle
// (Draft → Dispatched → Completed, with Cancelled reachable from Draft and
// Dispatched) and keeps vehicle and driver availability consistent with it:
// every transition that binds or releases a vehicle/driver writes all three
// rows inside one transaction under row locks.
package dispatch

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

var ErrInvalidInput = errors.New("invalid trip input")

type Usecase struct {
	trips trip.Repository
	uow   uow.UnitOfWork
}

func NewUsecase(trips trip.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{trips: trips, uow: tx}
}

// assignable holds the eligibility rules shared by creation and dispatch-time
// re-validation: capacity, vehicle availability (On Trip and In Shop both
// refuse), driver availability and license expiry.
func assignable(v *vehicle.Vehicle, d *driver.Driver, cargo float64, now time.Time) error {
	if cargo > v.MaxCapacityKg {
		return trip.ErrCapacityExceeded
	}
	if v.Status != vehicle.StatusAvailable {
		return vehicle.ErrUnavailable
	}
	if !d.Eligible(now) {
		return driver.ErrIneligible
	}
	return nil
}

// CreateTrip validates the assignment and inserts a Draft. A draft has no
// status side effects on vehicle or driver; those happen at dispatch time.
func (u *Usecase) CreateTrip(ctx context.Context, in CreateTripInput) (*TripDTO, error) {
	if in.CargoWeight <= 0 || strings.TrimSpace(in.Origin) == "" || strings.TrimSpace(in.Destination) == "" {
		return nil, ErrInvalidInput
	}

	var dto *TripDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		v, err := r.Vehicles.GetByID(ctx, in.VehicleID)
		if err != nil {
			return vehicle.ErrNotFound
		}
		d, err := r.Drivers.GetByID(ctx, in.DriverID)
		if err != nil {
			return driver.ErrNotFound
		}
		if err := assignable(v, d, in.CargoWeight, time.Now()); err != nil {
			return err
		}

		t := &trip.Trip{
			VehicleID:   v.ID,
			DriverID:    d.ID,
			CargoWeight: in.CargoWeight,
			Origin:      strings.TrimSpace(in.Origin),
			Destination: strings.TrimSpace(in.Destination),
			Status:      trip.StatusDraft,
		}
		if err := r.Trips.Create(ctx, t); err != nil {
			return err
		}
		dto = toDTO(t)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Dispatch re-validates eligibility under row locks (vehicle or driver state
// may have changed since the draft was created), then moves trip, vehicle and
// driver in one atomic write. Of two racing dispatches for the same vehicle
// or driver, at most one observes Available; the loser fails and the draft is
// left untouched.
func (u *Usecase) Dispatch(ctx context.Context, tripID uint64) (*TripDTO, error) {
	return u.transition(ctx, tripID, trip.StatusDispatched)
}

// Complete releases the vehicle and driver back to Available together with
// the terminal trip write.
func (u *Usecase) Complete(ctx context.Context, tripID uint64) (*TripDTO, error) {
	return u.transition(ctx, tripID, trip.StatusCompleted)
}

// Cancel is permitted from Draft and Dispatched. Cancelling a dispatched trip
// releases the vehicle and driver exactly as completion does.
func (u *Usecase) Cancel(ctx context.Context, tripID uint64) (*TripDTO, error) {
	return u.transition(ctx, tripID, trip.StatusCancelled)
}

func (u *Usecase) transition(ctx context.Context, tripID uint64, to trip.Status) (*TripDTO, error) {
	var dto *TripDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		t, err := r.Trips.GetByIDForUpdate(ctx, tripID)
		if err != nil {
			return trip.ErrNotFound
		}
		if !trip.CanTransition(t.Status, to) {
			return trip.ErrInvalidTransition
		}
		from := t.Status

		// Lock the referenced rows in a fixed order before touching status.
		v, err := r.Vehicles.GetByIDForUpdate(ctx, t.VehicleID)
		if err != nil {
			return vehicle.ErrNotFound
		}
		d, err := r.Drivers.GetByIDForUpdate(ctx, t.DriverID)
		if err != nil {
			return driver.ErrNotFound
		}

		switch to {
		case trip.StatusDispatched:
			if err := assignable(v, d, t.CargoWeight, time.Now()); err != nil {
				return err
			}
			if err := r.Vehicles.UpdateStatus(ctx, v.ID, vehicle.StatusOnTrip); err != nil {
				return err
			}
			if err := r.Drivers.UpdateStatus(ctx, d.ID, driver.StatusOnTrip); err != nil {
				return err
			}
		case trip.StatusCompleted, trip.StatusCancelled:
			// A cancelled draft never bound its vehicle/driver.
			if from == trip.StatusDispatched {
				if err := r.Vehicles.UpdateStatus(ctx, v.ID, vehicle.StatusAvailable); err != nil {
					return err
				}
				if err := r.Drivers.UpdateStatus(ctx, d.ID, driver.StatusAvailable); err != nil {
					return err
				}
			}
		}

		t.Status = to
		if err := r.Trips.Save(ctx, t); err != nil {
			return err
		}
		dto = toDTO(t)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, tripID uint64) (*TripDTO, error) {
	t, err := u.trips.GetByID(ctx, tripID)
	if err != nil {
		return nil, trip.ErrNotFound
	}
	return toDTO(t), nil
}

func (u *Usecase) List(ctx context.Context) ([]trip.Summary, error) {
	return u.trips.List(ctx)
}
