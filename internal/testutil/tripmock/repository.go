package tripmock

import (
	"context"

	domain "fleetflow-backend/internal/domain/trip"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn                 func(ctx context.Context, t *domain.Trip) error
	SaveFn                   func(ctx context.Context, t *domain.Trip) error
	GetByIDFn                func(ctx context.Context, id uint64) (*domain.Trip, error)
	GetByIDForUpdateFn       func(ctx context.Context, id uint64) (*domain.Trip, error)
	ListFn                   func(ctx context.Context) ([]domain.Summary, error)
	RecentFn                 func(ctx context.Context, limit int) ([]domain.Summary, error)
	RecentCompletedFn        func(ctx context.Context, limit int) ([]domain.Summary, error)
	CountByStatusFn          func(ctx context.Context, s domain.Status) (int64, error)
	HasActiveForVehicleFn    func(ctx context.Context, vehicleID uint64) (bool, error)
	ExistsForVehicleFn       func(ctx context.Context, vehicleID uint64) (bool, error)
	ExistsForDriverFn        func(ctx context.Context, driverID uint64) (bool, error)
	CountCompletedByDriverFn func(ctx context.Context, driverID uint64) (int64, error)
}

func (m *Repo) Create(ctx context.Context, t *domain.Trip) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, t)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, t *domain.Trip) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, t)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Trip, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Trip, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) List(ctx context.Context) ([]domain.Summary, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) Recent(ctx context.Context, limit int) ([]domain.Summary, error) {
	if m.RecentFn != nil {
		return m.RecentFn(ctx, limit)
	}
	return nil, nil
}

func (m *Repo) RecentCompleted(ctx context.Context, limit int) ([]domain.Summary, error) {
	if m.RecentCompletedFn != nil {
		return m.RecentCompletedFn(ctx, limit)
	}
	return nil, nil
}

func (m *Repo) CountByStatus(ctx context.Context, s domain.Status) (int64, error) {
	if m.CountByStatusFn != nil {
		return m.CountByStatusFn(ctx, s)
	}
	return 0, nil
}

func (m *Repo) HasActiveForVehicle(ctx context.Context, vehicleID uint64) (bool, error) {
	if m.HasActiveForVehicleFn != nil {
		return m.HasActiveForVehicleFn(ctx, vehicleID)
	}
	return false, nil
}

func (m *Repo) ExistsForVehicle(ctx context.Context, vehicleID uint64) (bool, error) {
	if m.ExistsForVehicleFn != nil {
		return m.ExistsForVehicleFn(ctx, vehicleID)
	}
	return false, nil
}

func (m *Repo) ExistsForDriver(ctx context.Context, driverID uint64) (bool, error) {
	if m.ExistsForDriverFn != nil {
		return m.ExistsForDriverFn(ctx, driverID)
	}
	return false, nil
}

func (m *Repo) CountCompletedByDriver(ctx context.Context, driverID uint64) (int64, error) {
	if m.CountCompletedByDriverFn != nil {
		return m.CountCompletedByDriverFn(ctx, driverID)
	}
	return 0, nil
}
