package drivermock

import (
	"context"
	"time"

	domain "fleetflow-backend/internal/domain/driver"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn               func(ctx context.Context, d *domain.Driver) error
	SaveFn                 func(ctx context.Context, d *domain.Driver) error
	DeleteFn               func(ctx context.Context, id uint64) error
	GetByIDFn              func(ctx context.Context, id uint64) (*domain.Driver, error)
	GetByIDForUpdateFn     func(ctx context.Context, id uint64) (*domain.Driver, error)
	ListFn                 func(ctx context.Context) ([]domain.Driver, error)
	ListEligibleFn         func(ctx context.Context, now time.Time) ([]domain.Driver, error)
	UpdateStatusFn         func(ctx context.Context, id uint64, s domain.Status) error
	CountByStatusFn        func(ctx context.Context, s domain.Status) (int64, error)
	CountExpiredLicensesFn func(ctx context.Context, now time.Time) (int64, error)
	AverageSafetyScoreFn   func(ctx context.Context) (float64, error)
}

func (m *Repo) Create(ctx context.Context, d *domain.Driver) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, d)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, d *domain.Driver) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, d)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Driver, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Driver, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) List(ctx context.Context) ([]domain.Driver, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) ListEligible(ctx context.Context, now time.Time) ([]domain.Driver, error) {
	if m.ListEligibleFn != nil {
		return m.ListEligibleFn(ctx, now)
	}
	return nil, nil
}

func (m *Repo) UpdateStatus(ctx context.Context, id uint64, s domain.Status) error {
	if m.UpdateStatusFn != nil {
		return m.UpdateStatusFn(ctx, id, s)
	}
	return nil
}

func (m *Repo) CountByStatus(ctx context.Context, s domain.Status) (int64, error) {
	if m.CountByStatusFn != nil {
		return m.CountByStatusFn(ctx, s)
	}
	return 0, nil
}

func (m *Repo) CountExpiredLicenses(ctx context.Context, now time.Time) (int64, error) {
	if m.CountExpiredLicensesFn != nil {
		return m.CountExpiredLicensesFn(ctx, now)
	}
	return 0, nil
}

func (m *Repo) AverageSafetyScore(ctx context.Context) (float64, error) {
	if m.AverageSafetyScoreFn != nil {
		return m.AverageSafetyScoreFn(ctx)
	}
	return 0, nil
}
