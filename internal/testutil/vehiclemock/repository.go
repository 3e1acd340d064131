package vehiclemock

import (
	"context"

	domain "fleetflow-backend/internal/domain/vehicle"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn           func(ctx context.Context, v *domain.Vehicle) error
	SaveFn             func(ctx context.Context, v *domain.Vehicle) error
	DeleteFn           func(ctx context.Context, id uint64) error
	GetByIDFn          func(ctx context.Context, id uint64) (*domain.Vehicle, error)
	GetByIDForUpdateFn func(ctx context.Context, id uint64) (*domain.Vehicle, error)
	ListFn             func(ctx context.Context) ([]domain.Vehicle, error)
	UpdateStatusFn     func(ctx context.Context, id uint64, s domain.Status) error
	CountByStatusFn    func(ctx context.Context, s domain.Status) (int64, error)
}

func (m *Repo) Create(ctx context.Context, v *domain.Vehicle) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, v)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, v *domain.Vehicle) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, v)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Vehicle, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Vehicle, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) List(ctx context.Context) ([]domain.Vehicle, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
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
