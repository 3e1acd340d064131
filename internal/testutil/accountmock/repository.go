package accountmock

import (
	"context"

	domain "fleetflow-backend/internal/domain/account"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Fill in the function fields a test needs; nil getters report not found,
// nil mutations succeed.
type Repo struct {
	CreateFn                 func(ctx context.Context, a *domain.Account) error
	SaveFn                   func(ctx context.Context, a *domain.Account) error
	DeleteFn                 func(ctx context.Context, id uint64) error
	GetByIDFn                func(ctx context.Context, id uint64) (*domain.Account, error)
	GetByIDForUpdateFn       func(ctx context.Context, id uint64) (*domain.Account, error)
	GetByUsernameFn          func(ctx context.Context, username string) (*domain.Account, error)
	OccupiedRolesFn          func(ctx context.Context) ([]domain.Role, error)
	RoleOccupiedFn           func(ctx context.Context, role domain.Role, excludeID uint64) (bool, error)
	ListPendingFn            func(ctx context.Context) ([]domain.Account, error)
	ListApprovedRestrictedFn func(ctx context.Context) ([]domain.Account, error)
}

func (m *Repo) Create(ctx context.Context, a *domain.Account) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, a *domain.Account) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Account, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Account, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) OccupiedRoles(ctx context.Context) ([]domain.Role, error) {
	if m.OccupiedRolesFn != nil {
		return m.OccupiedRolesFn(ctx)
	}
	return nil, nil
}

func (m *Repo) RoleOccupied(ctx context.Context, role domain.Role, excludeID uint64) (bool, error) {
	if m.RoleOccupiedFn != nil {
		return m.RoleOccupiedFn(ctx, role, excludeID)
	}
	return false, nil
}

func (m *Repo) ListPending(ctx context.Context) ([]domain.Account, error) {
	if m.ListPendingFn != nil {
		return m.ListPendingFn(ctx)
	}
	return nil, nil
}

func (m *Repo) ListApprovedRestricted(ctx context.Context) ([]domain.Account, error) {
	if m.ListApprovedRestrictedFn != nil {
		return m.ListApprovedRestrictedFn(ctx)
	}
	return nil, nil
}
