package account

import "context"

type Repository interface {
	Create(ctx context.Context, a *Account) error
	Save(ctx context.Context, a *Account) error
	Delete(ctx context.Context, id uint64) error

	GetByID(ctx context.Context, id uint64) (*Account, error)
	GetByIDForUpdate(ctx context.Context, id uint64) (*Account, error)
	GetByUsername(ctx context.Context, username string) (*Account, error)

	// OccupiedRoles reports which restricted roles already have a pending or
	// approved account (both count as occupying the role).
	OccupiedRoles(ctx context.Context) ([]Role, error)
	// RoleOccupied is OccupiedRoles narrowed to one role, excluding the given
	// account id so an account does not conflict with itself.
	RoleOccupied(ctx context.Context, role Role, excludeID uint64) (bool, error)

	ListPending(ctx context.Context) ([]Account, error)
	ListApprovedRestricted(ctx context.Context) ([]Account, error)
}
