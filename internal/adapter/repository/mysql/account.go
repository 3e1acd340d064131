package mysql

import (
	"context"

	"gorm.io/gorm"

	"fleetflow-backend/internal/domain/account"
)

type AccountRepository struct{ db *gorm.DB }

func NewAccountRepository(db *gorm.DB) *AccountRepository { return &AccountRepository{db: db} }

func (r *AccountRepository) Create(ctx context.Context, a *account.Account) error {
	return translate(r.db.WithContext(ctx).Create(a).Error, account.ErrDuplicateUsername)
}

func (r *AccountRepository) Save(ctx context.Context, a *account.Account) error {
	return translate(r.db.WithContext(ctx).Save(a).Error, account.ErrDuplicateUsername)
}

func (r *AccountRepository) Delete(ctx context.Context, id uint64) error {
	return translate(r.db.WithContext(ctx).Delete(&account.Account{}, id).Error, nil)
}

func (r *AccountRepository) GetByID(ctx context.Context, id uint64) (*account.Account, error) {
	var out account.Account
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *AccountRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*account.Account, error) {
	var out account.Account
	res := forUpdate(r.db.WithContext(ctx)).First(&out, id)
	return &out, res.Error
}

// GetByUsername matches username or email, case-insensitively, mirroring the
// login form where the two are interchangeable.
func (r *AccountRepository) GetByUsername(ctx context.Context, username string) (*account.Account, error) {
	var out account.Account
	res := r.db.WithContext(ctx).
		Where("lower(username) = lower(?) OR lower(email) = lower(?)", username, username).
		First(&out)
	return &out, res.Error
}

func (r *AccountRepository) OccupiedRoles(ctx context.Context) ([]account.Role, error) {
	var roles []account.Role
	err := r.db.WithContext(ctx).
		Model(&account.Account{}).
		Where("role IN ? AND status IN ?",
			account.RestrictedRoles,
			[]account.Status{account.StatusPending, account.StatusApproved}).
		Distinct().
		Pluck("role", &roles).Error
	return roles, err
}

func (r *AccountRepository) RoleOccupied(ctx context.Context, role account.Role, excludeID uint64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&account.Account{}).
		Where("role = ? AND status IN ? AND id != ?",
			role,
			[]account.Status{account.StatusPending, account.StatusApproved},
			excludeID).
		Count(&n).Error
	return n > 0, err
}

func (r *AccountRepository) ListPending(ctx context.Context) ([]account.Account, error) {
	var out []account.Account
	err := r.db.WithContext(ctx).
		Where("status = ? AND role != ?", account.StatusPending, account.RoleManager).
		Order("id DESC").
		Find(&out).Error
	return out, err
}

func (r *AccountRepository) ListApprovedRestricted(ctx context.Context) ([]account.Account, error) {
	var out []account.Account
	err := r.db.WithContext(ctx).
		Where("status = ? AND role IN ?", account.StatusApproved, account.RestrictedRoles).
		Order("role").
		Find(&out).Error
	return out, err
}
