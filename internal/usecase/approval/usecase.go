// Package approval implements the account approval workflow: self-registered
// accounts start pending and a manager decides them once, after which the
// status is immutable. Restricted roles admit at most one pending-or-approved
// account at a time.
package approval

import (
	"context"
	"errors"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fleetflow-backend/internal/domain/account"
	"fleetflow-backend/internal/domain/uow"
)

// ErrForbidden is the defense-in-depth check for manager-only decisions; the
// role guard middleware is the primary enforcement point.
var ErrForbidden = errors.New("caller is not permitted")

type Usecase struct {
	accounts account.Repository
	uow      uow.UnitOfWork
}

func NewUsecase(accounts account.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{accounts: accounts, uow: tx}
}

// RequestAccess creates a pending account for a restricted role. The role
// check and the insert run in one transaction so two concurrent registrations
// for the same role cannot both slip past the occupancy check.
func (u *Usecase) RequestAccess(ctx context.Context, in RegisterInput) (*AccountDTO, error) {
	if !in.Role.Restricted() {
		return nil, account.ErrRoleOccupied
	}
	username := strings.ToLower(strings.TrimSpace(in.Username))
	if username == "" {
		username = strings.ToLower(strings.TrimSpace(in.Email))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var dto *AccountDTO
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		occupied, err := r.Accounts.RoleOccupied(ctx, in.Role, 0)
		if err != nil {
			return err
		}
		if occupied {
			return account.ErrRoleOccupied
		}

		switch _, err := r.Accounts.GetByUsername(ctx, username); {
		case err == nil:
			return account.ErrDuplicateUsername
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		a := &account.Account{
			Username:     username,
			Name:         strings.TrimSpace(in.Name),
			Email:        strings.ToLower(strings.TrimSpace(in.Email)),
			PasswordHash: string(hash),
			Role:         in.Role,
			Status:       account.StatusPending,
		}
		if err := r.Accounts.Create(ctx, a); err != nil {
			return err
		}
		dto = toDTO(a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Decide moves a pending account to approved or rejected. Both outcomes are
// terminal: a decided account can never return to pending.
func (u *Usecase) Decide(ctx context.Context, actor account.Actor, accountID uint64, outcome Outcome) (*AccountDTO, error) {
	if actor.Role != account.RoleManager {
		return nil, ErrForbidden
	}

	var dto *AccountDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		a, err := r.Accounts.GetByIDForUpdate(ctx, accountID)
		if err != nil {
			return account.ErrNotFound
		}
		if a.Role == account.RoleManager {
			return account.ErrManagerProtected
		}
		if a.Status != account.StatusPending {
			return account.ErrNotPending
		}

		switch outcome {
		case OutcomeApprove:
			// The pending row itself occupies the role, so exclude it.
			occupied, err := r.Accounts.RoleOccupied(ctx, a.Role, a.ID)
			if err != nil {
				return err
			}
			if occupied {
				return account.ErrRoleOccupied
			}
			a.Status = account.StatusApproved
		case OutcomeReject:
			a.Status = account.StatusRejected
		default:
			return account.ErrNotPending
		}

		if err := r.Accounts.Save(ctx, a); err != nil {
			return err
		}
		dto = toDTO(a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Authenticate verifies the credential, then the approval gate. Pending and
// rejected accounts are refused identically to the caller; the distinction is
// kept in the audit log.
func (u *Usecase) Authenticate(ctx context.Context, in LoginInput) (*AccountDTO, error) {
	a, err := u.accounts.GetByUsername(ctx, strings.ToLower(strings.TrimSpace(in.Username)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, account.ErrInvalidCredential
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(in.Password)); err != nil {
		return nil, account.ErrInvalidCredential
	}
	if a.Status != account.StatusApproved {
		log.Printf("login refused for %q: status=%s", a.Username, a.Status)
		return nil, account.ErrNotApproved
	}
	return toDTO(a), nil
}

// AvailableRoles lists the restricted roles not yet occupied by a pending or
// approved account, for the registration form.
func (u *Usecase) AvailableRoles(ctx context.Context) ([]account.Role, error) {
	occupied, err := u.accounts.OccupiedRoles(ctx)
	if err != nil {
		return nil, err
	}
	taken := make(map[account.Role]bool, len(occupied))
	for _, r := range occupied {
		taken[r] = true
	}
	var free []account.Role
	for _, r := range account.RestrictedRoles {
		if !taken[r] {
			free = append(free, r)
		}
	}
	return free, nil
}

// Remove deletes a non-manager account. A manager can never remove itself or
// another manager.
func (u *Usecase) Remove(ctx context.Context, actor account.Actor, accountID uint64) error {
	if actor.Role != account.RoleManager {
		return ErrForbidden
	}
	if actor.AccountID == accountID {
		return account.ErrSelfRemoval
	}
	a, err := u.accounts.GetByID(ctx, accountID)
	if err != nil {
		return account.ErrNotFound
	}
	if a.Role == account.RoleManager {
		return account.ErrManagerProtected
	}
	return u.accounts.Delete(ctx, accountID)
}
