package account

import (
	"errors"
	"time"
)

type Role string

const (
	RoleManager          Role = "Manager"
	RoleDispatcher       Role = "Dispatcher"
	RoleSafetyOfficer    Role = "Safety Officer"
	RoleFinancialAnalyst Role = "Financial Analyst"
)

// RestrictedRoles are the roles limited to at most one pending-or-approved
// account at a time. Manager is seeded and never self-registered.
var RestrictedRoles = []Role{RoleDispatcher, RoleSafetyOfficer, RoleFinancialAnalyst}

func (r Role) Restricted() bool {
	for _, rr := range RestrictedRoles {
		if r == rr {
			return true
		}
	}
	return false
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

var (
	ErrNotFound          = errors.New("account not found")
	ErrDuplicateUsername = errors.New("username already registered")
	ErrRoleOccupied      = errors.New("role already occupied")
	ErrNotPending        = errors.New("account is not pending")
	ErrInvalidCredential = errors.New("invalid username or password")
	ErrNotApproved       = errors.New("account is not approved")
	ErrManagerProtected  = errors.New("manager account cannot be modified")
	ErrSelfRemoval       = errors.New("account cannot remove itself")
)

// Actor identifies the authenticated caller of a core operation. It is built
// by the auth middleware from the verified token and passed explicitly; no
// ambient session state exists below the HTTP layer.
type Actor struct {
	AccountID uint64
	Role      Role
}

type Account struct {
	ID           uint64    `gorm:"primaryKey;column:id" json:"id"`
	Username     string    `gorm:"size:255;not null;uniqueIndex:ux_users_username" json:"username"`
	Name         string    `gorm:"size:255" json:"name"`
	Email        string    `gorm:"size:255" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;size:255;not null" json:"-"`
	Role         Role      `gorm:"type:enum('Manager','Dispatcher','Safety Officer','Financial Analyst');not null" json:"role"`
	Status       Status    `gorm:"type:enum('pending','approved','rejected');default:'pending';not null;index" json:"status"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Account) TableName() string { return "users" }
