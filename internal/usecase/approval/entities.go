package approval

import (
	"time"

	"fleetflow-backend/internal/domain/account"
)

type RegisterInput struct {
	Name     string
	Email    string
	Username string // defaults to Email when empty, matching the login form
	Password string
	Role     account.Role
}

type Outcome string

const (
	OutcomeApprove Outcome = "approve"
	OutcomeReject  Outcome = "reject"
)

type LoginInput struct {
	Username string // username or email
	Password string
}

type AccountDTO struct {
	ID        uint64         `json:"id"`
	Username  string         `json:"username"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Role      account.Role   `json:"role"`
	Status    account.Status `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
}

func toDTO(a *account.Account) *AccountDTO {
	return &AccountDTO{
		ID:        a.ID,
		Username:  a.Username,
		Name:      a.Name,
		Email:     a.Email,
		Role:      a.Role,
		Status:    a.Status,
		CreatedAt: a.CreatedAt,
	}
}
