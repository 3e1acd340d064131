package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"fleetflow-backend/internal/domain/account"
	"fleetflow-backend/internal/usecase/approval"
	"fleetflow-backend/pkg/token"
)

type AuthHandler struct {
	uc        *approval.Usecase
	jwtSecret string
	jwtIssuer string
	jwtTTL    time.Duration
}

func NewAuthHandler(uc *approval.Usecase, jwtSecret, jwtIssuer string, jwtTTL time.Duration) *AuthHandler {
	return &AuthHandler{uc: uc, jwtSecret: jwtSecret, jwtIssuer: jwtIssuer, jwtTTL: jwtTTL}
}

type registerReq struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role"     validate:"required,oneof=Dispatcher 'Safety Officer' 'Financial Analyst'"`
}

// Register submits an access request; the account stays pending until a
// manager decides it.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.RequestAccess(c.Request().Context(), approval.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     account.Role(req.Role),
	})
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type loginReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResp struct {
	Token   string              `json:"token"`
	Account *approval.AccountDTO `json:"account"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Authenticate(c.Request().Context(), approval.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return jsonError(c, err)
	}
	tok, err := token.Generate(h.jwtSecret, dto.ID, string(dto.Role), h.jwtIssuer, h.jwtTTL)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, loginResp{Token: tok, Account: dto})
}

// AvailableRoles lists the restricted roles still open for registration.
func (h *AuthHandler) AvailableRoles(c echo.Context) error {
	roles, err := h.uc.AvailableRoles(c.Request().Context())
	if err != nil {
		return jsonError(c, err)
	}
	if roles == nil {
		roles = []account.Role{}
	}
	return c.JSON(http.StatusOK, map[string]any{"available_roles": roles})
}
