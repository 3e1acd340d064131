package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"fleetflow-backend/internal/domain/account"
	"fleetflow-backend/pkg/token"
)

const actorKey = "actor"

// RequireAuth validates the bearer token and stores the caller as an
// account.Actor in the request context. Everything below the HTTP layer
// receives the actor explicitly; there is no ambient session state.
func RequireAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Request().Header.Get(echo.HeaderAuthorization)
			if h == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing Authorization header"})
			}
			parts := strings.SplitN(h, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "expected: Bearer <token>"})
			}
			accountID, role, err := token.Parse(secret, strings.TrimSpace(parts[1]))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid or expired token"})
			}
			c.Set(actorKey, account.Actor{AccountID: accountID, Role: account.Role(role)})
			return next(c)
		}
	}
}

// RequireRoles refuses callers whose role is not in the allow list. Must run
// after RequireAuth.
func RequireRoles(roles ...account.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := ActorFrom(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
			}
			for _, r := range roles {
				if actor.Role == r {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, map[string]string{"error": "role not permitted for this action"})
		}
	}
}

func ActorFrom(c echo.Context) (account.Actor, bool) {
	actor, ok := c.Get(actorKey).(account.Actor)
	return actor, ok
}
