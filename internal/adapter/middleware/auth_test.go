package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"fleetflow-backend/internal/domain/account"
	"fleetflow-backend/pkg/token"
)

const testSecret = "unit-test-secret"

func doAuth(t *testing.T, authz string, mws ...echo.MiddlewareFunc) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()

	handlerHit := false
	h := func(c echo.Context) error {
		handlerHit = true
		return c.NoContent(http.StatusOK)
	}
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authz != "" {
		req.Header.Set(echo.HeaderAuthorization, authz)
	}
	rec := httptest.NewRecorder()
	if err := h(e.NewContext(req, rec)); err != nil {
		t.Fatalf("middleware chain: %v", err)
	}
	return rec, handlerHit
}

func TestRequireAuth(t *testing.T) {
	tok, err := token.Generate(testSecret, 7, string(account.RoleDispatcher), "test", time.Minute)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	t.Run("valid bearer token passes and sets the actor", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+tok)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		var actor account.Actor
		next := func(c echo.Context) error {
			var ok bool
			actor, ok = ActorFrom(c)
			if !ok {
				t.Fatalf("actor not set")
			}
			return c.NoContent(http.StatusOK)
		}
		if err := RequireAuth(testSecret)(next)(c); err != nil {
			t.Fatalf("RequireAuth: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if actor.AccountID != 7 || actor.Role != account.RoleDispatcher {
			t.Fatalf("unexpected actor: %+v", actor)
		}
	})

	t.Run("missing header", func(t *testing.T) {
		rec, hit := doAuth(t, "", RequireAuth(testSecret))
		if rec.Code != http.StatusUnauthorized || hit {
			t.Fatalf("status = %d hit=%v, want 401 and no handler", rec.Code, hit)
		}
	})

	t.Run("not a bearer scheme", func(t *testing.T) {
		rec, hit := doAuth(t, "Basic dXNlcjpwYXNz", RequireAuth(testSecret))
		if rec.Code != http.StatusUnauthorized || hit {
			t.Fatalf("status = %d hit=%v, want 401 and no handler", rec.Code, hit)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		rec, hit := doAuth(t, "Bearer "+tok, RequireAuth("other-secret"))
		if rec.Code != http.StatusUnauthorized || hit {
			t.Fatalf("status = %d hit=%v, want 401 and no handler", rec.Code, hit)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		old, err := token.Generate(testSecret, 7, string(account.RoleDispatcher), "test", -time.Minute)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		rec, hit := doAuth(t, "Bearer "+old, RequireAuth(testSecret))
		if rec.Code != http.StatusUnauthorized || hit {
			t.Fatalf("status = %d hit=%v, want 401 and no handler", rec.Code, hit)
		}
	})
}

func TestRequireRoles(t *testing.T) {
	dispatcherTok, _ := token.Generate(testSecret, 7, string(account.RoleDispatcher), "test", time.Minute)

	t.Run("allowed role passes", func(t *testing.T) {
		rec, hit := doAuth(t, "Bearer "+dispatcherTok,
			RequireAuth(testSecret), RequireRoles(account.RoleManager, account.RoleDispatcher))
		if rec.Code != http.StatusOK || !hit {
			t.Fatalf("status = %d hit=%v, want 200 and handler hit", rec.Code, hit)
		}
	})

	t.Run("role outside the allow list", func(t *testing.T) {
		rec, hit := doAuth(t, "Bearer "+dispatcherTok,
			RequireAuth(testSecret), RequireRoles(account.RoleManager))
		if rec.Code != http.StatusForbidden || hit {
			t.Fatalf("status = %d hit=%v, want 403 and no handler", rec.Code, hit)
		}
	})

	t.Run("without auth middleware first", func(t *testing.T) {
		rec, hit := doAuth(t, "", RequireRoles(account.RoleManager))
		if rec.Code != http.StatusUnauthorized || hit {
			t.Fatalf("status = %d hit=%v, want 401 and no handler", rec.Code, hit)
		}
	})
}
