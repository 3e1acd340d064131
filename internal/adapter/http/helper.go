package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"fleetflow-backend/internal/domain/account"
	"fleetflow-backend/internal/domain/driver"
	"fleetflow-backend/internal/domain/storage"
	"fleetflow-backend/internal/domain/trip"
	"fleetflow-backend/internal/domain/vehicle"
	"fleetflow-backend/internal/usecase/approval"
	"fleetflow-backend/internal/usecase/compliance"
	"fleetflow-backend/internal/usecase/dispatch"
	"fleetflow-backend/internal/usecase/fleet"
	ledgeruc "fleetflow-backend/internal/usecase/ledger"
)

// ---- helpers ----

func pathID(c echo.Context, name string) (uint64, error) {
	return strconv.ParseUint(c.Param(name), 10, 64)
}

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// domainStatus maps domain errors onto HTTP codes. Store-level constraint
// violations are logged as an internal-consistency failure; they mean a
// usecase validation let something through.
func domainStatus(err error) int {
	switch {
	case errors.Is(err, account.ErrNotFound),
		errors.Is(err, vehicle.ErrNotFound),
		errors.Is(err, driver.ErrNotFound),
		errors.Is(err, trip.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, account.ErrInvalidCredential),
		errors.Is(err, account.ErrNotApproved):
		return http.StatusUnauthorized
	case errors.Is(err, approval.ErrForbidden),
		errors.Is(err, account.ErrManagerProtected),
		errors.Is(err, account.ErrSelfRemoval):
		return http.StatusForbidden
	case errors.Is(err, dispatch.ErrInvalidInput),
		errors.Is(err, fleet.ErrInvalidInput),
		errors.Is(err, ledgeruc.ErrInvalidInput),
		errors.Is(err, compliance.ErrInvalidStatus),
		errors.Is(err, driver.ErrInvalidScore):
		return http.StatusUnprocessableEntity
	case errors.Is(err, trip.ErrInvalidTransition),
		errors.Is(err, trip.ErrCapacityExceeded),
		errors.Is(err, vehicle.ErrUnavailable),
		errors.Is(err, vehicle.ErrActiveTrip),
		errors.Is(err, vehicle.ErrInUse),
		errors.Is(err, vehicle.ErrDuplicatePlate),
		errors.Is(err, driver.ErrIneligible),
		errors.Is(err, driver.ErrOnActiveTrip),
		errors.Is(err, driver.ErrNotSuspended),
		errors.Is(err, driver.ErrInUse),
		errors.Is(err, driver.ErrDuplicateLicense),
		errors.Is(err, account.ErrRoleOccupied),
		errors.Is(err, account.ErrDuplicateUsername),
		errors.Is(err, account.ErrNotPending):
		return http.StatusConflict
	case errors.Is(err, storage.ErrConstraintViolation):
		log.Printf("internal consistency: %v", err)
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func jsonError(c echo.Context, err error) error {
	code := domainStatus(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		log.Printf("internal error: %v", err)
		msg = "internal error"
	}
	return c.JSON(code, ErrorResponse{Error: msg})
}
