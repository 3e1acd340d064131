package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	ledgeruc "fleetflow-backend/internal/usecase/ledger"
)

type LedgerHandler struct{ uc *ledgeruc.Usecase }

func NewLedgerHandler(uc *ledgeruc.Usecase) *LedgerHandler { return &LedgerHandler{uc: uc} }

type maintenanceReq struct {
	VehicleID   uint64  `json:"vehicle_id"  validate:"required"`
	Description string  `json:"description" validate:"required"`
	Cost        float64 `json:"cost"        validate:"gte=0"`
	Date        string  `json:"date"        validate:"required,datetime=2006-01-02"`
}

// LogMaintenance appends the record and moves the vehicle to In Shop in the
// same commit.
func (h *LedgerHandler) LogMaintenance(c echo.Context) error {
	var req maintenanceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed"})
	}
	m, err := h.uc.LogMaintenance(c.Request().Context(), ledgeruc.MaintenanceInput{
		VehicleID:   req.VehicleID,
		Description: req.Description,
		Cost:        req.Cost,
		Date:        date,
	})
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, m)
}

type fuelReq struct {
	VehicleID uint64  `json:"vehicle_id" validate:"required"`
	Liters    float64 `json:"liters"     validate:"required,gt=0"`
	Cost      float64 `json:"cost"       validate:"gte=0"`
	Date      string  `json:"date"       validate:"required,datetime=2006-01-02"`
}

func (h *LedgerHandler) LogFuel(c echo.Context) error {
	var req fuelReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed"})
	}
	f, err := h.uc.LogFuel(c.Request().Context(), ledgeruc.FuelInput{
		VehicleID: req.VehicleID,
		Liters:    req.Liters,
		Cost:      req.Cost,
		Date:      date,
	})
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, f)
}

func (h *LedgerHandler) ListMaintenance(c echo.Context) error {
	entries, err := h.uc.ListMaintenance(c.Request().Context())
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, entries)
}

func (h *LedgerHandler) ListFuel(c echo.Context) error {
	entries, err := h.uc.ListFuel(c.Request().Context())
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, entries)
}
