package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fleetflow-backend/internal/usecase/dispatch"
)

type TripHandler struct{ uc *dispatch.Usecase }

func NewTripHandler(uc *dispatch.Usecase) *TripHandler { return &TripHandler{uc: uc} }

type tripReq struct {
	VehicleID   uint64  `json:"vehicle_id"   validate:"required"`
	DriverID    uint64  `json:"driver_id"    validate:"required"`
	CargoWeight float64 `json:"cargo_weight" validate:"required,gt=0"`
	Origin      string  `json:"origin"       validate:"required"`
	Destination string  `json:"destination"  validate:"required"`
}

func (h *TripHandler) Create(c echo.Context) error {
	var req tripReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.CreateTrip(c.Request().Context(), dispatch.CreateTripInput{
		VehicleID:   req.VehicleID,
		DriverID:    req.DriverID,
		CargoWeight: req.CargoWeight,
		Origin:      req.Origin,
		Destination: req.Destination,
	})
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *TripHandler) transition(c echo.Context, do func(ctx echo.Context, id uint64) (*dispatch.TripDTO, error)) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid trip id"})
	}
	dto, err := do(c, id)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *TripHandler) Dispatch(c echo.Context) error {
	return h.transition(c, func(c echo.Context, id uint64) (*dispatch.TripDTO, error) {
		return h.uc.Dispatch(c.Request().Context(), id)
	})
}

func (h *TripHandler) Complete(c echo.Context) error {
	return h.transition(c, func(c echo.Context, id uint64) (*dispatch.TripDTO, error) {
		return h.uc.Complete(c.Request().Context(), id)
	})
}

func (h *TripHandler) Cancel(c echo.Context) error {
	return h.transition(c, func(c echo.Context, id uint64) (*dispatch.TripDTO, error) {
		return h.uc.Cancel(c.Request().Context(), id)
	})
}

func (h *TripHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid trip id"})
	}
	dto, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *TripHandler) List(c echo.Context) error {
	trips, err := h.uc.List(c.Request().Context())
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, trips)
}
