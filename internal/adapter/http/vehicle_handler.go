package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fleetflow-backend/internal/domain/vehicle"
	"fleetflow-backend/internal/usecase/fleet"
)

type VehicleHandler struct{ uc *fleet.Usecase }

func NewVehicleHandler(uc *fleet.Usecase) *VehicleHandler { return &VehicleHandler{uc: uc} }

type vehicleReq struct {
	ModelName     string  `json:"model_name"      validate:"required"`
	LicensePlate  string  `json:"license_plate"   validate:"required"`
	MaxCapacityKg float64 `json:"max_capacity_kg" validate:"required,gt=0"`
	Odometer      int64   `json:"odometer"        validate:"gte=0"`
	Status        string  `json:"status"          validate:"vehiclestatus"`
}

func (r vehicleReq) input() fleet.VehicleInput {
	return fleet.VehicleInput{
		ModelName:     r.ModelName,
		LicensePlate:  r.LicensePlate,
		MaxCapacityKg: r.MaxCapacityKg,
		Odometer:      r.Odometer,
		Status:        vehicle.Status(r.Status),
	}
}

func (h *VehicleHandler) Create(c echo.Context) error {
	var req vehicleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	v, err := h.uc.CreateVehicle(c.Request().Context(), req.input())
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, v)
}

func (h *VehicleHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid vehicle id"})
	}
	var req vehicleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	v, err := h.uc.UpdateVehicle(c.Request().Context(), id, req.input())
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, v)
}

func (h *VehicleHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid vehicle id"})
	}
	v, err := h.uc.GetVehicle(c.Request().Context(), id)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, v)
}

func (h *VehicleHandler) List(c echo.Context) error {
	vs, err := h.uc.ListVehicles(c.Request().Context())
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, vs)
}

func (h *VehicleHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid vehicle id"})
	}
	if err := h.uc.DeleteVehicle(c.Request().Context(), id); err != nil {
		return jsonError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Restore returns an In Shop vehicle to service (manager only).
func (h *VehicleHandler) Restore(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid vehicle id"})
	}
	v, err := h.uc.RestoreVehicle(c.Request().Context(), id)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, v)
}
