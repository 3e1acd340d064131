package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fleetflow-backend/internal/domain/driver"
	"fleetflow-backend/internal/usecase/compliance"
	"fleetflow-backend/internal/usecase/fleet"
)

type DriverHandler struct {
	fleet      *fleet.Usecase
	compliance *compliance.Usecase
}

func NewDriverHandler(f *fleet.Usecase, c *compliance.Usecase) *DriverHandler {
	return &DriverHandler{fleet: f, compliance: c}
}

type driverReq struct {
	Name              string `json:"name"                validate:"required"`
	LicenseNumber     string `json:"license_number"      validate:"required"`
	LicenseExpiryDate string `json:"license_expiry_date" validate:"required,datetime=2006-01-02"`
	Status            string `json:"status"              validate:"driverstatus"`
	SafetyScore       *int   `json:"safety_score"        validate:"omitempty,gte=0,lte=100"`
}

func (r driverReq) input() (fleet.DriverInput, error) {
	expiry, err := parseDate(r.LicenseExpiryDate)
	if err != nil {
		return fleet.DriverInput{}, err
	}
	return fleet.DriverInput{
		Name:              r.Name,
		LicenseNumber:     r.LicenseNumber,
		LicenseExpiryDate: expiry,
		Status:            driver.Status(r.Status),
		SafetyScore:       r.SafetyScore,
	}, nil
}

func (h *DriverHandler) bind(c echo.Context) (fleet.DriverInput, bool, error) {
	var req driverReq
	if err := c.Bind(&req); err != nil {
		return fleet.DriverInput{}, false, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return fleet.DriverInput{}, false, c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	in, err := req.input()
	if err != nil {
		return fleet.DriverInput{}, false, c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Details: []FieldError{{Field: "license_expiry_date", Message: "must be a date in YYYY-MM-DD form"}},
			Error:   "validation failed",
		})
	}
	return in, true, nil
}

func (h *DriverHandler) Create(c echo.Context) error {
	in, ok, resp := h.bind(c)
	if !ok {
		return resp
	}
	d, err := h.fleet.CreateDriver(c.Request().Context(), in)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, d)
}

func (h *DriverHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid driver id"})
	}
	in, ok, resp := h.bind(c)
	if !ok {
		return resp
	}
	d, err := h.fleet.UpdateDriver(c.Request().Context(), id, in)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *DriverHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid driver id"})
	}
	d, err := h.fleet.GetDriver(c.Request().Context(), id)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

// List supports ?eligible=true for the dispatcher's assignment picker.
func (h *DriverHandler) List(c echo.Context) error {
	eligibleOnly := c.QueryParam("eligible") == "true"
	ds, err := h.fleet.ListDrivers(c.Request().Context(), eligibleOnly)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, ds)
}

func (h *DriverHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid driver id"})
	}
	if err := h.fleet.DeleteDriver(c.Request().Context(), id); err != nil {
		return jsonError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *DriverHandler) Suspend(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid driver id"})
	}
	d, err := h.compliance.Suspend(c.Request().Context(), id)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *DriverHandler) Reactivate(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid driver id"})
	}
	d, err := h.compliance.Reactivate(c.Request().Context(), id)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

type profileReq struct {
	SafetyScore int    `json:"safety_score" validate:"gte=0,lte=100"`
	Status      string `json:"status"       validate:"required"`
}

// UpdateProfile is the safety officer's combined score + status write.
func (h *DriverHandler) UpdateProfile(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid driver id"})
	}
	var req profileReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	d, err := h.compliance.UpdateProfile(c.Request().Context(), id, req.SafetyScore, driver.Status(req.Status))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, d)
}
