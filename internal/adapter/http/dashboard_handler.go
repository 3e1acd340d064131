package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fleetflow-backend/internal/usecase/dashboard"
)

type DashboardHandler struct{ uc *dashboard.Usecase }

func NewDashboardHandler(uc *dashboard.Usecase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

func (h *DashboardHandler) Manager(c echo.Context) error {
	view, err := h.uc.Manager(c.Request().Context())
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

func (h *DashboardHandler) Safety(c echo.Context) error {
	view, err := h.uc.Safety(c.Request().Context())
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

func (h *DashboardHandler) Financial(c echo.Context) error {
	view, err := h.uc.Financial(c.Request().Context())
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, view)
}
