package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fleetflow-backend/internal/adapter/middleware"
	"fleetflow-backend/internal/usecase/approval"
)

type AccountHandler struct{ uc *approval.Usecase }

func NewAccountHandler(uc *approval.Usecase) *AccountHandler { return &AccountHandler{uc: uc} }

func (h *AccountHandler) decide(c echo.Context, outcome approval.Outcome) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "not authenticated"})
	}
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid account id"})
	}
	dto, err := h.uc.Decide(c.Request().Context(), actor, id, outcome)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *AccountHandler) Approve(c echo.Context) error {
	return h.decide(c, approval.OutcomeApprove)
}

func (h *AccountHandler) Reject(c echo.Context) error {
	return h.decide(c, approval.OutcomeReject)
}

func (h *AccountHandler) Remove(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "not authenticated"})
	}
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid account id"})
	}
	if err := h.uc.Remove(c.Request().Context(), actor, id); err != nil {
		return jsonError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
