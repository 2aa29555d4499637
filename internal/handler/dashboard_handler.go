package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/NikolasPires/mind-flow/internal/service"
)

// DashboardHandler handles the professional's dashboard endpoint.
type DashboardHandler struct {
	dashboard service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(dashboard service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Summary godoc
// @Summary Today's session count, agenda and recent patients
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.Summary
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /dashboard/summary [get]
func (h *DashboardHandler) Summary(c echo.Context) error {
	claims, err := requirePsicologo(c)
	if err != nil {
		return err
	}

	summary, err := h.dashboard.TodaySummary(c.Request().Context(), claims.UserID)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, summary)
}
