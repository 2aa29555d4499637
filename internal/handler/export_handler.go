package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/NikolasPires/mind-flow/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler handles downloadable report endpoints.
type ExportHandler struct {
	exports service.ExportService
}

// NewExportHandler creates a new export handler.
func NewExportHandler(exports service.ExportService) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// PatientRoster godoc
// @Summary Download the professional's patient roster as a spreadsheet
// @Tags exports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} binary
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /patients/export [get]
func (h *ExportHandler) PatientRoster(c echo.Context) error {
	claims, err := requirePsicologo(c)
	if err != nil {
		return err
	}

	data, err := h.exports.PatientRosterXLSX(c.Request().Context(), claims.UserID)
	if err != nil {
		return domainError(err)
	}

	filename := fmt.Sprintf("pacientes-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Blob(http.StatusOK, xlsxContentType, data)
}
