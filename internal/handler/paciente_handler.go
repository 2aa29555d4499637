package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/NikolasPires/mind-flow/internal/model"
	"github.com/NikolasPires/mind-flow/internal/service"
)

// PacienteHandler handles patient profile mutation endpoints.
type PacienteHandler struct {
	pacientes service.PacienteService
}

// NewPacienteHandler creates a new patient handler.
func NewPacienteHandler(pacientes service.PacienteService) *PacienteHandler {
	return &PacienteHandler{pacientes: pacientes}
}

// UpdatePacienteRequest represents a partial patient update. Absent fields
// are left unchanged.
type UpdatePacienteRequest struct {
	Name                *string `json:"name,omitempty"`
	Email               *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone               *string `json:"phone,omitempty"`
	History             *string `json:"history,omitempty"`
	InitialObservations *string `json:"initial_observations,omitempty"`
	Status              *string `json:"status,omitempty" validate:"omitempty,oneof=ATIVO ACOMPANHAMENTO ALTA INATIVO"`
}

// Update godoc
// @Summary Update a patient profile
// @Tags patients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Patient ID"
// @Param request body UpdatePacienteRequest true "Fields to change"
// @Success 200 {object} model.PacienteView
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /patients/{id} [patch]
func (h *PacienteHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}

	var req UpdatePacienteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	update := service.UpdatePacienteRequest{
		Name:                req.Name,
		Email:               req.Email,
		Phone:               req.Phone,
		History:             req.History,
		InitialObservations: req.InitialObservations,
	}
	if req.Status != nil {
		status := model.PatientStatus(*req.Status)
		update.Status = &status
	}

	view, err := h.pacientes.Update(c.Request().Context(), id, update)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, view)
}
