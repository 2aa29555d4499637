package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/NikolasPires/mind-flow/internal/model"
	"github.com/NikolasPires/mind-flow/internal/service"
)

// ConsultaHandler handles appointment endpoints.
type ConsultaHandler struct {
	consultas service.ConsultaService
}

// NewConsultaHandler creates a new appointment handler.
func NewConsultaHandler(consultas service.ConsultaService) *ConsultaHandler {
	return &ConsultaHandler{consultas: consultas}
}

// CreateConsultaRequest represents a new appointment.
type CreateConsultaRequest struct {
	PacienteID  string     `json:"paciente_id" validate:"required,uuid"`
	Horario     time.Time  `json:"horario" validate:"required"`
	Tipo        string     `json:"tipo" validate:"required"`
	Categoria   string     `json:"categoria"`
	Tags        model.Tags `json:"tags"`
	Status      string     `json:"status" validate:"omitempty,oneof=A_CONFIRMAR CONFIRMADO CANCELADO CONCLUIDA"`
	Anotacoes   string     `json:"anotacoes"`
	Transcricao string     `json:"transcricao"`
	SugestaoIA  string     `json:"sugestao_IA"`
}

// UpdateConsultaRequest represents a partial appointment update.
type UpdateConsultaRequest struct {
	Horario     *time.Time  `json:"horario,omitempty"`
	Tipo        *string     `json:"tipo,omitempty"`
	Categoria   *string     `json:"categoria,omitempty"`
	Tags        *model.Tags `json:"tags,omitempty"`
	Status      *string     `json:"status,omitempty" validate:"omitempty,oneof=A_CONFIRMAR CONFIRMADO CANCELADO CONCLUIDA"`
	Anotacoes   *string     `json:"anotacoes,omitempty"`
	Transcricao *string     `json:"transcricao,omitempty"`
	SugestaoIA  *string     `json:"sugestao_IA,omitempty"`
}

// Create godoc
// @Summary Schedule an appointment
// @Tags consultas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateConsultaRequest true "Appointment data"
// @Success 201 {object} model.Consulta
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /consultas [post]
func (h *ConsultaHandler) Create(c echo.Context) error {
	var req CreateConsultaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	pacienteID, err := uuid.Parse(req.PacienteID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}

	consulta, err := h.consultas.Create(c.Request().Context(), service.CreateConsultaRequest{
		PacienteID:  pacienteID,
		Horario:     req.Horario,
		Tipo:        req.Tipo,
		Categoria:   req.Categoria,
		Tags:        req.Tags,
		Status:      model.ConsultaStatus(req.Status),
		Anotacoes:   req.Anotacoes,
		Transcricao: req.Transcricao,
		SugestaoIA:  req.SugestaoIA,
	})
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusCreated, consulta)
}

// Get godoc
// @Summary Get an appointment
// @Tags consultas
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} model.Consulta
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /consultas/{id} [get]
func (h *ConsultaHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid appointment id")
	}

	consulta, err := h.consultas.Get(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, consulta)
}

// Update godoc
// @Summary Update an appointment
// @Tags consultas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Param request body UpdateConsultaRequest true "Fields to change"
// @Success 200 {object} model.Consulta
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /consultas/{id} [patch]
func (h *ConsultaHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid appointment id")
	}

	var req UpdateConsultaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	update := service.UpdateConsultaRequest{
		Horario:     req.Horario,
		Tipo:        req.Tipo,
		Categoria:   req.Categoria,
		Tags:        req.Tags,
		Anotacoes:   req.Anotacoes,
		Transcricao: req.Transcricao,
		SugestaoIA:  req.SugestaoIA,
	}
	if req.Status != nil {
		status := model.ConsultaStatus(*req.Status)
		update.Status = &status
	}

	consulta, err := h.consultas.Update(c.Request().Context(), id, update)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, consulta)
}

// Delete godoc
// @Summary Delete an appointment
// @Tags consultas
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 204 "No Content"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /consultas/{id} [delete]
func (h *ConsultaHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid appointment id")
	}

	if err := h.consultas.Delete(c.Request().Context(), id); err != nil {
		return domainError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListByPaciente godoc
// @Summary List a patient's appointments
// @Tags consultas
// @Produce json
// @Security BearerAuth
// @Param id path string true "Patient ID"
// @Success 200 {array} model.Consulta
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /patients/{id}/consultas [get]
func (h *ConsultaHandler) ListByPaciente(c echo.Context) error {
	pacienteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}

	consultas, err := h.consultas.ListByPaciente(c.Request().Context(), pacienteID)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, consultas)
}
