package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/NikolasPires/mind-flow/internal/model"
	"github.com/NikolasPires/mind-flow/internal/service"
)

// TranscricaoHandler handles speech-to-text result endpoints.
type TranscricaoHandler struct {
	transcricoes service.TranscricaoService
}

// NewTranscricaoHandler creates a new transcription handler.
func NewTranscricaoHandler(transcricoes service.TranscricaoService) *TranscricaoHandler {
	return &TranscricaoHandler{transcricoes: transcricoes}
}

// CreateTranscricaoRequest represents a new transcription record.
type CreateTranscricaoRequest struct {
	ConsultaID  string `json:"consulta_id" validate:"required,uuid"`
	TextoGerado string `json:"texto_gerado"`
}

// UpdateTranscricaoRequest represents a partial transcription update.
type UpdateTranscricaoRequest struct {
	TextoGerado *string `json:"texto_gerado,omitempty"`
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=PENDENTE PROCESSANDO CONCLUIDA ERRO"`
}

// Create godoc
// @Summary Store a transcription for an appointment
// @Tags transcricoes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTranscricaoRequest true "Transcription data"
// @Success 201 {object} model.Transcricao
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /transcricoes [post]
func (h *TranscricaoHandler) Create(c echo.Context) error {
	var req CreateTranscricaoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	consultaID, err := uuid.Parse(req.ConsultaID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid appointment id")
	}

	transcricao, err := h.transcricoes.Create(c.Request().Context(), consultaID, req.TextoGerado)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusCreated, transcricao)
}

// Get godoc
// @Summary Get a transcription
// @Tags transcricoes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transcription ID"
// @Success 200 {object} model.Transcricao
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /transcricoes/{id} [get]
func (h *TranscricaoHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid transcription id")
	}

	transcricao, err := h.transcricoes.Get(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, transcricao)
}

// Update godoc
// @Summary Update a transcription
// @Tags transcricoes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transcription ID"
// @Param request body UpdateTranscricaoRequest true "Fields to change"
// @Success 200 {object} model.Transcricao
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /transcricoes/{id} [patch]
func (h *TranscricaoHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid transcription id")
	}

	var req UpdateTranscricaoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var status *model.TranscricaoStatus
	if req.Status != nil {
		s := model.TranscricaoStatus(*req.Status)
		status = &s
	}

	transcricao, err := h.transcricoes.Update(c.Request().Context(), id, req.TextoGerado, status)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, transcricao)
}

// Delete godoc
// @Summary Delete a transcription
// @Tags transcricoes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transcription ID"
// @Success 204 "No Content"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /transcricoes/{id} [delete]
func (h *TranscricaoHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid transcription id")
	}

	if err := h.transcricoes.Delete(c.Request().Context(), id); err != nil {
		return domainError(err)
	}

	return c.NoContent(http.StatusNoContent)
}
