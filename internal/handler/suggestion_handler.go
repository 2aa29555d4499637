package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/NikolasPires/mind-flow/internal/suggest"
)

// SuggestionHandler handles AI suggestion generation.
type SuggestionHandler struct {
	generator suggest.Generator
}

// NewSuggestionHandler creates a new suggestion handler.
func NewSuggestionHandler(generator suggest.Generator) *SuggestionHandler {
	return &SuggestionHandler{generator: generator}
}

// SuggestionRequest represents a suggestion generation request.
type SuggestionRequest struct {
	Transcript string `json:"transcript" validate:"required"`
	Anotacoes  string `json:"anotacoes"`
}

// SuggestionResponse represents the generated suggestion.
type SuggestionResponse struct {
	Suggestion string `json:"suggestion"`
}

// Generate godoc
// @Summary Generate a session suggestion from a transcript
// @Tags suggestions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SuggestionRequest true "Transcript and notes"
// @Success 200 {object} SuggestionResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /suggestions [post]
func (h *SuggestionHandler) Generate(c echo.Context) error {
	if _, err := requirePsicologo(c); err != nil {
		return err
	}

	var req SuggestionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	suggestion, err := h.generator.Generate(c.Request().Context(), req.Transcript, req.Anotacoes)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, SuggestionResponse{Suggestion: suggestion})
}
