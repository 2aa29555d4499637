package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/NikolasPires/mind-flow/internal/service"
)

// ProfileHandler handles the authenticated user's own profile.
type ProfileHandler struct {
	profiles service.ProfileService
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(profiles service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// UpdateProfileRequest represents a partial /users/me update. PhotoURL may
// carry a data URI, which is uploaded to the image provider before saving.
type UpdateProfileRequest struct {
	Name             *string `json:"name,omitempty"`
	Email            *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone            *string `json:"phone,omitempty"`
	PhotoURL         *string `json:"photo_url,omitempty"`
	Bio              *string `json:"bio,omitempty"`
	ScheduleSettings *string `json:"schedule_settings,omitempty"`
}

// Me godoc
// @Summary Get the authenticated user's profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.ProfileView
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/me [get]
func (h *ProfileHandler) Me(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	profile, err := h.profiles.Me(c.Request().Context(), claims.UserID)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, profile)
}

// UpdateMe godoc
// @Summary Update the authenticated user's profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Fields to change"
// @Success 200 {object} model.ProfileView
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/me [patch]
func (h *ProfileHandler) UpdateMe(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.profiles.UpdateMe(c.Request().Context(), claims.UserID, service.UpdateProfileRequest{
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		PhotoURL:         req.PhotoURL,
		Bio:              req.Bio,
		ScheduleSettings: req.ScheduleSettings,
	})
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, profile)
}
