package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/NikolasPires/mind-flow/internal/model"
	"github.com/NikolasPires/mind-flow/internal/service"
)

// UserHandler handles registration and patient roster endpoints.
type UserHandler struct {
	registration service.RegistrationService
	pacientes    service.PacienteService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(registration service.RegistrationService, pacientes service.PacienteService) *UserHandler {
	return &UserHandler{registration: registration, pacientes: pacientes}
}

// RegisterPacienteRequest represents a patient self-registration request.
type RegisterPacienteRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	CPF      string `json:"cpf" validate:"required"`
	Gender   string `json:"gender" validate:"required,oneof=MASCULINO FEMININO OUTRO"`
	Phone    string `json:"phone"`
}

// RegisterPsicologoRequest represents a professional registration request.
type RegisterPsicologoRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	CRP      string `json:"crp" validate:"required"`
}

// RegisterPaciente godoc
// @Summary Register a new patient account
// @Tags users
// @Accept json
// @Produce json
// @Param request body RegisterPacienteRequest true "Registration data"
// @Success 201 {object} model.UserView
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/paciente [post]
func (h *UserHandler) RegisterPaciente(c echo.Context) error {
	var req RegisterPacienteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.registration.RegisterPaciente(c.Request().Context(), service.RegisterPacienteRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		CPF:      req.CPF,
		Gender:   model.Gender(req.Gender),
		Phone:    req.Phone,
	})
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusCreated, user)
}

// RegisterPsicologo godoc
// @Summary Register a new professional account
// @Tags users
// @Accept json
// @Produce json
// @Param request body RegisterPsicologoRequest true "Registration data"
// @Success 201 {object} model.UserView
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/psicologo [post]
func (h *UserHandler) RegisterPsicologo(c echo.Context) error {
	var req RegisterPsicologoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.registration.RegisterPsicologo(c.Request().Context(), service.RegisterPsicologoRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		CRP:      req.CRP,
	})
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusCreated, user)
}

// CreatePatient godoc
// @Summary Register a patient under the authenticated professional
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RegisterPacienteRequest true "Registration data"
// @Success 201 {object} model.UserView
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/patients [post]
func (h *UserHandler) CreatePatient(c echo.Context) error {
	claims, err := requirePsicologo(c)
	if err != nil {
		return err
	}

	var req RegisterPacienteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.registration.RegisterPacienteWithPsicologo(c.Request().Context(), service.RegisterPacienteRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		CPF:      req.CPF,
		Gender:   model.Gender(req.Gender),
		Phone:    req.Phone,
	}, claims.UserID)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusCreated, user)
}

// ListPatients godoc
// @Summary List the authenticated professional's patients
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.PacienteView
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/patients [get]
func (h *UserHandler) ListPatients(c echo.Context) error {
	claims, err := requirePsicologo(c)
	if err != nil {
		return err
	}

	views, err := h.pacientes.List(c.Request().Context(), claims.UserID)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, views)
}

// GetPatient godoc
// @Summary Get a patient's full profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "Patient ID"
// @Success 200 {object} model.PacienteDetails
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/paciente/{id} [get]
func (h *UserHandler) GetPatient(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}

	details, err := h.pacientes.GetProfile(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, details)
}
