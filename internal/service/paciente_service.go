package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/NikolasPires/mind-flow/internal/encryption"
	apperrors "github.com/NikolasPires/mind-flow/internal/errors"
	"github.com/NikolasPires/mind-flow/internal/mapper"
	"github.com/NikolasPires/mind-flow/internal/model"
	"github.com/NikolasPires/mind-flow/internal/repository"
)

// UpdatePacienteRequest carries the mutable plaintext patient fields. Nil
// pointers mean "leave unchanged".
type UpdatePacienteRequest struct {
	Name                *string
	Email               *string
	Phone               *string
	History             *string
	InitialObservations *string
	Status              *model.PatientStatus
}

// PacienteService exposes patient profile operations.
type PacienteService interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*model.PacienteDetails, error)
	List(ctx context.Context, psicologoID uuid.UUID) ([]model.PacienteView, error)
	Update(ctx context.Context, id uuid.UUID, req UpdatePacienteRequest) (*model.PacienteView, error)
}

type pacienteService struct {
	users     repository.UserRepository
	pacientes repository.PacienteRepository
	enc       *encryption.Service
	pacMap    *mapper.PacienteMapper
	logger    *zap.Logger
}

// NewPacienteService creates a new patient service.
func NewPacienteService(
	users repository.UserRepository,
	pacientes repository.PacienteRepository,
	enc *encryption.Service,
	pacMap *mapper.PacienteMapper,
	logger *zap.Logger,
) PacienteService {
	return &pacienteService{
		users:     users,
		pacientes: pacientes,
		enc:       enc,
		pacMap:    pacMap,
		logger:    logger,
	}
}

// GetProfile returns the full decrypted patient page: owner, responsible
// professional and appointment history. A patient row without its owning
// user is a data integrity fault, not a 404.
func (s *pacienteService) GetProfile(ctx context.Context, id uuid.UUID) (*model.PacienteDetails, error) {
	paciente, err := s.pacientes.FindDetails(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPatientNotFound
		}
		return nil, fmt.Errorf("load paciente: %w", err)
	}
	return s.pacMap.ToDetails(paciente)
}

// List returns the decrypted roster of patients managed by a professional.
// A row whose owning user is missing is logged and skipped rather than
// failing the whole roster.
func (s *pacienteService) List(ctx context.Context, psicologoID uuid.UUID) ([]model.PacienteView, error) {
	pacientes, err := s.pacientes.ListByPsicologo(ctx, psicologoID)
	if err != nil {
		return nil, fmt.Errorf("list pacientes: %w", err)
	}

	views := make([]model.PacienteView, 0, len(pacientes))
	for i := range pacientes {
		view, err := s.pacMap.ToViewWithUser(&pacientes[i])
		if err != nil {
			s.logger.Error("skipping paciente without owner", zap.String("user_id", pacientes[i].UserID.String()), zap.Error(err))
			continue
		}
		views = append(views, *view)
	}
	return views, nil
}

// Update applies a partial patient update, re-encrypting every changed PII
// field and refreshing the email fingerprint when the email changes.
func (s *pacienteService) Update(ctx context.Context, id uuid.UUID, req UpdatePacienteRequest) (*model.PacienteView, error) {
	if _, err := s.pacientes.FindByUserID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPatientNotFound
		}
		return nil, fmt.Errorf("load paciente: %w", err)
	}

	userFields := map[string]interface{}{}
	if req.Name != nil {
		ct, err := s.enc.Encrypt(*req.Name)
		if err != nil {
			return nil, fmt.Errorf("encrypt name: %w", err)
		}
		userFields["name"] = ct
	}
	if req.Email != nil {
		ct, err := s.enc.Encrypt(*req.Email)
		if err != nil {
			return nil, fmt.Errorf("encrypt email: %w", err)
		}
		userFields["email"] = ct
		userFields["email_hash"] = s.enc.Fingerprint(*req.Email)
	}
	if req.Phone != nil {
		ct, err := s.enc.Encrypt(*req.Phone)
		if err != nil {
			return nil, fmt.Errorf("encrypt phone: %w", err)
		}
		userFields["phone"] = ct
	}

	pacienteFields := map[string]interface{}{}
	if req.History != nil {
		ct, err := s.enc.Encrypt(*req.History)
		if err != nil {
			return nil, fmt.Errorf("encrypt history: %w", err)
		}
		pacienteFields["history"] = ct
	}
	if req.InitialObservations != nil {
		ct, err := s.enc.Encrypt(*req.InitialObservations)
		if err != nil {
			return nil, fmt.Errorf("encrypt initial observations: %w", err)
		}
		pacienteFields["initial_observations"] = ct
	}
	if req.Status != nil {
		pacienteFields["status"] = *req.Status
	}

	if len(userFields) > 0 {
		if err := s.users.UpdateFields(ctx, id, userFields); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, apperrors.ErrEmailTaken
			}
			return nil, fmt.Errorf("update user: %w", err)
		}
	}
	if len(pacienteFields) > 0 {
		if err := s.pacientes.UpdateFields(ctx, id, pacienteFields); err != nil {
			return nil, fmt.Errorf("update paciente: %w", err)
		}
	}

	updated, err := s.pacientes.FindByUserID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload paciente: %w", err)
	}
	return s.pacMap.ToViewWithUser(updated)
}
