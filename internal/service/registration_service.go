package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/NikolasPires/mind-flow/internal/encryption"
	apperrors "github.com/NikolasPires/mind-flow/internal/errors"
	"github.com/NikolasPires/mind-flow/internal/mapper"
	"github.com/NikolasPires/mind-flow/internal/model"
	"github.com/NikolasPires/mind-flow/internal/repository"
)

const bcryptCost = 10

// RegisterPacienteRequest carries the plaintext registration payload.
type RegisterPacienteRequest struct {
	Name     string
	Email    string
	Password string
	CPF      string
	Gender   model.Gender
	Phone    string
}

// RegisterPsicologoRequest carries the professional registration payload.
type RegisterPsicologoRequest struct {
	Name     string
	Email    string
	Password string
	CRP      string
}

// RegistrationService creates User plus role profile pairs, enforcing
// uniqueness of the email and CPF fingerprints before any row is written.
type RegistrationService interface {
	RegisterPaciente(ctx context.Context, req RegisterPacienteRequest) (*model.UserView, error)
	RegisterPacienteWithPsicologo(ctx context.Context, req RegisterPacienteRequest, psicologoID uuid.UUID) (*model.UserView, error)
	RegisterPsicologo(ctx context.Context, req RegisterPsicologoRequest) (*model.UserView, error)
}

type registrationService struct {
	users      repository.UserRepository
	pacientes  repository.PacienteRepository
	psicologos repository.PsicologoRepository
	enc        *encryption.Service
	userMap    *mapper.UserMapper
	pacMap     *mapper.PacienteMapper
	psiMap     *mapper.PsicologoMapper
}

// NewRegistrationService creates a new registration service.
func NewRegistrationService(
	users repository.UserRepository,
	pacientes repository.PacienteRepository,
	psicologos repository.PsicologoRepository,
	enc *encryption.Service,
	userMap *mapper.UserMapper,
	pacMap *mapper.PacienteMapper,
	psiMap *mapper.PsicologoMapper,
) RegistrationService {
	return &registrationService{
		users:      users,
		pacientes:  pacientes,
		psicologos: psicologos,
		enc:        enc,
		userMap:    userMap,
		pacMap:     pacMap,
		psiMap:     psiMap,
	}
}

// RegisterPaciente runs the patient registration state machine: email
// fingerprint check, CPF fingerprint check, password hash, encrypt, persist
// User+Paciente as one unit, return the plaintext view of the created user.
func (s *registrationService) RegisterPaciente(ctx context.Context, req RegisterPacienteRequest) (*model.UserView, error) {
	return s.registerPaciente(ctx, req, nil)
}

// RegisterPacienteWithPsicologo is the professional-initiated variant: the
// caller must be a registered psicologo and becomes the patient's
// responsible professional.
func (s *registrationService) RegisterPacienteWithPsicologo(ctx context.Context, req RegisterPacienteRequest, psicologoID uuid.UUID) (*model.UserView, error) {
	exists, err := s.psicologos.Exists(ctx, psicologoID)
	if err != nil {
		return nil, fmt.Errorf("check psicologo: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrNotPsicologo
	}
	return s.registerPaciente(ctx, req, &psicologoID)
}

func (s *registrationService) registerPaciente(ctx context.Context, req RegisterPacienteRequest, psicologoID *uuid.UUID) (*model.UserView, error) {
	// Both fingerprint checks must pass, email first, before any write.
	if err := s.checkEmailFree(ctx, req.Email); err != nil {
		return nil, err
	}
	cpfHash := s.enc.Fingerprint(req.CPF)
	if _, err := s.pacientes.FindByCPFHash(ctx, cpfHash); err == nil {
		return nil, apperrors.ErrCPFTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check cpf fingerprint: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	userView := &model.UserView{
		ID:            uuid.New(),
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Role:          model.RolePaciente,
		AccountStatus: model.AccountAtivo,
	}
	user, err := s.userMap.ToRecord(userView, string(hashed))
	if err != nil {
		return nil, err
	}
	paciente, err := s.pacMap.ToRecord(&model.PacienteView{
		UserID:                 user.ID,
		CPF:                    req.CPF,
		Gender:                 req.Gender,
		Status:                 model.PatientAtivo,
		PsicologoResponsavelID: psicologoID,
	})
	if err != nil {
		return nil, err
	}

	if err := s.users.CreateWithPaciente(ctx, user, paciente); err != nil {
		// The unique indexes on the fingerprint columns arbitrate the
		// check-then-write race: a concurrent duplicate surfaces here.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, s.classifyDuplicate(ctx, user.EmailHash)
		}
		return nil, fmt.Errorf("create paciente: %w", err)
	}
	return userView, nil
}

// RegisterPsicologo creates a professional account: email fingerprint check,
// password hash, encrypt CRP, persist User+Psicologo as one unit.
func (s *registrationService) RegisterPsicologo(ctx context.Context, req RegisterPsicologoRequest) (*model.UserView, error) {
	if err := s.checkEmailFree(ctx, req.Email); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	userView := &model.UserView{
		ID:            uuid.New(),
		Name:          req.Name,
		Email:         req.Email,
		Role:          model.RolePsicologo,
		AccountStatus: model.AccountAtivo,
	}
	user, err := s.userMap.ToRecord(userView, string(hashed))
	if err != nil {
		return nil, err
	}
	psicologo, err := s.psiMap.ToRecord(&model.PsicologoView{
		UserID: user.ID,
		CRP:    req.CRP,
	})
	if err != nil {
		return nil, err
	}

	if err := s.users.CreateWithPsicologo(ctx, user, psicologo); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrEmailTaken
		}
		return nil, fmt.Errorf("create psicologo: %w", err)
	}
	return userView, nil
}

func (s *registrationService) checkEmailFree(ctx context.Context, email string) error {
	emailHash := s.enc.Fingerprint(email)
	if _, err := s.users.FindByEmailHash(ctx, emailHash); err == nil {
		return apperrors.ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check email fingerprint: %w", err)
	}
	return nil
}

// classifyDuplicate decides which unique index rejected a racing insert.
func (s *registrationService) classifyDuplicate(ctx context.Context, emailHash string) error {
	if _, err := s.users.FindByEmailHash(ctx, emailHash); err == nil {
		return apperrors.ErrEmailTaken
	}
	return apperrors.ErrCPFTaken
}
