package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "github.com/NikolasPires/mind-flow/internal/errors"
	"github.com/NikolasPires/mind-flow/internal/model"
	"github.com/NikolasPires/mind-flow/internal/repository"
)

// CreateConsultaRequest carries the new appointment payload.
type CreateConsultaRequest struct {
	PacienteID  uuid.UUID
	Horario     time.Time
	Tipo        string
	Categoria   string
	Tags        model.Tags
	Status      model.ConsultaStatus
	Anotacoes   string
	Transcricao string
	SugestaoIA  string
}

// UpdateConsultaRequest carries a partial appointment update. Nil pointers
// mean "leave unchanged".
type UpdateConsultaRequest struct {
	Horario     *time.Time
	Tipo        *string
	Categoria   *string
	Tags        *model.Tags
	Status      *model.ConsultaStatus
	Anotacoes   *string
	Transcricao *string
	SugestaoIA  *string
}

// ConsultaService exposes appointment operations.
type ConsultaService interface {
	Create(ctx context.Context, req CreateConsultaRequest) (*model.Consulta, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Consulta, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateConsultaRequest) (*model.Consulta, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByPaciente(ctx context.Context, pacienteID uuid.UUID) ([]model.Consulta, error)
}

type consultaService struct {
	consultas repository.ConsultaRepository
	pacientes repository.PacienteRepository
}

// NewConsultaService creates a new appointment service.
func NewConsultaService(consultas repository.ConsultaRepository, pacientes repository.PacienteRepository) ConsultaService {
	return &consultaService{consultas: consultas, pacientes: pacientes}
}

// Create schedules an appointment for an existing patient.
func (s *consultaService) Create(ctx context.Context, req CreateConsultaRequest) (*model.Consulta, error) {
	if _, err := s.pacientes.FindByUserID(ctx, req.PacienteID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPatientNotFound
		}
		return nil, fmt.Errorf("load paciente: %w", err)
	}

	status := req.Status
	if status == "" {
		status = model.ConsultaAConfirmar
	}
	consulta := &model.Consulta{
		PacienteID:  req.PacienteID,
		Horario:     req.Horario,
		Tipo:        req.Tipo,
		Categoria:   req.Categoria,
		Tags:        req.Tags,
		Status:      status,
		Anotacoes:   req.Anotacoes,
		Transcricao: req.Transcricao,
		SugestaoIA:  req.SugestaoIA,
	}
	if err := s.consultas.Create(ctx, consulta); err != nil {
		return nil, fmt.Errorf("create consulta: %w", err)
	}
	return consulta, nil
}

// Get returns an appointment by ID.
func (s *consultaService) Get(ctx context.Context, id uuid.UUID) (*model.Consulta, error) {
	consulta, err := s.consultas.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrConsultaNotFound
		}
		return nil, fmt.Errorf("load consulta: %w", err)
	}
	return consulta, nil
}

// Update applies a partial appointment update.
func (s *consultaService) Update(ctx context.Context, id uuid.UUID, req UpdateConsultaRequest) (*model.Consulta, error) {
	consulta, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Horario != nil {
		consulta.Horario = *req.Horario
	}
	if req.Tipo != nil {
		consulta.Tipo = *req.Tipo
	}
	if req.Categoria != nil {
		consulta.Categoria = *req.Categoria
	}
	if req.Tags != nil {
		consulta.Tags = *req.Tags
	}
	if req.Status != nil {
		consulta.Status = *req.Status
	}
	if req.Anotacoes != nil {
		consulta.Anotacoes = *req.Anotacoes
	}
	if req.Transcricao != nil {
		consulta.Transcricao = *req.Transcricao
	}
	if req.SugestaoIA != nil {
		consulta.SugestaoIA = *req.SugestaoIA
	}

	if err := s.consultas.Update(ctx, consulta); err != nil {
		return nil, fmt.Errorf("update consulta: %w", err)
	}
	return consulta, nil
}

// Delete removes an appointment.
func (s *consultaService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.consultas.Delete(ctx, id)
}

// ListByPaciente lists a patient's appointments, newest first.
func (s *consultaService) ListByPaciente(ctx context.Context, pacienteID uuid.UUID) ([]model.Consulta, error) {
	if _, err := s.pacientes.FindByUserID(ctx, pacienteID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPatientNotFound
		}
		return nil, fmt.Errorf("load paciente: %w", err)
	}
	return s.consultas.ListByPaciente(ctx, pacienteID)
}
