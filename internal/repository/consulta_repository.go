package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/NikolasPires/mind-flow/internal/model"
)

// ConsultaRepository defines appointment persistence operations.
type ConsultaRepository interface {
	Create(ctx context.Context, consulta *model.Consulta) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Consulta, error)
	Update(ctx context.Context, consulta *model.Consulta) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByPaciente(ctx context.Context, pacienteID uuid.UUID) ([]model.Consulta, error)
	CountForPsicologoBetween(ctx context.Context, psicologoID uuid.UUID, start, end time.Time) (int64, error)
	AgendaForPsicologoBetween(ctx context.Context, psicologoID uuid.UUID, start, end time.Time, limit int) ([]model.Consulta, error)
}

type consultaRepository struct {
	db *gorm.DB
}

// NewConsultaRepository creates a new appointment repository.
func NewConsultaRepository(db *gorm.DB) ConsultaRepository {
	return &consultaRepository{db: db}
}

// Create persists a new appointment.
func (r *consultaRepository) Create(ctx context.Context, consulta *model.Consulta) error {
	return r.db.WithContext(ctx).Create(consulta).Error
}

// FindByID finds an appointment by ID.
func (r *consultaRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Consulta, error) {
	var consulta model.Consulta
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&consulta).Error; err != nil {
		return nil, err
	}
	return &consulta, nil
}

// Update saves an existing appointment.
func (r *consultaRepository) Update(ctx context.Context, consulta *model.Consulta) error {
	return r.db.WithContext(ctx).Save(consulta).Error
}

// Delete removes an appointment.
func (r *consultaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Consulta{}).Error
}

// ListByPaciente lists a patient's appointments, newest first.
func (r *consultaRepository) ListByPaciente(ctx context.Context, pacienteID uuid.UUID) ([]model.Consulta, error) {
	var consultas []model.Consulta
	if err := r.db.WithContext(ctx).
		Where("paciente_id = ?", pacienteID).
		Order("horario DESC").
		Find(&consultas).Error; err != nil {
		return nil, err
	}
	return consultas, nil
}

// CountForPsicologoBetween counts appointments in a time window across all
// patients managed by the professional.
func (r *consultaRepository) CountForPsicologoBetween(ctx context.Context, psicologoID uuid.UUID, start, end time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Consulta{}).
		Joins("JOIN pacientes ON pacientes.user_id = consultas.paciente_id").
		Where("pacientes.psicologo_responsavel_id = ?", psicologoID).
		Where("consultas.horario BETWEEN ? AND ?", start, end).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// AgendaForPsicologoBetween returns the ordered agenda for a time window,
// with each appointment's patient and owning user preloaded.
func (r *consultaRepository) AgendaForPsicologoBetween(ctx context.Context, psicologoID uuid.UUID, start, end time.Time, limit int) ([]model.Consulta, error) {
	var consultas []model.Consulta
	if err := r.db.WithContext(ctx).
		Joins("JOIN pacientes ON pacientes.user_id = consultas.paciente_id").
		Where("pacientes.psicologo_responsavel_id = ?", psicologoID).
		Where("consultas.horario BETWEEN ? AND ?", start, end).
		Order("consultas.horario ASC").
		Limit(limit).
		Preload("Paciente.User").
		Find(&consultas).Error; err != nil {
		return nil, err
	}
	return consultas, nil
}
