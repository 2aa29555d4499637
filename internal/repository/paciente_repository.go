package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/NikolasPires/mind-flow/internal/model"
)

// PacienteRepository defines patient persistence operations.
type PacienteRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Paciente, error)
	FindDetails(ctx context.Context, userID uuid.UUID) (*model.Paciente, error)
	FindByCPFHash(ctx context.Context, cpfHash string) (*model.Paciente, error)
	ListByPsicologo(ctx context.Context, psicologoID uuid.UUID) ([]model.Paciente, error)
	ListRecentByPsicologo(ctx context.Context, psicologoID uuid.UUID, limit int) ([]model.Paciente, error)
	UpdateFields(ctx context.Context, userID uuid.UUID, fields map[string]interface{}) error
}

type pacienteRepository struct {
	db *gorm.DB
}

// NewPacienteRepository creates a new patient repository.
func NewPacienteRepository(db *gorm.DB) PacienteRepository {
	return &pacienteRepository{db: db}
}

// FindByUserID finds a patient with its owning user preloaded.
func (r *pacienteRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Paciente, error) {
	var paciente model.Paciente
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).First(&paciente).Error; err != nil {
		return nil, err
	}
	return &paciente, nil
}

// FindDetails loads the full patient page aggregate: owner, responsible
// professional and appointment history, newest first.
func (r *pacienteRepository) FindDetails(ctx context.Context, userID uuid.UUID) (*model.Paciente, error) {
	var paciente model.Paciente
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("PsicologoResponsavel.User").
		Preload("Consultas", func(db *gorm.DB) *gorm.DB {
			return db.Order("horario DESC")
		}).
		Where("user_id = ?", userID).First(&paciente).Error; err != nil {
		return nil, err
	}
	return &paciente, nil
}

// FindByCPFHash finds a patient by the deterministic CPF fingerprint.
func (r *pacienteRepository) FindByCPFHash(ctx context.Context, cpfHash string) (*model.Paciente, error) {
	var paciente model.Paciente
	if err := r.db.WithContext(ctx).Where("cpf_hash = ?", cpfHash).First(&paciente).Error; err != nil {
		return nil, err
	}
	return &paciente, nil
}

// ListByPsicologo lists the patients managed by a professional.
func (r *pacienteRepository) ListByPsicologo(ctx context.Context, psicologoID uuid.UUID) ([]model.Paciente, error) {
	var pacientes []model.Paciente
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("psicologo_responsavel_id = ?", psicologoID).
		Order("updated_at DESC").
		Find(&pacientes).Error; err != nil {
		return nil, err
	}
	return pacientes, nil
}

// ListRecentByPsicologo returns the most recently touched patients for the
// dashboard.
func (r *pacienteRepository) ListRecentByPsicologo(ctx context.Context, psicologoID uuid.UUID, limit int) ([]model.Paciente, error) {
	var pacientes []model.Paciente
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("psicologo_responsavel_id = ?", psicologoID).
		Order("updated_at DESC").
		Limit(limit).
		Find(&pacientes).Error; err != nil {
		return nil, err
	}
	return pacientes, nil
}

// UpdateFields applies a partial column update.
func (r *pacienteRepository) UpdateFields(ctx context.Context, userID uuid.UUID, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Paciente{}).
		Where("user_id = ?", userID).
		Updates(fields).Error
}
