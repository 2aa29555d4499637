package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/NikolasPires/mind-flow/internal/model"
)

// PsicologoRepository defines professional persistence operations.
type PsicologoRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Psicologo, error)
	Exists(ctx context.Context, userID uuid.UUID) (bool, error)
	UpdateFields(ctx context.Context, userID uuid.UUID, fields map[string]interface{}) error
}

type psicologoRepository struct {
	db *gorm.DB
}

// NewPsicologoRepository creates a new professional repository.
func NewPsicologoRepository(db *gorm.DB) PsicologoRepository {
	return &psicologoRepository{db: db}
}

// FindByUserID finds a professional profile by user ID.
func (r *psicologoRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Psicologo, error) {
	var psicologo model.Psicologo
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&psicologo).Error; err != nil {
		return nil, err
	}
	return &psicologo, nil
}

// Exists reports whether a professional profile exists for the user.
func (r *psicologoRepository) Exists(ctx context.Context, userID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Psicologo{}).
		Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateFields applies a partial column update.
func (r *psicologoRepository) UpdateFields(ctx context.Context, userID uuid.UUID, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Psicologo{}).
		Where("user_id = ?", userID).
		Updates(fields).Error
}
