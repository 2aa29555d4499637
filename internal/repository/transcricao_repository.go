package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/NikolasPires/mind-flow/internal/model"
)

// TranscricaoRepository defines transcription persistence operations.
type TranscricaoRepository interface {
	Create(ctx context.Context, transcricao *model.Transcricao) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Transcricao, error)
	Update(ctx context.Context, transcricao *model.Transcricao) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type transcricaoRepository struct {
	db *gorm.DB
}

// NewTranscricaoRepository creates a new transcription repository.
func NewTranscricaoRepository(db *gorm.DB) TranscricaoRepository {
	return &transcricaoRepository{db: db}
}

func (r *transcricaoRepository) Create(ctx context.Context, transcricao *model.Transcricao) error {
	return r.db.WithContext(ctx).Create(transcricao).Error
}

func (r *transcricaoRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Transcricao, error) {
	var transcricao model.Transcricao
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&transcricao).Error; err != nil {
		return nil, err
	}
	return &transcricao, nil
}

func (r *transcricaoRepository) Update(ctx context.Context, transcricao *model.Transcricao) error {
	return r.db.WithContext(ctx).Save(transcricao).Error
}

func (r *transcricaoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Transcricao{}).Error
}
