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

// TranscricaoService exposes speech-to-text result operations. The actual
// transcription runs client side; the server only stores its output.
type TranscricaoService interface {
	Create(ctx context.Context, consultaID uuid.UUID, texto string) (*model.Transcricao, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Transcricao, error)
	Update(ctx context.Context, id uuid.UUID, texto *string, status *model.TranscricaoStatus) (*model.Transcricao, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type transcricaoService struct {
	transcricoes repository.TranscricaoRepository
}

// NewTranscricaoService creates a new transcription service.
func NewTranscricaoService(transcricoes repository.TranscricaoRepository) TranscricaoService {
	return &transcricaoService{transcricoes: transcricoes}
}

func (s *transcricaoService) Create(ctx context.Context, consultaID uuid.UUID, texto string) (*model.Transcricao, error) {
	status := model.TranscricaoPendente
	if texto != "" {
		status = model.TranscricaoConcluida
	}
	transcricao := &model.Transcricao{
		ConsultaID:  consultaID,
		TextoGerado: texto,
		DataGeracao: time.Now(),
		Status:      status,
	}
	if err := s.transcricoes.Create(ctx, transcricao); err != nil {
		return nil, fmt.Errorf("create transcricao: %w", err)
	}
	return transcricao, nil
}

func (s *transcricaoService) Get(ctx context.Context, id uuid.UUID) (*model.Transcricao, error) {
	transcricao, err := s.transcricoes.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTranscricaoNotFound
		}
		return nil, fmt.Errorf("load transcricao: %w", err)
	}
	return transcricao, nil
}

func (s *transcricaoService) Update(ctx context.Context, id uuid.UUID, texto *string, status *model.TranscricaoStatus) (*model.Transcricao, error) {
	transcricao, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if texto != nil {
		transcricao.TextoGerado = *texto
		transcricao.DataGeracao = time.Now()
	}
	if status != nil {
		transcricao.Status = *status
	}
	if err := s.transcricoes.Update(ctx, transcricao); err != nil {
		return nil, fmt.Errorf("update transcricao: %w", err)
	}
	return transcricao, nil
}

func (s *transcricaoService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.transcricoes.Delete(ctx, id)
}
