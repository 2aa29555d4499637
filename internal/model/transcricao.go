package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TranscricaoStatus enum for the speech-to-text pipeline.
type TranscricaoStatus string

const (
	TranscricaoPendente    TranscricaoStatus = "PENDENTE"
	TranscricaoProcessando TranscricaoStatus = "PROCESSANDO"
	TranscricaoConcluida   TranscricaoStatus = "CONCLUIDA"
	TranscricaoErro        TranscricaoStatus = "ERRO"
)

// Transcricao is a speech-to-text result tied to an appointment.
type Transcricao struct {
	ID          uuid.UUID         `json:"id" gorm:"type:char(36);primaryKey"`
	ConsultaID  uuid.UUID         `json:"consulta_id" gorm:"type:char(36);index"`
	TextoGerado string            `json:"texto_gerado" gorm:"type:longtext"`
	DataGeracao time.Time         `json:"data_geracao"`
	Status      TranscricaoStatus `json:"status" gorm:"size:20;default:'PENDENTE'"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// TableName overrides GORM pluralization.
func (Transcricao) TableName() string { return "transcricoes" }

// BeforeCreate sets UUID before creating the record.
func (t *Transcricao) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
