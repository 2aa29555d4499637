package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ConsultaStatus enum for the appointment lifecycle.
type ConsultaStatus string

const (
	ConsultaAConfirmar ConsultaStatus = "A_CONFIRMAR"
	ConsultaConfirmado ConsultaStatus = "CONFIRMADO"
	ConsultaCancelado  ConsultaStatus = "CANCELADO"
	ConsultaConcluida  ConsultaStatus = "CONCLUIDA"
)

// Tags is a string set stored as a JSON column.
type Tags []string

// Value implements driver.Valuer.
func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	b, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (t *Tags) Scan(value interface{}) error {
	if value == nil {
		*t = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, t)
	case string:
		return json.Unmarshal([]byte(v), t)
	default:
		return fmt.Errorf("unsupported tags column type %T", value)
	}
}

// Consulta is a scheduled appointment belonging to a patient. Session content
// (transcript, notes, AI suggestion) is stored as written.
type Consulta struct {
	ID          uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	PacienteID  uuid.UUID      `json:"paciente_id" gorm:"type:char(36);not null;index"`
	Horario     time.Time      `json:"horario" gorm:"not null;index"`
	Tipo        string         `json:"tipo" gorm:"size:100"`
	Categoria   string         `json:"categoria" gorm:"size:100"`
	Tags        Tags           `json:"tags" gorm:"type:text"`
	Status      ConsultaStatus `json:"status" gorm:"size:20;default:'A_CONFIRMAR';index"`
	SugestaoIA  string         `json:"sugestao_IA" gorm:"column:sugestao_ia;type:longtext"`
	Transcricao string         `json:"transcricao" gorm:"type:longtext"`
	Anotacoes   string         `json:"anotacoes" gorm:"type:longtext"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updatedAt"`

	// Relations
	Paciente *Paciente `json:"paciente,omitempty" gorm:"foreignKey:PacienteID"`
}

// BeforeCreate sets UUID before creating the record.
func (c *Consulta) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
