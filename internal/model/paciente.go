package model

import (
	"time"

	"github.com/google/uuid"
)

// Gender enum, mirrors the values accepted by the web client.
type Gender string

const (
	GenderMasculino Gender = "MASCULINO"
	GenderFeminino  Gender = "FEMININO"
	GenderOutro     Gender = "OUTRO"
)

// PatientStatus tracks the treatment lifecycle.
type PatientStatus string

const (
	PatientAtivo          PatientStatus = "ATIVO"
	PatientAcompanhamento PatientStatus = "ACOMPANHAMENTO"
	PatientAlta           PatientStatus = "ALTA"
	PatientInativo        PatientStatus = "INATIVO"
)

// Paciente is the patient profile, one-to-one with User. CPF, History and
// InitialObservations hold ciphertext; CPFHash is the lookup fingerprint.
type Paciente struct {
	UserID                 uuid.UUID     `json:"user_id" gorm:"type:char(36);primaryKey"`
	CPF                    string        `json:"-" gorm:"type:text"`
	CPFHash                string        `json:"-" gorm:"uniqueIndex;size:64;not null"`
	Gender                 Gender        `json:"gender" gorm:"size:20"`
	History                string        `json:"-" gorm:"type:text"`
	InitialObservations    string        `json:"-" gorm:"type:text"`
	Status                 PatientStatus `json:"status" gorm:"size:20;default:'ATIVO';index"`
	PsicologoResponsavelID *uuid.UUID    `json:"psicologo_responsavel_id" gorm:"type:char(36);index"`
	CreatedAt              time.Time     `json:"created_at"`
	UpdatedAt              time.Time     `json:"updated_at"`

	// Relations
	User                 *User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	PsicologoResponsavel *Psicologo `json:"psicologo_responsavel,omitempty" gorm:"foreignKey:PsicologoResponsavelID;references:UserID"`
	Consultas            []Consulta `json:"consultas,omitempty" gorm:"foreignKey:PacienteID"`
}
