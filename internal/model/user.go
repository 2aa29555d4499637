package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role distinguishes professionals from patients.
type Role string

const (
	RolePsicologo Role = "PSICOLOGO"
	RolePaciente  Role = "PACIENTE"
)

// AccountStatus models deactivation; users are never hard deleted.
type AccountStatus string

const (
	AccountAtivo   AccountStatus = "ATIVO"
	AccountInativo AccountStatus = "INATIVO"
)

// User is the persisted identity record. Name, Email and Phone hold
// ciphertext, never plaintext; EmailHash is the deterministic fingerprint
// used for equality lookups on the otherwise encrypted email column.
// Ciphertext and hashes never leave the API, hence the json:"-" tags.
type User struct {
	ID            uuid.UUID     `json:"id" gorm:"type:char(36);primaryKey"`
	Name          string        `json:"-" gorm:"type:text;not null"`
	Email         string        `json:"-" gorm:"type:text;not null"`
	EmailHash     string        `json:"-" gorm:"uniqueIndex;size:64;not null"`
	Phone         string        `json:"-" gorm:"type:text"`
	Password      string        `json:"-" gorm:"size:255;not null"`
	Role          Role          `json:"role" gorm:"size:20;not null;index"`
	PhotoURL      string        `json:"photo_url" gorm:"size:512"`
	AccountStatus AccountStatus `json:"account_status" gorm:"size:20;default:'ATIVO'"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`

	// Relations
	Paciente  *Paciente  `json:"paciente,omitempty" gorm:"foreignKey:UserID"`
	Psicologo *Psicologo `json:"psicologo,omitempty" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
