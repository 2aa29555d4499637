package model

import (
	"time"

	"github.com/google/uuid"
)

// Psicologo is the professional profile, one-to-one with User. CRP (the
// license number) holds ciphertext.
type Psicologo struct {
	UserID           uuid.UUID `json:"user_id" gorm:"type:char(36);primaryKey"`
	CRP              string    `json:"-" gorm:"type:text;not null"`
	Bio              string    `json:"bio" gorm:"type:text"`
	ScheduleSettings string    `json:"schedule_settings" gorm:"type:text"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	// Relations
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
