package model

import (
	"time"

	"github.com/google/uuid"
)

// View types are the plaintext representations returned to API callers after
// the mappers have decrypted the designated fields. Each carries a Warnings
// list naming fields that could not be decrypted and were omitted, so callers
// can tell a blank value from a corrupted one.

// UserView is the decrypted identity record.
type UserView struct {
	ID            uuid.UUID     `json:"id"`
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone,omitempty"`
	Role          Role          `json:"role"`
	PhotoURL      string        `json:"photo_url,omitempty"`
	AccountStatus AccountStatus `json:"account_status"`
	CreatedAt     time.Time     `json:"created_at"`
	Warnings      []string      `json:"warnings,omitempty"`
}

// PacienteView is the decrypted patient profile.
type PacienteView struct {
	UserID                 uuid.UUID     `json:"user_id"`
	CPF                    string        `json:"cpf,omitempty"`
	Gender                 Gender        `json:"gender"`
	History                string        `json:"history,omitempty"`
	InitialObservations    string        `json:"initial_observations,omitempty"`
	Status                 PatientStatus `json:"status"`
	PsicologoResponsavelID *uuid.UUID    `json:"psicologo_responsavel_id,omitempty"`
	User                   *UserView     `json:"user,omitempty"`
	Warnings               []string      `json:"warnings,omitempty"`
}

// PacienteDetails is the composite profile returned by the patient page:
// the decrypted patient, its owning user, the responsible professional and
// the appointment history.
type PacienteDetails struct {
	PacienteView
	PsicologoResponsavel *UserView  `json:"psicologo_responsavel,omitempty"`
	Consultas            []Consulta `json:"consultas,omitempty"`
}

// PsicologoView is the decrypted professional profile.
type PsicologoView struct {
	UserID           uuid.UUID `json:"user_id"`
	CRP              string    `json:"crp,omitempty"`
	Bio              string    `json:"bio,omitempty"`
	ScheduleSettings string    `json:"schedule_settings,omitempty"`
	Warnings         []string  `json:"warnings,omitempty"`
}

// ProfileView is the /users/me payload for either role.
type ProfileView struct {
	UserView
	Paciente  *PacienteView  `json:"paciente,omitempty"`
	Psicologo *PsicologoView `json:"psicologo,omitempty"`
}
