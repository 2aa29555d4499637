package mapper

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/NikolasPires/mind-flow/internal/encryption"
	apperrors "github.com/NikolasPires/mind-flow/internal/errors"
	"github.com/NikolasPires/mind-flow/internal/model"
)

// PacienteMapper encrypts and decrypts the Paciente PII columns (CPF,
// history, initial observations) and maintains the CPF fingerprint.
type PacienteMapper struct {
	fieldCrypto
	users *UserMapper
}

// NewPacienteMapper creates a patient mapper bound to the shared encryption
// service.
func NewPacienteMapper(enc *encryption.Service, users *UserMapper, log *zap.Logger) *PacienteMapper {
	return &PacienteMapper{fieldCrypto: fieldCrypto{enc: enc, log: log}, users: users}
}

// ToRecord builds a persistable Paciente from plaintext fields.
func (m *PacienteMapper) ToRecord(view *model.PacienteView) (*model.Paciente, error) {
	cpf, err := m.encryptField(view.CPF)
	if err != nil {
		return nil, fmt.Errorf("encrypt cpf: %w", err)
	}
	history, err := m.encryptField(view.History)
	if err != nil {
		return nil, fmt.Errorf("encrypt history: %w", err)
	}
	observations, err := m.encryptField(view.InitialObservations)
	if err != nil {
		return nil, fmt.Errorf("encrypt initial observations: %w", err)
	}

	return &model.Paciente{
		UserID:                 view.UserID,
		CPF:                    cpf,
		CPFHash:                m.enc.Fingerprint(view.CPF),
		Gender:                 view.Gender,
		History:                history,
		InitialObservations:    observations,
		Status:                 view.Status,
		PsicologoResponsavelID: view.PsicologoResponsavelID,
	}, nil
}

// ToView decrypts a stored Paciente into its plaintext view. The owning user
// relation, when preloaded, is decrypted in the same pass.
func (m *PacienteMapper) ToView(rec *model.Paciente) *model.PacienteView {
	view := &model.PacienteView{
		UserID:                 rec.UserID,
		Gender:                 rec.Gender,
		Status:                 rec.Status,
		PsicologoResponsavelID: rec.PsicologoResponsavelID,
	}
	id := rec.UserID.String()
	view.CPF = m.decryptField("paciente", id, "cpf", rec.CPF, &view.Warnings)
	view.History = m.decryptField("paciente", id, "history", rec.History, &view.Warnings)
	view.InitialObservations = m.decryptField("paciente", id, "initial_observations", rec.InitialObservations, &view.Warnings)
	if rec.User != nil {
		view.User = m.users.ToView(rec.User)
	}
	return view
}

// ToViewWithUser is the composite read used by list and profile pages: the
// patient row must carry its owning User relation. A missing owner is a data
// integrity fault, not a normal not-found.
func (m *PacienteMapper) ToViewWithUser(rec *model.Paciente) (*model.PacienteView, error) {
	if rec.User == nil {
		return nil, fmt.Errorf("%w: paciente %s", apperrors.ErrMissingOwner, rec.UserID)
	}
	return m.ToView(rec), nil
}

// ToDetails builds the full patient page payload: decrypted patient and
// owner, the responsible professional's public identity, and the appointment
// history ordered as fetched.
func (m *PacienteMapper) ToDetails(rec *model.Paciente) (*model.PacienteDetails, error) {
	view, err := m.ToViewWithUser(rec)
	if err != nil {
		return nil, err
	}
	details := &model.PacienteDetails{
		PacienteView: *view,
		Consultas:    rec.Consultas,
	}
	if rec.PsicologoResponsavel != nil && rec.PsicologoResponsavel.User != nil {
		details.PsicologoResponsavel = m.users.ToView(rec.PsicologoResponsavel.User)
	}
	return details, nil
}
