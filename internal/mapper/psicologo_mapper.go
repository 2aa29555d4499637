package mapper

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/NikolasPires/mind-flow/internal/encryption"
	"github.com/NikolasPires/mind-flow/internal/model"
)

// PsicologoMapper encrypts and decrypts the CRP license column.
type PsicologoMapper struct {
	fieldCrypto
}

// NewPsicologoMapper creates a professional mapper bound to the shared
// encryption service.
func NewPsicologoMapper(enc *encryption.Service, log *zap.Logger) *PsicologoMapper {
	return &PsicologoMapper{fieldCrypto{enc: enc, log: log}}
}

// ToRecord builds a persistable Psicologo from plaintext fields.
func (m *PsicologoMapper) ToRecord(view *model.PsicologoView) (*model.Psicologo, error) {
	crp, err := m.encryptField(view.CRP)
	if err != nil {
		return nil, fmt.Errorf("encrypt crp: %w", err)
	}
	return &model.Psicologo{
		UserID:           view.UserID,
		CRP:              crp,
		Bio:              view.Bio,
		ScheduleSettings: view.ScheduleSettings,
	}, nil
}

// ToView decrypts a stored Psicologo into its plaintext view.
func (m *PsicologoMapper) ToView(rec *model.Psicologo) *model.PsicologoView {
	view := &model.PsicologoView{
		UserID:           rec.UserID,
		Bio:              rec.Bio,
		ScheduleSettings: rec.ScheduleSettings,
	}
	view.CRP = m.decryptField("psicologo", rec.UserID.String(), "crp", rec.CRP, &view.Warnings)
	return view
}
