package mapper

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/NikolasPires/mind-flow/internal/encryption"
	"github.com/NikolasPires/mind-flow/internal/model"
)

// UserMapper encrypts and decrypts the User PII columns (name, email, phone)
// and maintains the email fingerprint.
type UserMapper struct {
	fieldCrypto
}

// NewUserMapper creates a user mapper bound to the shared encryption service.
func NewUserMapper(enc *encryption.Service, log *zap.Logger) *UserMapper {
	return &UserMapper{fieldCrypto{enc: enc, log: log}}
}

// ToRecord builds a persistable User from plaintext fields. Name, email and
// phone are encrypted; EmailHash is derived from the plaintext email so the
// row stays findable by equality.
func (m *UserMapper) ToRecord(view *model.UserView, passwordHash string) (*model.User, error) {
	name, err := m.encryptField(view.Name)
	if err != nil {
		return nil, fmt.Errorf("encrypt name: %w", err)
	}
	email, err := m.encryptField(view.Email)
	if err != nil {
		return nil, fmt.Errorf("encrypt email: %w", err)
	}
	phone, err := m.encryptField(view.Phone)
	if err != nil {
		return nil, fmt.Errorf("encrypt phone: %w", err)
	}

	return &model.User{
		ID:            view.ID,
		Name:          name,
		Email:         email,
		EmailHash:     m.enc.Fingerprint(view.Email),
		Phone:         phone,
		Password:      passwordHash,
		Role:          view.Role,
		PhotoURL:      view.PhotoURL,
		AccountStatus: view.AccountStatus,
	}, nil
}

// ToView decrypts a stored User into its plaintext view.
func (m *UserMapper) ToView(rec *model.User) *model.UserView {
	view := &model.UserView{
		ID:            rec.ID,
		Role:          rec.Role,
		PhotoURL:      rec.PhotoURL,
		AccountStatus: rec.AccountStatus,
		CreatedAt:     rec.CreatedAt,
	}
	id := rec.ID.String()
	view.Name = m.decryptField("user", id, "name", rec.Name, &view.Warnings)
	view.Email = m.decryptField("user", id, "email", rec.Email, &view.Warnings)
	view.Phone = m.decryptField("user", id, "phone", rec.Phone, &view.Warnings)
	return view
}
