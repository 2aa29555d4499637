// Package mapper translates between persisted rows and plaintext views,
// applying field level encryption on the way in and decryption on the way
// out. Decryption is best effort: a field that cannot be decrypted is logged,
// blanked and reported in the view's Warnings list instead of failing the
// whole read.
package mapper

import (
	"go.uber.org/zap"

	"github.com/NikolasPires/mind-flow/internal/encryption"
)

type fieldCrypto struct {
	enc *encryption.Service
	log *zap.Logger
}

// encryptField encrypts a single designated field, passing empty values
// through untouched the way the storage layer stores them.
func (f fieldCrypto) encryptField(value string) (string, error) {
	if value == "" {
		return "", nil
	}
	return f.enc.Encrypt(value)
}

// decryptField decrypts a single designated field. On failure the field is
// omitted from the view and its name is appended to warnings.
func (f fieldCrypto) decryptField(entity, id, field, value string, warnings *[]string) string {
	if value == "" {
		return ""
	}
	plaintext, err := f.enc.Decrypt(value)
	if err != nil {
		f.log.Warn("field decryption failed",
			zap.String("entity", entity),
			zap.String("id", id),
			zap.String("field", field),
			zap.Error(err),
		)
		*warnings = append(*warnings, field)
		return ""
	}
	return plaintext
}
