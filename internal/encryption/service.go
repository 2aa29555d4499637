// Package encryption implements field level encryption for PII columns plus
// the deterministic fingerprints used to look them up by equality.
//
// Ciphertext is AES-256-GCM with a random nonce, so encrypting the same value
// twice yields different output and the stored column cannot be used for
// equality search. Fields that must be searchable (email, CPF) additionally
// store a SHA-256 hex fingerprint of the plaintext in a unique indexed column.
package encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// ErrDecryption is returned when a stored ciphertext cannot be decrypted:
// malformed input, an unknown key version, or a key mismatch. Callers are
// expected to degrade per field rather than fail the whole read.
var ErrDecryption = errors.New("decryption failed")

// Service is the single shared encryption dependency. It is stateless after
// construction and safe for concurrent use.
type Service struct {
	ring   Keyring
	active string
}

// NewService builds a Service from a parsed keyring and the version used for
// new writes.
func NewService(ring Keyring, activeVersion string) (*Service, error) {
	if _, ok := ring[activeVersion]; !ok {
		return nil, fmt.Errorf("active key version %q not present in keyring", activeVersion)
	}
	return &Service{ring: ring, active: activeVersion}, nil
}

// Encrypt seals plaintext under the active key. Output format is
// "<version>:<base64(nonce||ciphertext)>"; the version tag lets a future key
// rotation decrypt old rows without a flag day migration.
func (s *Service) Encrypt(plaintext string) (string, error) {
	aead, err := s.aead(s.active)
	if err != nil {
		return "", err
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}
	sealed := aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return s.active + ":" + base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt opens a ciphertext produced by Encrypt, using the key version named
// in its tag.
func (s *Service) Decrypt(ciphertext string) (string, error) {
	version, encoded, ok := strings.Cut(ciphertext, ":")
	if !ok {
		return "", fmt.Errorf("%w: missing key version tag", ErrDecryption)
	}
	if _, known := s.ring[version]; !known {
		return "", fmt.Errorf("%w: unknown key version %q", ErrDecryption, version)
	}
	aead, err := s.aead(version)
	if err != nil {
		return "", err
	}
	sealed, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecryption, err)
	}
	if len(sealed) < aead.NonceSize() {
		return "", fmt.Errorf("%w: ciphertext too short", ErrDecryption)
	}
	nonce, ct := sealed[:aead.NonceSize()], sealed[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, ct, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecryption, err)
	}
	return string(plaintext), nil
}

// Fingerprint returns the deterministic hex SHA-256 of plaintext. It exists
// solely as an equality lookup index for encrypted columns and is not a
// secrecy mechanism.
func (s *Service) Fingerprint(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

func (s *Service) aead(version string) (cipher.AEAD, error) {
	block, err := aes.NewCipher(s.ring[version])
	if err != nil {
		return nil, fmt.Errorf("init cipher: %w", err)
	}
	return cipher.NewGCM(block)
}
