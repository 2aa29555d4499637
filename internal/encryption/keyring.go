package encryption

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const keyLen = 32

// Keyring maps a key version to its raw AES-256 key. Old versions stay in the
// ring after a rotation so that ciphertext written under them can still be
// read; only the active version is used for new writes.
type Keyring map[string][]byte

// ParseKeyring parses the ENCRYPTION_KEYS format: comma separated
// "version:base64key" entries, e.g. "v1:SGVsbG8...,v2:V29ybGQ...".
func ParseKeyring(raw string) (Keyring, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("encryption keyring is empty")
	}
	ring := make(Keyring)
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		version, encoded, ok := strings.Cut(entry, ":")
		if !ok || version == "" {
			return nil, fmt.Errorf("malformed keyring entry %q", entry)
		}
		key, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return nil, fmt.Errorf("decode key %q: %w", version, err)
		}
		if len(key) != keyLen {
			return nil, fmt.Errorf("key %q must be %d bytes, got %d", version, keyLen, len(key))
		}
		if _, dup := ring[version]; dup {
			return nil, fmt.Errorf("duplicate key version %q", version)
		}
		ring[version] = key
	}
	if len(ring) == 0 {
		return nil, fmt.Errorf("encryption keyring is empty")
	}
	return ring, nil
}
