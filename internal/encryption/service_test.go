package encryption

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKeyring(t *testing.T, versions ...string) Keyring {
	t.Helper()
	ring := make(Keyring, len(versions))
	for _, v := range versions {
		key := make([]byte, keyLen)
		_, err := rand.Read(key)
		require.NoError(t, err)
		ring[v] = key
	}
	return ring
}

func TestEncryptDecrypt_Roundtrip(t *testing.T) {
	svc, err := NewService(testKeyring(t, "v1"), "v1")
	require.NoError(t, err)

	for _, plaintext := range []string{
		"Ana Silva",
		"ana@example.com",
		"",
		"texto longo com acentuação e emoji 🧠",
	} {
		ct, err := svc.Encrypt(plaintext)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(ct, "v1:"))
		assert.NotEqual(t, "v1:"+plaintext, ct)

		got, err := svc.Decrypt(ct)
		require.NoError(t, err)
		assert.Equal(t, plaintext, got)
	}
}

func TestEncrypt_NonDeterministic(t *testing.T) {
	svc, err := NewService(testKeyring(t, "v1"), "v1")
	require.NoError(t, err)

	a, err := svc.Encrypt("12345678900")
	require.NoError(t, err)
	b, err := svc.Encrypt("12345678900")
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "same plaintext must not produce the same ciphertext")
}

func TestFingerprint_Deterministic(t *testing.T) {
	svc, err := NewService(testKeyring(t, "v1"), "v1")
	require.NoError(t, err)

	a := svc.Fingerprint("ana@example.com")
	b := svc.Fingerprint("ana@example.com")
	assert.Equal(t, a, b)
	assert.Len(t, a, 64) // hex sha-256
	assert.NotEqual(t, a, svc.Fingerprint("other@example.com"))
}

func TestDecrypt_Failures(t *testing.T) {
	svc, err := NewService(testKeyring(t, "v1"), "v1")
	require.NoError(t, err)

	other, err := NewService(testKeyring(t, "v1"), "v1")
	require.NoError(t, err)
	foreign, err := other.Encrypt("segredo")
	require.NoError(t, err)

	valid, err := svc.Encrypt("ok")
	require.NoError(t, err)
	truncated := valid[:len(valid)-4]

	cases := map[string]string{
		"no version tag":   base64.StdEncoding.EncodeToString([]byte("junk")),
		"unknown version":  "v9:" + strings.SplitN(valid, ":", 2)[1],
		"not base64":       "v1:%%%not-base64%%%",
		"too short":        "v1:" + base64.StdEncoding.EncodeToString([]byte{1, 2, 3}),
		"wrong key":        foreign,
		"tampered":         truncated,
		"plaintext passed": "ana@example.com",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Decrypt(input)
			assert.Error(t, err)
			assert.True(t, errors.Is(err, ErrDecryption), "want ErrDecryption, got %v", err)
		})
	}
}

func TestDecrypt_AcrossKeyRotation(t *testing.T) {
	ring := testKeyring(t, "v1", "v2")

	oldSvc, err := NewService(ring, "v1")
	require.NoError(t, err)
	ct, err := oldSvc.Encrypt("dado antigo")
	require.NoError(t, err)

	// Same ring, v2 now active: old ciphertext must still decrypt, new
	// writes must carry the new tag.
	newSvc, err := NewService(ring, "v2")
	require.NoError(t, err)

	got, err := newSvc.Decrypt(ct)
	require.NoError(t, err)
	assert.Equal(t, "dado antigo", got)

	fresh, err := newSvc.Encrypt("dado novo")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(fresh, "v2:"))
}

func TestNewService_RejectsMissingActiveVersion(t *testing.T) {
	_, err := NewService(testKeyring(t, "v1"), "v2")
	assert.Error(t, err)
}

func TestParseKeyring(t *testing.T) {
	key := base64.StdEncoding.EncodeToString(make([]byte, keyLen))

	ring, err := ParseKeyring("v1:" + key + ", v2:" + key)
	require.NoError(t, err)
	assert.Len(t, ring, 2)

	for name, raw := range map[string]string{
		"empty":           "",
		"missing version": ":" + key,
		"no separator":    key,
		"bad base64":      "v1:!!!",
		"short key":       "v1:" + base64.StdEncoding.EncodeToString([]byte("short")),
		"duplicate":       "v1:" + key + ",v1:" + key,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseKeyring(raw)
			assert.Error(t, err)
		})
	}
}
