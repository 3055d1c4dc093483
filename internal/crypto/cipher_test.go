package crypto

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey(t *testing.T) []byte {
	t.Helper()
	key := make([]byte, KeySize)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return key
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	key := testKey(t)

	tests := []struct {
		name      string
		plaintext []byte
	}{
		{name: "simple string", plaintext: []byte("hello world")},
		{name: "empty string", plaintext: []byte("")},
		{name: "special characters", plaintext: []byte("п@р#оль!\n\t\"json\": {x}")},
		{name: "unicode", plaintext: []byte("задача №1 ✓")},
		{name: "binary data", plaintext: []byte{0x00, 0xff, 0x10, 0x80, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encrypted, err := Encrypt(tt.plaintext, key)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, len(encrypted), NonceSize)

			decrypted, err := Decrypt(encrypted, key)
			require.NoError(t, err)
			assert.True(t, bytes.Equal(tt.plaintext, decrypted))
		})
	}
}

func TestEncrypt_InvalidKey(t *testing.T) {
	_, err := Encrypt([]byte("data"), []byte("short"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "32 bytes")
}

func TestEncrypt_NonDeterministic(t *testing.T) {
	key := testKey(t)

	// Одинаковый plaintext шифруется в разный ciphertext (случайный nonce)
	first, err := Encrypt([]byte("same input"), key)
	require.NoError(t, err)
	second, err := Encrypt([]byte("same input"), key)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestDecrypt_WrongKey(t *testing.T) {
	encrypted, err := Encrypt([]byte("secret"), testKey(t))
	require.NoError(t, err)

	_, err = Decrypt(encrypted, testKey(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decrypt")
}

func TestDecrypt_CorruptedData(t *testing.T) {
	key := testKey(t)
	encrypted, err := Encrypt([]byte("secret"), key)
	require.NoError(t, err)

	// Портим последний байт (authentication tag)
	encrypted[len(encrypted)-1] ^= 0xff

	_, err = Decrypt(encrypted, key)
	require.Error(t, err)
}

func TestDecrypt_TooShort(t *testing.T) {
	_, err := Decrypt([]byte{0x01, 0x02}, testKey(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too short")
}

func TestEncryptToBase64_RoundTrip(t *testing.T) {
	key := testKey(t)

	encoded, err := EncryptToBase64([]byte("token-value"), key)
	require.NoError(t, err)
	assert.NotEmpty(t, encoded)

	decrypted, err := DecryptFromBase64(encoded, key)
	require.NoError(t, err)
	assert.Equal(t, "token-value", string(decrypted))
}

func TestDecryptFromBase64_InvalidEncoding(t *testing.T) {
	_, err := DecryptFromBase64("%%%not-base64%%%", testKey(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base64")
}
