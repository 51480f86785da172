package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func TestRoundTrip(t *testing.T) {
	c, err := New(testKey)
	require.NoError(t, err)

	plaintext := []byte(`{"access_token":"ya29.secret","refresh_token":"1//refresh"}`)
	encoded, err := c.Encrypt(plaintext)
	require.NoError(t, err)
	assert.NotContains(t, encoded, "ya29.secret")

	decrypted, err := c.Decrypt(encoded)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}

func TestEncrypt_NonceVaries(t *testing.T) {
	c, err := New(testKey)
	require.NoError(t, err)

	a, err := c.Encrypt([]byte("same input"))
	require.NoError(t, err)
	b, err := c.Encrypt([]byte("same input"))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestNew_RejectsBadKeys(t *testing.T) {
	_, err := New("not-hex")
	assert.Error(t, err)

	_, err = New("abcd") // too short
	require.Error(t, err)
	assert.Contains(t, err.Error(), "32 bytes")
}

func TestDecrypt_RejectsTampering(t *testing.T) {
	c, err := New(testKey)
	require.NoError(t, err)

	encoded, err := c.Encrypt([]byte("payload"))
	require.NoError(t, err)

	tampered := strings.Replace(encoded, encoded[:1], "A", 1)
	if tampered == encoded {
		tampered = "B" + encoded[1:]
	}
	_, err = c.Decrypt(tampered)
	assert.Error(t, err)

	_, err = c.Decrypt("@@not-base64@@")
	assert.Error(t, err)

	_, err = c.Decrypt("AAAA")
	assert.Error(t, err)
}
