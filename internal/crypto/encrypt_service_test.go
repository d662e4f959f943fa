package crypto

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solovyev/go-vault-cipher/models"
)

func testKey(t *testing.T, size int) *SymmetricCryptoKey {
	t.Helper()
	material := make([]byte, size)
	for i := range material {
		material[i] = byte(i + 1)
	}
	key, err := NewSymmetricCryptoKey(material)
	require.NoError(t, err)
	return key
}

// ── Encrypt / DecryptString ───────────────────────────────────────────────────

// TestEncryptDecryptString_RoundTrip verifies the full string pipeline
// under an authenticated key.
func TestEncryptDecryptString_RoundTrip(t *testing.T) {
	svc := NewEncryptService()
	key := testKey(t, 64)

	enc, err := svc.Encrypt("correct horse battery staple", key)
	require.NoError(t, err)
	require.NotNil(t, enc)

	assert.Equal(t, models.AesCbc256HmacSha256B64, enc.Type)
	assert.NotEmpty(t, enc.IV)
	assert.NotEmpty(t, enc.Data)
	assert.NotEmpty(t, enc.MAC)

	plain, err := svc.DecryptString(enc, key)
	require.NoError(t, err)
	assert.Equal(t, "correct horse battery staple", plain)
}

// TestEncryptDecryptString_LegacyKey verifies that an encrypt-only 32-byte
// key produces and accepts unauthenticated ciphertexts.
func TestEncryptDecryptString_LegacyKey(t *testing.T) {
	svc := NewEncryptService()
	key := testKey(t, 32)

	enc, err := svc.Encrypt("legacy secret", key)
	require.NoError(t, err)

	assert.Equal(t, models.AesCbc256B64, enc.Type)
	assert.Empty(t, enc.MAC)

	plain, err := svc.DecryptString(enc, key)
	require.NoError(t, err)
	assert.Equal(t, "legacy secret", plain)
}

// TestEncrypt_FreshIVPerCall verifies that two encryptions of the same
// plaintext never share an IV or ciphertext.
func TestEncrypt_FreshIVPerCall(t *testing.T) {
	svc := NewEncryptService()
	key := testKey(t, 64)

	a, err := svc.Encrypt("same", key)
	require.NoError(t, err)
	b, err := svc.Encrypt("same", key)
	require.NoError(t, err)

	assert.NotEqual(t, a.IV, b.IV)
	assert.NotEqual(t, a.Data, b.Data)
}

// TestDecryptString_MacMismatch verifies that a tampered ciphertext fails
// closed before any plaintext is produced.
func TestDecryptString_MacMismatch(t *testing.T) {
	svc := NewEncryptService()
	key := testKey(t, 64)

	enc, err := svc.Encrypt("secret", key)
	require.NoError(t, err)

	ct, err := base64.StdEncoding.DecodeString(enc.Data)
	require.NoError(t, err)
	ct[0] ^= 0xFF
	enc.Data = base64.StdEncoding.EncodeToString(ct)

	_, err = svc.DecryptString(enc, key)
	assert.ErrorIs(t, err, ErrMacMismatch)
}

// TestDecryptString_WrongKeyFailsMac verifies that decrypting under a
// different key is reported as a MAC mismatch, not as garbage output.
func TestDecryptString_WrongKeyFailsMac(t *testing.T) {
	svc := NewEncryptService()
	key := testKey(t, 64)

	enc, err := svc.Encrypt("secret", key)
	require.NoError(t, err)

	other := make([]byte, 64)
	for i := range other {
		other[i] = byte(0xF0 - i)
	}
	otherKey, err := NewSymmetricCryptoKey(other)
	require.NoError(t, err)

	_, err = svc.DecryptString(enc, otherKey)
	assert.ErrorIs(t, err, ErrMacMismatch)
}

// TestDecryptString_TypeMismatch verifies the ciphertext/key type guard.
func TestDecryptString_TypeMismatch(t *testing.T) {
	svc := NewEncryptService()
	key64 := testKey(t, 64)
	key32 := testKey(t, 32)

	enc, err := svc.Encrypt("secret", key64)
	require.NoError(t, err)

	_, err = svc.DecryptString(enc, key32)
	assert.ErrorIs(t, err, ErrKeyTypeMismatch)
}

// TestEncryptDecryptString_Empty verifies that the primitive itself
// accepts empty plaintext; nullability policy lives with the callers.
func TestEncryptDecryptString_Empty(t *testing.T) {
	svc := NewEncryptService()
	key := testKey(t, 64)

	enc, err := svc.Encrypt("", key)
	require.NoError(t, err)
	require.NotNil(t, enc)

	plain, err := svc.DecryptString(enc, key)
	require.NoError(t, err)
	assert.Empty(t, plain)
}

// ── EncryptBytes / DecryptBytes ───────────────────────────────────────────────

// TestEncryptDecryptBytes_RoundTrip verifies the binary blob pipeline and
// the blob layout.
func TestEncryptDecryptBytes_RoundTrip(t *testing.T) {
	svc := NewEncryptService()
	key := testKey(t, 64)
	payload := bytes.Repeat([]byte{0xAB, 0xCD}, 1000)

	enc, err := svc.EncryptBytes(payload, key)
	require.NoError(t, err)
	require.NotNil(t, enc)

	assert.Equal(t, models.AesCbc256HmacSha256B64, enc.Type)
	assert.Len(t, enc.IV, 16)
	assert.Len(t, enc.MAC, 32)
	assert.Equal(t, byte(models.AesCbc256HmacSha256B64), enc.Bytes[0])

	plain, err := svc.DecryptBytes(enc, key)
	require.NoError(t, err)
	assert.Equal(t, payload, plain)
}

// TestDecryptBytes_Tampered verifies MAC failure on a modified blob.
func TestDecryptBytes_Tampered(t *testing.T) {
	svc := NewEncryptService()
	key := testKey(t, 64)

	enc, err := svc.EncryptBytes([]byte("blob"), key)
	require.NoError(t, err)

	enc.Data[0] ^= 0x01
	_, err = svc.DecryptBytes(enc, key)
	assert.ErrorIs(t, err, ErrMacMismatch)
}

// ── GenerateDataKey / UnwrapKey ───────────────────────────────────────────────

// TestGenerateDataKey_FreshMaterialPerCall verifies that successive calls
// never reuse key material.
func TestGenerateDataKey_FreshMaterialPerCall(t *testing.T) {
	svc := NewEncryptService()
	wrapping := testKey(t, 64)

	a, _, err := svc.GenerateDataKey(wrapping)
	require.NoError(t, err)
	b, _, err := svc.GenerateDataKey(wrapping)
	require.NoError(t, err)

	assert.Len(t, a.Key, 64)
	assert.NotEqual(t, a.Key, b.Key)
}

// TestGenerateDataKey_WrappedRoundTrip verifies that the wrapped form
// unwraps back to the same material.
func TestGenerateDataKey_WrappedRoundTrip(t *testing.T) {
	svc := NewEncryptService()
	wrapping := testKey(t, 64)

	dataKey, wrapped, err := svc.GenerateDataKey(wrapping)
	require.NoError(t, err)
	require.NotNil(t, wrapped)

	unwrapped, err := svc.UnwrapKey(wrapped, wrapping)
	require.NoError(t, err)
	assert.Equal(t, dataKey.Key, unwrapped.Key)
	assert.Equal(t, models.AesCbc256HmacSha256B64, unwrapped.Type)
}

// TestUnwrapKey_WrongKey verifies that unwrapping under the wrong key
// fails instead of yielding a bogus key.
func TestUnwrapKey_WrongKey(t *testing.T) {
	svc := NewEncryptService()
	wrapping := testKey(t, 64)

	_, wrapped, err := svc.GenerateDataKey(wrapping)
	require.NoError(t, err)

	other := make([]byte, 64)
	for i := range other {
		other[i] = byte(0x5A + i)
	}
	otherKey, err := NewSymmetricCryptoKey(other)
	require.NoError(t, err)

	_, err = svc.UnwrapKey(wrapped, otherKey)
	assert.Error(t, err)
}

// ── PKCS#7 ────────────────────────────────────────────────────────────────────

// TestPkcs7_RoundTrip verifies padding for every remainder length.
func TestPkcs7_RoundTrip(t *testing.T) {
	for n := 0; n <= 32; n++ {
		data := bytes.Repeat([]byte{0x11}, n)
		padded := pkcs7Pad(data, 16)
		require.Zero(t, len(padded)%16)

		out, err := pkcs7Unpad(padded, 16)
		require.NoError(t, err)
		assert.Equal(t, data, out)
	}
}

// TestPkcs7Unpad_Invalid verifies rejection of corrupted padding.
func TestPkcs7Unpad_Invalid(t *testing.T) {
	_, err := pkcs7Unpad(nil, 16)
	assert.ErrorIs(t, err, ErrInvalidPadding)

	_, err = pkcs7Unpad(bytes.Repeat([]byte{0x00}, 16), 16)
	assert.ErrorIs(t, err, ErrInvalidPadding)

	bad := bytes.Repeat([]byte{0x02}, 16)
	bad[15] = 0x20 // padding byte larger than block
	_, err = pkcs7Unpad(bad, 16)
	assert.ErrorIs(t, err, ErrInvalidPadding)
}
