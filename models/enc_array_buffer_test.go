package models

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewEncArrayBuffer_Empty verifies the "null in, null out" rule for
// binary blobs.
func TestNewEncArrayBuffer_Empty(t *testing.T) {
	e, err := NewEncArrayBuffer(nil)
	require.NoError(t, err)
	assert.Nil(t, e)
}

// TestNewEncArrayBuffer_Authenticated verifies segment extraction for the
// MAC-carrying layout [type:1][iv:16][mac:32][data].
func TestNewEncArrayBuffer_Authenticated(t *testing.T) {
	iv := bytes.Repeat([]byte{0x01}, 16)
	mac := bytes.Repeat([]byte{0x02}, 32)
	data := []byte{0xAA, 0xBB, 0xCC}

	blob := append([]byte{byte(AesCbc256HmacSha256B64)}, iv...)
	blob = append(blob, mac...)
	blob = append(blob, data...)

	e, err := NewEncArrayBuffer(blob)
	require.NoError(t, err)

	assert.Equal(t, AesCbc256HmacSha256B64, e.Type)
	assert.Equal(t, iv, e.IV)
	assert.Equal(t, mac, e.MAC)
	assert.Equal(t, data, e.Data)
	assert.Equal(t, blob, e.Bytes)
	assert.Equal(t, int64(len(blob)), e.Size())
}

// TestNewEncArrayBuffer_NoMac verifies the unauthenticated layout
// [type:1][iv:16][data].
func TestNewEncArrayBuffer_NoMac(t *testing.T) {
	iv := bytes.Repeat([]byte{0x03}, 16)
	data := []byte{0xDD}

	blob := append([]byte{byte(AesCbc256B64)}, iv...)
	blob = append(blob, data...)

	e, err := NewEncArrayBuffer(blob)
	require.NoError(t, err)

	assert.Equal(t, AesCbc256B64, e.Type)
	assert.Equal(t, iv, e.IV)
	assert.Nil(t, e.MAC)
	assert.Equal(t, data, e.Data)
}

// TestNewEncArrayBuffer_TooShort verifies that a truncated blob is
// rejected.
func TestNewEncArrayBuffer_TooShort(t *testing.T) {
	blob := append([]byte{byte(AesCbc256HmacSha256B64)}, bytes.Repeat([]byte{0}, 20)...)
	_, err := NewEncArrayBuffer(blob)
	assert.ErrorIs(t, err, ErrMalformedEncString)
}

// TestNewEncArrayBuffer_UnknownType verifies that an unknown type byte is
// rejected.
func TestNewEncArrayBuffer_UnknownType(t *testing.T) {
	blob := append([]byte{0x63}, bytes.Repeat([]byte{0}, 64)...)
	_, err := NewEncArrayBuffer(blob)
	assert.ErrorIs(t, err, ErrMalformedEncString)
}

// TestEncArrayBufferSize_Nil verifies the nil receiver reports zero.
func TestEncArrayBufferSize_Nil(t *testing.T) {
	var e *EncArrayBuffer
	assert.Zero(t, e.Size())
}
