// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Solovyev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedEncString is returned when a serialized ciphertext cannot be
// split into the pieces its encryption type requires.
var ErrMalformedEncString = errors.New("malformed encrypted string")

// EncString is an immutable, versioned ciphertext wrapper for a single
// string value. It never holds plaintext. On the wire it is a single
// delimited string of the form "type.iv|data|mac" (pieces vary by type);
// in memory it keeps the Base64 pieces split out.
type EncString struct {
	Type EncryptionType
	IV   string
	Data string
	MAC  string
}

// NewEncString assembles an EncString from already-encoded Base64 pieces.
// Pieces that the encryption type does not use are left empty.
func NewEncString(t EncryptionType, iv, data, mac string) *EncString {
	return &EncString{Type: t, IV: iv, Data: data, MAC: mac}
}

// ParseEncString parses the serialized "type.iv|data|mac" form back into an
// EncString. An empty input yields nil without error, mirroring the
// "null in, null out" rule used across all models.
//
// Strings without a "type." header are legacy format: three pieces mean
// AES-128-CBC-HMAC, otherwise AES-256-CBC without a MAC.
func ParseEncString(s string) (*EncString, error) {
	if s == "" {
		return nil, nil
	}

	var encType EncryptionType
	body := s
	if headerIdx := strings.Index(s, "."); headerIdx > 0 {
		n, err := strconv.Atoi(s[:headerIdx])
		if err != nil {
			return nil, fmt.Errorf("%w: bad type header %q", ErrMalformedEncString, s[:headerIdx])
		}
		encType = EncryptionType(n)
		body = s[headerIdx+1:]
	} else {
		// Legacy ciphertexts predate the type header.
		if strings.Count(s, "|") == 2 {
			encType = AesCbc128HmacSha256B64
		} else {
			encType = AesCbc256B64
		}
	}

	pieces := strings.Split(body, "|")
	if want := encType.pieces(); want == 0 || len(pieces) != want {
		return nil, fmt.Errorf("%w: type %d with %d pieces", ErrMalformedEncString, encType, len(pieces))
	}

	e := &EncString{Type: encType}
	switch encType {
	case AesCbc256B64:
		e.IV, e.Data = pieces[0], pieces[1]
	case AesCbc128HmacSha256B64, AesCbc256HmacSha256B64:
		e.IV, e.Data, e.MAC = pieces[0], pieces[1], pieces[2]
	case Rsa2048OaepSha256B64, Rsa2048OaepSha1B64:
		e.Data = pieces[0]
	case Rsa2048OaepSha256HmacSha256B64, Rsa2048OaepSha1HmacSha256B64:
		e.Data, e.MAC = pieces[0], pieces[1]
	}
	return e, nil
}

// String serializes the EncString back to its wire form. The round trip
// through ParseEncString is lossless.
func (e *EncString) String() string {
	if e == nil {
		return ""
	}

	header := strconv.Itoa(int(e.Type)) + "."
	switch e.Type {
	case AesCbc256B64:
		return header + e.IV + "|" + e.Data
	case AesCbc128HmacSha256B64, AesCbc256HmacSha256B64:
		return header + e.IV + "|" + e.Data + "|" + e.MAC
	case Rsa2048OaepSha256B64, Rsa2048OaepSha1B64:
		return header + e.Data
	case Rsa2048OaepSha256HmacSha256B64, Rsa2048OaepSha1HmacSha256B64:
		return header + e.Data + "|" + e.MAC
	default:
		return header + e.Data
	}
}

// MarshalJSON writes the EncString as its single wire string.
func (e EncString) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.String())
}

// UnmarshalJSON accepts either the wire string or JSON null.
func (e *EncString) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == nil || *s == "" {
		*e = EncString{}
		return nil
	}

	parsed, err := ParseEncString(*s)
	if err != nil {
		return err
	}
	*e = *parsed
	return nil
}
