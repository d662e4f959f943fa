// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Solovyev

package models

import "fmt"

const (
	encBufferMinLength    = 1 + 16 + 1      // type byte + IV + at least one data byte
	encBufferMinMacLength = 1 + 16 + 32 + 1 // type byte + IV + MAC + at least one data byte
)

// EncArrayBuffer is the binary analogue of EncString, used for file
// contents. The whole blob is what travels over the wire:
//
//	[type:1][iv:16][mac:32]?[data:...]
//
// The MAC segment is present only for authenticated encryption types.
type EncArrayBuffer struct {
	Bytes []byte

	Type EncryptionType
	IV   []byte
	MAC  []byte
	Data []byte
}

// NewEncArrayBuffer splits a raw encrypted blob into its segments. The
// blob is retained as-is in Bytes so it can be uploaded without reassembly.
func NewEncArrayBuffer(blob []byte) (*EncArrayBuffer, error) {
	if len(blob) == 0 {
		return nil, nil
	}

	e := &EncArrayBuffer{Bytes: blob, Type: EncryptionType(blob[0])}
	switch e.Type {
	case AesCbc256HmacSha256B64, AesCbc128HmacSha256B64:
		if len(blob) < encBufferMinMacLength {
			return nil, fmt.Errorf("%w: %d bytes for type %d", ErrMalformedEncString, len(blob), e.Type)
		}
		e.IV = blob[1:17]
		e.MAC = blob[17:49]
		e.Data = blob[49:]
	case AesCbc256B64:
		if len(blob) < encBufferMinLength {
			return nil, fmt.Errorf("%w: %d bytes for type %d", ErrMalformedEncString, len(blob), e.Type)
		}
		e.IV = blob[1:17]
		e.Data = blob[17:]
	default:
		return nil, fmt.Errorf("%w: unknown buffer type %d", ErrMalformedEncString, e.Type)
	}
	return e, nil
}

// Size returns the total length of the encrypted blob in bytes.
func (e *EncArrayBuffer) Size() int64 {
	if e == nil {
		return 0
	}
	return int64(len(e.Bytes))
}
