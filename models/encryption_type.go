// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Solovyev

package models

// EncryptionType tags every ciphertext with the scheme that produced it.
// The numeric values are part of the wire format and must never be renumbered.
type EncryptionType int

const (
	// AesCbc256B64 is AES-256-CBC without an authentication tag.
	// Only produced by very old clients; still accepted on decrypt.
	AesCbc256B64 EncryptionType = 0

	// AesCbc128HmacSha256B64 is AES-128-CBC with an HMAC-SHA256 tag.
	// Legacy scheme kept for decrypting pre-migration vaults.
	AesCbc128HmacSha256B64 EncryptionType = 1

	// AesCbc256HmacSha256B64 is AES-256-CBC with an HMAC-SHA256 tag.
	// This is the only scheme new ciphertexts are written with.
	AesCbc256HmacSha256B64 EncryptionType = 2

	Rsa2048OaepSha256B64           EncryptionType = 3
	Rsa2048OaepSha1B64             EncryptionType = 4
	Rsa2048OaepSha256HmacSha256B64 EncryptionType = 5
	Rsa2048OaepSha1HmacSha256B64   EncryptionType = 6
)

// HasMAC reports whether ciphertexts of this type carry an HMAC piece.
func (t EncryptionType) HasMAC() bool {
	switch t {
	case AesCbc128HmacSha256B64, AesCbc256HmacSha256B64,
		Rsa2048OaepSha256HmacSha256B64, Rsa2048OaepSha1HmacSha256B64:
		return true
	default:
		return false
	}
}

// pieces returns the number of "|"-separated parts the serialized form of
// this type must contain.
func (t EncryptionType) pieces() int {
	switch t {
	case AesCbc256B64:
		return 2 // iv|data
	case AesCbc128HmacSha256B64, AesCbc256HmacSha256B64:
		return 3 // iv|data|mac
	case Rsa2048OaepSha256B64, Rsa2048OaepSha1B64:
		return 1 // data
	case Rsa2048OaepSha256HmacSha256B64, Rsa2048OaepSha1HmacSha256B64:
		return 2 // data|mac
	default:
		return 0
	}
}
