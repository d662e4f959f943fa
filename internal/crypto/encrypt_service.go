// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Solovyev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/solovyev/go-vault-cipher/models"
)

// aesEncryptService is the private implementation of [EncryptService]
// based on AES-256-CBC with an encrypt-then-MAC HMAC-SHA256 tag over
// IV ‖ ciphertext. Keys without a MAC half produce legacy unauthenticated
// ciphertexts and are accepted on decrypt for old vault data.
type aesEncryptService struct{}

// NewEncryptService constructs the production [EncryptService].
func NewEncryptService() EncryptService {
	return &aesEncryptService{}
}

func (s *aesEncryptService) Encrypt(plain string, key *SymmetricCryptoKey) (*models.EncString, error) {
	iv, ct, mac, err := s.encryptRaw([]byte(plain), key)
	if err != nil {
		return nil, err
	}

	e := models.NewEncString(
		key.Type,
		base64.StdEncoding.EncodeToString(iv),
		base64.StdEncoding.EncodeToString(ct),
		"",
	)
	if mac != nil {
		e.MAC = base64.StdEncoding.EncodeToString(mac)
	}
	return e, nil
}

func (s *aesEncryptService) EncryptBytes(plain []byte, key *SymmetricCryptoKey) (*models.EncArrayBuffer, error) {
	iv, ct, mac, err := s.encryptRaw(plain, key)
	if err != nil {
		return nil, err
	}

	blob := make([]byte, 0, 1+len(iv)+len(mac)+len(ct))
	blob = append(blob, byte(key.Type))
	blob = append(blob, iv...)
	blob = append(blob, mac...)
	blob = append(blob, ct...)
	return models.NewEncArrayBuffer(blob)
}

func (s *aesEncryptService) DecryptString(enc *models.EncString, key *SymmetricCryptoKey) (string, error) {
	if enc.Type != key.Type {
		return "", fmt.Errorf("%w: ciphertext type %d, key type %d", ErrKeyTypeMismatch, enc.Type, key.Type)
	}

	iv, err := base64.StdEncoding.DecodeString(enc.IV)
	if err != nil {
		return "", fmt.Errorf("decode iv: %w", err)
	}
	ct, err := base64.StdEncoding.DecodeString(enc.Data)
	if err != nil {
		return "", fmt.Errorf("decode data: %w", err)
	}
	var mac []byte
	if enc.MAC != "" {
		if mac, err = base64.StdEncoding.DecodeString(enc.MAC); err != nil {
			return "", fmt.Errorf("decode mac: %w", err)
		}
	}

	plain, err := s.decryptRaw(iv, ct, mac, key)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}

func (s *aesEncryptService) DecryptBytes(enc *models.EncArrayBuffer, key *SymmetricCryptoKey) ([]byte, error) {
	if enc.Type != key.Type {
		return nil, fmt.Errorf("%w: ciphertext type %d, key type %d", ErrKeyTypeMismatch, enc.Type, key.Type)
	}
	return s.decryptRaw(enc.IV, enc.Data, enc.MAC, key)
}

func (s *aesEncryptService) GenerateDataKey(wrappingKey *SymmetricCryptoKey) (*SymmetricCryptoKey, *models.EncString, error) {
	material := make([]byte, 64)
	if _, err := io.ReadFull(rand.Reader, material); err != nil {
		return nil, nil, fmt.Errorf("generate data key: %w", err)
	}

	dataKey, err := NewSymmetricCryptoKey(material)
	if err != nil {
		return nil, nil, err
	}

	iv, ct, mac, err := s.encryptRaw(material, wrappingKey)
	if err != nil {
		return nil, nil, fmt.Errorf("wrap data key: %w", err)
	}
	wrapped := models.NewEncString(
		wrappingKey.Type,
		base64.StdEncoding.EncodeToString(iv),
		base64.StdEncoding.EncodeToString(ct),
		"",
	)
	if mac != nil {
		wrapped.MAC = base64.StdEncoding.EncodeToString(mac)
	}
	return dataKey, wrapped, nil
}

func (s *aesEncryptService) UnwrapKey(wrapped *models.EncString, wrappingKey *SymmetricCryptoKey) (*SymmetricCryptoKey, error) {
	material, err := s.DecryptString(wrapped, wrappingKey)
	if err != nil {
		return nil, fmt.Errorf("unwrap key: %w", err)
	}
	return NewSymmetricCryptoKey([]byte(material))
}

// encryptRaw runs the CBC core: random IV, PKCS#7 padding, then an HMAC
// over IV ‖ ciphertext when the key carries a MAC half.
func (s *aesEncryptService) encryptRaw(plain []byte, key *SymmetricCryptoKey) (iv, ct, mac []byte, err error) {
	block, err := aes.NewCipher(key.EncKey)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("create cipher: %w", err)
	}

	iv = make([]byte, aes.BlockSize)
	if _, err = io.ReadFull(rand.Reader, iv); err != nil {
		return nil, nil, nil, fmt.Errorf("generate iv: %w", err)
	}

	padded := pkcs7Pad(plain, aes.BlockSize)
	ct = make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ct, padded)

	if key.MacKey != nil {
		h := hmac.New(sha256.New, key.MacKey)
		h.Write(iv)
		h.Write(ct)
		mac = h.Sum(nil)
	}
	return iv, ct, mac, nil
}

// decryptRaw verifies the MAC first, then strips CBC and padding.
func (s *aesEncryptService) decryptRaw(iv, ct, mac []byte, key *SymmetricCryptoKey) ([]byte, error) {
	if key.MacKey != nil {
		h := hmac.New(sha256.New, key.MacKey)
		h.Write(iv)
		h.Write(ct)
		if !hmac.Equal(h.Sum(nil), mac) {
			return nil, ErrMacMismatch
		}
	}

	block, err := aes.NewCipher(key.EncKey)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	if len(iv) != aes.BlockSize || len(ct) == 0 || len(ct)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: bad block lengths", ErrInvalidPadding)
	}

	plain := make([]byte, len(ct))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plain, ct)
	return pkcs7Unpad(plain, aes.BlockSize)
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, ErrInvalidPadding
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize || n > len(data) {
		return nil, ErrInvalidPadding
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, ErrInvalidPadding
		}
	}
	return data[:len(data)-n], nil
}
