// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Solovyev

package service

import (
	"context"

	"github.com/solovyev/go-vault-cipher/internal/crypto"
	"github.com/solovyev/go-vault-cipher/internal/workers"
	"github.com/solovyev/go-vault-cipher/models"
)

// BulkDecryptService decrypts whole vaults. The execution strategy is
// injected as a [workers.Runner], so callers pick serial or pooled
// dispatch without the decryption code changing; results always come back
// in input order because every job writes its own index.
type BulkDecryptService struct {
	codec    *CipherService
	resolver *crypto.KeyResolver
	runner   workers.Runner
}

// NewBulkDecryptService wires the bulk dispatcher with its execution
// strategy.
func NewBulkDecryptService(codec *CipherService, resolver *crypto.KeyResolver, runner workers.Runner) *BulkDecryptService {
	return &BulkDecryptService{codec: codec, resolver: resolver, runner: runner}
}

// DecryptMany decrypts ciphers into views, position for position. The key
// for each item is resolved from its ownership; a missing organization key
// or an unknown item type fails the batch, while per-field corruption
// inside an item degrades that item only.
func (s *BulkDecryptService) DecryptMany(ctx context.Context, ciphers []*models.Cipher) ([]*models.CipherView, error) {
	views := make([]*models.CipherView, len(ciphers))

	err := s.runner.Run(ctx, len(ciphers), func(ctx context.Context, i int) error {
		key, err := s.resolver.ResolveKey(ctx, ciphers[i].KeyIdentifier(), nil)
		if err != nil {
			return err
		}
		view, err := s.codec.Decrypt(ctx, ciphers[i], key)
		if err != nil {
			return err
		}
		views[i] = view
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}
