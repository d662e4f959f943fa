// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Solovyev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The structured config stays permissive; hard requirements live on the
// runtime views built from it, see [ClientConfig.validate].
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.ServerAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.PoolSize < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
