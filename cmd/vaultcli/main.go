// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Solovyev

package main

import (
	"fmt"

	"github.com/solovyev/go-vault-cipher/internal/adapter"
	"github.com/solovyev/go-vault-cipher/internal/config"
	"github.com/solovyev/go-vault-cipher/internal/crypto"
	"github.com/solovyev/go-vault-cipher/internal/logger"
	"github.com/solovyev/go-vault-cipher/internal/service"
	"github.com/solovyev/go-vault-cipher/internal/store"
	"github.com/solovyev/go-vault-cipher/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("vault-cipher").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("vault-cipher")
	if cfg.App.LogFile != "" {
		log = logger.NewFileLogger("vault-cipher", cfg.App.LogFile)
	}

	apiClient := adapter.NewHTTPApiClient(adapter.HTTPClientConfig{
		BaseURL: cfg.Adapter.ServerAddress,
		Timeout: cfg.Adapter.RequestTimeout,
	})

	localStore, err := store.NewSQLiteStore(cfg.Storage.DB.DSN, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local store")
	}
	defer localStore.Close()

	keyring := crypto.NewKeyring()
	resolver := crypto.NewKeyResolver(keyring)
	encryptService := crypto.NewEncryptService()

	cipherService := service.NewCipherService(encryptService, resolver, localStore, log)
	attachmentService := service.NewAttachmentService(encryptService, resolver, apiClient, localStore, log)
	shareService := service.NewShareService(cipherService, resolver, apiClient, localStore, log)
	bulkService := service.NewBulkDecryptService(cipherService, resolver, workers.PoolRunner{Workers: cfg.Workers.PoolSize})

	app := newApp(cipherService, attachmentService, shareService, bulkService, keyring, localStore, log)
	if err = app.run(); err != nil {
		log.Fatal().Err(err).Msg("vault run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
