// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Solovyev

package main

import (
	"bufio"
	"context"
	"encoding/base64"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/solovyev/go-vault-cipher/internal/crypto"
	"github.com/solovyev/go-vault-cipher/internal/logger"
	"github.com/solovyev/go-vault-cipher/internal/service"
	"github.com/solovyev/go-vault-cipher/internal/store"
	"github.com/solovyev/go-vault-cipher/models"
)

// app is the thin command dispatcher of the CLI. All real behavior lives
// in the service layer; app only unlocks the keyring, routes one command,
// and renders results to stdout.
type app struct {
	ciphers     *service.CipherService
	attachments *service.AttachmentService
	share       *service.ShareService
	bulk        *service.BulkDecryptService
	keyring     *crypto.Keyring
	local       store.LocalStore
	log         *logger.Logger
}

func newApp(ciphers *service.CipherService, attachments *service.AttachmentService, share *service.ShareService, bulk *service.BulkDecryptService, keyring *crypto.Keyring, local store.LocalStore, log *logger.Logger) *app {
	return &app{
		ciphers:     ciphers,
		attachments: attachments,
		share:       share,
		bulk:        bulk,
		keyring:     keyring,
		local:       local,
		log:         log,
	}
}

func (a *app) run() error {
	args := flag.Args()
	if len(args) == 0 {
		return errors.New("usage: vaultcli <list|add-note|lock>")
	}

	ctx := a.log.WithContext(context.Background())

	switch args[0] {
	case "list":
		if err := a.unlock(ctx); err != nil {
			return err
		}
		return a.list(ctx)
	case "add-note":
		if len(args) < 2 {
			return errors.New("usage: vaultcli add-note <name>")
		}
		if err := a.unlock(ctx); err != nil {
			return err
		}
		return a.addNote(ctx, args[1])
	case "lock":
		a.keyring.Lock()
		fmt.Println("vault locked")
		return nil
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

// list decrypts every cached cipher and prints one line per item.
func (a *app) list(ctx context.Context) error {
	ciphers, err := a.local.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("load cached ciphers: %w", err)
	}

	views, err := a.bulk.DecryptMany(ctx, ciphers)
	if err != nil {
		return fmt.Errorf("decrypt ciphers: %w", err)
	}

	for _, v := range views {
		line := v.Name
		if sub := v.SubTitle(); sub != "" {
			line += "  (" + sub + ")"
		}
		fmt.Println(line)
	}
	return nil
}

// addNote encrypts a secure note read from stdin and caches it locally.
// Items created offline get a client-generated id; the server keeps it on
// first sync.
func (a *app) addNote(ctx context.Context, name string) error {
	fmt.Println("note body (end with EOF):")
	var body strings.Builder
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		body.WriteString(scanner.Text())
		body.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read note body: %w", err)
	}

	view := &models.CipherView{
		ID:         uuid.NewString(),
		Type:       models.CipherTypeSecureNote,
		Name:       name,
		Notes:      strings.TrimRight(body.String(), "\n"),
		SecureNote: models.SecureNoteView{Type: models.SecureNoteTypeGeneric},
	}

	cipher, err := a.ciphers.Encrypt(ctx, view, service.EncryptOptions{})
	if err != nil {
		return fmt.Errorf("encrypt note: %w", err)
	}
	if err = a.local.Upsert(ctx, cipher); err != nil {
		return fmt.Errorf("cache note: %w", err)
	}

	fmt.Println("created", cipher.ID)
	return nil
}

// unlock derives the personal key from a master password read on stdin
// and installs it in the keyring. The KDF salt is read from
// VAULT_KDF_SALT as base64.
func (a *app) unlock(ctx context.Context) error {
	salt, err := base64.StdEncoding.DecodeString(os.Getenv("VAULT_KDF_SALT"))
	if err != nil || len(salt) == 0 {
		return errors.New("VAULT_KDF_SALT must hold the base64 KDF salt")
	}

	fmt.Print("master password: ")
	reader := bufio.NewReader(os.Stdin)
	password, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("read master password: %w", err)
	}
	password = strings.TrimRight(password, "\r\n")

	key, err := crypto.NewKeyChain().DeriveMasterKey(password, salt)
	if err != nil {
		return fmt.Errorf("derive master key: %w", err)
	}

	a.keyring.Unlock(key, nil)
	if _, err = a.keyring.PersonalKey(ctx); err != nil {
		return err
	}

	fmt.Println("vault unlocked")
	return nil
}
