// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Solovyev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/solovyev/go-vault-cipher/internal/logger"
	"github.com/solovyev/go-vault-cipher/migrations"
	"github.com/solovyev/go-vault-cipher/models"
)

// SQLiteStore is the sqlite-backed [LocalStore]. Cipher records are kept
// as their JSON wire form in a single column; ownership and folder ids
// are mirrored into indexed columns for filtering.
type SQLiteStore struct {
	db     *sql.DB
	sb     sq.StatementBuilderType
	logger *logger.Logger
}

// NewSQLiteStore opens (or creates) the cache database at path and
// applies pending schema migrations. Use ":memory:" for an ephemeral
// cache.
func NewSQLiteStore(path string, log *logger.Logger) (*SQLiteStore, error) {
	if path == "" {
		path = ":memory:"
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open local cache: %w", err)
	}
	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("ping local cache: %w", err)
	}
	if err = migrations.Migrate(db); err != nil {
		return nil, err
	}

	return &SQLiteStore{
		db:     db,
		sb:     sq.StatementBuilder.PlaceholderFormat(sq.Question),
		logger: log,
	}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Upsert implements [LocalStore].
func (s *SQLiteStore) Upsert(ctx context.Context, ciphers ...*models.Cipher) error {
	now := time.Now().UTC().Format(time.RFC3339)

	for _, c := range ciphers {
		data, err := json.Marshal(c)
		if err != nil {
			return fmt.Errorf("marshal cipher %s: %w", c.ID, err)
		}

		revision := ""
		if c.RevisionDate != nil {
			revision = c.RevisionDate.UTC().Format(time.RFC3339)
		}

		query, args, err := s.sb.
			Insert("ciphers").
			Columns("id", "organization_id", "folder_id", "type", "favorite", "data", "revision_date", "created_at", "updated_at").
			Values(c.ID, c.OrganizationID, c.FolderID, int(c.Type), c.Favorite, string(data), revision, now, now).
			Suffix(`ON CONFLICT(id) DO UPDATE SET
				organization_id = excluded.organization_id,
				folder_id = excluded.folder_id,
				type = excluded.type,
				favorite = excluded.favorite,
				data = excluded.data,
				revision_date = excluded.revision_date,
				updated_at = excluded.updated_at`).
			ToSql()
		if err != nil {
			return fmt.Errorf("build upsert query: %w", err)
		}

		if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
			s.logger.Err(err).Str("cipher_id", c.ID).Msg("failed to upsert cipher")
			return fmt.Errorf("upsert cipher %s: %w", c.ID, err)
		}
	}
	return nil
}

// Get implements [LocalStore].
func (s *SQLiteStore) Get(ctx context.Context, id string) (*models.Cipher, error) {
	query, args, err := s.sb.
		Select("data").
		From("ciphers").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get query: %w", err)
	}

	var data string
	if err = s.db.QueryRowContext(ctx, query, args...).Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrCipherNotFound, id)
		}
		return nil, fmt.Errorf("query cipher %s: %w", id, err)
	}

	var c models.Cipher
	if err = json.Unmarshal([]byte(data), &c); err != nil {
		return nil, fmt.Errorf("unmarshal cipher %s: %w", id, err)
	}
	return &c, nil
}

// GetAll implements [LocalStore].
func (s *SQLiteStore) GetAll(ctx context.Context) ([]*models.Cipher, error) {
	query, args, err := s.sb.
		Select("data").
		From("ciphers").
		OrderBy("updated_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get all query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query ciphers: %w", err)
	}
	defer rows.Close()

	var ciphers []*models.Cipher
	for rows.Next() {
		var data string
		if err = rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scan cipher row: %w", err)
		}
		var c models.Cipher
		if err = json.Unmarshal([]byte(data), &c); err != nil {
			return nil, fmt.Errorf("unmarshal cipher row: %w", err)
		}
		ciphers = append(ciphers, &c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cipher rows: %w", err)
	}
	return ciphers, nil
}

// Delete implements [LocalStore].
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	query, args, err := s.sb.
		Delete("ciphers").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete cipher %s: %w", id, err)
	}
	return nil
}

// DeleteAttachment implements [LocalStore]. The record is rewritten
// without the attachment entry inside a transaction so a concurrent
// upsert cannot resurrect it.
func (s *SQLiteStore) DeleteAttachment(ctx context.Context, cipherID, attachmentID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin attachment delete: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	var data string
	row := tx.QueryRowContext(ctx, "SELECT data FROM ciphers WHERE id = ?", cipherID)
	if err = row.Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: %s", ErrCipherNotFound, cipherID)
		}
		return fmt.Errorf("query cipher %s: %w", cipherID, err)
	}

	var c models.Cipher
	if err = json.Unmarshal([]byte(data), &c); err != nil {
		return fmt.Errorf("unmarshal cipher %s: %w", cipherID, err)
	}

	kept := c.Attachments[:0]
	found := false
	for _, a := range c.Attachments {
		if a.ID == attachmentID {
			found = true
			continue
		}
		kept = append(kept, a)
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrAttachmentNotFound, attachmentID)
	}
	if len(kept) == 0 {
		c.Attachments = nil
	} else {
		c.Attachments = kept
	}

	updated, err := json.Marshal(&c)
	if err != nil {
		return fmt.Errorf("marshal cipher %s: %w", cipherID, err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	if _, err = tx.ExecContext(ctx, "UPDATE ciphers SET data = ?, updated_at = ? WHERE id = ?", string(updated), now, cipherID); err != nil {
		return fmt.Errorf("update cipher %s: %w", cipherID, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit attachment delete: %w", err)
	}
	return nil
}
