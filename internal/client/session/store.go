package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/benhsieh-dev/Youtube/internal/client/models"
	"github.com/benhsieh-dev/Youtube/internal/client/repositories/metadata"
	"github.com/benhsieh-dev/Youtube/internal/dbx"
	"github.com/benhsieh-dev/Youtube/internal/logging"
)

// Metadata keys holding the persisted session.
const (
	userKey  = "user"
	tokenKey = "token"
)

// Store persists the signed-in user across restarts.
//
// Read and Credential never fail: any problem reading the record is treated
// as "no session". Write replaces the previous record; Clear is idempotent.
type Store interface {
	Read(ctx context.Context) (*models.User, bool)
	Write(ctx context.Context, u *models.User, credential string) error
	Clear(ctx context.Context) error
	Credential(ctx context.Context) string
}

// SQLiteStore keeps the session in the local metadata table.
type SQLiteStore struct {
	db     *sql.DB
	logger logging.Logger
}

func NewSQLiteStore(db *sql.DB, logger logging.Logger) *SQLiteStore {
	return &SQLiteStore{db: db, logger: logger.With("component", "session_store")}
}

func (s *SQLiteStore) Read(ctx context.Context) (*models.User, bool) {
	raw, err := metadata.NewSQLiteRepository(s.db).Get(ctx, userKey)
	if err != nil {
		if !errors.Is(err, metadata.ErrNotFound) {
			s.logger.Warn(ctx, "session read failed", "error", err)
		}
		return nil, false
	}

	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		s.logger.Warn(ctx, "stored session is not valid JSON", "error", err)
		return nil, false
	}
	if u.ID == 0 || u.Username == "" {
		s.logger.Warn(ctx, "stored session is incomplete", "user_id", u.ID)
		return nil, false
	}
	return &u, true
}

func (s *SQLiteStore) Credential(ctx context.Context) string {
	raw, err := metadata.NewSQLiteRepository(s.db).Get(ctx, tokenKey)
	if err != nil {
		if !errors.Is(err, metadata.ErrNotFound) {
			s.logger.Warn(ctx, "credential read failed", "error", err)
		}
		return ""
	}
	return string(raw)
}

// Write stores u and its credential in one transaction. An empty credential
// removes any credential left by a previous session.
func (s *SQLiteStore) Write(ctx context.Context, u *models.User, credential string) error {
	if u == nil {
		return errors.New("session write: nil user")
	}
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("session write: %w", err)
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, userKey, raw); err != nil {
			return err
		}
		if credential == "" {
			return repo.Delete(ctx, tokenKey)
		}
		return repo.Set(ctx, tokenKey, []byte(credential))
	})
	if err != nil {
		return fmt.Errorf("session write: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return metadata.NewSQLiteRepository(tx).Delete(ctx, userKey, tokenKey)
	})
	if err != nil {
		return fmt.Errorf("session clear: %w", err)
	}
	return nil
}
