package postgres

import (
	"context"
	"database/sql"
	"strings"

	"medication-tracker/internal/ports/storage"
)

// KVStore persiste el estado de la app en una tabla key-value plana.
// Cada Set reescribe el registro completo (last-writer-wins, sin merge).
type KVStore struct {
	db *sql.DB
}

func NewKVStore(db *sql.DB) storage.Store {
	return &KVStore{db: db}
}

// EnsureSchema crea la tabla si no existe. No hay migraciones formales:
// el esquema es una sola tabla y las keys llevan versión en el nombre.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS app_state (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	return err
}

func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", false, nil
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT value FROM app_state WHERE key = $1
	`, key)

	var value string
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

func (s *KVStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO app_state (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = now()
	`, key, value)
	return err
}
