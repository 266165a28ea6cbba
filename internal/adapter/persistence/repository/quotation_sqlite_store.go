package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"window_quotation/internal/domain/entities"
	"window_quotation/internal/usecase/interfaces"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// QuotationSQLiteStore is the local quotation cache. Each quotation is one
// JSON blob keyed by quotation number.
type QuotationSQLiteStore struct {
	db *sql.DB
}

var _ interfaces.IQuotationStore = (*QuotationSQLiteStore)(nil)

func NewQuotationSQLiteStore(path string) (*QuotationSQLiteStore, error) {
	if path == "" {
		path = "quotations.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS quotations (
		key TEXT PRIMARY KEY,
		payload BLOB NOT NULL,
		updated_at TEXT NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create quotations table: %w", err)
	}
	return &QuotationSQLiteStore{db: db}, nil
}

func (s *QuotationSQLiteStore) Get(ctx context.Context, key string) (entities.StoredQuotation, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM quotations WHERE key = ?`, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.StoredQuotation{}, nil
	}
	if err != nil {
		return entities.StoredQuotation{}, fmt.Errorf("select quotation %s: %w", key, err)
	}
	var q entities.StoredQuotation
	if err := json.Unmarshal(payload, &q); err != nil {
		return entities.StoredQuotation{}, fmt.Errorf("decode quotation %s: %w", key, err)
	}
	return q, nil
}

func (s *QuotationSQLiteStore) Set(ctx context.Context, key string, q entities.StoredQuotation) error {
	payload, err := json.Marshal(q)
	if err != nil {
		return fmt.Errorf("encode quotation %s: %w", key, err)
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO quotations (key, payload, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		key, payload, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("upsert quotation %s: %w", key, err)
	}
	return nil
}

func (s *QuotationSQLiteStore) Close() error {
	return s.db.Close()
}
