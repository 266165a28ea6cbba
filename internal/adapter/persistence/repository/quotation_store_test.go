package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"window_quotation/internal/usecase/interfaces"
)

func TestQuotationStores(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	stores := map[string]func(t *testing.T) interfaces.IQuotationStore{
		"memory": func(t *testing.T) interfaces.IQuotationStore { return NewQuotationMemoryStore() },
		"sqlite": func(t *testing.T) interfaces.IQuotationStore {
			s, err := NewQuotationSQLiteStore(filepath.Join(t.TempDir(), "cache", "quotations.db"))
			if err != nil {
				t.Fatalf("open sqlite store: %v", err)
			}
			return s
		},
	}

	for name, open := range stores {
		t.Run(name, func(t *testing.T) {
			s := open(t)
			defer s.Close()

			got, err := s.Get(ctx, "QT-1")
			if err != nil || got.ID != "" {
				t.Fatalf("expected empty entity for missing key, got %+v err=%v", got, err)
			}

			q := storedQuotation("id-1", "QT-1", now)
			if err := s.Set(ctx, "QT-1", q); err != nil {
				t.Fatalf("set: %v", err)
			}
			got, err = s.Get(ctx, "QT-1")
			if err != nil {
				t.Fatalf("get: %v", err)
			}
			if got.ID != "id-1" || got.GrandTotal != q.GrandTotal || !got.UpdatedAt.Equal(now) {
				t.Fatalf("unexpected record: %+v", got)
			}
			if string(got.Record) != string(q.Record) {
				t.Fatalf("record changed: %s", got.Record)
			}

			q.ClientName = "Ravi"
			if err := s.Set(ctx, "QT-1", q); err != nil {
				t.Fatalf("overwrite: %v", err)
			}
			got, _ = s.Get(ctx, "QT-1")
			if got.ClientName != "Ravi" {
				t.Fatalf("expected overwrite, got %+v", got)
			}
		})
	}

	t.Run("sqlite survives reopen", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "quotations.db")
		s, err := NewQuotationSQLiteStore(path)
		if err != nil {
			t.Fatalf("open: %v", err)
		}
		if err := s.Set(ctx, "QT-2", storedQuotation("id-2", "QT-2", now)); err != nil {
			t.Fatalf("set: %v", err)
		}
		_ = s.Close()

		s, err = NewQuotationSQLiteStore(path)
		if err != nil {
			t.Fatalf("reopen: %v", err)
		}
		defer s.Close()
		got, err := s.Get(ctx, "QT-2")
		if err != nil || got.ID != "id-2" {
			t.Fatalf("expected persisted record, got %+v err=%v", got, err)
		}
	})

	t.Run("memory store isolates record bytes", func(t *testing.T) {
		s := NewQuotationMemoryStore()
		q := storedQuotation("id-3", "QT-3", now)
		_ = s.Set(ctx, "QT-3", q)
		q.Record[0] = 'X'
		got, _ := s.Get(ctx, "QT-3")
		if got.Record[0] != '{' {
			t.Fatalf("stored record was aliased")
		}
	})
}
