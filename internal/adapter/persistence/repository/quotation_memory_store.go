package repository

import (
	"context"
	"sync"

	"window_quotation/internal/domain/entities"
	"window_quotation/internal/usecase/interfaces"
)

// QuotationMemoryStore keeps the local cache in process. Used when no cache
// path is configured and by the CLI.
type QuotationMemoryStore struct {
	mu    sync.RWMutex
	items map[string]entities.StoredQuotation
}

var _ interfaces.IQuotationStore = (*QuotationMemoryStore)(nil)

func NewQuotationMemoryStore() *QuotationMemoryStore {
	return &QuotationMemoryStore{items: map[string]entities.StoredQuotation{}}
}

func (s *QuotationMemoryStore) Get(_ context.Context, key string) (entities.StoredQuotation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q, ok := s.items[key]
	if !ok {
		return entities.StoredQuotation{}, nil
	}
	q.Record = cloneBytes(q.Record)
	return q, nil
}

func (s *QuotationMemoryStore) Set(_ context.Context, key string, q entities.StoredQuotation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	q.Record = cloneBytes(q.Record)
	s.items[key] = q
	return nil
}

func (s *QuotationMemoryStore) Close() error { return nil }
