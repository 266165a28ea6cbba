package interfaces

import (
	"context"

	"window_quotation/internal/domain/entities"
)

// IQuotationStore is the local key-value cache of encoded quotations, keyed
// by quotation number.
//
// Lifecycle: opened when the service starts, written on every mutation,
// closed on shutdown. Get returns an empty entity (ID == "") when the key is
// absent.
type IQuotationStore interface {
	Get(ctx context.Context, key string) (entities.StoredQuotation, error)
	Set(ctx context.Context, key string, q entities.StoredQuotation) error
	Close() error
}
