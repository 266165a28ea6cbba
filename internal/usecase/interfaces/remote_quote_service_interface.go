package interfaces

import (
	"context"

	"window_quotation/internal/domain/entities"
)

// IRemoteQuoteService abstracts the shared quotation database.
//
// The service must be able to:
//   - decide create vs update by looking a quotation up by number
//   - create a record the first time a quotation is saved
//   - overwrite a record by id on later saves (last write wins)
//
// FindByNumber returns an empty entity (ID == "") when nothing matches.
type IRemoteQuoteService interface {
	Create(ctx context.Context, q entities.StoredQuotation) (entities.StoredQuotation, error)
	Update(ctx context.Context, id string, q entities.StoredQuotation) (entities.StoredQuotation, error)
	FindByNumber(ctx context.Context, number string) (entities.StoredQuotation, error)
}
