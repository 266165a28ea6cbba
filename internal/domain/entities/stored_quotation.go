package entities

import (
	"encoding/json"
	"time"
)

// StoredQuotation is the envelope persisted by local and remote stores.
//
// Storage model:
//   - Record is the full encoded storage record (JSON), authoritative for reconstruction.
//   - QuotationNumber, Status, ClientName, GrandTotal and WindowCount are copied out
//     of the record for lookups and listings only.
type StoredQuotation struct {
	ID              string          `json:"id"`
	QuotationNumber string          `json:"quotation_number"`
	Status          QuotationStatus `json:"status"`
	ClientName      string          `json:"client_name"`
	GrandTotal      float64         `json:"grand_total"`
	WindowCount     int             `json:"window_count"`
	Record          json.RawMessage `json:"record"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
