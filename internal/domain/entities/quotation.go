package entities

import "time"

// QuotationStatus represents the lifecycle of a quotation.
//
// Only draft -> submitted is decided here (after full validation); later
// transitions are driven externally and merely stored.
type QuotationStatus string

const (
	QuotationStatusDraft     QuotationStatus = "draft"
	QuotationStatusSubmitted QuotationStatus = "submitted"
	QuotationStatusApproved  QuotationStatus = "approved"
	QuotationStatusRejected  QuotationStatus = "rejected"
	QuotationStatusArchived  QuotationStatus = "archived"
)

func (s QuotationStatus) Valid() bool {
	switch s {
	case QuotationStatusDraft, QuotationStatusSubmitted, QuotationStatusApproved, QuotationStatusRejected, QuotationStatusArchived:
		return true
	}
	return false
}

type ClientInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Company string `json:"company"`
}

type CompanyInfo struct {
	Name    string `json:"name"`
	GSTIN   string `json:"gstin"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// Quotation is the aggregate: ordered windows plus client/company metadata.
// It always holds at least one window.
type Quotation struct {
	Number         string           `json:"quotationNumber"`
	Date           time.Time        `json:"date"`
	ValidUntil     time.Time        `json:"validUntil"`
	Client         ClientInfo       `json:"clientInfo"`
	Company        CompanyInfo      `json:"companyInfo"`
	Windows        []WindowInstance `json:"windows"`
	ActiveWindowID string           `json:"activeWindowId"`
	Status         QuotationStatus  `json:"status"`
	Notes          string           `json:"notes"`
}

// Clone copies the aggregate so a failed operation can leave the original
// untouched.
func (q Quotation) Clone() Quotation {
	out := q
	out.Windows = make([]WindowInstance, len(q.Windows))
	for i, w := range q.Windows {
		out.Windows[i] = w.Clone()
	}
	return out
}
