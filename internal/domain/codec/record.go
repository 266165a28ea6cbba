package codec

import (
	"encoding/json"

	"window_quotation/internal/domain/entities"
)

// RecordVersion is written on every encode. Decode never branches on it.
const RecordVersion = 2

const dateLayout = "2006-01-02"

// Record is the storage shape of a quotation. WindowSpecs is a flattened,
// reporting-friendly view; RawBackup is authoritative for reconstruction.
type Record struct {
	QuotationNumber string                   `json:"quotationNumber"`
	Date            string                   `json:"date,omitempty"`
	ValidUntil      string                   `json:"validUntil,omitempty"`
	ClientInfo      entities.ClientInfo      `json:"clientInfo"`
	CompanyInfo     entities.CompanyInfo     `json:"companyInfo"`
	WindowSpecs     []FlatWindow             `json:"windowSpecs"`
	Pricing         entities.QuotationTotals `json:"pricing"`
	RawBackup       RawBackup                `json:"rawBackup"`
	Status          entities.QuotationStatus `json:"status"`
	Notes           string                   `json:"notes,omitempty"`
	Version         int                      `json:"version"`

	// CorruptBackup holds, verbatim, a previous payload that could not be
	// decoded. It is carried forward on every later save.
	CorruptBackup string `json:"corruptBackup,omitempty"`
}

type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Unit   string  `json:"unit"`
}

// FlatPricing mirrors PricingBreakdown without the override flags.
type FlatPricing struct {
	UnitPrice          float64 `json:"unitPrice"`
	Quantity           int     `json:"quantity"`
	TotalPrice         float64 `json:"totalPrice"`
	TransportationCost float64 `json:"transportationCost"`
	LoadingCost        float64 `json:"loadingCost"`
	TaxRate            float64 `json:"taxRate"`
	TaxAmount          float64 `json:"taxAmount"`
	GrandTotal         float64 `json:"grandTotal"`
}

type FlatWindow struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	WindowType     string         `json:"windowType"`
	Dimensions     Dimensions     `json:"dimensions"`
	Quantity       int            `json:"quantity"`
	Specifications map[string]any `json:"specifications"`
	Pricing        FlatPricing    `json:"pricing"`
}

// RawPricing stores the four pricing inputs plus override flags; totals are
// re-derived on decode.
type RawPricing struct {
	UnitPrice          float64                   `json:"unitPrice"`
	TransportationCost float64                   `json:"transportationCost"`
	LoadingCost        float64                   `json:"loadingCost"`
	TaxRate            float64                   `json:"taxRate"`
	Overrides          entities.PricingOverrides `json:"overrides"`
}

type RawWindow struct {
	ID            string                   `json:"id"`
	Name          string                   `json:"name"`
	Archetype     entities.WindowArchetype `json:"archetype"`
	Configuration map[string]any           `json:"configuration"`
	Spec          entities.WindowSpec      `json:"spec"`
	Pricing       RawPricing               `json:"pricing"`
}

type RawBackup struct {
	Windows         []RawWindow              `json:"windows"`
	QuotationNumber string                   `json:"quotationNumber"`
	Date            string                   `json:"date,omitempty"`
	ValidUntil      string                   `json:"validUntil,omitempty"`
	ClientInfo      entities.ClientInfo      `json:"clientInfo"`
	CompanyInfo     entities.CompanyInfo     `json:"companyInfo"`
	ActiveWindowID  string                   `json:"activeWindowId"`
	Status          entities.QuotationStatus `json:"status"`
	Notes           string                   `json:"notes,omitempty"`
}

// Marshal encodes a record as JSON.
func Marshal(r Record) ([]byte, error) {
	return json.Marshal(r)
}
