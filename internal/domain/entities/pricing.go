package entities

// PricingField names one of the four manually overridable pricing inputs.
type PricingField string

const (
	PricingUnitPrice      PricingField = "unitPrice"
	PricingTransportation PricingField = "transportationCost"
	PricingLoading        PricingField = "loadingCost"
	PricingTaxRate        PricingField = "taxRate"
)

// PricingOverrides marks which inputs were entered manually. An overridden
// input survives recalculation until the next auto-populate.
type PricingOverrides struct {
	UnitPrice      bool `json:"unitPrice"`
	Transportation bool `json:"transportationCost"`
	Loading        bool `json:"loadingCost"`
	TaxRate        bool `json:"taxRate"`
}

func (o PricingOverrides) Any() bool {
	return o.UnitPrice || o.Transportation || o.Loading || o.TaxRate
}

// PricingBreakdown is the per-window price. UnitPrice, TransportationCost,
// LoadingCost and TaxRate are inputs; the rest is derived from them.
type PricingBreakdown struct {
	UnitPrice          float64          `json:"unitPrice"`
	Quantity           int              `json:"quantity"`
	TotalPrice         float64          `json:"totalPrice"`
	TransportationCost float64          `json:"transportationCost"`
	LoadingCost        float64          `json:"loadingCost"`
	TaxRate            float64          `json:"taxRate"`
	TaxAmount          float64          `json:"taxAmount"`
	GrandTotal         float64          `json:"grandTotal"`
	Overrides          PricingOverrides `json:"overrides"`
}

// QuotationTotals is the roll-up over every window of a quotation.
type QuotationTotals struct {
	BasicValue          float64 `json:"basicValue"`
	TransportationTotal float64 `json:"transportationTotal"`
	LoadingTotal        float64 `json:"loadingTotal"`
	TotalProjectCost    float64 `json:"totalProjectCost"`
	GSTRate             float64 `json:"gstRate"`
	GSTAmount           float64 `json:"gstAmount"`
	GrandTotal          float64 `json:"grandTotal"`
	TotalAreaSqFt       float64 `json:"totalAreaSqFt"`
	AvgPerSqFtInclTax   float64 `json:"avgPerSqFtInclTax"`
	AvgPerSqFtExclTax   float64 `json:"avgPerSqFtExclTax"`
	WindowCount         int     `json:"windowCount"`
	UnitCount           int     `json:"unitCount"`
}
