package codec

import (
	"window_quotation/internal/domain/catalog"
	"window_quotation/internal/domain/entities"
)

// Encode projects a quotation into its storage record. Both the flattened
// window view and the raw backup are always written.
func Encode(q entities.Quotation, totals entities.QuotationTotals) (Record, error) {
	if len(q.Windows) == 0 {
		return Record{}, &entities.InvariantViolation{Operation: "encode", Reason: "quotation has no windows"}
	}
	status := q.Status
	if !status.Valid() {
		status = entities.QuotationStatusDraft
	}

	rec := Record{
		QuotationNumber: q.Number,
		Date:            formatDate(q.Date),
		ValidUntil:      formatDate(q.ValidUntil),
		ClientInfo:      q.Client,
		CompanyInfo:     q.Company,
		WindowSpecs:     make([]FlatWindow, 0, len(q.Windows)),
		Pricing:         totals,
		Status:          status,
		Notes:           q.Notes,
		Version:         RecordVersion,
		RawBackup: RawBackup{
			Windows:         make([]RawWindow, 0, len(q.Windows)),
			QuotationNumber: q.Number,
			Date:            formatDate(q.Date),
			ValidUntil:      formatDate(q.ValidUntil),
			ClientInfo:      q.Client,
			CompanyInfo:     q.Company,
			ActiveWindowID:  q.ActiveWindowID,
			Status:          status,
			Notes:           q.Notes,
		},
	}

	for _, w := range q.Windows {
		cfg := w.Configuration
		if cfg == nil || cfg.Archetype() != w.Archetype {
			cfg = entities.DefaultConfiguration(w.Archetype)
		}
		rec.WindowSpecs = append(rec.WindowSpecs, FlatWindow{
			ID:             w.ID,
			Name:           w.Name,
			WindowType:     catalog.DisplayName(w.Archetype),
			Dimensions:     Dimensions{Width: w.Spec.Width, Height: w.Spec.Height, Unit: "mm"},
			Quantity:       w.Spec.Quantity,
			Specifications: flattenSpec(w.Spec),
			Pricing: FlatPricing{
				UnitPrice:          w.Pricing.UnitPrice,
				Quantity:           w.Pricing.Quantity,
				TotalPrice:         w.Pricing.TotalPrice,
				TransportationCost: w.Pricing.TransportationCost,
				LoadingCost:        w.Pricing.LoadingCost,
				TaxRate:            w.Pricing.TaxRate,
				TaxAmount:          w.Pricing.TaxAmount,
				GrandTotal:         w.Pricing.GrandTotal,
			},
		})
		rec.RawBackup.Windows = append(rec.RawBackup.Windows, RawWindow{
			ID:            w.ID,
			Name:          w.Name,
			Archetype:     w.Archetype,
			Configuration: encodeConfiguration(cfg),
			Spec:          w.Spec,
			Pricing: RawPricing{
				UnitPrice:          w.Pricing.UnitPrice,
				TransportationCost: w.Pricing.TransportationCost,
				LoadingCost:        w.Pricing.LoadingCost,
				TaxRate:            w.Pricing.TaxRate,
				Overrides:          w.Pricing.Overrides,
			},
		})
	}
	return rec, nil
}
