package pricing

import (
	"window_quotation/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Rollup totals a quotation. The GST rate comes from the active window (the
// first window when no id matches) and falls back to the table default only
// for an empty quotation.
func (c *Calculator) Rollup(q entities.Quotation) entities.QuotationTotals {
	basic := decimal.Zero
	transport := decimal.Zero
	loading := decimal.Zero
	area := decimal.Zero
	units := 0

	rate := c.table.DefaultTaxRate
	if len(q.Windows) > 0 {
		rate = q.Windows[0].Pricing.TaxRate
	}
	for _, w := range q.Windows {
		qty := decimal.NewFromInt(int64(w.Spec.Quantity))
		basic = basic.Add(decimal.NewFromFloat(w.Pricing.UnitPrice).Mul(qty))
		transport = transport.Add(decimal.NewFromFloat(w.Pricing.TransportationCost))
		loading = loading.Add(decimal.NewFromFloat(w.Pricing.LoadingCost))
		area = area.Add(decimal.NewFromFloat(AreaSqFt(w.Spec.Width, w.Spec.Height)).Mul(qty))
		units += w.Spec.Quantity
		if q.ActiveWindowID != "" && w.ID == q.ActiveWindowID {
			rate = w.Pricing.TaxRate
		}
	}

	project := basic.Add(transport).Add(loading)
	gst := project.Mul(decimal.NewFromFloat(rate)).Div(decimal.NewFromInt(100)).Round(2)
	grand := project.Add(gst)

	t := entities.QuotationTotals{
		BasicValue:          basic.Round(2).InexactFloat64(),
		TransportationTotal: transport.Round(2).InexactFloat64(),
		LoadingTotal:        loading.Round(2).InexactFloat64(),
		TotalProjectCost:    project.Round(2).InexactFloat64(),
		GSTRate:             rate,
		GSTAmount:           gst.InexactFloat64(),
		GrandTotal:          grand.Round(2).InexactFloat64(),
		TotalAreaSqFt:       area.Round(2).InexactFloat64(),
		WindowCount:         len(q.Windows),
		UnitCount:           units,
	}
	if !area.IsZero() {
		t.AvgPerSqFtInclTax = grand.Div(area).Round(2).InexactFloat64()
		t.AvgPerSqFtExclTax = basic.Div(area).Round(2).InexactFloat64()
	}
	return t
}
