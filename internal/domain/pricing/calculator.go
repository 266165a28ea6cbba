package pricing

import (
	"fmt"

	"window_quotation/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Calculator prices windows from a PriceTable. It is stateless apart from the
// table and safe to share.
type Calculator struct {
	table PriceTable
}

var defaultCalculator = NewCalculator(DefaultPriceTable())

func NewCalculator(table PriceTable) *Calculator {
	return &Calculator{table: table}
}

// Default returns a calculator over DefaultPriceTable.
func Default() *Calculator { return defaultCalculator }

func (c *Calculator) Table() PriceTable { return c.table }

// AreaSqFt converts a millimetre width/height to square feet.
func AreaSqFt(widthMM, heightMM float64) float64 {
	if widthMM <= 0 || heightMM <= 0 {
		return 0
	}
	return widthMM * heightMM / sqMMPerSqFt
}

func (c *Calculator) BasePrice(a entities.WindowArchetype, spec entities.WindowSpec) float64 {
	return c.table.BaseRate(a) * AreaSqFt(spec.Width, spec.Height)
}

func (c *Calculator) AdjustedPrice(a entities.WindowArchetype, spec entities.WindowSpec) float64 {
	return c.BasePrice(a, spec) * c.table.FrameMultiplier(spec.FrameMaterial) * c.table.GlassMultiplier(spec.GlassType)
}

// Recalculate refreshes every input that is not manually overridden and
// re-derives the totals.
func (c *Calculator) Recalculate(w entities.WindowInstance) entities.WindowInstance {
	p := w.Pricing
	qty := w.Spec.Quantity
	p.Quantity = qty
	if !p.Overrides.UnitPrice {
		p.UnitPrice = round2(c.AdjustedPrice(w.Archetype, w.Spec))
	}
	if !p.Overrides.Transportation {
		p.TransportationCost = round2(c.table.TransportationPerUnit * float64(qty))
	}
	if !p.Overrides.Loading {
		p.LoadingCost = round2(c.table.LoadingPerUnit * float64(qty))
	}
	if !p.Overrides.TaxRate {
		p.TaxRate = c.table.DefaultTaxRate
	}
	w.Pricing = Derive(p)
	return w
}

// AutoPopulate drops every manual override and recomputes all four inputs.
func (c *Calculator) AutoPopulate(w entities.WindowInstance) entities.WindowInstance {
	w.Pricing.Overrides = entities.PricingOverrides{}
	return c.Recalculate(w)
}

// ApplyOverride sets one input manually. The value is kept until the next
// AutoPopulate.
func (c *Calculator) ApplyOverride(w entities.WindowInstance, field entities.PricingField, value float64) (entities.WindowInstance, error) {
	if err := validateInput(field, value); err != nil {
		err.WindowID = w.ID
		return w, *err
	}
	switch field {
	case entities.PricingUnitPrice:
		w.Pricing.UnitPrice = round2(value)
		w.Pricing.Overrides.UnitPrice = true
	case entities.PricingTransportation:
		w.Pricing.TransportationCost = round2(value)
		w.Pricing.Overrides.Transportation = true
	case entities.PricingLoading:
		w.Pricing.LoadingCost = round2(value)
		w.Pricing.Overrides.Loading = true
	case entities.PricingTaxRate:
		w.Pricing.TaxRate = value
		w.Pricing.Overrides.TaxRate = true
	}
	return c.Recalculate(w), nil
}

// Derive recomputes TotalPrice, TaxAmount and GrandTotal from the four inputs
// and the quantity, leaving the inputs untouched.
func Derive(p entities.PricingBreakdown) entities.PricingBreakdown {
	unit := decimal.NewFromFloat(p.UnitPrice)
	total := unit.Mul(decimal.NewFromInt(int64(p.Quantity))).Round(2)
	base := total.Add(decimal.NewFromFloat(p.TransportationCost)).Add(decimal.NewFromFloat(p.LoadingCost))
	tax := base.Mul(decimal.NewFromFloat(p.TaxRate)).Div(decimal.NewFromInt(100)).Round(2)

	p.TotalPrice = total.InexactFloat64()
	p.TaxAmount = tax.InexactFloat64()
	p.GrandTotal = base.Add(tax).Round(2).InexactFloat64()
	return p
}

// ValidatePricing checks the pricing inputs of one window. maxQuantity is the
// caller's cap (see WindowSpec.Validate).
func ValidatePricing(w entities.WindowInstance, maxQuantity int) entities.ValidationErrors {
	var errs entities.ValidationErrors
	checks := []struct {
		field entities.PricingField
		value float64
	}{
		{entities.PricingUnitPrice, w.Pricing.UnitPrice},
		{entities.PricingTransportation, w.Pricing.TransportationCost},
		{entities.PricingLoading, w.Pricing.LoadingCost},
		{entities.PricingTaxRate, w.Pricing.TaxRate},
	}
	for _, ch := range checks {
		if err := validateInput(ch.field, ch.value); err != nil {
			err.WindowID = w.ID
			errs = append(errs, *err)
		}
	}
	if maxQuantity <= 0 || maxQuantity > entities.EngineMaxQuantity {
		maxQuantity = entities.EngineMaxQuantity
	}
	if w.Pricing.Quantity < 1 || w.Pricing.Quantity > maxQuantity {
		errs = append(errs, entities.ValidationError{
			WindowID: w.ID, Field: "quantity", Value: w.Pricing.Quantity,
			Reason: fmt.Sprintf("must be between 1 and %d", maxQuantity),
		})
	}
	return errs
}

func validateInput(field entities.PricingField, value float64) *entities.ValidationError {
	switch field {
	case entities.PricingUnitPrice, entities.PricingTransportation, entities.PricingLoading:
		if value < 0 {
			return &entities.ValidationError{Field: string(field), Value: value, Reason: "must not be negative"}
		}
	case entities.PricingTaxRate:
		if value < 0 || value > 100 {
			return &entities.ValidationError{Field: string(field), Value: value, Reason: "must be between 0 and 100"}
		}
	default:
		return &entities.ValidationError{Field: string(field), Value: value, Reason: "unknown pricing field"}
	}
	return nil
}

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
