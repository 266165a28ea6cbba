package pricing

import (
	"errors"
	"math"
	"testing"

	"window_quotation/internal/domain/entities"
)

func near(a, b, eps float64) bool { return math.Abs(a-b) <= eps }

func window(id string, a entities.WindowArchetype, qty int) entities.WindowInstance {
	spec := entities.DefaultWindowSpec()
	spec.Quantity = qty
	return entities.WindowInstance{
		ID:            id,
		Name:          "Window 1",
		Archetype:     a,
		Configuration: entities.DefaultConfiguration(a),
		Spec:          spec,
	}
}

func TestAreaSqFt(t *testing.T) {
	t.Run("reference dimensions", func(t *testing.T) {
		got := AreaSqFt(1200, 1500)
		if !near(got, 19.375, 0.001) {
			t.Fatalf("expected ~19.375, got %v", got)
		}
	})

	t.Run("monotonic in width and height", func(t *testing.T) {
		if AreaSqFt(1300, 1500) <= AreaSqFt(1200, 1500) {
			t.Fatalf("area must grow with width")
		}
		if AreaSqFt(1200, 1600) <= AreaSqFt(1200, 1500) {
			t.Fatalf("area must grow with height")
		}
	})

	t.Run("non-positive dimensions", func(t *testing.T) {
		if AreaSqFt(0, 1500) != 0 || AreaSqFt(1200, -1) != 0 {
			t.Fatalf("expected zero area")
		}
	})
}

func TestCalculator_BaseAndAdjusted(t *testing.T) {
	c := Default()
	spec := entities.DefaultWindowSpec()
	base := c.BasePrice(entities.ArchetypeSliding, spec)
	if !near(base, 10075.02, 0.01) {
		t.Fatalf("unexpected base price %v", base)
	}

	spec.FrameMaterial = "Wood"
	spec.GlassType = "double"
	adj := c.AdjustedPrice(entities.ArchetypeSliding, spec)
	if !near(adj, base*1.35*1.25, 0.01) {
		t.Fatalf("unexpected adjusted price %v", adj)
	}

	spec.FrameMaterial = "unobtainium"
	spec.GlassType = ""
	if got := c.AdjustedPrice(entities.ArchetypeSliding, spec); !near(got, base, 0.0001) {
		t.Fatalf("unknown multipliers must be neutral, got %v", got)
	}
}

func TestCalculator_Recalculate(t *testing.T) {
	c := Default()
	w := c.AutoPopulate(window("w1", entities.ArchetypeSliding, 2))
	p := w.Pricing
	if p.Quantity != 2 || p.UnitPrice != 10075.02 {
		t.Fatalf("unexpected inputs %+v", p)
	}
	if p.TransportationCost != 500 || p.LoadingCost != 200 || p.TaxRate != 18 {
		t.Fatalf("unexpected per-unit costs %+v", p)
	}
	if p.TotalPrice != 20150.04 {
		t.Fatalf("unexpected total %v", p.TotalPrice)
	}
	wantTax := 3753.01 // (20150.04+500+200)*0.18 = 3753.0072
	if p.TaxAmount != wantTax {
		t.Fatalf("unexpected tax %v", p.TaxAmount)
	}
	if !near(p.GrandTotal, 20150.04+700+wantTax, 0.001) {
		t.Fatalf("unexpected grand total %v", p.GrandTotal)
	}
}

func TestCalculator_QuantityMonotonic(t *testing.T) {
	c := Default()
	prev := c.AutoPopulate(window("w", entities.ArchetypeCasement, 1)).Pricing
	for q := 2; q <= 10; q++ {
		cur := c.AutoPopulate(window("w", entities.ArchetypeCasement, q)).Pricing
		if cur.TotalPrice <= prev.TotalPrice || cur.GrandTotal <= prev.GrandTotal {
			t.Fatalf("qty %d did not increase totals: %+v vs %+v", q, cur, prev)
		}
		prev = cur
	}

	t.Run("with overridden unit price", func(t *testing.T) {
		w, err := c.ApplyOverride(window("w", entities.ArchetypeFixed, 1), entities.PricingUnitPrice, 1000)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		one := w.Pricing
		w.Spec.Quantity = 3
		three := c.Recalculate(w).Pricing
		if three.TotalPrice != 3000 || three.GrandTotal <= one.GrandTotal {
			t.Fatalf("unexpected %+v", three)
		}
	})
}

func TestCalculator_Overrides(t *testing.T) {
	c := Default()
	w := c.AutoPopulate(window("w1", entities.ArchetypeSliding, 1))

	t.Run("override survives recalculation", func(t *testing.T) {
		got, err := c.ApplyOverride(w, entities.PricingTransportation, 999)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got.Spec.Width = 2000
		got = c.Recalculate(got)
		if got.Pricing.TransportationCost != 999 || !got.Pricing.Overrides.Transportation {
			t.Fatalf("override lost: %+v", got.Pricing)
		}
		if got.Pricing.UnitPrice == w.Pricing.UnitPrice {
			t.Fatalf("non-overridden unit price must follow the spec")
		}
	})

	t.Run("auto populate clears overrides", func(t *testing.T) {
		got, _ := c.ApplyOverride(w, entities.PricingTaxRate, 5)
		got, _ = c.ApplyOverride(got, entities.PricingUnitPrice, 1)
		got = c.AutoPopulate(got)
		if got.Pricing.Overrides.Any() || got.Pricing.TaxRate != 18 || got.Pricing.UnitPrice != w.Pricing.UnitPrice {
			t.Fatalf("unexpected %+v", got.Pricing)
		}
	})

	t.Run("invalid values rejected", func(t *testing.T) {
		cases := []struct {
			field entities.PricingField
			value float64
		}{
			{entities.PricingUnitPrice, -1},
			{entities.PricingLoading, -0.01},
			{entities.PricingTaxRate, 100.5},
			{entities.PricingTaxRate, -3},
		}
		for _, tc := range cases {
			got, err := c.ApplyOverride(w, tc.field, tc.value)
			var ve entities.ValidationError
			if !errors.As(err, &ve) || ve.Field != string(tc.field) || ve.WindowID != "w1" {
				t.Fatalf("%s=%v: expected validation error, got %v", tc.field, tc.value, err)
			}
			if got.Pricing != w.Pricing {
				t.Fatalf("window changed on rejected override")
			}
		}
	})
}

func TestValidatePricing(t *testing.T) {
	w := Default().AutoPopulate(window("w1", entities.ArchetypeSliding, 60))
	errs := ValidatePricing(w, 50)
	if len(errs) != 1 || errs[0].Field != "quantity" {
		t.Fatalf("expected quantity error, got %v", errs)
	}
	if len(ValidatePricing(w, 0)) != 0 {
		t.Fatalf("engine cap 1000 must accept 60")
	}
	if !errors.Is(errs, entities.ErrValidation) {
		t.Fatalf("expected ErrValidation")
	}
}

func TestRollup(t *testing.T) {
	priced := func(id string, unit float64, qty int, transport, loading float64) entities.WindowInstance {
		w := window(id, entities.ArchetypeSliding, qty)
		w.Pricing = Derive(entities.PricingBreakdown{
			UnitPrice: unit, Quantity: qty, TransportationCost: transport, LoadingCost: loading, TaxRate: 18,
		})
		return w
	}

	t.Run("two windows", func(t *testing.T) {
		q := entities.Quotation{
			Windows: []entities.WindowInstance{
				priced("a", 5000, 2, 500, 500),
				priced("b", 8000, 1, 500, 500),
			},
			ActiveWindowID: "a",
		}
		got := Default().Rollup(q)
		if got.BasicValue != 18000 || got.TotalProjectCost != 20000 || got.GSTAmount != 3600 || got.GrandTotal != 23600 {
			t.Fatalf("unexpected totals %+v", got)
		}
		if got.WindowCount != 2 || got.UnitCount != 3 {
			t.Fatalf("unexpected counts %+v", got)
		}
		if got.AvgPerSqFtInclTax <= got.AvgPerSqFtExclTax {
			t.Fatalf("incl tax average must exceed excl tax")
		}
	})

	t.Run("gst follows active window", func(t *testing.T) {
		b := priced("b", 1000, 1, 0, 0)
		b.Pricing.TaxRate = 5
		q := entities.Quotation{Windows: []entities.WindowInstance{priced("a", 1000, 1, 0, 0), b}, ActiveWindowID: "b"}
		got := Default().Rollup(q)
		if got.GSTRate != 5 || got.GSTAmount != 100 {
			t.Fatalf("unexpected %+v", got)
		}
	})

	t.Run("empty quotation", func(t *testing.T) {
		got := Default().Rollup(entities.Quotation{})
		if got.GSTRate != 18 || got.GrandTotal != 0 || got.AvgPerSqFtInclTax != 0 {
			t.Fatalf("unexpected %+v", got)
		}
	})

	t.Run("zero area guarded", func(t *testing.T) {
		w := priced("a", 1000, 1, 0, 0)
		w.Spec.Width = 0
		got := Default().Rollup(entities.Quotation{Windows: []entities.WindowInstance{w}})
		if got.TotalAreaSqFt != 0 || got.AvgPerSqFtExclTax != 0 || got.AvgPerSqFtInclTax != 0 {
			t.Fatalf("unexpected %+v", got)
		}
	})
}
