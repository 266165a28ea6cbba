package codec

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"

	"window_quotation/internal/domain/catalog"
	"window_quotation/internal/domain/entities"
	"window_quotation/internal/domain/pricing"
	"window_quotation/internal/domain/windows"
)

func variedWindows(t *testing.T) []entities.WindowInstance {
	t.Helper()
	calc := pricing.Default()
	cfgs := []entities.Configuration{
		entities.SlidingConfig{Panels: 3, Tracks: 3, PatternID: "sfs", OpeningDirection: "right"},
		entities.CasementConfig{Direction: "inward", Hinge: "right"},
		entities.BayConfig{Angle: 45, SideWindowCount: 3, PatternID: "ffff"},
		entities.AwningConfig{Panels: 2, Operator: "chain"},
		entities.PictureConfig{Frameless: true},
		entities.DoubleHungConfig{Panels: 2, PatternID: "dh-f", TiltIn: true},
		entities.PivotConfig{Axis: "horizontal"},
		entities.FixedConfig{Shape: "arch"},
		entities.SingleHungConfig{Panels: 2, PatternID: "sh-f"},
	}
	out := make([]entities.WindowInstance, 0, len(cfgs))
	for i, cfg := range cfgs {
		w := windows.CreateDefault(cfg.Archetype(), i+1)
		w.Configuration = cfg
		w.Spec.Width = 900 + float64(i)*150.5
		w.Spec.Height = 1000 + float64(i)*100
		w.Spec.Quantity = i + 1
		w.Spec.FrameMaterial = "upvc"
		w.Spec.GlassTint = "bronze"
		w.Spec.Screen = i%2 == 0
		w.Spec.Notes = ""
		w.Spec.Location = "Floor " + string(rune('A'+i))
		w = calc.Recalculate(w)
		out = append(out, w)
	}
	var err error
	out[0], err = calc.ApplyOverride(out[0], entities.PricingUnitPrice, 4321.5)
	if err != nil {
		t.Fatalf("override: %v", err)
	}
	out[1], _ = calc.ApplyOverride(out[1], entities.PricingTaxRate, 12)
	return out
}

func TestRoundTrip(t *testing.T) {
	all := variedWindows(t)
	if len(all) != len(catalog.Archetypes()) {
		t.Fatalf("fixture covers %d archetypes, want %d", len(all), len(catalog.Archetypes()))
	}
	for n := 1; n <= len(all); n++ {
		q := entities.Quotation{
			Number:         "QT-2026-0001",
			Date:           time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC),
			ValidUntil:     time.Date(2026, 11, 18, 0, 0, 0, 0, time.UTC),
			Client:         entities.ClientInfo{Name: "Asha Rao", Email: "asha@example.com", Phone: "+91 98450 00000", Address: "12 MG Road"},
			Company:        entities.CompanyInfo{Name: "Glassworks", GSTIN: "29ABCDE1234F1Z5"},
			Windows:        append([]entities.WindowInstance(nil), all[:n]...),
			ActiveWindowID: all[n-1].ID,
			Status:         entities.QuotationStatusSubmitted,
			Notes:          "deliver before monsoon",
		}
		rec, err := Encode(q, pricing.Default().Rollup(q))
		if err != nil {
			t.Fatalf("n=%d encode: %v", n, err)
		}
		data, err := Marshal(rec)
		if err != nil {
			t.Fatalf("n=%d marshal: %v", n, err)
		}
		got, err := Decode(data)
		if err != nil {
			t.Fatalf("n=%d decode: %v", n, err)
		}

		if !reflect.DeepEqual(got.Windows, q.Windows) {
			t.Fatalf("n=%d windows differ:\n got %+v\nwant %+v", n, got.Windows, q.Windows)
		}
		if got.Number != q.Number || got.Status != q.Status || got.ActiveWindowID != q.ActiveWindowID || got.Notes != q.Notes {
			t.Fatalf("n=%d metadata differs: %+v", n, got)
		}
		if got.Client != q.Client || got.Company != q.Company {
			t.Fatalf("n=%d parties differ: %+v %+v", n, got.Client, got.Company)
		}
		if !got.Date.Equal(q.Date) || !got.ValidUntil.Equal(q.ValidUntil) {
			t.Fatalf("n=%d dates differ: %v %v", n, got.Date, got.ValidUntil)
		}
	}
}

func TestEncode(t *testing.T) {
	t.Run("empty quotation", func(t *testing.T) {
		if _, err := Encode(entities.Quotation{}, entities.QuotationTotals{}); !errors.Is(err, entities.ErrInvariantViolation) {
			t.Fatalf("expected invariant violation, got %v", err)
		}
	})

	t.Run("flattened view and version", func(t *testing.T) {
		w := windows.CreateDefault(entities.ArchetypeDoubleHung, 1)
		rec, err := Encode(entities.Quotation{Windows: []entities.WindowInstance{w}}, entities.QuotationTotals{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Version != RecordVersion || rec.Status != entities.QuotationStatusDraft {
			t.Fatalf("unexpected header %+v", rec)
		}
		flat := rec.WindowSpecs[0]
		if flat.WindowType != "Double Hung Window" || flat.Dimensions.Unit != "mm" || flat.Specifications["frameMaterial"] != "aluminum" {
			t.Fatalf("unexpected flat window %+v", flat)
		}
		if rec.RawBackup.Windows[0].Configuration["type"] != "double-hung" {
			t.Fatalf("configuration not tagged: %+v", rec.RawBackup.Windows[0].Configuration)
		}
	})
}

func TestDecode_LegacySingleWindow(t *testing.T) {
	data := []byte(`{
		"quotationNumber": "Q-17",
		"clientName": "Old Client",
		"windowType": "Casement Window",
		"windowSpecs": [{
			"dimensions": {"width": "1000", "height": 800},
			"quantity": 3,
			"specifications": {"frame": "UPVC", "weatherStripping": "Premium Foam", "glass": "double", "screen": "yes", "hinge": "right"},
			"pricing": {"unitPrice": 4000, "transportationCost": 600, "loadingCost": 300, "taxRate": 12}
		}]
	}`)
	q, err := Decode(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(q.Windows) != 1 {
		t.Fatalf("expected one window, got %d", len(q.Windows))
	}
	w := q.Windows[0]
	if w.Archetype != entities.ArchetypeCasement || w.Name != "Window 1" || w.ID == "" {
		t.Fatalf("unexpected identity %+v", w)
	}
	if w.Spec.Width != 1000 || w.Spec.Height != 800 || w.Spec.Quantity != 3 {
		t.Fatalf("unexpected dimensions %+v", w.Spec)
	}
	if w.Spec.FrameMaterial != "upvc" || w.Spec.WeatherSealing != "premium-foam" || w.Spec.GlassType != "double" || !w.Spec.Screen {
		t.Fatalf("legacy names not honoured: %+v", w.Spec)
	}
	if w.Spec.FrameColor != "white" {
		t.Fatalf("missing field must take the default, got %q", w.Spec.FrameColor)
	}
	if cfg := w.Configuration.(entities.CasementConfig); cfg.Hinge != "right" || cfg.Direction != "outward" {
		t.Fatalf("unexpected configuration %+v", cfg)
	}
	p := w.Pricing
	if p.UnitPrice != 4000 || p.TransportationCost != 600 || p.LoadingCost != 300 || p.TaxRate != 12 {
		t.Fatalf("flattened pricing not used: %+v", p)
	}
	if p.TotalPrice != 12000 || p.TaxAmount != 1548 || p.GrandTotal != 14448 {
		t.Fatalf("totals not re-derived: %+v", p)
	}
	if q.Number != "Q-17" || q.Client.Name != "Old Client" || q.Status != entities.QuotationStatusDraft {
		t.Fatalf("unexpected metadata %+v", q)
	}
	if q.ActiveWindowID != w.ID {
		t.Fatalf("first window must be active")
	}
}

func TestDecode_LegacyPricingKeptAsOverrides(t *testing.T) {
	data := []byte(`{"windowSpecs":[{"pricing":{"unitPrice":5000,"transportationCost":1000,"loadingCost":1000,"taxRate":18}}]}`)
	q, err := Decode(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w := q.Windows[0]
	o := w.Pricing.Overrides
	if !o.UnitPrice || !o.Transportation || !o.Loading {
		t.Fatalf("stored manual inputs must decode as overrides: %+v", o)
	}
	if o.TaxRate {
		t.Fatalf("tax rate equal to the computed value must not be an override")
	}

	w.Spec.Quantity = 2
	w = pricing.Default().Recalculate(w)
	if w.Pricing.UnitPrice != 5000 || w.Pricing.TransportationCost != 1000 || w.Pricing.LoadingCost != 1000 {
		t.Fatalf("legacy prices replaced on reprice: %+v", w.Pricing)
	}

	t.Run("explicit flags win", func(t *testing.T) {
		q, _ := Decode([]byte(`{"rawBackup":{"windows":[{"pricing":{"unitPrice":5000,"overrides":{"unitPrice":false}}}]}}`))
		if q.Windows[0].Pricing.Overrides.UnitPrice {
			t.Fatalf("stored false flag must be kept")
		}
	})
}

func TestDecode_PrecedencePerField(t *testing.T) {
	data := []byte(`{
		"rawBackup": {
			"frameColor": "bronze",
			"windows": [{
				"id": "w-1",
				"archetype": "sliding",
				"spec": {"width": 1000}
			}]
		},
		"windowSpecs": [{
			"id": "flat-id",
			"dimensions": {"width": 2500, "height": 1400},
			"specifications": {"frameColor": "Black", "glassTint": "Grey"}
		}]
	}`)
	q, err := Decode(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w := q.Windows[0]
	if w.ID != "w-1" {
		t.Fatalf("raw id must win, got %s", w.ID)
	}
	if w.Spec.Width != 1000 {
		t.Fatalf("raw width must win, got %v", w.Spec.Width)
	}
	if w.Spec.Height != 1400 {
		t.Fatalf("missing raw height must fall through to dimensions, got %v", w.Spec.Height)
	}
	if w.Spec.FrameColor != "bronze" {
		t.Fatalf("quotation-level raw backup must beat flattened, got %q", w.Spec.FrameColor)
	}
	if w.Spec.GlassTint != "grey" {
		t.Fatalf("flattened value expected, got %q", w.Spec.GlassTint)
	}
}

func TestDecode_Windows(t *testing.T) {
	t.Run("duplicate ids regenerated", func(t *testing.T) {
		q, err := Decode([]byte(`{"windowSpecs":[{"id":"a","name":"One"},{"id":"a"}]}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(q.Windows) != 2 || q.Windows[0].ID != "a" || q.Windows[1].ID == "a" {
			t.Fatalf("unexpected ids %s %s", q.Windows[0].ID, q.Windows[1].ID)
		}
		if q.Windows[0].Name != "One" || q.Windows[1].Name != "Window 2" {
			t.Fatalf("unexpected names %s %s", q.Windows[0].Name, q.Windows[1].Name)
		}
	})

	t.Run("flattened window type per window", func(t *testing.T) {
		q, _ := Decode([]byte(`{"windowSpecs":[{"windowType":"Bay Window"},{"windowType":"something odd"}]}`))
		if q.Windows[0].Archetype != entities.ArchetypeBay || q.Windows[1].Archetype != entities.ArchetypeSliding {
			t.Fatalf("unexpected archetypes %s %s", q.Windows[0].Archetype, q.Windows[1].Archetype)
		}
	})

	t.Run("stale pattern cleared", func(t *testing.T) {
		q, _ := Decode([]byte(`{"rawBackup":{"windows":[{"archetype":"sliding","configuration":{"type":"sliding","panels":4,"patternId":"fs"}}]}}`))
		cfg := q.Windows[0].Configuration.(entities.SlidingConfig)
		if cfg.Panels != 4 || cfg.PatternID != "" {
			t.Fatalf("unexpected %+v", cfg)
		}
	})

	t.Run("malformed values skipped", func(t *testing.T) {
		q, _ := Decode([]byte(`{"windowSpecs":[{"quantity":"lots","dimensions":{"width":true,"height":"1800"}}]}`))
		s := q.Windows[0].Spec
		if s.Quantity != 1 || s.Width != 1200 || s.Height != 1800 {
			t.Fatalf("unexpected %+v", s)
		}
	})

	t.Run("window count from raw backup when flattened list is empty", func(t *testing.T) {
		q, err := Decode([]byte(`{"windowSpecs":[],"rawBackup":{"windows":[{"id":"r-1","archetype":"casement"},{"id":"r-2","archetype":"pivot"}]}}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(q.Windows) != 2 || q.Windows[0].ID != "r-1" || q.Windows[1].Archetype != entities.ArchetypePivot {
			t.Fatalf("unexpected windows %+v", q.Windows)
		}
	})

	t.Run("empty record", func(t *testing.T) {
		q, err := Decode([]byte(`{}`))
		if err != nil || len(q.Windows) != 1 || q.Windows[0].Archetype != entities.ArchetypeSliding {
			t.Fatalf("unexpected %+v %v", q, err)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		q, _ := Decode([]byte(`{"status":"lost"}`))
		if q.Status != entities.QuotationStatusDraft {
			t.Fatalf("unexpected status %s", q.Status)
		}
	})
}

func TestDecode_Corrupt(t *testing.T) {
	cases := map[string]string{
		"not json":              `{"quotationNumber":`,
		"array root":            `[1,2,3]`,
		"windowSpecs object":    `{"windowSpecs":{"0":{}}}`,
		"rawBackup string":      `{"rawBackup":"x"}`,
		"raw windows not array": `{"rawBackup":{"windows":5}}`,
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode([]byte(data))
			var ce *entities.CorruptRecordError
			if !errors.As(err, &ce) || !errors.Is(err, entities.ErrCorruptRecord) {
				t.Fatalf("expected CorruptRecordError, got %v", err)
			}
		})
	}
}

func TestDecodeOrDefault(t *testing.T) {
	q, err := DecodeOrDefault([]byte(`{"quotationNumber":"Q-9","status":"approved","windowSpecs":"oops"}`))
	if !errors.Is(err, entities.ErrCorruptRecord) {
		t.Fatalf("expected corrupt record error, got %v", err)
	}
	if len(q.Windows) != 1 || q.ActiveWindowID != q.Windows[0].ID {
		t.Fatalf("expected one default window, got %+v", q.Windows)
	}
	if q.Number != "Q-9" || q.Status != entities.QuotationStatusApproved {
		t.Fatalf("readable metadata lost: %+v", q)
	}

	q, err = DecodeOrDefault([]byte(`garbage`))
	if err == nil || len(q.Windows) != 1 || q.Status != entities.QuotationStatusDraft {
		t.Fatalf("unexpected %+v %v", q, err)
	}
}

func TestResolve(t *testing.T) {
	res := Resolve("width", toFloat, 1200,
		Source{Name: "a"},
		Source{Name: "b", Value: "wide", OK: true},
		Source{Name: "c", Value: json.Number("1500"), OK: true},
	)
	if res.Value != 1500 || res.Source != "c" || res.Field != "width" {
		t.Fatalf("unexpected %+v", res)
	}
	res = Resolve("width", toFloat, 1200, Source{Name: "a", Value: nil, OK: true})
	if res.Value != 1200 || res.Source != SourceDefault {
		t.Fatalf("unexpected %+v", res)
	}
}
