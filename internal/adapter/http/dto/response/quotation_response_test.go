package response

import (
	"testing"
	"time"

	"window_quotation/internal/domain/entities"
)

func TestFromQuotation(t *testing.T) {
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	spec := entities.DefaultWindowSpec()
	q := entities.Quotation{
		Number:     "QT-20260314-ABC123",
		Date:       day,
		ValidUntil: day.AddDate(0, 0, 30),
		Client:     entities.ClientInfo{Name: "Asha"},
		Status:     entities.QuotationStatusDraft,
		Windows: []entities.WindowInstance{{
			ID:            "w-1",
			Name:          "Window 1",
			Archetype:     entities.ArchetypeSliding,
			Configuration: entities.SlidingConfig{Panels: 3, Tracks: 2, PatternID: "fsf", OpeningDirection: "left"},
			Spec:          spec,
		}},
		ActiveWindowID: "w-1",
	}

	res := FromQuotation(q, entities.QuotationTotals{GrandTotal: 100, WindowCount: 1})
	if res.QuotationNumber != q.Number || res.Status != "draft" {
		t.Fatalf("unexpected header: %+v", res)
	}
	if res.Date != "2026-03-14" || res.ValidUntil != "2026-04-13" {
		t.Fatalf("unexpected dates: %s %s", res.Date, res.ValidUntil)
	}
	if len(res.Windows) != 1 {
		t.Fatalf("expected 1 window, got %d", len(res.Windows))
	}
	w := res.Windows[0]
	if w.ArchetypeName != "Sliding Window" {
		t.Fatalf("unexpected archetype name: %s", w.ArchetypeName)
	}
	if w.Configuration["type"] != "sliding" || w.Configuration["patternId"] != "fsf" {
		t.Fatalf("unexpected configuration: %+v", w.Configuration)
	}
	if w.AreaSqFt < 19.37 || w.AreaSqFt > 19.38 {
		t.Fatalf("unexpected area: %v", w.AreaSqFt)
	}
	if res.Totals.GrandTotal != 100 {
		t.Fatalf("totals not carried: %+v", res.Totals)
	}
}

func TestFromValidation(t *testing.T) {
	if res := FromValidation(nil); !res.Valid || res.Errors == nil {
		t.Fatalf("expected valid with empty list, got %+v", res)
	}
	res := FromValidation(entities.ValidationErrors{{Field: "width", Value: 10.0, Reason: "too small"}})
	if res.Valid || len(res.Errors) != 1 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestFromArchetypes(t *testing.T) {
	items := FromArchetypes([]entities.ArchetypeInfo{
		{ID: entities.ArchetypeSliding, Name: "Sliding Window"},
		{ID: entities.ArchetypeCasement, Name: "Casement Window"},
	})
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	sliding := items[0]
	if len(sliding.Patterns[2]) != 3 || !sliding.Patterns[2][0].Default {
		t.Fatalf("unexpected sliding patterns: %+v", sliding.Patterns)
	}
	if items[1].Patterns != nil {
		t.Fatalf("casement should not list patterns")
	}
	if items[1].DefaultConfiguration["hinge"] != "left" {
		t.Fatalf("unexpected casement defaults: %+v", items[1].DefaultConfiguration)
	}
}
