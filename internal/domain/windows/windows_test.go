package windows

import (
	"errors"
	"testing"

	"window_quotation/internal/domain/entities"
)

func newQuotation(n int) *entities.Quotation {
	q := &entities.Quotation{}
	for i := 1; i <= n; i++ {
		if _, err := Add(q, CreateDefault(entities.ArchetypeSliding, i)); err != nil {
			panic(err)
		}
	}
	q.ActiveWindowID = q.Windows[0].ID
	return q
}

func names(q *entities.Quotation) []string {
	out := make([]string, 0, len(q.Windows))
	for _, w := range q.Windows {
		out = append(out, w.Name)
	}
	return out
}

func TestCreateDefault(t *testing.T) {
	w := CreateDefault("skylight", 3)
	if w.Archetype != entities.ArchetypeSliding || w.Name != "Window 3" || w.ID == "" {
		t.Fatalf("unexpected window %+v", w)
	}
	if _, ok := w.Configuration.(entities.SlidingConfig); !ok {
		t.Fatalf("expected sliding config, got %T", w.Configuration)
	}
	if w.Pricing.UnitPrice <= 0 || w.Pricing.Quantity != 1 {
		t.Fatalf("expected auto-populated pricing, got %+v", w.Pricing)
	}
}

func TestRemove(t *testing.T) {
	t.Run("last window blocked", func(t *testing.T) {
		q := newQuotation(1)
		before := q.Clone()
		err := Remove(q, q.Windows[0].ID)
		if !errors.Is(err, entities.ErrInvariantViolation) {
			t.Fatalf("expected invariant violation, got %v", err)
		}
		if len(q.Windows) != 1 || q.Windows[0].ID != before.Windows[0].ID || q.ActiveWindowID != before.ActiveWindowID {
			t.Fatalf("aggregate changed")
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		q := newQuotation(2)
		if err := Remove(q, "nope"); !errors.Is(err, ErrWindowNotFound) {
			t.Fatalf("expected ErrWindowNotFound, got %v", err)
		}
	})

	t.Run("active moves to next then previous", func(t *testing.T) {
		q := newQuotation(3)
		ids := []string{q.Windows[0].ID, q.Windows[1].ID, q.Windows[2].ID}
		q.ActiveWindowID = ids[1]
		if err := Remove(q, ids[1]); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.ActiveWindowID != ids[2] {
			t.Fatalf("expected next window active")
		}
		if err := Remove(q, ids[2]); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.ActiveWindowID != ids[0] {
			t.Fatalf("expected previous window active")
		}
	})

	t.Run("does not mutate shared backing array", func(t *testing.T) {
		q := newQuotation(3)
		snapshot := q.Windows
		firstID := snapshot[1].ID
		if err := Remove(q, snapshot[0].ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if snapshot[1].ID != firstID {
			t.Fatalf("remove wrote through the old slice")
		}
	})
}

func TestDuplicate(t *testing.T) {
	q := newQuotation(3)
	src := q.Windows[1]
	src.Pricing.Overrides.UnitPrice = true
	q.Windows[1] = src

	dup, err := Duplicate(q, src.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dup.ID == src.ID || dup.Name != "Window 2 (Copy)" {
		t.Fatalf("unexpected duplicate %+v", dup)
	}
	got := names(q)
	want := []string{"Window 1", "Window 2", "Window 2 (Copy)", "Window 3"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order %v, want %v", got, want)
		}
	}
	if !q.Windows[2].Pricing.Overrides.UnitPrice || q.Windows[2].Spec != src.Spec {
		t.Fatalf("duplicate lost spec or pricing overrides")
	}
	if NextWindowNumber(q) != 4 {
		t.Fatalf("duplicate must not change numbering, next=%d", NextWindowNumber(q))
	}

	q.Windows[2].Spec.Width = 2000
	if q.Windows[1].Spec.Width == 2000 {
		t.Fatalf("duplicate shares state with source")
	}
}

func TestRename(t *testing.T) {
	q := newQuotation(3)
	if err := Remove(q, q.Windows[2].ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	q.Windows[0].Name = "Window 7"

	name, err := Rename(q, q.Windows[1].ID, "   ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "Window 8" {
		t.Fatalf("expected Window 8, got %s", name)
	}

	name, _ = Rename(q, q.Windows[1].ID, "  Kitchen ")
	if name != "Kitchen" || q.Windows[1].Name != "Kitchen" {
		t.Fatalf("expected trimmed name, got %q", name)
	}

	if _, err := Rename(q, "missing", "x"); !errors.Is(err, ErrWindowNotFound) {
		t.Fatalf("expected ErrWindowNotFound, got %v", err)
	}
}

func TestActive(t *testing.T) {
	q := newQuotation(2)
	q.ActiveWindowID = "stale"
	w, ok := Active(q)
	if !ok || w.ID != q.Windows[0].ID {
		t.Fatalf("stale active id must default to the first window")
	}
	if err := SetActive(q, q.Windows[1].ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w, _ := Active(q); w.ID != q.Windows[1].ID {
		t.Fatalf("SetActive not applied")
	}
	if err := SetActive(q, "nope"); !errors.Is(err, ErrWindowNotFound) {
		t.Fatalf("expected ErrWindowNotFound, got %v", err)
	}
}

func TestAdd(t *testing.T) {
	q := newQuotation(1)
	w := CreateDefault(entities.ArchetypeBay, 2)
	if _, err := Add(q, w); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.ActiveWindowID != w.ID {
		t.Fatalf("added window must become active")
	}
	if _, err := Add(q, w); !errors.Is(err, entities.ErrInvariantViolation) {
		t.Fatalf("expected duplicate id rejection, got %v", err)
	}

	added, _ := Add(q, entities.WindowInstance{Archetype: entities.ArchetypePivot})
	if added.Name != "Window 3" || added.ID == "" {
		t.Fatalf("unexpected %+v", added)
	}
	if _, ok := added.Configuration.(entities.PivotConfig); !ok {
		t.Fatalf("expected pivot defaults, got %T", added.Configuration)
	}
}

func TestEnsureWindows(t *testing.T) {
	q := &entities.Quotation{}
	EnsureWindows(q, entities.ArchetypeCasement)
	if len(q.Windows) != 1 || q.ActiveWindowID != q.Windows[0].ID || q.Windows[0].Archetype != entities.ArchetypeCasement {
		t.Fatalf("unexpected %+v", q)
	}
}
