package windows

import (
	"errors"
	"testing"

	"window_quotation/internal/domain/entities"
)

func TestSetPanelCount_ClearsPattern(t *testing.T) {
	w := CreateDefault(entities.ArchetypeSliding, 1)
	w, err := SelectPattern(w, "ss")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w, err = SetPanelCount(w, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg := w.Configuration.(entities.SlidingConfig)
	if cfg.Panels != 4 || cfg.PatternID != "" {
		t.Fatalf("stale pattern kept: %+v", cfg)
	}

	same, _ := SelectPattern(w, "fssf")
	same, _ = SetPanelCount(same, 4)
	if same.Configuration.(entities.SlidingConfig).PatternID != "fssf" {
		t.Fatalf("unchanged count must keep the pattern")
	}
}

func TestSetPanelCount_Errors(t *testing.T) {
	t.Run("out of catalog", func(t *testing.T) {
		w := CreateDefault(entities.ArchetypeBay, 1)
		_, err := SetPanelCount(w, 2)
		var ve entities.ValidationError
		if !errors.As(err, &ve) || ve.Field != "panelCount" {
			t.Fatalf("expected panelCount validation error, got %v", err)
		}
	})

	t.Run("non patterned", func(t *testing.T) {
		w := CreateDefault(entities.ArchetypeCasement, 1)
		if _, err := SetPanelCount(w, 2); !errors.Is(err, entities.ErrInvariantViolation) {
			t.Fatalf("expected invariant violation, got %v", err)
		}
	})
}

func TestConfigure(t *testing.T) {
	w := CreateDefault(entities.ArchetypeSliding, 1)

	t.Run("mismatched variant", func(t *testing.T) {
		if _, err := Configure(w, entities.CasementConfig{}); !errors.Is(err, entities.ErrInvariantViolation) {
			t.Fatalf("expected invariant violation, got %v", err)
		}
	})

	t.Run("pattern of another panel count", func(t *testing.T) {
		_, err := Configure(w, entities.SlidingConfig{Panels: 3, Tracks: 2, PatternID: "fs"})
		if !errors.Is(err, entities.ErrInvariantViolation) {
			t.Fatalf("expected invariant violation, got %v", err)
		}
	})

	t.Run("awning panels out of range", func(t *testing.T) {
		aw := CreateDefault(entities.ArchetypeAwning, 1)
		for _, n := range []int{0, entities.MaxAwningPanels + 1, 2000000000} {
			got, err := Configure(aw, entities.AwningConfig{Panels: n, Operator: "crank"})
			var ve entities.ValidationError
			if !errors.As(err, &ve) || ve.Field != "panels" {
				t.Fatalf("panels=%d: expected panels validation error, got %v", n, err)
			}
			if got.Configuration.(entities.AwningConfig).Panels != 1 {
				t.Fatalf("panels=%d: configuration changed on error", n)
			}
		}
		got, err := Configure(aw, entities.AwningConfig{Panels: entities.MaxAwningPanels, Operator: "chain"})
		if err != nil || got.Configuration.(entities.AwningConfig).Panels != entities.MaxAwningPanels {
			t.Fatalf("expected %d awning panels, got %+v err=%v", entities.MaxAwningPanels, got.Configuration, err)
		}
	})

	t.Run("valid", func(t *testing.T) {
		got, err := Configure(w, entities.SlidingConfig{Panels: 3, Tracks: 3, PatternID: "sfs", OpeningDirection: "right"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Configuration.(entities.SlidingConfig).PatternID != "sfs" {
			t.Fatalf("configuration not applied")
		}
	})
}

func TestChangeArchetype(t *testing.T) {
	w := CreateDefault(entities.ArchetypeSliding, 1)
	w.Spec.Width = 1800
	got, err := ChangeArchetype(w, entities.ArchetypeBay)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Archetype != entities.ArchetypeBay || got.Spec.Width != 1800 {
		t.Fatalf("unexpected %+v", got)
	}
	if _, ok := got.Configuration.(entities.BayConfig); !ok {
		t.Fatalf("expected bay defaults")
	}
	if _, err := ChangeArchetype(w, "skylight"); !errors.Is(err, entities.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
