package request

import (
	"errors"
	"testing"

	"window_quotation/internal/domain/entities"
)

func ptr[T any](v T) *T { return &v }

func TestCreateQuotationRequest_ToInput(t *testing.T) {
	t.Run("blank archetype defaults to sliding", func(t *testing.T) {
		in, err := CreateQuotationRequest{Client: ClientRequest{Name: "  Asha  "}}.ToInput()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if in.Archetype != entities.ArchetypeSliding {
			t.Fatalf("expected sliding, got %s", in.Archetype)
		}
		if in.Client.Name != "Asha" {
			t.Fatalf("expected trimmed name, got %q", in.Client.Name)
		}
	})

	t.Run("display name is accepted", func(t *testing.T) {
		in, err := CreateQuotationRequest{Archetype: "Bay Window"}.ToInput()
		if err != nil || in.Archetype != entities.ArchetypeBay {
			t.Fatalf("expected bay, got %s err=%v", in.Archetype, err)
		}
	})

	t.Run("unknown archetype", func(t *testing.T) {
		_, err := CreateQuotationRequest{Archetype: "skylight"}.ToInput()
		if !errors.Is(err, ErrUnknownArchetype) {
			t.Fatalf("expected ErrUnknownArchetype, got %v", err)
		}
	})
}

func TestWindowSpecRequest_ToSpec(t *testing.T) {
	spec := WindowSpecRequest{
		Width:         ptr(1800.0),
		Quantity:      ptr(3),
		FrameMaterial: ptr(" UPVC "),
		GlassType:     ptr(""),
		Motorized:     ptr(true),
		Notes:         ptr("north wall"),
	}.ToSpec()

	if spec.Width != 1800 || spec.Height != 1500 {
		t.Fatalf("unexpected dimensions: %v x %v", spec.Width, spec.Height)
	}
	if spec.Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", spec.Quantity)
	}
	if spec.FrameMaterial != "upvc" {
		t.Fatalf("expected normalized frame material, got %q", spec.FrameMaterial)
	}
	if spec.GlassType != "single" {
		t.Fatalf("blank enum should keep the default, got %q", spec.GlassType)
	}
	if !spec.Motorized || spec.Notes != "north wall" {
		t.Fatalf("unexpected spec: %+v", spec)
	}
}

func TestConfigurationRequest_ToInput(t *testing.T) {
	t.Run("typed configuration", func(t *testing.T) {
		in, err := ConfigurationRequest{Configuration: map[string]any{"type": "sliding", "panels": float64(3), "patternId": "fsf"}}.ToInput()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		cfg, ok := in.Configuration.(entities.SlidingConfig)
		if !ok {
			t.Fatalf("expected sliding config, got %T", in.Configuration)
		}
		if cfg.Panels != 3 || cfg.PatternID != "fsf" || cfg.Tracks != 2 {
			t.Fatalf("unexpected config: %+v", cfg)
		}
	})

	t.Run("archetype names the variant", func(t *testing.T) {
		in, err := ConfigurationRequest{Archetype: "casement", Configuration: map[string]any{"hinge": "right"}}.ToInput()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if in.Archetype != entities.ArchetypeCasement {
			t.Fatalf("expected casement, got %s", in.Archetype)
		}
		cfg := in.Configuration.(entities.CasementConfig)
		if cfg.Hinge != "right" || cfg.Direction != "outward" {
			t.Fatalf("unexpected config: %+v", cfg)
		}
	})

	t.Run("untyped configuration", func(t *testing.T) {
		_, err := ConfigurationRequest{Configuration: map[string]any{"panels": 2}}.ToInput()
		if !errors.Is(err, ErrMissingConfigType) {
			t.Fatalf("expected ErrMissingConfigType, got %v", err)
		}
	})

	t.Run("empty request", func(t *testing.T) {
		_, err := ConfigurationRequest{}.ToInput()
		if !errors.Is(err, ErrEmptyConfigurationOp) {
			t.Fatalf("expected ErrEmptyConfigurationOp, got %v", err)
		}
	})

	t.Run("panel count only", func(t *testing.T) {
		in, err := ConfigurationRequest{PanelCount: ptr(4)}.ToInput()
		if err != nil || in.PanelCount == nil || *in.PanelCount != 4 {
			t.Fatalf("unexpected input: %+v err=%v", in, err)
		}
	})
}

func TestPricingOverrideRequest_ResolveField(t *testing.T) {
	f, err := PricingOverrideRequest{Field: "taxRate", Value: ptr(12.0)}.ResolveField()
	if err != nil || f != entities.PricingTaxRate {
		t.Fatalf("expected taxRate, got %s err=%v", f, err)
	}
	if _, err := (PricingOverrideRequest{Field: "discount"}).ResolveField(); !errors.Is(err, ErrUnknownPricingField) {
		t.Fatalf("expected ErrUnknownPricingField, got %v", err)
	}
}
