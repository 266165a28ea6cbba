package windows

import (
	"fmt"

	"window_quotation/internal/domain/catalog"
	"window_quotation/internal/domain/entities"
)

// ChangeArchetype switches a window to another archetype and resets its
// configuration to the new class defaults. The spec is kept.
func ChangeArchetype(w entities.WindowInstance, a entities.WindowArchetype) (entities.WindowInstance, error) {
	if !catalog.IsArchetype(a) {
		return w, entities.ValidationError{WindowID: w.ID, Field: "archetype", Value: string(a), Reason: "unknown archetype"}
	}
	if a == w.Archetype && w.Configuration != nil {
		return w, nil
	}
	w.Archetype = a
	w.Configuration = entities.DefaultConfiguration(a)
	return w, nil
}

// Configure replaces the configuration of a window. The variant must match
// the window's archetype; for patterned classes the panel count must exist in
// the catalog and a selected pattern must belong to that panel count; awning
// panels must lie in the awning range.
func Configure(w entities.WindowInstance, cfg entities.Configuration) (entities.WindowInstance, error) {
	if cfg == nil {
		return w, &entities.InvariantViolation{Operation: "configure", Reason: "configuration is required"}
	}
	if cfg.Archetype() != w.Archetype {
		return w, &entities.InvariantViolation{
			Operation: "configure",
			Reason:    fmt.Sprintf("%s configuration does not apply to a %s window", cfg.Archetype(), w.Archetype),
		}
	}
	switch v := cfg.(type) {
	case entities.PatternedConfiguration:
		if err := checkPattern(w.ID, v); err != nil {
			return w, err
		}
	case entities.AwningConfig:
		if v.Panels < entities.MinAwningPanels || v.Panels > entities.MaxAwningPanels {
			return w, entities.ValidationError{
				WindowID: w.ID, Field: "panels", Value: v.Panels,
				Reason: fmt.Sprintf("must be between %d and %d", entities.MinAwningPanels, entities.MaxAwningPanels),
			}
		}
	}
	w.Configuration = cfg
	return w, nil
}

// SetPanelCount changes the panel count of a patterned configuration,
// clearing the selected pattern when the count changes.
func SetPanelCount(w entities.WindowInstance, n int) (entities.WindowInstance, error) {
	pc, ok := w.Configuration.(entities.PatternedConfiguration)
	if !ok {
		return w, &entities.InvariantViolation{Operation: "set panel count", Reason: string(w.Archetype) + " has no panel layouts"}
	}
	next := pc.WithPanelCount(n)
	if err := checkPattern(w.ID, next); err != nil {
		return w, err
	}
	w.Configuration = next
	return w, nil
}

// SelectPattern picks a catalog pattern for the current panel count.
func SelectPattern(w entities.WindowInstance, id string) (entities.WindowInstance, error) {
	pc, ok := w.Configuration.(entities.PatternedConfiguration)
	if !ok {
		return w, &entities.InvariantViolation{Operation: "select pattern", Reason: string(w.Archetype) + " has no panel layouts"}
	}
	next := pc.WithPattern(id)
	if err := checkPattern(w.ID, next); err != nil {
		return w, err
	}
	w.Configuration = next
	return w, nil
}

func checkPattern(windowID string, pc entities.PatternedConfiguration) error {
	counts := catalog.PanelCounts(pc.Archetype())
	valid := false
	for _, c := range counts {
		if c == pc.PanelCount() {
			valid = true
			break
		}
	}
	if !valid {
		return entities.ValidationError{
			WindowID: windowID, Field: "panelCount", Value: pc.PanelCount(),
			Reason: fmt.Sprintf("must be one of %v", counts),
		}
	}
	if id := pc.SelectedPattern(); id != "" {
		if _, ok := catalog.FindPattern(pc.Archetype(), pc.PanelCount(), id); !ok {
			return &entities.InvariantViolation{
				Operation: "configure",
				Reason:    fmt.Sprintf("pattern %q is not valid for %d panels", id, pc.PanelCount()),
			}
		}
	}
	return nil
}
