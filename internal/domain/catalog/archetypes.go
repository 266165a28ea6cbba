package catalog

import (
	"strings"

	"window_quotation/internal/domain/entities"
)

var archetypes = []entities.ArchetypeInfo{
	{ID: entities.ArchetypeSliding, Name: "Sliding Window", Description: "Horizontal sliding sashes running on parallel tracks"},
	{ID: entities.ArchetypeCasement, Name: "Casement Window", Description: "Side-hinged sash opening like a door"},
	{ID: entities.ArchetypeBay, Name: "Bay Window", Description: "Centre unit with angled flanking units projecting outward"},
	{ID: entities.ArchetypeAwning, Name: "Awning Window", Description: "Top-hinged sash opening outward from the bottom"},
	{ID: entities.ArchetypeFixed, Name: "Fixed Window", Description: "Non-operable glazed unit"},
	{ID: entities.ArchetypePicture, Name: "Picture Window", Description: "Large fixed pane with minimal frame for unobstructed views"},
	{ID: entities.ArchetypeDoubleHung, Name: "Double Hung Window", Description: "Two vertically sliding sashes, both operable"},
	{ID: entities.ArchetypeSingleHung, Name: "Single Hung Window", Description: "Fixed upper sash over a vertically sliding lower sash"},
	{ID: entities.ArchetypePivot, Name: "Pivot Window", Description: "Sash rotating on a central vertical or horizontal axis"},
}

// Archetypes returns the nine archetypes in display order.
func Archetypes() []entities.ArchetypeInfo {
	out := make([]entities.ArchetypeInfo, len(archetypes))
	copy(out, archetypes)
	return out
}

func Archetype(id entities.WindowArchetype) (entities.ArchetypeInfo, bool) {
	for _, a := range archetypes {
		if a.ID == id {
			return a, true
		}
	}
	return entities.ArchetypeInfo{}, false
}

// IsArchetype reports whether id names a catalog archetype exactly.
func IsArchetype(id entities.WindowArchetype) bool {
	_, ok := Archetype(id)
	return ok
}

// DisplayName returns the catalog name, or the raw id for unknown archetypes.
func DisplayName(id entities.WindowArchetype) string {
	if a, ok := Archetype(id); ok {
		return a.Name
	}
	return string(id)
}

// LookupArchetype resolves free text written by older clients. It accepts an
// id ("double-hung", "Double_Hung") or any case-insensitive substring match
// against a display name ("Bay", "sliding window").
func LookupArchetype(s string) (entities.WindowArchetype, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", false
	}
	norm := strings.NewReplacer(" ", "-", "_", "-").Replace(s)
	for _, a := range archetypes {
		if string(a.ID) == norm {
			return a.ID, true
		}
	}
	for _, a := range archetypes {
		name := strings.ToLower(a.Name)
		if strings.Contains(name, s) || strings.Contains(s, name) {
			return a.ID, true
		}
	}
	// "doublehung", "double hung window" and friends
	compact := strings.ReplaceAll(norm, "-", "")
	for _, a := range archetypes {
		id := strings.ReplaceAll(string(a.ID), "-", "")
		if strings.Contains(compact, id) {
			return a.ID, true
		}
	}
	return "", false
}
