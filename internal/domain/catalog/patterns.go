package catalog

import "window_quotation/internal/domain/entities"

const (
	fx = entities.RoleFixed
	sl = entities.RoleSliding
	dh = entities.RoleDoubleHung
	sh = entities.RoleSingleHung
	cs = entities.RoleCasement
)

type patternKey struct {
	class entities.WindowArchetype
	count int
}

// patterns is the static pattern table. The first entry per key is the default.
var patterns = map[patternKey][]entities.ConfigurationPattern{
	{entities.ArchetypeSliding, 2}: {
		{ID: "fs", Name: "Fixed + Sliding", Roles: []entities.PanelRole{fx, sl}},
		{ID: "sf", Name: "Sliding + Fixed", Roles: []entities.PanelRole{sl, fx}},
		{ID: "ss", Name: "Both Sliding", Roles: []entities.PanelRole{sl, sl}},
	},
	{entities.ArchetypeSliding, 3}: {
		{ID: "fsf", Name: "Fixed + Sliding + Fixed", Roles: []entities.PanelRole{fx, sl, fx}},
		{ID: "sfs", Name: "Sliding + Fixed + Sliding", Roles: []entities.PanelRole{sl, fx, sl}},
		{ID: "sss", Name: "All Sliding", Roles: []entities.PanelRole{sl, sl, sl}},
	},
	{entities.ArchetypeSliding, 4}: {
		{ID: "fssf", Name: "Fixed + 2 Sliding + Fixed", Roles: []entities.PanelRole{fx, sl, sl, fx}},
		{ID: "sffs", Name: "Sliding + 2 Fixed + Sliding", Roles: []entities.PanelRole{sl, fx, fx, sl}},
		{ID: "ssss", Name: "All Sliding", Roles: []entities.PanelRole{sl, sl, sl, sl}},
	},
	{entities.ArchetypeBay, 3}: {
		{ID: "cfc", Name: "Casement + Fixed + Casement", Roles: []entities.PanelRole{cs, fx, cs}},
		{ID: "fff", Name: "All Fixed", Roles: []entities.PanelRole{fx, fx, fx}},
	},
	{entities.ArchetypeBay, 4}: {
		{ID: "cffc", Name: "Casement + 2 Fixed + Casement", Roles: []entities.PanelRole{cs, fx, fx, cs}},
		{ID: "ffff", Name: "All Fixed", Roles: []entities.PanelRole{fx, fx, fx, fx}},
	},
	{entities.ArchetypeBay, 5}: {
		{ID: "cfffc", Name: "Casement + 3 Fixed + Casement", Roles: []entities.PanelRole{cs, fx, fx, fx, cs}},
		{ID: "cfcfc", Name: "Alternating Casement", Roles: []entities.PanelRole{cs, fx, cs, fx, cs}},
		{ID: "fffff", Name: "All Fixed", Roles: []entities.PanelRole{fx, fx, fx, fx, fx}},
	},
	{entities.ArchetypeDoubleHung, 1}: {
		{ID: "dh", Name: "Single Unit", Roles: []entities.PanelRole{dh}},
	},
	{entities.ArchetypeDoubleHung, 2}: {
		{ID: "dh-dh", Name: "Twin Units", Roles: []entities.PanelRole{dh, dh}},
		{ID: "dh-f", Name: "Double Hung + Fixed", Roles: []entities.PanelRole{dh, fx}},
	},
	{entities.ArchetypeDoubleHung, 3}: {
		{ID: "dh-f-dh", Name: "Double Hung + Fixed + Double Hung", Roles: []entities.PanelRole{dh, fx, dh}},
		{ID: "dh-dh-dh", Name: "Triple Units", Roles: []entities.PanelRole{dh, dh, dh}},
	},
	{entities.ArchetypeSingleHung, 1}: {
		{ID: "sh", Name: "Single Unit", Roles: []entities.PanelRole{sh}},
	},
	{entities.ArchetypeSingleHung, 2}: {
		{ID: "sh-sh", Name: "Twin Units", Roles: []entities.PanelRole{sh, sh}},
		{ID: "sh-f", Name: "Single Hung + Fixed", Roles: []entities.PanelRole{sh, fx}},
	},
	{entities.ArchetypeSingleHung, 3}: {
		{ID: "sh-f-sh", Name: "Single Hung + Fixed + Single Hung", Roles: []entities.PanelRole{sh, fx, sh}},
		{ID: "sh-sh-sh", Name: "Triple Units", Roles: []entities.PanelRole{sh, sh, sh}},
	},
}

var panelCounts = map[entities.WindowArchetype][]int{
	entities.ArchetypeSliding:    {2, 3, 4},
	entities.ArchetypeBay:        {3, 4, 5},
	entities.ArchetypeDoubleHung: {1, 2, 3},
	entities.ArchetypeSingleHung: {1, 2, 3},
}

// HasPatterns reports whether class has a pattern catalog at all.
func HasPatterns(class entities.WindowArchetype) bool {
	_, ok := panelCounts[class]
	return ok
}

// PanelCounts lists the panel counts the class supports, ascending.
func PanelCounts(class entities.WindowArchetype) []int {
	counts := panelCounts[class]
	out := make([]int, len(counts))
	copy(out, counts)
	return out
}

// GetPatterns returns the ordered patterns for (class, panelCount), or an
// empty slice when the class has no catalog for that count.
func GetPatterns(class entities.WindowArchetype, panelCount int) []entities.ConfigurationPattern {
	src := patterns[patternKey{class, panelCount}]
	out := make([]entities.ConfigurationPattern, 0, len(src))
	for _, p := range src {
		out = append(out, clonePattern(class, panelCount, p))
	}
	return out
}

// GetDefaultPattern returns the first catalog entry for (class, panelCount).
func GetDefaultPattern(class entities.WindowArchetype, panelCount int) (entities.ConfigurationPattern, bool) {
	src := patterns[patternKey{class, panelCount}]
	if len(src) == 0 {
		return entities.ConfigurationPattern{}, false
	}
	return clonePattern(class, panelCount, src[0]), true
}

// FindPattern looks up a pattern id within (class, panelCount). A pattern id
// that belongs to another panel count is not found.
func FindPattern(class entities.WindowArchetype, panelCount int, id string) (entities.ConfigurationPattern, bool) {
	for _, p := range patterns[patternKey{class, panelCount}] {
		if p.ID == id {
			return clonePattern(class, panelCount, p), true
		}
	}
	return entities.ConfigurationPattern{}, false
}

// ResolvePattern returns the selected pattern when it is valid for the
// configuration's current panel count, else the class default.
func ResolvePattern(cfg entities.PatternedConfiguration) (entities.ConfigurationPattern, bool) {
	if id := cfg.SelectedPattern(); id != "" {
		if p, ok := FindPattern(cfg.Archetype(), cfg.PanelCount(), id); ok {
			return p, true
		}
	}
	return GetDefaultPattern(cfg.Archetype(), cfg.PanelCount())
}

func clonePattern(class entities.WindowArchetype, count int, p entities.ConfigurationPattern) entities.ConfigurationPattern {
	p.Class = class
	p.PanelCount = count
	p.Roles = append([]entities.PanelRole(nil), p.Roles...)
	return p
}
