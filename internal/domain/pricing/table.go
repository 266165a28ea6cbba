package pricing

import (
	"strings"

	"window_quotation/internal/domain/entities"
)

const sqMMPerSqFt = 92903

// PriceTable holds every rate the calculator reads. Rates are per square
// foot; transportation and loading are per unit.
type PriceTable struct {
	BaseRates             map[entities.WindowArchetype]float64
	FrameMultipliers      map[string]float64
	GlassMultipliers      map[string]float64
	TransportationPerUnit float64
	LoadingPerUnit        float64
	DefaultTaxRate        float64
}

func DefaultPriceTable() PriceTable {
	return PriceTable{
		BaseRates: map[entities.WindowArchetype]float64{
			entities.ArchetypeSliding:    520,
			entities.ArchetypeCasement:   580,
			entities.ArchetypeBay:        750,
			entities.ArchetypeAwning:     540,
			entities.ArchetypeFixed:      420,
			entities.ArchetypePicture:    450,
			entities.ArchetypeDoubleHung: 600,
			entities.ArchetypeSingleHung: 560,
			entities.ArchetypePivot:      650,
		},
		FrameMultipliers: map[string]float64{
			"aluminum":   1.0,
			"upvc":       1.15,
			"composite":  1.2,
			"steel":      1.25,
			"fiberglass": 1.3,
			"wood":       1.35,
		},
		GlassMultipliers: map[string]float64{
			"single":    1.0,
			"tempered":  1.2,
			"double":    1.25,
			"low-e":     1.3,
			"laminated": 1.35,
			"triple":    1.5,
		},
		TransportationPerUnit: 250,
		LoadingPerUnit:        100,
		DefaultTaxRate:        18,
	}
}

// BaseRate falls back to the sliding rate for archetypes missing from the table.
func (t PriceTable) BaseRate(a entities.WindowArchetype) float64 {
	if r, ok := t.BaseRates[a]; ok {
		return r
	}
	return t.BaseRates[entities.DefaultArchetype]
}

func (t PriceTable) FrameMultiplier(material string) float64 {
	return lookupMultiplier(t.FrameMultipliers, material)
}

func (t PriceTable) GlassMultiplier(glassType string) float64 {
	return lookupMultiplier(t.GlassMultipliers, glassType)
}

func lookupMultiplier(m map[string]float64, key string) float64 {
	if v, ok := m[strings.ToLower(strings.TrimSpace(key))]; ok {
		return v
	}
	return 1
}
