package entities

// Configuration is the archetype-specific part of a window. Exactly one
// variant is active per window; Archetype() is the discriminant.
type Configuration interface {
	Archetype() WindowArchetype
	isConfiguration()
}

// PatternedConfiguration is implemented by the variants whose panel layout
// comes from the pattern catalog (sliding, bay, double-hung, single-hung).
type PatternedConfiguration interface {
	Configuration
	PanelCount() int
	SelectedPattern() string
	// WithPanelCount returns a copy with the new panel count. The selected
	// pattern is cleared whenever the count changes.
	WithPanelCount(n int) PatternedConfiguration
	WithPattern(id string) PatternedConfiguration
}

type SlidingConfig struct {
	Panels           int    `json:"panels"`
	Tracks           int    `json:"tracks"`
	PatternID        string `json:"patternId,omitempty"`
	OpeningDirection string `json:"openingDirection"`
}

func (SlidingConfig) Archetype() WindowArchetype { return ArchetypeSliding }
func (SlidingConfig) isConfiguration()           {}
func (c SlidingConfig) PanelCount() int          { return c.Panels }
func (c SlidingConfig) SelectedPattern() string  { return c.PatternID }

func (c SlidingConfig) WithPanelCount(n int) PatternedConfiguration {
	if n != c.Panels {
		c.PatternID = ""
	}
	c.Panels = n
	return c
}

func (c SlidingConfig) WithPattern(id string) PatternedConfiguration {
	c.PatternID = id
	return c
}

type CasementConfig struct {
	Direction string `json:"direction"`
	Hinge     string `json:"hinge"`
}

func (CasementConfig) Archetype() WindowArchetype { return ArchetypeCasement }
func (CasementConfig) isConfiguration()           {}

// BayConfig describes a bay window: one center unit flanked by side units
// projecting at Angle degrees.
type BayConfig struct {
	Angle           int    `json:"angle"`
	PatternID       string `json:"patternId,omitempty"`
	SideWindowCount int    `json:"sideWindowCount"`
}

func (BayConfig) Archetype() WindowArchetype { return ArchetypeBay }
func (BayConfig) isConfiguration()           {}
func (c BayConfig) PanelCount() int          { return c.SideWindowCount + 1 }
func (c BayConfig) SelectedPattern() string  { return c.PatternID }

func (c BayConfig) WithPanelCount(n int) PatternedConfiguration {
	if n != c.PanelCount() {
		c.PatternID = ""
	}
	c.SideWindowCount = n - 1
	return c
}

func (c BayConfig) WithPattern(id string) PatternedConfiguration {
	c.PatternID = id
	return c
}

// Awning sashes are stacked vertically, between MinAwningPanels and
// MaxAwningPanels of them.
const (
	MinAwningPanels = 1
	MaxAwningPanels = 4
)

type AwningConfig struct {
	Panels   int    `json:"panels"`
	Operator string `json:"operator"`
}

// ClampAwningPanels forces n into the awning panel range.
func ClampAwningPanels(n int) int {
	if n < MinAwningPanels {
		return MinAwningPanels
	}
	if n > MaxAwningPanels {
		return MaxAwningPanels
	}
	return n
}

func (AwningConfig) Archetype() WindowArchetype { return ArchetypeAwning }
func (AwningConfig) isConfiguration()           {}

type FixedConfig struct {
	Shape string `json:"shape"`
}

func (FixedConfig) Archetype() WindowArchetype { return ArchetypeFixed }
func (FixedConfig) isConfiguration()           {}

type PictureConfig struct {
	Frameless bool `json:"frameless"`
}

func (PictureConfig) Archetype() WindowArchetype { return ArchetypePicture }
func (PictureConfig) isConfiguration()           {}

type DoubleHungConfig struct {
	Panels    int    `json:"panels"`
	PatternID string `json:"patternId,omitempty"`
	TiltIn    bool   `json:"tiltIn"`
}

func (DoubleHungConfig) Archetype() WindowArchetype { return ArchetypeDoubleHung }
func (DoubleHungConfig) isConfiguration()           {}
func (c DoubleHungConfig) PanelCount() int          { return c.Panels }
func (c DoubleHungConfig) SelectedPattern() string  { return c.PatternID }

func (c DoubleHungConfig) WithPanelCount(n int) PatternedConfiguration {
	if n != c.Panels {
		c.PatternID = ""
	}
	c.Panels = n
	return c
}

func (c DoubleHungConfig) WithPattern(id string) PatternedConfiguration {
	c.PatternID = id
	return c
}

type SingleHungConfig struct {
	Panels    int    `json:"panels"`
	PatternID string `json:"patternId,omitempty"`
}

func (SingleHungConfig) Archetype() WindowArchetype { return ArchetypeSingleHung }
func (SingleHungConfig) isConfiguration()           {}
func (c SingleHungConfig) PanelCount() int          { return c.Panels }
func (c SingleHungConfig) SelectedPattern() string  { return c.PatternID }

func (c SingleHungConfig) WithPanelCount(n int) PatternedConfiguration {
	if n != c.Panels {
		c.PatternID = ""
	}
	c.Panels = n
	return c
}

func (c SingleHungConfig) WithPattern(id string) PatternedConfiguration {
	c.PatternID = id
	return c
}

type PivotConfig struct {
	Axis string `json:"axis"`
}

func (PivotConfig) Archetype() WindowArchetype { return ArchetypePivot }
func (PivotConfig) isConfiguration()           {}

// DefaultConfiguration returns the class defaults for an archetype. Unknown
// archetypes get the sliding defaults.
func DefaultConfiguration(a WindowArchetype) Configuration {
	switch a {
	case ArchetypeCasement:
		return CasementConfig{Direction: "outward", Hinge: "left"}
	case ArchetypeBay:
		return BayConfig{Angle: 30, SideWindowCount: 2}
	case ArchetypeAwning:
		return AwningConfig{Panels: 1, Operator: "crank"}
	case ArchetypeFixed:
		return FixedConfig{Shape: "rectangle"}
	case ArchetypePicture:
		return PictureConfig{}
	case ArchetypeDoubleHung:
		return DoubleHungConfig{Panels: 1}
	case ArchetypeSingleHung:
		return SingleHungConfig{Panels: 1}
	case ArchetypePivot:
		return PivotConfig{Axis: "vertical"}
	default:
		return SlidingConfig{Panels: 2, Tracks: 2, OpeningDirection: "left"}
	}
}

// PanelCountOf reports how many panels a configuration draws.
func PanelCountOf(c Configuration) int {
	switch v := c.(type) {
	case PatternedConfiguration:
		return v.PanelCount()
	case AwningConfig:
		return ClampAwningPanels(v.Panels)
	default:
		return 1
	}
}
