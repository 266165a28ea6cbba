package codec

import (
	"window_quotation/internal/domain/catalog"
	"window_quotation/internal/domain/entities"
)

const configTypeKey = "type"

// EncodeConfiguration writes a variant as a flat object tagged with its
// archetype under "type".
func EncodeConfiguration(cfg entities.Configuration) map[string]any {
	return encodeConfiguration(cfg)
}

func encodeConfiguration(cfg entities.Configuration) map[string]any {
	out := map[string]any{configTypeKey: string(cfg.Archetype())}
	switch c := cfg.(type) {
	case entities.SlidingConfig:
		out["panels"], out["tracks"], out["patternId"], out["openingDirection"] = c.Panels, c.Tracks, c.PatternID, c.OpeningDirection
	case entities.CasementConfig:
		out["direction"], out["hinge"] = c.Direction, c.Hinge
	case entities.BayConfig:
		out["angle"], out["patternId"], out["sideWindowCount"] = c.Angle, c.PatternID, c.SideWindowCount
	case entities.AwningConfig:
		out["panels"], out["operator"] = c.Panels, c.Operator
	case entities.FixedConfig:
		out["shape"] = c.Shape
	case entities.PictureConfig:
		out["frameless"] = c.Frameless
	case entities.DoubleHungConfig:
		out["panels"], out["patternId"], out["tiltIn"] = c.Panels, c.PatternID, c.TiltIn
	case entities.SingleHungConfig:
		out["panels"], out["patternId"] = c.Panels, c.PatternID
	case entities.PivotConfig:
		out["axis"] = c.Axis
	}
	return out
}

// configSources returns the configuration objects that may describe a window
// of archetype a, in precedence order. An object tagged with another
// archetype is ignored.
func configSources(a entities.WindowArchetype, candidates ...namedNode) []namedNode {
	out := make([]namedNode, 0, len(candidates))
	for _, c := range candidates {
		if c.n == nil {
			continue
		}
		if t, ok := toEnum(c.n[configTypeKey]); ok && entities.WindowArchetype(t) != a {
			if la, ok := catalog.LookupArchetype(t); !ok || la != a {
				continue
			}
		}
		out = append(out, c)
	}
	return out
}

type namedNode struct {
	name string
	n    node
}

func fieldSources(srcs []namedNode, keys ...string) []Source {
	out := make([]Source, 0, len(srcs))
	for _, s := range srcs {
		out = append(out, s.n.srcAny(s.name, nil, keys...))
	}
	return out
}

// DecodeConfiguration builds a variant of archetype a from a flat object such
// as the one EncodeConfiguration writes. Missing or malformed fields take the
// class defaults. Panel counts and pattern ids are kept as given so callers
// can reject them.
func DecodeConfiguration(a entities.WindowArchetype, fields map[string]any) entities.Configuration {
	return resolveConfiguration(a, []namedNode{{name: "payload", n: node(fields)}})
}

// decodeConfiguration resolves every variant field independently through
// srcs, then repairs pattern ids that do not fit the panel count.
func decodeConfiguration(a entities.WindowArchetype, srcs []namedNode) entities.Configuration {
	return repairPattern(resolveConfiguration(a, srcs))
}

func resolveConfiguration(a entities.WindowArchetype, srcs []namedNode) entities.Configuration {
	str := func(def string, keys ...string) string {
		return Resolve(keys[0], toString, def, fieldSources(srcs, keys...)...).Value
	}
	num := func(def int, keys ...string) int {
		return Resolve(keys[0], toInt, def, fieldSources(srcs, keys...)...).Value
	}
	flag := func(def bool, keys ...string) bool {
		return Resolve(keys[0], toBool, def, fieldSources(srcs, keys...)...).Value
	}

	var cfg entities.Configuration
	switch d := entities.DefaultConfiguration(a).(type) {
	case entities.SlidingConfig:
		cfg = entities.SlidingConfig{
			Panels:           num(d.Panels, "panels", "panelCount"),
			Tracks:           num(d.Tracks, "tracks"),
			PatternID:        str("", "patternId", "pattern"),
			OpeningDirection: str(d.OpeningDirection, "openingDirection"),
		}
	case entities.CasementConfig:
		cfg = entities.CasementConfig{Direction: str(d.Direction, "direction"), Hinge: str(d.Hinge, "hinge", "hingeSide")}
	case entities.BayConfig:
		cfg = entities.BayConfig{
			Angle:           num(d.Angle, "angle", "bayAngle"),
			PatternID:       str("", "patternId", "pattern"),
			SideWindowCount: num(d.SideWindowCount, "sideWindowCount"),
		}
	case entities.AwningConfig:
		cfg = entities.AwningConfig{Panels: num(d.Panels, "panels"), Operator: str(d.Operator, "operator")}
	case entities.FixedConfig:
		cfg = entities.FixedConfig{Shape: str(d.Shape, "shape")}
	case entities.PictureConfig:
		cfg = entities.PictureConfig{Frameless: flag(d.Frameless, "frameless")}
	case entities.DoubleHungConfig:
		cfg = entities.DoubleHungConfig{
			Panels:    num(d.Panels, "panels", "panelCount"),
			PatternID: str("", "patternId", "pattern"),
			TiltIn:    flag(d.TiltIn, "tiltIn"),
		}
	case entities.SingleHungConfig:
		cfg = entities.SingleHungConfig{Panels: num(d.Panels, "panels", "panelCount"), PatternID: str("", "patternId", "pattern")}
	case entities.PivotConfig:
		cfg = entities.PivotConfig{Axis: str(d.Axis, "axis")}
	default:
		cfg = d
	}
	return cfg
}

// repairPattern resets a panel count the catalog does not know and clears a
// pattern id that does not belong to the panel count. Awning panel counts are
// clamped to the awning range.
func repairPattern(cfg entities.Configuration) entities.Configuration {
	if aw, ok := cfg.(entities.AwningConfig); ok {
		aw.Panels = entities.ClampAwningPanels(aw.Panels)
		return aw
	}
	pc, ok := cfg.(entities.PatternedConfiguration)
	if !ok {
		return cfg
	}
	known := false
	for _, n := range catalog.PanelCounts(pc.Archetype()) {
		if n == pc.PanelCount() {
			known = true
			break
		}
	}
	if !known {
		def := entities.DefaultConfiguration(pc.Archetype()).(entities.PatternedConfiguration)
		pc = pc.WithPanelCount(def.PanelCount())
	}
	if id := pc.SelectedPattern(); id != "" {
		if _, ok := catalog.FindPattern(pc.Archetype(), pc.PanelCount(), id); !ok {
			pc = pc.WithPattern("")
		}
	}
	return pc
}
