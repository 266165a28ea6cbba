// Package diagram maps a window's archetype, configuration and spec to a
// declarative scene. It never draws; renderers consume SceneDescription.
package diagram

import (
	"fmt"
	"math"

	"window_quotation/internal/domain/catalog"
	"window_quotation/internal/domain/entities"
)

const (
	sceneMaxSide    = 300.0
	sceneMinSide    = 100.0
	frameWidth      = 12.0
	framelessWidth  = 4.0
	labelOffset     = 18.0
	featureInset    = 0.12
	defaultWidthMM  = 1200.0
	defaultHeightMM = 1500.0
)

// MapToScene is pure: identical inputs yield identical scenes. A nil or
// mismatched configuration is replaced by the archetype defaults, and a
// pattern id that does not fit the panel count resolves to the class default.
func MapToScene(archetype entities.WindowArchetype, cfg entities.Configuration, spec entities.WindowSpec) SceneDescription {
	if !catalog.IsArchetype(archetype) {
		archetype = entities.DefaultArchetype
	}
	if cfg == nil || cfg.Archetype() != archetype {
		cfg = entities.DefaultConfiguration(archetype)
	}

	s := SceneDescription{
		Archetype:  archetype,
		Bounds:     boundingBox(spec.Width, spec.Height),
		FrameColor: FrameColor(spec.FrameMaterial, spec.FrameColor),
		GlassColor: GlassColor(spec.GlassType, spec.GlassTint),
		FrameWidth: frameWidth,
	}
	if pc, ok := cfg.(entities.PictureConfig); ok && pc.Frameless {
		s.FrameWidth = framelessWidth
	}

	roles, pattern := panelRoles(cfg)
	if pattern.ID != "" {
		s.PatternID = pattern.ID
	}
	if bay, ok := cfg.(entities.BayConfig); ok {
		s.BayAngle = bay.Angle
	}
	s.Panels = layoutPanels(s.Bounds, s.FrameWidth, cfg, roles)
	s.Grille = grilleLayer(spec, len(s.Panels))
	s.Features = featureGlyphs(s.Bounds, spec)
	s.Labels = labels(s.Bounds, archetype, pattern, spec)
	return s
}

// boundingBox keeps the aspect ratio, scales the longer side to sceneMaxSide
// and never lets a side drop below sceneMinSide.
func boundingBox(w, h float64) Rect {
	if w <= 0 || h <= 0 {
		w, h = defaultWidthMM, defaultHeightMM
	}
	var bw, bh float64
	if w >= h {
		bw, bh = sceneMaxSide, sceneMaxSide*h/w
	} else {
		bw, bh = sceneMaxSide*w/h, sceneMaxSide
	}
	return Rect{Width: math.Max(bw, sceneMinSide), Height: math.Max(bh, sceneMinSide)}
}

func panelRoles(cfg entities.Configuration) ([]entities.PanelRole, entities.ConfigurationPattern) {
	if pc, ok := cfg.(entities.PatternedConfiguration); ok {
		if p, ok := catalog.ResolvePattern(pc); ok {
			return p.Roles, p
		}
		// Panel count outside the catalog: fall back to the class default count.
		def := entities.DefaultConfiguration(cfg.Archetype()).(entities.PatternedConfiguration)
		if p, ok := catalog.GetDefaultPattern(def.Archetype(), def.PanelCount()); ok {
			return p.Roles, p
		}
	}
	switch v := cfg.(type) {
	case entities.CasementConfig:
		return []entities.PanelRole{entities.RoleCasement}, entities.ConfigurationPattern{}
	case entities.AwningConfig:
		n := entities.PanelCountOf(v)
		roles := make([]entities.PanelRole, n)
		for i := range roles {
			roles[i] = entities.RoleAwning
		}
		return roles, entities.ConfigurationPattern{}
	case entities.PivotConfig:
		return []entities.PanelRole{entities.RolePivot}, entities.ConfigurationPattern{}
	}
	return []entities.PanelRole{entities.RoleFixed}, entities.ConfigurationPattern{}
}

func layoutPanels(box Rect, fw float64, cfg entities.Configuration, roles []entities.PanelRole) []Panel {
	inner := Rect{X: box.X + fw, Y: box.Y + fw, Width: box.Width - 2*fw, Height: box.Height - 2*fw}
	n := len(roles)
	_, vertical := cfg.(entities.AwningConfig)
	bay, isBay := cfg.(entities.BayConfig)

	panels := make([]Panel, 0, n)
	for i, role := range roles {
		var r Rect
		if vertical {
			h := inner.Height / float64(n)
			r = Rect{X: inner.X, Y: inner.Y + float64(i)*h, Width: inner.Width, Height: h}
		} else {
			w := inner.Width / float64(n)
			r = Rect{X: inner.X + float64(i)*w, Y: inner.Y, Width: w, Height: inner.Height}
		}
		p := Panel{Index: i, Role: role, Bounds: r}
		if isBay && n > 1 {
			switch i {
			case 0:
				p.Skew = -float64(bay.Angle)
			case n - 1:
				p.Skew = float64(bay.Angle)
			}
		}
		p.Movement = Glyph{Kind: movementGlyph(cfg, role, i, n), Anchor: r.Center()}
		panels = append(panels, p)
	}
	return panels
}

func movementGlyph(cfg entities.Configuration, role entities.PanelRole, i, n int) GlyphKind {
	leftHalf := float64(i) < float64(n-1)/2
	switch role {
	case entities.RoleSliding:
		if sc, ok := cfg.(entities.SlidingConfig); ok {
			switch norm(sc.OpeningDirection) {
			case "left":
				return GlyphArrowLeft
			case "right":
				return GlyphArrowRight
			}
		}
		if leftHalf {
			return GlyphArrowRight
		}
		return GlyphArrowLeft
	case entities.RoleCasement:
		if cc, ok := cfg.(entities.CasementConfig); ok {
			if norm(cc.Hinge) == "right" {
				return GlyphHingeRight
			}
			return GlyphHingeLeft
		}
		// flank casements hinge on the outer edge
		if leftHalf {
			return GlyphHingeLeft
		}
		return GlyphHingeRight
	case entities.RoleAwning:
		return GlyphHingeTop
	case entities.RoleDoubleHung:
		return GlyphArrowUpDown
	case entities.RoleSingleHung:
		return GlyphArrowUp
	case entities.RolePivot:
		if pc, ok := cfg.(entities.PivotConfig); ok && norm(pc.Axis) == "horizontal" {
			return GlyphPivotHorizon
		}
		return GlyphPivotVertical
	}
	return GlyphNone
}

func grilleLayer(spec entities.WindowSpec, panels int) *GrilleLayer {
	g := &GrilleLayer{Style: norm(spec.GrilleStyle), Color: GrilleColor(spec.GrilleColor)}
	switch g.Style {
	case "colonial":
		g.Rows, g.Cols = 2, 2
	case "georgian":
		g.Rows, g.Cols = 3, 3
	case "prairie":
		g.Pattern = "prairie"
	case "diamond":
		g.Pattern = "diamond"
	default:
		return nil
	}
	g.Panels = make([]int, panels)
	for i := range g.Panels {
		g.Panels[i] = i
	}
	return g
}

// featureGlyphs places accessory symbols at fixed anchors relative to the
// bounding box, in a fixed order, whatever the archetype.
func featureGlyphs(box Rect, spec entities.WindowSpec) []Glyph {
	at := func(fx, fy float64) Point {
		return Point{X: box.X + box.Width*fx, Y: box.Y + box.Height*fy}
	}
	out := []Glyph{}
	if spec.Screen {
		out = append(out, Glyph{Kind: GlyphScreen, Anchor: at(featureInset, 1-featureInset)})
	}
	if spec.Motorized {
		out = append(out, Glyph{Kind: GlyphMotor, Anchor: at(0.5, 1-featureInset)})
	}
	if spec.SecurityLock {
		out = append(out, Glyph{Kind: GlyphLock, Anchor: at(1-featureInset, 0.5)})
	}
	if spec.SmartHome {
		out = append(out, Glyph{Kind: GlyphSmartHome, Anchor: at(1-featureInset, featureInset)})
	}
	if spec.Blinds {
		out = append(out, Glyph{Kind: GlyphBlinds, Anchor: at(0.5, featureInset)})
	}
	return out
}

func labels(box Rect, a entities.WindowArchetype, p entities.ConfigurationPattern, spec entities.WindowSpec) []Label {
	w, h := spec.Width, spec.Height
	if w <= 0 || h <= 0 {
		w, h = defaultWidthMM, defaultHeightMM
	}
	out := []Label{
		{Kind: LabelTitle, Text: catalog.DisplayName(a), Anchor: Point{X: box.X + box.Width/2, Y: box.Y - labelOffset}},
		{Kind: LabelWidth, Text: fmt.Sprintf("%s mm", formatMM(w)), Anchor: Point{X: box.X + box.Width/2, Y: box.Y + box.Height + labelOffset}},
		{Kind: LabelHeight, Text: fmt.Sprintf("%s mm", formatMM(h)), Anchor: Point{X: box.X - labelOffset, Y: box.Y + box.Height/2}},
	}
	if p.Name != "" {
		out = append(out, Label{Kind: LabelLayout, Text: p.Name, Anchor: Point{X: box.X + box.Width/2, Y: box.Y + box.Height + 2*labelOffset}})
	}
	return out
}

func formatMM(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}
