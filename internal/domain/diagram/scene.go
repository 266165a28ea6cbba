package diagram

import "window_quotation/internal/domain/entities"

// GlyphKind names a symbol the renderer draws. The renderer owns the artwork;
// the scene only says which symbol goes where.
type GlyphKind string

const (
	GlyphNone          GlyphKind = ""
	GlyphArrowLeft     GlyphKind = "arrow-left"
	GlyphArrowRight    GlyphKind = "arrow-right"
	GlyphArrowUp       GlyphKind = "arrow-up"
	GlyphArrowUpDown   GlyphKind = "arrow-up-down"
	GlyphHingeLeft     GlyphKind = "hinge-left"
	GlyphHingeRight    GlyphKind = "hinge-right"
	GlyphHingeTop      GlyphKind = "hinge-top"
	GlyphPivotVertical GlyphKind = "pivot-vertical"
	GlyphPivotHorizon  GlyphKind = "pivot-horizontal"

	GlyphScreen    GlyphKind = "screen"
	GlyphMotor     GlyphKind = "motor"
	GlyphLock      GlyphKind = "lock"
	GlyphSmartHome GlyphKind = "wifi"
	GlyphBlinds    GlyphKind = "blinds"
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

type Glyph struct {
	Kind   GlyphKind `json:"kind"`
	Anchor Point     `json:"anchor"`
}

// Panel is one glazed element. Skew is the projection angle in degrees for
// bay flank panels (negative on the left), zero otherwise.
type Panel struct {
	Index    int                `json:"index"`
	Role     entities.PanelRole `json:"role"`
	Bounds   Rect               `json:"bounds"`
	Skew     float64            `json:"skew,omitempty"`
	Movement Glyph              `json:"movement"`
}

// GrilleLayer overlays every glass panel. Rows/Cols split each panel into a
// grid; Pattern carries shapes a plain grid cannot express.
type GrilleLayer struct {
	Style   string `json:"style"`
	Color   string `json:"color"`
	Rows    int    `json:"rows"`
	Cols    int    `json:"cols"`
	Pattern string `json:"pattern,omitempty"`
	Panels  []int  `json:"panels"`
}

type LabelKind string

const (
	LabelWidth  LabelKind = "width"
	LabelHeight LabelKind = "height"
	LabelTitle  LabelKind = "title"
	LabelLayout LabelKind = "layout"
)

type Label struct {
	Kind   LabelKind `json:"kind"`
	Text   string    `json:"text"`
	Anchor Point     `json:"anchor"`
}

// SceneDescription is everything a renderer needs to draw one window
// schematic. Coordinates are abstract units inside Bounds.
type SceneDescription struct {
	Archetype  entities.WindowArchetype `json:"archetype"`
	PatternID  string                   `json:"patternId,omitempty"`
	Bounds     Rect                     `json:"bounds"`
	FrameColor string                   `json:"frameColor"`
	GlassColor string                   `json:"glassColor"`
	FrameWidth float64                  `json:"frameWidth"`
	BayAngle   int                      `json:"bayAngle,omitempty"`
	Panels     []Panel                  `json:"panels"`
	Grille     *GrilleLayer             `json:"grille,omitempty"`
	Features   []Glyph                  `json:"features"`
	Labels     []Label                  `json:"labels"`
}
