package render

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	"window_quotation/internal/domain/diagram"
	"window_quotation/internal/usecase/interfaces"

	"github.com/jung-kurt/gofpdf"
)

const (
	pageMargin  = 15.0
	drawingTop  = 40.0
	sceneMargin = 40.0 // scene units reserved around the frame for labels
	glyphSize   = 6.0
)

// PDFRenderer draws one A4 page per window schematic.
type PDFRenderer struct {
	company string
	now     func() time.Time
}

var _ interfaces.IDiagramRenderer = (*PDFRenderer)(nil)

func NewPDFRenderer(company string) *PDFRenderer {
	return &PDFRenderer{company: company, now: time.Now}
}

func (r *PDFRenderer) Render(ctx context.Context, quotationNumber string, sheets []interfaces.DiagramSheet) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Quotation "+quotationNumber, false)
	pdf.SetCreator("window_quotation", false)
	pdf.AliasNbPages("")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(120, 120, 120)
		footer := fmt.Sprintf("%s | generated %s | page %d/{nb}", quotationNumber, r.now().UTC().Format("2006-01-02 15:04"), pdf.PageNo())
		if r.company != "" {
			footer = r.company + " | " + footer
		}
		pdf.CellFormat(0, 5, tr(footer), "", 0, "C", false, 0, "")
	})

	for i, sheet := range sheets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		pdf.AddPage()
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Helvetica", "B", 16)
		pdf.Cell(0, 10, tr(sheet.Title))
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 10)
		pdf.Cell(0, 6, tr(sheet.Subtitle))
		pdf.Ln(6)

		drawScene(pdf, tr, sheet.Scene)
		if err := pdf.Error(); err != nil {
			log.Printf("[quotation][pdf] draw failed number=%s sheet=%d err=%v", quotationNumber, i, err)
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		log.Printf("[quotation][pdf] output failed number=%s err=%v", quotationNumber, err)
		return nil, err
	}
	return buf.Bytes(), nil
}

// viewport maps scene units onto the page.
type viewport struct {
	scale   float64
	originX float64
	originY float64
}

func (v viewport) x(sx float64) float64 { return v.originX + (sx+sceneMargin)*v.scale }
func (v viewport) y(sy float64) float64 { return v.originY + (sy+sceneMargin)*v.scale }
func (v viewport) d(n float64) float64  { return n * v.scale }

func newViewport(pdf *gofpdf.Fpdf, b diagram.Rect) viewport {
	pageW, pageH := pdf.GetPageSize()
	availW := pageW - 2*pageMargin
	availH := pageH - drawingTop - 2*pageMargin
	worldW := b.Width + 2*sceneMargin
	worldH := b.Height + 2*sceneMargin
	scale := math.Min(availW/worldW, availH/worldH)
	return viewport{
		scale:   scale,
		originX: pageMargin + (availW-worldW*scale)/2 - b.X*scale,
		originY: drawingTop + pageMargin - b.Y*scale,
	}
}

func drawScene(pdf *gofpdf.Fpdf, tr func(string) string, s diagram.SceneDescription) {
	v := newViewport(pdf, s.Bounds)

	pdf.SetLineWidth(0.4)
	pdf.SetDrawColor(60, 60, 60)
	setFill(pdf, s.FrameColor)
	pdf.Rect(v.x(s.Bounds.X), v.y(s.Bounds.Y), v.d(s.Bounds.Width), v.d(s.Bounds.Height), "FD")

	for _, p := range s.Panels {
		setFill(pdf, s.GlassColor)
		drawPanel(pdf, v, p)
	}
	if s.Grille != nil {
		drawGrille(pdf, v, s.Panels, *s.Grille)
	}
	for _, p := range s.Panels {
		drawMovement(pdf, v, p)
	}
	for _, g := range s.Features {
		drawFeature(pdf, v, g)
	}
	for _, l := range s.Labels {
		drawLabel(pdf, tr, v, l)
	}
}

// drawPanel draws bay flanks as trapezoids: the outer edge shrinks with the
// projection angle.
func drawPanel(pdf *gofpdf.Fpdf, v viewport, p diagram.Panel) {
	b := p.Bounds
	if p.Skew == 0 {
		pdf.Rect(v.x(b.X), v.y(b.Y), v.d(b.Width), v.d(b.Height), "FD")
		return
	}
	inset := math.Min(b.Height*0.25, b.Width*math.Tan(math.Abs(p.Skew)*math.Pi/180)*0.3)
	left, right := b.X, b.X+b.Width
	top, bottom := b.Y, b.Y+b.Height
	var pts []gofpdf.PointType
	if p.Skew < 0 {
		pts = []gofpdf.PointType{
			{X: v.x(left), Y: v.y(top + inset)}, {X: v.x(right), Y: v.y(top)},
			{X: v.x(right), Y: v.y(bottom)}, {X: v.x(left), Y: v.y(bottom - inset)},
		}
	} else {
		pts = []gofpdf.PointType{
			{X: v.x(left), Y: v.y(top)}, {X: v.x(right), Y: v.y(top + inset)},
			{X: v.x(right), Y: v.y(bottom - inset)}, {X: v.x(left), Y: v.y(bottom)},
		}
	}
	pdf.Polygon(pts, "FD")
}

func drawGrille(pdf *gofpdf.Fpdf, v viewport, panels []diagram.Panel, g diagram.GrilleLayer) {
	r, gr, b := hexToRGB(g.Color)
	pdf.SetDrawColor(r, gr, b)
	pdf.SetLineWidth(0.6)
	defer func() {
		pdf.SetDrawColor(60, 60, 60)
		pdf.SetLineWidth(0.4)
	}()

	for _, idx := range g.Panels {
		if idx < 0 || idx >= len(panels) {
			continue
		}
		pb := panels[idx].Bounds
		switch g.Pattern {
		case "diamond":
			cx, cy := pb.X+pb.Width/2, pb.Y+pb.Height/2
			pdf.Polygon([]gofpdf.PointType{
				{X: v.x(cx), Y: v.y(pb.Y)}, {X: v.x(pb.X + pb.Width), Y: v.y(cy)},
				{X: v.x(cx), Y: v.y(pb.Y + pb.Height)}, {X: v.x(pb.X), Y: v.y(cy)},
			}, "D")
		case "prairie":
			in := math.Min(pb.Width, pb.Height) * 0.15
			pdf.Line(v.x(pb.X+in), v.y(pb.Y), v.x(pb.X+in), v.y(pb.Y+pb.Height))
			pdf.Line(v.x(pb.X+pb.Width-in), v.y(pb.Y), v.x(pb.X+pb.Width-in), v.y(pb.Y+pb.Height))
			pdf.Line(v.x(pb.X), v.y(pb.Y+in), v.x(pb.X+pb.Width), v.y(pb.Y+in))
			pdf.Line(v.x(pb.X), v.y(pb.Y+pb.Height-in), v.x(pb.X+pb.Width), v.y(pb.Y+pb.Height-in))
		default:
			for i := 1; i < g.Cols; i++ {
				x := pb.X + pb.Width*float64(i)/float64(g.Cols)
				pdf.Line(v.x(x), v.y(pb.Y), v.x(x), v.y(pb.Y+pb.Height))
			}
			for i := 1; i < g.Rows; i++ {
				y := pb.Y + pb.Height*float64(i)/float64(g.Rows)
				pdf.Line(v.x(pb.X), v.y(y), v.x(pb.X+pb.Width), v.y(y))
			}
		}
	}
}

func drawMovement(pdf *gofpdf.Fpdf, v viewport, p diagram.Panel) {
	b := p.Bounds
	c := p.Movement.Anchor
	cx, cy := v.x(c.X), v.y(c.Y)
	half := math.Min(v.d(b.Width), v.d(b.Height)) * 0.25

	pdf.SetDrawColor(30, 30, 30)
	switch p.Movement.Kind {
	case diagram.GlyphArrowLeft:
		arrow(pdf, cx+half, cy, cx-half, cy)
	case diagram.GlyphArrowRight:
		arrow(pdf, cx-half, cy, cx+half, cy)
	case diagram.GlyphArrowUp:
		arrow(pdf, cx, cy+half, cx, cy-half)
	case diagram.GlyphArrowUpDown:
		arrow(pdf, cx, cy, cx, cy-half)
		arrow(pdf, cx, cy, cx, cy+half)
	case diagram.GlyphHingeLeft, diagram.GlyphHingeRight, diagram.GlyphHingeTop:
		// opening triangle: the apex sits on the hinge side
		l, t := v.x(b.X), v.y(b.Y)
		r, btm := v.x(b.X+b.Width), v.y(b.Y+b.Height)
		pdf.SetDashPattern([]float64{1.5, 1}, 0)
		switch p.Movement.Kind {
		case diagram.GlyphHingeLeft:
			pdf.Line(r, t, l, (t+btm)/2)
			pdf.Line(l, (t+btm)/2, r, btm)
		case diagram.GlyphHingeRight:
			pdf.Line(l, t, r, (t+btm)/2)
			pdf.Line(r, (t+btm)/2, l, btm)
		default:
			pdf.Line(l, btm, (l+r)/2, t)
			pdf.Line((l+r)/2, t, r, btm)
		}
		pdf.SetDashPattern([]float64{}, 0)
	case diagram.GlyphPivotVertical:
		pdf.SetDashPattern([]float64{2, 1, 0.5, 1}, 0)
		pdf.Line(cx, v.y(b.Y), cx, v.y(b.Y+b.Height))
		pdf.SetDashPattern([]float64{}, 0)
	case diagram.GlyphPivotHorizon:
		pdf.SetDashPattern([]float64{2, 1, 0.5, 1}, 0)
		pdf.Line(v.x(b.X), cy, v.x(b.X+b.Width), cy)
		pdf.SetDashPattern([]float64{}, 0)
	}
	pdf.SetDrawColor(60, 60, 60)
}

func arrow(pdf *gofpdf.Fpdf, x1, y1, x2, y2 float64) {
	pdf.Line(x1, y1, x2, y2)
	angle := math.Atan2(y2-y1, x2-x1)
	const head = 2.5
	for _, d := range []float64{math.Pi * 5 / 6, -math.Pi * 5 / 6} {
		pdf.Line(x2, y2, x2+head*math.Cos(angle+d), y2+head*math.Sin(angle+d))
	}
}

var featureLetters = map[diagram.GlyphKind]string{
	diagram.GlyphScreen:    "S",
	diagram.GlyphMotor:     "M",
	diagram.GlyphLock:      "L",
	diagram.GlyphSmartHome: "W",
	diagram.GlyphBlinds:    "B",
}

func drawFeature(pdf *gofpdf.Fpdf, v viewport, g diagram.Glyph) {
	letter, ok := featureLetters[g.Kind]
	if !ok {
		return
	}
	x, y := v.x(g.Anchor.X), v.y(g.Anchor.Y)
	pdf.SetFillColor(255, 255, 255)
	pdf.Circle(x, y, glyphSize/2, "FD")
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(30, 30, 30)
	pdf.Text(x-pdf.GetStringWidth(letter)/2, y+1.2, letter)
}

func drawLabel(pdf *gofpdf.Fpdf, tr func(string) string, v viewport, l diagram.Label) {
	text := tr(l.Text)
	size := 9.0
	style := ""
	if l.Kind == diagram.LabelTitle {
		size, style = 11, "B"
	}
	pdf.SetFont("Helvetica", style, size)
	pdf.SetTextColor(0, 0, 0)
	w := pdf.GetStringWidth(text)
	x, y := v.x(l.Anchor.X), v.y(l.Anchor.Y)
	if l.Kind == diagram.LabelHeight {
		pdf.TransformBegin()
		pdf.TransformRotate(90, x, y)
		pdf.Text(x-w/2, y, text)
		pdf.TransformEnd()
		return
	}
	pdf.Text(x-w/2, y, text)
}

func setFill(pdf *gofpdf.Fpdf, hex string) {
	r, g, b := hexToRGB(hex)
	pdf.SetFillColor(r, g, b)
}

// hexToRGB parses "#RRGGBB"; anything else is mid grey.
func hexToRGB(hex string) (int, int, int) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) != 6 {
		return 158, 158, 158
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 158, 158, 158
	}
	return int((n >> 16) & 0xFF), int((n >> 8) & 0xFF), int(n & 0xFF)
}
