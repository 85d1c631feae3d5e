package pdf

import (
	"math"
	"unicode/utf8"

	"github.com/pyhub-apps/pdftables-go/pkg/tables"
)

// pageSourceAdapter translates a Page's raw, PDF-runtime-specific
// objects into the abstract primitives the tables pipeline consumes. It
// is the only place in this package that knows about tables.PageSource;
// the pipeline itself never depends on pdfcpu or any other parser.
type pageSourceAdapter struct {
	page Page
}

// AsPageSource wraps a Page so it can be fed directly to the
// pkg/tables pipeline (tables.FindTables and friends).
func AsPageSource(page Page) tables.PageSource {
	return &pageSourceAdapter{page: page}
}

func (a *pageSourceAdapter) Width() float64  { return a.page.GetWidth() }
func (a *pageSourceAdapter) Height() float64 { return a.page.GetHeight() }

func (a *pageSourceAdapter) IsValid() bool {
	return a.page != nil
}

func (a *pageSourceAdapter) Chars() []tables.Char {
	objs := a.page.GetObjects().Chars
	out := make([]tables.Char, len(objs))
	for i, c := range objs {
		r, has := firstRune(c.Text)
		rotation := matrixRotationDegrees(c.Matrix)
		out[i] = tables.Char{
			Rune:     r,
			HasRune:  has,
			BBox:     tables.NewBBox(c.X0, c.Y0, c.X1, c.Y1),
			Rotation: rotation,
			Upright:  math.Abs(rotation) < 1,
		}
	}
	return out
}

func (a *pageSourceAdapter) Lines() []tables.LinePath {
	lines := DeduplicateLines(append([]LineObject{}, a.page.GetObjects().Lines...))
	lines = FilterPageBorderLines(lines, a.page.GetWidth(), a.page.GetHeight())
	out := make([]tables.LinePath, len(lines))
	for i, l := range lines {
		out[i] = tables.LinePath{
			Points:   []tables.Point{{X: l.X0, Y: l.Y0}, {X: l.X1, Y: l.Y1}},
			Straight: true,
		}
	}
	return out
}

func (a *pageSourceAdapter) Rects() []tables.RectPrim {
	rects := DeduplicateRectangles(append([]RectObject{}, a.page.GetObjects().Rects...))
	out := make([]tables.RectPrim, len(rects))
	for i, r := range rects {
		prim := tables.RectPrim{
			BBox: tables.NewBBox(r.X0, r.Y0, r.X1, r.Y1),
			Fill: toTablesColor(r.FillColor),
		}
		if !r.NonStroking {
			prim.Stroke = toTablesColor(r.StrokeColor)
			prim.StrokeWidth = r.Width
		}
		out[i] = prim
	}
	return out
}

func toTablesColor(c Color) tables.Color {
	return tables.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

func firstRune(s string) (rune, bool) {
	if s == "" {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return 0, false
	}
	return r, true
}

// matrixRotationDegrees recovers the clockwise rotation, in degrees,
// encoded by a character's text rendering matrix.
func matrixRotationDegrees(m TransformMatrix) float64 {
	if m.A == 0 && m.B == 0 {
		return 0
	}
	rad := math.Atan2(m.B, m.A)
	deg := rad * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}
