package tables

import "math"

// Point is a 2D coordinate in page space.
type Point struct {
	X, Y float64
}

// Color is an RGB color with an alpha channel, mirroring pkg/pdf.Color so
// callers can carry colors through the pipeline without conversion.
type Color struct {
	R, G, B, A uint8
}

// Opaque reports whether the color should be treated as painted rather
// than fully transparent.
func (c Color) Opaque() bool {
	return c.A > 0
}

// BBox is an axis-aligned bounding box. X0<=X1 and Y0<=Y1 always hold for
// a value produced by NewBBox; zero-value BBoxes are degenerate and
// carry no area.
type BBox struct {
	X0, Y0, X1, Y1 float64
}

// NewBBox builds a BBox from two corners in any order, normalizing so
// X0<=X1 and Y0<=Y1.
func NewBBox(x0, y0, x1, y1 float64) BBox {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return BBox{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

func (b BBox) normalized() BBox {
	return NewBBox(b.X0, b.Y0, b.X1, b.Y1)
}

// Width returns X1-X0.
func (b BBox) Width() float64 { return b.X1 - b.X0 }

// Height returns Y1-Y0.
func (b BBox) Height() float64 { return b.Y1 - b.Y0 }

// Center returns the box's geometric center.
func (b BBox) Center() Point {
	return Point{X: (b.X0 + b.X1) / 2, Y: (b.Y0 + b.Y1) / 2}
}

// Contains reports whether the box encloses (x,y), edges inclusive.
func (b BBox) Contains(x, y float64) bool {
	return x >= b.X0 && x <= b.X1 && y >= b.Y0 && y <= b.Y1
}

// ContainsHalfOpen reports whether (x,y) is enclosed by the box using the
// half-open convention used for cell/word assignment: inclusive on the
// min edges, exclusive on the max edges.
func (b BBox) ContainsHalfOpen(x, y float64) bool {
	return x >= b.X0 && x < b.X1 && y >= b.Y0 && y < b.Y1
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (b BBox) finite() bool {
	return finite(b.X0) && finite(b.Y0) && finite(b.X1) && finite(b.Y1)
}

func unionBBox(a, b BBox) BBox {
	return BBox{
		X0: math.Min(a.X0, b.X0),
		Y0: math.Min(a.Y0, b.Y0),
		X1: math.Max(a.X1, b.X1),
		Y1: math.Max(a.Y1, b.Y1),
	}
}

func unionBBoxes(boxes []BBox) BBox {
	out := boxes[0]
	for _, b := range boxes[1:] {
		out = unionBBox(out, b)
	}
	return out
}

// Char is a single glyph placed on the page.
type Char struct {
	Rune     rune
	HasRune  bool // false for glyphs with no Unicode mapping (e.g. bullets in symbol fonts)
	BBox     BBox
	Rotation float64 // degrees, clockwise from upright
	Upright  bool
}

// LinePath is a sequence of connected points describing a stroked path.
// Straight is true when the path is a single two-point segment; curved
// or multi-segment paths never contribute edges.
type LinePath struct {
	Points   []Point
	Straight bool
}

// RectPrim is an axis-aligned rectangle primitive as drawn on the page,
// carrying both its stroke and fill paint state.
type RectPrim struct {
	BBox        BBox
	Stroke      Color
	StrokeWidth float64
	Fill        Color
}

// Orientation distinguishes horizontal from vertical edges.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// Edge is a normalized horizontal or vertical ruling. For a Horizontal
// edge Y0==Y1 is its constant coordinate and [X0,X1] its span; for a
// Vertical edge X0==X1 is constant and [Y0,Y1] its span.
type Edge struct {
	Orientation Orientation
	X0, Y0      float64
	X1, Y1      float64
	StrokeWidth float64
	Color       Color
	synthetic   bool // derived from text alignment (component D), not drawn ink
}

// Length returns the edge's span along its free axis.
func (e Edge) Length() float64 {
	if e.Orientation == Horizontal {
		return math.Abs(e.X1 - e.X0)
	}
	return math.Abs(e.Y1 - e.Y0)
}

// Intersection is a point where a horizontal and a vertical edge cross,
// within the configured intersection tolerance.
type Intersection struct {
	Point Point
}

// Word is a run of characters reconstructed from the page's glyphs.
type Word struct {
	Chars []Char
	BBox  BBox
	Text  string
}

// TableCell is a minimal rectangle bounded by edges on all four sides,
// optionally holding recovered text.
type TableCell struct {
	BBox BBox
	Text string
}

// CellGroupEntry is one slot of a CellGroup: either a cell at that row or
// column position, or an explicit gap when no cell occupies it.
type CellGroupEntry struct {
	Cell *TableCell
	Gap  bool
}

// CellGroup is one row or one column of a Table, with a slot for every
// position along the table's other axis.
type CellGroup struct {
	Cells []CellGroupEntry
	BBox  BBox
}

// Table is a fully assembled table: its cells plus their row and column
// groupings.
type Table struct {
	BBox          BBox
	Cells         []TableCell
	Rows          []CellGroup
	Columns       []CellGroup
	PageIndex     int
	TextExtracted bool
}
