package tables

import "context"

// fakePage is an in-memory PageSource used by the pipeline tests so they
// never need to parse an actual PDF.
type fakePage struct {
	width, height float64
	chars         []Char
	lines         []LinePath
	rects         []RectPrim
	valid         bool
}

func (p *fakePage) Width() float64     { return p.width }
func (p *fakePage) Height() float64    { return p.height }
func (p *fakePage) Chars() []Char      { return p.chars }
func (p *fakePage) Lines() []LinePath  { return p.lines }
func (p *fakePage) Rects() []RectPrim  { return p.rects }
func (p *fakePage) IsValid() bool      { return p.valid }

func newFakePage(width, height float64) *fakePage {
	return &fakePage{width: width, height: height, valid: true}
}

func hline(x0, x1, y float64) LinePath {
	return LinePath{Points: []Point{{X: x0, Y: y}, {X: x1, Y: y}}, Straight: true}
}

func vline(y0, y1, x float64) LinePath {
	return LinePath{Points: []Point{{X: x, Y: y0}, {X: x, Y: y1}}, Straight: true}
}

// grid2x2 builds the lines for a simple 2x2 table occupying [0,100]x[0,60]
// with a midline at x=50 and y=30, per invariant scenario S1.
func grid2x2() []LinePath {
	return []LinePath{
		hline(0, 100, 0), hline(0, 100, 30), hline(0, 100, 60),
		vline(0, 60, 0), vline(0, 60, 50), vline(0, 60, 100),
	}
}

func charAt(r rune, x0, y0, x1, y1 float64) Char {
	return Char{Rune: r, HasRune: true, BBox: NewBBox(x0, y0, x1, y1), Upright: true}
}

func ctxTODO() context.Context { return context.Background() }
