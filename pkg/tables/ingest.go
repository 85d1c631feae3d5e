package tables

// epsAxis is the slack allowed when classifying a line segment as
// horizontal or vertical: the off-axis coordinates may differ by up to
// this much and the segment is still treated as a ruling.
const epsAxis = 0.01

type ingested struct {
	chars []Char
	lines []LinePath
	rects []RectPrim
}

// ingestPage normalizes BBoxes, drops degenerate entities (NaN/Inf
// coordinates, zero-length/zero-area geometry) and, if bottomOrigin is
// set, flips every Y coordinate so downstream stages can treat the page
// as top-origin uniformly.
func ingestPage(src PageSource, bottomOrigin bool) ingested {
	h := src.Height()
	return ingested{
		chars: ingestChars(src.Chars(), h, bottomOrigin),
		lines: ingestLines(src.Lines(), h, bottomOrigin),
		rects: ingestRects(src.Rects(), h, bottomOrigin),
	}
}

func flipY(b BBox, height float64) BBox {
	return NewBBox(b.X0, height-b.Y1, b.X1, height-b.Y0)
}

func flipPoints(pts []Point, height float64) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = Point{X: p.X, Y: height - p.Y}
	}
	return out
}

func ingestChars(raw []Char, pageHeight float64, bottomOrigin bool) []Char {
	out := make([]Char, 0, len(raw))
	for _, c := range raw {
		b := c.BBox.normalized()
		if !b.finite() || b.Width() <= 0 || b.Height() <= 0 {
			continue
		}
		if bottomOrigin {
			b = flipY(b, pageHeight)
		}
		c.BBox = b
		out = append(out, c)
	}
	return out
}

func ingestLines(raw []LinePath, pageHeight float64, bottomOrigin bool) []LinePath {
	out := make([]LinePath, 0, len(raw))
	for _, l := range raw {
		if len(l.Points) < 2 || !pointsFinite(l.Points) {
			continue
		}
		pts := l.Points
		if bottomOrigin {
			pts = flipPoints(pts, pageHeight)
		}
		if l.Straight && len(pts) == 2 && pts[0] == pts[1] {
			continue // zero-length segment contributes nothing
		}
		out = append(out, LinePath{Points: pts, Straight: l.Straight})
	}
	return out
}

func ingestRects(raw []RectPrim, pageHeight float64, bottomOrigin bool) []RectPrim {
	out := make([]RectPrim, 0, len(raw))
	for _, r := range raw {
		b := r.BBox.normalized()
		if !b.finite() || b.Width() <= 0 || b.Height() <= 0 {
			continue
		}
		if bottomOrigin {
			b = flipY(b, pageHeight)
		}
		r.BBox = b
		out = append(out, r)
	}
	return out
}

func pointsFinite(pts []Point) bool {
	for _, p := range pts {
		if !finite(p.X) || !finite(p.Y) {
			return false
		}
	}
	return true
}
