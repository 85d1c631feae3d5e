package tables

import "math"

// deriveEdges turns straight line segments and rectangles into raw
// horizontal/vertical edges, dispatching each axis independently on its
// own Strategy. An axis set to StrategyText contributes no drawn edges
// at all -- component D supplies synthesized ones for it instead.
func deriveEdges(lines []LinePath, rects []RectPrim, vStrategy, hStrategy Strategy, minLengthPrefilter float64) (h, v []Edge) {
	for _, l := range lines {
		if !l.Straight || len(l.Points) != 2 {
			continue // curves and multi-segment paths never contribute
		}
		p, q := l.Points[0], l.Points[1]
		switch {
		case math.Abs(p.Y-q.Y) <= epsAxis && hStrategy != StrategyText:
			y := (p.Y + q.Y) / 2
			h = append(h, Edge{Orientation: Horizontal, X0: math.Min(p.X, q.X), X1: math.Max(p.X, q.X), Y0: y, Y1: y})
		case math.Abs(p.X-q.X) <= epsAxis && vStrategy != StrategyText:
			x := (p.X + q.X) / 2
			v = append(v, Edge{Orientation: Vertical, Y0: math.Min(p.Y, q.Y), Y1: math.Max(p.Y, q.Y), X0: x, X1: x})
		}
		// diagonal segments classify as neither axis and are dropped.
	}

	for _, r := range rects {
		stroked := r.StrokeWidth > 0 && r.Stroke.Opaque()

		if hStrategy != StrategyText {
			if edge, ok := rectEdge(r, hStrategy, stroked, true, r.BBox.Y0); ok {
				h = append(h, edge)
			}
			if edge, ok := rectEdge(r, hStrategy, stroked, true, r.BBox.Y1); ok {
				h = append(h, edge)
			}
		}
		if vStrategy != StrategyText {
			if edge, ok := rectEdge(r, vStrategy, stroked, false, r.BBox.X0); ok {
				v = append(v, edge)
			}
			if edge, ok := rectEdge(r, vStrategy, stroked, false, r.BBox.X1); ok {
				v = append(v, edge)
			}
		}
	}

	h = filterMinLength(h, minLengthPrefilter)
	v = filterMinLength(v, minLengthPrefilter)
	return h, v
}

// rectEdge builds one side of a rect's bounding box as an Edge, if that
// side actually contributes under strategy. horizontal selects whether
// const is a Y (top/bottom side) or X (left/right side) coordinate.
func rectEdge(r RectPrim, strategy Strategy, stroked bool, horizontal bool, constCoord float64) (Edge, bool) {
	filled := strategy == StrategyLines && r.Fill.Opaque() && !stroked
	if !stroked && !filled {
		return Edge{}, false
	}
	color := r.Stroke
	if filled {
		color = r.Fill
	}
	if horizontal {
		return Edge{
			Orientation: Horizontal,
			X0:          r.BBox.X0, X1: r.BBox.X1,
			Y0: constCoord, Y1: constCoord,
			StrokeWidth: r.StrokeWidth, Color: color,
		}, true
	}
	return Edge{
		Orientation: Vertical,
		Y0:          r.BBox.Y0, Y1: r.BBox.Y1,
		X0: constCoord, X1: constCoord,
		StrokeWidth: r.StrokeWidth, Color: color,
	}, true
}

func filterMinLength(edges []Edge, minLen float64) []Edge {
	out := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if e.Length() >= minLen {
			out = append(out, e)
		}
	}
	return out
}
