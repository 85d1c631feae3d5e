package tables

import "sort"

// enumerateCells finds every minimal rectangle whose four corners are
// all real edge intersections and whose four sides are fully covered by
// edge ink (allowing gaps up to the snap tolerance already applied
// during normalization). Cells are returned in screen order: left to
// right, then top to bottom under the configured axis convention.
func enumerateCells(h, v []Edge, s TfSettings) []BBox {
	if len(h) == 0 || len(v) == 0 {
		return nil
	}

	hByY := map[float64][][2]float64{}
	var ys []float64
	for _, e := range h {
		if _, ok := hByY[e.Y0]; !ok {
			ys = append(ys, e.Y0)
		}
		hByY[e.Y0] = append(hByY[e.Y0], [2]float64{e.X0, e.X1})
	}
	vByX := map[float64][][2]float64{}
	var xs []float64
	for _, e := range v {
		if _, ok := vByX[e.X0]; !ok {
			xs = append(xs, e.X0)
		}
		vByX[e.X0] = append(vByX[e.X0], [2]float64{e.Y0, e.Y1})
	}
	sort.Float64s(ys)
	sort.Float64s(xs)

	hasH := func(x, y float64) bool {
		for _, hy := range ys {
			if abs(hy-y) > s.IntersectionYTolerance {
				continue
			}
			for _, seg := range hByY[hy] {
				if x >= seg[0]-s.IntersectionXTolerance && x <= seg[1]+s.IntersectionXTolerance {
					return true
				}
			}
		}
		return false
	}
	hasV := func(x, y float64) bool {
		for _, vx := range xs {
			if abs(vx-x) > s.IntersectionXTolerance {
				continue
			}
			for _, seg := range vByX[vx] {
				if y >= seg[0]-s.IntersectionYTolerance && y <= seg[1]+s.IntersectionYTolerance {
					return true
				}
			}
		}
		return false
	}
	intersects := func(x, y float64) bool { return hasH(x, y) && hasV(x, y) }

	var cells []BBox
	for xi := 0; xi+1 < len(xs); xi++ {
		x0, x1 := xs[xi], xs[xi+1]
		for yi := 0; yi+1 < len(ys); yi++ {
			y0, y1 := ys[yi], ys[yi+1]
			if !intersects(x0, y0) || !intersects(x0, y1) || !intersects(x1, y0) || !intersects(x1, y1) {
				continue
			}
			if !covers(hByY[y0], x0, x1, s.SnapXTolerance) || !covers(hByY[y1], x0, x1, s.SnapXTolerance) {
				continue
			}
			if !covers(vByX[x0], y0, y1, s.SnapYTolerance) || !covers(vByX[x1], y0, y1, s.SnapYTolerance) {
				continue
			}
			cells = append(cells, NewBBox(x0, y0, x1, y1))
		}
	}

	sort.Slice(cells, func(i, j int) bool {
		ti, tj := screenTop(cells[i]), screenTop(cells[j])
		if ti != tj {
			return ti < tj
		}
		return cells[i].X0 < cells[j].X0
	})
	return cells
}
