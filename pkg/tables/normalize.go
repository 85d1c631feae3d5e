package tables

import "sort"

// normalizeEdges snaps near-collinear edges onto a shared coordinate,
// joins collinear segments separated by a small gap into one, and drops
// anything still short of EdgeMinLength afterward.
func normalizeEdges(hRaw, vRaw []Edge, s TfSettings) (h, v []Edge) {
	h = snapAxis(hRaw, s.SnapYTolerance, true)
	v = snapAxis(vRaw, s.SnapXTolerance, false)

	h = joinAxis(h, s.JoinXTolerance, true)
	v = joinAxis(v, s.JoinYTolerance, false)

	h = filterMinLength(h, s.EdgeMinLength)
	v = filterMinLength(v, s.EdgeMinLength)
	return h, v
}

// snapAxis groups edges whose constant coordinate lies within tol of
// each other and replaces it with the group's mean. Groups whose means
// end up within tol of one another (a side effect of chained grouping)
// are merged again, with the lower-coordinate group absorbing the
// higher one so the result is independent of input order.
func snapAxis(edges []Edge, tol float64, horizontal bool) []Edge {
	if len(edges) == 0 {
		return edges
	}
	coords := make([]float64, len(edges))
	for i, e := range edges {
		if horizontal {
			coords[i] = e.Y0
		} else {
			coords[i] = e.X0
		}
	}
	groups := chainGroup(coords, tol)
	means := make([]float64, len(groups))
	for i, g := range groups {
		means[i] = mean(coords, g)
	}

	mergedGroups := [][]int{append([]int{}, groups[0]...)}
	mergedMeans := []float64{means[0]}
	for i := 1; i < len(groups); i++ {
		if means[i]-mergedMeans[len(mergedMeans)-1] <= tol {
			mergedGroups[len(mergedGroups)-1] = append(mergedGroups[len(mergedGroups)-1], groups[i]...)
			mergedMeans[len(mergedMeans)-1] = mean(coords, mergedGroups[len(mergedGroups)-1])
		} else {
			mergedGroups = append(mergedGroups, append([]int{}, groups[i]...))
			mergedMeans = append(mergedMeans, means[i])
		}
	}

	out := make([]Edge, len(edges))
	copy(out, edges)
	for gi, g := range mergedGroups {
		c := mergedMeans[gi]
		for _, i := range g {
			if horizontal {
				out[i].Y0, out[i].Y1 = c, c
			} else {
				out[i].X0, out[i].X1 = c, c
			}
		}
	}
	return out
}

// joinAxis merges collinear edge segments separated by a gap <= tol.
// The joined edge spans the union of its contributors, keeps the widest
// stroke width seen, and inherits the color of the first contributor in
// sorted order.
func joinAxis(edges []Edge, tol float64, horizontal bool) []Edge {
	if len(edges) == 0 {
		return edges
	}

	type group struct {
		coord float64
		edges []Edge
	}
	byCoord := map[float64]*group{}
	var order []float64
	for _, e := range edges {
		c := e.Y0
		if !horizontal {
			c = e.X0
		}
		g, ok := byCoord[c]
		if !ok {
			g = &group{coord: c}
			byCoord[c] = g
			order = append(order, c)
		}
		g.edges = append(g.edges, e)
	}
	sort.Float64s(order)

	var out []Edge
	for _, c := range order {
		g := byCoord[c].edges
		sort.Slice(g, func(i, j int) bool {
			if horizontal {
				return g[i].X0 < g[j].X0
			}
			return g[i].Y0 < g[j].Y0
		})
		cur := g[0]
		for _, e := range g[1:] {
			var gap float64
			if horizontal {
				gap = e.X0 - cur.X1
			} else {
				gap = e.Y0 - cur.Y1
			}
			if gap <= tol {
				if horizontal {
					cur.X1 = max2(cur.X1, e.X1)
				} else {
					cur.Y1 = max2(cur.Y1, e.Y1)
				}
				if e.StrokeWidth > cur.StrokeWidth {
					cur.StrokeWidth = e.StrokeWidth
				}
			} else {
				out = append(out, cur)
				cur = e
			}
		}
		out = append(out, cur)
	}
	return out
}
