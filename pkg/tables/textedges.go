package tables

// synthesizeTextEdges builds pseudo edges from word alignment for
// whichever axis uses StrategyText. Words are clustered three ways per
// axis -- by start, end and center -- since any of the three alignments
// can mark a column or row boundary a human reader would recognize; a
// cluster only becomes an edge once it reaches the configured minimum
// membership, and near-duplicate edges produced by overlapping measures
// are collapsed by the same tolerance used to find them.
func synthesizeTextEdges(words []Word, vStrategy, hStrategy Strategy, snapX, snapY float64, minWordsV, minWordsH int) (h, v []Edge) {
	if vStrategy == StrategyText {
		v = clusterVertical(words, snapX, minWordsV)
	}
	if hStrategy == StrategyText {
		h = clusterHorizontal(words, snapY, minWordsH)
	}
	return h, v
}

func clusterVertical(words []Word, tol float64, minCount int) []Edge {
	starts := make([]float64, len(words))
	ends := make([]float64, len(words))
	centers := make([]float64, len(words))
	for i, w := range words {
		starts[i] = w.BBox.X0
		ends[i] = w.BBox.X1
		centers[i] = (w.BBox.X0 + w.BBox.X1) / 2
	}

	var edges []Edge
	for _, measure := range [][]float64{starts, ends, centers} {
		for _, group := range chainGroup(measure, tol) {
			if len(group) < minCount {
				continue
			}
			x := mean(measure, group)
			yMin, yMax := wordYSpan(words, group)
			edges = append(edges, Edge{Orientation: Vertical, X0: x, X1: x, Y0: yMin, Y1: yMax, synthetic: true})
		}
	}
	return dedupeByCoord(edges, tol, false)
}

func clusterHorizontal(words []Word, tol float64, minCount int) []Edge {
	tops := make([]float64, len(words))
	bottoms := make([]float64, len(words))
	baselines := make([]float64, len(words))
	for i, w := range words {
		tops[i] = w.BBox.Y0
		bottoms[i] = w.BBox.Y1
		baselines[i] = (w.BBox.Y0 + w.BBox.Y1) / 2
	}

	var edges []Edge
	for _, measure := range [][]float64{tops, bottoms, baselines} {
		for _, group := range chainGroup(measure, tol) {
			if len(group) < minCount {
				continue
			}
			y := mean(measure, group)
			xMin, xMax := wordXSpan(words, group)
			edges = append(edges, Edge{Orientation: Horizontal, Y0: y, Y1: y, X0: xMin, X1: xMax, synthetic: true})
		}
	}
	return dedupeByCoord(edges, tol, true)
}

func wordYSpan(words []Word, idx []int) (min, max float64) {
	min, max = words[idx[0]].BBox.Y0, words[idx[0]].BBox.Y1
	for _, i := range idx[1:] {
		if words[i].BBox.Y0 < min {
			min = words[i].BBox.Y0
		}
		if words[i].BBox.Y1 > max {
			max = words[i].BBox.Y1
		}
	}
	return min, max
}

func wordXSpan(words []Word, idx []int) (min, max float64) {
	min, max = words[idx[0]].BBox.X0, words[idx[0]].BBox.X1
	for _, i := range idx[1:] {
		if words[i].BBox.X0 < min {
			min = words[i].BBox.X0
		}
		if words[i].BBox.X1 > max {
			max = words[i].BBox.X1
		}
	}
	return min, max
}

// dedupeByCoord collapses edges produced by different clustering
// measures that landed on (nearly) the same constant coordinate,
// keeping the widest span and merging membership implicitly.
func dedupeByCoord(edges []Edge, tol float64, horizontal bool) []Edge {
	if len(edges) == 0 {
		return nil
	}
	coords := make([]float64, len(edges))
	for i, e := range edges {
		if horizontal {
			coords[i] = e.Y0
		} else {
			coords[i] = e.X0
		}
	}
	var out []Edge
	for _, group := range chainGroup(coords, tol) {
		merged := edges[group[0]]
		for _, i := range group[1:] {
			e := edges[i]
			if horizontal {
				merged.X0 = min2(merged.X0, e.X0)
				merged.X1 = max2(merged.X1, e.X1)
			} else {
				merged.Y0 = min2(merged.Y0, e.Y0)
				merged.Y1 = max2(merged.Y1, e.Y1)
			}
		}
		c := mean(coords, group)
		if horizontal {
			merged.Y0, merged.Y1 = c, c
		} else {
			merged.X0, merged.X1 = c, c
		}
		out = append(out, merged)
	}
	return out
}

func min2(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max2(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
