package tables

import "sort"

// assembleTables groups cells into connected components (two cells
// connect when they share a full edge within snap tolerance), derives
// each table's rows and columns, and applies the post-assembly filters.
func assembleTables(cells []BBox, s TfSettings, pageIndex int) []Table {
	if len(cells) == 0 {
		return nil
	}
	n := len(cells)
	adj := make([][]int, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if shareFullEdge(cells[i], cells[j], s.SnapXTolerance, s.SnapYTolerance) {
				adj[i] = append(adj[i], j)
				adj[j] = append(adj[j], i)
			}
		}
	}

	visited := make([]bool, n)
	var out []Table
	for i := 0; i < n; i++ {
		if visited[i] {
			continue
		}
		comp := bfsComponent(i, adj, visited)
		sort.Ints(comp)
		t := buildTable(cells, comp, s, pageIndex)
		if !keepTable(t, s) {
			continue
		}
		out = append(out, t)
	}

	sort.SliceStable(out, func(i, j int) bool {
		ti, tj := screenTop(out[i].BBox), screenTop(out[j].BBox)
		if ti != tj {
			return ti < tj
		}
		return out[i].BBox.X0 < out[j].BBox.X0
	})
	return out
}

// shareFullEdge reports whether a and b are adjacent along one axis and
// coincide (within tolerance) along the other -- the "full edge" two
// grid-aligned cells share, as opposed to a partial overlap.
func shareFullEdge(a, b BBox, tolX, tolY float64) bool {
	sameY := abs(a.Y0-b.Y0) <= tolY && abs(a.Y1-b.Y1) <= tolY
	sameX := abs(a.X0-b.X0) <= tolX && abs(a.X1-b.X1) <= tolX
	horizAdj := sameY && (abs(a.X1-b.X0) <= tolX || abs(b.X1-a.X0) <= tolX)
	vertAdj := sameX && (abs(a.Y1-b.Y0) <= tolY || abs(b.Y1-a.Y0) <= tolY)
	return horizAdj || vertAdj
}

func bfsComponent(start int, adj [][]int, visited []bool) []int {
	queue := []int{start}
	visited[start] = true
	var comp []int
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		comp = append(comp, cur)
		for _, nb := range adj[cur] {
			if !visited[nb] {
				visited[nb] = true
				queue = append(queue, nb)
			}
		}
	}
	return comp
}

// groupByAxis clusters cell indices into rows or columns: cells whose
// interval (as returned by getInterval) overlaps another group's union
// interval by at least overlapThreshold of the shorter of the two share
// that group. Iteration is in ascending order of interval center, which
// makes the result independent of the input slice's order.
func groupByAxis(indices []int, cells []BBox, getInterval func(BBox) (float64, float64), overlapThreshold float64) [][]int {
	type item struct {
		idx            int
		a, b, center float64
	}
	items := make([]item, len(indices))
	for k, idx := range indices {
		a, b := getInterval(cells[idx])
		items[k] = item{idx: idx, a: a, b: b, center: (a + b) / 2}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].center < items[j].center })

	type group struct {
		members  []item
		unionA, unionB float64
	}
	var groups []*group
	for _, it := range items {
		placed := false
		for _, g := range groups {
			shorter := min2(it.b-it.a, g.unionB-g.unionA)
			if shorter <= 0 {
				continue
			}
			if overlapLen(it.a, it.b, g.unionA, g.unionB)/shorter >= overlapThreshold {
				g.members = append(g.members, it)
				g.unionA = min2(g.unionA, it.a)
				g.unionB = max2(g.unionB, it.b)
				placed = true
				break
			}
		}
		if !placed {
			groups = append(groups, &group{members: []item{it}, unionA: it.a, unionB: it.b})
		}
	}

	out := make([][]int, len(groups))
	for gi, g := range groups {
		for _, it := range g.members {
			out[gi] = append(out[gi], it.idx)
		}
	}
	return out
}

func yInterval(b BBox) (float64, float64) { return b.Y0, b.Y1 }
func xInterval(b BBox) (float64, float64) { return b.X0, b.X1 }

const rowColumnOverlapThreshold = 0.5

func buildTable(cells []BBox, comp []int, s TfSettings, pageIndex int) Table {
	tableCells := make([]TableCell, len(comp))
	for i, ci := range comp {
		tableCells[i] = TableCell{BBox: cells[ci]}
	}
	// Local indices 0..len(comp)-1 mirror tableCells; groupByAxis works
	// on those local indices against a matching BBox slice.
	localBoxes := make([]BBox, len(comp))
	for i, ci := range comp {
		localBoxes[i] = cells[ci]
	}
	localIdx := make([]int, len(comp))
	for i := range comp {
		localIdx[i] = i
	}

	rowGroups := groupByAxis(localIdx, localBoxes, yInterval, rowColumnOverlapThreshold)
	colGroups := groupByAxis(localIdx, localBoxes, xInterval, rowColumnOverlapThreshold)

	sort.Slice(rowGroups, func(i, j int) bool {
		return screenTop(groupUnion(rowGroups[i], localBoxes)) <
			screenTop(groupUnion(rowGroups[j], localBoxes))
	})
	sort.Slice(colGroups, func(i, j int) bool {
		return groupUnion(colGroups[i], localBoxes).X0 < groupUnion(colGroups[j], localBoxes).X0
	})

	rowOf := make([]int, len(comp))
	for ri, g := range rowGroups {
		for _, li := range g {
			rowOf[li] = ri
		}
	}
	colOf := make([]int, len(comp))
	for ci, g := range colGroups {
		for _, li := range g {
			colOf[li] = ci
		}
	}

	rows := make([]CellGroup, len(rowGroups))
	for ri, g := range rowGroups {
		entries := make([]CellGroupEntry, len(colGroups))
		for i := range entries {
			entries[i] = CellGroupEntry{Gap: true}
		}
		var boxes []BBox
		for _, li := range g {
			ci := colOf[li]
			entries[ci] = CellGroupEntry{Cell: &tableCells[li]}
			boxes = append(boxes, tableCells[li].BBox)
		}
		rows[ri] = CellGroup{Cells: entries, BBox: unionBBoxes(boxes)}
	}

	columns := make([]CellGroup, len(colGroups))
	for ci, g := range colGroups {
		entries := make([]CellGroupEntry, len(rowGroups))
		for i := range entries {
			entries[i] = CellGroupEntry{Gap: true}
		}
		var boxes []BBox
		for _, li := range g {
			ri := rowOf[li]
			entries[ri] = CellGroupEntry{Cell: &tableCells[li]}
			boxes = append(boxes, tableCells[li].BBox)
		}
		columns[ci] = CellGroup{Cells: entries, BBox: unionBBoxes(boxes)}
	}

	boxes := make([]BBox, len(tableCells))
	for i, c := range tableCells {
		boxes[i] = c.BBox
	}

	return Table{
		BBox:      unionBBoxes(boxes),
		Cells:     tableCells,
		Rows:      rows,
		Columns:   columns,
		PageIndex: pageIndex,
	}
}

func groupUnion(group []int, boxes []BBox) BBox {
	b := boxes[group[0]]
	for _, i := range group[1:] {
		b = unionBBox(b, boxes[i])
	}
	return b
}

func keepTable(t Table, s TfSettings) bool {
	if len(t.Cells) == 1 && !s.IncludeSingleCell {
		return false
	}
	if s.MinRows != nil && len(t.Rows) < *s.MinRows {
		return false
	}
	if s.MinColumns != nil && len(t.Columns) < *s.MinColumns {
		return false
	}
	return true
}
