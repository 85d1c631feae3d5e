package tables

import (
	"math"
	"sort"
)

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// screenTop returns a Y coordinate that increases going down the screen.
// By the time any caller reaches this function, ingestPage has already
// normalized the page's axis convention (component A flips bottom-origin
// geometry to top-origin once and for all), so a plain ascending Y0
// comparison is always "top to bottom" here -- there is no remaining
// bottomOrigin case to special-case.
func screenTop(b BBox) float64 {
	return b.Y0
}

// chainGroup sorts values ascending and groups consecutive values whose
// gap from the previous value in the group is <= tol. It is the same
// gap-threshold grouping the teacher's line consolidation uses, applied
// generically.
func chainGroup(values []float64, tol float64) [][]int {
	if len(values) == 0 {
		return nil
	}
	idx := make([]int, len(values))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool { return values[idx[i]] < values[idx[j]] })

	var groups [][]int
	cur := []int{idx[0]}
	for _, i := range idx[1:] {
		if values[i]-values[cur[len(cur)-1]] <= tol {
			cur = append(cur, i)
		} else {
			groups = append(groups, cur)
			cur = []int{i}
		}
	}
	groups = append(groups, cur)
	return groups
}

func mean(values []float64, idx []int) float64 {
	var sum float64
	for _, i := range idx {
		sum += values[i]
	}
	return sum / float64(len(idx))
}

// mergeIntervals merges a set of [a,b] intervals whose gap is <= tol,
// sorted by start.
func mergeIntervals(intervals [][2]float64, tol float64) [][2]float64 {
	if len(intervals) == 0 {
		return nil
	}
	cp := make([][2]float64, len(intervals))
	copy(cp, intervals)
	sort.Slice(cp, func(i, j int) bool { return cp[i][0] < cp[j][0] })

	out := [][2]float64{cp[0]}
	for _, iv := range cp[1:] {
		last := &out[len(out)-1]
		if iv[0]-last[1] <= tol {
			if iv[1] > last[1] {
				last[1] = iv[1]
			}
		} else {
			out = append(out, iv)
		}
	}
	return out
}

// covers reports whether the union of intervals (merged across gaps <=
// tol) fully spans [a,b], within tol at each end.
func covers(intervals [][2]float64, a, b, tol float64) bool {
	if a > b {
		a, b = b, a
	}
	for _, iv := range mergeIntervals(intervals, tol) {
		if iv[0] <= a+tol && iv[1] >= b-tol {
			return true
		}
	}
	return false
}

func overlapLen(a0, a1, b0, b1 float64) float64 {
	lo := math.Max(a0, b0)
	hi := math.Min(a1, b1)
	if hi <= lo {
		return 0
	}
	return hi - lo
}
