package tables

import (
	"math"
	"sort"
	"strings"
)

// wordLineBandTolerance buckets words into reading-order lines within a
// cell; it matches the default text tolerance since cell contents are
// rarely set with custom spacing.
const wordLineBandTolerance = 3.0

// assignText fills each table cell's Text by selecting every word whose
// center lies inside the cell (inclusive on the min edges, exclusive on
// the max edges, so a word centered exactly on a shared border belongs
// to only one cell), then joining them in reading order.
func assignText(tables []Table, words []Word, ts WordsExtractSettings) []Table {
	for ti := range tables {
		t := &tables[ti]
		for ci := range t.Cells {
			cell := &t.Cells[ci]
			var inCell []Word
			for _, w := range words {
				cx, cy := w.BBox.Center().X, w.BBox.Center().Y
				if cell.BBox.ContainsHalfOpen(cx, cy) {
					inCell = append(inCell, w)
				}
			}
			sortWordsReadingOrder(inCell)
			var sb strings.Builder
			for i, w := range inCell {
				if i > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(w.Text)
			}
			text := sb.String()
			if ts.NeedStrip {
				text = strings.TrimSpace(text)
			}
			cell.Text = text
		}
		t.TextExtracted = true
	}
	return tables
}

func sortWordsReadingOrder(words []Word) {
	sort.SliceStable(words, func(i, j int) bool {
		yi := screenTop(words[i].BBox)
		yj := screenTop(words[j].BBox)
		if math.Abs(yi-yj) > wordLineBandTolerance {
			return yi < yj
		}
		return words[i].BBox.X0 < words[j].BBox.X0
	})
}
