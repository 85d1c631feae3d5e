// Package export renders tables.Table values into external formats.
// It deliberately sits outside pkg/tables: the core's result objects are
// plain values, and serialization is a formatting concern for consumers,
// not part of the table-finding pipeline itself.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/pyhub-apps/pdftables-go/pkg/tables"
)

// ToCSV writes a single table's rows to w in CSV form. Gap cells and
// cells with no recovered text are written as empty fields.
func ToCSV(w io.Writer, t tables.Table) error {
	cw := csv.NewWriter(w)
	for _, row := range t.Rows {
		record := make([]string, len(row.Cells))
		for i, entry := range row.Cells {
			record[i] = cellText(entry)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ToMarkdown renders a single table as a GitHub-flavored Markdown table.
// The first row is treated as the header.
func ToMarkdown(t tables.Table) string {
	if len(t.Rows) == 0 {
		return ""
	}

	var b strings.Builder
	writeRow := func(row tables.CellGroup) {
		b.WriteString("|")
		for _, entry := range row.Cells {
			b.WriteString(" ")
			b.WriteString(strings.ReplaceAll(cellText(entry), "|", "\\|"))
			b.WriteString(" |")
		}
		b.WriteString("\n")
	}

	writeRow(t.Rows[0])
	b.WriteString("|")
	for range t.Rows[0].Cells {
		b.WriteString(" --- |")
	}
	b.WriteString("\n")
	for _, row := range t.Rows[1:] {
		writeRow(row)
	}
	return b.String()
}

// ToJSON marshals a set of tables using sonic's standard-compatible
// codec, matching encoding/json's field tags with a faster encoder.
func ToJSON(found []tables.Table) ([]byte, error) {
	return sonic.ConfigStd.Marshal(found)
}

func cellText(entry tables.CellGroupEntry) string {
	if entry.Gap || entry.Cell == nil {
		return ""
	}
	return entry.Cell.Text
}
