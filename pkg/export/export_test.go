package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pyhub-apps/pdftables-go/pkg/tables"
)

func twoByTwoTable() tables.Table {
	cell := func(text string) tables.CellGroupEntry {
		return tables.CellGroupEntry{Cell: &tables.TableCell{Text: text}}
	}
	return tables.Table{
		Rows: []tables.CellGroup{
			{Cells: []tables.CellGroupEntry{cell("a"), cell("b")}},
			{Cells: []tables.CellGroupEntry{cell("c"), cell("d")}},
		},
	}
}

func TestToCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := ToCSV(&buf, twoByTwoTable()); err != nil {
		t.Fatalf("ToCSV: %v", err)
	}

	got := buf.String()
	want := "a,b\nc,d\n"
	if got != want {
		t.Errorf("ToCSV = %q, want %q", got, want)
	}
}

func TestToCSV_GapCellIsEmpty(t *testing.T) {
	tbl := tables.Table{
		Rows: []tables.CellGroup{
			{Cells: []tables.CellGroupEntry{
				{Cell: &tables.TableCell{Text: "x"}},
				{Gap: true},
			}},
		},
	}

	var buf bytes.Buffer
	if err := ToCSV(&buf, tbl); err != nil {
		t.Fatalf("ToCSV: %v", err)
	}
	if buf.String() != "x,\n" {
		t.Errorf("ToCSV = %q, want %q", buf.String(), "x,\n")
	}
}

func TestToMarkdown(t *testing.T) {
	md := ToMarkdown(twoByTwoTable())

	if !strings.Contains(md, "| a | b |") {
		t.Errorf("expected header row in output, got:\n%s", md)
	}
	if !strings.Contains(md, "| --- | --- |") {
		t.Errorf("expected separator row in output, got:\n%s", md)
	}
	if !strings.Contains(md, "| c | d |") {
		t.Errorf("expected data row in output, got:\n%s", md)
	}
}

func TestToMarkdown_Empty(t *testing.T) {
	if got := ToMarkdown(tables.Table{}); got != "" {
		t.Errorf("expected empty string for table with no rows, got %q", got)
	}
}

func TestToJSON(t *testing.T) {
	out, err := ToJSON([]tables.Table{twoByTwoTable()})
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	if !bytes.Contains(out, []byte(`"a"`)) {
		t.Errorf("expected encoded cell text in JSON output, got: %s", out)
	}
}
