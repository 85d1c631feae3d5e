package tables

import (
	"context"
	"testing"
)

// S1: a perfect 2x2 grid of ruling lines yields exactly one table with
// four cells, two rows and two columns.
func TestFindTables_PerfectGrid(t *testing.T) {
	page := newFakePage(100, 60)
	page.lines = grid2x2()

	settings := DefaultTfSettings()
	got, err := FindTables(ctxTODO(), page, settings, false, 0)
	if err != nil {
		t.Fatalf("FindTables: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 table, got %d", len(got))
	}
	tbl := got[0]
	if len(tbl.Cells) != 4 {
		t.Errorf("expected 4 cells, got %d", len(tbl.Cells))
	}
	if len(tbl.Rows) != 2 || len(tbl.Columns) != 2 {
		t.Errorf("expected 2x2 rows/columns, got %d rows %d columns", len(tbl.Rows), len(tbl.Columns))
	}
}

// S2: rulings with a small offset should still converge to a single grid
// once snap tolerance absorbs the jitter.
func TestFindTables_SnapConvergence(t *testing.T) {
	page := newFakePage(100, 60)
	page.lines = []LinePath{
		hline(0, 100, 0), hline(0, 100.2, 30.1), hline(0.1, 100, 60),
		vline(0, 60, 0), vline(0, 60.1, 50.2), vline(0, 60, 100),
	}

	settings := DefaultTfSettings()
	got, err := FindTables(ctxTODO(), page, settings, false, 0)
	if err != nil {
		t.Fatalf("FindTables: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 table after snapping, got %d", len(got))
	}
	if len(got[0].Cells) != 4 {
		t.Errorf("expected 4 cells after snapping, got %d", len(got[0].Cells))
	}
}

// edge_min_length_prefilter should drop short spurious rulings before
// they ever reach cell enumeration.
func TestFindTables_EdgeMinLengthPrefilter(t *testing.T) {
	t.Run("short scratch dropped from surviving edges", func(t *testing.T) {
		page := newFakePage(100, 60)
		lines := grid2x2()
		lines = append(lines, hline(10, 10.5, 45)) // a 0.5pt scratch mark
		page.lines = lines

		settings := DefaultTfSettings()
		settings.EdgeMinLengthPrefilter = 1
		h, _, err := GetEdges(ctxTODO(), page, settings)
		if err != nil {
			t.Fatalf("GetEdges: %v", err)
		}
		for _, e := range h {
			if e.Length() < 1 {
				t.Errorf("edge shorter than prefilter survived: length=%v", e.Length())
			}
		}
	})

	// S3: same grid as S1, but every V edge is only 2.0pt long and
	// edge_min_length_prefilter=3.0. The whole vertical axis collapses
	// to zero surviving edges, which must empty the table list rather
	// than falling back to the intact H axis.
	t.Run("axis collapse below prefilter yields empty table list", func(t *testing.T) {
		page := newFakePage(100, 60)
		page.lines = []LinePath{
			hline(0, 100, 0), hline(0, 100, 30), hline(0, 100, 60),
			vline(0, 2, 0), vline(0, 2, 50), vline(0, 2, 100),
		}

		settings := DefaultTfSettings()
		settings.EdgeMinLengthPrefilter = 3.0

		h, v, err := GetEdges(ctxTODO(), page, settings)
		if err != nil {
			t.Fatalf("GetEdges: %v", err)
		}
		if len(v) != 0 {
			t.Fatalf("expected all V edges to be dropped by the prefilter, got %d", len(v))
		}
		if len(h) == 0 {
			t.Fatalf("H edges should be untouched by the V-axis prefilter, got 0")
		}

		got, err := FindTables(ctxTODO(), page, settings, false, 0)
		if err != nil {
			t.Fatalf("FindTables: %v", err)
		}
		if len(got) != 0 {
			t.Fatalf("expected empty table list once the V axis collapses, got %d tables", len(got))
		}
	})
}

// S4: a borderless table laid out purely with aligned words is found
// when both axes use the text strategy.
func TestFindTables_TextStrategy(t *testing.T) {
	page := newFakePage(200, 100)
	page.chars = []Char{
		charAt('A', 10, 10, 18, 20), charAt('1', 60, 10, 68, 20),
		charAt('B', 10, 30, 18, 40), charAt('2', 60, 30, 68, 40),
		charAt('C', 10, 50, 18, 60), charAt('3', 60, 50, 68, 60),
	}

	settings := DefaultTfSettings()
	settings.VerticalStrategy = StrategyText
	settings.HorizontalStrategy = StrategyText
	settings.MinWordsVertical = 2
	settings.MinWordsHorizontal = 1

	got, err := FindTables(ctxTODO(), page, settings, false, 0)
	if err != nil {
		t.Fatalf("FindTables: %v", err)
	}
	if len(got) == 0 {
		t.Fatal("expected a table bounded by synthesized text edges")
	}
}

// S5: a word whose center sits exactly on a shared cell border belongs
// to exactly one cell (the half-open rule), never both or neither.
func TestAssignText_HalfOpenBorder(t *testing.T) {
	tables := []Table{{
		Cells: []TableCell{
			{BBox: NewBBox(0, 0, 50, 30)},
			{BBox: NewBBox(50, 0, 100, 30)},
		},
	}}
	words := []Word{
		{Text: "mid", BBox: NewBBox(49, 10, 51, 20)}, // center x=50, exactly on the shared border
	}

	out := assignText(tables, words, DefaultWordsExtractSettings())
	left, right := out[0].Cells[0].Text, out[0].Cells[1].Text
	if (left == "" && right == "") || (left != "" && right != "") {
		t.Fatalf("word on shared border must land in exactly one cell, got left=%q right=%q", left, right)
	}
	if right != "mid" {
		t.Errorf("half-open rule should assign a border-centered word to the cell starting at that coordinate, got left=%q right=%q", left, right)
	}
}

// min_rows discards tables that don't meet the row count.
func TestFindTables_MinRows(t *testing.T) {
	page := newFakePage(100, 60)
	page.lines = grid2x2()

	minRows := 3
	settings := DefaultTfSettings()
	settings.MinRows = &minRows

	got, err := FindTables(ctxTODO(), page, settings, false, 0)
	if err != nil {
		t.Fatalf("FindTables: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected the 2-row table to be filtered out by min_rows=3, got %d tables", len(got))
	}
}

func TestValidate_RejectsNegativeTolerance(t *testing.T) {
	s := DefaultTfSettings()
	s.SnapXTolerance = -1
	if err := s.Validate(); err == nil {
		t.Fatal("expected negative tolerance to be rejected")
	} else if tErr, ok := err.(*Error); !ok || tErr.Kind != InvalidSettings {
		t.Fatalf("expected InvalidSettings error, got %v", err)
	}
}

func TestFindTables_InvalidPageState(t *testing.T) {
	page := newFakePage(100, 60)
	page.valid = false

	_, err := FindTables(context.Background(), page, DefaultTfSettings(), false, 0)
	if err == nil {
		t.Fatal("expected error for invalid page state")
	}
	if tErr, ok := err.(*Error); !ok || tErr.Kind != InvalidPageState {
		t.Fatalf("expected InvalidPageState, got %v", err)
	}
}
