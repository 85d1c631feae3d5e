package pdfplumber

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/pyhub-apps/pdftables-go/pkg/tables"
)

const samplePDF = "testdata/sample.pdf"

func TestTableExtraction(t *testing.T) {
	if _, err := os.Stat(samplePDF); err != nil {
		t.Skipf("skipping: %s not present", samplePDF)
	}

	doc, err := Open(samplePDF)
	if err != nil {
		t.Fatalf("Failed to open PDF: %v", err)
	}
	defer doc.Close()

	page, err := doc.GetPage(0)
	if err != nil {
		t.Fatalf("Failed to get page: %v", err)
	}

	found, err := page.ExtractTables(context.Background(), tables.DefaultTfSettings(), true)
	if err != nil {
		t.Fatalf("ExtractTables: %v", err)
	}

	t.Logf("Found %d tables", len(found))

	for i, tbl := range found {
		t.Logf("Table %d:", i+1)
		t.Logf("  Dimensions: %d rows x %d columns", len(tbl.Rows), len(tbl.Columns))
		t.Logf("  BBox: (%.2f, %.2f) to (%.2f, %.2f)",
			tbl.BBox.X0, tbl.BBox.Y0, tbl.BBox.X1, tbl.BBox.Y1)

		maxRows := 5
		if len(tbl.Rows) < maxRows {
			maxRows = len(tbl.Rows)
		}
		for j := 0; j < maxRows; j++ {
			t.Logf("  Row %d: %d cells", j+1, len(tbl.Rows[j].Cells))
		}
	}
}

func TestTableExtractionWithOptions(t *testing.T) {
	if _, err := os.Stat(samplePDF); err != nil {
		t.Skipf("skipping: %s not present", samplePDF)
	}

	doc, err := Open(samplePDF)
	if err != nil {
		t.Fatalf("Failed to open PDF: %v", err)
	}
	defer doc.Close()

	page, err := doc.GetPage(0)
	if err != nil {
		t.Fatalf("Failed to get page: %v", err)
	}

	testCases := []struct {
		name string
		opts []tables.Option
	}{
		{
			name: "Line-based detection",
			opts: []tables.Option{tables.WithStrategy(tables.StrategyLines, tables.StrategyLines)},
		},
		{
			name: "Text-based detection",
			opts: []tables.Option{tables.WithStrategy(tables.StrategyText, tables.StrategyText)},
		},
		{
			name: "Custom text tolerance",
			opts: []tables.Option{tables.WithTextTolerance(5.0, 5.0)},
		},
		{
			name: "Minimum row count",
			opts: []tables.Option{tables.WithMinRows(5)},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			settings, err := tables.NewTfSettings(tc.opts...)
			if err != nil {
				t.Fatalf("NewTfSettings: %v", err)
			}
			found, err := page.ExtractTables(context.Background(), settings, false)
			if err != nil {
				t.Fatalf("ExtractTables: %v", err)
			}
			t.Logf("Test %s: Found %d tables", tc.name, len(found))
			for i, tbl := range found {
				t.Logf("  Table %d: %d rows x %d columns", i+1, len(tbl.Rows), len(tbl.Columns))
			}
		})
	}
}

func TestTableExtractionAccuracy(t *testing.T) {
	if _, err := os.Stat(samplePDF); err != nil {
		t.Skipf("skipping: %s not present", samplePDF)
	}

	doc, err := Open(samplePDF)
	if err != nil {
		t.Fatalf("Failed to open PDF: %v", err)
	}
	defer doc.Close()

	page, err := doc.GetPage(0)
	if err != nil {
		t.Fatalf("Failed to get page: %v", err)
	}

	found, err := page.ExtractTables(context.Background(), tables.DefaultTfSettings(), true)
	if err != nil {
		t.Fatalf("ExtractTables: %v", err)
	}

	for i, tbl := range found {
		if len(tbl.Rows) == 0 {
			t.Errorf("Table %d has no rows", i+1)
			continue
		}

		if tbl.BBox.X1 <= tbl.BBox.X0 || tbl.BBox.Y1 <= tbl.BBox.Y0 {
			t.Errorf("Table %d has invalid bounding box: (%.2f, %.2f) to (%.2f, %.2f)",
				i+1, tbl.BBox.X0, tbl.BBox.Y0, tbl.BBox.X1, tbl.BBox.Y1)
		}
	}
}

func BenchmarkTableExtraction(b *testing.B) {
	if _, err := os.Stat(samplePDF); err != nil {
		b.Skipf("skipping: %s not present", samplePDF)
	}

	doc, err := Open(samplePDF)
	if err != nil {
		b.Fatalf("Failed to open PDF: %v", err)
	}
	defer doc.Close()

	page, err := doc.GetPage(0)
	if err != nil {
		b.Fatalf("Failed to get page: %v", err)
	}

	ctx := context.Background()
	settings := tables.DefaultTfSettings()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = page.ExtractTables(ctx, settings, false)
	}
}

func ExamplePage_ExtractTables() {
	doc, err := Open(samplePDF)
	if err != nil {
		fmt.Println("no sample pdf available")
		return
	}
	defer doc.Close()

	page, err := doc.GetPage(0)
	if err != nil {
		panic(err)
	}

	found, err := page.ExtractTables(context.Background(), tables.DefaultTfSettings(), true)
	if err != nil {
		panic(err)
	}

	for i, tbl := range found {
		fmt.Printf("Table %d has %d rows\n", i+1, len(tbl.Rows))
	}
}
