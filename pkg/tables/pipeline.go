package tables

import "context"

func checkPage(page PageSource) error {
	if page == nil {
		return newError(MissingPage, "page is nil")
	}
	if !page.IsValid() {
		return newError(InvalidPageState, "page is not in a readable state")
	}
	return nil
}

func checkContext(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return wrapError(Cancelled, ctx.Err(), "cancelled")
	default:
		return nil
	}
}

// GetEdges runs ingestion, edge derivation and normalization (but not
// text-edge synthesis) and returns the page's horizontal and vertical
// rulings. FindAllCellsBBoxes and FindTables run the same stages plus
// text-edge synthesis; GetEdges is exposed directly for callers that just
// want the drawn grid.
func GetEdges(ctx context.Context, page PageSource, settings TfSettings) (horizontal, vertical []Edge, err error) {
	return pageEdges(ctx, page, settings, false)
}

// pageEdges runs the GetEdges stages and, when synthesizeText is true,
// adds text-synthesized edges (component D) for any axis using
// StrategyText before normalization.
func pageEdges(ctx context.Context, page PageSource, settings TfSettings, synthesizeText bool) (horizontal, vertical []Edge, err error) {
	if err := settings.Validate(); err != nil {
		return nil, nil, err
	}
	if err := checkPage(page); err != nil {
		return nil, nil, err
	}
	if err := checkContext(ctx); err != nil {
		return nil, nil, err
	}

	prim := ingestPage(page, settings.BottomOrigin)

	if err := checkContext(ctx); err != nil {
		return nil, nil, err
	}
	hRaw, vRaw := deriveEdges(prim.lines, prim.rects, settings.VerticalStrategy, settings.HorizontalStrategy, settings.EdgeMinLengthPrefilter)

	if synthesizeText && (settings.VerticalStrategy == StrategyText || settings.HorizontalStrategy == StrategyText) {
		if err := checkContext(ctx); err != nil {
			return nil, nil, err
		}
		words := ExtractWords(prim.chars, settings.Text)
		hText, vText := synthesizeTextEdges(words, settings.VerticalStrategy, settings.HorizontalStrategy,
			settings.SnapXTolerance, settings.SnapYTolerance, settings.MinWordsVertical, settings.MinWordsHorizontal)
		hRaw = append(hRaw, hText...)
		vRaw = append(vRaw, vText...)
	}

	if err := checkContext(ctx); err != nil {
		return nil, nil, err
	}
	h, v := normalizeEdges(hRaw, vRaw, settings)
	return h, v, nil
}

// FindAllCellsBBoxes runs the GetEdges stages plus text-edge synthesis and
// then enumerates every minimal cell rectangle the resulting grid defines,
// in screen order.
func FindAllCellsBBoxes(ctx context.Context, page PageSource, settings TfSettings) ([]BBox, error) {
	h, v, err := pageEdges(ctx, page, settings, true)
	if err != nil {
		return nil, err
	}
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	return enumerateCells(h, v, settings), nil
}

// FindTablesFromCells assembles already-enumerated cells into Tables,
// applying the post-assembly filters (include_single_cell, min_rows,
// min_columns), then, unless extractText is false, runs word
// reconstruction (component C) and text assignment (component H) against
// page to fill in each cell's text. extractText requires a non-nil page
// and reports MissingPage if none is given; pageIndex is stamped onto
// every resulting Table regardless of extractText.
func FindTablesFromCells(ctx context.Context, cells []BBox, settings TfSettings, extractText bool, page PageSource, pageIndex int) ([]Table, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	if extractText && page == nil {
		return nil, newError(MissingPage, "page is required when extractText is true")
	}

	tables := assembleTables(cells, settings, pageIndex)
	if !extractText || len(tables) == 0 {
		return tables, nil
	}

	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	prim := ingestPage(page, settings.BottomOrigin)
	words := ExtractWords(prim.chars, settings.Text)
	return assignText(tables, words, settings.Text), nil
}

// FindTables runs the full pipeline: edge derivation, cell enumeration,
// table assembly and, unless extractText is false, text assignment into
// each cell.
func FindTables(ctx context.Context, page PageSource, settings TfSettings, extractText bool, pageIndex int) ([]Table, error) {
	cells, err := FindAllCellsBBoxes(ctx, page, settings)
	if err != nil {
		return nil, err
	}
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	return FindTablesFromCells(ctx, cells, settings, extractText, page, pageIndex)
}
