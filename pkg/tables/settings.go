package tables

// Strategy selects how edges for one axis are derived.
type Strategy string

const (
	// StrategyLines derives edges from drawn lines and rects, treating
	// filled-but-unstroked rects as contributing edges too.
	StrategyLines Strategy = "lines"
	// StrategyLinesStrict derives edges only from lines and stroked
	// rects; fill alone never contributes an edge.
	StrategyLinesStrict Strategy = "lines_strict"
	// StrategyText synthesizes edges from word alignment instead of
	// drawn ink, for borderless tables.
	StrategyText Strategy = "text"
)

func validStrategy(s Strategy) bool {
	return s == StrategyLines || s == StrategyLinesStrict || s == StrategyText
}

// WordsExtractSettings controls word reconstruction from characters (see
// ExtractWords) and, downstream, how assembled words are joined into
// cell text.
type WordsExtractSettings struct {
	XTolerance          float64
	YTolerance          float64
	KeepBlankChars      bool
	UseTextFlow         bool
	TextReadInClockwise bool
	// SplitAtPunctuation is "" (never split on punctuation), "all"
	// (split at any Unicode punctuation rune), or a string whose runes
	// are the specific split characters.
	SplitAtPunctuation string
	ExpandLigatures     bool
	NeedStrip           bool
}

// DefaultWordsExtractSettings returns the pipeline's default word
// reconstruction behavior.
func DefaultWordsExtractSettings() WordsExtractSettings {
	return WordsExtractSettings{
		XTolerance:          3,
		YTolerance:          3,
		KeepBlankChars:      false,
		UseTextFlow:         false,
		TextReadInClockwise: true,
		SplitAtPunctuation:  "",
		ExpandLigatures:     true,
		NeedStrip:           true,
	}
}

func (s WordsExtractSettings) validate() error {
	if s.XTolerance < 0 || s.YTolerance < 0 {
		return newError(InvalidSettings, "word x/y tolerance must be >= 0")
	}
	return nil
}

// TfSettings configures the table-finding pipeline end to end: edge
// derivation and axis strategy, edge normalization, cell enumeration and
// table assembly.
type TfSettings struct {
	VerticalStrategy   Strategy
	HorizontalStrategy Strategy

	SnapXTolerance, SnapYTolerance                float64
	JoinXTolerance, JoinYTolerance                 float64
	IntersectionXTolerance, IntersectionYTolerance float64

	EdgeMinLength          float64
	EdgeMinLengthPrefilter float64

	MinWordsVertical   int
	MinWordsHorizontal int

	IncludeSingleCell bool
	MinRows           *int
	MinColumns        *int

	// BottomOrigin selects the page's vertical axis convention: false
	// (the default) treats increasing Y as downward from the top of
	// the page; true treats increasing Y as upward from the bottom.
	// Ingestion (component A) applies this once, flipping every Char,
	// LinePath and RectPrim coordinate (y ↦ page_height − y) so every
	// later stage, and every BBox on the returned Tables, is in
	// top-origin screen space regardless of the source page's
	// convention. This changes the coordinate frame of all returned
	// geometry, not just presentation order.
	BottomOrigin bool

	Text WordsExtractSettings
}

// DefaultTfSettings returns the pipeline's default configuration: both
// axes use the strict lines strategy, all tolerances are 3pt, and no
// row/column minimums are enforced.
func DefaultTfSettings() TfSettings {
	return TfSettings{
		VerticalStrategy:       StrategyLinesStrict,
		HorizontalStrategy:     StrategyLinesStrict,
		SnapXTolerance:         3,
		SnapYTolerance:         3,
		JoinXTolerance:         3,
		JoinYTolerance:         3,
		IntersectionXTolerance: 3,
		IntersectionYTolerance: 3,
		EdgeMinLength:          3,
		EdgeMinLengthPrefilter: 1,
		MinWordsVertical:       3,
		MinWordsHorizontal:     1,
		IncludeSingleCell:      false,
		Text:                   DefaultWordsExtractSettings(),
	}
}

// Validate checks a TfSettings for the failure conditions the pipeline
// promises to reject before doing any work.
func (s TfSettings) Validate() error {
	neg := func(v float64) bool { return v < 0 }
	switch {
	case neg(s.SnapXTolerance), neg(s.SnapYTolerance),
		neg(s.JoinXTolerance), neg(s.JoinYTolerance),
		neg(s.IntersectionXTolerance), neg(s.IntersectionYTolerance),
		neg(s.EdgeMinLength), neg(s.EdgeMinLengthPrefilter):
		return newError(InvalidSettings, "tolerances and edge_min_length* must be >= 0")
	case s.MinWordsVertical < 0 || s.MinWordsHorizontal < 0:
		return newError(InvalidSettings, "min_words_vertical/horizontal must be >= 0")
	case s.MinRows != nil && *s.MinRows <= 0:
		return newError(InvalidSettings, "min_rows must be positive when set")
	case s.MinColumns != nil && *s.MinColumns <= 0:
		return newError(InvalidSettings, "min_columns must be positive when set")
	case !validStrategy(s.VerticalStrategy) || !validStrategy(s.HorizontalStrategy):
		return newError(InvalidSettings, "strategy must be one of lines, lines_strict, text")
	}
	return s.Text.validate()
}

// Option mutates a TfSettings under construction.
type Option func(*TfSettings)

// NewTfSettings builds a validated TfSettings starting from the
// defaults and applying opts in order.
func NewTfSettings(opts ...Option) (TfSettings, error) {
	s := DefaultTfSettings()
	for _, opt := range opts {
		opt(&s)
	}
	if err := s.Validate(); err != nil {
		return TfSettings{}, err
	}
	return s, nil
}

// WithVerticalStrategy sets the strategy used to derive vertical edges.
func WithVerticalStrategy(s Strategy) Option {
	return func(c *TfSettings) { c.VerticalStrategy = s }
}

// WithHorizontalStrategy sets the strategy used to derive horizontal edges.
func WithHorizontalStrategy(s Strategy) Option {
	return func(c *TfSettings) { c.HorizontalStrategy = s }
}

// WithStrategy sets both axis strategies at once.
func WithStrategy(vertical, horizontal Strategy) Option {
	return func(c *TfSettings) {
		c.VerticalStrategy = vertical
		c.HorizontalStrategy = horizontal
	}
}

// WithSnapTolerance sets the snap tolerance used when grouping
// near-collinear edges in normalization.
func WithSnapTolerance(x, y float64) Option {
	return func(c *TfSettings) { c.SnapXTolerance, c.SnapYTolerance = x, y }
}

// WithJoinTolerance sets the gap tolerance used when merging collinear
// edge segments into one.
func WithJoinTolerance(x, y float64) Option {
	return func(c *TfSettings) { c.JoinXTolerance, c.JoinYTolerance = x, y }
}

// WithIntersectionTolerance sets how close an edge endpoint must land to
// another edge's line to count as crossing it.
func WithIntersectionTolerance(x, y float64) Option {
	return func(c *TfSettings) { c.IntersectionXTolerance, c.IntersectionYTolerance = x, y }
}

// WithEdgeMinLength sets the minimum edge length kept after normalization.
func WithEdgeMinLength(v float64) Option {
	return func(c *TfSettings) { c.EdgeMinLength = v }
}

// WithEdgeMinLengthPrefilter sets the minimum edge length kept right
// after derivation, before normalization runs.
func WithEdgeMinLengthPrefilter(v float64) Option {
	return func(c *TfSettings) { c.EdgeMinLengthPrefilter = v }
}

// WithMinWords sets the minimum word-cluster size required for a
// synthesized text edge (component D) to be emitted.
func WithMinWords(vertical, horizontal int) Option {
	return func(c *TfSettings) { c.MinWordsVertical, c.MinWordsHorizontal = vertical, horizontal }
}

// WithIncludeSingleCell controls whether a single-cell connected
// component is kept as a one-cell Table.
func WithIncludeSingleCell(b bool) Option {
	return func(c *TfSettings) { c.IncludeSingleCell = b }
}

// WithMinRows discards tables with fewer rows than n.
func WithMinRows(n int) Option {
	return func(c *TfSettings) { c.MinRows = &n }
}

// WithMinColumns discards tables with fewer columns than n.
func WithMinColumns(n int) Option {
	return func(c *TfSettings) { c.MinColumns = &n }
}

// WithTextTolerance sets the x/y tolerance used for word reconstruction
// (for text-strategy edge synthesis and for cell text extraction). Cell
// text assignment itself does not read it.
func WithTextTolerance(x, y float64) Option {
	return func(c *TfSettings) { c.Text.XTolerance, c.Text.YTolerance = x, y }
}

// WithBottomOrigin sets the page's vertical axis convention.
func WithBottomOrigin(b bool) Option {
	return func(c *TfSettings) { c.BottomOrigin = b }
}
