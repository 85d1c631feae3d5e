package tables

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var ligatureExpansions = map[rune]string{
	'ﬀ': "ff",
	'ﬁ': "fi",
	'ﬂ': "fl",
	'ﬃ': "ffi",
	'ﬄ': "ffl",
}

func expandLigature(r rune, enabled bool) string {
	if enabled {
		if s, ok := ligatureExpansions[r]; ok {
			return s
		}
	}
	return string(r)
}

// rotationClass buckets a char's rotation into one of the four cardinal
// orientations so words are never built by mixing glyphs that read in
// different directions.
func rotationClass(degrees float64) int {
	r := math.Mod(degrees, 360)
	if r < 0 {
		r += 360
	}
	switch {
	case r < 45 || r >= 315:
		return 0
	case r < 135:
		return 90
	case r < 225:
		return 180
	default:
		return 270
	}
}

type rotatedChar struct {
	c          Char
	x0, y0     float64
	x1, y1     float64
}

// canonicalFrame maps a char's BBox into the upright reading frame for
// its rotation class, so line/word grouping can compare coordinates the
// same way regardless of how the glyph is drawn on the page.
func canonicalFrame(b BBox, rotation int, clockwise bool) (x0, y0, x1, y1 float64) {
	switch rotation {
	case 180:
		return -b.X1, -b.Y1, -b.X0, -b.Y0
	case 90:
		if clockwise {
			return b.Y0, -b.X1, b.Y1, -b.X0
		}
		return -b.Y1, b.X0, -b.Y0, b.X1
	case 270:
		if clockwise {
			return -b.Y1, b.X0, -b.Y0, b.X1
		}
		return b.Y0, -b.X1, b.Y1, -b.X0
	default:
		return b.X0, b.Y0, b.X1, b.Y1
	}
}

func rotateChars(chars []Char, rotation int, clockwise bool) []rotatedChar {
	out := make([]rotatedChar, len(chars))
	for i, c := range chars {
		x0, y0, x1, y1 := canonicalFrame(c.BBox, rotation, clockwise)
		if x0 > x1 {
			x0, x1 = x1, x0
		}
		if y0 > y1 {
			y0, y1 = y1, y0
		}
		out[i] = rotatedChar{c: c, x0: x0, y0: y0, x1: x1, y1: y1}
	}
	return out
}

func (rc rotatedChar) lineBand() float64 { return (rc.y0 + rc.y1) / 2 }

// ExtractWords reconstructs words from a page's characters: it groups
// glyphs by rotation class, sorts each class into reading order (unless
// UseTextFlow keeps the source order), and splits runs into words at
// gaps wider than XTolerance/YTolerance or at punctuation boundaries.
func ExtractWords(chars []Char, settings WordsExtractSettings) []Word {
	if len(chars) == 0 {
		return nil
	}

	byClass := map[int][]Char{}
	var classes []int
	for _, c := range chars {
		rc := rotationClass(c.Rotation)
		if _, ok := byClass[rc]; !ok {
			classes = append(classes, rc)
		}
		byClass[rc] = append(byClass[rc], c)
	}
	sort.Ints(classes)

	var words []Word
	for _, rc := range classes {
		words = append(words, extractWordsForClass(byClass[rc], rc, settings)...)
	}
	return words
}

func extractWordsForClass(chars []Char, rotation int, s WordsExtractSettings) []Word {
	upright := rotateChars(chars, rotation, s.TextReadInClockwise)

	if !s.KeepBlankChars && !s.UseTextFlow {
		filtered := upright[:0:0]
		for _, rc := range upright {
			if rc.c.HasRune && unicode.IsSpace(rc.c.Rune) {
				continue
			}
			filtered = append(filtered, rc)
		}
		upright = filtered
	}
	if len(upright) == 0 {
		return nil
	}

	if !s.UseTextFlow {
		sort.SliceStable(upright, func(i, j int) bool {
			yi, yj := upright[i].lineBand(), upright[j].lineBand()
			if math.Abs(yi-yj) > s.YTolerance {
				return yi < yj
			}
			return upright[i].x0 < upright[j].x0
		})
	}

	splitSet, splitAll := punctuationSplitSet(s.SplitAtPunctuation)

	var words []Word
	var cur []rotatedChar
	flush := func() {
		if len(cur) == 0 {
			return
		}
		words = append(words, buildWord(cur, s))
		cur = nil
	}
	for i, rc := range upright {
		if i > 0 {
			prev := upright[i-1]
			yGap := math.Abs(rc.lineBand() - prev.lineBand())
			xGap := rc.x0 - prev.x1
			if yGap > s.YTolerance || xGap > s.XTolerance {
				flush()
			}
		}
		cur = append(cur, rc)
		if rc.c.HasRune && isSplitPunct(rc.c.Rune, splitSet, splitAll) {
			flush()
		}
	}
	flush()
	return words
}

func buildWord(group []rotatedChar, s WordsExtractSettings) Word {
	chars := make([]Char, len(group))
	var text strings.Builder
	bbox := group[0].c.BBox
	for i, rc := range group {
		chars[i] = rc.c
		bbox = unionBBox(bbox, rc.c.BBox)
		if rc.c.HasRune {
			text.WriteString(expandLigature(rc.c.Rune, s.ExpandLigatures))
		}
	}
	t := norm.NFC.String(text.String())
	if s.NeedStrip {
		t = strings.TrimSpace(t)
	}
	return Word{Chars: chars, BBox: bbox, Text: t}
}

func punctuationSplitSet(spec string) (set map[rune]bool, all bool) {
	switch spec {
	case "":
		return nil, false
	case "all":
		return nil, true
	default:
		set = make(map[rune]bool, len(spec))
		for _, r := range spec {
			set[r] = true
		}
		return set, false
	}
}

func isSplitPunct(r rune, set map[rune]bool, all bool) bool {
	if all {
		return unicode.IsPunct(r)
	}
	return set[r]
}
