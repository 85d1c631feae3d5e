package tables

import "testing"

func TestExtractWords_SimpleLine(t *testing.T) {
	chars := []Char{
		charAt('H', 0, 0, 8, 10),
		charAt('i', 8, 0, 12, 10),
		charAt(' ', 12, 0, 16, 10),
		charAt('y', 20, 0, 28, 10),
		charAt('o', 28, 0, 36, 10),
		charAt('u', 36, 0, 44, 10),
	}
	words := ExtractWords(chars, DefaultWordsExtractSettings())
	if len(words) != 2 {
		t.Fatalf("expected 2 words, got %d: %+v", len(words), words)
	}
	if words[0].Text != "Hi" || words[1].Text != "you" {
		t.Errorf("unexpected words: %q %q", words[0].Text, words[1].Text)
	}
}

func TestExtractWords_LigatureExpansion(t *testing.T) {
	chars := []Char{
		charAt('ﬁ', 0, 0, 8, 10),
		charAt('l', 8, 0, 12, 10),
		charAt('e', 12, 0, 20, 10),
	}
	words := ExtractWords(chars, DefaultWordsExtractSettings())
	if len(words) != 1 || words[0].Text != "file" {
		t.Fatalf("expected ligature to expand to 'file', got %+v", words)
	}
}

func TestExtractWords_SplitsOnLargeGap(t *testing.T) {
	chars := []Char{
		charAt('a', 0, 0, 8, 10),
		charAt('b', 8, 0, 16, 10),
		charAt('c', 50, 0, 58, 10), // far beyond default XTolerance of 3
	}
	words := ExtractWords(chars, DefaultWordsExtractSettings())
	if len(words) != 2 {
		t.Fatalf("expected a split across the large gap, got %d words: %+v", len(words), words)
	}
}

func TestExtractWords_SplitAtPunctuation(t *testing.T) {
	chars := []Char{
		charAt('a', 0, 0, 8, 10),
		charAt(',', 8, 0, 10, 10),
		charAt('b', 10, 0, 18, 10),
	}
	s := DefaultWordsExtractSettings()
	s.SplitAtPunctuation = ","
	words := ExtractWords(chars, s)
	if len(words) != 2 {
		t.Fatalf("expected punctuation split into 2 words, got %d: %+v", len(words), words)
	}
}

func TestExtractWords_RotatedTextGroupsSeparately(t *testing.T) {
	upright := charAt('A', 0, 0, 8, 10)
	rotated := charAt('B', 0, 0, 8, 10)
	rotated.Rotation = 90
	words := ExtractWords([]Char{upright, rotated}, DefaultWordsExtractSettings())
	if len(words) != 2 {
		t.Fatalf("expected chars at different rotations to never share a word, got %d: %+v", len(words), words)
	}
}
