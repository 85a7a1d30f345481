// Package highlight segments display strings into matched and unmatched
// spans against a search term, ignoring case and diacritics.
package highlight

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Span is a slice of the original string. Concatenating the Text of all
// spans returned for an input reconstructs it exactly.
type Span struct {
	Text    string `json:"text"`
	Matched bool   `json:"matched"`
}

// Highlight splits text into spans marking every non-overlapping,
// case- and diacritic-insensitive occurrence of needle. An empty needle
// or no occurrence yields the whole text as a single unmatched span.
//
// Matching works on rune offsets taken from the normalized string and
// sliced out of the original. That mapping holds for precomposed Latin
// text, where stripping combining marks preserves the rune count; when
// normalization changes the count, matching degrades to case-insensitive
// only.
func Highlight(text, needle string) []Span {
	normNeedle := normalize(needle)
	if normNeedle == "" {
		return []Span{{Text: text}}
	}

	orig := []rune(text)
	normText := []rune(normalize(text))
	needleRunes := []rune(normNeedle)

	if len(normText) != len(orig) {
		normText = []rune(strings.ToLower(text))
		needleRunes = []rune(strings.ToLower(needle))
		if len(normText) != len(orig) {
			return []Span{{Text: text}}
		}
	}

	var spans []Span
	pos := 0
	for {
		idx := indexRunes(normText[pos:], needleRunes)
		if idx < 0 {
			break
		}
		start := pos + idx
		end := start + len(needleRunes)
		if start > pos {
			spans = append(spans, Span{Text: string(orig[pos:start])})
		}
		spans = append(spans, Span{Text: string(orig[start:end]), Matched: true})
		pos = end
	}

	if len(spans) == 0 {
		return []Span{{Text: text}}
	}
	if pos < len(orig) {
		spans = append(spans, Span{Text: string(orig[pos:])})
	}
	return spans
}

func indexRunes(haystack, needle []rune) int {
	if len(needle) == 0 || len(needle) > len(haystack) {
		return -1
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		j := 0
		for ; j < len(needle); j++ {
			if haystack[i+j] != needle[j] {
				break
			}
		}
		if j == len(needle) {
			return i
		}
	}
	return -1
}

func normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}
