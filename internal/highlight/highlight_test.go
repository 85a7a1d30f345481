package highlight

import (
	"strings"
	"testing"
)

func TestHighlightDiacriticInsensitive(t *testing.T) {
	spans := Highlight("São Paulo", "sao")

	want := []Span{
		{Text: "São", Matched: true},
		{Text: " Paulo", Matched: false},
	}
	assertSpans(t, spans, want)
}

func TestHighlightCaseInsensitive(t *testing.T) {
	spans := Highlight("HELLO world", "hello")

	want := []Span{
		{Text: "HELLO", Matched: true},
		{Text: " world", Matched: false},
	}
	assertSpans(t, spans, want)
}

func TestHighlightEmptyNeedle(t *testing.T) {
	spans := Highlight("any text at all", "")

	want := []Span{{Text: "any text at all", Matched: false}}
	assertSpans(t, spans, want)
}

func TestHighlightNoMatch(t *testing.T) {
	spans := Highlight("electricity bill", "xyz")

	want := []Span{{Text: "electricity bill", Matched: false}}
	assertSpans(t, spans, want)
}

func TestHighlightMultipleOccurrences(t *testing.T) {
	spans := Highlight("banana", "an")

	want := []Span{
		{Text: "b", Matched: false},
		{Text: "an", Matched: true},
		{Text: "an", Matched: true},
		{Text: "a", Matched: false},
	}
	assertSpans(t, spans, want)
}

func TestHighlightMatchAtStartAndEnd(t *testing.T) {
	spans := Highlight("café", "ca")
	want := []Span{
		{Text: "ca", Matched: true},
		{Text: "fé", Matched: false},
	}
	assertSpans(t, spans, want)

	spans = Highlight("café", "fe")
	want = []Span{
		{Text: "ca", Matched: false},
		{Text: "fé", Matched: true},
	}
	assertSpans(t, spans, want)
}

func TestHighlightWholeStringMatch(t *testing.T) {
	spans := Highlight("Crédito", "credito")

	want := []Span{{Text: "Crédito", Matched: true}}
	assertSpans(t, spans, want)
}

func TestHighlightRoundTrip(t *testing.T) {
	cases := []struct {
		text   string
		needle string
	}{
		{"São Paulo", "sao"},
		{"banana", "an"},
		{"cartão de crédito", "cart"},
		{"cartão de crédito", "é"},
		{"", "foo"},
		{"plain ascii", ""},
		{"ação aço açaí", "ac"},
	}

	for _, tc := range cases {
		spans := Highlight(tc.text, tc.needle)
		var b strings.Builder
		for _, s := range spans {
			b.WriteString(s.Text)
		}
		if b.String() != tc.text {
			t.Errorf("Highlight(%q, %q): concatenated spans = %q, want original",
				tc.text, tc.needle, b.String())
		}
	}
}

func TestHighlightPreservesOriginalCasing(t *testing.T) {
	spans := Highlight("CONDOMÍNIO", "condominio")

	if len(spans) != 1 || !spans[0].Matched {
		t.Fatalf("spans = %+v, want single matched span", spans)
	}
	if spans[0].Text != "CONDOMÍNIO" {
		t.Errorf("Text = %q, original casing not preserved", spans[0].Text)
	}
}

func assertSpans(t *testing.T, got, want []Span) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d spans %+v, want %d spans %+v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("span %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}
