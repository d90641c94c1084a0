package boldwords

import (
	"sort"
	"strings"
)

// BoldWords returns s with every occurrence of any word in words wrapped in
// bold markup. Occurrences that overlap or touch are merged into one span.
// If no word occurs in s (including when words is empty), s is returned as is.
// Empty words are ignored.
//
// Algorithm Outline:
//  1. Scan s once per word and record each match as [i, i+len(word)).
//  2. Sort the spans by start (then end).
//  3. Merge greedily: a span whose start ≤ the current end extends it.
//  4. Splice plain text and tagged spans in order.
func BoldWords(words []string, s string, opts ...Option) string {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	spans := occurrences(words, s)
	if len(spans) == 0 {
		return s
	}

	return splice(s, merge(spans), cfg)
}

// occurrences returns every match of every word in s.
func occurrences(words []string, s string) []span {
	var out []span
	for _, w := range words {
		n := len(w)
		if n == 0 {
			continue
		}
		for i := 0; i+n <= len(s); i++ {
			if s[i:i+n] == w {
				out = append(out, span{start: i, end: i + n})
			}
		}
	}

	return out
}

// merge sorts spans and collapses overlapping or adjacent ones.
// The input slice is reordered in place; it is private to BoldWords.
func merge(spans []span) []span {
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].start != spans[j].start {
			return spans[i].start < spans[j].start
		}
		return spans[i].end < spans[j].end
	})

	merged := make([]span, 0, len(spans))
	for _, sp := range spans {
		last := len(merged) - 1
		if last < 0 || merged[last].end < sp.start {
			merged = append(merged, sp)
			continue
		}
		if sp.end > merged[last].end {
			merged[last].end = sp.end
		}
	}

	return merged
}

// splice rebuilds s with cfg's tags around each merged span.
func splice(s string, merged []span, cfg Options) string {
	var b strings.Builder
	b.Grow(len(s) + len(merged)*(len(cfg.OpenTag)+len(cfg.CloseTag)))

	prevEnd := 0
	for _, sp := range merged {
		b.WriteString(s[prevEnd:sp.start])
		b.WriteString(cfg.OpenTag)
		b.WriteString(s[sp.start:sp.end])
		b.WriteString(cfg.CloseTag)
		prevEnd = sp.end
	}
	b.WriteString(s[prevEnd:])

	return b.String()
}
