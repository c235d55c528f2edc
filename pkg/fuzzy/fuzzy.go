// Package fuzzy ranks free-text search hits with typo tolerance.
package fuzzy

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Field is one searchable piece of a document with its ranking weight
type Field struct {
	Text   string
	Weight float64
}

// distance is the Levenshtein edit distance between a and b
func distance(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// Threshold is the edit distance tolerated for a query of that length
func Threshold(query string) int {
	n := len([]rune(Normalize(query)))
	switch {
	case n <= 3:
		return 1
	case n >= 8:
		return 3
	default:
		return 2
	}
}

// Match reports whether query matches text as a substring, a word prefix,
// or a word within the typo threshold. Any field that Score rates above
// zero also matches here, so Match works as a cheap pre-filter.
func Match(query, text string) bool {
	q := Normalize(query)
	t := Normalize(text)
	if q == "" {
		return true
	}
	if strings.Contains(t, q) {
		return true
	}

	qr := []rune(q)
	limit := Threshold(q)
	for _, word := range strings.Fields(t) {
		if strings.HasPrefix(word, q) || distance(qr, []rune(word)) <= limit {
			return true
		}
	}
	return false
}

// Score rates how well query matches the weighted fields. Zero means no match.
// A substring hit counts fully, a whole-word hit adds half again, and a
// near miss counts less the further it is from the query.
func Score(query string, fields ...Field) float64 {
	q := Normalize(query)
	if q == "" {
		return 0
	}
	qr := []rune(q)
	limit := Threshold(q)

	score := 0.0
	for _, f := range fields {
		t := Normalize(f.Text)
		if t == "" {
			continue
		}

		if strings.Contains(t, q) {
			score += f.Weight
			if containsWord(t, q) {
				score += f.Weight / 2
			}
			continue
		}

		best := 0.0
		for _, word := range strings.Fields(t) {
			var s float64
			if strings.HasPrefix(word, q) {
				s = f.Weight * 0.4
			}
			if d := distance(qr, []rune(word)); d <= limit {
				s = max(s, f.Weight*0.5*(1-float64(d)/float64(limit+1)))
			}
			best = max(best, s)
		}
		score += best
	}
	return score
}

var foldMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lower-cases s, strips diacritics and collapses whitespace
func Normalize(s string) string {
	folded, _, err := transform.String(foldMarks, strings.ToLower(s))
	if err != nil {
		folded = strings.ToLower(s)
	}
	folded = strings.Map(func(r rune) rune {
		if r == 'đ' {
			return 'd'
		}
		return r
	}, folded)
	return strings.Join(strings.Fields(folded), " ")
}

func containsWord(text, word string) bool {
	for _, w := range strings.Fields(text) {
		if w == word {
			return true
		}
	}
	return false
}
