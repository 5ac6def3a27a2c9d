// Package textprep prepares raw text for n-gram scoring.
//
// Preparation is the single canonical transform shared by the model
// trainer and the detector: NFC composition, simple per-rune
// lowercasing, and reduction of every non-letter run to one space.
// Model tables and query n-grams must be built from identically
// prepared text or frequencies stop being comparable.
//
// All functions are safe for concurrent use by multiple goroutines.
package textprep

import (
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Lower returns the simple (one-to-one) lowercase form of r.
// Full case mapping is deliberately not used: it can expand one rune
// into several (İ to i plus combining dot) and would desynchronize
// query n-grams from the trained tables.
func Lower(r rune) rune {
	return unicode.ToLower(r)
}

// Prepare returns the rune sequence used for n-gram extraction:
// NFC-composed, lowercased, with every maximal run of non-letter runes
// collapsed to a single space. Leading and trailing spaces are dropped.
// Returns nil when the input contains no letters.
func Prepare(s string) []rune {
	s = norm.NFC.String(s)

	out := make([]rune, 0, len(s)/2)
	pendingSpace := false
	for _, r := range s {
		if !unicode.IsLetter(r) {
			if len(out) > 0 {
				pendingSpace = true
			}
			continue
		}
		if pendingSpace {
			out = append(out, ' ')
			pendingSpace = false
		}
		out = append(out, Lower(r))
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
