// Package ngram extracts overlapping character n-grams from prepared
// rune sequences.
package ngram

// MaxOrder is the highest n-gram order used by the detector and stored
// in the language models.
const MaxOrder = 5

// Extract returns all overlapping n-grams of the given order from
// runes, in text order. Returns nil when the input is shorter than the
// order or the order is not positive.
func Extract(runes []rune, order int) []string {
	if order <= 0 || len(runes) < order {
		return nil
	}
	out := make([]string, 0, len(runes)-order+1)
	for i := 0; i+order <= len(runes); i++ {
		out = append(out, string(runes[i:i+order]))
	}
	return out
}

// Count tallies all overlapping n-grams of the given order in runes.
// Returns an empty map when the input is shorter than the order.
func Count(runes []rune, order int) map[string]int {
	counts := make(map[string]int)
	for i := 0; i+order <= len(runes); i++ {
		counts[string(runes[i:i+order])]++
	}
	return counts
}
