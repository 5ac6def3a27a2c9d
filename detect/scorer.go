package detect

import (
	"math"

	"github.com/az-ai-labs/langid/internal/ngram"
	"github.com/az-ai-labs/langid/model"
)

// Scoring constants. Chosen against the corpus-replay suite in
// detector_test.go rather than derived analytically; retune there when
// models are retrained.
const (
	// backoffFactor multiplies the probability once per back-off step
	// when an n-gram is unseen and its (n-1)-suffix is consulted
	// instead.
	backoffFactor = 0.05

	// unknownFloor is the probability assigned to a unigram absent
	// from the model, the bottom of the back-off chain.
	unknownFloor = 1e-6
)

var (
	logBackoff = math.Log(backoffFactor)
	logFloor   = math.Log(unknownFloor)
)

// logProb returns the log probability of g under m, backing off to
// successively shorter suffixes until a table hit or the unigram
// floor.
func logProb(m *model.Model, g string) float64 {
	runes := []rune(g)
	penalty := 0.0
	for len(runes) > 0 {
		if f, ok := m.Frequency(string(runes), len(runes)); ok {
			return math.Log(f) + penalty
		}
		if len(runes) == 1 {
			break
		}
		runes = runes[1:]
		penalty += logBackoff
	}
	return logFloor + penalty
}

// score computes the unnormalized log score of prepared text under m.
// Each order 1..maxOrder contributes its average n-gram log
// probability; orders are combined by weights proportional to n, so
// longer n-grams dominate where the text is long enough to provide
// them. Inputs shorter than maxOrder degrade to the orders they can
// fill.
func score(m *model.Model, runes []rune, maxOrder int) float64 {
	top := maxOrder
	if len(runes) < top {
		top = len(runes)
	}
	if top < 1 {
		return math.Inf(-1)
	}

	var weighted, weightSum float64
	for order := 1; order <= top; order++ {
		grams := ngram.Extract(runes, order)
		if len(grams) == 0 {
			continue
		}
		var sum float64
		for _, g := range grams {
			sum += logProb(m, g)
		}
		avg := sum / float64(len(grams))
		weighted += float64(order) * avg
		weightSum += float64(order)
	}
	if weightSum == 0 {
		return math.Inf(-1)
	}
	return weighted / weightSum
}

// maxScoringOrder returns the highest n-gram order the detector
// scores with.
func (d *Detector) maxScoringOrder() int {
	if d.lowAccuracy {
		return lowAccuracyMaxOrder
	}
	return ngram.MaxOrder
}

// lowAccuracyMaxOrder caps scoring at trigrams in low-accuracy mode.
const lowAccuracyMaxOrder = 3
