// Package detect identifies the natural language of input text.
//
// Detection runs a three-stage pipeline: a script census cheaply
// eliminates languages whose writing systems do not appear in the
// text, an n-gram scorer ranks the survivors against per-language
// frequency models, and a small rule table breaks ties between
// closely related languages. Raw log scores are normalized into a
// confidence distribution over the configured candidate set.
//
// Detectors are built through a validating Builder:
//
//	detector, err := detect.FromAllLanguages().
//		WithMinimumRelativeDistance(0.1).
//		Build()
//
// A Detector is immutable and safe for concurrent use by multiple
// goroutines; batch helpers fan independent texts out over a bounded
// worker pool.
package detect

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/az-ai-labs/langid/internal/textprep"
	"github.com/az-ai-labs/langid/language"
	"github.com/az-ai-labs/langid/model"
	"github.com/az-ai-labs/langid/script"
)

// ConfidenceValue pairs a candidate language with its normalized
// confidence. Confidences lie in [0, 1] and sum to 1 across the full
// candidate set of the detector that produced them.
type ConfidenceValue struct {
	Language   language.Language
	Confidence float64
}

// Detector identifies the most likely language of a text among its
// configured candidates. Construct with a Builder; the configuration
// is frozen afterwards. Detection calls touch no mutable state, so a
// single Detector may be used from any number of goroutines.
type Detector struct {
	langs       []language.Language // sorted by display name
	candidates  map[language.Language]bool
	minDistance float64
	lowAccuracy bool
	store       *model.Store
}

// Languages returns the candidate set, sorted by display name.
func (d *Detector) Languages() []language.Language {
	return append([]language.Language(nil), d.langs...)
}

// DetectLanguage returns the most likely language of text, or Unknown
// when the input is empty, no candidate is viable, or the best two
// confidences are closer than the configured minimum relative
// distance. Invalid UTF-8 fails with an InputError.
func (d *Detector) DetectLanguage(text string) (language.Language, error) {
	values, decisive, err := d.distribution(text)
	if err != nil {
		return language.Unknown, err
	}
	if !decisive || len(values) == 0 {
		return language.Unknown, nil
	}
	top := values[0]
	if top.Confidence == 0 {
		return language.Unknown, nil
	}
	var second float64
	if len(values) > 1 {
		second = values[1].Confidence
	}
	if top.Confidence == second {
		// Perfect tie, no single best answer.
		return language.Unknown, nil
	}
	if (top.Confidence-second)/top.Confidence < d.minDistance {
		return language.Unknown, nil
	}
	return top.Language, nil
}

// ConfidenceValues returns the full confidence distribution over the
// candidate set, sorted by descending confidence (ties by language
// name). The minimum relative distance never gates this method: near
// ties are returned as-is for the caller to inspect. Empty or
// whitespace-only input yields an empty slice; invalid UTF-8 fails
// with an InputError.
func (d *Detector) ConfidenceValues(text string) ([]ConfidenceValue, error) {
	values, _, err := d.distribution(text)
	return values, err
}

// distribution runs the detection pipeline. decisive reports whether
// the distribution carries enough signal for a single-best answer:
// empty input, a text no candidate could have produced, and letterless
// text all yield an indecisive (flat) distribution.
func (d *Detector) distribution(text string) (values []ConfidenceValue, decisive bool, err error) {
	if !utf8.ValidString(text) {
		return nil, false, &InputError{msg: "input is not valid UTF-8"}
	}
	if strings.TrimSpace(text) == "" {
		return nil, false, nil
	}

	// Script filtering. A text whose letters all belong to scripts a
	// candidate never uses eliminates that candidate outright; a text
	// with no letters keeps everyone and the scorer decides alone.
	census := script.Census(text)
	survivors := d.langs
	if !census.Empty() {
		survivors = nil
		for _, l := range d.langs {
			if l.Scripts().Intersects(census) {
				survivors = append(survivors, l)
			}
		}
	}

	switch len(survivors) {
	case 0:
		// No candidate could have produced this text.
		return d.uniform(), false, nil
	case 1:
		// The script census identified the language by itself.
		return d.certain(survivors[0]), true, nil
	}

	runes := textprep.Prepare(text)
	if runes == nil {
		return d.uniform(), false, nil
	}

	maxOrder := d.maxScoringOrder()
	scores := make(map[language.Language]float64, len(survivors))
	for _, l := range survivors {
		m, err := d.store.Get(l)
		if err != nil {
			return nil, false, err
		}
		scores[l] = score(m, runes, maxOrder)
	}
	refine(text, scores)

	return d.normalize(scores), true, nil
}

// Confidence returns the confidence of text being written in lang.
// A language outside the candidate set has confidence 0.0; that is a
// defined outcome, not an error.
func (d *Detector) Confidence(text string, lang language.Language) (float64, error) {
	if !d.candidates[lang] {
		if !utf8.ValidString(text) {
			return 0, &InputError{msg: "input is not valid UTF-8"}
		}
		return 0, nil
	}
	values, err := d.ConfidenceValues(text)
	if err != nil {
		return 0, err
	}
	for _, v := range values {
		if v.Language == lang {
			return v.Confidence, nil
		}
	}
	return 0, nil
}

// UnloadLanguageModels drops the loaded frequency tables for this
// detector's candidates. Later detection calls reload them lazily.
func (d *Detector) UnloadLanguageModels() {
	d.store.Unload(d.langs...)
}

// uniform builds the distribution for a text that gave the pipeline
// nothing to work with: every candidate equally likely.
func (d *Detector) uniform() []ConfidenceValue {
	values := make([]ConfidenceValue, len(d.langs))
	p := 1.0 / float64(len(d.langs))
	for i, l := range d.langs {
		values[i] = ConfidenceValue{Language: l, Confidence: p}
	}
	return values
}

// certain builds the distribution for a single surviving candidate.
func (d *Detector) certain(lang language.Language) []ConfidenceValue {
	values := make([]ConfidenceValue, 0, len(d.langs))
	values = append(values, ConfidenceValue{Language: lang, Confidence: 1.0})
	for _, l := range d.langs {
		if l != lang {
			values = append(values, ConfidenceValue{Language: l})
		}
	}
	return values
}

// normalize converts raw log scores into a softmax distribution over
// the full candidate set. Candidates eliminated before scoring carry
// confidence 0.
func (d *Detector) normalize(scores map[language.Language]float64) []ConfidenceValue {
	maxScore := math.Inf(-1)
	for _, s := range scores {
		if s > maxScore {
			maxScore = s
		}
	}

	var total float64
	exps := make(map[language.Language]float64, len(scores))
	for l, s := range scores {
		e := math.Exp(s - maxScore)
		exps[l] = e
		total += e
	}

	values := make([]ConfidenceValue, 0, len(d.langs))
	for _, l := range d.langs {
		v := ConfidenceValue{Language: l}
		if e, ok := exps[l]; ok && total > 0 {
			v.Confidence = e / total
		}
		values = append(values, v)
	}
	sort.SliceStable(values, func(i, j int) bool {
		if values[i].Confidence != values[j].Confidence {
			return values[i].Confidence > values[j].Confidence
		}
		return values[i].Language.String() < values[j].Language.String()
	})
	return values
}
