package detect

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/az-ai-labs/langid/language"
)

// Batch results carry a per-element error so one malformed text never
// aborts its siblings. The slice returned by every batch method has
// the same length and order as the input, regardless of worker
// scheduling.

// BatchDetection is one slot of DetectLanguagesInParallel.
type BatchDetection struct {
	Language language.Language
	Err      error
}

// BatchConfidenceValues is one slot of ConfidenceValuesInParallel.
type BatchConfidenceValues struct {
	Values []ConfidenceValue
	Err    error
}

// BatchConfidence is one slot of ConfidenceInParallel.
type BatchConfidence struct {
	Confidence float64
	Err        error
}

// DetectLanguagesInParallel detects every text concurrently and
// returns the results in input order.
func (d *Detector) DetectLanguagesInParallel(texts []string) []BatchDetection {
	results := make([]BatchDetection, len(texts))
	forEachText(texts, func(i int, text string) {
		results[i].Language, results[i].Err = d.DetectLanguage(text)
	})
	return results
}

// ConfidenceValuesInParallel computes the confidence distribution of
// every text concurrently and returns them in input order.
func (d *Detector) ConfidenceValuesInParallel(texts []string) []BatchConfidenceValues {
	results := make([]BatchConfidenceValues, len(texts))
	forEachText(texts, func(i int, text string) {
		results[i].Values, results[i].Err = d.ConfidenceValues(text)
	})
	return results
}

// ConfidenceInParallel computes the confidence of lang for every text
// concurrently and returns the values in input order.
func (d *Detector) ConfidenceInParallel(texts []string, lang language.Language) []BatchConfidence {
	results := make([]BatchConfidence, len(texts))
	forEachText(texts, func(i int, text string) {
		results[i].Confidence, results[i].Err = d.Confidence(text, lang)
	})
	return results
}

// DetectMultipleLanguagesInParallel segments every text concurrently
// and returns the span lists in input order.
func (d *Detector) DetectMultipleLanguagesInParallel(texts []string) []BatchSpans {
	results := make([]BatchSpans, len(texts))
	forEachText(texts, func(i int, text string) {
		results[i].Spans, results[i].Err = d.DetectMultipleLanguages(text)
	})
	return results
}

// BatchSpans is one slot of DetectMultipleLanguagesInParallel.
type BatchSpans struct {
	Spans []SpanResult
	Err   error
}

// forEachText fans fn out over a worker pool bounded by available
// parallelism. Each index is owned by exactly one goroutine, so the
// callers' pre-sized result slices need no locking; failures are
// reported through the slots, never through the group.
func forEachText(texts []string, fn func(i int, text string)) {
	if len(texts) == 0 {
		return
	}
	workers := runtime.GOMAXPROCS(0)
	if workers > len(texts) {
		workers = len(texts)
	}
	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(workers)
	for i, text := range texts {
		i, text := i, text
		g.Go(func() error {
			fn(i, text)
			return nil
		})
	}
	// Workers always return nil; Wait only joins them.
	_ = g.Wait()
}
