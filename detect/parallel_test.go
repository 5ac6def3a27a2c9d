package detect

import (
	"errors"
	"testing"

	"github.com/az-ai-labs/langid/language"
)

func TestDetectLanguagesInParallel(t *testing.T) {
	t.Parallel()
	d := allDetector(t)

	texts := make([]string, 0, len(scenarioTexts))
	want := make([]language.Language, 0, len(scenarioTexts))
	for _, tt := range scenarioTexts {
		texts = append(texts, tt.in)
		want = append(want, tt.want)
	}

	results := d.DetectLanguagesInParallel(texts)
	if len(results) != len(texts) {
		t.Fatalf("got %d results, want %d", len(results), len(texts))
	}
	for i, r := range results {
		if r.Err != nil {
			t.Errorf("texts[%d]: %v", i, r.Err)
			continue
		}
		if r.Language != want[i] {
			t.Errorf("texts[%d]: got %v, want %v", i, r.Language, want[i])
		}
	}
}

func TestParallelMatchesSequential(t *testing.T) {
	t.Parallel()
	d := allDetector(t)
	texts := []string{
		"This is a test sentence written in English.",
		"Bonjour tout le monde",
		"",
		"Γειά σου",
	}

	batch := d.ConfidenceValuesInParallel(texts)
	for i, text := range texts {
		want, err := d.ConfidenceValues(text)
		if err != nil {
			t.Fatal(err)
		}
		got := batch[i]
		if got.Err != nil {
			t.Fatalf("texts[%d]: %v", i, got.Err)
		}
		if len(got.Values) != len(want) {
			t.Fatalf("texts[%d]: %d values, want %d", i, len(got.Values), len(want))
		}
		for j := range want {
			if got.Values[j] != want[j] {
				t.Errorf("texts[%d][%d]: got %v, want %v", i, j, got.Values[j], want[j])
			}
		}
	}
}

func TestConfidenceInParallel(t *testing.T) {
	t.Parallel()
	d := allDetector(t)
	texts := []string{
		"This is a test sentence written in English.",
		"Bonjour tout le monde",
	}
	results := d.ConfidenceInParallel(texts, language.English)
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Err != nil || results[1].Err != nil {
		t.Fatalf("unexpected errors: %v, %v", results[0].Err, results[1].Err)
	}
	if results[0].Confidence <= results[1].Confidence {
		t.Errorf("English text scored %v, French text %v; want the former higher",
			results[0].Confidence, results[1].Confidence)
	}
}

func TestParallelEmptyInput(t *testing.T) {
	t.Parallel()
	d := allDetector(t)
	if got := d.DetectLanguagesInParallel(nil); len(got) != 0 {
		t.Errorf("nil input: got %d results", len(got))
	}
	if got := d.ConfidenceValuesInParallel([]string{}); len(got) != 0 {
		t.Errorf("empty input: got %d results", len(got))
	}
}

func TestParallelErrorIsolation(t *testing.T) {
	t.Parallel()
	d := allDetector(t)
	texts := []string{
		"This is a test sentence written in English.",
		"abc\xff\xfe",
		"Bonjour tout le monde",
	}
	results := d.DetectLanguagesInParallel(texts)

	if results[0].Err != nil || results[0].Language != language.English {
		t.Errorf("texts[0]: got (%v, %v)", results[0].Language, results[0].Err)
	}
	var inputErr *InputError
	if !errors.As(results[1].Err, &inputErr) {
		t.Errorf("texts[1]: got %v, want *InputError", results[1].Err)
	}
	if results[2].Err != nil || results[2].Language != language.French {
		t.Errorf("texts[2]: got (%v, %v)", results[2].Language, results[2].Err)
	}
}
