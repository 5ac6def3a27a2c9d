package detect

import (
	"math"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/az-ai-labs/langid/language"
)

var fuzzDetector = struct {
	once sync.Once
	d    *Detector
}{}

func sharedFuzzDetector(t testing.TB) *Detector {
	fuzzDetector.once.Do(func() {
		d, err := FromAllLanguages().Build()
		if err != nil {
			t.Fatal(err)
		}
		fuzzDetector.d = d
	})
	return fuzzDetector.d
}

func FuzzDetectLanguage(f *testing.F) {
	f.Add("This is a test sentence written in English.")
	f.Add("")
	f.Add("   ")
	f.Add("a")
	f.Add("Γειά σου")
	f.Add("今天天气很好")
	f.Add("مرحبا")
	f.Add("123 !!! ...")
	f.Add("\xff\xfe")
	f.Add("mixed Γειά input")

	f.Fuzz(func(t *testing.T, s string) {
		d := sharedFuzzDetector(t)
		lang, err := d.DetectLanguage(s)
		if !utf8.ValidString(s) {
			if err == nil {
				t.Fatalf("invalid UTF-8 accepted: %q", s)
			}
			return
		}
		if err != nil {
			t.Fatalf("DetectLanguage(%q): %v", s, err)
		}
		// Deterministic across calls.
		again, err := d.DetectLanguage(s)
		if err != nil {
			t.Fatalf("second call: %v", err)
		}
		if again != lang {
			t.Fatalf("DetectLanguage(%q): %v then %v", s, lang, again)
		}
		if lang != language.Unknown && lang.ISO6391() == "" {
			t.Fatalf("DetectLanguage(%q): unsupported result %v", s, lang)
		}
	})
}

func FuzzConfidenceValues(f *testing.F) {
	f.Add("Bonjour tout le monde")
	f.Add("")
	f.Add("ß")
	f.Add("Привет мир")
	f.Add("xyzzy qwerty")
	f.Add("\xc3(")

	f.Fuzz(func(t *testing.T, s string) {
		d := sharedFuzzDetector(t)
		values, err := d.ConfidenceValues(s)
		if !utf8.ValidString(s) {
			if err == nil {
				t.Fatalf("invalid UTF-8 accepted: %q", s)
			}
			return
		}
		if err != nil {
			t.Fatalf("ConfidenceValues(%q): %v", s, err)
		}
		if len(values) == 0 {
			return
		}
		var sum float64
		for i, v := range values {
			if v.Confidence < 0 || v.Confidence > 1 {
				t.Fatalf("ConfidenceValues(%q): %v outside [0, 1]", s, v)
			}
			if i > 0 && v.Confidence > values[i-1].Confidence {
				t.Fatalf("ConfidenceValues(%q): not sorted at %d", s, i)
			}
			sum += v.Confidence
		}
		if math.Abs(sum-1.0) > 1e-6 {
			t.Fatalf("ConfidenceValues(%q): sum %v", s, sum)
		}
	})
}

func FuzzDetectMultipleLanguages(f *testing.F) {
	f.Add("The language detection works today. Γειά σου φίλε μου.")
	f.Add("")
	f.Add("one")
	f.Add("a b c")
	f.Add("\xff")

	f.Fuzz(func(t *testing.T, s string) {
		d := sharedFuzzDetector(t)
		spans, err := d.DetectMultipleLanguages(s)
		if !utf8.ValidString(s) {
			if err == nil {
				t.Fatalf("invalid UTF-8 accepted: %q", s)
			}
			return
		}
		if err != nil {
			t.Fatalf("DetectMultipleLanguages(%q): %v", s, err)
		}
		prevEnd := 0
		for _, span := range spans {
			if span.Language == language.Unknown {
				t.Fatalf("span with Unknown language: %+v", span)
			}
			if span.Start < prevEnd || span.End <= span.Start || span.End > len(s) {
				t.Fatalf("bad span bounds %+v in %q", span, s)
			}
			prevEnd = span.End
		}
	})
}
