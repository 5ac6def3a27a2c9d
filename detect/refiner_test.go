package detect

import (
	"testing"

	"github.com/az-ai-labs/langid/language"
)

func TestRulesLoad(t *testing.T) {
	t.Parallel()
	if len(refineRules) == 0 {
		t.Fatal("no rules loaded from rules.toml")
	}
	for _, r := range refineRules {
		if r.trigger == "" || r.weight <= 0 {
			t.Errorf("malformed rule: %+v", r)
		}
		if r.boost == language.Unknown || r.penalize == language.Unknown {
			t.Errorf("rule without languages: %+v", r)
		}
	}
}

func TestRefine(t *testing.T) {
	t.Parallel()
	scores := map[language.Language]float64{
		language.Portuguese: -10.0,
		language.Spanish:    -10.0,
	}
	refine("a manhã inteira", scores)
	if scores[language.Portuguese] <= -10.0 {
		t.Errorf("Portuguese not boosted: %v", scores[language.Portuguese])
	}
	if scores[language.Spanish] >= -10.0 {
		t.Errorf("Spanish not penalized: %v", scores[language.Spanish])
	}
}

func TestRefineNoTrigger(t *testing.T) {
	t.Parallel()
	scores := map[language.Language]float64{
		language.English: -5.0,
		language.French:  -6.0,
	}
	refine("plain ascii text", scores)
	if scores[language.English] != -5.0 || scores[language.French] != -6.0 {
		t.Errorf("scores changed without a trigger: %v", scores)
	}
}

func TestRefineSkipsAbsentCandidates(t *testing.T) {
	t.Parallel()
	scores := map[language.Language]float64{
		language.Spanish: -10.0,
	}
	refine("ã", scores)
	if _, ok := scores[language.Portuguese]; ok {
		t.Error("refine introduced a non-candidate language")
	}
}

func TestRefineEndToEnd(t *testing.T) {
	t.Parallel()
	d := allDetector(t)
	lang, err := d.DetectLanguage("O cachorro correu pela praia durante a manhã inteira.")
	if err != nil {
		t.Fatal(err)
	}
	if lang != language.Portuguese {
		t.Errorf("got %v, want Portuguese", lang)
	}
}
