package detect

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/unicode/norm"

	"github.com/az-ai-labs/langid/language"
)

//go:embed rules.toml
var rulesTOML []byte

// refineRule nudges one language's log score up and a confusable
// sibling's down when the trigger substring occurs in the input.
type refineRule struct {
	trigger  string
	boost    language.Language
	penalize language.Language
	weight   float64
}

var refineRules = mustLoadRules(rulesTOML)

func mustLoadRules(data []byte) []refineRule {
	var doc struct {
		Rule []struct {
			Trigger  string  `toml:"trigger"`
			Boost    string  `toml:"boost"`
			Penalize string  `toml:"penalize"`
			Weight   float64 `toml:"weight"`
		} `toml:"rule"`
	}
	if err := toml.Unmarshal(data, &doc); err != nil {
		panic(fmt.Sprintf("detect: embedded rules.toml: %v", err))
	}
	rules := make([]refineRule, 0, len(doc.Rule))
	for _, r := range doc.Rule {
		boost, ok := language.FromName(r.Boost)
		if !ok || boost == language.Unknown {
			panic(fmt.Sprintf("detect: rules.toml: unknown language %q", r.Boost))
		}
		penalize, ok := language.FromName(r.Penalize)
		if !ok || penalize == language.Unknown {
			panic(fmt.Sprintf("detect: rules.toml: unknown language %q", r.Penalize))
		}
		if r.Trigger == "" || r.Weight <= 0 {
			panic(fmt.Sprintf("detect: rules.toml: bad rule %+v", r))
		}
		rules = append(rules, refineRule{
			trigger:  r.Trigger,
			boost:    boost,
			penalize: penalize,
			weight:   r.Weight,
		})
	}
	return rules
}

// refine applies the rule table to the raw log scores in place.
// Adjustments are additive in log space; absent triggers leave scores
// unchanged.
func refine(text string, scores map[language.Language]float64) {
	low := strings.ToLower(norm.NFC.String(text))
	for _, r := range refineRules {
		if !strings.Contains(low, r.trigger) {
			continue
		}
		if _, ok := scores[r.boost]; ok {
			scores[r.boost] += r.weight
		}
		if _, ok := scores[r.penalize]; ok {
			scores[r.penalize] -= r.weight
		}
	}
}
