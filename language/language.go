// Package language defines the closed set of natural languages the
// detector can distinguish, together with their ISO 639 codes and the
// scripts each language is written in.
//
// The set is fixed at build time: models are trained and packaged per
// language, so the enum is not extensible at runtime. Callers select a
// subset of it when configuring a detector.
//
// All functions are safe for concurrent use by multiple goroutines.
package language

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/az-ai-labs/langid/script"
)

// Language identifies a natural language.
type Language int

const (
	Unknown Language = iota // zero value, no detection performed

	Arabic
	Azerbaijani
	Bulgarian
	Chinese
	Dutch
	English
	Finnish
	French
	German
	Greek
	Hebrew
	Italian
	Japanese
	Korean
	Polish
	Portuguese
	Russian
	Spanish
	Swedish
	Turkish
	Ukrainian
)

// info holds the static metadata of one language.
type info struct {
	name    string
	iso1    string // ISO 639-1
	iso3    string // ISO 639-3
	scripts script.Set
}

var infos = [...]info{
	Unknown:     {name: "Unknown"},
	Arabic:      {"Arabic", "ar", "ara", script.SetOf(script.Arabic)},
	Azerbaijani: {"Azerbaijani", "az", "aze", script.SetOf(script.Latin, script.Cyrillic)},
	Bulgarian:   {"Bulgarian", "bg", "bul", script.SetOf(script.Cyrillic)},
	Chinese:     {"Chinese", "zh", "zho", script.SetOf(script.Han)},
	Dutch:       {"Dutch", "nl", "nld", script.SetOf(script.Latin)},
	English:     {"English", "en", "eng", script.SetOf(script.Latin)},
	Finnish:     {"Finnish", "fi", "fin", script.SetOf(script.Latin)},
	French:      {"French", "fr", "fra", script.SetOf(script.Latin)},
	German:      {"German", "de", "deu", script.SetOf(script.Latin)},
	Greek:       {"Greek", "el", "ell", script.SetOf(script.Greek)},
	Hebrew:      {"Hebrew", "he", "heb", script.SetOf(script.Hebrew)},
	Italian:     {"Italian", "it", "ita", script.SetOf(script.Latin)},
	Japanese:    {"Japanese", "ja", "jpn", script.SetOf(script.Han, script.Hiragana, script.Katakana)},
	Korean:      {"Korean", "ko", "kor", script.SetOf(script.Hangul)},
	Polish:      {"Polish", "pl", "pol", script.SetOf(script.Latin)},
	Portuguese:  {"Portuguese", "pt", "por", script.SetOf(script.Latin)},
	Russian:     {"Russian", "ru", "rus", script.SetOf(script.Cyrillic)},
	Spanish:     {"Spanish", "es", "spa", script.SetOf(script.Latin)},
	Swedish:     {"Swedish", "sv", "swe", script.SetOf(script.Latin)},
	Turkish:     {"Turkish", "tr", "tur", script.SetOf(script.Latin)},
	Ukrainian:   {"Ukrainian", "uk", "ukr", script.SetOf(script.Cyrillic)},
}

// fromName maps lowercased display names back to Language values.
var fromName = func() map[string]Language {
	m := make(map[string]Language, len(infos))
	for l := range infos {
		m[strings.ToLower(infos[l].name)] = Language(l)
	}
	return m
}()

// fromISO1 and fromISO3 map ISO 639 codes back to Language values.
var fromISO1, fromISO3 = func() (map[string]Language, map[string]Language) {
	m1 := make(map[string]Language, len(infos))
	m3 := make(map[string]Language, len(infos))
	for l := Arabic; l <= Ukrainian; l++ {
		m1[infos[l].iso1] = l
		m3[infos[l].iso3] = l
	}
	return m1, m3
}()

// String returns the display name of the language.
func (l Language) String() string {
	if int(l) >= 0 && int(l) < len(infos) {
		return infos[l].name
	}
	return fmt.Sprintf("Language(%d)", int(l))
}

// ISO6391 returns the two-letter ISO 639-1 code, or "" for Unknown.
func (l Language) ISO6391() string {
	if int(l) > 0 && int(l) < len(infos) {
		return infos[l].iso1
	}
	return ""
}

// ISO6393 returns the three-letter ISO 639-3 code, or "" for Unknown.
func (l Language) ISO6393() string {
	if int(l) > 0 && int(l) < len(infos) {
		return infos[l].iso3
	}
	return ""
}

// Scripts returns the set of scripts the language is written in.
func (l Language) Scripts() script.Set {
	if int(l) > 0 && int(l) < len(infos) {
		return infos[l].scripts
	}
	return 0
}

// MarshalJSON encodes the language as a JSON string (e.g. "English").
func (l Language) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON decodes a JSON string (e.g. "English") into a Language.
func (l *Language) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	lang, ok := FromName(s)
	if !ok {
		return fmt.Errorf("language: unknown language: %q", s)
	}
	*l = lang
	return nil
}

// FromName resolves a display name (case-insensitive) to a Language.
// "Unknown" resolves to Unknown with ok=true; unrecognized names return
// ok=false.
func FromName(name string) (Language, bool) {
	l, ok := fromName[strings.ToLower(name)]
	return l, ok
}

// FromISO6391 resolves a two-letter ISO 639-1 code to a Language.
func FromISO6391(code string) (Language, bool) {
	l, ok := fromISO1[strings.ToLower(code)]
	return l, ok
}

// FromISO6393 resolves a three-letter ISO 639-3 code to a Language.
func FromISO6393(code string) (Language, bool) {
	l, ok := fromISO3[strings.ToLower(code)]
	return l, ok
}

// All lists every supported language sorted by display name.
func All() []Language {
	langs := make([]Language, 0, len(infos)-1)
	for l := Arabic; l <= Ukrainian; l++ {
		langs = append(langs, l)
	}
	sort.Slice(langs, func(i, j int) bool {
		return langs[i].String() < langs[j].String()
	})
	return langs
}

// AllSpoken lists every supported language with living speakers.
// Every language in the current set qualifies, so the result equals
// All; the distinction matters only if extinct languages are added.
func AllSpoken() []Language {
	return All()
}

// AllWithScript lists every language whose script set contains s,
// sorted by display name.
func AllWithScript(s script.Script) []Language {
	var langs []Language
	for _, l := range All() {
		if l.Scripts().Has(s) {
			langs = append(langs, l)
		}
	}
	return langs
}

// AllWithSingleUniqueScript lists every language written in exactly one
// script that no other supported language uses. Texts in such a script
// identify their language without statistical scoring.
func AllWithSingleUniqueScript() []Language {
	counts := make(map[script.Script]int)
	for _, l := range All() {
		for _, s := range script.All() {
			if l.Scripts().Has(s) {
				counts[s]++
			}
		}
	}
	var langs []Language
	for _, l := range All() {
		single := -1
		unique := true
		n := 0
		for _, s := range script.All() {
			if !l.Scripts().Has(s) {
				continue
			}
			n++
			single = int(s)
			if counts[s] > 1 {
				unique = false
			}
		}
		if n == 1 && unique && single > 0 {
			langs = append(langs, l)
		}
	}
	return langs
}
