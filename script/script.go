// Package script classifies characters by writing system and filters
// candidate languages by script compatibility.
//
// Classification is a coarse bucketing of letters into the nine scripts
// used by the supported languages (Latin, Cyrillic, Greek, Arabic,
// Hebrew, Han, Hiragana, Katakana, Hangul). It is the cheap first stage
// of language detection: a text written entirely in Greek letters rules
// out every non-Greek language before any statistical scoring runs.
//
// All functions are safe for concurrent use by multiple goroutines.
package script

import (
	"fmt"
	"unicode"
)

// Script identifies a writing system.
type Script int

const (
	Unknown  Script = iota // zero value, not a letter or unsupported script
	Latin
	Cyrillic
	Greek
	Arabic
	Hebrew
	Han
	Hiragana
	Katakana
	Hangul
)

// scriptNames maps Script values to their ISO 15924 string codes.
var scriptNames = [...]string{
	Unknown:  "",
	Latin:    "Latn",
	Cyrillic: "Cyrl",
	Greek:    "Grek",
	Arabic:   "Arab",
	Hebrew:   "Hebr",
	Han:      "Hani",
	Hiragana: "Hira",
	Katakana: "Kana",
	Hangul:   "Hang",
}

// rangeTables maps each supported Script to its Unicode range table.
var rangeTables = [...]*unicode.RangeTable{
	Latin:    unicode.Latin,
	Cyrillic: unicode.Cyrillic,
	Greek:    unicode.Greek,
	Arabic:   unicode.Arabic,
	Hebrew:   unicode.Hebrew,
	Han:      unicode.Han,
	Hiragana: unicode.Hiragana,
	Katakana: unicode.Katakana,
	Hangul:   unicode.Hangul,
}

// All lists every supported script in declaration order.
func All() []Script {
	return []Script{Latin, Cyrillic, Greek, Arabic, Hebrew, Han, Hiragana, Katakana, Hangul}
}

// String returns the ISO 15924 code of the script, or "" for Unknown.
func (s Script) String() string {
	if int(s) >= 0 && int(s) < len(scriptNames) {
		return scriptNames[s]
	}
	return fmt.Sprintf("Script(%d)", int(s))
}

// ForRune returns the script bucket of r, or Unknown when r is not a
// letter of a supported script.
func ForRune(r rune) Script {
	if !unicode.IsLetter(r) {
		return Unknown
	}
	for s := Latin; s <= Hangul; s++ {
		if unicode.Is(rangeTables[s], r) {
			return s
		}
	}
	return Unknown
}

// Set is a bit set of scripts.
type Set uint16

// Add returns the set with s included.
func (ss Set) Add(s Script) Set {
	if s == Unknown {
		return ss
	}
	return ss | 1<<uint(s)
}

// Has reports whether s is in the set.
func (ss Set) Has(s Script) bool {
	return ss&(1<<uint(s)) != 0
}

// Intersects reports whether the two sets share at least one script.
func (ss Set) Intersects(other Set) bool {
	return ss&other != 0
}

// Empty reports whether the set contains no scripts.
func (ss Set) Empty() bool {
	return ss == 0
}

// SetOf builds a Set from the given scripts.
func SetOf(scripts ...Script) Set {
	var ss Set
	for _, s := range scripts {
		ss = ss.Add(s)
	}
	return ss
}

// Census scans s and returns the set of scripts its letters belong to.
// Non-letter runes and letters of unsupported scripts are ignored.
func Census(s string) Set {
	var ss Set
	for _, r := range s {
		ss = ss.Add(ForRune(r))
	}
	return ss
}
