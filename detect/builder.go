package detect

import (
	"sort"

	"github.com/az-ai-labs/langid/language"
	"github.com/az-ai-labs/langid/model"
	"github.com/az-ai-labs/langid/script"
)

// Builder assembles and validates a detector configuration. Each
// option validates its argument when applied; the first invalid
// argument is remembered and surfaces as a ConfigError from Build.
// A builder may be discarded or reused after Build.
type Builder struct {
	langs       []language.Language
	minDistance float64
	lowAccuracy bool
	preload     bool
	err         error
}

// FromAllLanguages seeds a builder with every supported language.
func FromAllLanguages() *Builder {
	return &Builder{langs: language.All()}
}

// FromLanguages seeds a builder with an explicit candidate set.
// The set must be non-empty and contain no Unknown entries.
func FromLanguages(langs ...language.Language) *Builder {
	b := &Builder{}
	if len(langs) == 0 {
		b.err = configErrorf("candidate language set must not be empty")
		return b
	}
	seen := make(map[language.Language]bool, len(langs))
	for _, l := range langs {
		if l == language.Unknown || l.ISO6391() == "" {
			b.err = configErrorf("unsupported language %v", l)
			return b
		}
		if !seen[l] {
			seen[l] = true
			b.langs = append(b.langs, l)
		}
	}
	sortByName(b.langs)
	return b
}

// FromLanguageNames seeds a builder from display names (for example
// "English"). Unrecognized names fail with a ConfigError at Build.
func FromLanguageNames(names ...string) *Builder {
	if len(names) == 0 {
		return &Builder{err: configErrorf("candidate language set must not be empty")}
	}
	langs := make([]language.Language, 0, len(names))
	for _, name := range names {
		l, ok := language.FromName(name)
		if !ok || l == language.Unknown {
			return &Builder{err: configErrorf("unknown language: %q", name)}
		}
		langs = append(langs, l)
	}
	return FromLanguages(langs...)
}

// FromAllLanguagesWithout seeds a builder with every supported
// language except the given ones. Removing all languages fails with a
// ConfigError at Build.
func FromAllLanguagesWithout(langs ...language.Language) *Builder {
	excluded := make(map[language.Language]bool, len(langs))
	for _, l := range langs {
		excluded[l] = true
	}
	var kept []language.Language
	for _, l := range language.All() {
		if !excluded[l] {
			kept = append(kept, l)
		}
	}
	if len(kept) == 0 {
		return &Builder{err: configErrorf("candidate language set must not be empty")}
	}
	return FromLanguages(kept...)
}

// FromAllLanguagesWithScript seeds a builder with every language
// written in the given script.
func FromAllLanguagesWithScript(s script.Script) *Builder {
	langs := language.AllWithScript(s)
	if len(langs) == 0 {
		return &Builder{err: configErrorf("no supported language uses script %v", s)}
	}
	return FromLanguages(langs...)
}

// FromISOCodes6391 seeds a builder from two-letter ISO 639-1 codes.
func FromISOCodes6391(codes ...string) *Builder {
	if len(codes) == 0 {
		return &Builder{err: configErrorf("candidate language set must not be empty")}
	}
	langs := make([]language.Language, 0, len(codes))
	for _, code := range codes {
		l, ok := language.FromISO6391(code)
		if !ok {
			return &Builder{err: configErrorf("unknown ISO 639-1 code: %q", code)}
		}
		langs = append(langs, l)
	}
	return FromLanguages(langs...)
}

// FromISOCodes6393 seeds a builder from three-letter ISO 639-3 codes.
func FromISOCodes6393(codes ...string) *Builder {
	if len(codes) == 0 {
		return &Builder{err: configErrorf("candidate language set must not be empty")}
	}
	langs := make([]language.Language, 0, len(codes))
	for _, code := range codes {
		l, ok := language.FromISO6393(code)
		if !ok {
			return &Builder{err: configErrorf("unknown ISO 639-3 code: %q", code)}
		}
		langs = append(langs, l)
	}
	return FromLanguages(langs...)
}

// WithMinimumRelativeDistance sets the minimum normalized gap between
// the two best confidences required before DetectLanguage commits to a
// single answer. d must lie in [0.0, 1.0); out-of-range values fail
// with a ConfigError at Build.
func (b *Builder) WithMinimumRelativeDistance(d float64) *Builder {
	if b.err == nil && (d < 0.0 || d >= 1.0 || d != d) {
		b.err = configErrorf("minimum relative distance %v outside [0.0, 1.0)", d)
		return b
	}
	b.minDistance = d
	return b
}

// WithLowAccuracyMode caps scoring at trigram order, trading accuracy
// for roughly 40% less work per call.
func (b *Builder) WithLowAccuracyMode() *Builder {
	b.lowAccuracy = true
	return b
}

// WithPreloadedLanguageModels loads every candidate model during
// Build instead of on first use.
func (b *Builder) WithPreloadedLanguageModels() *Builder {
	b.preload = true
	return b
}

// Build validates the accumulated configuration and constructs an
// immutable Detector sharing the process-wide model store.
func (b *Builder) Build() (*Detector, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.langs) == 0 {
		return nil, configErrorf("candidate language set must not be empty")
	}

	d := &Detector{
		langs:       append([]language.Language(nil), b.langs...),
		candidates:  make(map[language.Language]bool, len(b.langs)),
		minDistance: b.minDistance,
		lowAccuracy: b.lowAccuracy,
		store:       model.Shared(),
	}
	for _, l := range d.langs {
		d.candidates[l] = true
	}
	if b.preload {
		if err := d.store.Preload(d.langs...); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func sortByName(langs []language.Language) {
	sort.Slice(langs, func(i, j int) bool {
		return langs[i].String() < langs[j].String()
	})
}
