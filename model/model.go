// Package model loads and serves the per-language n-gram frequency
// tables the detector scores against.
//
// Tables are trained offline by cmd/modelgen and shipped as
// msgpack-encoded assets embedded in the binary, one per language.
// Loading is lazy and happens at most once per language; the decoded
// tables are immutable and shared by every detector in the process.
//
// All functions are safe for concurrent use by multiple goroutines.
package model

import (
	"fmt"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/az-ai-labs/langid/internal/ngram"
	"github.com/az-ai-labs/langid/language"
)

// SchemaVersion is the asset format version this package can decode.
// Incremented whenever the payload layout changes; assets carrying a
// different version fail to load rather than misdetect.
const SchemaVersion = 1

// Model holds the immutable n-gram frequency tables of one language,
// orders 1 through ngram.MaxOrder. Frequencies are relative within
// their order and lie in (0, 1].
type Model struct {
	lang   language.Language
	tables [ngram.MaxOrder + 1]map[string]float64
}

// Language returns the language the model was trained for.
func (m *Model) Language() language.Language {
	return m.lang
}

// Frequency returns the relative frequency of g within its order, and
// whether g occurs in the model at all. The order is the rune length
// of g.
func (m *Model) Frequency(g string, order int) (float64, bool) {
	if order < 1 || order > ngram.MaxOrder {
		return 0, false
	}
	f, ok := m.tables[order][g]
	return f, ok
}

// EntryCount returns the number of n-grams stored for the given order.
func (m *Model) EntryCount(order int) int {
	if order < 1 || order > ngram.MaxOrder {
		return 0
	}
	return len(m.tables[order])
}

// Grams returns the n-grams stored for the given order, in no
// particular order.
func (m *Model) Grams(order int) []string {
	if order < 1 || order > ngram.MaxOrder {
		return nil
	}
	grams := make([]string, 0, len(m.tables[order]))
	for g := range m.tables[order] {
		grams = append(grams, g)
	}
	return grams
}

// LoadError reports a missing, corrupt, or version-mismatched model
// asset. It is unrecoverable for the call that triggered it: the cause
// is a packaging defect, not bad input.
type LoadError struct {
	Language language.Language
	Reason   string
	Err      error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("model: load %s: %s: %v", e.Language, e.Reason, e.Err)
	}
	return fmt.Sprintf("model: load %s: %s", e.Language, e.Reason)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// payload is the wire layout of one model asset.
type payload struct {
	Schema   uint8                        `msgpack:"schema"`
	Language string                       `msgpack:"language"`
	Ngrams   map[uint8]map[string]float64 `msgpack:"ngrams"`
}

// decode parses and validates one asset into a Model.
func decode(lang language.Language, data []byte) (*Model, error) {
	var p payload
	if err := msgpack.Unmarshal(data, &p); err != nil {
		return nil, &LoadError{Language: lang, Reason: "corrupt asset", Err: err}
	}
	if p.Schema != SchemaVersion {
		return nil, &LoadError{
			Language: lang,
			Reason:   fmt.Sprintf("schema version %d, want %d", p.Schema, SchemaVersion),
		}
	}
	if p.Language != lang.String() {
		return nil, &LoadError{
			Language: lang,
			Reason:   fmt.Sprintf("asset trained for %q", p.Language),
		}
	}

	m := &Model{lang: lang}
	for order := 1; order <= ngram.MaxOrder; order++ {
		table := p.Ngrams[uint8(order)]
		if len(table) == 0 {
			return nil, &LoadError{
				Language: lang,
				Reason:   fmt.Sprintf("missing order-%d table", order),
			}
		}
		for g, f := range table {
			if f <= 0 || f > 1 {
				return nil, &LoadError{
					Language: lang,
					Reason:   fmt.Sprintf("frequency %v out of range for %q", f, g),
				}
			}
		}
		m.tables[order] = table
	}
	return m, nil
}

// holder guards the at-most-once load of one language's model.
// A mutex rather than sync.Once so Unload can drop the tables and a
// later call can reload them.
type holder struct {
	mu sync.Mutex
	m  *Model
}

// Store hands out shared, lazily loaded models. The zero value is not
// usable; use Shared or NewStore.
type Store struct {
	holders map[language.Language]*holder
}

// NewStore returns an empty store covering every supported language.
func NewStore() *Store {
	s := &Store{holders: make(map[language.Language]*holder, len(language.All()))}
	for _, l := range language.All() {
		s.holders[l] = &holder{}
	}
	return s
}

// shared is the process-wide store. Detectors share it so that two
// detectors configured with overlapping language sets never hold two
// copies of the same tables.
var shared = NewStore()

// Shared returns the process-wide store.
func Shared() *Store {
	return shared
}

// Get returns the model for lang, loading it on first use. Concurrent
// first uses block until a single load completes; the loaded model is
// reused afterwards. Load failures are returned as *LoadError and are
// not cached, so a later call retries.
func (s *Store) Get(lang language.Language) (*Model, error) {
	h, ok := s.holders[lang]
	if !ok {
		return nil, &LoadError{Language: lang, Reason: "unsupported language"}
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.m != nil {
		return h.m, nil
	}
	data, err := asset(lang)
	if err != nil {
		return nil, err
	}
	m, err := decode(lang, data)
	if err != nil {
		return nil, err
	}
	h.m = m
	return m, nil
}

// Preload eagerly loads the models for the given languages, returning
// the first load failure.
func (s *Store) Preload(langs ...language.Language) error {
	for _, l := range langs {
		if _, err := s.Get(l); err != nil {
			return err
		}
	}
	return nil
}

// Unload drops the loaded tables for the given languages. Subsequent
// Get calls reload them from the embedded assets.
func (s *Store) Unload(langs ...language.Language) {
	for _, l := range langs {
		h, ok := s.holders[l]
		if !ok {
			continue
		}
		h.mu.Lock()
		h.m = nil
		h.mu.Unlock()
	}
}
