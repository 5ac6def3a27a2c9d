package model

import (
	"errors"
	"sync"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/az-ai-labs/langid/internal/ngram"
	"github.com/az-ai-labs/langid/language"
)

func TestGetLoadsEveryLanguage(t *testing.T) {
	t.Parallel()
	store := NewStore()
	for _, lang := range language.All() {
		m, err := store.Get(lang)
		if err != nil {
			t.Fatalf("Get(%v): %v", lang, err)
		}
		if m.Language() != lang {
			t.Errorf("Get(%v): model reports %v", lang, m.Language())
		}
		for order := 1; order <= ngram.MaxOrder; order++ {
			if len(m.tables[order]) == 0 {
				t.Errorf("%v: empty order-%d table", lang, order)
			}
		}
	}
}

func TestGetReturnsSharedModel(t *testing.T) {
	t.Parallel()
	store := NewStore()
	a, err := store.Get(language.English)
	if err != nil {
		t.Fatal(err)
	}
	b, err := store.Get(language.English)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("second Get returned a different model instance")
	}
}

func TestFrequency(t *testing.T) {
	t.Parallel()
	store := NewStore()
	m, err := store.Get(language.English)
	if err != nil {
		t.Fatal(err)
	}

	f, ok := m.Frequency("e", 1)
	if !ok {
		t.Fatal(`unigram "e" missing from the English model`)
	}
	if f <= 0 || f > 1 {
		t.Errorf(`Frequency("e"): %v outside (0, 1]`, f)
	}

	if _, ok := m.Frequency("ß", 1); ok {
		t.Error(`unigram "ß" unexpectedly present in the English model`)
	}
	if _, ok := m.Frequency("e", 0); ok {
		t.Error("order 0 lookup must miss")
	}
	if _, ok := m.Frequency("e", ngram.MaxOrder+1); ok {
		t.Error("out-of-range order lookup must miss")
	}
}

func TestEntryCountAndGrams(t *testing.T) {
	t.Parallel()
	store := NewStore()
	m, err := store.Get(language.English)
	if err != nil {
		t.Fatal(err)
	}
	for order := 1; order <= ngram.MaxOrder; order++ {
		n := m.EntryCount(order)
		if n == 0 {
			t.Errorf("order %d: EntryCount is 0", order)
		}
		grams := m.Grams(order)
		if len(grams) != n {
			t.Errorf("order %d: %d grams, EntryCount %d", order, len(grams), n)
		}
	}
	if m.EntryCount(0) != 0 || m.Grams(ngram.MaxOrder+1) != nil {
		t.Error("out-of-range order must report nothing")
	}
}

func TestUnloadReload(t *testing.T) {
	t.Parallel()
	store := NewStore()
	a, err := store.Get(language.Finnish)
	if err != nil {
		t.Fatal(err)
	}
	store.Unload(language.Finnish)
	b, err := store.Get(language.Finnish)
	if err != nil {
		t.Fatalf("reload after Unload: %v", err)
	}
	if a == b {
		t.Error("Unload did not drop the loaded model")
	}
}

func TestConcurrentGet(t *testing.T) {
	t.Parallel()
	store := NewStore()
	const workers = 16

	models := make([]*Model, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			m, err := store.Get(language.Korean)
			if err != nil {
				t.Errorf("Get: %v", err)
				return
			}
			models[i] = m
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		if models[i] != models[0] {
			t.Fatal("concurrent first use loaded more than one model instance")
		}
	}
}

func TestDecodeSchemaMismatch(t *testing.T) {
	t.Parallel()
	data, err := msgpack.Marshal(payload{
		Schema:   SchemaVersion + 1,
		Language: "English",
		Ngrams:   map[uint8]map[string]float64{1: {"e": 0.1}},
	})
	if err != nil {
		t.Fatal(err)
	}
	_, err = decode(language.English, data)
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("got %v, want *LoadError", err)
	}
	if loadErr.Language != language.English {
		t.Errorf("LoadError.Language: got %v", loadErr.Language)
	}
}

func TestDecodeWrongLanguage(t *testing.T) {
	t.Parallel()
	tables := make(map[uint8]map[string]float64)
	for order := uint8(1); order <= ngram.MaxOrder; order++ {
		tables[order] = map[string]float64{"e": 0.1}
	}
	data, err := msgpack.Marshal(payload{
		Schema:   SchemaVersion,
		Language: "French",
		Ngrams:   tables,
	})
	if err != nil {
		t.Fatal(err)
	}
	var loadErr *LoadError
	if _, err := decode(language.English, data); !errors.As(err, &loadErr) {
		t.Fatalf("got %v, want *LoadError", err)
	}
}

func TestDecodeCorrupt(t *testing.T) {
	t.Parallel()
	var loadErr *LoadError
	if _, err := decode(language.English, []byte("\xc1 not msgpack")); !errors.As(err, &loadErr) {
		t.Fatalf("got %v, want *LoadError", err)
	}
}

func TestDecodeMissingOrder(t *testing.T) {
	t.Parallel()
	data, err := msgpack.Marshal(payload{
		Schema:   SchemaVersion,
		Language: "English",
		Ngrams:   map[uint8]map[string]float64{1: {"e": 0.1}}, // orders 2..5 absent
	})
	if err != nil {
		t.Fatal(err)
	}
	var loadErr *LoadError
	if _, err := decode(language.English, data); !errors.As(err, &loadErr) {
		t.Fatalf("got %v, want *LoadError", err)
	}
}
