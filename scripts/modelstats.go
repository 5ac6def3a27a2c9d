//go:build ignore

// modelstats reports the size and shape of every embedded language
// model: n-gram counts per order, total entries, and the heaviest
// unigrams. Run from the project root:
//
//	go run scripts/modelstats.go
package main

import (
	"fmt"
	"log"
	"sort"

	"github.com/az-ai-labs/langid/language"
	"github.com/az-ai-labs/langid/model"
)

const topUnigrams = 5

func main() {
	log.SetFlags(0)
	log.SetPrefix("[modelstats] ")

	store := model.NewStore()
	grandTotal := 0

	for _, lang := range language.All() {
		m, err := store.Get(lang)
		if err != nil {
			log.Fatalf("cannot load model for %v: %v", lang, err)
		}

		total := 0
		fmt.Printf("%-12s", lang)
		for order := 1; order <= 5; order++ {
			n := m.EntryCount(order)
			total += n
			fmt.Printf("  %d-gram:%6d", order, n)
		}
		fmt.Printf("  total:%7d\n", total)
		grandTotal += total

		printTopUnigrams(m)
	}

	log.Printf("%d languages, %d n-gram entries", len(language.All()), grandTotal)
}

func printTopUnigrams(m *model.Model) {
	type entry struct {
		gram string
		freq float64
	}
	var entries []entry
	for _, gram := range m.Grams(1) {
		f, _ := m.Frequency(gram, 1)
		entries = append(entries, entry{gram, f})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].freq != entries[j].freq {
			return entries[i].freq > entries[j].freq
		}
		return entries[i].gram < entries[j].gram
	})
	if len(entries) > topUnigrams {
		entries = entries[:topUnigrams]
	}
	fmt.Printf("             top unigrams:")
	for _, e := range entries {
		fmt.Printf("  %q %.4f", e.gram, e.freq)
	}
	fmt.Println()
}
