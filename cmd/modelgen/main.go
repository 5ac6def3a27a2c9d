// Command modelgen trains the n-gram frequency models embedded in the
// model package from the per-language corpus files in cmd/modelgen/corpus.
//
// Run from the project root:
//
//	go run ./cmd/modelgen
//
// Output: model/assets/<iso639-1>.bin, one msgpack-encoded model per
// language (commit these files). Regenerate after editing a corpus.
// The corpus files must match the supported language set exactly: a
// missing or extra file is an error.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/az-ai-labs/langid/internal/ngram"
	"github.com/az-ai-labs/langid/internal/textprep"
	"github.com/az-ai-labs/langid/language"
	"github.com/az-ai-labs/langid/model"
)

const (
	defaultCorpusDir = "cmd/modelgen/corpus"
	defaultOutDir    = "model/assets"
)

// payload mirrors the asset layout decoded by the model package.
type payload struct {
	Schema   uint8                        `msgpack:"schema"`
	Language string                       `msgpack:"language"`
	Ngrams   map[uint8]map[string]float64 `msgpack:"ngrams"`
}

func main() {
	corpusDir := flag.String("corpus", defaultCorpusDir, "directory with <iso639-1>.txt corpus files")
	outDir := flag.String("out", defaultOutDir, "output directory for model assets")
	flag.Parse()

	if err := run(*corpusDir, *outDir); err != nil {
		fmt.Fprintf(os.Stderr, "modelgen: %v\n", err)
		os.Exit(1)
	}
}

func run(corpusDir, outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	for _, lang := range language.All() {
		iso := lang.ISO6391()
		text, err := os.ReadFile(filepath.Join(corpusDir, iso+".txt"))
		if err != nil {
			return fmt.Errorf("corpus for %s: %w", lang, err)
		}
		data, stats, err := train(lang, string(text))
		if err != nil {
			return err
		}
		out := filepath.Join(outDir, iso+".bin")
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return err
		}
		fmt.Printf("%s  %-12s runes=%-6d tables=%v\n", iso, lang, stats.runes, stats.sizes)
	}
	return nil
}

type trainStats struct {
	runes int
	sizes [ngram.MaxOrder]int
}

// train builds and encodes one language model from corpus text.
func train(lang language.Language, text string) ([]byte, trainStats, error) {
	runes := textprep.Prepare(text)
	if len(runes) < ngram.MaxOrder {
		return nil, trainStats{}, fmt.Errorf("corpus for %s too small (%d runes)", lang, len(runes))
	}

	stats := trainStats{runes: len(runes)}
	tables := make(map[uint8]map[string]float64, ngram.MaxOrder)
	for order := 1; order <= ngram.MaxOrder; order++ {
		counts := ngram.Count(runes, order)
		var total int
		for _, c := range counts {
			total += c
		}
		table := make(map[string]float64, len(counts))
		for g, c := range counts {
			table[g] = float64(c) / float64(total)
		}
		tables[uint8(order)] = table
		stats.sizes[order-1] = len(table)
	}

	data, err := msgpack.Marshal(payload{
		Schema:   model.SchemaVersion,
		Language: lang.String(),
		Ngrams:   tables,
	})
	if err != nil {
		return nil, trainStats{}, fmt.Errorf("encode %s: %w", lang, err)
	}
	return data, stats, nil
}
