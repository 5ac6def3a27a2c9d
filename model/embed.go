package model

import (
	"embed"
	"fmt"

	"github.com/az-ai-labs/langid/language"
)

// assets holds one msgpack-encoded model per language, named by
// ISO 639-1 code. Regenerate with cmd/modelgen.
//
//go:embed assets
var assets embed.FS

// asset returns the raw encoded model for lang.
func asset(lang language.Language) ([]byte, error) {
	data, err := assets.ReadFile(fmt.Sprintf("assets/%s.bin", lang.ISO6391()))
	if err != nil {
		return nil, &LoadError{Language: lang, Reason: "missing asset", Err: err}
	}
	return data, nil
}
