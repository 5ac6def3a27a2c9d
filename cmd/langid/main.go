// Command langid identifies the language of text from the command
// line.
//
//	langid detect "This is a test sentence written in English."
//	echo "Bonjour tout le monde" | langid detect
//	langid confidence --top 5 "Hola, ¿qué tal?"
//	langid languages
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "langid",
	Short: "Statistical natural-language identification",
	Long:  `langid detects which natural language a text is written in using per-language n-gram frequency models.`,
}

func main() {
	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(confidenceCmd)
	rootCmd.AddCommand(languagesCmd)

	rootCmd.PersistentFlags().StringSlice("languages", nil, "restrict candidates to these language names (default: all)")
	rootCmd.PersistentFlags().Float64("min-distance", 0.0, "minimum relative distance between the top two confidences")
	rootCmd.PersistentFlags().Bool("low-accuracy", false, "cap scoring at trigrams (faster, less precise)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
