package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/az-ai-labs/langid/detect"
	"github.com/az-ai-labs/langid/language"
)

var detectCmd = &cobra.Command{
	Use:   "detect [text...]",
	Short: "Report the most likely language of the input",
	Long: `Detect reads text from the arguments, or from stdin when no
arguments are given (one input per line), and prints the most likely
language per input. Ambiguous inputs print "Unknown".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		detector, err := buildDetector(cmd)
		if err != nil {
			return err
		}
		texts, err := gatherInputs(args, cmd.InOrStdin())
		if err != nil {
			return err
		}
		for _, r := range detector.DetectLanguagesInParallel(texts) {
			if r.Err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "langid: %v\n", r.Err)
				continue
			}
			printLanguage(cmd.OutOrStdout(), r.Language)
		}
		return nil
	},
}

var confidenceCmd = &cobra.Command{
	Use:   "confidence [text...]",
	Short: "Print the confidence distribution over the candidate set",
	RunE: func(cmd *cobra.Command, args []string) error {
		top, _ := cmd.Flags().GetInt("top")
		detector, err := buildDetector(cmd)
		if err != nil {
			return err
		}
		texts, err := gatherInputs(args, cmd.InOrStdin())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, r := range detector.ConfidenceValuesInParallel(texts) {
			if r.Err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "langid: %v\n", r.Err)
				continue
			}
			values := r.Values
			if top > 0 && top < len(values) {
				values = values[:top]
			}
			for _, v := range values {
				fmt.Fprintf(out, "%-12s %.4f\n", v.Language, v.Confidence)
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List every supported language",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, l := range language.All() {
			fmt.Fprintf(out, "%-12s %s  %s\n", l, l.ISO6391(), l.ISO6393())
		}
		return nil
	},
}

func init() {
	confidenceCmd.Flags().Int("top", 0, "print only the N most likely languages (0 = all)")
}

// buildDetector assembles a detector from the persistent flags.
func buildDetector(cmd *cobra.Command) (*detect.Detector, error) {
	names, _ := cmd.Flags().GetStringSlice("languages")
	minDistance, _ := cmd.Flags().GetFloat64("min-distance")
	lowAccuracy, _ := cmd.Flags().GetBool("low-accuracy")

	var builder *detect.Builder
	if len(names) > 0 {
		builder = detect.FromLanguageNames(names...)
	} else {
		builder = detect.FromAllLanguages()
	}
	builder = builder.WithMinimumRelativeDistance(minDistance)
	if lowAccuracy {
		builder = builder.WithLowAccuracyMode()
	}
	return builder.Build()
}

// gatherInputs returns the args as inputs, or reads one input per
// stdin line when no args are given.
func gatherInputs(args []string, stdin io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var texts []string
	scanner := bufio.NewScanner(stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			texts = append(texts, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return texts, nil
}

func printLanguage(w io.Writer, lang language.Language) {
	if lang == language.Unknown {
		fmt.Fprintln(w, color.YellowString("Unknown"))
		return
	}
	fmt.Fprintln(w, color.GreenString(lang.String()))
}
