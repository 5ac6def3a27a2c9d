//go:build ignore

// e2e_pipeline exercises the full detection stack end to end and writes
// structured results to e2e_results.log.
// Run from the project root:
//
//	go run e2e/e2e_pipeline.go
package main

import (
	"bufio"
	"fmt"
	"log"
	"math"
	"os"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/az-ai-labs/langid/detect"
	"github.com/az-ai-labs/langid/language"
	"github.com/az-ai-labs/langid/script"
)

// ---------- constants ----------

const (
	logPath      = "e2e_results.log"
	maxDetailLen = 200
	concWorkers  = 8
	concIter     = 100
	separator    = "=========================================================="
)

// ---------- test corpus ----------

var samples = []struct {
	text string
	want language.Language
}{
	{"This is a test sentence written in English.", language.English},
	{"Je ne sais pas pourquoi il est parti si tôt hier soir.", language.French},
	{"El gato negro duerme tranquilamente sobre la mesa de la cocina.", language.Spanish},
	{"O cachorro correu pela praia durante a manhã inteira.", language.Portuguese},
	{"Ich habe gestern ein sehr interessantes Buch über Geschichte gelesen.", language.German},
	{"Het is vandaag een mooie dag om naar het strand te gaan.", language.Dutch},
	{"La vita è bella e il sole splende sopra la città antica.", language.Italian},
	{"Jag skulle vilja ha en kopp kaffe och en smörgås, tack.", language.Swedish},
	{"Minä rakastan suomalaista luontoa ja pitkiä kesäpäiviä järvellä.", language.Finnish},
	{"Wczoraj wieczorem poszliśmy do kina na bardzo dobry film.", language.Polish},
	{"Bugün hava çok güzel, parkta yürüyüş yapmak istiyorum.", language.Turkish},
	{"Mən bu gün bazara gedib təzə meyvə almaq istəyirəm.", language.Azerbaijani},
	{"Сегодня хорошая погода, и мы пойдём гулять в парк.", language.Russian},
	{"Сьогодні гарна погода, і ми підемо гуляти в парк.", language.Ukrainian},
	{"Днес времето е хубаво и ще отидем на разходка в парка.", language.Bulgarian},
	{"Γειά σου! Αυτό το κείμενο είναι στα ελληνικά.", language.Greek},
	{"مرحبا كيف حالك اليوم؟", language.Arabic},
	{"שלום, מה שלומך היום?", language.Hebrew},
	{"今天天气很好，我们去公园散步吧。", language.Chinese},
	{"今日はとても良い天気ですね。公園へ散歩に行きましょう。", language.Japanese},
	{"오늘 날씨가 좋아서 공원에 산책하러 갑니다.", language.Korean},
}

const textMixed = "The language detection works today. Γειά σου φίλε μου."

// ---------- types ----------

type testResult struct {
	name     string
	module   string
	passed   bool
	duration time.Duration
	detail   string
}

type moduleReport struct {
	name     string
	tests    int
	passed   int
	failed   int
	duration time.Duration
}

// ---------- helpers ----------

func pass(module, name string, start time.Time) testResult {
	return testResult{name: name, module: module, passed: true, duration: time.Since(start)}
}

func fail(module, name, detail string, start time.Time) testResult {
	return testResult{name: name, module: module, passed: false, duration: time.Since(start), detail: truncate(detail, maxDetailLen)}
}

func truncate(s string, maxRunes int) string {
	n := 0
	for i := range s {
		n++
		if n > maxRunes {
			return s[:i] + "..."
		}
	}
	return s
}

func safeRun(module, name string, fn func() testResult) (r testResult) {
	defer func() {
		if p := recover(); p != nil {
			r = fail(module, name, fmt.Sprintf("PANIC: %v", p), time.Now())
		}
	}()
	return fn()
}

func mustDetector(b *detect.Builder) *detect.Detector {
	d, err := b.Build()
	if err != nil {
		log.Fatalf("cannot build detector: %v", err)
	}
	return d
}

// ---------- test suites ----------

func testBuilder() []testResult {
	const mod = "builder"
	var results []testResult

	results = append(results, safeRun(mod, "all_languages", func() testResult {
		start := time.Now()
		d, err := detect.FromAllLanguages().Build()
		if err != nil {
			return fail(mod, "all_languages", fmt.Sprintf("Build error: %v", err), start)
		}
		if got, want := len(d.Languages()), len(language.All()); got != want {
			return fail(mod, "all_languages", fmt.Sprintf("candidates=%d, want %d", got, want), start)
		}
		return pass(mod, "all_languages", start)
	}))

	results = append(results, safeRun(mod, "iso_codes", func() testResult {
		start := time.Now()
		d, err := detect.FromISOCodes6391("en", "de", "fr").Build()
		if err != nil {
			return fail(mod, "iso_codes", fmt.Sprintf("Build error: %v", err), start)
		}
		if len(d.Languages()) != 3 {
			return fail(mod, "iso_codes", fmt.Sprintf("candidates=%d, want 3", len(d.Languages())), start)
		}
		return pass(mod, "iso_codes", start)
	}))

	results = append(results, safeRun(mod, "rejects_bad_distance", func() testResult {
		start := time.Now()
		_, err := detect.FromAllLanguages().WithMinimumRelativeDistance(1.5).Build()
		if err == nil {
			return fail(mod, "rejects_bad_distance", "distance 1.5 accepted", start)
		}
		return pass(mod, "rejects_bad_distance", start)
	}))

	results = append(results, safeRun(mod, "rejects_empty_set", func() testResult {
		start := time.Now()
		_, err := detect.FromLanguages().Build()
		if err == nil {
			return fail(mod, "rejects_empty_set", "empty candidate set accepted", start)
		}
		return pass(mod, "rejects_empty_set", start)
	}))

	results = append(results, safeRun(mod, "preload", func() testResult {
		start := time.Now()
		_, err := detect.FromAllLanguages().WithPreloadedLanguageModels().Build()
		if err != nil {
			return fail(mod, "preload", fmt.Sprintf("Build error: %v", err), start)
		}
		return pass(mod, "preload", start)
	}))

	return results
}

func testDetect() []testResult {
	const mod = "detect"
	var results []testResult
	d := mustDetector(detect.FromAllLanguages())

	for _, s := range samples {
		name := strings.ToLower(s.want.String())
		results = append(results, safeRun(mod, name, func() testResult {
			start := time.Now()
			got, err := d.DetectLanguage(s.text)
			if err != nil {
				return fail(mod, name, fmt.Sprintf("error: %v", err), start)
			}
			if got != s.want {
				return fail(mod, name, fmt.Sprintf("got %v, want %v", got, s.want), start)
			}
			return pass(mod, name, start)
		}))
	}

	results = append(results, safeRun(mod, "empty_is_unknown", func() testResult {
		start := time.Now()
		got, err := d.DetectLanguage("   ")
		if err != nil {
			return fail(mod, "empty_is_unknown", fmt.Sprintf("error: %v", err), start)
		}
		if got != language.Unknown {
			return fail(mod, "empty_is_unknown", fmt.Sprintf("got %v", got), start)
		}
		return pass(mod, "empty_is_unknown", start)
	}))

	results = append(results, safeRun(mod, "invalid_utf8_rejected", func() testResult {
		start := time.Now()
		if _, err := d.DetectLanguage("abc\xff"); err == nil {
			return fail(mod, "invalid_utf8_rejected", "invalid UTF-8 accepted", start)
		}
		return pass(mod, "invalid_utf8_rejected", start)
	}))

	return results
}

func testConfidence() []testResult {
	const mod = "confidence"
	var results []testResult
	d := mustDetector(detect.FromAllLanguages())

	results = append(results, safeRun(mod, "distribution_sums_to_one", func() testResult {
		start := time.Now()
		for _, s := range samples {
			values, err := d.ConfidenceValues(s.text)
			if err != nil {
				return fail(mod, "distribution_sums_to_one", fmt.Sprintf("error: %v", err), start)
			}
			var sum float64
			for _, v := range values {
				sum += v.Confidence
			}
			if math.Abs(sum-1.0) > 1e-6 {
				return fail(mod, "distribution_sums_to_one",
					fmt.Sprintf("%q: sum=%v", truncate(s.text, 30), sum), start)
			}
		}
		return pass(mod, "distribution_sums_to_one", start)
	}))

	results = append(results, safeRun(mod, "top_matches_detect", func() testResult {
		start := time.Now()
		for _, s := range samples {
			values, err := d.ConfidenceValues(s.text)
			if err != nil || len(values) == 0 {
				return fail(mod, "top_matches_detect", fmt.Sprintf("error: %v", err), start)
			}
			if values[0].Language != s.want {
				return fail(mod, "top_matches_detect",
					fmt.Sprintf("%q: top=%v, want %v", truncate(s.text, 30), values[0].Language, s.want), start)
			}
		}
		return pass(mod, "top_matches_detect", start)
	}))

	results = append(results, safeRun(mod, "single_language_query", func() testResult {
		start := time.Now()
		c, err := d.Confidence(samples[0].text, language.English)
		if err != nil {
			return fail(mod, "single_language_query", fmt.Sprintf("error: %v", err), start)
		}
		if c <= 0.5 {
			return fail(mod, "single_language_query", fmt.Sprintf("confidence=%v, want >0.5", c), start)
		}
		return pass(mod, "single_language_query", start)
	}))

	return results
}

func testDistanceGate() []testResult {
	const mod = "distance"
	var results []testResult

	results = append(results, safeRun(mod, "strict_gate_yields_unknown", func() testResult {
		start := time.Now()
		d := mustDetector(detect.FromAllLanguages().WithMinimumRelativeDistance(0.99))
		got, err := d.DetectLanguage("la casa")
		if err != nil {
			return fail(mod, "strict_gate_yields_unknown", fmt.Sprintf("error: %v", err), start)
		}
		if got != language.Unknown {
			return fail(mod, "strict_gate_yields_unknown", fmt.Sprintf("got %v", got), start)
		}
		return pass(mod, "strict_gate_yields_unknown", start)
	}))

	results = append(results, safeRun(mod, "clear_text_passes_gate", func() testResult {
		start := time.Now()
		d := mustDetector(detect.FromAllLanguages().WithMinimumRelativeDistance(0.5))
		got, err := d.DetectLanguage(samples[0].text)
		if err != nil {
			return fail(mod, "clear_text_passes_gate", fmt.Sprintf("error: %v", err), start)
		}
		if got != language.English {
			return fail(mod, "clear_text_passes_gate", fmt.Sprintf("got %v", got), start)
		}
		return pass(mod, "clear_text_passes_gate", start)
	}))

	return results
}

func testScripts() []testResult {
	const mod = "scripts"
	var results []testResult

	results = append(results, safeRun(mod, "cyrillic_subset", func() testResult {
		start := time.Now()
		d := mustDetector(detect.FromAllLanguagesWithScript(script.Cyrillic))
		for _, l := range d.Languages() {
			found := false
			for _, s := range l.Scripts() {
				if s == script.Cyrillic {
					found = true
				}
			}
			if !found {
				return fail(mod, "cyrillic_subset", fmt.Sprintf("%v has no Cyrillic script", l), start)
			}
		}
		return pass(mod, "cyrillic_subset", start)
	}))

	results = append(results, safeRun(mod, "sole_script_short_circuit", func() testResult {
		start := time.Now()
		d := mustDetector(detect.FromAllLanguages())
		values, err := d.ConfidenceValues("Γειά")
		if err != nil || len(values) == 0 {
			return fail(mod, "sole_script_short_circuit", fmt.Sprintf("error: %v", err), start)
		}
		if values[0].Language != language.Greek || values[0].Confidence != 1.0 {
			return fail(mod, "sole_script_short_circuit",
				fmt.Sprintf("top=%v@%v, want Greek@1.0", values[0].Language, values[0].Confidence), start)
		}
		return pass(mod, "sole_script_short_circuit", start)
	}))

	return results
}

func testSpans() []testResult {
	const mod = "spans"
	var results []testResult
	d := mustDetector(detect.FromAllLanguages())

	results = append(results, safeRun(mod, "mixed_text_two_spans", func() testResult {
		start := time.Now()
		spans, err := d.DetectMultipleLanguages(textMixed)
		if err != nil {
			return fail(mod, "mixed_text_two_spans", fmt.Sprintf("error: %v", err), start)
		}
		if len(spans) != 2 {
			return fail(mod, "mixed_text_two_spans", fmt.Sprintf("got %d spans", len(spans)), start)
		}
		if spans[0].Language != language.English || spans[1].Language != language.Greek {
			return fail(mod, "mixed_text_two_spans",
				fmt.Sprintf("got [%v %v]", spans[0].Language, spans[1].Language), start)
		}
		return pass(mod, "mixed_text_two_spans", start)
	}))

	results = append(results, safeRun(mod, "span_offsets_valid", func() testResult {
		start := time.Now()
		spans, err := d.DetectMultipleLanguages(textMixed)
		if err != nil {
			return fail(mod, "span_offsets_valid", fmt.Sprintf("error: %v", err), start)
		}
		prevEnd := 0
		for _, s := range spans {
			if s.Start < prevEnd || s.End <= s.Start || s.End > len(textMixed) {
				return fail(mod, "span_offsets_valid", fmt.Sprintf("bad span %+v", s), start)
			}
			prevEnd = s.End
		}
		return pass(mod, "span_offsets_valid", start)
	}))

	return results
}

func testParallel() []testResult {
	const mod = "parallel"
	var results []testResult
	d := mustDetector(detect.FromAllLanguages())

	results = append(results, safeRun(mod, "batch_matches_sequential", func() testResult {
		start := time.Now()
		texts := make([]string, len(samples))
		for i, s := range samples {
			texts[i] = s.text
		}
		batch := d.DetectLanguagesInParallel(texts)
		for i, r := range batch {
			if r.Err != nil {
				return fail(mod, "batch_matches_sequential", fmt.Sprintf("slot %d: %v", i, r.Err), start)
			}
			if r.Language != samples[i].want {
				return fail(mod, "batch_matches_sequential",
					fmt.Sprintf("slot %d: got %v, want %v", i, r.Language, samples[i].want), start)
			}
		}
		return pass(mod, "batch_matches_sequential", start)
	}))

	results = append(results, safeRun(mod, "error_isolation", func() testResult {
		start := time.Now()
		batch := d.DetectLanguagesInParallel([]string{samples[0].text, "\xff", samples[1].text})
		if batch[0].Err != nil || batch[2].Err != nil {
			return fail(mod, "error_isolation", "valid slot carries an error", start)
		}
		if batch[1].Err == nil {
			return fail(mod, "error_isolation", "invalid UTF-8 slot has no error", start)
		}
		return pass(mod, "error_isolation", start)
	}))

	return results
}

func testLifecycle() []testResult {
	const mod = "lifecycle"
	var results []testResult

	results = append(results, safeRun(mod, "unload_then_detect", func() testResult {
		start := time.Now()
		d := mustDetector(detect.FromAllLanguages().WithPreloadedLanguageModels())
		d.UnloadLanguageModels()
		got, err := d.DetectLanguage(samples[0].text)
		if err != nil {
			return fail(mod, "unload_then_detect", fmt.Sprintf("error: %v", err), start)
		}
		if got != language.English {
			return fail(mod, "unload_then_detect", fmt.Sprintf("got %v", got), start)
		}
		return pass(mod, "unload_then_detect", start)
	}))

	return results
}

func testConcurrent() []testResult {
	const mod = "concurrent"
	var results []testResult

	results = append(results, safeRun(mod, "all_apis_8_goroutines_x100", func() testResult {
		start := time.Now()
		d := mustDetector(detect.FromAllLanguages())
		var panics atomic.Int64
		var wg sync.WaitGroup

		for range concWorkers {
			wg.Go(func() {
				for i := range concIter {
					func() {
						defer func() {
							if p := recover(); p != nil {
								panics.Add(1)
							}
						}()
						s := samples[i%len(samples)]
						_, _ = d.DetectLanguage(s.text)
						_, _ = d.ConfidenceValues(s.text)
						_, _ = d.Confidence(s.text, s.want)
						_, _ = d.DetectMultipleLanguages(textMixed)
						if i%10 == 0 {
							d.UnloadLanguageModels()
						}
					}()
				}
			})
		}
		wg.Wait()

		if n := panics.Load(); n > 0 {
			return fail(mod, "all_apis_8_goroutines_x100",
				fmt.Sprintf("%d panics detected across goroutines", n), start)
		}
		return pass(mod, "all_apis_8_goroutines_x100", start)
	}))

	return results
}

// ---------- orchestration ----------

func runAllSuites() []testResult {
	suites := []func() []testResult{
		testBuilder,
		testDetect,
		testConfidence,
		testDistanceGate,
		testScripts,
		testSpans,
		testParallel,
		testLifecycle,
		testConcurrent,
	}

	var all []testResult
	for _, suite := range suites {
		all = append(all, suite()...)
	}
	return all
}

func buildReports(results []testResult) []moduleReport {
	order := make(map[string]int)
	var reports []moduleReport

	for _, r := range results {
		idx, exists := order[r.module]
		if !exists {
			idx = len(reports)
			order[r.module] = idx
			reports = append(reports, moduleReport{name: r.module})
		}
		reports[idx].tests++
		reports[idx].duration += r.duration
		if r.passed {
			reports[idx].passed++
		} else {
			reports[idx].failed++
		}
	}
	return reports
}

func writeLog(path string, results []testResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)

	now := time.Now().UTC().Format(time.RFC3339)
	goVer := runtime.Version()
	platform := runtime.GOOS + "/" + runtime.GOARCH

	fmt.Fprintln(bw, separator)
	fmt.Fprintln(bw, "  langid E2E Pipeline Test")
	fmt.Fprintf(bw, "  Timestamp: %s\n", now)
	fmt.Fprintf(bw, "  Go: %s  OS: %s\n", goVer, platform)
	fmt.Fprintf(bw, "  Languages: %d\n", len(language.All()))
	fmt.Fprintln(bw, separator)
	fmt.Fprintln(bw)

	reports := buildReports(results)
	var totalDuration time.Duration
	for _, rep := range reports {
		totalDuration += rep.duration
	}

	// Per-module sections.
	for _, rep := range reports {
		fmt.Fprintf(bw, "[%s] %d tests | %d passed | %d failed | %s\n",
			rep.name, rep.tests, rep.passed, rep.failed, rep.duration.Round(time.Microsecond))
		for _, r := range results {
			if r.module != rep.name {
				continue
			}
			status := "PASS"
			if !r.passed {
				status = "FAIL"
			}
			fmt.Fprintf(bw, "  %-6s %-45s %s\n", status, r.name, r.duration.Round(time.Microsecond))
		}
		fmt.Fprintln(bw)
	}

	// Failures section.
	var failures []testResult
	for _, r := range results {
		if !r.passed {
			failures = append(failures, r)
		}
	}
	if len(failures) > 0 {
		fmt.Fprintln(bw, "--- FAILURES ---")
		for _, r := range failures {
			fmt.Fprintf(bw, "  FAIL  [%s] %-40s %s\n", r.module, r.name, r.duration.Round(time.Microsecond))
			if r.detail != "" {
				for line := range strings.SplitSeq(r.detail, "\n") {
					fmt.Fprintf(bw, "        %s\n", line)
				}
			}
		}
		fmt.Fprintln(bw)
	}

	// Summary.
	totalPassed := 0
	totalFailed := 0
	for _, r := range results {
		if r.passed {
			totalPassed++
		} else {
			totalFailed++
		}
	}

	fmt.Fprintln(bw, separator)
	fmt.Fprintf(bw, "  SUMMARY: %d tests | %d passed | %d failed | %s\n",
		len(results), totalPassed, totalFailed, totalDuration.Round(time.Microsecond))
	fmt.Fprintln(bw, separator)

	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printSummary(results []testResult) {
	reports := buildReports(results)
	totalPassed := 0
	totalFailed := 0
	var totalDuration time.Duration

	for _, rep := range reports {
		totalPassed += rep.passed
		totalFailed += rep.failed
		totalDuration += rep.duration

		status := "OK"
		if rep.failed > 0 {
			status = "FAIL"
		}
		log.Printf("  %-12s %d/%d %s", rep.name, rep.passed, rep.tests, status)
	}

	log.Printf("")
	log.Printf("  %d tests | %d passed | %d failed | %s",
		len(results), totalPassed, totalFailed, totalDuration.Round(time.Microsecond))

	for _, r := range results {
		if !r.passed {
			log.Printf("  FAIL [%s] %s: %s", r.module, r.name, r.detail)
		}
	}
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("[e2e] ")

	log.Printf("starting E2E pipeline test (%d languages)", len(language.All()))
	totalStart := time.Now()

	results := runAllSuites()

	log.Printf("completed in %s", time.Since(totalStart).Round(time.Microsecond))
	log.Printf("")

	printSummary(results)

	if err := writeLog(logPath, results); err != nil {
		log.Fatalf("cannot write log: %v", err)
	}
	log.Printf("log written to %s", logPath)

	for _, r := range results {
		if !r.passed {
			os.Exit(1)
		}
	}
}
