package detect

import (
	"unicode"
	"unicode/utf8"

	"github.com/az-ai-labs/langid/language"
)

// SpanResult is a run of words attributed to a single language inside
// mixed-language text. Start and End are byte offsets into the input;
// End is exclusive.
type SpanResult struct {
	Language language.Language
	Start    int
	End      int
}

// minSpanWordRunes is the minimum word length that may carry its own
// language vote; shorter words (articles, particles) follow their
// neighbors.
const minSpanWordRunes = 3

// DetectMultipleLanguages segments text into maximal runs of words
// that are most likely written in the same language. Texts in a
// single language come back as one span covering all words; inputs
// with no detectable words yield an empty result. Invalid UTF-8 fails
// with an InputError.
func (d *Detector) DetectMultipleLanguages(text string) ([]SpanResult, error) {
	if !utf8.ValidString(text) {
		return nil, &InputError{msg: "input is not valid UTF-8"}
	}

	words := splitWords(text)
	if len(words) == 0 {
		return nil, nil
	}

	// Vote per word, then merge neighbors. Short or unscorable words
	// vote Unknown and are absorbed by the surrounding run.
	votes := make([]language.Language, len(words))
	for i, w := range words {
		votes[i] = d.wordVote(text[w.start:w.end])
	}

	var spans []SpanResult
	for i := 0; i < len(words); i++ {
		lang := votes[i]
		if lang == language.Unknown {
			continue
		}
		start := words[i].start
		end := words[i].end
		j := i + 1
		for ; j < len(words); j++ {
			if votes[j] != language.Unknown && votes[j] != lang {
				break
			}
			end = words[j].end
		}
		spans = append(spans, SpanResult{Language: lang, Start: start, End: end})
		i = j - 1
	}

	if spans == nil {
		// Every word voted Unknown; fall back to whole-text detection.
		lang, err := d.DetectLanguage(text)
		if err != nil || lang == language.Unknown {
			return nil, err
		}
		spans = []SpanResult{{
			Language: lang,
			Start:    words[0].start,
			End:      words[len(words)-1].end,
		}}
	}
	return spans, nil
}

// wordVote detects the language of a single word, or Unknown when the
// word is too short or too ambiguous to vote.
func (d *Detector) wordVote(word string) language.Language {
	if utf8.RuneCountInString(word) < minSpanWordRunes {
		return language.Unknown
	}
	lang, err := d.DetectLanguage(word)
	if err != nil {
		return language.Unknown
	}
	return lang
}

// wordSpan is a maximal letter run located by byte offsets.
type wordSpan struct {
	start, end int
}

func splitWords(text string) []wordSpan {
	var words []wordSpan
	start := -1
	for i, r := range text {
		if unicode.IsLetter(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			words = append(words, wordSpan{start: start, end: i})
			start = -1
		}
	}
	if start >= 0 {
		words = append(words, wordSpan{start: start, end: len(text)})
	}
	return words
}
