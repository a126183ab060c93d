// Package language detects the content language of a snapshot's visible
// text, feeding the accessibility hints of an analysis.
package language

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/pemistahl/lingua-go"
)

// minTextLength is the shortest text worth running detection on; below it
// the detector guesses and the hint does more harm than good.
const minTextLength = 20

// candidates restricts detection to languages commonly seen in the design
// exports we process. A narrower set keeps the detector accurate on the
// short marketing copy typical for component snapshots.
var candidates = []lingua.Language{
	lingua.English,
	lingua.German,
	lingua.French,
	lingua.Spanish,
	lingua.Italian,
	lingua.Portuguese,
	lingua.Dutch,
	lingua.Swedish,
	lingua.Danish,
	lingua.Polish,
	lingua.Japanese,
	lingua.Chinese,
}

var (
	detectorOnce sync.Once
	detector     lingua.LanguageDetector
)

// Detect returns the lowercase ISO 639-1 code of the text's language, or ""
// when the text is too short or no candidate language fits. The underlying
// detector loads its language models once and is reused across calls.
func Detect(text string) string {
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) < minTextLength {
		return ""
	}

	detectorOnce.Do(func() {
		detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(candidates...).
			Build()
	})

	lang, ok := detector.DetectLanguageOf(text)
	if !ok {
		return ""
	}
	return strings.ToLower(lang.IsoCode639_1().String())
}
