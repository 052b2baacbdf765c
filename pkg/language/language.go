// Package language guards against text in a language the vectorizer was not
// fitted on. Detection never blocks classification; it only annotates it.
package language

import (
	"strings"

	"github.com/dtnitsch/fake-news-detector/models"
	"github.com/pemistahl/lingua-go"
)

// DefaultLanguages are the candidates considered when none are configured.
var DefaultLanguages = []lingua.Language{
	lingua.English,
	lingua.French,
	lingua.German,
	lingua.Spanish,
	lingua.Portuguese,
	lingua.Italian,
	lingua.Dutch,
}

// Detector wraps a lingua detector. It is safe for concurrent use.
type Detector struct {
	detector lingua.LanguageDetector
	expected string
}

// NewDetector builds a detector expecting the given ISO 639-1 code.
func NewDetector(expected string, languages ...lingua.Language) *Detector {
	if len(languages) == 0 {
		languages = DefaultLanguages
	}
	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(languages...).
			Build(),
		expected: strings.ToLower(expected),
	}
}

// Detect reports the most likely language of text. When no language can be
// determined the text is treated as supported.
func (d *Detector) Detect(text string) models.LanguageReport {
	report := models.LanguageReport{
		Expected:  d.expected,
		Supported: true,
	}

	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return report
	}

	report.Code = strings.ToLower(lang.IsoCode639_1().String())
	report.Name = lang.String()
	report.Confidence = d.detector.ComputeLanguageConfidence(text, lang)
	report.Supported = report.Code == d.expected
	return report
}
