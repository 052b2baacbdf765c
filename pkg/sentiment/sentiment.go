// Package sentiment scores text polarity in [-1, 1]. The provider is chosen
// once at startup: a lexicon scorer, or Unavailable when sentiment is disabled.
package sentiment

import (
	"github.com/dtnitsch/fake-news-detector/models"
)

const (
	PositiveThreshold = 0.1
	NegativeThreshold = -0.1
)

// Provider computes a polarity score for a string.
type Provider interface {
	Available() bool
	Polarity(text string) float64
}

// Bucket maps a polarity score to a label. Both thresholds are exclusive.
func Bucket(score float64) models.SentimentLabel {
	switch {
	case score > PositiveThreshold:
		return models.SentimentPositive
	case score < NegativeThreshold:
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}

// Analyze scores text with p. An unavailable provider degrades to neutral.
func Analyze(p Provider, text string) models.SentimentResult {
	if p == nil || !p.Available() {
		return models.SentimentResult{Label: models.SentimentNeutral}
	}
	score := p.Polarity(text)
	return models.SentimentResult{
		Label:     Bucket(score),
		Score:     score,
		Available: true,
	}
}

// Unavailable stands in when no sentiment engine is configured.
type Unavailable struct{}

func (Unavailable) Available() bool { return false }

func (Unavailable) Polarity(string) float64 { return 0 }
