// Package insight assembles the descriptive report for one text. It does not
// look at classifier output.
package insight

import (
	"github.com/dtnitsch/fake-news-detector/models"
	"github.com/dtnitsch/fake-news-detector/pkg/analytics"
	"github.com/dtnitsch/fake-news-detector/pkg/sentiment"
)

type Analyzer struct {
	analytics *analytics.Analytics
	sentiment sentiment.Provider
	topWords  int
	minLength int
}

type Option func(*Analyzer)

// WithTopWords sets how many frequent words are reported.
func WithTopWords(k int) Option {
	return func(a *Analyzer) { a.topWords = k }
}

// WithMinWordLength sets the minimum rune length of a reported word.
func WithMinWordLength(n int) Option {
	return func(a *Analyzer) { a.minLength = n }
}

// NewAnalyzer builds an analyzer. A nil provider is treated as unavailable.
func NewAnalyzer(provider sentiment.Provider, opts ...Option) *Analyzer {
	if provider == nil {
		provider = sentiment.Unavailable{}
	}
	a := &Analyzer{
		analytics: &analytics.Analytics{},
		sentiment: provider,
		topWords:  analytics.DefaultTopWords,
		minLength: analytics.DefaultMinWordLength,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// SentimentAvailable reports which provider variant was selected.
func (a *Analyzer) SentimentAvailable() bool {
	return a.sentiment.Available()
}

// Analyze computes the report. It never fails.
func (a *Analyzer) Analyze(text string) models.InsightReport {
	return models.InsightReport{
		WordCount:     a.analytics.WordCount(text),
		SentenceCount: a.analytics.SentenceCount(text),
		Sentiment:     sentiment.Analyze(a.sentiment, text),
		TopWords:      a.analytics.TopWords(text, a.topWords, a.minLength),
	}
}
