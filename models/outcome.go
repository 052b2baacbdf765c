package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Label is the binary class predicted by the classifier. Values match the
// class indices the model was trained with.
type Label int

const (
	LabelFake Label = 0
	LabelReal Label = 1
)

func (l Label) String() string {
	switch l {
	case LabelFake:
		return "fake"
	case LabelReal:
		return "real"
	default:
		return fmt.Sprintf("label(%d)", int(l))
	}
}

func (l Label) MarshalText() ([]byte, error) {
	if l != LabelFake && l != LabelReal {
		return nil, fmt.Errorf("invalid label %d", int(l))
	}
	return []byte(l.String()), nil
}

// ClassProbabilities is the posterior over both classes; Fake+Real == 1.
type ClassProbabilities struct {
	Fake float64 `json:"fake" yaml:"fake"`
	Real float64 `json:"real" yaml:"real"`
}

// PredictionResult is the classifier output for one feature vector.
type PredictionResult struct {
	Label         Label              `json:"label" yaml:"label"`
	Confidence    float64            `json:"confidence" yaml:"confidence"` // probability of Label
	Probabilities ClassProbabilities `json:"probabilities" yaml:"probabilities"`
}

// SentimentLabel buckets a polarity score.
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNegative SentimentLabel = "negative"
	SentimentNeutral  SentimentLabel = "neutral"
)

// SentimentResult carries the bucketed polarity. Available is false when no
// sentiment engine was configured, in which case Label is always neutral.
type SentimentResult struct {
	Label     SentimentLabel `json:"label" yaml:"label"`
	Score     float64        `json:"score" yaml:"score"`
	Available bool           `json:"available" yaml:"available"`
}

func (s SentimentResult) String() string {
	if !s.Available {
		return string(SentimentNeutral) + " (unavailable)"
	}
	return string(s.Label)
}

type WordFrequency struct {
	Word  string `json:"word" yaml:"word"`
	Count int    `json:"count" yaml:"count"`
}

// NoTopWords is rendered in place of an empty top-words list.
const NoTopWords = "none"

// TopWords is ordered by descending count, ties in first-occurrence order.
type TopWords []WordFrequency

func (t TopWords) String() string {
	if len(t) == 0 {
		return NoTopWords
	}
	parts := make([]string, len(t))
	for i, wf := range t {
		parts[i] = fmt.Sprintf("%s:%d", wf.Word, wf.Count)
	}
	return strings.Join(parts, ", ")
}

func (t TopWords) MarshalJSON() ([]byte, error) {
	if len(t) == 0 {
		return json.Marshal(NoTopWords)
	}
	return json.Marshal([]WordFrequency(t))
}

func (t TopWords) MarshalYAML() (interface{}, error) {
	if len(t) == 0 {
		return NoTopWords, nil
	}
	return []WordFrequency(t), nil
}

// InsightReport holds descriptive statistics derived from the raw text only.
type InsightReport struct {
	WordCount     int             `json:"word_count" yaml:"word_count"`
	SentenceCount int             `json:"sentence_count" yaml:"sentence_count"`
	Sentiment     SentimentResult `json:"sentiment" yaml:"sentiment"`
	TopWords      TopWords        `json:"top_words" yaml:"top_words"`
}

// LanguageReport is attached when the language guard is enabled.
type LanguageReport struct {
	Code       string  `json:"code" yaml:"code"` // ISO 639-1, lowercase; empty if undetected
	Name       string  `json:"name,omitempty" yaml:"name,omitempty"`
	Confidence float64 `json:"confidence" yaml:"confidence"`
	Expected   string  `json:"expected" yaml:"expected"`
	Supported  bool    `json:"supported" yaml:"supported"`
}

// AnalysisOutcome is the per-submission result. It is never persisted.
type AnalysisOutcome struct {
	ID         string           `json:"id" yaml:"id"`
	Prediction PredictionResult `json:"prediction" yaml:"prediction"`
	Insights   InsightReport    `json:"insights" yaml:"insights"`
	Language   *LanguageReport  `json:"language,omitempty" yaml:"language,omitempty"`
}
