// Package pipeline validates a submission, classifies it, and assembles the
// outcome together with the text insights.
package pipeline

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dtnitsch/fake-news-detector/models"
	"github.com/google/uuid"
)

// Extractor converts raw text into the classifier's feature space.
type Extractor interface {
	Dim() int
	Transform(text string) models.FeatureVector
}

// Classifier turns a feature vector into a label and confidence.
type Classifier interface {
	Dim() int
	Classify(v models.FeatureVector) (models.PredictionResult, error)
}

// InsightAnalyzer derives statistics from raw text.
type InsightAnalyzer interface {
	Analyze(text string) models.InsightReport
}

// LanguageDetector annotates the outcome with the detected language.
type LanguageDetector interface {
	Detect(text string) models.LanguageReport
}

// Pipeline holds read-only collaborators and is safe for concurrent use.
type Pipeline struct {
	extractor  Extractor
	classifier Classifier
	insights   InsightAnalyzer
	language   LanguageDetector
	logger     *slog.Logger
	newID      func() string
}

type Option func(*Pipeline)

func WithLanguageDetector(d LanguageDetector) Option {
	return func(p *Pipeline) { p.language = d }
}

func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) { p.logger = l }
}

// WithIDGenerator replaces the uuid request IDs.
func WithIDGenerator(fn func() string) Option {
	return func(p *Pipeline) { p.newID = fn }
}

// New wires the pipeline. The extractor and classifier must agree on
// dimensionality; a mismatch means the artifacts come from different
// training runs and is fatal.
func New(e Extractor, c Classifier, i InsightAnalyzer, opts ...Option) (*Pipeline, error) {
	if e == nil || c == nil || i == nil {
		return nil, errors.New("pipeline requires an extractor, a classifier and an insight analyzer")
	}
	if e.Dim() != c.Dim() {
		return nil, fmt.Errorf("%w: vectorizer produces %d features, model expects %d", models.ErrDimensionMismatch, e.Dim(), c.Dim())
	}

	p := &Pipeline{
		extractor:  e,
		classifier: c,
		insights:   i,
		logger:     slog.Default(),
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// HandleSubmission runs one submission through the pipeline. Empty or
// whitespace-only text yields a validation warning without touching any
// component. Errors returned here are fatal for the request.
func (p *Pipeline) HandleSubmission(text string) (models.Response, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		p.logger.Warn("submission rejected", "reason", models.ErrorTypeValidation)
		return models.NewValidationFailure(), nil
	}

	id := p.newID()
	vec := p.extractor.Transform(text)
	prediction, err := p.classifier.Classify(vec)
	if err != nil {
		p.logger.Error("classification failed", "request_id", id, "error", err)
		return models.Response{}, fmt.Errorf("request %s: %w", id, err)
	}

	outcome := &models.AnalysisOutcome{
		ID:         id,
		Prediction: prediction,
		Insights:   p.insights.Analyze(text),
	}
	if p.language != nil {
		report := p.language.Detect(text)
		outcome.Language = &report
		if !report.Supported {
			p.logger.Warn("text language differs from the fitted vectorizer",
				"request_id", id, "detected", report.Code, "expected", report.Expected)
		}
	}

	p.logger.Debug("submission classified",
		"request_id", id,
		"label", prediction.Label.String(),
		"confidence", prediction.Confidence,
		"features", vec.NNZ(),
		"word_count", outcome.Insights.WordCount,
	)
	return models.NewSuccess(outcome), nil
}
