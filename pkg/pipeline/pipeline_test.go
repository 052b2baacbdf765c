package pipeline

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"github.com/dtnitsch/fake-news-detector/models"
	"github.com/dtnitsch/fake-news-detector/pkg/classifier"
	"github.com/dtnitsch/fake-news-detector/pkg/insight"
	"github.com/dtnitsch/fake-news-detector/pkg/sentiment"
	"github.com/dtnitsch/fake-news-detector/pkg/vectorizer"
)

type fakeExtractor struct {
	dim   int
	calls int
}

func (f *fakeExtractor) Dim() int { return f.dim }

func (f *fakeExtractor) Transform(string) models.FeatureVector {
	f.calls++
	return models.FeatureVector{Dim: f.dim}
}

type fakeClassifier struct {
	dim    int
	result models.PredictionResult
	err    error
	calls  int
}

func (f *fakeClassifier) Dim() int { return f.dim }

func (f *fakeClassifier) Classify(models.FeatureVector) (models.PredictionResult, error) {
	f.calls++
	return f.result, f.err
}

type fakeInsights struct{ calls int }

func (f *fakeInsights) Analyze(string) models.InsightReport {
	f.calls++
	return models.InsightReport{WordCount: 1}
}

type fakeLanguage struct{ report models.LanguageReport }

func (f fakeLanguage) Detect(string) models.LanguageReport { return f.report }

func quietLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestHandleSubmission_ValidationFailure(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t "} {
		e := &fakeExtractor{dim: 2}
		c := &fakeClassifier{dim: 2}
		i := &fakeInsights{}
		p, err := New(e, c, i, WithLogger(quietLogger()))
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}

		resp, err := p.HandleSubmission(text)
		if err != nil {
			t.Fatalf("HandleSubmission(%q) error = %v", text, err)
		}
		if !resp.IsValidationFailure() || resp.Status != models.StatusWarning {
			t.Errorf("HandleSubmission(%q) = %+v, want validation failure", text, resp)
		}
		if resp.Outcome != nil {
			t.Errorf("HandleSubmission(%q) returned an outcome", text)
		}
		if e.calls+c.calls+i.calls != 0 {
			t.Errorf("components invoked on empty input: extract=%d classify=%d analyze=%d", e.calls, c.calls, i.calls)
		}
	}
}

func TestHandleSubmission_Success(t *testing.T) {
	e := &fakeExtractor{dim: 2}
	c := &fakeClassifier{dim: 2, result: models.PredictionResult{Label: models.LabelReal, Confidence: 0.8}}
	i := &fakeInsights{}
	lang := fakeLanguage{report: models.LanguageReport{Code: "de", Expected: "en", Supported: false}}

	p, err := New(e, c, i,
		WithLogger(quietLogger()),
		WithIDGenerator(func() string { return "req-1" }),
		WithLanguageDetector(lang),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	resp, err := p.HandleSubmission("  some news  ")
	if err != nil {
		t.Fatalf("HandleSubmission() error = %v", err)
	}
	if resp.Status != models.StatusSuccess || resp.Warning != nil {
		t.Fatalf("Status = %q, Warning = %+v", resp.Status, resp.Warning)
	}
	out := resp.Outcome
	if out.ID != "req-1" {
		t.Errorf("ID = %q, want req-1", out.ID)
	}
	if out.Prediction.Label != models.LabelReal || out.Prediction.Confidence != 0.8 {
		t.Errorf("Prediction = %+v", out.Prediction)
	}
	if out.Insights.WordCount != 1 {
		t.Errorf("Insights = %+v", out.Insights)
	}
	if out.Language == nil || out.Language.Supported {
		t.Errorf("Language = %+v, want unsupported report", out.Language)
	}
	if e.calls != 1 || c.calls != 1 || i.calls != 1 {
		t.Errorf("calls extract=%d classify=%d analyze=%d, want 1 each", e.calls, c.calls, i.calls)
	}
}

func TestHandleSubmission_ClassifierErrorIsFatal(t *testing.T) {
	c := &fakeClassifier{dim: 2, err: models.ErrDimensionMismatch}
	i := &fakeInsights{}
	p, err := New(&fakeExtractor{dim: 2}, c, i, WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	_, err = p.HandleSubmission("text")
	if !errors.Is(err, models.ErrDimensionMismatch) {
		t.Errorf("HandleSubmission() error = %v, want ErrDimensionMismatch", err)
	}
	if i.calls != 0 {
		t.Error("insights computed after a fatal classifier error")
	}
}

func TestNew_DimensionMismatch(t *testing.T) {
	_, err := New(&fakeExtractor{dim: 3}, &fakeClassifier{dim: 2}, &fakeInsights{})
	if !errors.Is(err, models.ErrDimensionMismatch) {
		t.Errorf("New() error = %v, want ErrDimensionMismatch", err)
	}
}

func TestNew_MissingComponent(t *testing.T) {
	if _, err := New(nil, &fakeClassifier{}, &fakeInsights{}); err == nil {
		t.Error("New(nil extractor) expected error")
	}
}

func realPipeline(t *testing.T) *Pipeline {
	t.Helper()
	v, err := vectorizer.New(&vectorizer.Artifact{
		Vocabulary: map[string]int{"shocking": 0, "secret": 1, "officials": 2, "confirmed": 3},
		IDF:        []float64{1.2, 1.5, 1.1, 1.3},
	})
	if err != nil {
		t.Fatalf("vectorizer.New() error = %v", err)
	}
	c, err := classifier.New(&classifier.Artifact{
		Classes:   []int{0, 1},
		Coef:      [][]float64{{-3, -2.5, 2, 2.5}},
		Intercept: []float64{0.1},
	})
	if err != nil {
		t.Fatalf("classifier.New() error = %v", err)
	}
	p, err := New(v, c, insight.NewAnalyzer(sentiment.NewLexicon()), WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return p
}

func TestHandleSubmission_EndToEnd(t *testing.T) {
	p := realPipeline(t)

	tests := []struct {
		name string
		text string
		want models.Label
	}{
		{name: "fake markers", text: "SHOCKING secret they don't want you to know!", want: models.LabelFake},
		{name: "real markers", text: "Officials confirmed the figures on Monday.", want: models.LabelReal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := p.HandleSubmission(tt.text)
			if err != nil {
				t.Fatalf("HandleSubmission() error = %v", err)
			}
			pred := resp.Outcome.Prediction
			if pred.Label != tt.want {
				t.Errorf("Label = %v, want %v", pred.Label, tt.want)
			}
			if pred.Confidence < 0.5 || pred.Confidence > 1 {
				t.Errorf("Confidence = %f, want in [0.5, 1]", pred.Confidence)
			}
		})
	}
}

func TestHandleSubmission_Idempotent(t *testing.T) {
	p := realPipeline(t)
	text := "Officials confirmed a shocking secret. Really?"

	first, err := p.HandleSubmission(text)
	if err != nil {
		t.Fatalf("HandleSubmission() error = %v", err)
	}
	second, err := p.HandleSubmission(text)
	if err != nil {
		t.Fatalf("HandleSubmission() error = %v", err)
	}
	if !reflect.DeepEqual(first.Outcome.Prediction, second.Outcome.Prediction) {
		t.Errorf("Prediction differs: %+v vs %+v", first.Outcome.Prediction, second.Outcome.Prediction)
	}
	if !reflect.DeepEqual(first.Outcome.Insights, second.Outcome.Insights) {
		t.Errorf("Insights differ: %+v vs %+v", first.Outcome.Insights, second.Outcome.Insights)
	}
}

func TestHandleSubmission_LogLevel(t *testing.T) {
	tests := []struct {
		name   string
		level  slog.Level
		logged bool
	}{
		{"info stays quiet per submission", slog.LevelInfo, false},
		{"debug shows each submission", slog.LevelDebug, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: tt.level}))
			c := &fakeClassifier{dim: 2, result: models.PredictionResult{Label: models.LabelFake, Confidence: 0.7}}
			p, err := New(&fakeExtractor{dim: 2}, c, &fakeInsights{}, WithLogger(logger))
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}

			for n := 0; n < 3; n++ {
				if _, err := p.HandleSubmission("some news"); err != nil {
					t.Fatalf("HandleSubmission() error = %v", err)
				}
			}

			got := strings.Count(buf.String(), "submission classified")
			if tt.logged && got != 3 {
				t.Errorf("logged %d submissions, want 3:\n%s", got, buf.String())
			}
			if !tt.logged && buf.Len() != 0 {
				t.Errorf("expected no output at %v, got:\n%s", tt.level, buf.String())
			}
		})
	}
}
