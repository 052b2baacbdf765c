package inspect

import (
	"bytes"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dtnitsch/fake-news-detector/internal/bootstrap"
	"github.com/dtnitsch/fake-news-detector/models"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name       string
		sentiment  models.SentimentConfig
		wantEngine string
	}{
		{"builtin", models.SentimentConfig{Enabled: true}, "lexicon"},
		{"disabled", models.SentimentConfig{}, "unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := models.DefaultConfig()
			cfg.Artifacts.Dir = filepath.Join("..", "..", "testdata")
			cfg.Sentiment = tt.sentiment

			app, err := bootstrap.Load(cfg, slog.New(slog.NewJSONHandler(io.Discard, nil)))
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}

			s := Summarize(app)
			if s.Features != 8 {
				t.Errorf("Features = %d, want 8", s.Features)
			}
			if s.Language != "en" {
				t.Errorf("Language = %q, want en", s.Language)
			}
			if s.SentimentEngine != tt.wantEngine {
				t.Errorf("SentimentEngine = %q, want %q", s.SentimentEngine, tt.wantEngine)
			}
			if len(s.Vectorizer.SHA256) != 64 || s.Model.Format != "json" {
				t.Errorf("unexpected artifact info: %+v / %+v", s.Vectorizer, s.Model)
			}

			var buf bytes.Buffer
			RenderText(&buf, s)
			if !strings.Contains(buf.String(), "Features:     8") {
				t.Errorf("RenderText() missing feature count:\n%s", buf.String())
			}
		})
	}
}
