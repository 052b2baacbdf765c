package sentiment

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/dtnitsch/fake-news-detector/models"
)

func TestBucket(t *testing.T) {
	tests := []struct {
		score float64
		want  models.SentimentLabel
	}{
		{score: 0.1, want: models.SentimentNeutral},
		{score: -0.1, want: models.SentimentNeutral},
		{score: 0, want: models.SentimentNeutral},
		{score: 0.1000001, want: models.SentimentPositive},
		{score: -0.1000001, want: models.SentimentNegative},
		{score: 1, want: models.SentimentPositive},
		{score: -1, want: models.SentimentNegative},
	}
	for _, tt := range tests {
		if got := Bucket(tt.score); got != tt.want {
			t.Errorf("Bucket(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

type fixedProvider float64

func (fixedProvider) Available() bool            { return true }
func (f fixedProvider) Polarity(string) float64 { return float64(f) }

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name string
		p    Provider
		want models.SentimentResult
	}{
		{
			name: "unavailable degrades to neutral",
			p:    Unavailable{},
			want: models.SentimentResult{Label: models.SentimentNeutral, Available: false},
		},
		{
			name: "nil provider degrades to neutral",
			p:    nil,
			want: models.SentimentResult{Label: models.SentimentNeutral, Available: false},
		},
		{
			name: "boundary score is neutral",
			p:    fixedProvider(0.1),
			want: models.SentimentResult{Label: models.SentimentNeutral, Score: 0.1, Available: true},
		},
		{
			name: "negative score",
			p:    fixedProvider(-0.4),
			want: models.SentimentResult{Label: models.SentimentNegative, Score: -0.4, Available: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Analyze(tt.p, "anything"); got != tt.want {
				t.Errorf("Analyze() = %+v, want %+v", got, tt.want)
			}
		})
	}

	if got := Analyze(Unavailable{}, "x").String(); got != "neutral (unavailable)" {
		t.Errorf("String() = %q, want neutral (unavailable)", got)
	}
}

func TestLexicon_Polarity(t *testing.T) {
	l := NewLexicon()
	tests := []struct {
		name string
		text string
		want float64
	}{
		{name: "single positive", text: "This is good.", want: 0.7},
		{name: "single negative", text: "A terrible outcome", want: -1.0},
		{name: "average of hits", text: "good but bad", want: 0},
		{name: "no lexicon words", text: "The committee met on Tuesday", want: 0},
		{name: "negation reverses at half strength", text: "This is not good", want: -0.35},
		{name: "contraction negates", text: "It isn't good", want: -0.35},
		{name: "negation outside window", text: "not one two three good", want: 0.7},
		{name: "intensifier scales", text: "very good", want: 0.91},
		{name: "clamped to one", text: "extremely excellent", want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := l.Polarity(tt.text)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Polarity(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestLexicon_Idempotent(t *testing.T) {
	l := NewLexicon()
	text := "Officials praise the very successful recovery, but critics slammed the scandal."
	if a, b := l.Polarity(text), l.Polarity(text); a != b {
		t.Errorf("Polarity not deterministic: %v vs %v", a, b)
	}
}

func TestLoadLexicon(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lexicon.yaml")
	body := "words:\n  Bullish: 0.6\n  good: 0.2\nintensifiers:\n  mega: 2\nnegations:\n  - hardly\n"
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatal(err)
	}

	l, err := LoadLexicon(path)
	if err != nil {
		t.Fatalf("LoadLexicon() error = %v", err)
	}
	if got := l.Polarity("bullish"); math.Abs(got-0.6) > 1e-9 {
		t.Errorf("Polarity(bullish) = %v, want 0.6", got)
	}
	if got := l.Polarity("good"); math.Abs(got-0.2) > 1e-9 {
		t.Errorf("Polarity(good) = %v, want overridden 0.2", got)
	}
	if got := l.Polarity("great"); math.Abs(got-0.8) > 1e-9 {
		t.Errorf("Polarity(great) = %v, want built-in 0.8", got)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("words:\n  wild: 3\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadLexicon(bad); err == nil {
		t.Error("LoadLexicon(out of range) expected error")
	}
	if _, err := LoadLexicon(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadLexicon(missing) expected error")
	}
}
