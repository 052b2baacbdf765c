package inspect

import (
	"fmt"
	"io"
	"os"

	"github.com/dtnitsch/fake-news-detector/internal/bootstrap"
	"github.com/dtnitsch/fake-news-detector/internal/common"
	"github.com/dtnitsch/fake-news-detector/pkg/artifact_manager"
	"github.com/urfave/cli/v2"
)

// ArtifactInfo describes one loaded artifact file.
type ArtifactInfo struct {
	Path      string `json:"path" yaml:"path"`
	Format    string `json:"format" yaml:"format"`
	SizeBytes int64  `json:"size_bytes" yaml:"size_bytes"`
	SHA256    string `json:"sha256" yaml:"sha256"`
}

// Summary is what inspect prints.
type Summary struct {
	Vectorizer      ArtifactInfo `json:"vectorizer" yaml:"vectorizer"`
	Model           ArtifactInfo `json:"model" yaml:"model"`
	Features        int          `json:"features" yaml:"features"`
	Language        string       `json:"language" yaml:"language"`
	SentimentEngine string       `json:"sentiment_engine" yaml:"sentiment_engine"`
	LanguageGuard   bool         `json:"language_guard" yaml:"language_guard"`
	TopWords        int          `json:"top_words" yaml:"top_words"`
	MinWordLength   int          `json:"min_word_length" yaml:"min_word_length"`
}

func artifactInfo(a *artifact_manager.Artifact) ArtifactInfo {
	return ArtifactInfo{
		Path:      a.Path,
		Format:    string(a.Format),
		SizeBytes: a.SizeBytes,
		SHA256:    a.Hash,
	}
}

// Summarize describes a loaded app without analysing any text.
func Summarize(app *bootstrap.App) Summary {
	engine := "unavailable"
	if app.Insights.SentimentAvailable() {
		engine = "lexicon"
		if app.Config.Sentiment.Lexicon != "" {
			engine = "lexicon (" + app.Config.Sentiment.Lexicon + ")"
		}
	}
	return Summary{
		Vectorizer:      artifactInfo(app.VectorizerArtifact),
		Model:           artifactInfo(app.ModelArtifact),
		Features:        app.Vectorizer.Dim(),
		Language:        app.Vectorizer.Language(),
		SentimentEngine: engine,
		LanguageGuard:   app.Config.Language.Enabled,
		TopWords:        app.Config.Insights.TopWords,
		MinWordLength:   app.Config.Insights.MinWordLength,
	}
}

// RenderText writes the summary as aligned key/value lines.
func RenderText(w io.Writer, s Summary) {
	fmt.Fprintf(w, "Vectorizer:   %s (%s, %d bytes)\n", s.Vectorizer.Path, s.Vectorizer.Format, s.Vectorizer.SizeBytes)
	fmt.Fprintf(w, "  sha256:     %s\n", s.Vectorizer.SHA256)
	fmt.Fprintf(w, "Model:        %s (%s, %d bytes)\n", s.Model.Path, s.Model.Format, s.Model.SizeBytes)
	fmt.Fprintf(w, "  sha256:     %s\n", s.Model.SHA256)
	fmt.Fprintf(w, "Features:     %d\n", s.Features)
	fmt.Fprintf(w, "Language:     %s\n", s.Language)
	fmt.Fprintf(w, "Sentiment:    %s\n", s.SentimentEngine)
	fmt.Fprintf(w, "Lang guard:   %t\n", s.LanguageGuard)
	fmt.Fprintf(w, "Top words:    %d (min length %d)\n", s.TopWords, s.MinWordLength)
}

func InspectAction(c *cli.Context) error {
	logger := bootstrap.NewLogger(c)

	cfg, err := bootstrap.LoadConfig(c)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(bootstrap.ExitCode(err))
	}

	app, err := bootstrap.Load(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize", "error", err)
		os.Exit(bootstrap.ExitFatal)
	}

	summary := Summarize(app)
	if cfg.Output.Format == "text" {
		RenderText(os.Stdout, summary)
		return nil
	}
	data, err := common.Marshal(summary, cfg.Output.Format)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
