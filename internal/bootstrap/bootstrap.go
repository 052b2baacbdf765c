// Package bootstrap is the composition root: it loads the artifacts once and
// wires the pipeline every command shares.
package bootstrap

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/dtnitsch/fake-news-detector/models"
	"github.com/dtnitsch/fake-news-detector/pkg/artifact_manager"
	"github.com/dtnitsch/fake-news-detector/pkg/classifier"
	"github.com/dtnitsch/fake-news-detector/pkg/insight"
	"github.com/dtnitsch/fake-news-detector/pkg/language"
	"github.com/dtnitsch/fake-news-detector/pkg/pipeline"
	"github.com/dtnitsch/fake-news-detector/pkg/sentiment"
	"github.com/dtnitsch/fake-news-detector/pkg/vectorizer"
	"github.com/urfave/cli/v2"
)

// Exit codes shared by all commands.
const (
	ExitWarning = 1
	ExitFatal   = 2
)

// ErrUsage marks errors caused by bad flags or config values.
var ErrUsage = errors.New("invalid usage")

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	if errors.Is(err, ErrUsage) {
		return ExitWarning
	}
	return ExitFatal
}

// App holds the loaded, read-only components.
type App struct {
	Config     *models.Config
	Logger     *slog.Logger
	Vectorizer *vectorizer.Vectorizer
	Classifier *classifier.Classifier
	Insights   *insight.Analyzer
	Pipeline   *pipeline.Pipeline

	VectorizerArtifact *artifact_manager.Artifact
	ModelArtifact      *artifact_manager.Artifact
}

// NewLogger builds the JSON stderr logger, honouring --quiet and --verbose.
func NewLogger(c *cli.Context) *slog.Logger {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	} else if c.Bool("verbose") {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// LoadConfig reads --config and applies flag overrides.
func LoadConfig(c *cli.Context) (*models.Config, error) {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		if errors.Is(err, models.ErrInvalidConfig) {
			return nil, fmt.Errorf("%w: %v", ErrUsage, err)
		}
		return nil, err
	}

	if c.IsSet("artifacts-dir") {
		cfg.Artifacts.Dir = c.String("artifacts-dir")
	}
	if c.IsSet("vectorizer") {
		cfg.Artifacts.Vectorizer = c.String("vectorizer")
	}
	if c.IsSet("model") {
		cfg.Artifacts.Model = c.String("model")
	}
	if c.IsSet("no-sentiment") {
		cfg.Sentiment.Enabled = !c.Bool("no-sentiment")
	}
	if c.IsSet("lexicon") {
		cfg.Sentiment.Lexicon = c.String("lexicon")
	}
	if c.IsSet("check-language") {
		cfg.Language.Enabled = c.Bool("check-language")
	}
	if c.IsSet("top-words") {
		cfg.Insights.TopWords = c.Int("top-words")
	}
	if c.IsSet("format") {
		cfg.Output.Format = c.String("format")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return cfg, nil
}

// Load builds the App from config. Any artifact problem is fatal.
func Load(cfg *models.Config, logger *slog.Logger) (*App, error) {
	manager, err := artifact_manager.NewManager(cfg.Artifacts.Dir)
	if err != nil {
		return nil, err
	}

	vec, vecArt, err := vectorizer.Load(manager.Path(cfg.Artifacts.Vectorizer))
	if err != nil {
		return nil, fmt.Errorf("failed to load vectorizer: %w", err)
	}
	clf, clfArt, err := classifier.Load(manager.Path(cfg.Artifacts.Model))
	if err != nil {
		return nil, fmt.Errorf("failed to load model: %w", err)
	}
	logger.Debug("artifacts loaded",
		"vectorizer", vecArt.Path, "vectorizer_sha256", vecArt.Hash,
		"model", clfArt.Path, "model_sha256", clfArt.Hash,
		"features", vec.Dim(),
	)

	provider, err := SentimentProvider(cfg.Sentiment)
	if err != nil {
		return nil, err
	}
	if !provider.Available() {
		logger.Info("sentiment engine unavailable, reporting neutral")
	}

	insights := insight.NewAnalyzer(provider,
		insight.WithTopWords(cfg.Insights.TopWords),
		insight.WithMinWordLength(cfg.Insights.MinWordLength),
	)

	opts := []pipeline.Option{pipeline.WithLogger(logger)}
	if cfg.Language.Enabled {
		expected := cfg.Language.Expected
		if expected == "" {
			expected = vec.Language()
		}
		opts = append(opts, pipeline.WithLanguageDetector(language.NewDetector(expected)))
	}

	p, err := pipeline.New(vec, clf, insights, opts...)
	if err != nil {
		return nil, err
	}

	return &App{
		Config:             cfg,
		Logger:             logger,
		Vectorizer:         vec,
		Classifier:         clf,
		Insights:           insights,
		Pipeline:           p,
		VectorizerArtifact: vecArt,
		ModelArtifact:      clfArt,
	}, nil
}

// SentimentProvider selects the provider variant once. A configured lexicon
// that cannot be read is an error; a disabled engine is not.
func SentimentProvider(cfg models.SentimentConfig) (sentiment.Provider, error) {
	if !cfg.Enabled {
		return sentiment.Unavailable{}, nil
	}
	if cfg.Lexicon == "" {
		return sentiment.NewLexicon(), nil
	}
	lex, err := sentiment.LoadLexicon(cfg.Lexicon)
	if err != nil {
		return nil, err
	}
	return lex, nil
}

// Flags are the configuration flags shared by every command that loads artifacts.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML config file", Value: models.DefaultConfigFile},
		&cli.StringFlag{Name: "artifacts-dir", Usage: "Directory holding the vectorizer and model artifacts"},
		&cli.StringFlag{Name: "vectorizer", Usage: "Vectorizer artifact (.json/.yaml)"},
		&cli.StringFlag{Name: "model", Usage: "Model artifact (.json/.yaml)"},
		&cli.BoolFlag{Name: "no-sentiment", Usage: "Run without a sentiment engine (reports neutral)"},
		&cli.StringFlag{Name: "lexicon", Usage: "YAML file extending the sentiment lexicon"},
		&cli.BoolFlag{Name: "check-language", Usage: "Flag text whose language differs from the vectorizer's"},
		&cli.IntFlag{Name: "top-words", Usage: "Number of frequent words to report"},
		&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "Output format: text, json, yaml"},
		&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "Only log errors"},
		&cli.BoolFlag{Name: "verbose", Usage: "Log debug details"},
	}
}
