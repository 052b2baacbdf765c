package evaluate

import (
	"fmt"
	"os"

	"github.com/dtnitsch/fake-news-detector/internal/bootstrap"
	"github.com/dtnitsch/fake-news-detector/internal/common"
	dbpkg "github.com/dtnitsch/fake-news-detector/pkg/db"
	"github.com/urfave/cli/v2"
)

func EvaluateAction(c *cli.Context) error {
	logger := bootstrap.NewLogger(c)

	cfg, err := bootstrap.LoadConfig(c)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(bootstrap.ExitCode(err))
	}

	database, err := dbpkg.Open(c.String("db"))
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(bootstrap.ExitFatal)
	}
	defer database.Close()

	samples, err := database.ListSamples(dbpkg.SampleFilter{
		Source: c.String("source"),
		Limit:  c.Int("limit"),
	})
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		logger.Error("no samples to evaluate", "db", database.Path())
		fmt.Fprintln(os.Stderr, "Import labelled data first: fnd dataset import <file.csv>")
		os.Exit(bootstrap.ExitWarning)
	}

	app, err := bootstrap.Load(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize", "error", err)
		os.Exit(bootstrap.ExitFatal)
	}

	results := run(logger, app.Pipeline, samples, c.Int("workers"))
	report := BuildReport(results, c.Int("keywords"))
	logger.Info("Evaluation complete", "evaluated", report.Evaluated, "failed", report.Failed, "accuracy", report.Metrics.Accuracy)

	if cfg.Output.Format == "text" {
		RenderText(os.Stdout, report)
		return nil
	}
	data, err := common.Marshal(report, cfg.Output.Format)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

// Flags are the evaluate-specific flags.
func Flags() []cli.Flag {
	return append(bootstrap.Flags(),
		&cli.StringFlag{Name: "db", Usage: "SQLite sample database", Value: dbpkg.DefaultDBName},
		&cli.StringFlag{Name: "source", Usage: "Only evaluate samples imported from this file"},
		&cli.IntFlag{Name: "limit", Usage: "Maximum samples to evaluate (0 = all)"},
		&cli.IntFlag{Name: "workers", Aliases: []string{"w"}, Usage: "Concurrent workers", Value: 4},
		&cli.IntFlag{Name: "keywords", Usage: "Top keywords to report per predicted label", Value: 10},
	)
}
