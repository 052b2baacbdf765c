package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dtnitsch/fake-news-detector/internal/analyze"
	"github.com/dtnitsch/fake-news-detector/internal/bootstrap"
	"github.com/dtnitsch/fake-news-detector/internal/dataset"
	"github.com/dtnitsch/fake-news-detector/internal/evaluate"
	"github.com/dtnitsch/fake-news-detector/internal/inspect"
	"github.com/dtnitsch/fake-news-detector/pkg/help"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "fnd",
		Usage: "Classify news text as real or fake with a pre-trained TF-IDF + logistic regression model",
		Commands: []*cli.Command{
			{
				Name:      "analyze",
				Usage:     "Classify one article and report text insights",
				ArgsUsage: "[text]",
				Flags:     analyze.Flags(),
				Action:    analyze.AnalyzeAction,
			},
			{
				Name:   "inspect",
				Usage:  "Load the artifacts and print what was loaded",
				Flags:  bootstrap.Flags(),
				Action: inspect.InspectAction,
			},
			{
				Name:  "dataset",
				Usage: "Manage the labelled sample store used by evaluate",
				Subcommands: []*cli.Command{
					{
						Name:      "import",
						Usage:     "Import a labelled CSV (text,label columns)",
						ArgsUsage: "<file.csv>",
						Flags: []cli.Flag{
							dataset.DBFlag(),
							&cli.StringFlag{Name: "label", Usage: "Label every row (fake|real) instead of reading a label column"},
							&cli.StringFlag{Name: "text-column", Usage: "Name of the text column", Value: "text"},
							&cli.StringFlag{Name: "label-column", Usage: "Name of the label column", Value: "label"},
							&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "Only log errors"},
							&cli.BoolFlag{Name: "verbose", Usage: "Log debug details"},
						},
						Action: dataset.ImportAction,
					},
					{
						Name:  "list",
						Usage: "List stored samples",
						Flags: []cli.Flag{
							dataset.DBFlag(),
							&cli.StringFlag{Name: "label", Usage: "Only samples with this label (fake|real)"},
							&cli.StringFlag{Name: "source", Usage: "Only samples imported from this file"},
							&cli.IntFlag{Name: "limit", Usage: "Maximum rows", Value: 50},
						},
						Action: dataset.ListAction,
					},
				},
			},
			{
				Name:   "evaluate",
				Usage:  "Classify every stored sample and report accuracy, precision, recall and F1",
				Flags:  evaluate.Flags(),
				Action: evaluate.EvaluateAction,
			},
			{
				Name:  "coldstart",
				Usage: "Print a YAML quick-start guide",
				Action: func(c *cli.Context) error {
					fmt.Print(help.ColdstartYAML)
					return nil
				},
			},
		},
	}

	app.OnUsageError = usageError
	setUsageError(app.Commands)

	if err := app.Run(os.Args); err != nil {
		slog.New(slog.NewJSONHandler(os.Stderr, nil)).Error("command failed", "error", err)
		os.Exit(bootstrap.ExitCode(err))
	}
}

func usageError(c *cli.Context, err error, isSubcommand bool) error {
	return fmt.Errorf("%w: %v", bootstrap.ErrUsage, err)
}

func setUsageError(commands []*cli.Command) {
	for _, cmd := range commands {
		cmd.OnUsageError = usageError
		setUsageError(cmd.Subcommands)
	}
}
