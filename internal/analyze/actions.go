package analyze

import (
	"fmt"
	"os"

	"github.com/dtnitsch/fake-news-detector/internal/bootstrap"
	"github.com/dtnitsch/fake-news-detector/internal/common"
	"github.com/dtnitsch/fake-news-detector/models"
	"github.com/dtnitsch/fake-news-detector/pkg/parser"
	"github.com/urfave/cli/v2"
)

func AnalyzeAction(c *cli.Context) error {
	logger := bootstrap.NewLogger(c)

	cfg, err := bootstrap.LoadConfig(c)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(bootstrap.ExitCode(err))
	}

	input := Input{
		Text:      c.String("text"),
		File:      c.String("file"),
		HTML:      c.String("html"),
		SourceURL: c.String("source-url"),
		Stdin:     pipedStdin(),
	}
	if c.NArg() > 0 && input.Text == "" {
		input.Text = c.Args().First()
	}
	text, err := input.Read(&parser.Parser{})
	if err != nil {
		logger.Error("failed to read input", "error", err)
		os.Exit(bootstrap.ExitCode(err))
	}

	app, err := bootstrap.Load(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize", "error", err)
		os.Exit(bootstrap.ExitFatal)
	}

	resp, err := app.Pipeline.HandleSubmission(text)
	if err != nil {
		logger.Error("analysis failed", "error", err)
		os.Exit(bootstrap.ExitFatal)
	}

	if err := writeResponse(resp, cfg.Output.Format, c.String("fields")); err != nil {
		return err
	}
	if resp.IsValidationFailure() {
		os.Exit(bootstrap.ExitWarning)
	}
	return nil
}

func writeResponse(resp models.Response, format, fields string) error {
	if format == "text" {
		RenderText(os.Stdout, resp)
		return nil
	}

	var out interface{} = resp
	if fields != "" && resp.Outcome != nil {
		out = map[string]interface{}{
			"status":  resp.Status,
			"outcome": common.FilterFields(resp.Outcome, fields),
		}
	}
	data, err := common.Marshal(out, format)
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = os.Stdout.Write(data)
	return err
}

// Flags are the analyze-specific flags.
func Flags() []cli.Flag {
	return append(bootstrap.Flags(),
		&cli.StringFlag{Name: "text", Aliases: []string{"t"}, Usage: "Article text to classify"},
		&cli.StringFlag{Name: "file", Usage: "Read the article from a plain text file"},
		&cli.StringFlag{Name: "html", Usage: "Read the article from an HTML file (main content is extracted)"},
		&cli.StringFlag{Name: "source-url", Usage: "Original URL of the --html page"},
		&cli.StringFlag{Name: "fields", Usage: "Comma-separated outcome fields for json/yaml output (id,prediction,insights,language)"},
	)
}
