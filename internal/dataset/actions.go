package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dtnitsch/fake-news-detector/internal/bootstrap"
	"github.com/dtnitsch/fake-news-detector/models"
	dbpkg "github.com/dtnitsch/fake-news-detector/pkg/db"
	"github.com/urfave/cli/v2"
)

// ImportSummary is printed after an import.
type ImportSummary struct {
	File       string `json:"file" yaml:"file"`
	Read       int    `json:"read" yaml:"read"`
	Inserted   int    `json:"inserted" yaml:"inserted"`
	Duplicates int    `json:"duplicates" yaml:"duplicates"`
	Skipped    int    `json:"skipped" yaml:"skipped"`
}

// Import stores rows, deduplicating on content.
func Import(database *dbpkg.DB, rows []Row, source string) (ImportSummary, error) {
	summary := ImportSummary{File: source, Read: len(rows)}
	for _, row := range rows {
		_, created, err := database.InsertSample(row.Text, row.Label, source)
		if err != nil {
			return summary, fmt.Errorf("line %d: %w", row.Line, err)
		}
		if created {
			summary.Inserted++
		} else {
			summary.Duplicates++
		}
	}
	return summary, nil
}

func ImportAction(c *cli.Context) error {
	logger := bootstrap.NewLogger(c)

	if c.NArg() == 0 {
		return fmt.Errorf("%w: no csv file given. Usage: fnd dataset import [--label fake|real] <file.csv>", bootstrap.ErrUsage)
	}
	path := c.Args().First()

	opts := CSVOptions{
		TextColumn:  c.String("text-column"),
		LabelColumn: c.String("label-column"),
	}
	if c.IsSet("label") {
		label, err := ParseLabel(c.String("label"))
		if err != nil {
			logger.Error("invalid --label", "error", err)
			os.Exit(bootstrap.ExitWarning)
		}
		opts.Label = &label
	}

	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	rows, skipped, err := ReadCSV(f, opts)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	for _, s := range skipped {
		logger.Warn("skipping row", "file", path, "reason", s)
	}

	database, err := dbpkg.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	summary, err := Import(database, rows, filepath.Base(path))
	if err != nil {
		return fmt.Errorf("failed to import %s: %w", path, err)
	}
	summary.Skipped = len(skipped)
	logger.Info("dataset imported", "file", path, "inserted", summary.Inserted, "duplicates", summary.Duplicates, "skipped", summary.Skipped)

	fmt.Printf("Imported %s into %s\n", path, database.Path())
	fmt.Printf("  read: %d  inserted: %d  duplicates: %d  skipped: %d\n",
		summary.Read, summary.Inserted, summary.Duplicates, summary.Skipped)
	return nil
}

func ListAction(c *cli.Context) error {
	database, err := dbpkg.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	filter := dbpkg.SampleFilter{Source: c.String("source"), Limit: c.Int("limit")}
	if c.IsSet("label") {
		label, err := ParseLabel(c.String("label"))
		if err != nil {
			return fmt.Errorf("%w: %v", bootstrap.ErrUsage, err)
		}
		filter.Label = &label
	}

	samples, err := database.ListSamples(filter)
	if err != nil {
		return err
	}
	counts, err := database.CountByLabel()
	if err != nil {
		return err
	}

	if len(samples) == 0 {
		fmt.Println("No samples found")
		return nil
	}

	fmt.Printf("%-6s %-6s %-20s %-20s %s\n", "ID", "Label", "Created", "Source", "Text")
	fmt.Println(strings.Repeat("-", 100))
	for _, s := range samples {
		fmt.Printf("%-6d %-6s %-20s %-20s %s\n",
			s.SampleID,
			s.Label,
			s.CreatedAt.Format("2006-01-02 15:04:05"),
			truncate(s.Source, 20),
			truncate(strings.Join(strings.Fields(s.Text), " "), 50),
		)
	}

	fmt.Printf("\nTotal: %d fake, %d real\n", counts[models.LabelFake], counts[models.LabelReal])
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// DBFlag is shared by every command that reads the sample store.
func DBFlag() cli.Flag {
	return &cli.StringFlag{Name: "db", Usage: "SQLite sample database", Value: dbpkg.DefaultDBName}
}
