package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dtnitsch/fake-news-detector/models"
)

// Row is one labelled record read from a CSV file.
type Row struct {
	Line  int
	Text  string
	Label models.Label
}

// CSVOptions selects the columns to read. When Label is set every row gets
// that label and no label column is required.
type CSVOptions struct {
	TextColumn  string
	LabelColumn string
	Label       *models.Label
}

// ParseLabel accepts the spellings common in fake-news datasets.
func ParseLabel(s string) (models.Label, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "real", "true":
		return models.LabelReal, nil
	case "0", "fake", "false":
		return models.LabelFake, nil
	default:
		return 0, fmt.Errorf("unknown label %q", s)
	}
}

// ReadCSV reads a headed CSV. Rows with an empty text or an unknown label are
// returned in skipped rather than failing the whole file.
func ReadCSV(r io.Reader, opts CSVOptions) (rows []Row, skipped []error, err error) {
	if opts.TextColumn == "" {
		opts.TextColumn = "text"
	}
	if opts.LabelColumn == "" {
		opts.LabelColumn = "label"
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, errors.New("csv file is empty")
		}
		return nil, nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	textIdx, labelIdx := -1, -1
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		switch name {
		case strings.ToLower(opts.TextColumn):
			textIdx = i
		case strings.ToLower(opts.LabelColumn):
			labelIdx = i
		}
	}
	if textIdx < 0 {
		return nil, nil, fmt.Errorf("csv has no %q column", opts.TextColumn)
	}
	if labelIdx < 0 && opts.Label == nil {
		return nil, nil, fmt.Errorf("csv has no %q column; pass --label to label the whole file", opts.LabelColumn)
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return rows, skipped, fmt.Errorf("failed to read csv: %w", err)
		}
		line, _ := reader.FieldPos(0)

		if textIdx >= len(record) || strings.TrimSpace(record[textIdx]) == "" {
			skipped = append(skipped, fmt.Errorf("line %d: empty text", line))
			continue
		}

		var label models.Label
		if opts.Label != nil {
			label = *opts.Label
		} else {
			if labelIdx >= len(record) {
				skipped = append(skipped, fmt.Errorf("line %d: missing label", line))
				continue
			}
			label, err = ParseLabel(record[labelIdx])
			if err != nil {
				skipped = append(skipped, fmt.Errorf("line %d: %w", line, err))
				continue
			}
		}

		rows = append(rows, Row{Line: line, Text: record[textIdx], Label: label})
	}
	return rows, skipped, nil
}
