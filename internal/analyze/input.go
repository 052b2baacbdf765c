package analyze

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dtnitsch/fake-news-detector/internal/bootstrap"
	"github.com/dtnitsch/fake-news-detector/pkg/parser"
)

// Input names where the submission comes from. At most one of Text, File
// and HTML may be set; when none is, Stdin is read.
type Input struct {
	Text      string
	File      string
	HTML      string
	SourceURL string // base URL for --html, defaults to the file path
	Stdin     io.Reader
}

// Read returns the raw submission text. Empty text is not an error here;
// the pipeline reports it as a validation warning.
func (in Input) Read(p *parser.Parser) (string, error) {
	set := 0
	for _, v := range []string{in.Text, in.File, in.HTML} {
		if v != "" {
			set++
		}
	}
	if set > 1 {
		return "", fmt.Errorf("%w: use only one of --text, --file, --html", bootstrap.ErrUsage)
	}

	switch {
	case in.Text != "":
		return in.Text, nil
	case in.File != "":
		data, err := os.ReadFile(filepath.Clean(in.File))
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", in.File, err)
		}
		return string(data), nil
	case in.HTML != "":
		data, err := os.ReadFile(filepath.Clean(in.HTML))
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", in.HTML, err)
		}
		source := in.SourceURL
		if source == "" {
			source = in.HTML
		}
		page, err := p.Parse(source, string(data))
		if err != nil {
			return "", fmt.Errorf("failed to extract article from %s: %w", in.HTML, err)
		}
		return page.ToPlainText(), nil
	case in.Stdin != nil:
		data, err := io.ReadAll(in.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	default:
		return "", nil
	}
}

// pipedStdin returns os.Stdin when it is not a terminal.
func pipedStdin() io.Reader {
	info, err := os.Stdin.Stat()
	if err != nil || info.Mode()&os.ModeCharDevice != 0 {
		return nil
	}
	return os.Stdin
}
