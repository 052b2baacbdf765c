package artifact_manager

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dtnitsch/fake-news-detector/models"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestReadFile_Decode(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		content string
		format  Format
	}{
		{name: "json", file: "a.json", content: `{"value": 3}`, format: FormatJSON},
		{name: "yaml", file: "a.yaml", content: "value: 3\n", format: FormatYAML},
		{name: "yml", file: "a.yml", content: "value: 3\n", format: FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, tt.file, tt.content)
			a, err := ReadFile(path)
			if err != nil {
				t.Fatalf("ReadFile() error = %v", err)
			}
			if a.Format != tt.format {
				t.Errorf("Format = %q, want %q", a.Format, tt.format)
			}
			if len(a.Hash) != 64 {
				t.Errorf("Hash length = %d, want 64", len(a.Hash))
			}

			var out struct {
				Value int `json:"value" yaml:"value"`
			}
			if err := a.Decode(&out); err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if out.Value != 3 {
				t.Errorf("Value = %d, want 3", out.Value)
			}
		})
	}
}

func TestReadFile_Failures(t *testing.T) {
	dir := t.TempDir()
	empty := writeFile(t, dir, "empty.json", "  \n")
	writeFile(t, dir, "model.pkl", "binary")

	tests := []struct {
		name string
		path string
	}{
		{name: "missing file", path: filepath.Join(dir, "missing.json")},
		{name: "empty file", path: empty},
		{name: "unsupported extension", path: filepath.Join(dir, "model.pkl")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadFile(tt.path)
			if !errors.Is(err, models.ErrArtifactLoad) {
				t.Errorf("ReadFile() error = %v, want ErrArtifactLoad", err)
			}
		})
	}
}

func TestDecode_Corrupt(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "corrupt.json", `{"value": `)

	a, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	var out map[string]interface{}
	if err := a.Decode(&out); !errors.Is(err, models.ErrArtifactLoad) {
		t.Errorf("Decode() error = %v, want ErrArtifactLoad", err)
	}
}

func TestManager(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "vectorizer.json", `{"value": 1}`)

	m, err := NewManager(dir)
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}
	if got := m.Path("vectorizer.json"); got != filepath.Join(dir, "vectorizer.json") {
		t.Errorf("Path() = %q", got)
	}
	if _, err := m.Read("vectorizer.json"); err != nil {
		t.Errorf("Read() error = %v", err)
	}

	if _, err := NewManager(filepath.Join(dir, "nope")); !errors.Is(err, models.ErrArtifactLoad) {
		t.Errorf("NewManager(missing) error = %v, want ErrArtifactLoad", err)
	}
}
