package artifact_manager

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dtnitsch/fake-news-detector/internal/common"
	"github.com/dtnitsch/fake-news-detector/models"
	"gopkg.in/yaml.v3"
)

// Format is the serialization of an exported artifact.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Artifact is a read-only, pre-fitted object loaded once at startup.
type Artifact struct {
	Path      string    `json:"path" yaml:"path"`
	Format    Format    `json:"format" yaml:"format"`
	Hash      string    `json:"sha256" yaml:"sha256"`
	SizeBytes int64     `json:"size_bytes" yaml:"size_bytes"`
	LoadedAt  time.Time `json:"loaded_at" yaml:"loaded_at"`

	data []byte
}

// Manager resolves artifacts relative to a base directory.
type Manager struct {
	baseDir string
}

// NewManager creates a new Artifact Manager instance.
// The base directory must already exist; artifacts are never written.
func NewManager(baseDir string) (*Manager, error) {
	if baseDir == "" {
		baseDir = "."
	}
	info, err := os.Stat(baseDir)
	if err != nil {
		return nil, fmt.Errorf("%w: artifact directory: %v", models.ErrArtifactLoad, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: artifact directory %s is not a directory", models.ErrArtifactLoad, baseDir)
	}
	return &Manager{baseDir: baseDir}, nil
}

// Path returns the full path for a named artifact.
func (m *Manager) Path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(m.baseDir, name)
}

// Read loads a named artifact from the base directory.
func (m *Manager) Read(name string) (*Artifact, error) {
	return ReadFile(m.Path(name))
}

// DetectFormat picks the decoder from the file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: unsupported artifact extension %q (want .json, .yaml or .yml)", models.ErrArtifactLoad, filepath.Ext(path))
	}
}

// ReadFile loads an artifact from disk. Missing or unreadable files are
// reported as models.ErrArtifactLoad.
func ReadFile(path string) (*Artifact, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrArtifactLoad, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", models.ErrArtifactLoad, path)
	}

	return &Artifact{
		Path:      path,
		Format:    format,
		Hash:      common.ContentHash(data),
		SizeBytes: int64(len(data)),
		LoadedAt:  time.Now(),
		data:      data,
	}, nil
}

// Decode unmarshals the artifact body into v.
func (a *Artifact) Decode(v interface{}) error {
	var err error
	switch a.Format {
	case FormatJSON:
		err = json.Unmarshal(a.data, v)
	case FormatYAML:
		err = yaml.Unmarshal(a.data, v)
	default:
		err = fmt.Errorf("unknown format %q", a.Format)
	}
	if err != nil {
		return fmt.Errorf("%w: failed to decode %s: %v", models.ErrArtifactLoad, a.Path, err)
	}
	return nil
}
