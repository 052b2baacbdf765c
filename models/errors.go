package models

import "errors"

var (
	// ErrArtifactLoad marks a missing or corrupt vectorizer/model artifact.
	ErrArtifactLoad = errors.New("artifact load failure")

	// ErrDimensionMismatch marks a feature vector whose size disagrees with the
	// model. It signals artifact skew, never bad user input.
	ErrDimensionMismatch = errors.New("feature dimension mismatch")

	// ErrInvalidConfig marks a config value outside its allowed range.
	ErrInvalidConfig = errors.New("invalid config")
)
