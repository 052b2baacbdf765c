// Package classifier evaluates a trained binary logistic-regression model.
package classifier

import (
	"fmt"
	"math"

	"github.com/dtnitsch/fake-news-detector/models"
	"github.com/dtnitsch/fake-news-detector/pkg/artifact_manager"
)

// Artifact is the exported form of a fitted logistic regression.
// Coef has one row for the positive class (Real).
type Artifact struct {
	Classes     []int       `json:"classes" yaml:"classes"`
	Coef        [][]float64 `json:"coef" yaml:"coef"`
	Intercept   []float64   `json:"intercept" yaml:"intercept"`
	NFeaturesIn int         `json:"n_features_in,omitempty" yaml:"n_features_in,omitempty"`
}

// Classifier is immutable after construction and safe for concurrent use.
type Classifier struct {
	weights   []float64
	intercept float64
}

// Load reads and validates a model artifact.
func Load(path string) (*Classifier, *artifact_manager.Artifact, error) {
	a, err := artifact_manager.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	var art Artifact
	if err := a.Decode(&art); err != nil {
		return nil, nil, err
	}
	c, err := New(&art)
	if err != nil {
		return nil, nil, fmt.Errorf("model %s: %w", path, err)
	}
	return c, a, nil
}

// New validates an artifact and builds a Classifier from it.
func New(a *Artifact) (*Classifier, error) {
	if len(a.Classes) != 2 || a.Classes[0] != int(models.LabelFake) || a.Classes[1] != int(models.LabelReal) {
		return nil, fmt.Errorf("%w: classes must be [0 1], got %v", models.ErrArtifactLoad, a.Classes)
	}
	if len(a.Coef) != 1 || len(a.Coef[0]) == 0 {
		return nil, fmt.Errorf("%w: coef must be a single non-empty row", models.ErrArtifactLoad)
	}
	if len(a.Intercept) != 1 {
		return nil, fmt.Errorf("%w: intercept must hold exactly one value, got %d", models.ErrArtifactLoad, len(a.Intercept))
	}
	if a.NFeaturesIn != 0 && a.NFeaturesIn != len(a.Coef[0]) {
		return nil, fmt.Errorf("%w: n_features_in %d disagrees with %d coefficients", models.ErrArtifactLoad, a.NFeaturesIn, len(a.Coef[0]))
	}
	for i, w := range a.Coef[0] {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("%w: coefficient %d is not finite", models.ErrArtifactLoad, i)
		}
	}

	return &Classifier{
		weights:   a.Coef[0],
		intercept: a.Intercept[0],
	}, nil
}

// Dim is the input dimensionality the model was trained on.
func (c *Classifier) Dim() int {
	return len(c.weights)
}

// DecisionFunction returns w·x + b.
func (c *Classifier) DecisionFunction(v models.FeatureVector) (float64, error) {
	if v.Dim != len(c.weights) {
		return 0, fmt.Errorf("%w: vector has %d features, model expects %d", models.ErrDimensionMismatch, v.Dim, len(c.weights))
	}
	if len(v.Indices) != len(v.Values) {
		return 0, fmt.Errorf("%w: %d indices for %d values", models.ErrDimensionMismatch, len(v.Indices), len(v.Values))
	}

	z := c.intercept
	for i, idx := range v.Indices {
		if idx < 0 || idx >= len(c.weights) {
			return 0, fmt.Errorf("%w: index %d outside [0, %d)", models.ErrDimensionMismatch, idx, len(c.weights))
		}
		z += c.weights[idx] * v.Values[i]
	}
	return z, nil
}

// PredictProba returns [p_fake, p_real].
func (c *Classifier) PredictProba(v models.FeatureVector) ([2]float64, error) {
	z, err := c.DecisionFunction(v)
	if err != nil {
		return [2]float64{}, err
	}
	pReal := sigmoid(z)
	return [2]float64{1 - pReal, pReal}, nil
}

// Predict returns the argmax class.
func (c *Classifier) Predict(v models.FeatureVector) (models.Label, error) {
	proba, err := c.PredictProba(v)
	if err != nil {
		return models.LabelFake, err
	}
	return argmax(proba), nil
}

// Classify returns the label, the probability of that label, and both class
// probabilities.
func (c *Classifier) Classify(v models.FeatureVector) (models.PredictionResult, error) {
	proba, err := c.PredictProba(v)
	if err != nil {
		return models.PredictionResult{}, err
	}
	label := argmax(proba)
	return models.PredictionResult{
		Label:      label,
		Confidence: proba[label],
		Probabilities: models.ClassProbabilities{
			Fake: proba[models.LabelFake],
			Real: proba[models.LabelReal],
		},
	}, nil
}

// argmax picks the first class on an exact tie, so 0.5/0.5 resolves to Fake.
func argmax(proba [2]float64) models.Label {
	if proba[models.LabelReal] > proba[models.LabelFake] {
		return models.LabelReal
	}
	return models.LabelFake
}

// sigmoid is evaluated in the stable form for both signs of z.
func sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)
	return e / (1 + e)
}
