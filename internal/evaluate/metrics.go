package evaluate

import "github.com/dtnitsch/fake-news-detector/models"

// ConfusionMatrix counts predictions with Real as the positive class.
type ConfusionMatrix struct {
	TruePositive  int `json:"true_positive" yaml:"true_positive"`
	FalsePositive int `json:"false_positive" yaml:"false_positive"`
	TrueNegative  int `json:"true_negative" yaml:"true_negative"`
	FalseNegative int `json:"false_negative" yaml:"false_negative"`
}

// Add records one prediction.
func (m *ConfusionMatrix) Add(actual, predicted models.Label) {
	switch {
	case actual == models.LabelReal && predicted == models.LabelReal:
		m.TruePositive++
	case actual == models.LabelFake && predicted == models.LabelReal:
		m.FalsePositive++
	case actual == models.LabelFake && predicted == models.LabelFake:
		m.TrueNegative++
	default:
		m.FalseNegative++
	}
}

func (m ConfusionMatrix) Total() int {
	return m.TruePositive + m.FalsePositive + m.TrueNegative + m.FalseNegative
}

type Metrics struct {
	Accuracy  float64 `json:"accuracy" yaml:"accuracy"`
	Precision float64 `json:"precision" yaml:"precision"`
	Recall    float64 `json:"recall" yaml:"recall"`
	F1        float64 `json:"f1" yaml:"f1"`
}

// Compute derives the scores. Undefined ratios are 0.
func (m ConfusionMatrix) Compute() Metrics {
	var out Metrics
	out.Accuracy = ratio(m.TruePositive+m.TrueNegative, m.Total())
	out.Precision = ratio(m.TruePositive, m.TruePositive+m.FalsePositive)
	out.Recall = ratio(m.TruePositive, m.TruePositive+m.FalseNegative)
	if out.Precision+out.Recall > 0 {
		out.F1 = 2 * out.Precision * out.Recall / (out.Precision + out.Recall)
	}
	return out
}

func ratio(n, d int) float64 {
	if d == 0 {
		return 0
	}
	return float64(n) / float64(d)
}
