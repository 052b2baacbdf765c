package evaluate

import (
	"fmt"
	"io"
	"sort"

	"github.com/dtnitsch/fake-news-detector/models"
	"github.com/dtnitsch/fake-news-detector/pkg/mapreduce"
)

// Report summarises an evaluation run.
type Report struct {
	Samples   int                 `json:"samples" yaml:"samples"`
	Evaluated int                 `json:"evaluated" yaml:"evaluated"`
	Skipped   int                 `json:"skipped" yaml:"skipped"`
	Failed    int                 `json:"failed" yaml:"failed"`
	Confusion ConfusionMatrix     `json:"confusion_matrix" yaml:"confusion_matrix"`
	Metrics   Metrics             `json:"metrics" yaml:"metrics"`
	Keywords  map[string][]string `json:"keywords_by_prediction" yaml:"keywords_by_prediction"`
}

// BuildReport aggregates results. Keywords are reduced per predicted label.
func BuildReport(results []Result, keywordLimit int) Report {
	sort.Slice(results, func(i, j int) bool {
		return results[i].SampleID < results[j].SampleID
	})

	report := Report{Samples: len(results), Keywords: map[string][]string{}}
	byLabel := map[models.Label][]map[string]int{}
	for _, r := range results {
		switch {
		case r.Error != nil:
			report.Failed++
		case r.Skipped:
			report.Skipped++
		default:
			report.Evaluated++
			report.Confusion.Add(r.Actual, r.Predicted)
			byLabel[r.Predicted] = append(byLabel[r.Predicted], r.WordCounts)
		}
	}
	report.Metrics = report.Confusion.Compute()

	for _, label := range []models.Label{models.LabelFake, models.LabelReal} {
		if maps := byLabel[label]; len(maps) > 0 {
			report.Keywords[label.String()] = mapreduce.TopKeywords(mapreduce.Reduce(maps), keywordLimit)
		}
	}
	return report
}

// RenderText writes the report as a table.
func RenderText(w io.Writer, r Report) {
	fmt.Fprintf(w, "Samples: %d (evaluated %d, skipped %d, failed %d)\n\n", r.Samples, r.Evaluated, r.Skipped, r.Failed)
	fmt.Fprintf(w, "Accuracy:   %.3f\n", r.Metrics.Accuracy)
	fmt.Fprintf(w, "Precision:  %.3f  (real)\n", r.Metrics.Precision)
	fmt.Fprintf(w, "Recall:     %.3f  (real)\n", r.Metrics.Recall)
	fmt.Fprintf(w, "F1:         %.3f  (real)\n\n", r.Metrics.F1)

	c := r.Confusion
	fmt.Fprintln(w, "Confusion matrix (rows: actual, columns: predicted)")
	fmt.Fprintf(w, "%-8s %8s %8s\n", "", "fake", "real")
	fmt.Fprintf(w, "%-8s %8d %8d\n", "fake", c.TrueNegative, c.FalsePositive)
	fmt.Fprintf(w, "%-8s %8d %8d\n", "real", c.FalseNegative, c.TruePositive)

	for _, label := range []string{models.LabelFake.String(), models.LabelReal.String()} {
		keywords := r.Keywords[label]
		if len(keywords) == 0 {
			continue
		}
		fmt.Fprintf(w, "\nTop keywords (predicted %s):\n", label)
		for _, kw := range keywords {
			fmt.Fprintf(w, "  %s\n", kw)
		}
	}
}
