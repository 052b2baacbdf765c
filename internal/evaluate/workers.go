package evaluate

import (
	"log/slog"
	"sync"

	"github.com/dtnitsch/fake-news-detector/models"
	"github.com/dtnitsch/fake-news-detector/pkg/analytics"
	"github.com/dtnitsch/fake-news-detector/pkg/db"
	"github.com/dtnitsch/fake-news-detector/pkg/mapreduce"
)

// Submitter is the part of the pipeline a worker needs.
type Submitter interface {
	HandleSubmission(text string) (models.Response, error)
}

// Job is one stored sample to classify.
type Job struct {
	Sample db.Sample
}

// Result holds the outcome of a processed job.
type Result struct {
	SampleID   int64
	Actual     models.Label
	Predicted  models.Label
	Confidence float64
	WordCounts map[string]int
	Skipped    bool // empty after trimming; no prediction
	Error      error
}

func worker(id int, logger *slog.Logger, p Submitter, a *analytics.Analytics, wg *sync.WaitGroup, jobs <-chan Job, results chan<- Result) {
	defer wg.Done()
	for job := range jobs {
		result := Result{SampleID: job.Sample.SampleID, Actual: job.Sample.Label}

		resp, err := p.HandleSubmission(job.Sample.Text)
		if err != nil {
			logger.Error("sample failed", "worker", id, "sample_id", job.Sample.SampleID, "error", err)
			result.Error = err
			results <- result
			continue
		}
		if resp.Outcome == nil {
			result.Skipped = true
			results <- result
			continue
		}

		result.Predicted = resp.Outcome.Prediction.Label
		result.Confidence = resp.Outcome.Prediction.Confidence
		result.WordCounts = mapreduce.Map(job.Sample.Text, a)
		results <- result
		logger.Debug("sample classified", "worker", id, "sample_id", job.Sample.SampleID, "label", result.Predicted)
	}
}

// run classifies samples with workerCount goroutines sharing p.
func run(logger *slog.Logger, p Submitter, samples []db.Sample, workerCount int) []Result {
	if workerCount < 1 {
		workerCount = 1
	}
	a := &analytics.Analytics{}

	logger.Info("Starting evaluation", "samples", len(samples), "workers", workerCount)
	var wg sync.WaitGroup
	jobs := make(chan Job, len(samples))
	results := make(chan Result, len(samples))

	for w := 1; w <= workerCount; w++ {
		wg.Add(1)
		go worker(w, logger, p, a, &wg, jobs, results)
	}

	for _, s := range samples {
		jobs <- Job{Sample: s}
	}
	close(jobs)

	wg.Wait()
	close(results)

	all := make([]Result, 0, len(samples))
	for r := range results {
		all = append(all, r)
	}
	return all
}
