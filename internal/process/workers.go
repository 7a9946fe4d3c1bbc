package process

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/dtnitsch/horizons-parser/internal/common"
	"github.com/dtnitsch/horizons-parser/models"
	"github.com/dtnitsch/horizons-parser/pkg/parser"
)

// run parses reports concurrently and returns one result per report, sorted
// by identifier.
func run(logger *slog.Logger, p *parser.Parser, reports []models.Report, workerCount int) []Result {
	if workerCount <= 0 {
		workerCount = models.DefaultWorkers
	}

	logger.Info("Starting parse phase", "report_count", len(reports), "workers", workerCount)
	var wg sync.WaitGroup
	jobs := make(chan Job, len(reports))
	results := make(chan Result, len(reports))

	for w := 1; w <= workerCount; w++ {
		wg.Add(1)
		go worker(w, logger, p, &wg, jobs, results)
	}

	for _, r := range reports {
		jobs <- Job{Report: r}
	}
	close(jobs)

	wg.Wait()
	close(results)
	logger.Info("All parse workers finished")

	allResults := make([]Result, 0, len(reports))
	for result := range results {
		allResults = append(allResults, result)
	}
	sort.Slice(allResults, func(i, j int) bool {
		return allResults[i].ID < allResults[j].ID
	})
	return allResults
}

// worker is a goroutine that processes jobs from the jobs channel
// and sends results to the results channel.
func worker(id int, logger *slog.Logger, p *parser.Parser, wg *sync.WaitGroup, jobs <-chan Job, results chan<- Result) {
	defer wg.Done()
	for job := range jobs {
		report := job.Report
		result := Result{
			ID:          report.ID,
			ContentHash: common.ContentHash([]byte(report.Raw)),
		}

		body, err := p.Parse(report.ID, report.Raw)
		if err != nil {
			result.Failure = &parser.Failure{ID: report.ID, Kind: parser.FailureKind(err), Err: err}
			logger.Warn("Failed to parse body", "worker_id", id, "object_id", report.ID, "error_type", result.Failure.Kind, "error", err)
			results <- result
			continue
		}

		logger.Info("Parsed body", "worker_id", id, "object_id", report.ID, "name", body.Name, "type", body.Type.String())
		result.Body = body
		results <- result
	}
}

// split separates parsed bodies from failures, keeping result order.
func split(results []Result) ([]*models.Body, []parser.Failure) {
	var bodies []*models.Body
	var failures []parser.Failure
	for _, r := range results {
		if r.Failure != nil {
			failures = append(failures, *r.Failure)
			continue
		}
		bodies = append(bodies, r.Body)
	}
	return bodies, failures
}
