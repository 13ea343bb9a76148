package services

import (
	"sort"

	"golang.org/x/sync/errgroup"

	"go-job-screening/internal/models"
)

// RankerService scores one resume against a set of job postings and returns a
// deterministic ranking.
type RankerService interface {
	// Rank scores the resume against every posting that carries a summary and
	// returns the results sorted by score descending, ties broken by
	// ascending job id. Postings without a summary are skipped for the run.
	Rank(resumeText string, jobs []models.JobPosting) []models.RankedMatch
	// TopK is a pure clamped slice of an already-ranked sequence.
	TopK(ranked []models.RankedMatch, k int) []models.RankedMatch
}

type rankerService struct {
	matcher     MatcherService
	concurrency int
}

func NewRankerService(matcher MatcherService, concurrency int) RankerService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &rankerService{
		matcher:     matcher,
		concurrency: concurrency,
	}
}

// Rank implements RankerService. Each (resume, job) pair is scored
// independently on the bounded worker group; only the final sort needs the
// complete set. Ranking has no side effects, persistence is the caller's
// explicit step.
func (r *rankerService) Rank(resumeText string, jobs []models.JobPosting) []models.RankedMatch {
	candidates := make([]models.JobPosting, 0, len(jobs))
	for _, job := range jobs {
		if job.HasSummary() {
			candidates = append(candidates, job)
		}
	}

	// Ascending id before the stable sort gives the tie-break order
	// regardless of how the caller ordered the input.
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].ID < candidates[j].ID
	})

	results := make([]models.RankedMatch, len(candidates))

	var g errgroup.Group
	g.SetLimit(r.concurrency)
	for i := range candidates {
		g.Go(func() error {
			job := candidates[i]
			results[i] = models.RankedMatch{
				JobID: job.ID,
				Title: job.Title,
				Score: r.matcher.Score(job.Summary, resumeText),
			}
			return nil
		})
	}
	// Pair tasks never return an error; a pair-level fault surfaces as a 0.0
	// score inside the matcher instead of aborting the batch.
	_ = g.Wait()

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results
}

// TopK implements RankerService.
func (r *rankerService) TopK(ranked []models.RankedMatch, k int) []models.RankedMatch {
	if k < 0 {
		k = 0
	}
	if k > len(ranked) {
		k = len(ranked)
	}
	return ranked[:k]
}
