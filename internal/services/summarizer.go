package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"go-job-screening/internal/models"
	"go-job-screening/internal/repositories"
)

// SummarizerService owns the read-through summary cache. A posting is
// summarized at most once; the cached summary is ground truth for all later
// scoring of that job.
type SummarizerService interface {
	// EnsureSummary returns the posting's summary, generating and caching it
	// on first use. The posting is mutated in place on a cache miss.
	EnsureSummary(ctx context.Context, job *models.JobPosting) (string, error)
}

type summarizerService struct {
	jobRepo     repositories.JobRepository
	llm         LLMService
	callTimeout time.Duration
}

func NewSummarizerService(
	jobRepo repositories.JobRepository,
	llm LLMService,
	callTimeout time.Duration,
) SummarizerService {
	return &summarizerService{
		jobRepo:     jobRepo,
		llm:         llm,
		callTimeout: callTimeout,
	}
}

// EnsureSummary implements SummarizerService.
func (s *summarizerService) EnsureSummary(ctx context.Context, job *models.JobPosting) (string, error) {
	if job.HasSummary() {
		return job.Summary, nil
	}

	genCtx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	summary, err := s.llm.SummarizeJob(genCtx, job.Description)
	if err != nil {
		return "", fmt.Errorf("failed to generate summary for job %d: %w", job.ID, err)
	}

	// A failed cache write is reported but does not discard the summary for
	// this run; the next run will regenerate it.
	if err := s.jobRepo.UpdateSummary(job.ID, summary); err != nil {
		log.Printf("⚠️  Failed to cache summary for job %d: %v\n", job.ID, err)
	}

	job.Summary = summary
	return summary, nil
}
