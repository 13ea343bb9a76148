package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strings"

	"go-job-screening/internal/models"
	"go-job-screening/internal/repositories"
)

const (
	columnJobTitle       = "Job Title"
	columnJobDescription = "Job Description"
)

// JobsLoaderService ingests the tabular job corpus. The source must carry
// `Job Title` and `Job Description` columns; a missing column fails the whole
// ingestion with no partial load. Ids come from the 1-based row order.
type JobsLoaderService interface {
	LoadCSV(r io.Reader) ([]models.JobPosting, error)
	// ImportCorpus parses, persists, and (optionally) pre-summarizes the
	// corpus. A failed summary is a warning, not an import failure.
	ImportCorpus(ctx context.Context, r io.Reader, summarize bool) (imported, summarized int, err error)
}

type jobsLoaderService struct {
	jobRepo    repositories.JobRepository
	summarizer SummarizerService
}

func NewJobsLoaderService(
	jobRepo repositories.JobRepository,
	summarizer SummarizerService,
) JobsLoaderService {
	return &jobsLoaderService{
		jobRepo:    jobRepo,
		summarizer: summarizer,
	}
}

// LoadCSV implements JobsLoaderService.
func (s *jobsLoaderService) LoadCSV(r io.Reader) ([]models.JobPosting, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus header: %w", err)
	}

	titleIdx, descIdx := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case columnJobTitle:
			titleIdx = i
		case columnJobDescription:
			descIdx = i
		}
	}

	if titleIdx == -1 || descIdx == -1 {
		return nil, fmt.Errorf(
			"malformed job corpus: required columns %q and %q not found",
			columnJobTitle, columnJobDescription,
		)
	}

	var jobs []models.JobPosting
	for rowNum := 1; ; rowNum++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("malformed job corpus at row %d: %w", rowNum, err)
		}

		if titleIdx >= len(record) || descIdx >= len(record) {
			return nil, fmt.Errorf("malformed job corpus at row %d: missing fields", rowNum)
		}

		jobs = append(jobs, models.JobPosting{
			ID:          uint(rowNum),
			Title:       strings.TrimSpace(record[titleIdx]),
			Description: strings.TrimSpace(record[descIdx]),
		})
	}

	return jobs, nil
}

// ImportCorpus implements JobsLoaderService.
func (s *jobsLoaderService) ImportCorpus(ctx context.Context, r io.Reader, summarize bool) (int, int, error) {
	jobs, err := s.LoadCSV(r)
	if err != nil {
		return 0, 0, err
	}

	imported := 0
	for i := range jobs {
		if err := s.jobRepo.Upsert(&jobs[i]); err != nil {
			return imported, 0, fmt.Errorf("failed to store job %d: %w", jobs[i].ID, err)
		}
		imported++
	}

	summarized := 0
	if summarize {
		for i := range jobs {
			// Re-read the stored row so an existing cached summary short-circuits.
			stored, err := s.jobRepo.FindByID(jobs[i].ID)
			if err != nil {
				log.Printf("⚠️  Skipping summary for job %d: %v\n", jobs[i].ID, err)
				continue
			}

			if _, err := s.summarizer.EnsureSummary(ctx, stored); err != nil {
				log.Printf("⚠️  Skipping summary for job %d: %v\n", stored.ID, err)
				continue
			}
			summarized++
		}
	}

	return imported, summarized, nil
}
