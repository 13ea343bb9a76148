package services

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/google/uuid"

	"go-job-screening/internal/models"
	"go-job-screening/internal/repositories"
)

// ScreenerService drives one screening run end to end: resume text
// extraction, summary ensure pass, scoring, ranking, match persistence, and
// threshold-gated interview scheduling. External-collaborator failures are
// downgraded to warnings with safe defaults; only missing inputs (screening
// row, resume document, job corpus) fail the run.
type ScreenerService interface {
	ScreenCandidate(ctx context.Context, screeningID uuid.UUID) error
	// BuildResult assembles the ranked view of a completed screening from the
	// persisted match results.
	BuildResult(screening *models.ScreeningJob) (*models.ScreeningData, error)
}

type screenerService struct {
	screeningRepo repositories.ScreeningRepository
	docRepo       repositories.DocumentRepository
	jobRepo       repositories.JobRepository
	matchRepo     repositories.MatchRepository
	interviewRepo repositories.InterviewRepository
	pdfParser     PDFParserService
	summarizer    SummarizerService
	ranker        RankerService
	gate          ThresholdGate
	scheduler     SchedulerService
	topK          int
}

func NewScreenerService(
	screeningRepo repositories.ScreeningRepository,
	docRepo repositories.DocumentRepository,
	jobRepo repositories.JobRepository,
	matchRepo repositories.MatchRepository,
	interviewRepo repositories.InterviewRepository,
	pdfParser PDFParserService,
	summarizer SummarizerService,
	ranker RankerService,
	gate ThresholdGate,
	scheduler SchedulerService,
	topK int,
) ScreenerService {
	return &screenerService{
		screeningRepo: screeningRepo,
		docRepo:       docRepo,
		jobRepo:       jobRepo,
		matchRepo:     matchRepo,
		interviewRepo: interviewRepo,
		pdfParser:     pdfParser,
		summarizer:    summarizer,
		ranker:        ranker,
		gate:          gate,
		scheduler:     scheduler,
		topK:          topK,
	}
}

// ScreenCandidate implements ScreenerService.
func (s *screenerService) ScreenCandidate(ctx context.Context, screeningID uuid.UUID) error {
	if err := s.screeningRepo.UpdateStatus(screeningID, models.StatusProcessing); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	log.Printf("🔄 Starting screening %s\n", screeningID)

	screening, err := s.screeningRepo.FindByID(screeningID)
	if err != nil {
		s.screeningRepo.UpdateError(screeningID, err.Error())
		return fmt.Errorf("failed to get screening job: %w", err)
	}

	doc, err := s.docRepo.FindByID(screening.ResumeDocumentID)
	if err != nil {
		s.screeningRepo.UpdateError(screeningID, fmt.Sprintf("resume document not found: %v", err))
		return fmt.Errorf("failed to get resume document: %w", err)
	}

	// An unparseable or empty resume is still screened; it just scores near
	// zero against everything.
	resumeText, err := s.pdfParser.ExtractText(doc.FilePath)
	if err != nil {
		log.Printf("⚠️  Failed to parse resume %s, screening with empty text: %v\n", doc.ID, err)
		resumeText = ""
	}

	jobs, err := s.jobRepo.FindAll()
	if err != nil {
		s.screeningRepo.UpdateError(screeningID, fmt.Sprintf("failed to load job corpus: %v", err))
		return fmt.Errorf("failed to load job corpus: %w", err)
	}

	// Ensure every posting has its cached summary. A failed generation skips
	// that job for this run only.
	for i := range jobs {
		if jobs[i].HasSummary() {
			continue
		}
		if _, err := s.summarizer.EnsureSummary(ctx, &jobs[i]); err != nil {
			log.Printf("⚠️  Skipping job %d for this run: %v\n", jobs[i].ID, err)
		}
	}

	ranked := s.ranker.Rank(resumeText, jobs)
	log.Printf("📊 Scored %d job postings for screening %s\n", len(ranked), screeningID)

	// Persistence is a separate, explicit step after ranking; a failed write
	// is reported but the in-memory ranking stands.
	for _, match := range ranked {
		result := &models.MatchResult{
			CandidateID: screening.ResumeDocumentID,
			JobID:       match.JobID,
			Score:       match.Score,
		}
		if err := s.matchRepo.Upsert(result); err != nil {
			log.Printf("⚠️  Failed to persist match (candidate %s, job %d): %v\n",
				screening.ResumeDocumentID, match.JobID, err)
		}
	}

	scheduled := 0
	for _, match := range s.ranker.TopK(ranked, s.topK) {
		if !s.gate.Qualifies(match.Score) {
			continue
		}

		notes := fmt.Sprintf("Auto-scheduled from screening %s (score %.2f%%)", screeningID, match.Score)
		if _, err := s.scheduler.Schedule(ctx, screening.ResumeDocumentID, match, screening.CandidateEmail, notes); err != nil {
			log.Printf("⚠️  Failed to schedule interview for job %d: %v\n", match.JobID, err)
			continue
		}
		scheduled++
	}

	if scheduled > 0 {
		log.Printf("✅ Scheduled %d interview(s) for candidate %s\n", scheduled, screening.ResumeDocumentID)
	} else {
		log.Printf("❌ No interview scheduled for candidate %s (no score >= %.1f%% in top %d)\n",
			screening.ResumeDocumentID, s.gate.Cutoff(), s.topK)
	}

	if err := s.screeningRepo.UpdateStatus(screeningID, models.StatusCompleted); err != nil {
		return fmt.Errorf("failed to complete screening: %w", err)
	}

	log.Printf("✅ Screening %s completed\n", screeningID)
	return nil
}

// BuildResult implements ScreenerService.
func (s *screenerService) BuildResult(screening *models.ScreeningJob) (*models.ScreeningData, error) {
	matches, err := s.matchRepo.ListByCandidate(screening.ResumeDocumentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load match results: %w", err)
	}

	titles := make(map[uint]string)
	if jobs, err := s.jobRepo.FindAll(); err != nil {
		log.Printf("⚠️  Failed to load job titles for result: %v\n", err)
	} else {
		for _, job := range jobs {
			titles[job.ID] = job.Title
		}
	}

	ranked := make([]models.RankedMatch, 0, len(matches))
	for _, m := range matches {
		ranked = append(ranked, models.RankedMatch{
			JobID: m.JobID,
			Title: titles[m.JobID],
			Score: m.Score,
		})
	}

	// Stored matches come back in ascending job id; the stable sort restores
	// the ranking order with the same tie-break.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	data := &models.ScreeningData{
		Matches:    ranked,
		TopMatches: s.ranker.TopK(ranked, s.topK),
		Interviews: []models.InterviewResponse{},
	}

	records, err := s.interviewRepo.ListByCandidate(screening.ResumeDocumentID)
	if err != nil {
		log.Printf("⚠️  Failed to load interview records for result: %v\n", err)
		return data, nil
	}

	for _, rec := range records {
		data.Interviews = append(data.Interviews, models.InterviewResponse{
			ID:            rec.ID.String(),
			JobID:         rec.JobID,
			Score:         rec.Score,
			ScheduledDate: rec.ScheduledDate.Format("2006-01-02"),
			ScheduledTime: rec.ScheduledTime,
			Status:        string(rec.Status),
		})
	}

	return data, nil
}
