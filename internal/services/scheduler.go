package services

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"text/template"
	"time"

	"github.com/google/uuid"

	"go-job-screening/internal/models"
	"go-job-screening/internal/repositories"
)

// interviewNoticeTemplate is the notification body, also written verbatim as
// the audit artifact.
const interviewNoticeTemplate = `Dear Candidate {{.CandidateRef}},

For Job {{.JobID}}, your match score is {{printf "%.2f" .Score}}%. You are invited for an interview on {{.Date}} at {{.Time}}.

Best Regards,
HR Team
`

type interviewNoticeData struct {
	CandidateRef string
	JobID        uint
	Score        float64
	Date         string
	Time         string
}

// SchedulerService turns a qualifying match into an interview record plus a
// notification. Persistence and delivery are isolated side effects: a failed
// delivery flips the record's status to failed but never rolls the record
// back.
type SchedulerService interface {
	// Schedule persists a new proposed interview for the match, writes the
	// audit artifact, and attempts email delivery when a recipient is known.
	// The returned error reports persistence failure only; delivery failure
	// is reflected in the record's status and logged as a warning.
	Schedule(ctx context.Context, candidateID uuid.UUID, match models.RankedMatch, recipient, notes string) (*models.InterviewRecord, error)
}

type schedulerService struct {
	interviewRepo repositories.InterviewRepository
	storage       StorageService
	mailer        Mailer
	noticeTmpl    *template.Template
	callTimeout   time.Duration
	leadTime      time.Duration
}

func NewSchedulerService(
	interviewRepo repositories.InterviewRepository,
	storage StorageService,
	mailer Mailer,
	callTimeout time.Duration,
) SchedulerService {
	return &schedulerService{
		interviewRepo: interviewRepo,
		storage:       storage,
		mailer:        mailer,
		noticeTmpl:    template.Must(template.New("interview_notice").Parse(interviewNoticeTemplate)),
		callTimeout:   callTimeout,
		leadTime:      48 * time.Hour,
	}
}

// Schedule implements SchedulerService.
func (s *schedulerService) Schedule(
	ctx context.Context,
	candidateID uuid.UUID,
	match models.RankedMatch,
	recipient, notes string,
) (*models.InterviewRecord, error) {
	record := &models.InterviewRecord{
		ID:            uuid.New(),
		CandidateID:   candidateID,
		JobID:         match.JobID,
		Score:         match.Score,
		ScheduledDate: time.Now().Add(s.leadTime),
		ScheduledTime: "10:00 AM",
		Notes:         notes,
		Status:        models.InterviewProposed,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	if err := s.interviewRepo.Create(record); err != nil {
		return nil, fmt.Errorf("failed to persist interview record: %w", err)
	}

	body, err := s.renderNotice(record)
	if err != nil {
		log.Printf("⚠️  Failed to render interview notice for job %d: %v\n", match.JobID, err)
		return record, nil
	}

	// Audit artifact is best effort; the database row is the primary record.
	if _, err := s.storage.WriteNotification(candidateID.String(), match.JobID, body); err != nil {
		log.Printf("⚠️  Failed to write notification artifact: %v\n", err)
	}

	if recipient == "" {
		log.Printf("📭 No recipient for candidate %s, interview %s stays proposed\n", candidateID, record.ID)
		return record, nil
	}

	subject := fmt.Sprintf("Interview Invitation - Job %d (%s)", match.JobID, match.Title)

	sendCtx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	if err := s.mailer.Send(sendCtx, recipient, subject, body); err != nil {
		log.Printf("⚠️  Failed to deliver interview notification for %s: %v\n", record.ID, err)
		s.markStatus(record, models.InterviewFailed)
		return record, nil
	}

	s.markStatus(record, models.InterviewSent)
	return record, nil
}

func (s *schedulerService) renderNotice(record *models.InterviewRecord) (string, error) {
	var buf bytes.Buffer
	err := s.noticeTmpl.Execute(&buf, interviewNoticeData{
		CandidateRef: record.CandidateID.String(),
		JobID:        record.JobID,
		Score:        record.Score,
		Date:         record.ScheduledDate.Format("January 2, 2006"),
		Time:         record.ScheduledTime,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render notice template: %w", err)
	}

	return buf.String(), nil
}

func (s *schedulerService) markStatus(record *models.InterviewRecord, status models.InterviewStatus) {
	if err := s.interviewRepo.UpdateStatus(record.ID, status); err != nil {
		log.Printf("⚠️  Failed to update interview %s status to %s: %v\n", record.ID, status, err)
		return
	}
	record.Status = status
}
