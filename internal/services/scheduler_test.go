package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-job-screening/internal/models"
)

func TestSchedulerDeliverySuccess(t *testing.T) {
	repo := &memInterviewRepo{}
	storage := newStubStorage()
	mailer := &stubMailer{}
	scheduler := NewSchedulerService(repo, storage, mailer, time.Second)

	candidateID := uuid.New()
	match := models.RankedMatch{JobID: 2, Title: "Platform Engineer", Score: 87.5}

	record, err := scheduler.Schedule(context.Background(), candidateID, match, "candidate@example.com", "top match")
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.Equal(t, models.InterviewSent, record.Status)
	assert.Equal(t, candidateID, record.CandidateID)
	assert.Equal(t, uint(2), record.JobID)
	assert.Equal(t, 87.5, record.Score)
	assert.Equal(t, "10:00 AM", record.ScheduledTime)

	// Two days of lead time.
	wantDate := time.Now().Add(48 * time.Hour)
	assert.WithinDuration(t, wantDate, record.ScheduledDate, time.Minute)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "candidate@example.com", mailer.sent[0])

	artifact := fmt.Sprintf("email_cv%s_jd%d.txt", candidateID, match.JobID)
	content, ok := storage.notifications[artifact]
	require.True(t, ok, "notification artifact must be written")
	assert.Contains(t, content, "For Job 2")
	assert.Contains(t, content, "87.50%")
}

func TestSchedulerDeliveryFailureKeepsRecord(t *testing.T) {
	repo := &memInterviewRepo{}
	storage := newStubStorage()
	mailer := &stubMailer{sendErr: errors.New("smtp refused")}
	scheduler := NewSchedulerService(repo, storage, mailer, time.Second)

	candidateID := uuid.New()
	match := models.RankedMatch{JobID: 1, Title: "Backend Engineer", Score: 45.0}

	record, err := scheduler.Schedule(context.Background(), candidateID, match, "candidate@example.com", "")
	require.NoError(t, err, "delivery failure must not surface as a scheduling error")
	require.NotNil(t, record)
	assert.Equal(t, models.InterviewFailed, record.Status)

	// The record survived the failed notification.
	stored, err := repo.FindLatestByPair(candidateID, 1)
	require.NoError(t, err)
	assert.Equal(t, models.InterviewFailed, stored.Status)
	assert.Equal(t, 45.0, stored.Score)
}

func TestSchedulerNoRecipientStaysProposed(t *testing.T) {
	repo := &memInterviewRepo{}
	mailer := &stubMailer{}
	scheduler := NewSchedulerService(repo, newStubStorage(), mailer, time.Second)

	record, err := scheduler.Schedule(context.Background(), uuid.New(), models.RankedMatch{JobID: 3, Score: 60.0}, "", "")
	require.NoError(t, err)
	assert.Equal(t, models.InterviewProposed, record.Status)
	assert.Empty(t, mailer.sent, "no delivery attempt without a recipient")
}

func TestSchedulerPersistenceFailure(t *testing.T) {
	repo := &memInterviewRepo{createErr: errors.New("db down")}
	mailer := &stubMailer{}
	scheduler := NewSchedulerService(repo, newStubStorage(), mailer, time.Second)

	record, err := scheduler.Schedule(context.Background(), uuid.New(), models.RankedMatch{JobID: 1, Score: 90.0}, "candidate@example.com", "")
	require.Error(t, err)
	assert.Nil(t, record)
	assert.Empty(t, mailer.sent, "no notification for an unpersisted interview")
}

func TestSchedulerRescheduleAppendsHistory(t *testing.T) {
	repo := &memInterviewRepo{}
	scheduler := NewSchedulerService(repo, newStubStorage(), &stubMailer{}, time.Second)

	candidateID := uuid.New()
	match := models.RankedMatch{JobID: 2, Score: 70.0}

	first, err := scheduler.Schedule(context.Background(), candidateID, match, "candidate@example.com", "")
	require.NoError(t, err)
	second, err := scheduler.Schedule(context.Background(), candidateID, match, "candidate@example.com", "")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	records, err := repo.ListByCandidate(candidateID)
	require.NoError(t, err)
	assert.Len(t, records, 2, "rescheduling the same pair appends, never overwrites")

	latest, err := repo.FindLatestByPair(candidateID, 2)
	require.NoError(t, err)
	assert.Equal(t, second.ID, latest.ID)
}

func TestSchedulerArtifactWriteFailureIsNotFatal(t *testing.T) {
	repo := &memInterviewRepo{}
	storage := newStubStorage()
	storage.writeErr = errors.New("disk full")
	mailer := &stubMailer{}
	scheduler := NewSchedulerService(repo, storage, mailer, time.Second)

	record, err := scheduler.Schedule(context.Background(), uuid.New(), models.RankedMatch{JobID: 1, Score: 50.0}, "candidate@example.com", "")
	require.NoError(t, err)
	assert.Equal(t, models.InterviewSent, record.Status)
	assert.Len(t, mailer.sent, 1)
}
