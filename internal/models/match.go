package models

import (
	"time"

	"github.com/google/uuid"
)

// MatchResult is the persisted score for one (candidate, job) pair. One row
// exists per pair; re-screening upserts the score in place.
type MatchResult struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CandidateID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_candidate_job" json:"candidate_id"`
	JobID       uint      `gorm:"not null;uniqueIndex:idx_candidate_job" json:"job_id"`
	Score       float64   `gorm:"not null" json:"score"`
	CreatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (MatchResult) TableName() string {
	return "match_results"
}

type InterviewStatus string

const (
	InterviewProposed InterviewStatus = "proposed"
	InterviewSent     InterviewStatus = "sent"
	InterviewFailed   InterviewStatus = "failed"
)

// InterviewRecord is created when a match score passes the threshold gate.
// Records are append-only: rescheduling the same pair adds a new row, and the
// per-pair sequence of rows is the scheduling history. Only Status mutates
// after creation (proposed -> sent | failed).
type InterviewRecord struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CandidateID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"candidate_id"`
	JobID         uint            `gorm:"not null" json:"job_id"`
	Score         float64         `gorm:"not null" json:"score"`
	ScheduledDate time.Time       `gorm:"not null" json:"scheduled_date"`
	ScheduledTime string          `gorm:"type:text;not null" json:"scheduled_time"`
	Notes         string          `gorm:"type:text" json:"notes"`
	Status        InterviewStatus `gorm:"not null;default:'proposed'" json:"status"`
	CreatedAt     time.Time       `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (InterviewRecord) TableName() string {
	return "interview_records"
}
