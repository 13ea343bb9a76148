package models

import (
	"time"

	"github.com/google/uuid"
)

type ScreeningStatus string

const (
	StatusQueued     ScreeningStatus = "queued"
	StatusProcessing ScreeningStatus = "processing"
	StatusCompleted  ScreeningStatus = "completed"
	StatusFailed     ScreeningStatus = "failed"
)

// ScreeningJob is one queued screening of a resume against the full job
// corpus. The candidate reference for match results and interviews is the
// resume document id.
type ScreeningJob struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ResumeDocumentID uuid.UUID       `gorm:"type:uuid;not null" json:"resume_document_id"`
	CandidateEmail   string          `gorm:"type:text" json:"candidate_email"`
	Status           ScreeningStatus `gorm:"not null;default:'queued'" json:"status"`
	ErrorMessage     *string         `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt        time.Time       `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relations
	ResumeDocument Document `gorm:"foreignKey:ResumeDocumentID" json:"-"`
}

func (ScreeningJob) TableName() string {
	return "screening_jobs"
}
