package models

import (
	"time"
)

// JobPosting is one row of the ingested job corpus. IDs are assigned from the
// 1-based row order of the source CSV. Once Summary is filled it is treated as
// ground truth for all scoring; the raw description is never scored again.
type JobPosting struct {
	ID          uint      `gorm:"primary_key" json:"id"`
	Title       string    `gorm:"type:text;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Summary     string    `gorm:"type:text" json:"summary"`
	CreatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (JobPosting) TableName() string {
	return "job_postings"
}

// HasSummary reports whether the posting already carries a cached summary.
func (j *JobPosting) HasSummary() bool {
	return j.Summary != ""
}
