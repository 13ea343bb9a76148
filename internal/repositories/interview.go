package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"go-job-screening/internal/models"
)

type InterviewRepository interface {
	// Create appends a new record. Scheduling the same (candidate, job) pair
	// again is a reschedule and adds another row; the per-pair rows in
	// creation order are the scheduling history.
	Create(record *models.InterviewRecord) error
	UpdateStatus(id uuid.UUID, status models.InterviewStatus) error
	ListByCandidate(candidateID uuid.UUID) ([]models.InterviewRecord, error)
	FindLatestByPair(candidateID uuid.UUID, jobID uint) (*models.InterviewRecord, error)
}

type interviewRepository struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) InterviewRepository {
	return &interviewRepository{db: db}
}

// Create implements InterviewRepository.
func (r *interviewRepository) Create(record *models.InterviewRecord) error {
	if err := r.db.Create(record).Error; err != nil {
		return fmt.Errorf("failed to create interview record: %w", err)
	}

	return nil
}

// UpdateStatus implements InterviewRepository.
func (r *interviewRepository) UpdateStatus(id uuid.UUID, status models.InterviewStatus) error {
	result := r.db.Model(&models.InterviewRecord{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update interview status: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("interview record not found")
	}

	return nil
}

// ListByCandidate implements InterviewRepository.
func (r *interviewRepository) ListByCandidate(candidateID uuid.UUID) ([]models.InterviewRecord, error) {
	var records []models.InterviewRecord
	err := r.db.
		Where("candidate_id = ?", candidateID).
		Order("created_at ASC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list interview records: %w", err)
	}

	return records, nil
}

// FindLatestByPair implements InterviewRepository.
func (r *interviewRepository) FindLatestByPair(candidateID uuid.UUID, jobID uint) (*models.InterviewRecord, error) {
	var record models.InterviewRecord
	err := r.db.
		Where("candidate_id = ? AND job_id = ?", candidateID, jobID).
		Order("created_at DESC").
		First(&record).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("interview record not found")
		}

		return nil, fmt.Errorf("failed to find interview record: %w", err)
	}

	return &record, nil
}
