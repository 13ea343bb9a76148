package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"go-job-screening/internal/models"
)

type ScreeningRepository interface {
	Create(job *models.ScreeningJob) error
	FindByID(id uuid.UUID) (*models.ScreeningJob, error)
	UpdateStatus(id uuid.UUID, status models.ScreeningStatus) error
	UpdateError(id uuid.UUID, errorMsg string) error
	FindPendingJobs(limit int) ([]models.ScreeningJob, error)
}

type screeningRepository struct {
	db *gorm.DB
}

func NewScreeningRepository(db *gorm.DB) ScreeningRepository {
	return &screeningRepository{db: db}
}

func (r *screeningRepository) Create(job *models.ScreeningJob) error {
	if err := r.db.Create(job).Error; err != nil {
		return fmt.Errorf("failed to create screening job: %w", err)
	}
	return nil
}

func (r *screeningRepository) FindByID(id uuid.UUID) (*models.ScreeningJob, error) {
	var job models.ScreeningJob
	if err := r.db.Where("id = ?", id).First(&job).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("screening job not found")
		}
		return nil, fmt.Errorf("failed to find screening job: %w", err)
	}
	return &job, nil
}

func (r *screeningRepository) UpdateStatus(id uuid.UUID, status models.ScreeningStatus) error {
	result := r.db.Model(&models.ScreeningJob{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update status: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("screening job not found")
	}

	return nil
}

func (r *screeningRepository) UpdateError(id uuid.UUID, errorMsg string) error {
	result := r.db.Model(&models.ScreeningJob{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        models.StatusFailed,
			"error_message": errorMsg,
			"updated_at":    time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update error: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("screening job not found")
	}

	return nil
}

func (r *screeningRepository) FindPendingJobs(limit int) ([]models.ScreeningJob, error) {
	var jobs []models.ScreeningJob
	err := r.db.
		Where("status = ?", models.StatusQueued).
		Order("created_at ASC").
		Limit(limit).
		Find(&jobs).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find pending jobs: %w", err)
	}

	return jobs, nil
}
