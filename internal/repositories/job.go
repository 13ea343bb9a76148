package repositories

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"go-job-screening/internal/models"
)

type JobRepository interface {
	Upsert(job *models.JobPosting) error
	FindByID(id uint) (*models.JobPosting, error)
	// FindAll returns the full corpus ordered by ascending id, which is the
	// stable tie-break order for ranking.
	FindAll() ([]models.JobPosting, error)
	UpdateSummary(id uint, summary string) error
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

// Upsert implements JobRepository. Re-importing the corpus keeps row ids
// stable and refreshes title/description without clearing a cached summary.
func (r *jobRepository) Upsert(job *models.JobPosting) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "description", "updated_at"}),
	}).Create(job).Error
	if err != nil {
		return fmt.Errorf("failed to upsert job posting: %w", err)
	}

	return nil
}

// FindByID implements JobRepository.
func (r *jobRepository) FindByID(id uint) (*models.JobPosting, error) {
	var job models.JobPosting
	if err := r.db.Where("id = ?", id).First(&job).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("job posting not found")
		}

		return nil, fmt.Errorf("failed to find job posting: %w", err)
	}

	return &job, nil
}

// FindAll implements JobRepository.
func (r *jobRepository) FindAll() ([]models.JobPosting, error) {
	var jobs []models.JobPosting
	if err := r.db.Order("id ASC").Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("failed to list job postings: %w", err)
	}

	return jobs, nil
}

// UpdateSummary implements JobRepository.
func (r *jobRepository) UpdateSummary(id uint, summary string) error {
	result := r.db.Model(&models.JobPosting{}).
		Where("id = ?", id).
		Update("summary", summary)

	if result.Error != nil {
		return fmt.Errorf("failed to update summary: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("job posting not found")
	}

	return nil
}
