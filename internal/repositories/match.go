package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"go-job-screening/internal/models"
)

type MatchRepository interface {
	// Upsert writes the score for one (candidate, job) pair. Re-screening the
	// same pair overwrites the existing row rather than appending.
	Upsert(match *models.MatchResult) error
	ListByCandidate(candidateID uuid.UUID) ([]models.MatchResult, error)
}

type matchRepository struct {
	db *gorm.DB
}

func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &matchRepository{db: db}
}

// Upsert implements MatchRepository.
func (r *matchRepository) Upsert(match *models.MatchResult) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "candidate_id"}, {Name: "job_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"score":      match.Score,
			"updated_at": time.Now(),
		}),
	}).Create(match).Error
	if err != nil {
		return fmt.Errorf("failed to upsert match result: %w", err)
	}

	return nil
}

// ListByCandidate implements MatchRepository.
func (r *matchRepository) ListByCandidate(candidateID uuid.UUID) ([]models.MatchResult, error) {
	var matches []models.MatchResult
	err := r.db.
		Where("candidate_id = ?", candidateID).
		Order("job_id ASC").
		Find(&matches).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list match results: %w", err)
	}

	return matches, nil
}
