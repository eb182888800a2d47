package repository

import (
	"context"

	"github.com/sawamura/exercise-tracker-api/internal/models"
	"gorm.io/gorm"
)

// GormExerciseRepository is a GORM implementation of ExerciseRepository
type GormExerciseRepository struct {
	db *gorm.DB
}

// NewExerciseRepository creates a new ExerciseRepository
func NewExerciseRepository(db *gorm.DB) ExerciseRepository {
	return &GormExerciseRepository{db: db}
}

// Create creates a new exercise record
func (r *GormExerciseRepository) Create(ctx context.Context, exercise *models.Exercise) error {
	return r.db.WithContext(ctx).Create(exercise).Error
}

// List retrieves exercises matching the filter, most recent first.
// Equal dates fall back to insertion order, newest insert first.
func (r *GormExerciseRepository) List(ctx context.Context, filter ExerciseFilter) ([]models.Exercise, error) {
	var exercises []models.Exercise

	query := r.db.WithContext(ctx).
		Where("user_id = ?", filter.UserID).
		Where("date > ?", filter.After).
		Where("date < ?", filter.Before).
		Order("date DESC, created_at DESC")

	if filter.Limit != nil {
		query = query.Limit(*filter.Limit)
	}

	if err := query.Find(&exercises).Error; err != nil {
		return nil, err
	}

	return exercises, nil
}
