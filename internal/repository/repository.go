package repository

import (
	"context"
	"time"

	"github.com/sawamura/exercise-tracker-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *models.User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id string) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

// ExerciseFilter holds selection options for listing exercises.
// After and Before are strict bounds: a record dated exactly at either
// bound is excluded.
type ExerciseFilter struct {
	UserID string
	After  time.Time
	Before time.Time
	Limit  *int
}

// ExerciseRepository defines the interface for exercise data access
type ExerciseRepository interface {
	// Create creates a new exercise record
	Create(ctx context.Context, exercise *models.Exercise) error

	// List retrieves exercises matching the filter, most recent first
	List(ctx context.Context, filter ExerciseFilter) ([]models.Exercise, error)
}
