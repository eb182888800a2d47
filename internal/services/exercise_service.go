package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sawamura/exercise-tracker-api/internal/models"
	"github.com/sawamura/exercise-tracker-api/internal/repository"
)

const (
	maxDescriptionLength = 20
	minDuration          = 1
)

var (
	ErrDescriptionRequired = errors.New("description is required")
	ErrDescriptionTooLong  = errors.New("description is too long")
	ErrDurationRequired    = errors.New("duration is required")
	ErrDurationInvalid     = errors.New("duration must be an integer")
	ErrDurationTooShort    = errors.New("duration is too short")
)

// ExerciseService handles exercise logging business logic.
type ExerciseService struct {
	exerciseRepo repository.ExerciseRepository
	userService  *UserService
	timeout      time.Duration
}

// NewExerciseService creates a new ExerciseService.
func NewExerciseService(exerciseRepo repository.ExerciseRepository, userService *UserService, timeout time.Duration) *ExerciseService {
	return &ExerciseService{
		exerciseRepo: exerciseRepo,
		userService:  userService,
		timeout:      timeout,
	}
}

// AddExerciseInput holds the raw request fields for logging an exercise.
// Duration and Date arrive as strings from form or query encoding and
// are validated here.
type AddExerciseInput struct {
	UserID      string
	Description string
	Duration    string
	Date        string
}

// AddExercise validates the input, resolves the owning user and persists
// the record. An absent or unparseable date defaults to the current time.
func (s *ExerciseService) AddExercise(ctx context.Context, input AddExerciseInput) (*models.Exercise, *models.User, error) {
	user, err := s.userService.GetUser(ctx, input.UserID)
	if err != nil {
		return nil, nil, err
	}

	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, nil, ErrDescriptionRequired
	}
	if len(description) > maxDescriptionLength {
		return nil, nil, ErrDescriptionTooLong
	}

	rawDuration := strings.TrimSpace(input.Duration)
	if rawDuration == "" {
		return nil, nil, ErrDurationRequired
	}
	duration, err := strconv.Atoi(rawDuration)
	if err != nil {
		return nil, nil, ErrDurationInvalid
	}
	if duration < minDuration {
		return nil, nil, ErrDurationTooShort
	}

	date, ok := ParseDate(input.Date)
	if !ok {
		date = time.Now()
	}

	exercise := &models.Exercise{
		ID:          uuid.NewString(),
		UserID:      user.ID,
		Description: description,
		Duration:    duration,
		Date:        date,
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.exerciseRepo.Create(ctx, exercise); err != nil {
		return nil, nil, fmt.Errorf("failed to create exercise: %w", err)
	}

	return exercise, user, nil
}
