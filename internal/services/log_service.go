package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sawamura/exercise-tracker-api/internal/models"
	"github.com/sawamura/exercise-tracker-api/internal/repository"
)

// LogService answers exercise history queries.
type LogService struct {
	exerciseRepo repository.ExerciseRepository
	userService  *UserService
	timeout      time.Duration
}

// NewLogService creates a new LogService.
func NewLogService(exerciseRepo repository.ExerciseRepository, userService *UserService, timeout time.Duration) *LogService {
	return &LogService{
		exerciseRepo: exerciseRepo,
		userService:  userService,
		timeout:      timeout,
	}
}

// LogQuery holds the raw query parameters for a history lookup.
type LogQuery struct {
	UserID string
	From   string
	To     string
	Limit  string
}

// DateBound is a parsed range endpoint. Valid reports whether the request
// supplied a parseable date; an invalid bound falls back to its default
// and is omitted from the response.
type DateBound struct {
	Value time.Time
	Valid bool
}

// LogResult is the outcome of a history query.
type LogResult struct {
	User      *models.User
	From      DateBound
	To        DateBound
	Exercises []models.Exercise
}

// Count returns the number of records after truncation.
func (r *LogResult) Count() int {
	return len(r.Exercises)
}

// QueryLog returns the user's exercises with date strictly between the
// bounds, newest first, truncated to the limit. A missing or unparseable
// lower bound defaults to the epoch, a missing or unparseable upper bound
// to the query instant, and a missing or non-numeric limit means no
// truncation.
func (s *LogService) QueryLog(ctx context.Context, query LogQuery) (*LogResult, error) {
	user, err := s.userService.GetUser(ctx, query.UserID)
	if err != nil {
		return nil, err
	}

	from, fromOK := ParseDate(query.From)
	to, toOK := ParseDate(query.To)

	lower := time.Unix(0, 0)
	if fromOK {
		lower = from
	}
	upper := time.Now()
	if toOK {
		upper = to
	}

	filter := repository.ExerciseFilter{
		UserID: user.ID,
		After:  lower,
		Before: upper,
	}
	if limit, ok := parseLimit(query.Limit); ok {
		filter.Limit = &limit
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	exercises, err := s.exerciseRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}

	return &LogResult{
		User:      user,
		From:      DateBound{Value: from, Valid: fromOK},
		To:        DateBound{Value: to, Valid: toOK},
		Exercises: exercises,
	}, nil
}

// parseLimit returns the truncation limit. Only a non-negative integer
// truncates; zero keeps zero records. Anything else means return all
// matches.
func parseLimit(value string) (int, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}

	limit, err := strconv.Atoi(value)
	if err != nil || limit < 0 {
		return 0, false
	}

	return limit, true
}
