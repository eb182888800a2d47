package dto

import (
	"github.com/sawamura/exercise-tracker-api/internal/models"
	"github.com/sawamura/exercise-tracker-api/internal/services"
)

// ExerciseDTO represents a logged exercise in API responses
type ExerciseDTO struct {
	Username    string `json:"username"`
	UserID      string `json:"userId"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// ToExerciseDTO converts an exercise and its owner to ExerciseDTO
func ToExerciseDTO(user models.User, exercise models.Exercise) ExerciseDTO {
	return ExerciseDTO{
		Username:    user.Username,
		UserID:      exercise.UserID,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        FormatDate(exercise.Date),
	}
}

// LogEntryDTO represents a single record in a history response
type LogEntryDTO struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// LogDTO represents an exercise history response. From and To are present
// only when the request supplied parseable bounds.
type LogDTO struct {
	ID       string        `json:"_id"`
	Username string        `json:"username"`
	From     string        `json:"from,omitempty"`
	To       string        `json:"to,omitempty"`
	Count    int           `json:"count"`
	Log      []LogEntryDTO `json:"log"`
}

// ToLogDTO converts a log query result to LogDTO
func ToLogDTO(result *services.LogResult) LogDTO {
	entries := make([]LogEntryDTO, len(result.Exercises))
	for i, exercise := range result.Exercises {
		entries[i] = LogEntryDTO{
			Description: exercise.Description,
			Duration:    exercise.Duration,
			Date:        FormatDate(exercise.Date),
		}
	}

	out := LogDTO{
		ID:       result.User.ID,
		Username: result.User.Username,
		Count:    result.Count(),
		Log:      entries,
	}
	if result.From.Valid {
		out.From = FormatDate(result.From.Value)
	}
	if result.To.Valid {
		out.To = FormatDate(result.To.Value)
	}

	return out
}
