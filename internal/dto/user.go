package dto

import (
	"time"

	"github.com/sawamura/exercise-tracker-api/internal/models"
)

// ResponseDateLayout is the fixed calendar-date form used in all API
// responses, e.g. "Mon Jan 01 2024". It never carries a time component.
const ResponseDateLayout = "Mon Jan 02 2006"

// FormatDate renders a timestamp in the response date form.
func FormatDate(t time.Time) string {
	return t.Format(ResponseDateLayout)
}

// UserDTO represents a user in API responses
type UserDTO struct {
	Username string `json:"username"`
	ID       string `json:"_id"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		Username: user.Username,
		ID:       user.ID,
	}
}
