package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sawamura/exercise-tracker-api/internal/dto"
	apierrors "github.com/sawamura/exercise-tracker-api/internal/errors"
	"github.com/sawamura/exercise-tracker-api/internal/services"
)

// ExerciseHandler coordinates exercise logging and history HTTP handlers.
type ExerciseHandler struct {
	exerciseService *services.ExerciseService
	logService      *services.LogService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService *services.ExerciseService, logService *services.LogService) *ExerciseHandler {
	return &ExerciseHandler{
		exerciseService: exerciseService,
		logService:      logService,
	}
}

// AddExercise logs an exercise against a user.
func (h *ExerciseHandler) AddExercise(c *gin.Context) {
	type AddExerciseRequest struct {
		UserID      string `form:"userId" json:"userId"`
		Description string `form:"description" json:"description"`
		Duration    string `form:"duration" json:"duration"`
		Date        string `form:"date" json:"date"`
	}

	var req AddExerciseRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	exercise, user, err := h.exerciseService.AddExercise(c.Request.Context(), services.AddExerciseInput{
		UserID:      req.UserID,
		Description: req.Description,
		Duration:    req.Duration,
		Date:        req.Date,
	})
	if err != nil {
		respondExerciseError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToExerciseDTO(*user, *exercise))
}

// GetLog returns a user's exercise history filtered by date range and
// truncated by limit.
func (h *ExerciseHandler) GetLog(c *gin.Context) {
	result, err := h.logService.QueryLog(c.Request.Context(), services.LogQuery{
		UserID: c.Query("userId"),
		From:   c.Query("from"),
		To:     c.Query("to"),
		Limit:  c.Query("limit"),
	})
	if err != nil {
		respondExerciseError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLogDTO(result))
}

func respondExerciseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrDescriptionRequired),
		errors.Is(err, services.ErrDescriptionTooLong),
		errors.Is(err, services.ErrDurationRequired),
		errors.Is(err, services.ErrDurationInvalid),
		errors.Is(err, services.ErrDurationTooShort):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
