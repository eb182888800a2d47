package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sawamura/exercise-tracker-api/internal/dto"
	"github.com/sawamura/exercise-tracker-api/internal/models"
	"github.com/sawamura/exercise-tracker-api/internal/repository"
	"github.com/sawamura/exercise-tracker-api/internal/services"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ExerciseHandlerTestSuite defines the test suite for ExerciseHandler
type ExerciseHandlerTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
}

// SetupTest runs before each test
func (suite *ExerciseHandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(
		&models.User{},
		&models.Exercise{},
	)
	suite.Require().NoError(err)

	userRepo := repository.NewUserRepository(suite.db)
	exerciseRepo := repository.NewExerciseRepository(suite.db)

	timeout := 5 * time.Second
	userService := services.NewUserService(userRepo, timeout)
	exerciseService := services.NewExerciseService(exerciseRepo, userService, timeout)
	logService := services.NewLogService(exerciseRepo, userService, timeout)

	handler := NewExerciseHandler(exerciseService, logService)

	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.router.POST("/api/exercise/add", handler.AddExercise)
	suite.router.GET("/api/exercise/log", handler.GetLog)
}

// TearDownTest runs after each test
func (suite *ExerciseHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *ExerciseHandlerTestSuite) createTestUser(username string) *models.User {
	user := &models.User{
		ID:       uuid.NewString(),
		Username: username,
	}
	suite.db.Create(user)
	return user
}

func (suite *ExerciseHandlerTestSuite) postAdd(values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/exercise/add", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ExerciseHandlerTestSuite) TestAddExercise() {
	user := suite.createTestUser("alice")

	w := suite.postAdd(url.Values{
		"userId":      {user.ID},
		"description": {"morning run"},
		"duration":    {"30"},
		"date":        {"2024-01-01"},
	})

	suite.Equal(http.StatusOK, w.Code)

	var response dto.ExerciseDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal("alice", response.Username)
	suite.Equal(user.ID, response.UserID)
	suite.Equal("morning run", response.Description)
	suite.Equal(30, response.Duration)
	suite.Equal("Mon Jan 01 2024", response.Date)
}

func (suite *ExerciseHandlerTestSuite) TestAddExercise_DefaultsDateToNow() {
	user := suite.createTestUser("alice")

	w := suite.postAdd(url.Values{
		"userId":      {user.ID},
		"description": {"swim"},
		"duration":    {"45"},
	})

	suite.Equal(http.StatusOK, w.Code)

	var response dto.ExerciseDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal(time.Now().Format(dto.ResponseDateLayout), response.Date)
}

func (suite *ExerciseHandlerTestSuite) TestAddExercise_UnparseableDateDefaultsToNow() {
	user := suite.createTestUser("alice")

	w := suite.postAdd(url.Values{
		"userId":      {user.ID},
		"description": {"swim"},
		"duration":    {"45"},
		"date":        {"not-a-date"},
	})

	suite.Equal(http.StatusOK, w.Code)

	var response dto.ExerciseDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal(time.Now().Format(dto.ResponseDateLayout), response.Date)
}

func (suite *ExerciseHandlerTestSuite) TestAddExercise_UnknownUser() {
	w := suite.postAdd(url.Values{
		"userId":      {"does-not-exist"},
		"description": {"run"},
		"duration":    {"30"},
	})

	suite.Equal(http.StatusNotFound, w.Code)

	var count int64
	suite.Require().NoError(suite.db.Model(&models.Exercise{}).Count(&count).Error)
	suite.EqualValues(0, count)
}

func (suite *ExerciseHandlerTestSuite) TestAddExercise_NonIntegerDuration() {
	user := suite.createTestUser("alice")

	w := suite.postAdd(url.Values{
		"userId":      {user.ID},
		"description": {"run"},
		"duration":    {"thirty"},
	})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ExerciseHandlerTestSuite) TestAddExercise_DurationTooShort() {
	user := suite.createTestUser("alice")

	w := suite.postAdd(url.Values{
		"userId":      {user.ID},
		"description": {"run"},
		"duration":    {"0"},
	})

	suite.Equal(http.StatusBadRequest, w.Code)

	var count int64
	suite.Require().NoError(suite.db.Model(&models.Exercise{}).Count(&count).Error)
	suite.EqualValues(0, count)
}

func (suite *ExerciseHandlerTestSuite) TestAddExercise_MissingDescription() {
	user := suite.createTestUser("alice")

	w := suite.postAdd(url.Values{
		"userId":   {user.ID},
		"duration": {"30"},
	})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ExerciseHandlerTestSuite) TestAddExercise_DescriptionTooLong() {
	user := suite.createTestUser("alice")

	w := suite.postAdd(url.Values{
		"userId":      {user.ID},
		"description": {strings.Repeat("x", 21)},
		"duration":    {"30"},
	})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func TestExerciseHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ExerciseHandlerTestSuite))
}
