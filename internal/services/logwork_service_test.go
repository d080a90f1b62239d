package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/workforcehq/workforce-api/internal/apperrors"
	"github.com/workforcehq/workforce-api/internal/dto"
	"github.com/workforcehq/workforce-api/internal/models"
	"github.com/workforcehq/workforce-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type LogWorkServiceTestSuite struct {
	suite.Suite
	db          *gorm.DB
	service     *LogWorkService
	taskService *TaskService
	task        *dto.TaskDTO
}

func (suite *LogWorkServiceTestSuite) SetupTest() {
	db, err := openTestDB()
	suite.Require().NoError(err)
	suite.db = db

	sequence := NewSequenceService(repository.NewSequenceRepository(db))
	taskRepo := repository.NewTaskRepository(db)
	accountRepo := repository.NewUserAccountRepository(db)

	suite.taskService = NewTaskService(taskRepo, accountRepo, sequence, zap.NewNop())
	suite.service = NewLogWorkService(taskRepo, zap.NewNop())

	suite.task, err = suite.taskService.CreateTask(dto.CreateTaskRequest{
		Title:         "Build pipeline",
		StartTime:     time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
		EstimatedTime: 8,
	})
	suite.Require().NoError(err)
}

func (suite *LogWorkServiceTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *LogWorkServiceTestSuite) logHours(start time.Time, hours float64) *dto.LogWorkDTO {
	entry, err := suite.service.CreateLogWork(suite.task.ID, dto.CreateLogWorkRequest{
		StartTime: start,
		EndTime:   start.Add(time.Duration(hours * float64(time.Hour))),
	})
	suite.Require().NoError(err)
	return entry
}

func (suite *LogWorkServiceTestSuite) taskActualTime() float64 {
	task, err := suite.taskService.FindTaskByID(suite.task.ID)
	suite.Require().NoError(err)
	return task.ActualTime
}

func (suite *LogWorkServiceTestSuite) TestCreateLogWorkAccumulates() {
	day := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	first := suite.logHours(day, 2.5)
	suite.NotEmpty(first.ID)
	suite.Equal(models.StatusActive, first.Status)
	suite.Equal(2.5, suite.taskActualTime())

	suite.logHours(day.Add(4*time.Hour), 1.0)
	suite.Equal(3.5, suite.taskActualTime())
}

func (suite *LogWorkServiceTestSuite) TestCreateLogWorkTruncatesToMinutes() {
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	_, err := suite.service.CreateLogWork(suite.task.ID, dto.CreateLogWorkRequest{
		StartTime: start,
		EndTime:   start.Add(90*time.Minute + 45*time.Second),
	})
	suite.Require().NoError(err)

	// Whole minutes only: 90m45s counts as 90 minutes
	suite.Equal(1.5, suite.taskActualTime())
}

func (suite *LogWorkServiceTestSuite) TestCreateLogWorkInvalidRange() {
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	_, err := suite.service.CreateLogWork(suite.task.ID, dto.CreateLogWorkRequest{
		StartTime: start,
		EndTime:   start.Add(-time.Hour),
	})
	suite.Require().Error(err)
	suite.Equal(apperrors.KindInvalidTimeRange, apperrors.KindOf(err))
}

func (suite *LogWorkServiceTestSuite) TestCreateLogWorkUnknownTask() {
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	_, err := suite.service.CreateLogWork(42, dto.CreateLogWorkRequest{
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	})
	suite.Require().Error(err)
	suite.Equal("not found task with id 42", err.Error())
}

func (suite *LogWorkServiceTestSuite) TestFindLogWorkByID() {
	entry := suite.logHours(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC), 1)

	found, err := suite.service.FindLogWorkByID(suite.task.ID, entry.ID)
	suite.Require().NoError(err)
	suite.Equal(entry.ID, found.ID)
}

func (suite *LogWorkServiceTestSuite) TestFindLogWorkByIDNotFound() {
	_, err := suite.service.FindLogWorkByID(suite.task.ID, "missing")
	suite.Require().Error(err)
	suite.Equal("not found log work with id missing", err.Error())
}

func (suite *LogWorkServiceTestSuite) TestDeleteLogWorkKeepsAggregate() {
	entry := suite.logHours(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC), 2)

	deleted, err := suite.service.DeleteLogWorkByID(suite.task.ID, entry.ID)
	suite.Require().NoError(err)
	suite.Equal(models.StatusDisable, deleted.Status)

	// The entry stays in the log and its hours stay counted
	suite.Equal(float64(2), suite.taskActualTime())

	entries, err := suite.service.ListLogWorks(suite.task.ID)
	suite.Require().NoError(err)
	suite.Require().Len(entries, 1)
	suite.Equal(models.StatusDisable, entries[0].Status)
}

func (suite *LogWorkServiceTestSuite) TestDeleteLogWorkTwice() {
	entry := suite.logHours(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC), 2)

	_, err := suite.service.DeleteLogWorkByID(suite.task.ID, entry.ID)
	suite.Require().NoError(err)

	_, err = suite.service.DeleteLogWorkByID(suite.task.ID, entry.ID)
	suite.Require().Error(err)
	suite.Equal(apperrors.KindAlreadyDeleted, apperrors.KindOf(err))
}

func (suite *LogWorkServiceTestSuite) TestUpdateLogWorkShiftsAggregate() {
	day := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	entry := suite.logHours(day, 2)
	suite.logHours(day.Add(4*time.Hour), 1)
	suite.Equal(float64(3), suite.taskActualTime())

	updated, err := suite.service.UpdateLogWork(suite.task.ID, dto.UpdateLogWorkRequest{
		ID:        entry.ID,
		StartTime: day,
		EndTime:   day.Add(30 * time.Minute),
		Status:    models.StatusActive,
	})
	suite.Require().NoError(err)
	suite.Equal(entry.ID, updated.ID)

	// 3 - 2 + 0.5
	suite.Equal(1.5, suite.taskActualTime())

	// The entry keeps its position in the log
	entries, err := suite.service.ListLogWorks(suite.task.ID)
	suite.Require().NoError(err)
	suite.Require().Len(entries, 2)
	suite.Equal(entry.ID, entries[0].ID)
}

func (suite *LogWorkServiceTestSuite) TestUpdateLogWorkInvalidRange() {
	day := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	entry := suite.logHours(day, 2)

	_, err := suite.service.UpdateLogWork(suite.task.ID, dto.UpdateLogWorkRequest{
		ID:        entry.ID,
		StartTime: day,
		EndTime:   day.Add(-time.Minute),
		Status:    models.StatusActive,
	})
	suite.Require().Error(err)
	suite.Equal(apperrors.KindInvalidTimeRange, apperrors.KindOf(err))
}

func (suite *LogWorkServiceTestSuite) TestUpdateLogWorkNotFound() {
	day := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	_, err := suite.service.UpdateLogWork(suite.task.ID, dto.UpdateLogWorkRequest{
		ID:        "missing",
		StartTime: day,
		EndTime:   day.Add(time.Hour),
		Status:    models.StatusActive,
	})
	suite.Require().Error(err)
	suite.Equal("not found log work with id missing", err.Error())
}

func TestLogWorkServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LogWorkServiceTestSuite))
}
