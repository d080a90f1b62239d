package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/workforcehq/workforce-api/internal/apperrors"
	"github.com/workforcehq/workforce-api/internal/dto"
	"github.com/workforcehq/workforce-api/internal/models"
	"github.com/workforcehq/workforce-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// LogWorkService manages the work-log entries embedded in a task and
// keeps the task's actual-time aggregate consistent with them. Deleted
// entries stay in the log with status DISABLE and their hours remain
// counted in the aggregate.
type LogWorkService struct {
	taskRepo repository.TaskRepository
	logger   *zap.Logger
}

// NewLogWorkService creates a new LogWorkService.
func NewLogWorkService(taskRepo repository.TaskRepository, logger *zap.Logger) *LogWorkService {
	return &LogWorkService{taskRepo: taskRepo, logger: logger}
}

func (s *LogWorkService) findTask(taskID int64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("task", taskID)
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

// CreateLogWork appends a new entry to the task's work log and adds its
// duration to the task's actual time.
func (s *LogWorkService) CreateLogWork(taskID int64, req dto.CreateLogWorkRequest) (*dto.LogWorkDTO, error) {
	if req.StartTime.After(req.EndTime) {
		return nil, apperrors.InvalidTimeRange("log work")
	}

	task, err := s.findTask(taskID)
	if err != nil {
		return nil, err
	}

	entry := models.LogWork{
		ID:        uuid.NewString(),
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Status:    models.StatusActive,
	}

	task.LogWorks = append(task.LogWorks, entry)
	task.ActualTime += entry.Duration()

	if err := s.taskRepo.Save(task); err != nil {
		return nil, fmt.Errorf("failed to create log work: %w", err)
	}
	s.logger.Info("log work created",
		zap.Int64("task_id", taskID),
		zap.String("id", entry.ID),
		zap.Float64("hours", entry.Duration()))

	out := dto.ToLogWorkDTO(entry)
	return &out, nil
}

// FindLogWorkByID returns a single entry from the task's work log.
func (s *LogWorkService) FindLogWorkByID(taskID int64, logWorkID string) (*dto.LogWorkDTO, error) {
	task, err := s.findTask(taskID)
	if err != nil {
		return nil, err
	}

	for _, entry := range task.LogWorks {
		if entry.ID == logWorkID {
			out := dto.ToLogWorkDTO(entry)
			return &out, nil
		}
	}
	return nil, apperrors.NotFound("log work", logWorkID)
}

// ListLogWorks returns every entry in the task's work log, disabled
// entries included.
func (s *LogWorkService) ListLogWorks(taskID int64) ([]dto.LogWorkDTO, error) {
	task, err := s.findTask(taskID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.LogWorkDTO, len(task.LogWorks))
	for i, entry := range task.LogWorks {
		out[i] = dto.ToLogWorkDTO(entry)
	}
	return out, nil
}

// DeleteLogWorkByID marks an entry DISABLE in place. The entry stays in
// the log and the task's actual time keeps its hours.
func (s *LogWorkService) DeleteLogWorkByID(taskID int64, logWorkID string) (*dto.LogWorkDTO, error) {
	task, err := s.findTask(taskID)
	if err != nil {
		return nil, err
	}

	for i, entry := range task.LogWorks {
		if entry.ID != logWorkID {
			continue
		}
		if entry.Status == models.StatusDisable {
			return nil, apperrors.AlreadyDeleted("log work", logWorkID)
		}

		task.LogWorks[i].Status = models.StatusDisable
		if err := s.taskRepo.Save(task); err != nil {
			return nil, fmt.Errorf("failed to delete log work: %w", err)
		}
		s.logger.Info("log work deleted", zap.Int64("task_id", taskID), zap.String("id", logWorkID))

		out := dto.ToLogWorkDTO(task.LogWorks[i])
		return &out, nil
	}
	return nil, apperrors.NotFound("log work", logWorkID)
}

// UpdateLogWork replaces an entry's time range and status, shifting the
// task's actual time by the difference between the old and new
// durations.
func (s *LogWorkService) UpdateLogWork(taskID int64, req dto.UpdateLogWorkRequest) (*dto.LogWorkDTO, error) {
	if req.StartTime.After(req.EndTime) {
		return nil, apperrors.InvalidTimeRange("log work")
	}

	task, err := s.findTask(taskID)
	if err != nil {
		return nil, err
	}

	for i, entry := range task.LogWorks {
		if entry.ID != req.ID {
			continue
		}

		updated := models.LogWork{
			ID:        entry.ID,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
			Status:    req.Status,
		}
		task.ActualTime = task.ActualTime - entry.Duration() + updated.Duration()
		task.LogWorks[i] = updated

		if err := s.taskRepo.Save(task); err != nil {
			return nil, fmt.Errorf("failed to update log work: %w", err)
		}
		s.logger.Info("log work updated", zap.Int64("task_id", taskID), zap.String("id", req.ID))

		out := dto.ToLogWorkDTO(updated)
		return &out, nil
	}
	return nil, apperrors.NotFound("log work", req.ID)
}
