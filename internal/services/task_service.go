package services

import (
	"errors"
	"fmt"

	"github.com/workforcehq/workforce-api/internal/apperrors"
	"github.com/workforcehq/workforce-api/internal/dto"
	"github.com/workforcehq/workforce-api/internal/models"
	"github.com/workforcehq/workforce-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TaskService handles task lifecycle and assignee resolution. The
// assignee reference is best-effort on create and update (a missing
// account is stored as unassigned) but hard-validated on explicit
// assignment.
type TaskService struct {
	taskRepo    repository.TaskRepository
	accountRepo repository.UserAccountRepository
	sequence    *SequenceService
	logger      *zap.Logger
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repository.TaskRepository, accountRepo repository.UserAccountRepository, sequence *SequenceService, logger *zap.Logger) *TaskService {
	return &TaskService{
		taskRepo:    taskRepo,
		accountRepo: accountRepo,
		sequence:    sequence,
		logger:      logger,
	}
}

// resolveAssignee looks an account up best-effort: a missing account
// resolves to nil without error.
func (s *TaskService) resolveAssignee(id int64) (*models.UserAccount, error) {
	if id == 0 {
		return nil, nil
	}
	account, err := s.accountRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve assignee: %w", err)
	}
	return account, nil
}

// toResponse builds the response model for a task, embedding the
// assignee when the reference still resolves.
func (s *TaskService) toResponse(task models.Task) (dto.TaskDTO, error) {
	out := dto.ToTaskDTO(task)

	assignee, err := s.resolveAssignee(task.UserAccountID)
	if err != nil {
		return out, err
	}
	if assignee != nil {
		a := dto.ToUserAccountDTO(*assignee)
		out.Assignee = &a
	}

	return out, nil
}

// CreateTask creates a new task with an empty work log. A missing
// assignee is stored as unassigned rather than failing.
func (s *TaskService) CreateTask(req dto.CreateTaskRequest) (*dto.TaskDTO, error) {
	assignee, err := s.resolveAssignee(req.AssigneeID)
	if err != nil {
		return nil, err
	}

	id, err := s.sequence.Next(models.TaskSequenceName)
	if err != nil {
		return nil, err
	}

	task := &models.Task{
		ID:            id,
		Title:         req.Title,
		Description:   req.Description,
		StartTime:     req.StartTime,
		EstimatedTime: req.EstimatedTime,
		ActualTime:    0,
		Status:        models.StatusActive,
		LogWorks:      []models.LogWork{},
	}
	if assignee != nil {
		task.UserAccountID = req.AssigneeID
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	s.logger.Info("task created", zap.Int64("id", id), zap.String("title", task.Title))

	out := dto.ToTaskDTO(*task)
	if assignee != nil {
		a := dto.ToUserAccountDTO(*assignee)
		out.Assignee = &a
	}
	return &out, nil
}

// FindTaskByID returns a task with its assignee embedded when the
// reference still resolves.
func (s *TaskService) FindTaskByID(id int64) (*dto.TaskDTO, error) {
	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("task", id)
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	out, err := s.toResponse(*task)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTaskByID transitions a task from ACTIVE to DISABLE.
func (s *TaskService) DeleteTaskByID(id int64) (*dto.TaskDTO, error) {
	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("task", id)
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if task.Status == models.StatusDisable {
		return nil, apperrors.AlreadyDeleted("task", id)
	}

	task.Status = models.StatusDisable
	if err := s.taskRepo.Save(task); err != nil {
		return nil, fmt.Errorf("failed to delete task: %w", err)
	}
	s.logger.Info("task deleted", zap.Int64("id", id))

	out, err := s.toResponse(*task)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTask replaces a task's data. The work log and its aggregate are
// owned by the log-work operations and survive the replacement. A
// missing assignee falls back to unassigned.
func (s *TaskService) UpdateTask(req dto.UpdateTaskRequest) (*dto.TaskDTO, error) {
	task, err := s.taskRepo.FindByID(req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("task", req.ID)
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	assignee, err := s.resolveAssignee(req.AssigneeID)
	if err != nil {
		return nil, err
	}

	task.Title = req.Title
	task.Description = req.Description
	task.StartTime = req.StartTime
	task.EstimatedTime = req.EstimatedTime
	task.Status = req.Status
	if assignee != nil {
		task.UserAccountID = req.AssigneeID
	} else {
		task.UserAccountID = 0
	}

	if err := s.taskRepo.Save(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	s.logger.Info("task updated", zap.Int64("id", req.ID))

	out := dto.ToTaskDTO(*task)
	if assignee != nil {
		a := dto.ToUserAccountDTO(*assignee)
		out.Assignee = &a
	}
	return &out, nil
}

// AssignTaskToUser sets the task's assignee. Unlike create and update,
// both the task and the account must exist.
func (s *TaskService) AssignTaskToUser(taskID, userID int64) (*dto.TaskDTO, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("task", taskID)
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	account, err := s.accountRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("user account", userID)
		}
		return nil, fmt.Errorf("failed to find user account: %w", err)
	}

	task.UserAccountID = userID
	if err := s.taskRepo.Save(task); err != nil {
		return nil, fmt.Errorf("failed to assign task: %w", err)
	}
	s.logger.Info("task assigned", zap.Int64("task_id", taskID), zap.Int64("user_id", userID))

	out := dto.ToTaskDTO(*task)
	a := dto.ToUserAccountDTO(*account)
	out.Assignee = &a
	return &out, nil
}

// SearchTasks matches task titles by substring. Default sort key is the
// task start time.
func (s *TaskService) SearchTasks(searchText string, pr repository.PageRequest) (*dto.Resource[dto.TaskDTO], error) {
	return s.search(searchText, 0, pr)
}

// SearchTasksByUser matches task titles by substring among the tasks
// assigned to the given account, which must exist.
func (s *TaskService) SearchTasksByUser(searchText string, userID int64, pr repository.PageRequest) (*dto.Resource[dto.TaskDTO], error) {
	if _, err := s.accountRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("user account", userID)
		}
		return nil, fmt.Errorf("failed to find user account: %w", err)
	}
	return s.search(searchText, userID, pr)
}

func (s *TaskService) search(searchText string, userID int64, pr repository.PageRequest) (*dto.Resource[dto.TaskDTO], error) {
	pr = normalizePage(pr, "start_time")

	tasks, total, err := s.taskRepo.Search(searchText, userID, pr)
	if err != nil {
		return nil, fmt.Errorf("failed to search tasks: %w", err)
	}

	data := make([]dto.TaskDTO, len(tasks))
	for i, task := range tasks {
		out, err := s.toResponse(task)
		if err != nil {
			return nil, err
		}
		data[i] = out
	}

	resource := dto.NewResource(data, searchText, pr, total)
	return &resource, nil
}
