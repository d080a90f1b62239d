package dto

import (
	"time"

	"github.com/workforcehq/workforce-api/internal/models"
)

// TaskDTO represents a task in API responses. Assignee is the resolved
// user account, embedded by the service layer and omitted when the task
// is unassigned or the reference does not resolve.
type TaskDTO struct {
	ID            int64               `json:"id"`
	Title         string              `json:"title"`
	Description   string              `json:"description"`
	StartTime     time.Time           `json:"start_time"`
	EstimatedTime float64             `json:"estimated_time"`
	ActualTime    float64             `json:"actual_time"`
	Status        models.EntityStatus `json:"status"`
	UserAccountID int64               `json:"user_account_id"`
	Assignee      *UserAccountDTO     `json:"assignee,omitempty"`
	LogWorks      []LogWorkDTO        `json:"log_works"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// LogWorkDTO represents a work-log entry in API responses.
type LogWorkDTO struct {
	ID        string              `json:"id"`
	StartTime time.Time           `json:"start_time"`
	EndTime   time.Time           `json:"end_time"`
	Status    models.EntityStatus `json:"status"`
}

// CreateTaskRequest is the payload for creating a task. AssigneeID may be
// 0 or reference a missing account; both mean unassigned.
type CreateTaskRequest struct {
	Title         string    `json:"title" binding:"required"`
	Description   string    `json:"description"`
	StartTime     time.Time `json:"start_time" binding:"required"`
	EstimatedTime float64   `json:"estimated_time" binding:"required"`
	AssigneeID    int64     `json:"assignee_id"`
}

// UpdateTaskRequest is the payload for replacing a task.
type UpdateTaskRequest struct {
	ID            int64               `json:"id" binding:"required"`
	Title         string              `json:"title" binding:"required"`
	Description   string              `json:"description"`
	StartTime     time.Time           `json:"start_time" binding:"required"`
	EstimatedTime float64             `json:"estimated_time" binding:"required"`
	Status        models.EntityStatus `json:"status"`
	AssigneeID    int64               `json:"assignee_id"`
}

// AssignTaskRequest is the payload for assigning a task to a user
// account.
type AssignTaskRequest struct {
	UserID int64 `json:"user_id" binding:"required"`
}

// CreateLogWorkRequest is the payload for logging work on a task.
type CreateLogWorkRequest struct {
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

// UpdateLogWorkRequest is the payload for replacing a work-log entry.
type UpdateLogWorkRequest struct {
	ID        string              `json:"id" binding:"required"`
	StartTime time.Time           `json:"start_time" binding:"required"`
	EndTime   time.Time           `json:"end_time" binding:"required"`
	Status    models.EntityStatus `json:"status"`
}

// ToTaskDTO converts a Task model to TaskDTO. The assignee is left
// unset; resolution is the service layer's responsibility.
func ToTaskDTO(task models.Task) TaskDTO {
	logWorks := make([]LogWorkDTO, len(task.LogWorks))
	for i, entry := range task.LogWorks {
		logWorks[i] = ToLogWorkDTO(entry)
	}

	return TaskDTO{
		ID:            task.ID,
		Title:         task.Title,
		Description:   task.Description,
		StartTime:     task.StartTime,
		EstimatedTime: task.EstimatedTime,
		ActualTime:    task.ActualTime,
		Status:        task.Status,
		UserAccountID: task.UserAccountID,
		LogWorks:      logWorks,
		CreatedAt:     task.CreatedAt,
		UpdatedAt:     task.UpdatedAt,
	}
}

// ToLogWorkDTO converts an embedded LogWork entry to LogWorkDTO.
func ToLogWorkDTO(entry models.LogWork) LogWorkDTO {
	return LogWorkDTO{
		ID:        entry.ID,
		StartTime: entry.StartTime,
		EndTime:   entry.EndTime,
		Status:    entry.Status,
	}
}
