package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/workforcehq/workforce-api/internal/apperrors"
	"github.com/workforcehq/workforce-api/internal/dto"
	"github.com/workforcehq/workforce-api/internal/services"
	"github.com/workforcehq/workforce-api/internal/utils"
)

type TaskHandler struct {
	service *services.TaskService
}

func NewTaskHandler(service *services.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// CreateTask creates a new task
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "invalid request body")
		return
	}

	task, err := h.service.CreateTask(req)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// GetTask returns a single task by id
func (h *TaskHandler) GetTask(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	task, err := h.service.FindTaskByID(id)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// UpdateTask updates a task
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "invalid request body")
		return
	}

	task, err := h.service.UpdateTask(req)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// DeleteTask marks a task as deleted
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	task, err := h.service.DeleteTaskByID(id)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// AssignTask sets the task's assignee
func (h *TaskHandler) AssignTask(c *gin.Context) {
	taskID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.AssignTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "invalid request body")
		return
	}

	task, err := h.service.AssignTaskToUser(taskID, req.UserID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// SearchTasks returns a page of tasks matching the search text,
// optionally restricted to one assignee
func (h *TaskHandler) SearchTasks(c *gin.Context) {
	searchText := c.Query("searchText")
	pr := utils.GetPageRequest(c)

	if raw := c.Query("userId"); raw != "" {
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			apperrors.BadRequest(c, "invalid userId parameter")
			return
		}
		result, err := h.service.SearchTasksByUser(searchText, userID, pr)
		if err != nil {
			apperrors.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
		return
	}

	result, err := h.service.SearchTasks(searchText, pr)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
