package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/workforcehq/workforce-api/internal/apperrors"
	"github.com/workforcehq/workforce-api/internal/dto"
	"github.com/workforcehq/workforce-api/internal/services"
)

type LogWorkHandler struct {
	service *services.LogWorkService
}

func NewLogWorkHandler(service *services.LogWorkService) *LogWorkHandler {
	return &LogWorkHandler{service: service}
}

// CreateLogWork logs work on a task
func (h *LogWorkHandler) CreateLogWork(c *gin.Context) {
	taskID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.CreateLogWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "invalid request body")
		return
	}

	entry, err := h.service.CreateLogWork(taskID, req)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// GetLogWork returns a single work-log entry
func (h *LogWorkHandler) GetLogWork(c *gin.Context) {
	taskID, ok := pathID(c, "id")
	if !ok {
		return
	}

	entry, err := h.service.FindLogWorkByID(taskID, c.Param("logworkId"))
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// ListLogWorks returns every work-log entry of a task
func (h *LogWorkHandler) ListLogWorks(c *gin.Context) {
	taskID, ok := pathID(c, "id")
	if !ok {
		return
	}

	entries, err := h.service.ListLogWorks(taskID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// UpdateLogWork replaces a work-log entry
func (h *LogWorkHandler) UpdateLogWork(c *gin.Context) {
	taskID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateLogWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "invalid request body")
		return
	}

	entry, err := h.service.UpdateLogWork(taskID, req)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// DeleteLogWork marks a work-log entry as deleted
func (h *LogWorkHandler) DeleteLogWork(c *gin.Context) {
	taskID, ok := pathID(c, "id")
	if !ok {
		return
	}

	entry, err := h.service.DeleteLogWorkByID(taskID, c.Param("logworkId"))
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}
