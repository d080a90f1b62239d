package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/workforcehq/workforce-api/internal/apperrors"
	"github.com/workforcehq/workforce-api/internal/dto"
	"github.com/workforcehq/workforce-api/internal/services"
	"github.com/workforcehq/workforce-api/internal/utils"
)

type RoleHandler struct {
	service *services.RoleService
}

func NewRoleHandler(service *services.RoleService) *RoleHandler {
	return &RoleHandler{service: service}
}

// CreateRole creates a new role
func (h *RoleHandler) CreateRole(c *gin.Context) {
	var req dto.CreateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "invalid request body")
		return
	}

	role, err := h.service.CreateRole(req)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, role)
}

// GetRole returns a single role by id
func (h *RoleHandler) GetRole(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	role, err := h.service.FindRoleByID(id)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, role)
}

// UpdateRole updates a role
func (h *RoleHandler) UpdateRole(c *gin.Context) {
	var req dto.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "invalid request body")
		return
	}

	role, err := h.service.UpdateRole(req)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, role)
}

// DeleteRole marks a role as deleted
func (h *RoleHandler) DeleteRole(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	role, err := h.service.DeleteRoleByID(id)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, role)
}

// SearchRoles returns a page of roles matching the search text
func (h *RoleHandler) SearchRoles(c *gin.Context) {
	result, err := h.service.SearchRoles(c.Query("searchText"), utils.GetPageRequest(c))
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
