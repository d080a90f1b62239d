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

type UserAccountHandler struct {
	service *services.UserAccountService
}

func NewUserAccountHandler(service *services.UserAccountService) *UserAccountHandler {
	return &UserAccountHandler{service: service}
}

// CreateUserAccount creates a new user account
func (h *UserAccountHandler) CreateUserAccount(c *gin.Context) {
	var req dto.CreateUserAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "invalid request body")
		return
	}

	account, err := h.service.CreateUserAccount(req)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, account)
}

// GetUserAccount returns a single user account by id
func (h *UserAccountHandler) GetUserAccount(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	account, err := h.service.FindUserAccountByID(id)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

// UpdateUserAccount updates a user account
func (h *UserAccountHandler) UpdateUserAccount(c *gin.Context) {
	var req dto.UpdateUserAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "invalid request body")
		return
	}

	account, err := h.service.UpdateUserAccount(req)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

// DeleteUserAccount marks a user account as deleted
func (h *UserAccountHandler) DeleteUserAccount(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	account, err := h.service.DeleteUserAccountByID(id)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

// SearchUserAccounts returns a page of user accounts matching the
// search text, optionally restricted to one team
func (h *UserAccountHandler) SearchUserAccounts(c *gin.Context) {
	var teamID int64
	if raw := c.Query("teamId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			apperrors.BadRequest(c, "invalid teamId parameter")
			return
		}
		teamID = parsed
	}

	result, err := h.service.SearchUserAccounts(c.Query("searchText"), teamID, utils.GetPageRequest(c))
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
