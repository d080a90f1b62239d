package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/workforcehq/workforce-api/internal/apperrors"
	"github.com/workforcehq/workforce-api/internal/dto"
	"github.com/workforcehq/workforce-api/internal/services"
	"github.com/workforcehq/workforce-api/internal/utils"
)

type TeamHandler struct {
	service        *services.TeamService
	accountService *services.UserAccountService
}

func NewTeamHandler(service *services.TeamService, accountService *services.UserAccountService) *TeamHandler {
	return &TeamHandler{service: service, accountService: accountService}
}

// CreateTeam creates a new team
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var req dto.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "invalid request body")
		return
	}

	team, err := h.service.CreateTeam(req)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, team)
}

// GetTeam returns a single team by id
func (h *TeamHandler) GetTeam(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	team, err := h.service.FindTeamByID(id)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// UpdateTeam updates a team
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	var req dto.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "invalid request body")
		return
	}

	team, err := h.service.UpdateTeam(req)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// DeleteTeam marks a team as deleted
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	team, err := h.service.DeleteTeamByID(id)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// SearchTeams returns a page of teams matching the search text
func (h *TeamHandler) SearchTeams(c *gin.Context) {
	result, err := h.service.SearchTeams(c.Query("searchText"), utils.GetPageRequest(c))
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// AddUsersToTeam places the given user accounts on the team
func (h *TeamHandler) AddUsersToTeam(c *gin.Context) {
	teamID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.TeamMembersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "invalid request body")
		return
	}

	accounts, err := h.accountService.AddUsersToTeam(teamID, req.UserIDs)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, accounts)
}

// RemoveUsersFromTeam takes the given user accounts off the team
func (h *TeamHandler) RemoveUsersFromTeam(c *gin.Context) {
	teamID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.TeamMembersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "invalid request body")
		return
	}

	accounts, err := h.accountService.RemoveUsersFromTeam(teamID, req.UserIDs)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, accounts)
}
