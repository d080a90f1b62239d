package dto

import (
	"time"

	"github.com/workforcehq/workforce-api/internal/models"
)

// TeamDTO represents a team in API responses.
type TeamDTO struct {
	ID        int64               `json:"id"`
	Name      string              `json:"name"`
	ShortName string              `json:"short_name"`
	Status    models.EntityStatus `json:"status"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// CreateTeamRequest is the payload for creating a team.
type CreateTeamRequest struct {
	Name      string `json:"name" binding:"required"`
	ShortName string `json:"short_name" binding:"required"`
}

// UpdateTeamRequest is the payload for replacing a team.
type UpdateTeamRequest struct {
	ID        int64               `json:"id" binding:"required"`
	Name      string              `json:"name" binding:"required"`
	ShortName string              `json:"short_name" binding:"required"`
	Status    models.EntityStatus `json:"status"`
}

// TeamMembersRequest carries the account ids for team membership changes.
type TeamMembersRequest struct {
	UserIDs []int64 `json:"user_ids" binding:"required,min=1"`
}

// ToTeamDTO converts a Team model to TeamDTO.
func ToTeamDTO(team models.Team) TeamDTO {
	return TeamDTO{
		ID:        team.ID,
		Name:      team.Name,
		ShortName: team.ShortName,
		Status:    team.Status,
		CreatedAt: team.CreatedAt,
		UpdatedAt: team.UpdatedAt,
	}
}
