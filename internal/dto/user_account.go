package dto

import (
	"time"

	"github.com/workforcehq/workforce-api/internal/models"
)

// UserAccountDTO represents a user account in API responses. Team,
// Office, and Role are the resolved referenced entities, embedded by the
// service layer; each is omitted when its reference does not resolve.
type UserAccountDTO struct {
	ID        int64               `json:"id"`
	Name      string              `json:"name"`
	Email     string              `json:"email"`
	Phone     string              `json:"phone"`
	Status    models.EntityStatus `json:"status"`
	TeamID    int64               `json:"team_id"`
	OfficeID  int64               `json:"office_id"`
	RoleID    int64               `json:"role_id"`
	Team      *TeamDTO            `json:"team,omitempty"`
	Office    *OfficeDTO          `json:"office,omitempty"`
	Role      *RoleDTO            `json:"role,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// CreateUserAccountRequest is the payload for creating a user account.
// TeamID may be 0 or reference a missing team; both mean unassigned.
type CreateUserAccountRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	TeamID   int64  `json:"team_id"`
	OfficeID int64  `json:"office_id" binding:"required"`
	RoleID   int64  `json:"role_id" binding:"required"`
}

// UpdateUserAccountRequest is the payload for replacing a user account.
type UpdateUserAccountRequest struct {
	ID       int64               `json:"id" binding:"required"`
	Name     string              `json:"name" binding:"required"`
	Email    string              `json:"email" binding:"required,email"`
	Phone    string              `json:"phone" binding:"required"`
	Status   models.EntityStatus `json:"status"`
	TeamID   int64               `json:"team_id"`
	OfficeID int64               `json:"office_id" binding:"required"`
	RoleID   int64               `json:"role_id" binding:"required"`
}

// ToUserAccountDTO converts a UserAccount model to UserAccountDTO. The
// referenced Team/Office/Role are left unset; resolution is the service
// layer's responsibility.
func ToUserAccountDTO(account models.UserAccount) UserAccountDTO {
	return UserAccountDTO{
		ID:        account.ID,
		Name:      account.Name,
		Email:     account.Email,
		Phone:     account.Phone,
		Status:    account.Status,
		TeamID:    account.TeamID,
		OfficeID:  account.OfficeID,
		RoleID:    account.RoleID,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}
