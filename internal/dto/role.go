package dto

import (
	"time"

	"github.com/workforcehq/workforce-api/internal/models"
)

// RoleDTO represents a role in API responses.
type RoleDTO struct {
	ID        int64               `json:"id"`
	Name      string              `json:"name"`
	ShortName string              `json:"short_name"`
	Status    models.EntityStatus `json:"status"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// CreateRoleRequest is the payload for creating a role.
type CreateRoleRequest struct {
	Name      string `json:"name" binding:"required"`
	ShortName string `json:"short_name" binding:"required"`
}

// UpdateRoleRequest is the payload for replacing a role.
type UpdateRoleRequest struct {
	ID        int64               `json:"id" binding:"required"`
	Name      string              `json:"name" binding:"required"`
	ShortName string              `json:"short_name" binding:"required"`
	Status    models.EntityStatus `json:"status"`
}

// ToRoleDTO converts a Role model to RoleDTO.
func ToRoleDTO(role models.Role) RoleDTO {
	return RoleDTO{
		ID:        role.ID,
		Name:      role.Name,
		ShortName: role.ShortName,
		Status:    role.Status,
		CreatedAt: role.CreatedAt,
		UpdatedAt: role.UpdatedAt,
	}
}
