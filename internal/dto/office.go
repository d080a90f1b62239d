package dto

import (
	"time"

	"github.com/workforcehq/workforce-api/internal/models"
)

// OfficeDTO represents an office in API responses.
type OfficeDTO struct {
	ID        int64               `json:"id"`
	Name      string              `json:"name"`
	Location  string              `json:"location"`
	Status    models.EntityStatus `json:"status"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// CreateOfficeRequest is the payload for creating an office.
type CreateOfficeRequest struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location" binding:"required"`
}

// UpdateOfficeRequest is the payload for replacing an office.
type UpdateOfficeRequest struct {
	ID       int64               `json:"id" binding:"required"`
	Name     string              `json:"name" binding:"required"`
	Location string              `json:"location" binding:"required"`
	Status   models.EntityStatus `json:"status"`
}

// ToOfficeDTO converts an Office model to OfficeDTO.
func ToOfficeDTO(office models.Office) OfficeDTO {
	return OfficeDTO{
		ID:        office.ID,
		Name:      office.Name,
		Location:  office.Location,
		Status:    office.Status,
		CreatedAt: office.CreatedAt,
		UpdatedAt: office.UpdatedAt,
	}
}
