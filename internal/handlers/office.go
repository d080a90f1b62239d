package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/workforcehq/workforce-api/internal/apperrors"
	"github.com/workforcehq/workforce-api/internal/dto"
	"github.com/workforcehq/workforce-api/internal/services"
	"github.com/workforcehq/workforce-api/internal/utils"
)

type OfficeHandler struct {
	service *services.OfficeService
}

func NewOfficeHandler(service *services.OfficeService) *OfficeHandler {
	return &OfficeHandler{service: service}
}

// CreateOffice creates a new office
func (h *OfficeHandler) CreateOffice(c *gin.Context) {
	var req dto.CreateOfficeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "invalid request body")
		return
	}

	office, err := h.service.CreateOffice(req)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, office)
}

// GetOffice returns a single office by id
func (h *OfficeHandler) GetOffice(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	office, err := h.service.FindOfficeByID(id)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, office)
}

// UpdateOffice updates an office
func (h *OfficeHandler) UpdateOffice(c *gin.Context) {
	var req dto.UpdateOfficeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "invalid request body")
		return
	}

	office, err := h.service.UpdateOffice(req)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, office)
}

// DeleteOffice marks an office as deleted
func (h *OfficeHandler) DeleteOffice(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	office, err := h.service.DeleteOfficeByID(id)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, office)
}

// SearchOffices returns a page of offices matching the search text
func (h *OfficeHandler) SearchOffices(c *gin.Context) {
	result, err := h.service.SearchOffices(c.Query("searchText"), utils.GetPageRequest(c))
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
