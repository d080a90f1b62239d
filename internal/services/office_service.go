package services

import (
	"errors"
	"fmt"

	"github.com/workforcehq/workforce-api/internal/apperrors"
	"github.com/workforcehq/workforce-api/internal/dto"
	"github.com/workforcehq/workforce-api/internal/models"
	"github.com/workforcehq/workforce-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// OfficeService handles office lifecycle business logic.
type OfficeService struct {
	officeRepo repository.OfficeRepository
	sequence   *SequenceService
	logger     *zap.Logger
}

// NewOfficeService creates a new OfficeService.
func NewOfficeService(officeRepo repository.OfficeRepository, sequence *SequenceService, logger *zap.Logger) *OfficeService {
	return &OfficeService{
		officeRepo: officeRepo,
		sequence:   sequence,
		logger:     logger,
	}
}

// CreateOffice creates a new office with a unique name.
func (s *OfficeService) CreateOffice(req dto.CreateOfficeRequest) (*dto.OfficeDTO, error) {
	exists, err := s.officeRepo.ExistsByName(req.Name, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to check office name: %w", err)
	}
	if exists {
		return nil, apperrors.Duplicate("office", "name")
	}

	id, err := s.sequence.Next(models.OfficeSequenceName)
	if err != nil {
		return nil, err
	}

	office := &models.Office{
		ID:       id,
		Name:     req.Name,
		Location: req.Location,
		Status:   models.StatusActive,
	}

	if err := s.officeRepo.Create(office); err != nil {
		return nil, fmt.Errorf("failed to create office: %w", err)
	}
	s.logger.Info("office created", zap.Int64("id", id), zap.String("name", office.Name))

	result := dto.ToOfficeDTO(*office)
	return &result, nil
}

// FindOfficeByID returns an office regardless of its status.
func (s *OfficeService) FindOfficeByID(id int64) (*dto.OfficeDTO, error) {
	office, err := s.officeRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("office", id)
		}
		return nil, fmt.Errorf("failed to find office: %w", err)
	}

	result := dto.ToOfficeDTO(*office)
	return &result, nil
}

// DeleteOfficeByID transitions an office from ACTIVE to DISABLE. The
// transition is terminal; deleting twice fails.
func (s *OfficeService) DeleteOfficeByID(id int64) (*dto.OfficeDTO, error) {
	office, err := s.officeRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("office", id)
		}
		return nil, fmt.Errorf("failed to find office: %w", err)
	}

	if office.Status == models.StatusDisable {
		return nil, apperrors.AlreadyDeleted("office", id)
	}

	office.Status = models.StatusDisable
	if err := s.officeRepo.Save(office); err != nil {
		return nil, fmt.Errorf("failed to delete office: %w", err)
	}
	s.logger.Info("office deleted", zap.Int64("id", id))

	result := dto.ToOfficeDTO(*office)
	return &result, nil
}

// UpdateOffice replaces an office's data, keeping the name unique among
// all other offices.
func (s *OfficeService) UpdateOffice(req dto.UpdateOfficeRequest) (*dto.OfficeDTO, error) {
	office, err := s.officeRepo.FindByID(req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("office", req.ID)
		}
		return nil, fmt.Errorf("failed to find office: %w", err)
	}

	exists, err := s.officeRepo.ExistsByName(req.Name, req.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check office name: %w", err)
	}
	if exists {
		return nil, apperrors.Duplicate("office", "name")
	}

	office.Name = req.Name
	office.Location = req.Location
	office.Status = req.Status

	if err := s.officeRepo.Save(office); err != nil {
		return nil, fmt.Errorf("failed to update office: %w", err)
	}
	s.logger.Info("office updated", zap.Int64("id", req.ID))

	result := dto.ToOfficeDTO(*office)
	return &result, nil
}

// SearchOffices matches office names by case-insensitive substring and
// returns one page of results. Default sort key is the office id.
func (s *OfficeService) SearchOffices(searchText string, pr repository.PageRequest) (*dto.Resource[dto.OfficeDTO], error) {
	pr = normalizePage(pr, "id")

	offices, total, err := s.officeRepo.Search(searchText, pr)
	if err != nil {
		return nil, fmt.Errorf("failed to search offices: %w", err)
	}

	data := make([]dto.OfficeDTO, len(offices))
	for i, office := range offices {
		data[i] = dto.ToOfficeDTO(office)
	}

	resource := dto.NewResource(data, searchText, pr, total)
	return &resource, nil
}
