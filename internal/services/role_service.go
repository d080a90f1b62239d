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

// RoleService handles role lifecycle business logic. Role names and
// short names are each unique on their own.
type RoleService struct {
	roleRepo repository.RoleRepository
	sequence *SequenceService
	logger   *zap.Logger
}

// NewRoleService creates a new RoleService.
func NewRoleService(roleRepo repository.RoleRepository, sequence *SequenceService, logger *zap.Logger) *RoleService {
	return &RoleService{
		roleRepo: roleRepo,
		sequence: sequence,
		logger:   logger,
	}
}

func (s *RoleService) checkUnique(name, shortName string, excludeID int64) error {
	exists, err := s.roleRepo.ExistsByName(name, excludeID)
	if err != nil {
		return fmt.Errorf("failed to check role name: %w", err)
	}
	if exists {
		return apperrors.Duplicate("role", "name")
	}

	exists, err = s.roleRepo.ExistsByShortName(shortName, excludeID)
	if err != nil {
		return fmt.Errorf("failed to check role short name: %w", err)
	}
	if exists {
		return apperrors.Duplicate("role", "short name")
	}
	return nil
}

// CreateRole creates a new role.
func (s *RoleService) CreateRole(req dto.CreateRoleRequest) (*dto.RoleDTO, error) {
	if err := s.checkUnique(req.Name, req.ShortName, 0); err != nil {
		return nil, err
	}

	id, err := s.sequence.Next(models.RoleSequenceName)
	if err != nil {
		return nil, err
	}

	role := &models.Role{
		ID:        id,
		Name:      req.Name,
		ShortName: req.ShortName,
		Status:    models.StatusActive,
	}

	if err := s.roleRepo.Create(role); err != nil {
		return nil, fmt.Errorf("failed to create role: %w", err)
	}
	s.logger.Info("role created", zap.Int64("id", id), zap.String("name", role.Name))

	result := dto.ToRoleDTO(*role)
	return &result, nil
}

// FindRoleByID returns a role regardless of its status.
func (s *RoleService) FindRoleByID(id int64) (*dto.RoleDTO, error) {
	role, err := s.roleRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("role", id)
		}
		return nil, fmt.Errorf("failed to find role: %w", err)
	}

	result := dto.ToRoleDTO(*role)
	return &result, nil
}

// DeleteRoleByID transitions a role from ACTIVE to DISABLE.
func (s *RoleService) DeleteRoleByID(id int64) (*dto.RoleDTO, error) {
	role, err := s.roleRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("role", id)
		}
		return nil, fmt.Errorf("failed to find role: %w", err)
	}

	if role.Status == models.StatusDisable {
		return nil, apperrors.AlreadyDeleted("role", id)
	}

	role.Status = models.StatusDisable
	if err := s.roleRepo.Save(role); err != nil {
		return nil, fmt.Errorf("failed to delete role: %w", err)
	}
	s.logger.Info("role deleted", zap.Int64("id", id))

	result := dto.ToRoleDTO(*role)
	return &result, nil
}

// UpdateRole replaces a role's data.
func (s *RoleService) UpdateRole(req dto.UpdateRoleRequest) (*dto.RoleDTO, error) {
	role, err := s.roleRepo.FindByID(req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("role", req.ID)
		}
		return nil, fmt.Errorf("failed to find role: %w", err)
	}

	if err := s.checkUnique(req.Name, req.ShortName, req.ID); err != nil {
		return nil, err
	}

	role.Name = req.Name
	role.ShortName = req.ShortName
	role.Status = req.Status

	if err := s.roleRepo.Save(role); err != nil {
		return nil, fmt.Errorf("failed to update role: %w", err)
	}
	s.logger.Info("role updated", zap.Int64("id", req.ID))

	result := dto.ToRoleDTO(*role)
	return &result, nil
}

// SearchRoles matches role names or short names by case-insensitive
// substring. Default sort key is the role id.
func (s *RoleService) SearchRoles(searchText string, pr repository.PageRequest) (*dto.Resource[dto.RoleDTO], error) {
	pr = normalizePage(pr, "id")

	roles, total, err := s.roleRepo.Search(searchText, pr)
	if err != nil {
		return nil, fmt.Errorf("failed to search roles: %w", err)
	}

	data := make([]dto.RoleDTO, len(roles))
	for i, role := range roles {
		data[i] = dto.ToRoleDTO(role)
	}

	resource := dto.NewResource(data, searchText, pr, total)
	return &resource, nil
}
