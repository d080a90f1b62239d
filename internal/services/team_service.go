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

// TeamService handles team lifecycle business logic. Team names and
// short names are each unique on their own.
type TeamService struct {
	teamRepo repository.TeamRepository
	sequence *SequenceService
	logger   *zap.Logger
}

// NewTeamService creates a new TeamService.
func NewTeamService(teamRepo repository.TeamRepository, sequence *SequenceService, logger *zap.Logger) *TeamService {
	return &TeamService{
		teamRepo: teamRepo,
		sequence: sequence,
		logger:   logger,
	}
}

func (s *TeamService) checkUnique(name, shortName string, excludeID int64) error {
	exists, err := s.teamRepo.ExistsByName(name, excludeID)
	if err != nil {
		return fmt.Errorf("failed to check team name: %w", err)
	}
	if exists {
		return apperrors.Duplicate("team", "name")
	}

	exists, err = s.teamRepo.ExistsByShortName(shortName, excludeID)
	if err != nil {
		return fmt.Errorf("failed to check team short name: %w", err)
	}
	if exists {
		return apperrors.Duplicate("team", "short name")
	}
	return nil
}

// CreateTeam creates a new team.
func (s *TeamService) CreateTeam(req dto.CreateTeamRequest) (*dto.TeamDTO, error) {
	if err := s.checkUnique(req.Name, req.ShortName, 0); err != nil {
		return nil, err
	}

	id, err := s.sequence.Next(models.TeamSequenceName)
	if err != nil {
		return nil, err
	}

	team := &models.Team{
		ID:        id,
		Name:      req.Name,
		ShortName: req.ShortName,
		Status:    models.StatusActive,
	}

	if err := s.teamRepo.Create(team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}
	s.logger.Info("team created", zap.Int64("id", id), zap.String("name", team.Name))

	result := dto.ToTeamDTO(*team)
	return &result, nil
}

// FindTeamByID returns a team regardless of its status.
func (s *TeamService) FindTeamByID(id int64) (*dto.TeamDTO, error) {
	team, err := s.teamRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("team", id)
		}
		return nil, fmt.Errorf("failed to find team: %w", err)
	}

	result := dto.ToTeamDTO(*team)
	return &result, nil
}

// DeleteTeamByID transitions a team from ACTIVE to DISABLE.
func (s *TeamService) DeleteTeamByID(id int64) (*dto.TeamDTO, error) {
	team, err := s.teamRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("team", id)
		}
		return nil, fmt.Errorf("failed to find team: %w", err)
	}

	if team.Status == models.StatusDisable {
		return nil, apperrors.AlreadyDeleted("team", id)
	}

	team.Status = models.StatusDisable
	if err := s.teamRepo.Save(team); err != nil {
		return nil, fmt.Errorf("failed to delete team: %w", err)
	}
	s.logger.Info("team deleted", zap.Int64("id", id))

	result := dto.ToTeamDTO(*team)
	return &result, nil
}

// UpdateTeam replaces a team's data.
func (s *TeamService) UpdateTeam(req dto.UpdateTeamRequest) (*dto.TeamDTO, error) {
	team, err := s.teamRepo.FindByID(req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("team", req.ID)
		}
		return nil, fmt.Errorf("failed to find team: %w", err)
	}

	if err := s.checkUnique(req.Name, req.ShortName, req.ID); err != nil {
		return nil, err
	}

	team.Name = req.Name
	team.ShortName = req.ShortName
	team.Status = req.Status

	if err := s.teamRepo.Save(team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}
	s.logger.Info("team updated", zap.Int64("id", req.ID))

	result := dto.ToTeamDTO(*team)
	return &result, nil
}

// SearchTeams matches team names or short names by case-insensitive
// substring. Default sort key is the team id.
func (s *TeamService) SearchTeams(searchText string, pr repository.PageRequest) (*dto.Resource[dto.TeamDTO], error) {
	pr = normalizePage(pr, "id")

	teams, total, err := s.teamRepo.Search(searchText, pr)
	if err != nil {
		return nil, fmt.Errorf("failed to search teams: %w", err)
	}

	data := make([]dto.TeamDTO, len(teams))
	for i, team := range teams {
		data[i] = dto.ToTeamDTO(team)
	}

	resource := dto.NewResource(data, searchText, pr, total)
	return &resource, nil
}
