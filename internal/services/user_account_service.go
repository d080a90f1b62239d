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

// UserAccountService handles user account lifecycle and cross-reference
// resolution. Office and role references are hard-required; the team
// reference is best-effort and falls back to unassigned when the team
// does not exist.
type UserAccountService struct {
	accountRepo repository.UserAccountRepository
	teamRepo    repository.TeamRepository
	officeRepo  repository.OfficeRepository
	roleRepo    repository.RoleRepository
	sequence    *SequenceService
	logger      *zap.Logger
}

// NewUserAccountService creates a new UserAccountService.
func NewUserAccountService(
	accountRepo repository.UserAccountRepository,
	teamRepo repository.TeamRepository,
	officeRepo repository.OfficeRepository,
	roleRepo repository.RoleRepository,
	sequence *SequenceService,
	logger *zap.Logger,
) *UserAccountService {
	return &UserAccountService{
		accountRepo: accountRepo,
		teamRepo:    teamRepo,
		officeRepo:  officeRepo,
		roleRepo:    roleRepo,
		sequence:    sequence,
		logger:      logger,
	}
}

func (s *UserAccountService) checkUnique(email, phone string, excludeID int64) error {
	exists, err := s.accountRepo.ExistsByEmail(email, excludeID)
	if err != nil {
		return fmt.Errorf("failed to check account email: %w", err)
	}
	if exists {
		return apperrors.Duplicate("user account", "email")
	}

	exists, err = s.accountRepo.ExistsByPhone(phone, excludeID)
	if err != nil {
		return fmt.Errorf("failed to check account phone: %w", err)
	}
	if exists {
		return apperrors.Duplicate("user account", "phone")
	}
	return nil
}

// resolveTeam looks a team up best-effort: a missing team resolves to
// nil without error, so callers fall back to unassigned.
func (s *UserAccountService) resolveTeam(id int64) (*models.Team, error) {
	if id == 0 {
		return nil, nil
	}
	team, err := s.teamRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve team: %w", err)
	}
	return team, nil
}

func (s *UserAccountService) resolveOffice(id int64) (*models.Office, error) {
	office, err := s.officeRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve office: %w", err)
	}
	return office, nil
}

func (s *UserAccountService) resolveRole(id int64) (*models.Role, error) {
	role, err := s.roleRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve role: %w", err)
	}
	return role, nil
}

// toResponse builds the response model for an account, embedding every
// reference that still resolves and silently omitting the ones that do
// not.
func (s *UserAccountService) toResponse(account models.UserAccount) (dto.UserAccountDTO, error) {
	out := dto.ToUserAccountDTO(account)

	team, err := s.resolveTeam(account.TeamID)
	if err != nil {
		return out, err
	}
	if team != nil {
		t := dto.ToTeamDTO(*team)
		out.Team = &t
	}

	office, err := s.resolveOffice(account.OfficeID)
	if err != nil {
		return out, err
	}
	if office != nil {
		o := dto.ToOfficeDTO(*office)
		out.Office = &o
	}

	role, err := s.resolveRole(account.RoleID)
	if err != nil {
		return out, err
	}
	if role != nil {
		r := dto.ToRoleDTO(*role)
		out.Role = &r
	}

	return out, nil
}

// CreateUserAccount creates a new account. Email and phone must be
// unused (email checked first). The office and role must exist; a
// missing team is stored as unassigned.
func (s *UserAccountService) CreateUserAccount(req dto.CreateUserAccountRequest) (*dto.UserAccountDTO, error) {
	if err := s.checkUnique(req.Email, req.Phone, 0); err != nil {
		return nil, err
	}

	team, err := s.resolveTeam(req.TeamID)
	if err != nil {
		return nil, err
	}

	office, err := s.officeRepo.FindByID(req.OfficeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("office", req.OfficeID)
		}
		return nil, fmt.Errorf("failed to find office: %w", err)
	}

	role, err := s.roleRepo.FindByID(req.RoleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("role", req.RoleID)
		}
		return nil, fmt.Errorf("failed to find role: %w", err)
	}

	id, err := s.sequence.Next(models.UserAccountSequenceName)
	if err != nil {
		return nil, err
	}

	account := &models.UserAccount{
		ID:       id,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Status:   models.StatusActive,
		OfficeID: req.OfficeID,
		RoleID:   req.RoleID,
	}
	if team != nil {
		account.TeamID = req.TeamID
	}

	if err := s.accountRepo.Create(account); err != nil {
		return nil, fmt.Errorf("failed to create user account: %w", err)
	}
	s.logger.Info("user account created", zap.Int64("id", id), zap.String("email", account.Email))

	out := dto.ToUserAccountDTO(*account)
	o := dto.ToOfficeDTO(*office)
	out.Office = &o
	r := dto.ToRoleDTO(*role)
	out.Role = &r
	if team != nil {
		t := dto.ToTeamDTO(*team)
		out.Team = &t
	}
	return &out, nil
}

// FindUserAccountByID returns an account with its references embedded
// where they still resolve.
func (s *UserAccountService) FindUserAccountByID(id int64) (*dto.UserAccountDTO, error) {
	account, err := s.accountRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("user account", id)
		}
		return nil, fmt.Errorf("failed to find user account: %w", err)
	}

	out, err := s.toResponse(*account)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteUserAccountByID transitions an account from ACTIVE to DISABLE.
func (s *UserAccountService) DeleteUserAccountByID(id int64) (*dto.UserAccountDTO, error) {
	account, err := s.accountRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("user account", id)
		}
		return nil, fmt.Errorf("failed to find user account: %w", err)
	}

	if account.Status == models.StatusDisable {
		return nil, apperrors.AlreadyDeleted("user account", id)
	}

	account.Status = models.StatusDisable
	if err := s.accountRepo.Save(account); err != nil {
		return nil, fmt.Errorf("failed to delete user account: %w", err)
	}
	s.logger.Info("user account deleted", zap.Int64("id", id))

	out, err := s.toResponse(*account)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateUserAccount replaces an account's data. Email and phone must be
// unused by any other account; the office and role are re-resolved and
// must exist, the team is re-resolved best-effort. Role and office ids
// are assigned independently of each other.
func (s *UserAccountService) UpdateUserAccount(req dto.UpdateUserAccountRequest) (*dto.UserAccountDTO, error) {
	account, err := s.accountRepo.FindByID(req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("user account", req.ID)
		}
		return nil, fmt.Errorf("failed to find user account: %w", err)
	}

	if err := s.checkUnique(req.Email, req.Phone, req.ID); err != nil {
		return nil, err
	}

	team, err := s.resolveTeam(req.TeamID)
	if err != nil {
		return nil, err
	}

	office, err := s.officeRepo.FindByID(req.OfficeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("office", req.OfficeID)
		}
		return nil, fmt.Errorf("failed to find office: %w", err)
	}

	role, err := s.roleRepo.FindByID(req.RoleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("role", req.RoleID)
		}
		return nil, fmt.Errorf("failed to find role: %w", err)
	}

	account.Name = req.Name
	account.Email = req.Email
	account.Phone = req.Phone
	account.Status = req.Status
	account.OfficeID = req.OfficeID
	account.RoleID = req.RoleID
	if team != nil {
		account.TeamID = req.TeamID
	} else {
		account.TeamID = 0
	}

	if err := s.accountRepo.Save(account); err != nil {
		return nil, fmt.Errorf("failed to update user account: %w", err)
	}
	s.logger.Info("user account updated", zap.Int64("id", req.ID))

	out := dto.ToUserAccountDTO(*account)
	o := dto.ToOfficeDTO(*office)
	out.Office = &o
	r := dto.ToRoleDTO(*role)
	out.Role = &r
	if team != nil {
		t := dto.ToTeamDTO(*team)
		out.Team = &t
	}
	return &out, nil
}

// SearchUserAccounts matches name, email, or phone by case-insensitive
// substring. A non-zero teamID additionally restricts results to that
// team; the team itself must exist. Default sort key is the account id.
func (s *UserAccountService) SearchUserAccounts(searchText string, teamID int64, pr repository.PageRequest) (*dto.Resource[dto.UserAccountDTO], error) {
	if teamID != 0 {
		if _, err := s.teamRepo.FindByID(teamID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.NotFound("team", teamID)
			}
			return nil, fmt.Errorf("failed to find team: %w", err)
		}
	}

	pr = normalizePage(pr, "id")

	accounts, total, err := s.accountRepo.Search(searchText, teamID, pr)
	if err != nil {
		return nil, fmt.Errorf("failed to search user accounts: %w", err)
	}

	data := make([]dto.UserAccountDTO, len(accounts))
	for i, account := range accounts {
		out, err := s.toResponse(account)
		if err != nil {
			return nil, err
		}
		data[i] = out
	}

	resource := dto.NewResource(data, searchText, pr, total)
	return &resource, nil
}

// AddUsersToTeam moves every matching account onto the team, regardless
// of its previous team, in one transactional bulk write.
func (s *UserAccountService) AddUsersToTeam(teamID int64, userIDs []int64) ([]dto.UserAccountDTO, error) {
	team, err := s.teamRepo.FindByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("team", teamID)
		}
		return nil, fmt.Errorf("failed to find team: %w", err)
	}

	accounts, err := s.accountRepo.FindAllByIDs(userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load user accounts: %w", err)
	}

	for i := range accounts {
		accounts[i].TeamID = teamID
	}

	if err := s.accountRepo.SaveAll(accounts); err != nil {
		return nil, fmt.Errorf("failed to save user accounts: %w", err)
	}
	s.logger.Info("users added to team", zap.Int64("team_id", teamID), zap.Int("count", len(accounts)))

	teamDTO := dto.ToTeamDTO(*team)
	results := make([]dto.UserAccountDTO, len(accounts))
	for i, account := range accounts {
		out := dto.ToUserAccountDTO(account)
		out.Team = &teamDTO

		office, err := s.resolveOffice(account.OfficeID)
		if err != nil {
			return nil, err
		}
		if office != nil {
			o := dto.ToOfficeDTO(*office)
			out.Office = &o
		}

		role, err := s.resolveRole(account.RoleID)
		if err != nil {
			return nil, err
		}
		if role != nil {
			r := dto.ToRoleDTO(*role)
			out.Role = &r
		}

		results[i] = out
	}
	return results, nil
}

// RemoveUsersFromTeam resets the team of every matching account that is
// currently on the given team; accounts on a different team are left
// untouched.
func (s *UserAccountService) RemoveUsersFromTeam(teamID int64, userIDs []int64) ([]dto.UserAccountDTO, error) {
	if _, err := s.teamRepo.FindByID(teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("team", teamID)
		}
		return nil, fmt.Errorf("failed to find team: %w", err)
	}

	accounts, err := s.accountRepo.FindAllByIDs(userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load user accounts: %w", err)
	}

	for i := range accounts {
		if accounts[i].TeamID == teamID {
			accounts[i].TeamID = 0
		}
	}

	if err := s.accountRepo.SaveAll(accounts); err != nil {
		return nil, fmt.Errorf("failed to save user accounts: %w", err)
	}
	s.logger.Info("users removed from team", zap.Int64("team_id", teamID), zap.Int("count", len(accounts)))

	results := make([]dto.UserAccountDTO, len(accounts))
	for i, account := range accounts {
		out, err := s.toResponse(account)
		if err != nil {
			return nil, err
		}
		results[i] = out
	}
	return results, nil
}
