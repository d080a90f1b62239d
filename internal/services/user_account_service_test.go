package services

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/workforcehq/workforce-api/internal/apperrors"
	"github.com/workforcehq/workforce-api/internal/dto"
	"github.com/workforcehq/workforce-api/internal/models"
	"github.com/workforcehq/workforce-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type UserAccountServiceTestSuite struct {
	suite.Suite
	db          *gorm.DB
	service     *UserAccountService
	teamService *TeamService
	office      *dto.OfficeDTO
	role        *dto.RoleDTO
}

func (suite *UserAccountServiceTestSuite) SetupTest() {
	db, err := openTestDB()
	suite.Require().NoError(err)
	suite.db = db

	sequence := NewSequenceService(repository.NewSequenceRepository(db))
	teamRepo := repository.NewTeamRepository(db)
	officeRepo := repository.NewOfficeRepository(db)
	roleRepo := repository.NewRoleRepository(db)

	officeService := NewOfficeService(officeRepo, sequence, zap.NewNop())
	roleService := NewRoleService(roleRepo, sequence, zap.NewNop())
	suite.teamService = NewTeamService(teamRepo, sequence, zap.NewNop())
	suite.service = NewUserAccountService(
		repository.NewUserAccountRepository(db),
		teamRepo, officeRepo, roleRepo, sequence, zap.NewNop(),
	)

	suite.office, err = officeService.CreateOffice(dto.CreateOfficeRequest{Name: "HQ", Location: "Berlin"})
	suite.Require().NoError(err)
	suite.role, err = roleService.CreateRole(dto.CreateRoleRequest{Name: "Developer", ShortName: "DEV"})
	suite.Require().NoError(err)
}

func (suite *UserAccountServiceTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *UserAccountServiceTestSuite) createAccount(name, email, phone string, teamID int64) *dto.UserAccountDTO {
	account, err := suite.service.CreateUserAccount(dto.CreateUserAccountRequest{
		Name:     name,
		Email:    email,
		Phone:    phone,
		TeamID:   teamID,
		OfficeID: suite.office.ID,
		RoleID:   suite.role.ID,
	})
	suite.Require().NoError(err)
	return account
}

func (suite *UserAccountServiceTestSuite) TestCreateUserAccount() {
	account := suite.createAccount("Alice", "alice@example.com", "+4915100000001", 0)

	suite.Equal(int64(1), account.ID)
	suite.Equal(models.StatusActive, account.Status)
	suite.Equal(int64(0), account.TeamID)
	suite.Nil(account.Team)
	suite.Require().NotNil(account.Office)
	suite.Equal(suite.office.ID, account.Office.ID)
	suite.Require().NotNil(account.Role)
	suite.Equal(suite.role.ID, account.Role.ID)
}

func (suite *UserAccountServiceTestSuite) TestCreateUserAccountMissingTeamIsUnassigned() {
	account := suite.createAccount("Alice", "alice@example.com", "+4915100000001", 42)

	suite.Equal(int64(0), account.TeamID)
	suite.Nil(account.Team)
}

func (suite *UserAccountServiceTestSuite) TestCreateUserAccountWithTeam() {
	team, err := suite.teamService.CreateTeam(dto.CreateTeamRequest{Name: "Platform", ShortName: "PLT"})
	suite.Require().NoError(err)

	account := suite.createAccount("Alice", "alice@example.com", "+4915100000001", team.ID)

	suite.Equal(team.ID, account.TeamID)
	suite.Require().NotNil(account.Team)
	suite.Equal("Platform", account.Team.Name)
}

func (suite *UserAccountServiceTestSuite) TestCreateUserAccountMissingOffice() {
	_, err := suite.service.CreateUserAccount(dto.CreateUserAccountRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Phone:    "+4915100000001",
		OfficeID: 42,
		RoleID:   suite.role.ID,
	})
	suite.Require().Error(err)
	suite.Equal("not found office with id 42", err.Error())
}

func (suite *UserAccountServiceTestSuite) TestCreateUserAccountMissingRole() {
	_, err := suite.service.CreateUserAccount(dto.CreateUserAccountRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Phone:    "+4915100000001",
		OfficeID: suite.office.ID,
		RoleID:   42,
	})
	suite.Require().Error(err)
	suite.Equal("not found role with id 42", err.Error())
}

func (suite *UserAccountServiceTestSuite) TestCreateUserAccountEmailCheckedBeforePhone() {
	suite.createAccount("Alice", "alice@example.com", "+4915100000001", 0)

	// Both values collide; the email violation wins
	_, err := suite.service.CreateUserAccount(dto.CreateUserAccountRequest{
		Name:     "Bob",
		Email:    "alice@example.com",
		Phone:    "+4915100000001",
		OfficeID: suite.office.ID,
		RoleID:   suite.role.ID,
	})
	suite.Require().Error(err)
	suite.Equal("duplicated email of user account", err.Error())
}

func (suite *UserAccountServiceTestSuite) TestCreateUserAccountDuplicatePhone() {
	suite.createAccount("Alice", "alice@example.com", "+4915100000001", 0)

	_, err := suite.service.CreateUserAccount(dto.CreateUserAccountRequest{
		Name:     "Bob",
		Email:    "bob@example.com",
		Phone:    "+4915100000001",
		OfficeID: suite.office.ID,
		RoleID:   suite.role.ID,
	})
	suite.Require().Error(err)
	suite.Equal("duplicated phone of user account", err.Error())
}

func (suite *UserAccountServiceTestSuite) TestUpdateUserAccountTeamFallsBack() {
	team, err := suite.teamService.CreateTeam(dto.CreateTeamRequest{Name: "Platform", ShortName: "PLT"})
	suite.Require().NoError(err)
	account := suite.createAccount("Alice", "alice@example.com", "+4915100000001", team.ID)

	updated, err := suite.service.UpdateUserAccount(dto.UpdateUserAccountRequest{
		ID:       account.ID,
		Name:     "Alice",
		Email:    "alice@example.com",
		Phone:    "+4915100000001",
		Status:   models.StatusActive,
		TeamID:   42,
		OfficeID: suite.office.ID,
		RoleID:   suite.role.ID,
	})
	suite.Require().NoError(err)
	suite.Equal(int64(0), updated.TeamID)
	suite.Nil(updated.Team)
}

func (suite *UserAccountServiceTestSuite) TestDeleteUserAccountTwice() {
	account := suite.createAccount("Alice", "alice@example.com", "+4915100000001", 0)

	_, err := suite.service.DeleteUserAccountByID(account.ID)
	suite.Require().NoError(err)

	_, err = suite.service.DeleteUserAccountByID(account.ID)
	suite.Require().Error(err)
	suite.Equal(apperrors.KindAlreadyDeleted, apperrors.KindOf(err))
}

func (suite *UserAccountServiceTestSuite) TestSearchUserAccountsByTeam() {
	team, err := suite.teamService.CreateTeam(dto.CreateTeamRequest{Name: "Platform", ShortName: "PLT"})
	suite.Require().NoError(err)
	suite.createAccount("Alice", "alice@example.com", "+4915100000001", team.ID)
	suite.createAccount("Bob", "bob@example.com", "+4915100000002", 0)

	result, err := suite.service.SearchUserAccounts("", team.ID, repository.PageRequest{})
	suite.Require().NoError(err)
	suite.Equal(int64(1), result.TotalResult)
	suite.Require().Len(result.Data, 1)
	suite.Equal("Alice", result.Data[0].Name)
}

func (suite *UserAccountServiceTestSuite) TestSearchUserAccountsUnknownTeam() {
	_, err := suite.service.SearchUserAccounts("", 42, repository.PageRequest{})
	suite.Require().Error(err)
	suite.Equal("not found team with id 42", err.Error())
}

func (suite *UserAccountServiceTestSuite) TestAddUsersToTeam() {
	team, err := suite.teamService.CreateTeam(dto.CreateTeamRequest{Name: "Platform", ShortName: "PLT"})
	suite.Require().NoError(err)
	other, err := suite.teamService.CreateTeam(dto.CreateTeamRequest{Name: "Data", ShortName: "DAT"})
	suite.Require().NoError(err)

	// Bob is already on another team; adding moves him anyway
	alice := suite.createAccount("Alice", "alice@example.com", "+4915100000001", 0)
	bob := suite.createAccount("Bob", "bob@example.com", "+4915100000002", other.ID)

	results, err := suite.service.AddUsersToTeam(team.ID, []int64{alice.ID, bob.ID})
	suite.Require().NoError(err)
	suite.Require().Len(results, 2)
	for _, account := range results {
		suite.Equal(team.ID, account.TeamID)
		suite.Require().NotNil(account.Team)
		suite.Equal("Platform", account.Team.Name)
	}
}

func (suite *UserAccountServiceTestSuite) TestAddUsersToTeamUnknownTeam() {
	_, err := suite.service.AddUsersToTeam(42, []int64{1})
	suite.Require().Error(err)
	suite.Equal(apperrors.KindNotFound, apperrors.KindOf(err))
}

func (suite *UserAccountServiceTestSuite) TestRemoveUsersFromTeam() {
	team, err := suite.teamService.CreateTeam(dto.CreateTeamRequest{Name: "Platform", ShortName: "PLT"})
	suite.Require().NoError(err)
	other, err := suite.teamService.CreateTeam(dto.CreateTeamRequest{Name: "Data", ShortName: "DAT"})
	suite.Require().NoError(err)

	alice := suite.createAccount("Alice", "alice@example.com", "+4915100000001", team.ID)
	bob := suite.createAccount("Bob", "bob@example.com", "+4915100000002", other.ID)

	results, err := suite.service.RemoveUsersFromTeam(team.ID, []int64{alice.ID, bob.ID})
	suite.Require().NoError(err)
	suite.Require().Len(results, 2)

	// Alice was on the team and is reset; Bob's membership is untouched
	byID := map[int64]dto.UserAccountDTO{}
	for _, account := range results {
		byID[account.ID] = account
	}
	suite.Equal(int64(0), byID[alice.ID].TeamID)
	suite.Equal(other.ID, byID[bob.ID].TeamID)
}

func TestUserAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserAccountServiceTestSuite))
}
