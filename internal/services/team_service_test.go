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

type TeamServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *TeamService
}

func (suite *TeamServiceTestSuite) SetupTest() {
	db, err := openTestDB()
	suite.Require().NoError(err)
	suite.db = db

	sequence := NewSequenceService(repository.NewSequenceRepository(db))
	suite.service = NewTeamService(repository.NewTeamRepository(db), sequence, zap.NewNop())
}

func (suite *TeamServiceTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *TeamServiceTestSuite) TestCreateTeam() {
	team, err := suite.service.CreateTeam(dto.CreateTeamRequest{Name: "Platform", ShortName: "PLT"})
	suite.Require().NoError(err)
	suite.Equal(int64(1), team.ID)
	suite.Equal("Platform", team.Name)
	suite.Equal("PLT", team.ShortName)
	suite.Equal(models.StatusActive, team.Status)
}

func (suite *TeamServiceTestSuite) TestCreateTeamDuplicateName() {
	_, err := suite.service.CreateTeam(dto.CreateTeamRequest{Name: "Platform", ShortName: "PLT"})
	suite.Require().NoError(err)

	_, err = suite.service.CreateTeam(dto.CreateTeamRequest{Name: "Platform", ShortName: "PL2"})
	suite.Require().Error(err)
	suite.True(apperrors.IsDuplicate(err))
	suite.Equal("duplicated name of team", err.Error())
}

func (suite *TeamServiceTestSuite) TestCreateTeamDuplicateShortName() {
	_, err := suite.service.CreateTeam(dto.CreateTeamRequest{Name: "Platform", ShortName: "PLT"})
	suite.Require().NoError(err)

	_, err = suite.service.CreateTeam(dto.CreateTeamRequest{Name: "Plumbing", ShortName: "PLT"})
	suite.Require().Error(err)
	suite.True(apperrors.IsDuplicate(err))
	suite.Equal("duplicated short name of team", err.Error())
}

func (suite *TeamServiceTestSuite) TestDeleteTeamTwice() {
	team, err := suite.service.CreateTeam(dto.CreateTeamRequest{Name: "Platform", ShortName: "PLT"})
	suite.Require().NoError(err)

	_, err = suite.service.DeleteTeamByID(team.ID)
	suite.Require().NoError(err)

	_, err = suite.service.DeleteTeamByID(team.ID)
	suite.Require().Error(err)
	suite.Equal(apperrors.KindAlreadyDeleted, apperrors.KindOf(err))
}

func (suite *TeamServiceTestSuite) TestUpdateTeamDuplicateShortName() {
	_, err := suite.service.CreateTeam(dto.CreateTeamRequest{Name: "Platform", ShortName: "PLT"})
	suite.Require().NoError(err)
	second, err := suite.service.CreateTeam(dto.CreateTeamRequest{Name: "Data", ShortName: "DAT"})
	suite.Require().NoError(err)

	_, err = suite.service.UpdateTeam(dto.UpdateTeamRequest{
		ID:        second.ID,
		Name:      "Data",
		ShortName: "PLT",
		Status:    models.StatusActive,
	})
	suite.Require().Error(err)
	suite.True(apperrors.IsDuplicate(err))
}

func (suite *TeamServiceTestSuite) TestSearchTeams() {
	_, err := suite.service.CreateTeam(dto.CreateTeamRequest{Name: "Platform", ShortName: "PLT"})
	suite.Require().NoError(err)
	_, err = suite.service.CreateTeam(dto.CreateTeamRequest{Name: "Data", ShortName: "DAT"})
	suite.Require().NoError(err)

	result, err := suite.service.SearchTeams("plat", repository.PageRequest{})
	suite.Require().NoError(err)
	suite.Equal(int64(1), result.TotalResult)
	suite.Require().Len(result.Data, 1)
	suite.Equal("Platform", result.Data[0].Name)
}

func TestTeamServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TeamServiceTestSuite))
}
