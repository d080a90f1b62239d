package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"github.com/workforcehq/workforce-api/internal/dto"
	"github.com/workforcehq/workforce-api/internal/models"
	"github.com/workforcehq/workforce-api/internal/repository"
	"github.com/workforcehq/workforce-api/internal/services"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type OfficeHandlerTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
}

func (suite *OfficeHandlerTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&models.Sequence{}, &models.Office{})
	suite.Require().NoError(err)

	sequence := services.NewSequenceService(repository.NewSequenceRepository(db))
	service := services.NewOfficeService(repository.NewOfficeRepository(db), sequence, zap.NewNop())
	handler := NewOfficeHandler(service)

	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.router.POST("/api/offices", handler.CreateOffice)
	suite.router.GET("/api/offices", handler.SearchOffices)
	suite.router.GET("/api/offices/:id", handler.GetOffice)
	suite.router.PUT("/api/offices", handler.UpdateOffice)
	suite.router.DELETE("/api/offices/:id", handler.DeleteOffice)
}

func (suite *OfficeHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *OfficeHandlerTestSuite) request(method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *OfficeHandlerTestSuite) TestCreateOffice() {
	w := suite.request(http.MethodPost, "/api/offices", gin.H{"name": "HQ", "location": "Berlin"})
	suite.Equal(http.StatusCreated, w.Code)

	var office dto.OfficeDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &office))
	suite.Equal(int64(1), office.ID)
	suite.Equal("HQ", office.Name)
}

func (suite *OfficeHandlerTestSuite) TestCreateOfficeMissingFields() {
	w := suite.request(http.MethodPost, "/api/offices", gin.H{"name": "HQ"})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *OfficeHandlerTestSuite) TestCreateOfficeDuplicate() {
	w := suite.request(http.MethodPost, "/api/offices", gin.H{"name": "HQ", "location": "Berlin"})
	suite.Equal(http.StatusCreated, w.Code)

	w = suite.request(http.MethodPost, "/api/offices", gin.H{"name": "HQ", "location": "Hamburg"})
	suite.Equal(http.StatusConflict, w.Code)

	var body map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("DUPLICATE", body["code"])
}

func (suite *OfficeHandlerTestSuite) TestGetOfficeNotFound() {
	w := suite.request(http.MethodGet, "/api/offices/42", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *OfficeHandlerTestSuite) TestGetOfficeInvalidID() {
	w := suite.request(http.MethodGet, "/api/offices/abc", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *OfficeHandlerTestSuite) TestDeleteOfficeTwice() {
	w := suite.request(http.MethodPost, "/api/offices", gin.H{"name": "HQ", "location": "Berlin"})
	suite.Equal(http.StatusCreated, w.Code)

	w = suite.request(http.MethodDelete, "/api/offices/1", nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.request(http.MethodDelete, "/api/offices/1", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *OfficeHandlerTestSuite) TestSearchOffices() {
	for _, name := range []string{"Berlin HQ", "Hamburg Office"} {
		w := suite.request(http.MethodPost, "/api/offices", gin.H{"name": name, "location": "DE"})
		suite.Equal(http.StatusCreated, w.Code)
	}

	w := suite.request(http.MethodGet, "/api/offices?searchText=berlin&index=1&limit=10", nil)
	suite.Equal(http.StatusOK, w.Code)

	var result dto.Resource[dto.OfficeDTO]
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &result))
	suite.Equal(int64(1), result.TotalResult)
	suite.Equal("berlin", result.SearchText)
	suite.Require().Len(result.Data, 1)
	suite.Equal("Berlin HQ", result.Data[0].Name)
}

func (suite *OfficeHandlerTestSuite) TestUpdateOffice() {
	w := suite.request(http.MethodPost, "/api/offices", gin.H{"name": "HQ", "location": "Berlin"})
	suite.Equal(http.StatusCreated, w.Code)

	w = suite.request(http.MethodPut, "/api/offices", gin.H{
		"id":       1,
		"name":     "Headquarters",
		"location": "Munich",
		"status":   int(models.StatusActive),
	})
	suite.Equal(http.StatusOK, w.Code)

	var office dto.OfficeDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &office))
	suite.Equal("Headquarters", office.Name)
}

func TestOfficeHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(OfficeHandlerTestSuite))
}
