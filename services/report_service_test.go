package services

import (
	"bytes"
	"context"
	"elevatorops-console/models"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
)

type ReportServiceTestSuite struct {
	suite.Suite
	repo      *MockReportRepository
	refresher *MockRefresher
	service   *ReportService
	exportDir string
	ctx       context.Context
}

func (suite *ReportServiceTestSuite) SetupTest() {
	suite.repo = new(MockReportRepository)
	suite.refresher = new(MockRefresher)
	suite.exportDir = suite.T().TempDir()
	suite.service = NewReportService(suite.repo, suite.refresher, quietLogger(), suite.exportDir)
	suite.ctx = context.Background()
}

func TestReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}

func sampleReport() *models.Report {
	return &models.Report{
		ID:                  "21",
		RequestID:           "5",
		Request:             &models.ReportRequestRef{ID: "5", ReferenceNumber: "A-1005"},
		TechnicianID:        "7",
		Technician:          &models.TechnicianRef{ID: "7", Name: "Dana Lee"},
		ProblemType:         "Door operator",
		SolutionDescription: "Replaced belt and recalibrated",
		TimeSpentMinutes:    95,
		Images:              []string{"img/1.jpg", "img/2.jpg"},
		CreatedAt:           time.Date(2025, 4, 3, 14, 30, 0, 0, time.UTC),
	}
}

func (suite *ReportServiceTestSuite) TestCreateRejectsNegativeTime() {
	_, err := suite.service.CreateReport(suite.ctx, &models.CreateReportInput{
		RequestID:           "5",
		TechnicianID:        "7",
		ProblemType:         "Door",
		SolutionDescription: "Fixed",
		TimeSpentMinutes:    -5,
	})

	require.Error(suite.T(), err)
	assert.True(suite.T(), errors.Is(err, models.ErrValidation))
	assert.Contains(suite.T(), err.Error(), "TimeSpentMinutes must be greater than or equal to 0")
	suite.repo.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

func (suite *ReportServiceTestSuite) TestCreateRefreshesReportsAndRequests() {
	input := &models.CreateReportInput{RequestID: "5", TechnicianID: "7", ProblemType: "Door", SolutionDescription: "Fixed"}
	suite.repo.On("Create", mock.Anything, input).Return(sampleReport(), nil)
	suite.refresher.On("RefreshCollection", mock.Anything, "reports").Return(nil).Once()
	suite.refresher.On("RefreshCollection", mock.Anything, "requests").Return(nil).Once()

	_, err := suite.service.CreateReport(suite.ctx, input)

	require.NoError(suite.T(), err)
	suite.refresher.AssertExpectations(suite.T())
}

func (suite *ReportServiceTestSuite) TestExportWritesWorkbookAndFreezesReport() {
	suite.repo.On("Get", mock.Anything, models.ID("21")).Return(sampleReport(), nil)

	export, err := suite.service.ExportReport(suite.ctx, "21")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "A-1005.xlsx", export.FileName)
	assert.Equal(suite.T(), filepath.Join(suite.exportDir, "A-1005.xlsx"), export.Path)
	onDisk, err := os.ReadFile(export.Path)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), export.Content, onDisk)

	f, err := excelize.OpenReader(bytes.NewReader(export.Content))
	require.NoError(suite.T(), err)
	defer f.Close()
	tech, err := f.GetCellValue("Report", "B3")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Dana Lee", tech)
	minutes, err := f.GetCellValue("Report", "B7")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "95", minutes)

	assert.True(suite.T(), suite.service.IsExported("21"))
	_, err = suite.service.UpdateReport(suite.ctx, "21", &models.UpdateReportInput{ProblemType: "Other"})
	assert.True(suite.T(), errors.Is(err, models.ErrReportExported))
	err = suite.service.DeleteReport(suite.ctx, "21")
	assert.True(suite.T(), errors.Is(err, models.ErrReportExported))
	suite.repo.AssertNotCalled(suite.T(), "Update", mock.Anything, mock.Anything, mock.Anything)
	suite.repo.AssertNotCalled(suite.T(), "Delete", mock.Anything, mock.Anything)
}

func (suite *ReportServiceTestSuite) TestExportFailureKeepsReportEditable() {
	suite.repo.On("Get", mock.Anything, models.ID("22")).Return(nil, &models.Failure{Kind: models.ErrorKindTransport, Message: "offline"})

	_, err := suite.service.ExportReport(suite.ctx, "22")

	require.Error(suite.T(), err)
	assert.False(suite.T(), suite.service.IsExported("22"))
}

func (suite *ReportServiceTestSuite) TestUpdateBeforeExport() {
	minutes := 30
	input := &models.UpdateReportInput{TimeSpentMinutes: &minutes}
	suite.repo.On("Update", mock.Anything, models.ID("21"), input).Return(sampleReport(), nil)
	suite.refresher.On("RefreshCollection", mock.Anything, "reports").Return(nil).Once()

	_, err := suite.service.UpdateReport(suite.ctx, "21", input)

	require.NoError(suite.T(), err)
	suite.refresher.AssertExpectations(suite.T())
}

func TestExportFileNameFallsBackToID(t *testing.T) {
	assert.Equal(t, "report-9.xlsx", exportFileName(&models.Report{ID: "9"}))
	assert.Equal(t, "A_12_3.xlsx", exportFileName(&models.Report{ID: "9", Request: &models.ReportRequestRef{ReferenceNumber: "A/12 3"}}))
}
