package controller

import (
	"context"
	"elevatorops-console/models"
	"elevatorops-console/services"

	"github.com/stretchr/testify/mock"
)

// MockRequestService implements RequestServiceInterface for testing
type MockRequestService struct {
	mock.Mock
}

func (m *MockRequestService) GetRequest(ctx context.Context, id models.ID) (*models.MaintenanceRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MaintenanceRequest), args.Error(1)
}

func (m *MockRequestService) CreateRequest(ctx context.Context, input *models.CreateRequestInput) (*models.MaintenanceRequest, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MaintenanceRequest), args.Error(1)
}

func (m *MockRequestService) UpdateRequest(ctx context.Context, id models.ID, input *models.UpdateRequestInput) (*models.MaintenanceRequest, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MaintenanceRequest), args.Error(1)
}

func (m *MockRequestService) DeleteRequest(ctx context.Context, id models.ID) error {
	return m.Called(ctx, id).Error(0)
}

// MockLifecycleService implements RequestLifecycleServiceInterface for testing
type MockLifecycleService struct {
	mock.Mock
}

func (m *MockLifecycleService) CanTransition(from, to models.RequestStatus) bool {
	return m.Called(from, to).Bool(0)
}

func (m *MockLifecycleService) AllowedTransitions(from models.RequestStatus) []models.RequestStatus {
	args := m.Called(from)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.RequestStatus)
}

func (m *MockLifecycleService) Transition(ctx context.Context, id models.ID, to models.RequestStatus, actor models.Actor) (*models.MaintenanceRequest, error) {
	args := m.Called(ctx, id, to, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MaintenanceRequest), args.Error(1)
}

func (m *MockLifecycleService) Assign(ctx context.Context, id models.ID, technicianID models.ID, actor models.Actor) (*models.MaintenanceRequest, error) {
	args := m.Called(ctx, id, technicianID, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MaintenanceRequest), args.Error(1)
}

// MockReportService implements ReportServiceInterface for testing
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) GetReport(ctx context.Context, id models.ID) (*models.Report, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Report), args.Error(1)
}

func (m *MockReportService) CreateReport(ctx context.Context, input *models.CreateReportInput) (*models.Report, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Report), args.Error(1)
}

func (m *MockReportService) UpdateReport(ctx context.Context, id models.ID, input *models.UpdateReportInput) (*models.Report, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Report), args.Error(1)
}

func (m *MockReportService) DeleteReport(ctx context.Context, id models.ID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockReportService) ExportReport(ctx context.Context, id models.ID) (*models.ReportExport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReportExport), args.Error(1)
}

func (m *MockReportService) IsExported(id models.ID) bool {
	return m.Called(id).Bool(0)
}

// MockDashboardService implements DashboardServiceInterface for testing
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Load(ctx context.Context) (*models.DashboardView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DashboardView), args.Error(1)
}

// stubServices hands out the mocks as a service container
type stubServices struct {
	lifecycle *MockLifecycleService
	request   *MockRequestService
	report    *MockReportService
	dashboard *MockDashboardService
}

func (s *stubServices) GetLifecycleService() services.RequestLifecycleServiceInterface {
	return s.lifecycle
}

func (s *stubServices) GetRequestService() services.RequestServiceInterface { return s.request }

func (s *stubServices) GetReportService() services.ReportServiceInterface { return s.report }

func (s *stubServices) GetDashboardService() services.DashboardServiceInterface { return s.dashboard }
