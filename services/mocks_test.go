package services

import (
	"context"
	"elevatorops-console/models"
	"elevatorops-console/utils/logger"

	"github.com/stretchr/testify/mock"
)

// MockRequestRepository implements repository.RequestRepositoryInterface for testing
type MockRequestRepository struct {
	mock.Mock
}

func (m *MockRequestRepository) Collection() string { return "requests" }

func (m *MockRequestRepository) List(ctx context.Context, q models.ListQuery) (*models.Page[models.MaintenanceRequest], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Page[models.MaintenanceRequest]), args.Error(1)
}

func (m *MockRequestRepository) Get(ctx context.Context, id models.ID) (*models.MaintenanceRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MaintenanceRequest), args.Error(1)
}

func (m *MockRequestRepository) Lookup(id models.ID) (models.MaintenanceRequest, bool) {
	args := m.Called(id)
	return args.Get(0).(models.MaintenanceRequest), args.Bool(1)
}

func (m *MockRequestRepository) Create(ctx context.Context, input *models.CreateRequestInput) (*models.MaintenanceRequest, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MaintenanceRequest), args.Error(1)
}

func (m *MockRequestRepository) Update(ctx context.Context, id models.ID, input *models.UpdateRequestInput) (*models.MaintenanceRequest, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MaintenanceRequest), args.Error(1)
}

func (m *MockRequestRepository) Delete(ctx context.Context, id models.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRequestRepository) UpdateStatus(ctx context.Context, id models.ID, status models.RequestStatus) (*models.MaintenanceRequest, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MaintenanceRequest), args.Error(1)
}

func (m *MockRequestRepository) Assign(ctx context.Context, id models.ID, technicianID models.ID) (*models.MaintenanceRequest, error) {
	args := m.Called(ctx, id, technicianID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MaintenanceRequest), args.Error(1)
}

// MockReportRepository implements repository.ReportRepositoryInterface for testing
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) Collection() string { return "reports" }

func (m *MockReportRepository) List(ctx context.Context, q models.ListQuery) (*models.Page[models.Report], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Page[models.Report]), args.Error(1)
}

func (m *MockReportRepository) Get(ctx context.Context, id models.ID) (*models.Report, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Report), args.Error(1)
}

func (m *MockReportRepository) Lookup(id models.ID) (models.Report, bool) {
	args := m.Called(id)
	return args.Get(0).(models.Report), args.Bool(1)
}

func (m *MockReportRepository) Create(ctx context.Context, input *models.CreateReportInput) (*models.Report, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Report), args.Error(1)
}

func (m *MockReportRepository) Update(ctx context.Context, id models.ID, input *models.UpdateReportInput) (*models.Report, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Report), args.Error(1)
}

func (m *MockReportRepository) Delete(ctx context.Context, id models.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockElevatorReader implements repository.ReaderInterface[models.Elevator] for testing
type MockElevatorReader struct {
	mock.Mock
}

func (m *MockElevatorReader) Collection() string { return "elevators" }

func (m *MockElevatorReader) List(ctx context.Context, q models.ListQuery) (*models.Page[models.Elevator], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Page[models.Elevator]), args.Error(1)
}

func (m *MockElevatorReader) Get(ctx context.Context, id models.ID) (*models.Elevator, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Elevator), args.Error(1)
}

func (m *MockElevatorReader) Lookup(id models.ID) (models.Elevator, bool) {
	args := m.Called(id)
	return args.Get(0).(models.Elevator), args.Bool(1)
}

// MockAnalyticsRepository implements repository.AnalyticsRepositoryInterface for testing
type MockAnalyticsRepository struct {
	mock.Mock
}

func (m *MockAnalyticsRepository) Statistics(ctx context.Context) (*models.Statistics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Statistics), args.Error(1)
}

func (m *MockAnalyticsRepository) RequestsByStatus(ctx context.Context) ([]models.StatusCount, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).([]models.StatusCount)
	return res, args.Error(1)
}

func (m *MockAnalyticsRepository) RequestsByPriority(ctx context.Context) ([]models.PriorityCount, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).([]models.PriorityCount)
	return res, args.Error(1)
}

func (m *MockAnalyticsRepository) TopClients(ctx context.Context) ([]models.TopClient, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).([]models.TopClient)
	return res, args.Error(1)
}

func (m *MockAnalyticsRepository) ElevatorHealth(ctx context.Context) ([]models.ElevatorHealth, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).([]models.ElevatorHealth)
	return res, args.Error(1)
}

// MockRefresher implements CollectionRefresher for testing
type MockRefresher struct {
	mock.Mock
}

func (m *MockRefresher) RefreshCollection(ctx context.Context, collection string) error {
	args := m.Called(ctx, collection)
	return args.Error(0)
}

// MockNotifier implements infrastructure.Notifier for testing
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) PublishStatusChange(ctx context.Context, event models.StatusEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockNotifier) Close() {}

// MockLogger implements the Logger interface for testing
type MockLogger struct {
	mock.Mock
}

func (m *MockLogger) Debug(args ...interface{})                 { m.Called(args) }
func (m *MockLogger) Debugf(format string, args ...interface{}) { m.Called(format, args) }
func (m *MockLogger) Info(args ...interface{})                  { m.Called(args) }
func (m *MockLogger) Infof(format string, args ...interface{})  { m.Called(format, args) }
func (m *MockLogger) Warn(args ...interface{})                  { m.Called(args) }
func (m *MockLogger) Warnf(format string, args ...interface{})  { m.Called(format, args) }
func (m *MockLogger) Error(args ...interface{})                 { m.Called(args) }
func (m *MockLogger) Errorf(format string, args ...interface{}) { m.Called(format, args) }
func (m *MockLogger) Fatal(args ...interface{})                 { m.Called(args) }
func (m *MockLogger) Fatalf(format string, args ...interface{}) { m.Called(format, args) }

func (m *MockLogger) WithFields(fields map[string]interface{}) logger.Logger { return m }

// quietLogger accepts any log call
func quietLogger() *MockLogger {
	l := new(MockLogger)
	for _, method := range []string{"Debug", "Info", "Warn", "Error"} {
		l.On(method, mock.Anything).Maybe()
		l.On(method+"f", mock.Anything, mock.Anything).Maybe()
	}
	return l
}
