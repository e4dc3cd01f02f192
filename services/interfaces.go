package services

import (
	"context"
	"elevatorops-console/models"
)

// RequestLifecycleServiceInterface defines the contract for guarded status changes
type RequestLifecycleServiceInterface interface {
	CanTransition(from, to models.RequestStatus) bool
	AllowedTransitions(from models.RequestStatus) []models.RequestStatus
	Transition(ctx context.Context, id models.ID, to models.RequestStatus, actor models.Actor) (*models.MaintenanceRequest, error)
	Assign(ctx context.Context, id models.ID, technicianID models.ID, actor models.Actor) (*models.MaintenanceRequest, error)
}

// RequestServiceInterface defines the contract for request create, edit and delete
type RequestServiceInterface interface {
	GetRequest(ctx context.Context, id models.ID) (*models.MaintenanceRequest, error)
	CreateRequest(ctx context.Context, input *models.CreateRequestInput) (*models.MaintenanceRequest, error)
	UpdateRequest(ctx context.Context, id models.ID, input *models.UpdateRequestInput) (*models.MaintenanceRequest, error)
	DeleteRequest(ctx context.Context, id models.ID) error
}

// ReportServiceInterface defines the contract for report operations
type ReportServiceInterface interface {
	GetReport(ctx context.Context, id models.ID) (*models.Report, error)
	CreateReport(ctx context.Context, input *models.CreateReportInput) (*models.Report, error)
	UpdateReport(ctx context.Context, id models.ID, input *models.UpdateReportInput) (*models.Report, error)
	DeleteReport(ctx context.Context, id models.ID) error
	ExportReport(ctx context.Context, id models.ID) (*models.ReportExport, error)
	IsExported(id models.ID) bool
}

// DashboardServiceInterface defines the contract for the dashboard aggregator
type DashboardServiceInterface interface {
	Load(ctx context.Context) (*models.DashboardView, error)
}

// CollectionRefresher resynchronizes every view displaying a collection
type CollectionRefresher interface {
	RefreshCollection(ctx context.Context, collection string) error
}

// ServiceContainerInterface defines the main service container contract
type ServiceContainerInterface interface {
	GetLifecycleService() RequestLifecycleServiceInterface
	GetRequestService() RequestServiceInterface
	GetReportService() ReportServiceInterface
	GetDashboardService() DashboardServiceInterface
}
