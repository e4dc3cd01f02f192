package repository

import (
	"context"
	"elevatorops-console/models"
)

// Collection names shared by repositories and the view registry
const (
	CollectionRequests    = "requests"
	CollectionReports     = "reports"
	CollectionClients     = "clients"
	CollectionElevators   = "elevators"
	CollectionContracts   = "contracts"
	CollectionTechnicians = "technicians"
)

// ReaderInterface is the read side every entity repository offers
type ReaderInterface[T any] interface {
	Collection() string
	List(ctx context.Context, q models.ListQuery) (*models.Page[T], error)
	Get(ctx context.Context, id models.ID) (*T, error)
	Lookup(id models.ID) (T, bool)
}

// RequestRepositoryInterface defines the contract for maintenance request operations
type RequestRepositoryInterface interface {
	ReaderInterface[models.MaintenanceRequest]
	Create(ctx context.Context, input *models.CreateRequestInput) (*models.MaintenanceRequest, error)
	Update(ctx context.Context, id models.ID, input *models.UpdateRequestInput) (*models.MaintenanceRequest, error)
	Delete(ctx context.Context, id models.ID) error
	UpdateStatus(ctx context.Context, id models.ID, status models.RequestStatus) (*models.MaintenanceRequest, error)
	Assign(ctx context.Context, id models.ID, technicianID models.ID) (*models.MaintenanceRequest, error)
}

// ReportRepositoryInterface defines the contract for report operations
type ReportRepositoryInterface interface {
	ReaderInterface[models.Report]
	Create(ctx context.Context, input *models.CreateReportInput) (*models.Report, error)
	Update(ctx context.Context, id models.ID, input *models.UpdateReportInput) (*models.Report, error)
	Delete(ctx context.Context, id models.ID) error
}

// AnalyticsRepositoryInterface defines the dashboard data sources
type AnalyticsRepositoryInterface interface {
	Statistics(ctx context.Context) (*models.Statistics, error)
	RequestsByStatus(ctx context.Context) ([]models.StatusCount, error)
	RequestsByPriority(ctx context.Context) ([]models.PriorityCount, error)
	TopClients(ctx context.Context) ([]models.TopClient, error)
	ElevatorHealth(ctx context.Context) ([]models.ElevatorHealth, error)
}

// RepositoryContainerInterface defines the contract for the repository container
type RepositoryContainerInterface interface {
	GetRequestRepository() RequestRepositoryInterface
	GetReportRepository() ReportRepositoryInterface
	GetClientRepository() *EntityRepository[models.Client]
	GetElevatorRepository() *EntityRepository[models.Elevator]
	GetContractRepository() *EntityRepository[models.Contract]
	GetTechnicianRepository() *EntityRepository[models.Technician]
	GetAnalyticsRepository() AnalyticsRepositoryInterface
}
