package services

import (
	"elevatorops-console/infrastructure"
	"elevatorops-console/models"
	"elevatorops-console/repository"
	"elevatorops-console/utils/logger"
)

// Service implements ServiceContainerInterface
type Service struct {
	lifecycleService RequestLifecycleServiceInterface
	requestService   RequestServiceInterface
	reportService    ReportServiceInterface
	dashboardService DashboardServiceInterface
}

// NewService creates a new service container with all dependencies injected
func NewService(
	repoContainer repository.RepositoryContainerInterface,
	refresher CollectionRefresher,
	notifier infrastructure.Notifier,
	logger logger.Logger,
	config *models.Config,
) ServiceContainerInterface {
	return &Service{
		lifecycleService: NewRequestLifecycleService(repoContainer.GetRequestRepository(), refresher, notifier, logger),
		requestService:   NewRequestService(repoContainer.GetRequestRepository(), repoContainer.GetElevatorRepository(), refresher, logger),
		reportService:    NewReportService(repoContainer.GetReportRepository(), refresher, logger, config.ExportDir),
		dashboardService: NewDashboardService(repoContainer.GetAnalyticsRepository(), config.DashboardAnalyticsDelay, logger),
	}
}

// GetLifecycleService returns the request lifecycle service interface
func (s *Service) GetLifecycleService() RequestLifecycleServiceInterface {
	return s.lifecycleService
}

// GetRequestService returns the request service interface
func (s *Service) GetRequestService() RequestServiceInterface {
	return s.requestService
}

// GetReportService returns the report service interface
func (s *Service) GetReportService() ReportServiceInterface {
	return s.reportService
}

// GetDashboardService returns the dashboard service interface
func (s *Service) GetDashboardService() DashboardServiceInterface {
	return s.dashboardService
}
