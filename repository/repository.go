package repository

import (
	"elevatorops-console/dal"
	"elevatorops-console/models"
	"elevatorops-console/utils/logger"
)

// Repository implements RepositoryContainerInterface
type Repository struct {
	requests    *RequestRepository
	reports     *ReportRepository
	clients     *EntityRepository[models.Client]
	elevators   *EntityRepository[models.Elevator]
	contracts   *EntityRepository[models.Contract]
	technicians *EntityRepository[models.Technician]
	analytics   *AnalyticsRepository
}

// NewRepository wires one repository per entity over a shared gateway
func NewRepository(gateway dal.Gateway, log logger.Logger) *Repository {
	return &Repository{
		requests:    NewRequestRepository(gateway, log),
		reports:     NewReportRepository(gateway, log),
		clients:     NewClientRepository(gateway, log),
		elevators:   NewElevatorRepository(gateway, log),
		contracts:   NewContractRepository(gateway, log),
		technicians: NewTechnicianRepository(gateway, log),
		analytics:   NewAnalyticsRepository(gateway, log),
	}
}

func (r *Repository) GetRequestRepository() RequestRepositoryInterface { return r.requests }

func (r *Repository) GetReportRepository() ReportRepositoryInterface { return r.reports }

func (r *Repository) GetClientRepository() *EntityRepository[models.Client] { return r.clients }

func (r *Repository) GetElevatorRepository() *EntityRepository[models.Elevator] { return r.elevators }

func (r *Repository) GetContractRepository() *EntityRepository[models.Contract] { return r.contracts }

func (r *Repository) GetTechnicianRepository() *EntityRepository[models.Technician] {
	return r.technicians
}

func (r *Repository) GetAnalyticsRepository() AnalyticsRepositoryInterface { return r.analytics }
