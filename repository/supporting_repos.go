package repository

import (
	"elevatorops-console/dal"
	"elevatorops-console/models"
	"elevatorops-console/utils/logger"
)

// Supporting entities have CRUD only, so they use EntityRepository directly.

func NewClientRepository(gateway dal.Gateway, log logger.Logger) *EntityRepository[models.Client] {
	return NewEntityRepository(gateway, Endpoint{
		Collection: CollectionClients,
		Path:       "/clients",
		ListKey:    "clients",
		ItemKey:    "client",
	}, func(c models.Client) models.ID { return c.ID }, log)
}

func NewElevatorRepository(gateway dal.Gateway, log logger.Logger) *EntityRepository[models.Elevator] {
	return NewEntityRepository(gateway, Endpoint{
		Collection: CollectionElevators,
		Path:       "/elevators",
		ListKey:    "elevators",
		ItemKey:    "elevator",
	}, func(e models.Elevator) models.ID { return e.ID }, log)
}

func NewContractRepository(gateway dal.Gateway, log logger.Logger) *EntityRepository[models.Contract] {
	return NewEntityRepository(gateway, Endpoint{
		Collection: CollectionContracts,
		Path:       "/contracts",
		ListKey:    "contracts",
		ItemKey:    "contract",
	}, func(c models.Contract) models.ID { return c.ID }, log)
}

func NewTechnicianRepository(gateway dal.Gateway, log logger.Logger) *EntityRepository[models.Technician] {
	return NewEntityRepository(gateway, Endpoint{
		Collection: CollectionTechnicians,
		Path:       "/technicians",
		ListKey:    "technicians",
		ItemKey:    "technician",
	}, func(t models.Technician) models.ID { return t.ID }, log)
}
