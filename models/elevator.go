package models

import "time"

// ElevatorStatus is the operational state of an elevator
type ElevatorStatus string

const (
	ElevatorStatusOperational      ElevatorStatus = "OPERATIONAL"
	ElevatorStatusUnderMaintenance ElevatorStatus = "UNDER_MAINTENANCE"
	ElevatorStatusOutOfService     ElevatorStatus = "OUT_OF_SERVICE"
)

// Elevator is a unit installed at a client site
type Elevator struct {
	ID                  ID             `json:"id"`
	SerialNumber        string         `json:"serialNumber"`
	Model               string         `json:"model"`
	Manufacturer        string         `json:"manufacturer,omitempty"`
	Status              ElevatorStatus `json:"status,omitempty"`
	ClientID            ID             `json:"clientId"`
	Client              *ClientRef     `json:"client,omitempty"`
	Address             string         `json:"address,omitempty"`
	Latitude            *float64       `json:"latitude,omitempty"`
	Longitude           *float64       `json:"longitude,omitempty"`
	InstallationDate    *time.Time     `json:"installationDate,omitempty"`
	LastMaintenanceDate *time.Time     `json:"lastMaintenanceDate,omitempty"`
	CreatedAt           time.Time      `json:"createdAt"`
}

// DefaultLocation returns the elevator coordinates, nil when either is unknown
func (e *Elevator) DefaultLocation() *Location {
	if e == nil || e.Latitude == nil || e.Longitude == nil {
		return nil
	}
	return &Location{Latitude: *e.Latitude, Longitude: *e.Longitude}
}
