package models

import "time"

// ContractStatus of a service contract
type ContractStatus string

const (
	ContractStatusActive  ContractStatus = "ACTIVE"
	ContractStatusExpired ContractStatus = "EXPIRED"
	ContractStatusPending ContractStatus = "PENDING"
)

// Contract is a service agreement between the provider and a client
type Contract struct {
	ID             ID             `json:"id"`
	ContractNumber string         `json:"contractNumber"`
	ClientID       ID             `json:"clientId"`
	Client         *ClientRef     `json:"client,omitempty"`
	Type           string         `json:"type,omitempty"`
	Status         ContractStatus `json:"status,omitempty"`
	StartDate      *time.Time     `json:"startDate,omitempty"`
	EndDate        *time.Time     `json:"endDate,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
}
