package models

import "time"

// ClientStatus of a customer account
type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "ACTIVE"
	ClientStatusInactive ClientStatus = "INACTIVE"
)

// Client owns elevators and contracts
type Client struct {
	ID            ID           `json:"id"`
	Name          string       `json:"name"`
	Email         string       `json:"email,omitempty"`
	Phone         string       `json:"phone,omitempty"`
	Address       string       `json:"address,omitempty"`
	ContactPerson string       `json:"contactPerson,omitempty"`
	Status        ClientStatus `json:"status,omitempty"`
	CreatedAt     time.Time    `json:"createdAt"`
}
