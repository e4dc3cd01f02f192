package models

import "time"

// Technician performs maintenance work
type Technician struct {
	ID             ID        `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	Specialization string    `json:"specialization,omitempty"`
	Available      bool      `json:"available"`
	CreatedAt      time.Time `json:"createdAt"`
}
