package models

import "time"

// StatusEvent is published after every successful lifecycle transition
type StatusEvent struct {
	RequestID       ID            `json:"requestId"`
	ReferenceNumber string        `json:"referenceNumber,omitempty"`
	From            RequestStatus `json:"from"`
	To              RequestStatus `json:"to"`
	TechnicianID    ID            `json:"technicianId,omitempty"`
	Actor           string        `json:"actor,omitempty"`
	At              time.Time     `json:"at"`
}
