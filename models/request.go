package models

import "time"

// RequestStatus is the lifecycle state of a maintenance request
type RequestStatus string

const (
	RequestStatusPending    RequestStatus = "PENDING"
	RequestStatusAssigned   RequestStatus = "ASSIGNED"
	RequestStatusOnWay      RequestStatus = "ON_WAY"
	RequestStatusInProgress RequestStatus = "IN_PROGRESS"
	RequestStatusCompleted  RequestStatus = "COMPLETED"
	RequestStatusCancelled  RequestStatus = "CANCELLED"
)

// RequestStatuses lists every status in lifecycle order
var RequestStatuses = []RequestStatus{
	RequestStatusPending,
	RequestStatusAssigned,
	RequestStatusOnWay,
	RequestStatusInProgress,
	RequestStatusCompleted,
	RequestStatusCancelled,
}

// StatusRank follows lifecycle order, used by status sort keys
var StatusRank = map[string]int{
	string(RequestStatusPending):    0,
	string(RequestStatusAssigned):   1,
	string(RequestStatusOnWay):      2,
	string(RequestStatusInProgress): 3,
	string(RequestStatusCompleted):  4,
	string(RequestStatusCancelled):  5,
}

// Priority of a maintenance request
type Priority string

const (
	PriorityEmergency Priority = "EMERGENCY"
	PriorityUrgent    Priority = "URGENT"
	PriorityNormal    Priority = "NORMAL"
)

// PriorityRank orders EMERGENCY < URGENT < NORMAL
var PriorityRank = map[string]int{
	string(PriorityEmergency): 0,
	string(PriorityUrgent):    1,
	string(PriorityNormal):    2,
}

// RequestType distinguishes emergency call-outs from regular visits
type RequestType string

const (
	RequestTypeEmergency RequestType = "EMERGENCY"
	RequestTypeRegular   RequestType = "REGULAR"
)

// Location is a latitude/longitude pair
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ClientRef is the client summary embedded in a request
type ClientRef struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

// ElevatorRef is the elevator summary embedded in a request
type ElevatorRef struct {
	ID           ID     `json:"id"`
	Model        string `json:"model"`
	SerialNumber string `json:"serialNumber"`
}

// TechnicianRef is the technician summary embedded in a request
type TechnicianRef struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

// MaintenanceRequest is one unit of maintenance work for one client and one elevator
type MaintenanceRequest struct {
	ID                   ID             `json:"id"`
	ReferenceNumber      string         `json:"referenceNumber"`
	Status               RequestStatus  `json:"status"`
	Priority             Priority       `json:"priority"`
	RequestType          RequestType    `json:"requestType"`
	Description          string         `json:"description"`
	AccessDetails        string         `json:"accessDetails,omitempty"`
	Location             *Location      `json:"location,omitempty"`
	ScheduledDate        *time.Time     `json:"scheduledDate,omitempty"`
	CreatedAt            time.Time      `json:"createdAt"`
	UpdatedAt            *time.Time     `json:"updatedAt,omitempty"`
	ClientID             ID             `json:"clientId"`
	Client               *ClientRef     `json:"client,omitempty"`
	ElevatorID           ID             `json:"elevatorId"`
	Elevator             *ElevatorRef   `json:"elevator,omitempty"`
	ContractID           ID             `json:"contractId,omitempty"`
	AssignedTechnicianID ID             `json:"assignedTechnicianId,omitempty"`
	AssignedTechnician   *TechnicianRef `json:"assignedTechnician,omitempty"`
	ReportID             ID             `json:"reportId,omitempty"`
}

// HasReport reports whether a report is attached
func (r *MaintenanceRequest) HasReport() bool {
	return !r.ReportID.IsZero()
}

// ClientName returns the embedded client name or ""
func (r *MaintenanceRequest) ClientName() string {
	if r.Client == nil {
		return ""
	}
	return r.Client.Name
}

// ElevatorModel returns the embedded elevator model or ""
func (r *MaintenanceRequest) ElevatorModel() string {
	if r.Elevator == nil {
		return ""
	}
	return r.Elevator.Model
}

// ElevatorSerial returns the embedded elevator serial number or ""
func (r *MaintenanceRequest) ElevatorSerial() string {
	if r.Elevator == nil {
		return ""
	}
	return r.Elevator.SerialNumber
}

// CreateRequestInput is the payload for opening a new request
type CreateRequestInput struct {
	ClientID      ID          `json:"clientId" validate:"required"`
	ElevatorID    ID          `json:"elevatorId" validate:"required"`
	ContractID    ID          `json:"contractId,omitempty"`
	Priority      Priority    `json:"priority" validate:"required,oneof=EMERGENCY URGENT NORMAL"`
	RequestType   RequestType `json:"requestType" validate:"required,oneof=EMERGENCY REGULAR"`
	Description   string      `json:"description" validate:"required,min=3,max=2000"`
	AccessDetails string      `json:"accessDetails,omitempty" validate:"omitempty,max=1000"`
	Location      *Location   `json:"location,omitempty"`
	ScheduledDate *time.Time  `json:"scheduledDate,omitempty"`
}

// UpdateRequestInput is an explicit edit. Status and technician are not editable here.
type UpdateRequestInput struct {
	Priority             Priority      `json:"priority,omitempty" validate:"omitempty,oneof=EMERGENCY URGENT NORMAL"`
	Description          string        `json:"description,omitempty" validate:"omitempty,min=3,max=2000"`
	AccessDetails        *string       `json:"accessDetails,omitempty" validate:"omitempty,max=1000"`
	ScheduledDate        *time.Time    `json:"scheduledDate,omitempty"`
	ContractID           ID            `json:"contractId,omitempty"`
	Status               RequestStatus `json:"status,omitempty"`
	AssignedTechnicianID ID            `json:"assignedTechnicianId,omitempty"`
}

// StatusChange is the payload sent for a lifecycle transition
type StatusChange struct {
	Status RequestStatus `json:"status"`
}

// Assignment is the payload sent for assigning a technician
type Assignment struct {
	TechnicianID ID            `json:"technicianId"`
	Status       RequestStatus `json:"status"`
}
