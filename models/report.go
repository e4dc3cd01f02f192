package models

import "time"

// Report is written by a technician after finishing work on a request
type Report struct {
	ID                    ID                `json:"id"`
	RequestID             ID                `json:"requestId"`
	Request               *ReportRequestRef `json:"request,omitempty"`
	TechnicianID          ID                `json:"technicianId"`
	Technician            *TechnicianRef    `json:"technician,omitempty"`
	ProblemType           string            `json:"problemType"`
	SolutionDescription   string            `json:"solutionDescription"`
	SparePartsDescription string            `json:"sparePartsDescription,omitempty"`
	TimeSpentMinutes      int               `json:"timeSpentMinutes"`
	Images                []string          `json:"images"`
	Recommendations       string            `json:"recommendations,omitempty"`
	CreatedAt             time.Time         `json:"createdAt"`
	UpdatedAt             *time.Time        `json:"updatedAt,omitempty"`
}

// ReportRequestRef is the request summary embedded in a report
type ReportRequestRef struct {
	ID              ID            `json:"id"`
	ReferenceNumber string        `json:"referenceNumber"`
	Status          RequestStatus `json:"status"`
	ClientName      string        `json:"clientName,omitempty"`
}

// ReferenceNumber returns the parent request reference or ""
func (r *Report) ReferenceNumber() string {
	if r.Request == nil {
		return ""
	}
	return r.Request.ReferenceNumber
}

// TechnicianName returns the authoring technician name or ""
func (r *Report) TechnicianName() string {
	if r.Technician == nil {
		return ""
	}
	return r.Technician.Name
}

// CreateReportInput is the payload for submitting a report
type CreateReportInput struct {
	RequestID             ID       `json:"requestId" validate:"required"`
	TechnicianID          ID       `json:"technicianId" validate:"required"`
	ProblemType           string   `json:"problemType" validate:"required,max=200"`
	SolutionDescription   string   `json:"solutionDescription" validate:"required,max=4000"`
	SparePartsDescription string   `json:"sparePartsDescription,omitempty" validate:"omitempty,max=2000"`
	TimeSpentMinutes      int      `json:"timeSpentMinutes" validate:"gte=0"`
	Images                []string `json:"images,omitempty"`
	Recommendations       string   `json:"recommendations,omitempty" validate:"omitempty,max=2000"`
}

// UpdateReportInput edits an existing report
type UpdateReportInput struct {
	ProblemType           string   `json:"problemType,omitempty" validate:"omitempty,max=200"`
	SolutionDescription   string   `json:"solutionDescription,omitempty" validate:"omitempty,max=4000"`
	SparePartsDescription string   `json:"sparePartsDescription,omitempty" validate:"omitempty,max=2000"`
	TimeSpentMinutes      *int     `json:"timeSpentMinutes,omitempty" validate:"omitempty,gte=0"`
	Images                []string `json:"images,omitempty"`
	Recommendations       string   `json:"recommendations,omitempty" validate:"omitempty,max=2000"`
}

// ReportExport is a rendered report workbook
type ReportExport struct {
	ReportID    ID     `json:"reportId"`
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	Content     []byte `json:"-"`
	Path        string `json:"path,omitempty"`
}
