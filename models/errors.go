package models

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failure by where it was produced
type ErrorKind string

const (
	// ErrorKindTransport means no response was obtained from the backend
	ErrorKindTransport ErrorKind = "transport"
	// ErrorKindRemoteRejected means the backend answered with an error envelope
	ErrorKindRemoteRejected ErrorKind = "remote_rejected"
	// ErrorKindShapeMismatch means a response matched no known envelope shape
	ErrorKindShapeMismatch ErrorKind = "shape_mismatch"
	// ErrorKindLocalGuard means a local check failed before any remote call
	ErrorKindLocalGuard ErrorKind = "local_guard"
)

// Failure is the normalized error surfaced across the repository boundary
type Failure struct {
	Kind       ErrorKind
	Message    string
	StatusCode int
	Err        error
}

func (f *Failure) Error() string {
	if f.StatusCode > 0 {
		return fmt.Sprintf("%s (status %d)", f.Message, f.StatusCode)
	}
	return f.Message
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// NewGuardFailure wraps a sentinel guard error with a readable message
func NewGuardFailure(err error, format string, args ...interface{}) *Failure {
	return &Failure{
		Kind:    ErrorKindLocalGuard,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// KindOf returns the failure kind carried by err, or "" when err is not a Failure
func KindOf(err error) ErrorKind {
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind
	}
	return ""
}

// Guard sentinels
var (
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrAssignRequired       = errors.New("assignment must go through assign")
	ErrTechnicianRequired   = errors.New("technician is required")
	ErrNotPending           = errors.New("request is not pending")
	ErrStatusNotEditable    = errors.New("status cannot be changed by edit")
	ErrReportExported       = errors.New("report already exported")
	ErrValidation           = errors.New("validation failed")
	ErrNotFound             = errors.New("record not found")
	ErrWriteNotAcknowledged = errors.New("write not acknowledged by backend")
)
