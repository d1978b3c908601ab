package assignment

import "errors"

var (
	ErrAssignmentNotFound     = errors.New("assignment not found")
	ErrAssignmentAlreadyEnded = errors.New("assignment has already ended")
	ErrNotAssigned            = errors.New("employee is not assigned to this visit")
	ErrNoActiveAssignment     = errors.New("employee has no active assignment to this client")
	ErrNotVisitClient         = errors.New("visit does not belong to this client")
)
