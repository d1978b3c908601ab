package visit

import "errors"

// Visit domain errors
var (
	// Clock event errors
	ErrAlreadyClockedIn  = errors.New("visit is already clocked in")
	ErrNotClockedIn      = errors.New("visit has not been clocked in yet")
	ErrAlreadyClockedOut = errors.New("visit is already clocked out")
	ErrNotClockable      = errors.New("visit is not in a clockable state")

	// Administrative transition errors
	ErrIllegalTransition = errors.New("visit status does not allow this transition")

	// General errors
	ErrVisitNotFound = errors.New("visit not found")
)
