package session

import "errors"

// Session errors.
var (
	// ErrStopRequested is returned by a line handler to request session
	// shutdown; it is treated exactly like an explicit Stop call.
	ErrStopRequested = errors.New("stop requested")

	// ErrAlreadyRunning indicates the worker loop is already running.
	ErrAlreadyRunning = errors.New("session already running")
)
