package network

import "fmt"

// InconsistentDataError is returned by Load when the station and line records
// do not describe a valid network
type InconsistentDataError struct {
	Reason string
}

func (e *InconsistentDataError) Error() string {
	return fmt.Sprintf("inconsistent network data: %s", e.Reason)
}

func inconsistent(format string, args ...any) error {
	return &InconsistentDataError{Reason: fmt.Sprintf(format, args...)}
}
