package graphics

import "fmt"

// PlatformError reports a failure of the underlying graphics or OS API:
// resource allocation, readback, monitor or cursor queries. There is no
// local recovery — the error propagates to the caller, which decides
// whether to abort startup or degrade.
type PlatformError struct {
	// Op is the operation that failed, e.g. "create texture".
	Op string

	// Err is the underlying device error.
	Err error
}

// Error implements the error interface.
func (e *PlatformError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("graphics: %s failed", e.Op)
	}
	return fmt.Sprintf("graphics: %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying device error.
func (e *PlatformError) Unwrap() error {
	return e.Err
}

// platformErr wraps a device error into a *PlatformError, passing through
// errors that already carry the taxonomy.
func platformErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if pe, ok := err.(*PlatformError); ok {
		return pe
	}
	return &PlatformError{Op: op, Err: err}
}
