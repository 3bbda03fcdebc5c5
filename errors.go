package arcade

import (
	"fmt"

	"github.com/gogpu/arcade/graphics"
)

// PlatformError reports a failure in the graphics device or the
// underlying GPU. It is an alias for [graphics.PlatformError] so errors
// surface under one name whether they originate in the device layer or
// the framework.
type PlatformError = graphics.PlatformError

// DisplayModeError reports a failure to change the window's display
// state, such as entering fullscreen or resizing.
type DisplayModeError struct {
	// Op describes the attempted operation.
	Op string

	// Err is the underlying platform error.
	Err error
}

func (e *DisplayModeError) Error() string {
	return fmt.Sprintf("arcade: %s: %v", e.Op, e.Err)
}

func (e *DisplayModeError) Unwrap() error {
	return e.Err
}

func displayModeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &DisplayModeError{Op: op, Err: err}
}

func platformErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &PlatformError{Op: op, Err: err}
}
