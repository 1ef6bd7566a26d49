package profile

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownGPU is a sentinel matched by all UnknownGPUError values.
var ErrUnknownGPU = errors.New("unknown GPU profile")

// UnknownGPUError indicates that an explicitly requested profile name is not
// in the table. It is a fatal, user-correctable input error.
type UnknownGPUError struct {
	// Name is the offending identifier.
	Name string
	// Known lists the valid profile names.
	Known []string
}

func (e *UnknownGPUError) Error() string {
	return fmt.Sprintf("unknown GPU profile %q (valid profiles: %s)",
		e.Name, strings.Join(e.Known, ", "))
}

// Is implements error matching for UnknownGPUError
func (e *UnknownGPUError) Is(target error) bool {
	return target == ErrUnknownGPU
}
