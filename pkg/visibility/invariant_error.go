package visibility

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// InvariantError reports a lattice element or surface visibility that the
// lattice cannot handle.  It is an internal error, never a user diagnostic.
type InvariantError struct {
	// Op is the operation that failed.
	Op string
	// Value is the offending value.
	Value any
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("visibility: %s: unexpected value %v (%T)", e.Op, e.Value, e.Value)
}

// GRPCStatus makes the error classifiable with status.Code.
func (e *InvariantError) GRPCStatus() *status.Status {
	return status.New(codes.Internal, e.Error())
}

// IsInvariantError reports whether err is or wraps an *InvariantError.
func IsInvariantError(err error) bool {
	var target *InvariantError
	return errors.As(err, &target)
}
