package tower

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// CapacityError is raised when a Key cannot hold another refinement.  It is
// an internal error: real scope chains never nest this deep, so hitting it
// means the caller is building keys in an unbounded loop.
type CapacityError struct {
	// Kind is the refinement that did not fit.
	Kind Kind
	// UsedBits is the number of code bits consumed before the refinement.
	UsedBits int
	// Reason says which budget was exceeded.
	Reason string
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("tower key overflow: %s (refining %v, used bits: %d)", e.Reason, e.Kind, e.UsedBits)
}

// GRPCStatus makes the error classifiable with status.Code.
func (e *CapacityError) GRPCStatus() *status.Status {
	return status.New(codes.ResourceExhausted, e.Error())
}

// IsCapacityError reports whether err is or wraps a *CapacityError.
func IsCapacityError(err error) bool {
	var target *CapacityError
	return errors.As(err, &target)
}
