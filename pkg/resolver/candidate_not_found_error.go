package resolver

import (
	"errors"
	"fmt"
)

// ErrCandidateNotFound is returned when no applicable candidate exists for a
// name at any tower level.
var ErrCandidateNotFound = fmt.Errorf("candidate not found")

// InaccessibleCandidateError is returned when applicable candidates exist
// but none of them is accessible from the use site.  It reports the highest
// priority inaccessible candidates.
type InaccessibleCandidateError struct {
	Name       string
	Candidates []*Candidate
}

func (e *InaccessibleCandidateError) Error() string {
	return fmt.Sprintf("%q is not accessible: %v", e.Name, e.Candidates)
}

// Unwrap makes an inaccessible candidate match ErrCandidateNotFound with
// errors.Is.
func (e *InaccessibleCandidateError) Unwrap() error {
	return ErrCandidateNotFound
}

// IsNotFound reports whether err means that name resolution found nothing
// usable.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrCandidateNotFound)
}
