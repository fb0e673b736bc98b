package stigg

import (
	"fmt"
	"strings"
)

// APIError wraps a failed target catalog operation with the entity kind and
// the identifying ref so the orchestrator can report what broke.
type APIError struct {
	Entity string
	Ref    string
	Err    error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("stigg %s %q: %v", strings.ToLower(e.Entity), e.Ref, e.Err)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func newAPIError(entity, ref string, err error) *APIError {
	return &APIError{Entity: entity, Ref: ref, Err: err}
}
