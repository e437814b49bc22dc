package errs

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrDatabaseQuery = errors.New("database query failed")

// NewDatabaseError wraps an unexpected storage failure. The client sees a
// generic message; the cause stays server-side for logging.
func NewDatabaseError(operation, entity string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        fmt.Errorf("failed to %s %s: %w", operation, entity, ErrDatabaseQuery),
		Cause:      cause,
	}
}
