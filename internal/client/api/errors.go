package api

import (
	"errors"
	"fmt"
)

// ErrBatchUnsupported indicates that the server does not expose the bulk
// sync endpoint. Callers fall back to submitting orders one by one.
var ErrBatchUnsupported = errors.New("bulk sync endpoint not supported by server")

// RejectionError means the server understood the request and refused it,
// e.g. an invalid discount. A rejected order must not be retried unchanged;
// it needs user correction. Every other submission failure (unreachable
// host, timeout, 5xx) is transient and safe to retry.
type RejectionError struct {
	Detail string
	Status int
}

func (e *RejectionError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("rejected by server (status %d)", e.Status)
	}
	return fmt.Sprintf("rejected by server (status %d): %s", e.Status, e.Detail)
}

// IsRejection reports whether err represents a server-side rejection as
// opposed to a transient network failure.
func IsRejection(err error) bool {
	var rejection *RejectionError
	return errors.As(err, &rejection)
}
