package request

import (
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrStatus is wrapped by every error returned from Error.
var ErrStatus = errors.New("unexpected http status")

// maxBody bounds how much of an error response body is kept for messages.
const maxBody = 4 << 10

// StatusError describes a non-2xx response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("http status code %d", e.StatusCode)
	}
	return fmt.Sprintf("http status code %d: %s", e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error { return ErrStatus }

// Error checks the given http response for an error code, and, if one is
// present, reads (a bounded amount of) the body and returns a friendly error.
// The body is left open for the caller to close either way.
func Error(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	bs, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return &StatusError{StatusCode: resp.StatusCode, Body: fmt.Sprintf("error reading body: %s", err)}
	}
	return &StatusError{StatusCode: resp.StatusCode, Body: string(bs)}
}
