package connect

import (
	"fmt"
	"strings"

	beans "github.com/appuploader/appstore-connect-v3/model"
)

// TransportError wraps network level failures: DNS, TLS, resets, timeouts.
// The caller decides whether to retry; this library never does.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %s", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ApiError is a structured rejection from the server: expired token, invalid
// filter, missing resource, permission denied and so on.
type ApiError struct {
	Status int
	Errors []beans.ServiceError
}

func (e *ApiError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "api error status %d", e.Status)
	for _, se := range e.Errors {
		fmt.Fprintf(&sb, "; %s: %s (%s)", se.Code, se.Title, se.Detail)
	}
	return sb.String()
}

// DecodeError means a body did not match the expected shape, for either the
// success document or the error envelope. Status and raw body are kept so
// callers can still inspect what the server actually said.
type DecodeError struct {
	Status int
	Body   []byte
	Err    error
}

func (e *DecodeError) Error() string {
	if len(e.Body) > 0 {
		return fmt.Sprintf("decode error (status %d): %s: %s", e.Status, e.Err, e.Body)
	}
	return fmt.Sprintf("decode error: %s", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// parseApiError turns a non-2xx body into an ApiError, or a DecodeError when
// the envelope itself does not parse.
func parseApiError(status int, body []byte) error {
	var envelope beans.ErrorResponse
	if e := jsonz.Unmarshal(body, &envelope); e != nil || len(envelope.Errors) == 0 {
		if e == nil {
			e = fmt.Errorf("error envelope has no errors entry")
		}
		return &DecodeError{Status: status, Body: body, Err: e}
	}
	return &ApiError{Status: status, Errors: envelope.Errors}
}
