package api

import "fmt"

// ErrorKind identifies which stage of a request failed.
type ErrorKind string

const (
	KindValidation ErrorKind = "VALIDATION"
	KindNetwork    ErrorKind = "NETWORK"
	KindProtocol   ErrorKind = "PROTOCOL"
	KindParse      ErrorKind = "PARSE"
)

// ValidationMessage is shown when the URL fails the pre-flight check.
const ValidationMessage = "URL must start with http:// or https://"

// RequestError is the error type for all client-side request failures.
// It carries a kind so callers can report the failure stage, and supports
// wrapping via Unwrap.
type RequestError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// UserMessage is the single line surfaced in the UI for this error.
func (e *RequestError) UserMessage() string {
	return e.Message
}

func newRequestError(kind ErrorKind, message string, err error) *RequestError {
	return &RequestError{Kind: kind, Message: message, Err: err}
}
