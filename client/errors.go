package client

import (
	"fmt"
	"strconv"
)

// Kind is the closed set of failure classes a call can surface. Adding
// a new recognized server status means adding a case here, on purpose.
type Kind int

const (
	// KindTransport: the request never produced a response.
	KindTransport Kind = iota
	// KindMalformed: a success response carried a body that does not
	// decode into the expected type.
	KindMalformed
	// KindNotFound: the entity, or its parent, does not exist (404).
	KindNotFound
	// KindServer: the server reported an internal failure (500). The
	// message, when present, is diagnostic only.
	KindServer
	// KindUnexpectedStatus: a status code this client does not
	// interpret.
	KindUnexpectedStatus
)

// Error is the typed failure returned by every client operation.
type Error struct {
	Kind    Kind
	Status  int    // set for KindUnexpectedStatus
	Message string // set for KindServer when the body decoded
	cause   error
}

// Sentinels for errors.Is; matching compares Kind only.
var (
	ErrNotFound   = &Error{Kind: KindNotFound}
	ErrServer     = &Error{Kind: KindServer}
	ErrTransport  = &Error{Kind: KindTransport}
	ErrMalformed  = &Error{Kind: KindMalformed}
	ErrUnexpected = &Error{Kind: KindUnexpectedStatus}
)

func (e *Error) Error() string {
	switch e.Kind {
	case KindTransport:
		return withCause("transport failure", e.cause)
	case KindMalformed:
		return withCause("malformed response", e.cause)
	case KindNotFound:
		return "not found"
	case KindServer:
		if e.Message != "" {
			return "server error: " + e.Message
		}
		return "server error"
	case KindUnexpectedStatus:
		return "unexpected status " + strconv.Itoa(e.Status)
	default:
		return fmt.Sprintf("unknown error kind %d", e.Kind)
	}
}

func (e *Error) Unwrap() error { return e.cause }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return msg + ": " + cause.Error()
}
