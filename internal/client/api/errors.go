package api

import (
	"errors"
	"net/http"

	"github.com/heartmarshall/batch-dashboard/internal/domain"
)

// Kind classifies a failed request.
type Kind int

const (
	KindUnclassified Kind = iota
	KindValidation
	KindAuth
	KindNotFound
	KindAlreadyRunning
	KindServer
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuth:
		return "auth"
	case KindNotFound:
		return "not_found"
	case KindAlreadyRunning:
		return "already_running"
	case KindServer:
		return "server"
	default:
		return "unclassified"
	}
}

// Sentinels matched by errors.Is against an *Error of the same kind.
var (
	ErrUnclassified   = errors.New("request failed")
	ErrValidation     = errors.New("validation failed")
	ErrAuth           = errors.New("authentication failed")
	ErrNotFound       = errors.New("not found")
	ErrAlreadyRunning = errors.New("batch already running")
	ErrServer         = errors.New("server error")
)

func (k Kind) sentinel() error {
	switch k {
	case KindValidation:
		return ErrValidation
	case KindAuth:
		return ErrAuth
	case KindNotFound:
		return ErrNotFound
	case KindAlreadyRunning:
		return ErrAlreadyRunning
	case KindServer:
		return ErrServer
	default:
		return ErrUnclassified
	}
}

// ErrNoToken is returned by authenticated requests made without a token.
var ErrNoToken = &Error{Kind: KindAuth, Message: "No authentication token found"}

// Error is a request failure with a single human-readable message.
type Error struct {
	Kind       Kind
	StatusCode int
	Message    string
	// Fields holds per-field problems reported by validation failures.
	Fields []domain.FieldError
}

func (e *Error) Error() string { return e.Message }

// Is matches the sentinel of the error's kind.
func (e *Error) Is(target error) bool {
	return target == e.Kind.sentinel()
}

// KindForStatus maps a non-2xx status code to an error kind.
func KindForStatus(status int) Kind {
	switch {
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return KindAuth
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusUnprocessableEntity:
		return KindValidation
	case status >= 500:
		return KindServer
	default:
		return KindUnclassified
	}
}

// FromValidation converts a local validation failure.
func FromValidation(verr *domain.ValidationError) *Error {
	msg := "Validation error occurred"
	if len(verr.Errors) > 0 {
		msg = verr.Errors[0].Message
	}
	return &Error{Kind: KindValidation, Message: msg, Fields: verr.Errors}
}
