package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the credential was missing, expired or rejected.
var ErrUnauthorized = errors.New("unauthorized")

// ErrServer indicates that the remote service failed to process an otherwise valid request.
var ErrServer = errors.New("server failure")

// ErrNetwork indicates that a request never reached the remote service or never returned.
var ErrNetwork = errors.New("network failure")

// Kind classifies a failed gateway call.
type Kind string

const (
	NetworkFailure        Kind = "network_failure"
	AuthorizationRejected Kind = "authorization_rejected"
	ValidationRejected    Kind = "validation_rejected"
	ServerFailure         Kind = "server_failure"
)

// GatewayError is returned by the data-access gateway for every failed call.
// Message carries the server supplied message when there was one.
type GatewayError struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *GatewayError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Status != 0 {
		return fmt.Sprintf("%s (status %d): %s", e.Kind, e.Status, msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, msg)
}

func (e *GatewayError) Unwrap() error { return e.Err }

// Is lets callers match a GatewayError against the package sentinels.
func (e *GatewayError) Is(target error) bool {
	switch target {
	case ErrNetwork:
		return e.Kind == NetworkFailure
	case ErrUnauthorized:
		return e.Kind == AuthorizationRejected
	case ErrValidation:
		return e.Kind == ValidationRejected
	case ErrServer:
		return e.Kind == ServerFailure
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	}
	return false
}

// NewGatewayError classifies an HTTP status into a GatewayError.
func NewGatewayError(status int, message string) *GatewayError {
	kind := ServerFailure
	switch {
	case status == http.StatusUnauthorized:
		kind = AuthorizationRejected
	case status >= 400 && status < 500:
		kind = ValidationRejected
	case status >= 200 && status < 300:
		// 2xx with success=false in the envelope
		kind = ValidationRejected
	}
	return &GatewayError{Kind: kind, Status: status, Message: message}
}

// NewNetworkError wraps a transport level failure.
func NewNetworkError(err error) *GatewayError {
	return &GatewayError{Kind: NetworkFailure, Err: err}
}

// HumanMessage renders err as a message suitable for collection error state.
// It never returns an empty string for a non-nil error.
func HumanMessage(err error) string {
	if err == nil {
		return ""
	}
	var gwErr *GatewayError
	if errors.As(err, &gwErr) {
		if gwErr.Message != "" {
			return gwErr.Message
		}
		switch gwErr.Kind {
		case NetworkFailure:
			return "Could not reach the server"
		case AuthorizationRejected:
			return "Your session has expired, please sign in again"
		case ValidationRejected:
			return "The request was rejected by the server"
		default:
			return "The server failed to process the request"
		}
	}
	return err.Error()
}
