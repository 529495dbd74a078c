package services

import "net/http"

// ServiceError is a typed failure with the HTTP status code the
// controller should answer with.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string {
	return e.Message
}

// errNotFound reports a missing target record for a read, update or
// delete.
func errNotFound(kind string) *ServiceError {
	return &ServiceError{StatusCode: http.StatusNotFound, Message: kind + " not found"}
}

// errBrokenReference reports a caller-supplied id that did not resolve
// during composition. A broken reference in the request body is a
// client error, not a missing target.
func errBrokenReference(kind string) *ServiceError {
	return &ServiceError{StatusCode: http.StatusBadRequest, Message: kind + " not found"}
}

// errInvalidID reports a structurally invalid identifier in the request
// body.
func errInvalidID(kind string) *ServiceError {
	return &ServiceError{StatusCode: http.StatusBadRequest, Message: "Invalid " + kind + " id"}
}

// errStore reports a failed store operation. Store trouble is fatal to
// the request and never retried.
func errStore(message string) *ServiceError {
	return &ServiceError{StatusCode: http.StatusInternalServerError, Message: message}
}
