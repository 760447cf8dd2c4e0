package domain

import "errors"

var (
	// ErrTransport indicates a network or connectivity failure at an
	// external boundary
	ErrTransport = errors.New("transport failure")
	// ErrSchemaViolation indicates the backend returned data that does
	// not match the expected structured shape
	ErrSchemaViolation = errors.New("schema violation")
	// ErrNotFound indicates resource not found
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidRequest indicates invalid request
	ErrInvalidRequest = errors.New("invalid request")
)
