package usecase

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrInvalidRequest   = errors.New("invalid request")
	ErrFacilityNotFound = errors.New("facility not found")
)

// ValidationError lists the offending request fields by json name.
// It matches ErrInvalidRequest with errors.Is.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, msg := range e.Fields {
		msgs = append(msgs, msg)
	}
	sort.Strings(msgs)
	return ErrInvalidRequest.Error() + ": " + strings.Join(msgs, ", ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidRequest
}
