package query

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound is matched by every *NotFoundError.
var ErrNotFound = errors.New("record not found")

// NotFoundError is returned when Get finds no record with the given id.
type NotFoundError struct {
	Collection string
	ID         string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("collection %q record %q not found", e.Collection, e.ID)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// StatusCode returns the HTTP status code for this error.
func (e *NotFoundError) StatusCode() int {
	return http.StatusNotFound
}
