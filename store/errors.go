package store

import (
	"errors"
	"fmt"
)

// ErrNotFound matches any *NotFoundError via errors.Is
var ErrNotFound = errors.New("complaint not found")

// NotFoundError is returned by FindByID when no complaint has the id
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("complaint %q not found", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
