package workorder

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound  = errors.New("work order not found")
	ErrForbidden = errors.New("not authorized for this work order")
)

// ValidationError names the offending field so the caller can correct input
// without guessing.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// InsufficientStockError reports a reservation that could not be backed by
// stock. The failing part, its current availability and the requested amount
// are all caller-visible.
type InsufficientStockError struct {
	PartID    int64
	PartName  string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient quantity for part %s: available %d, requested %d",
		e.PartName, e.Available, e.Requested)
}

// ReferenceNotFoundError reports an assignee or part id that did not resolve,
// naming the resolved kind and the id.
type ReferenceNotFoundError struct {
	Kind string
	ID   int64
}

func (e *ReferenceNotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %d not found", e.Kind, e.ID)
}
