package domain

import (
	"errors"
	"fmt"
)

// Common domain errors returned by catalog lookups and engine operations.
var (
	// ErrNotFound indicates that a catalog reference resolved to nothing.
	// Both ErrBoardNotFound and ErrComponentNotFound wrap it.
	ErrNotFound = errors.New("not found")

	// ErrBoardNotFound indicates that a board reference did not resolve.
	ErrBoardNotFound = fmt.Errorf("board %w", ErrNotFound)

	// ErrComponentNotFound indicates that a component reference did not
	// resolve.
	ErrComponentNotFound = fmt.Errorf("component %w", ErrNotFound)

	// ErrInvalidConfiguration indicates that configuration is invalid or
	// incomplete.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// NotFoundError carries the unresolved reference alongside the sentinel,
// so callers can both match with errors.Is and report what was asked for.
type NotFoundError struct {
	// Entity is "board" or "component".
	Entity string

	// Ref is the reference that failed to resolve.
	Ref string
}

// Error implements the error interface for NotFoundError.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.Ref)
}

// Unwrap maps the typed error onto the matching sentinel.
func (e *NotFoundError) Unwrap() error {
	switch e.Entity {
	case "board":
		return ErrBoardNotFound
	case "component":
		return ErrComponentNotFound
	default:
		return ErrNotFound
	}
}

// NewBoardNotFound creates a NotFoundError for a board reference.
func NewBoardNotFound(ref string) *NotFoundError {
	return &NotFoundError{Entity: "board", Ref: ref}
}

// NewComponentNotFound creates a NotFoundError for a component reference.
func NewComponentNotFound(ref string) *NotFoundError {
	return &NotFoundError{Entity: "component", Ref: ref}
}
