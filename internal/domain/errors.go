package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Resource errors
	ErrMsgResourceMissing = "resource missing"

	// Store errors
	ErrMsgStoreFailure   = "store operation failed"
	ErrMsgRecordNotFound = "record not found"

	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Catalog errors
	ErrMsgUnknownEquipment = "unknown equipment"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrResourceMissing means a backing file or table is absent
	ErrResourceMissing = errors.New(ErrMsgResourceMissing)

	// ErrStoreFailure wraps any read or write error from the database
	ErrStoreFailure = errors.New(ErrMsgStoreFailure)

	// ErrRecordNotFound is returned when an update targets a missing id
	ErrRecordNotFound = errors.New(ErrMsgRecordNotFound)

	// ErrInvalidInput is returned by presence checks
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// ErrUnknownEquipment is returned when a build slot names an item the catalog does not have
	ErrUnknownEquipment = errors.New(ErrMsgUnknownEquipment)
)
