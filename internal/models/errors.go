package models

import (
	"errors"
	"fmt"
)

// ValidationError is returned when a field value violates a domain rule.
// No mutation happens when one is returned.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return e.Message
}

// Is allows error kind checking with errors.Is().
func (e *ValidationError) Is(target error) bool {
	_, ok := target.(*ValidationError)
	return ok
}

// NotFoundError is returned when a referenced entity id does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface for NotFoundError.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

// Is allows error kind checking with errors.Is().
func (e *NotFoundError) Is(target error) bool {
	_, ok := target.(*NotFoundError)
	return ok
}

// ConflictError is returned on uniqueness or business-rule duplication,
// e.g. a duplicate category slug or a product already on the wishlist.
type ConflictError struct {
	Resource string
	Message  string
}

// Error implements the error interface for ConflictError.
func (e *ConflictError) Error() string {
	return e.Message
}

// Is allows error kind checking with errors.Is().
func (e *ConflictError) Is(target error) bool {
	_, ok := target.(*ConflictError)
	return ok
}

// StorageError wraps an underlying store failure. The transaction it came
// from has already been rolled back; the cause is kept for logging only.
type StorageError struct {
	Op  string
	Err error
}

// Error implements the error interface for StorageError.
func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

// Unwrap exposes the underlying cause to errors.Is/errors.As.
func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is allows error kind checking with errors.Is().
func (e *StorageError) Is(target error) bool {
	_, ok := target.(*StorageError)
	return ok
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(resource, id string) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// NewConflictError creates a new ConflictError.
func NewConflictError(resource, message string) error {
	return &ConflictError{Resource: resource, Message: message}
}

// NewStorageError creates a new StorageError wrapping cause.
func NewStorageError(op string, cause error) error {
	return &StorageError{Op: op, Err: cause}
}

// IsValidationError checks if an error is a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFoundError checks if an error is a NotFoundError.
func IsNotFoundError(err error) bool {
	var nfe *NotFoundError
	return errors.As(err, &nfe)
}

// IsConflictError checks if an error is a ConflictError.
func IsConflictError(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

// IsStorageError checks if an error is a StorageError.
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
