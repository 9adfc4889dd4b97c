// Package apperrors holds the typed failures returned by the coordination core.
// They stay structured until the HTTP boundary, where HTTPStatus and Message
// turn them into a response.
package apperrors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// ValidationError reports bad caller input
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NotFoundError reports a missing entity
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// IllegalTransitionError reports a status change the lifecycle does not allow
type IllegalTransitionError struct {
	Entity string
	ID     string
	From   string
	To     string
	Reason string
}

func (e *IllegalTransitionError) Error() string {
	msg := fmt.Sprintf("illegal %s transition %s -> %s", e.Entity, e.From, e.To)
	if e.ID != "" {
		msg = fmt.Sprintf("illegal %s %s transition %s -> %s", e.Entity, e.ID, e.From, e.To)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// ConflictError reports that another writer got there first
type ConflictError struct {
	Entity string
	ID     string
	Reason string
}

func (e *ConflictError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("conflicting update on %s %s", e.Entity, e.ID)
	}
	return fmt.Sprintf("conflicting update on %s %s: %s", e.Entity, e.ID, e.Reason)
}

// TransientError wraps store timeouts and connection failures. Callers may retry.
type TransientError struct {
	Op  string
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("%s: temporarily unavailable: %v", e.Op, e.Err)
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// ForbiddenError reports a missing capability, such as a non-coordinator proposing a match
type ForbiddenError struct {
	Action string
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("%s requires coordinator access", e.Action)
}

// Constructors

func Validation(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func NotFound(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

func Conflict(entity, id, reason string) error {
	return &ConflictError{Entity: entity, ID: id, Reason: reason}
}

func Forbidden(action string) error {
	return &ForbiddenError{Action: action}
}

// Transient wraps err unless it is nil or already typed
func Transient(op string, err error) error {
	if err == nil {
		return nil
	}
	if IsTyped(err) {
		return err
	}
	return &TransientError{Op: op, Err: err}
}

// Predicates

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsIllegalTransition(err error) bool {
	var target *IllegalTransitionError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target *ConflictError
	return errors.As(err, &target)
}

func IsTransient(err error) bool {
	var target *TransientError
	return errors.As(err, &target)
}

func IsForbidden(err error) bool {
	var target *ForbiddenError
	return errors.As(err, &target)
}

// IsTyped reports whether err already carries one of the package's types
func IsTyped(err error) bool {
	return IsValidation(err) || IsNotFound(err) || IsIllegalTransition(err) ||
		IsConflict(err) || IsTransient(err) || IsForbidden(err)
}

// IsTimeout reports context deadline or cancellation, which the store maps to TransientError
func IsTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

// HTTPStatus maps an error to the response code used at the handler boundary
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case IsValidation(err):
		return http.StatusBadRequest
	case IsForbidden(err):
		return http.StatusForbidden
	case IsNotFound(err):
		return http.StatusNotFound
	case IsIllegalTransition(err), IsConflict(err):
		return http.StatusConflict
	case IsTransient(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Message renders a human-readable message; untyped errors are not leaked to clients
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case IsTransient(err):
		return "Service temporarily unavailable, please retry"
	case IsConflict(err):
		var c *ConflictError
		errors.As(err, &c)
		return "Another coordinator changed this record, reload and try again: " + c.Error()
	case IsTyped(err):
		return err.Error()
	default:
		return "Internal server error"
	}
}

// FieldOf returns the offending field for validation errors
func FieldOf(err error) string {
	var v *ValidationError
	if errors.As(err, &v) {
		return v.Field
	}
	return ""
}
