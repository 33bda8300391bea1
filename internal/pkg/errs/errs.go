package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification via errors.Is. Every typed error in this
// package unwraps to exactly one of these.
var (
	ErrObjectNotFound         = errors.New("object not found")
	ErrValueIsInvalid         = errors.New("value is invalid")
	ErrValueIsOutOfRange      = errors.New("value is out of range")
	ErrValueIsRequired        = errors.New("value is required")
	ErrVersionIsInvalid       = errors.New("version is invalid")
	ErrUnauthorized           = errors.New("unauthorized order access")
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrDuplicateParcel        = errors.New("duplicate parcel")
	ErrConcurrencyConflict    = errors.New("concurrency conflict")
	ErrOutboxWriteFailure     = errors.New("outbox write failure")
)

// sanitize removes line breaks from formatted error messages so that a single
// log line always carries the whole message.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}

// ObjectNotFoundError indicates that an object with the given identifier
// does not exist in the underlying store or external service.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping the
// underlying cause, typically a storage driver error.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value does not satisfy a
// domain rule or format requirement.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping the
// underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a numeric value falls outside its
// allowed interval.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without a cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping
// the underlying cause.
func NewValueIsOutOfRangeErrorWithCause(paramName string, value, minValue, maxValue any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("value is invalid: %v is %s, min value is %v, max value is %v",
		e.Value, e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return sanitize(msg)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a mandatory value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping the
// underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// VersionIsInvalidError indicates that a version value could not be parsed or
// does not satisfy versioning rules.
type VersionIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewVersionIsInvalidError creates a VersionIsInvalidError without a cause.
func NewVersionIsInvalidError(paramName string) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName}
}

// NewVersionIsInvalidErrorWithCause creates a VersionIsInvalidError wrapping
// the underlying cause.
func NewVersionIsInvalidErrorWithCause(paramName string, cause error) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *VersionIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrVersionIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrVersionIsInvalid, e.ParamName))
}

func (e *VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}

// UnauthorizedOrderAccessError indicates that the acting identity is neither
// the order's owning customer nor an administrator. The command is rejected
// before any mutation takes place.
type UnauthorizedOrderAccessError struct {
	OrderID string
	UserID  string
}

// NewUnauthorizedOrderAccessError creates an UnauthorizedOrderAccessError for
// the given order and acting user.
func NewUnauthorizedOrderAccessError(orderID, userID string) *UnauthorizedOrderAccessError {
	return &UnauthorizedOrderAccessError{OrderID: orderID, UserID: userID}
}

func (e *UnauthorizedOrderAccessError) Error() string {
	return sanitize(fmt.Sprintf("%s: order is: %s, user is: %s", ErrUnauthorized, e.OrderID, e.UserID))
}

func (e *UnauthorizedOrderAccessError) Unwrap() error {
	return ErrUnauthorized
}

// InvalidStateTransitionError indicates that the requested operation is not
// allowed for the aggregate's current status. The aggregate is left untouched.
type InvalidStateTransitionError struct {
	Operation string
	Status    string
}

// NewInvalidStateTransitionError creates an InvalidStateTransitionError for
// the given operation and current status name.
func NewInvalidStateTransitionError(operation, status string) *InvalidStateTransitionError {
	return &InvalidStateTransitionError{Operation: operation, Status: status}
}

func (e *InvalidStateTransitionError) Error() string {
	return sanitize(fmt.Sprintf("%s: cannot %s order in %s status", ErrInvalidStateTransition, e.Operation, e.Status))
}

func (e *InvalidStateTransitionError) Unwrap() error {
	return ErrInvalidStateTransition
}

// DuplicateParcelError indicates that a parcel with the same identifier is
// already part of the order.
type DuplicateParcelError struct {
	ParcelID string
}

// NewDuplicateParcelError creates a DuplicateParcelError for the given parcel.
func NewDuplicateParcelError(parcelID string) *DuplicateParcelError {
	return &DuplicateParcelError{ParcelID: parcelID}
}

func (e *DuplicateParcelError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s", ErrDuplicateParcel, e.ParcelID))
}

func (e *DuplicateParcelError) Unwrap() error {
	return ErrDuplicateParcel
}

// ConcurrencyConflictError indicates an optimistic-concurrency version
// mismatch on update. The caller should re-fetch the aggregate and retry.
type ConcurrencyConflictError struct {
	ParamName string
	ID        string
	Version   int
}

// NewConcurrencyConflictError creates a ConcurrencyConflictError for the
// given aggregate and the version the caller expected.
func NewConcurrencyConflictError(paramName, id string, version int) *ConcurrencyConflictError {
	return &ConcurrencyConflictError{ParamName: paramName, ID: id, Version: version}
}

func (e *ConcurrencyConflictError) Error() string {
	return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s, expected version is: %d",
		ErrConcurrencyConflict, e.ParamName, e.ID, e.Version))
}

func (e *ConcurrencyConflictError) Unwrap() error {
	return ErrConcurrencyConflict
}

// OutboxWriteFailureError indicates that persisting outbox messages failed.
// The whole unit of work must be rolled back so the inbound message can be
// redelivered safely.
type OutboxWriteFailureError struct {
	Cause error
}

// NewOutboxWriteFailureError creates an OutboxWriteFailureError wrapping the
// storage error that caused it.
func NewOutboxWriteFailureError(cause error) *OutboxWriteFailureError {
	return &OutboxWriteFailureError{Cause: cause}
}

func (e *OutboxWriteFailureError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s (cause: %s)", ErrOutboxWriteFailure, e.Cause))
	}
	return ErrOutboxWriteFailure.Error()
}

func (e *OutboxWriteFailureError) Unwrap() error {
	return ErrOutboxWriteFailure
}

// IsTerminal reports whether an error is a business-rule rejection that must
// not be retried by redelivering the inbound message. Everything else is
// treated as transient and eligible for redelivery.
func IsTerminal(err error) bool {
	return errors.Is(err, ErrObjectNotFound) ||
		errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, ErrInvalidStateTransition) ||
		errors.Is(err, ErrDuplicateParcel) ||
		errors.Is(err, ErrValueIsInvalid) ||
		errors.Is(err, ErrValueIsOutOfRange) ||
		errors.Is(err, ErrValueIsRequired)
}
