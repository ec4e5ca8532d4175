package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is. Each struct error type
// below unwraps to exactly one of these.
var (
	// ErrObjectNotFound indicates that a referenced object does not exist.
	ErrObjectNotFound = errors.New("object not found")

	// ErrValueIsInvalid indicates that a supplied value failed validation.
	ErrValueIsInvalid = errors.New("value is invalid")

	// ErrValueIsOutOfRange indicates that a value lies outside its allowed bounds.
	ErrValueIsOutOfRange = errors.New("value is out of range")

	// ErrValueIsRequired indicates that a required value is missing.
	ErrValueIsRequired = errors.New("value is required")

	// ErrVersionIsInvalid indicates that an aggregate version check failed.
	ErrVersionIsInvalid = errors.New("version is invalid")

	// ErrObjectAlreadyAttached indicates a conflict: the object is already
	// attached elsewhere (e.g. a parcel already inside another containment unit,
	// or a duplicate delivery assignment).
	ErrObjectAlreadyAttached = errors.New("object is already attached")

	// ErrInvalidState indicates that an object exists but its current status
	// does not permit the requested operation.
	ErrInvalidState = errors.New("invalid state for operation")

	// ErrSequenceExhausted indicates that the sequence generator could not
	// produce a unique block within its bounded retry budget.
	ErrSequenceExhausted = errors.New("sequence generator exhausted")
)

// sanitize strips newlines from error messages so a single log line is never
// split by attacker-controlled input.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}

// ObjectNotFoundError is returned when an object referenced by ID cannot be found.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without an underlying cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
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

// ValueIsInvalidError is returned when a value fails a validation rule.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without an underlying cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
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

// ValueIsOutOfRangeError is returned when a value lies outside [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without an underlying cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return sanitize(msg)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError is returned when a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without an underlying cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
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

// VersionIsInvalidError is returned when an optimistic concurrency version check fails.
type VersionIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewVersionIsInvalidError creates a VersionIsInvalidError wrapping an underlying cause.
func NewVersionIsInvalidError(paramName string, cause error) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName, Cause: cause}
}

// NewVersionIsInvalidErrorWithCause creates a VersionIsInvalidError without an underlying cause.
func NewVersionIsInvalidErrorWithCause(paramName string) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName}
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

// ObjectAlreadyAttachedError is returned when an object is already attached
// to another owner and the requested attachment would conflict with it.
type ObjectAlreadyAttachedError struct {
	ParamName string
	ID        any
	AttachedTo string
	Cause     error
}

// NewObjectAlreadyAttachedError creates an ObjectAlreadyAttachedError without an underlying cause.
func NewObjectAlreadyAttachedError(paramName string, id any, attachedTo string) *ObjectAlreadyAttachedError {
	return &ObjectAlreadyAttachedError{ParamName: paramName, ID: id, AttachedTo: attachedTo}
}

// NewObjectAlreadyAttachedErrorWithCause creates an ObjectAlreadyAttachedError wrapping an underlying cause.
func NewObjectAlreadyAttachedErrorWithCause(
	paramName string, id any, attachedTo string, cause error,
) *ObjectAlreadyAttachedError {
	return &ObjectAlreadyAttachedError{ParamName: paramName, ID: id, AttachedTo: attachedTo, Cause: cause}
}

func (e *ObjectAlreadyAttachedError) Error() string {
	msg := fmt.Sprintf("%s: %s %s is attached to %s", ErrObjectAlreadyAttached, e.ParamName, e.ID, e.AttachedTo)
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return sanitize(msg)
}

func (e *ObjectAlreadyAttachedError) Unwrap() error {
	return ErrObjectAlreadyAttached
}

// InvalidStateError is returned when an object's current status forbids the
// requested operation. It carries enough context to render a precise message:
// which object, which status it is in, and what was attempted.
type InvalidStateError struct {
	ParamName string
	Current   string
	Operation string
	Cause     error
}

// NewInvalidStateError creates an InvalidStateError without an underlying cause.
func NewInvalidStateError(paramName, current, operation string) *InvalidStateError {
	return &InvalidStateError{ParamName: paramName, Current: current, Operation: operation}
}

// NewInvalidStateErrorWithCause creates an InvalidStateError wrapping an underlying cause.
func NewInvalidStateErrorWithCause(paramName, current, operation string, cause error) *InvalidStateError {
	return &InvalidStateError{ParamName: paramName, Current: current, Operation: operation, Cause: cause}
}

func (e *InvalidStateError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, cannot %s", ErrInvalidState, e.ParamName, e.Current, e.Operation)
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return sanitize(msg)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// SequenceExhaustedError is returned when the fallback sequence issuer gave up
// after its bounded attempt budget.
type SequenceExhaustedError struct {
	ParamName string
	Attempts  int
	Cause     error
}

// NewSequenceExhaustedError creates a SequenceExhaustedError without an underlying cause.
func NewSequenceExhaustedError(paramName string, attempts int) *SequenceExhaustedError {
	return &SequenceExhaustedError{ParamName: paramName, Attempts: attempts}
}

// NewSequenceExhaustedErrorWithCause creates a SequenceExhaustedError wrapping an underlying cause.
func NewSequenceExhaustedErrorWithCause(paramName string, attempts int, cause error) *SequenceExhaustedError {
	return &SequenceExhaustedError{ParamName: paramName, Attempts: attempts, Cause: cause}
}

func (e *SequenceExhaustedError) Error() string {
	msg := fmt.Sprintf("%s: %s after %d attempts", ErrSequenceExhausted, e.ParamName, e.Attempts)
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return sanitize(msg)
}

func (e *SequenceExhaustedError) Unwrap() error {
	return ErrSequenceExhausted
}
