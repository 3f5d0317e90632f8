package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is.
var (
	ErrObjectNotFound     = errors.New("object not found")
	ErrValueIsRequired    = errors.New("value is required")
	ErrValueIsInvalid     = errors.New("value is invalid")
	ErrValueIsOutOfRange  = errors.New("value is out of range")
	ErrConflict           = errors.New("conflict")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrExternalService    = errors.New("external service failure")
	ErrCompensationFailed = errors.New("compensation failed")
)

// sanitize removes newlines from values before they are embedded in error
// messages, keeping log lines single-line.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}

// ObjectNotFoundError indicates that an entity could not be located by its identifier.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the given parameter and identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsRequiredError indicates that a mandatory value was missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the given parameter.
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

// ValueIsInvalidError indicates that a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the given parameter.
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

// ValueIsOutOfRangeError indicates that a numeric value fell outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError with the offending value and bounds.
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
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v (cause: %s)",
			ErrValueIsOutOfRange, e.Value, e.ParamName, e.Min, e.Max, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsOutOfRange, e.Value, e.ParamName, e.Min, e.Max))
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ConflictError indicates an illegal state transition or a lost race for a
// resource, such as a drone already claimed by another dispatch.
type ConflictError struct {
	ParamName string
	Cause     error
}

// NewConflictError creates a ConflictError describing the conflicting operation.
func NewConflictError(paramName string) *ConflictError {
	return &ConflictError{ParamName: paramName}
}

// NewConflictErrorWithCause creates a ConflictError wrapping an underlying cause.
func NewConflictErrorWithCause(paramName string, cause error) *ConflictError {
	return &ConflictError{ParamName: paramName, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrConflict, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrConflict, e.ParamName))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// InsufficientStockError indicates that a product's available stock does not
// cover the requested quantity.
type InsufficientStockError struct {
	ProductID string
	Requested int
	Available int
}

// NewInsufficientStockError creates an InsufficientStockError for the given product.
func NewInsufficientStockError(productID string, requested, available int) *InsufficientStockError {
	return &InsufficientStockError{ProductID: productID, Requested: requested, Available: available}
}

func (e *InsufficientStockError) Error() string {
	return sanitize(fmt.Sprintf("%s: product %s, requested %d, available %d",
		ErrInsufficientStock, e.ProductID, e.Requested, e.Available))
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// ExternalServiceError indicates that a synchronous collaborator call failed
// and no fallback value applied.
type ExternalServiceError struct {
	ServiceName string
	Cause       error
}

// NewExternalServiceError creates an ExternalServiceError for the given collaborator.
func NewExternalServiceError(serviceName string, cause error) *ExternalServiceError {
	return &ExternalServiceError{ServiceName: serviceName, Cause: cause}
}

func (e *ExternalServiceError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrExternalService, e.ServiceName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrExternalService, e.ServiceName))
}

func (e *ExternalServiceError) Unwrap() error {
	return ErrExternalService
}

// CompensationFailedError indicates that a compensating action (such as a
// stock restore) could not be applied. It is logged for manual
// reconciliation and never retried automatically.
type CompensationFailedError struct {
	Action string
	Cause  error
}

// NewCompensationFailedError creates a CompensationFailedError for the given action.
func NewCompensationFailedError(action string, cause error) *CompensationFailedError {
	return &CompensationFailedError{Action: action, Cause: cause}
}

func (e *CompensationFailedError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrCompensationFailed, e.Action, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrCompensationFailed, e.Action))
}

func (e *CompensationFailedError) Unwrap() error {
	return ErrCompensationFailed
}
