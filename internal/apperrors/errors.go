package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidParameter indicates a calculation parameter outside its allowed range.
var ErrInvalidParameter = errors.New("invalid parameter")

// ErrInconsistentRecord indicates a stored transaction whose amount sign disagrees with its category.
var ErrInconsistentRecord = errors.New("inconsistent transaction record")

// InvalidParameterError describes which parameter was rejected and why.
// It matches both ErrInvalidParameter and ErrValidation with errors.Is.
type InvalidParameterError struct {
	Field  string
	Reason string
}

// NewInvalidParameter builds an InvalidParameterError.
func NewInvalidParameter(field, reason string) *InvalidParameterError {
	return &InvalidParameterError{Field: field, Reason: reason}
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Field, e.Reason)
}

// Is lets callers match on either the specific or the generic validation sentinel.
func (e *InvalidParameterError) Is(target error) bool {
	return target == ErrInvalidParameter || target == ErrValidation
}

// InconsistentRecordWarning is a non-fatal finding produced while aggregating a ledger.
type InconsistentRecordWarning struct {
	TransactionID string
	Category      string
	Amount        string
}

func (w *InconsistentRecordWarning) Error() string {
	return fmt.Sprintf("transaction %s: amount %s does not match category %s", w.TransactionID, w.Amount, w.Category)
}

func (w *InconsistentRecordWarning) Unwrap() error {
	return ErrInconsistentRecord
}

// AppError wraps a lower level failure with an HTTP-ish status code and a message.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError. err may be nil.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}
