package application

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/invoice-dashboard/pkg/helpers"
	"github.com/oksasatya/invoice-dashboard/pkg/validation"
)

var (
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrInvalidCredentialsShape = errors.New("invalid credentials shape")
	ErrBackendUnavailable      = errors.New("backend unavailable")
	ErrInvoiceNotFound         = errors.New("invoice not found")
	ErrCustomerNotFound        = errors.New("customer not found")
	ErrUserNotFound            = errors.New("user not found")
	ErrValidation              = errors.New("validation failed")
	ErrDataAccess              = errors.New("data access failed")
	ErrStorageNotConfigured    = errors.New("storage not configured")
)

// ValidationError is returned when input fails shape checks. Message is safe to show.
type ValidationError struct {
	Sentinel error
	Message  string
	Fields   validation.FieldErrors
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation || (e.Sentinel != nil && target == e.Sentinel)
}

// DataAccessError hides a store failure behind a caller-safe Message.
// Cause is only for logs.
type DataAccessError struct {
	Sentinel error
	Message  string
	Cause    error
}

func (e *DataAccessError) Error() string { return e.Message }

func (e *DataAccessError) Unwrap() error { return e.Cause }

func (e *DataAccessError) Is(target error) bool {
	return target == ErrDataAccess || (e.Sentinel != nil && target == e.Sentinel)
}

// dataAccess logs cause with fields and returns the downgraded error.
func dataAccess(logger logrus.FieldLogger, sentinel error, msg string, cause error, fields logrus.Fields) error {
	helpers.LogError(logger, msg, cause, fields)
	return &DataAccessError{Sentinel: sentinel, Message: msg, Cause: cause}
}
