package autoparse

import (
	"strconv"

	"github.com/itsatony/go-cuserr"
)

// NewConfigError creates an error for an invalid engine option value
func NewConfigError(msg string, option string, value int) error {
	return cuserr.NewValidationError(ErrCodeConfig, msg).
		WithMetadata(MetaKeyOption, option).
		WithMetadata(MetaKeyValue, strconv.Itoa(value))
}

// NewSessionClosedError creates an error for operations on a closed store
func NewSessionClosedError() error {
	return cuserr.NewValidationError(ErrCodeSession, ErrMsgSessionClosed)
}

// NewSessionStorageError wraps a storage backend failure
func NewSessionStorageError(msg string, sessionID string, cause error) error {
	var err *cuserr.CustomError
	if cause != nil {
		err = cuserr.WrapStdError(cause, ErrCodeSession, msg)
	} else {
		err = cuserr.NewValidationError(ErrCodeSession, msg)
	}
	return err.WithMetadata(MetaKeySessionID, sessionID)
}

// NewUnknownSessionDriverError creates an error for an unregistered driver name
func NewUnknownSessionDriverError(name string) error {
	return cuserr.NewNotFoundError(MetaKeyDriver, ErrMsgUnknownSessionDriver).
		WithMetadata(MetaKeyDriver, name)
}

// NewDuplicateDriverError creates a driver name collision error
func NewDuplicateDriverError(name string) error {
	return cuserr.NewValidationError(ErrCodeSession, ErrMsgDuplicateDriver).
		WithMetadata(MetaKeyDriver, name)
}

// NewFuncRegistrationError creates an error for invalid function registration
func NewFuncRegistrationError(msg string, funcName string) error {
	return cuserr.NewValidationError(ErrCodeFunc, msg).
		WithMetadata(MetaKeyFuncName, funcName)
}

// NewFuncNotFoundError creates an error for calling an unregistered function
func NewFuncNotFoundError(name string) error {
	return cuserr.NewNotFoundError(MetaKeyFuncName, ErrMsgFuncNotFound).
		WithMetadata(MetaKeyFuncName, name)
}

// NewFuncArgCountError creates an error for an argument count outside the
// registered bounds
func NewFuncArgCountError(msg string, name string, min, max, actual int) error {
	return cuserr.NewValidationError(ErrCodeFunc, msg).
		WithMetadata(MetaKeyFuncName, name).
		WithMetadata(MetaKeyMinArgs, strconv.Itoa(min)).
		WithMetadata(MetaKeyMaxArgs, strconv.Itoa(max)).
		WithMetadata(MetaKeyArgCount, strconv.Itoa(actual))
}

// NewMethodNotFoundError creates an error for calling an unregistered method
// on an ObjectDef handle
func NewMethodNotFoundError(name string) error {
	return cuserr.NewNotFoundError(MetaKeyMethod, ErrMsgMethodNotFound).
		WithMetadata(MetaKeyMethod, name)
}

// NewScopeRequestError wraps a failure while populating a scope from an
// incoming request
func NewScopeRequestError(cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeScope, ErrMsgScopeFormParseFailed)
}
