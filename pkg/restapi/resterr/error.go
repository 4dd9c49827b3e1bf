/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	SystemError     ErrorCode = "system-error"
	Unauthorized    ErrorCode = "unauthorized"
	BadRequest      ErrorCode = "bad-request"
	InvalidValue    ErrorCode = "invalid-value"
	AlreadyExist    ErrorCode = "already-exist"
	DoesntExist     ErrorCode = "doesnt-exist"
	ConditionNotMet ErrorCode = "condition-not-met"
	Forbidden       ErrorCode = "forbidden"
)

func (c ErrorCode) Name() string {
	return string(c)
}

// CustomError is a coded error carrying enough context to map it onto an HTTP
// response: the code, the component and operation that failed, or the
// incorrect value a validation rejected.
type CustomError struct {
	Code            ErrorCode
	IncorrectValue  string
	Component       Component
	FailedOperation string
	Err             error
}

// NewSystemError creates a SystemError.
func NewSystemError(component Component, failedOperation string, err error) *CustomError {
	return &CustomError{
		Code:            SystemError,
		Component:       component,
		FailedOperation: failedOperation,
		Err:             err,
	}
}

// NewValidationError creates a validation error with the given code.
func NewValidationError(code ErrorCode, incorrectValue string, err error) *CustomError {
	return &CustomError{
		Code:           code,
		IncorrectValue: incorrectValue,
		Err:            err,
	}
}

// NewUnauthorizedError creates an Unauthorized error.
func NewUnauthorizedError(err error) *CustomError {
	return &CustomError{
		Code: Unauthorized,
		Err:  err,
	}
}

// NewCustomError creates an error with only a code attached.
func NewCustomError(code ErrorCode, err error) *CustomError {
	return &CustomError{
		Code: code,
		Err:  err,
	}
}

func (e *CustomError) Error() string {
	if e.Code == SystemError {
		return fmt.Sprintf("%s[%s, %s]: %v", e.Code, e.Component, e.FailedOperation, e.Err)
	}

	if e.IncorrectValue != "" {
		return fmt.Sprintf("%s[%s]: %v", e.Code, e.IncorrectValue, e.Err)
	}

	return fmt.Sprintf("%s: %v", e.Code, e.Err)
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// HTTPCodeMsg maps the error onto an HTTP status code and response body.
func (e *CustomError) HTTPCodeMsg() (int, interface{}) {
	var code int

	switch e.Code {
	case SystemError:
		code = http.StatusInternalServerError
	case Unauthorized:
		code = http.StatusUnauthorized
	case BadRequest, InvalidValue:
		code = http.StatusBadRequest
	case AlreadyExist:
		code = http.StatusConflict
	case DoesntExist:
		code = http.StatusNotFound
	case ConditionNotMet:
		code = http.StatusPreconditionFailed
	case Forbidden:
		code = http.StatusForbidden
	}

	msg := map[string]interface{}{
		"code":    e.Code.Name(),
		"message": e.Err.Error(),
	}

	if e.IncorrectValue != "" {
		msg["incorrectValue"] = e.IncorrectValue
	}

	if e.Component != "" {
		msg["component"] = string(e.Component)
		msg["failedOperation"] = e.FailedOperation
	}

	return code, msg
}

// GetErrorDetails unwraps an error into its message, code and component, for
// logging and event payloads. Non-custom errors yield empty code and
// component.
func GetErrorDetails(err error) (string, string, Component) {
	var customErr *CustomError

	if !errors.As(err, &customErr) {
		return err.Error(), "", ""
	}

	return customErr.Err.Error(), string(customErr.Code), customErr.Component
}
