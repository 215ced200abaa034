package errors

import (
	"fmt"
	"reflect"
)

type Error interface {
	error
	New(args ...any) BaseError
	IsEqual(err error) bool
}

type BaseError struct {
	Code    int    `json:"code"`
	Name    string `json:"name"`
	Message string `json:"message"`

	messageFormat string
}

func (e BaseError) Error() string {
	return e.Message
}

// New renders the message template with args. The receiver is a template and is not modified.
func (e BaseError) New(args ...any) BaseError {

	e.Message = e.messageFormat
	if len(args) > 0 {
		e.Message = fmt.Sprintf(e.messageFormat, args...)
	}

	return e
}

// IsEqual reports whether err carries the same error code as e.
func (e BaseError) IsEqual(err error) bool {

	asserted, ok := TryAssertError(err)
	if !ok {
		return false
	}

	return asserted.Code == e.Code
}

// Is lets the standard errors.Is match wrapped BaseError values by code.
func (e BaseError) Is(target error) bool {

	asserted, ok := target.(BaseError)
	if !ok {
		return false
	}

	return asserted.Code == e.Code
}

func (e BaseError) IsNil() bool {
	return reflect.ValueOf(e).IsZero()
}

func TryAssertError(err error) (BaseError, bool) {

	switch asserted := err.(type) {
	case BaseError:
		return asserted, true
	case *BaseError:
		if asserted == nil {
			return BaseError{}, false
		}
		return *asserted, true
	}

	if unwrapper, ok := err.(interface{ Unwrap() error }); ok && err != nil {
		return TryAssertError(unwrapper.Unwrap())
	}

	return BaseError{}, false
}

func IsError(err error, expectedError BaseError) bool {

	asserted, ok := TryAssertError(err)
	if !ok {
		return false
	}

	return asserted.Code == expectedError.Code && asserted.Message == expectedError.Message
}

func new(errorCode int, name string, messageFormat string) Error {

	return BaseError{Code: errorCode, Name: name, messageFormat: messageFormat}
}
