// Package errs provides types and support related to web error functionality.
package errs

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime"
)

// ErrCode represents an error code in the system.
type ErrCode struct {
	value  int
	name   string
	status int
}

// Value returns the integer value of the error code.
func (ec ErrCode) Value() int {
	return ec.value
}

// String returns the string representation of the error code.
func (ec ErrCode) String() string {
	return ec.name
}

// Status returns the HTTP status the code is reported with.
func (ec ErrCode) Status() int {
	return ec.status
}

// The set of error codes the bridge layer reports.
var (
	InvalidArgument = ErrCode{value: 1, name: "invalid_argument", status: http.StatusBadRequest}
	NotFound        = ErrCode{value: 2, name: "not_found", status: http.StatusNotFound}
	Unavailable     = ErrCode{value: 3, name: "unavailable", status: http.StatusServiceUnavailable}
	Internal        = ErrCode{value: 4, name: "internal", status: http.StatusInternalServerError}
	InternalOnlyLog = ErrCode{value: 5, name: "internal_only_log", status: http.StatusInternalServerError}
)

// Error represents an error in the system.
type Error struct {
	Code     ErrCode `json:"-"`
	Message  string  `json:"message"`
	FuncName string  `json:"-"`
	FileName string  `json:"-"`
}

// New constructs an error based on an app error.
func New(code ErrCode, err error) *Error {
	pc, filename, line, _ := runtime.Caller(1)

	msg := ""
	if err != nil {
		msg = err.Error()
	}

	return &Error{
		Code:     code,
		Message:  msg,
		FuncName: runtime.FuncForPC(pc).Name(),
		FileName: fmt.Sprintf("%s:%d", filename, line),
	}
}

// Newf constructs an error based on a error message.
func Newf(code ErrCode, format string, v ...any) *Error {
	pc, filename, line, _ := runtime.Caller(1)

	return &Error{
		Code:     code,
		Message:  fmt.Sprintf(format, v...),
		FuncName: runtime.FuncForPC(pc).Name(),
		FileName: fmt.Sprintf("%s:%d", filename, line),
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// envelope mirrors the success/message/data shape of every JSON response.
type envelope struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Data    *string `json:"data"`
}

// Encode implements the encoder interface.
func (e *Error) Encode() ([]byte, string, error) {
	data, err := json.Marshal(envelope{Message: e.Message})
	return data, "application/json", err
}

// HTTPStatus implements the web package httpStatus interface so the
// web framework can use the correct http status.
func (e *Error) HTTPStatus() int {
	if e.Code.status == 0 {
		return http.StatusInternalServerError
	}
	return e.Code.status
}

// IsError tests the concrete error is of the Error type.
func IsError(err error) bool {
	var er *Error
	return errors.As(err, &er)
}

// GetError returns a copy of the Error pointer.
func GetError(err error) *Error {
	var er *Error
	if !errors.As(err, &er) {
		return nil
	}
	return er
}
