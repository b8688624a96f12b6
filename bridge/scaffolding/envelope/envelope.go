// Package envelope provides the standard {success, message, data} response
// wrapper shared by the JSON routes.
package envelope

import (
	"encoding/json"
	"net/http"
)

// Response wraps a payload with a success flag and an optional message.
type Response[T any] struct {
	Success bool    `json:"success"`
	Message *string `json:"message"`
	Data    T       `json:"data"`

	status int
}

// Success wraps data with no message.
func Success[T any](data T) Response[T] {
	return Response[T]{Success: true, Data: data}
}

// SuccessWithMessage wraps data with a message.
func SuccessWithMessage[T any](message string, data T) Response[T] {
	return Response[T]{Success: true, Message: &message, Data: data}
}

// Created is SuccessWithMessage answered with 201.
func Created[T any](message string, data T) Response[T] {
	r := SuccessWithMessage(message, data)
	r.status = http.StatusCreated
	return r
}

// Message answers with a message and a null data field.
func Message(message string) Response[*struct{}] {
	return SuccessWithMessage[*struct{}](message, nil)
}

// Failure answers with success false, null data and the given status.
func Failure(status int, message string) Response[*struct{}] {
	return Response[*struct{}]{Message: &message, status: status}
}

func (r Response[T]) Encode() ([]byte, string, error) {
	data, err := json.Marshal(r)
	return data, "application/json", err
}

func (r Response[T]) HTTPStatus() int {
	if r.status == 0 {
		return http.StatusOK
	}
	return r.status
}
