// Package mid provides app level middleware support.
package mid

import (
	"net/http"

	"github.com/jrazmi/todoserver/infrastructure/web"
)

// isError tests if the Encoder has an error inside of it.
func isError(e web.Encoder) error {
	err, isError := e.(error)
	if isError {
		return err
	}
	return nil
}

// statusOf reports the status Respond will write for e.
func statusOf(e web.Encoder) int {
	if s, ok := e.(interface{ HTTPStatus() int }); ok {
		return s.HTTPStatus()
	}
	if isError(e) != nil {
		return http.StatusInternalServerError
	}
	return http.StatusOK
}
