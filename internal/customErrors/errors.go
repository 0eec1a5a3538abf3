package customerrors

import (
	"errors"
	"fmt"
	"net/http"
)

type Error struct {
	Code    int    `json:"-"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

var (
	ErrInvalidCredentials    = &Error{Code: http.StatusUnauthorized, Message: "Invalid credentials"}
	ErrInternalServer        = &Error{Code: http.StatusInternalServerError, Message: "Server error"}
	ErrBadRequest            = &Error{Code: http.StatusBadRequest, Message: "Bad request"}
	ErrUserNotFound          = &Error{Code: http.StatusNotFound, Message: "user not found"}
	ErrUsernameAlreadyExists = &Error{Code: http.StatusConflict, Message: "username already exists"}
	ErrDbUnreachable         = &Error{Code: http.StatusServiceUnavailable, Message: "Database unreachable"}
	ErrDbTimeout             = &Error{Code: http.StatusGatewayTimeout, Message: "Database timeout"}
)

func GetStatus(err error) int {
	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}
	return ErrInternalServer.Code
}

// GetMessage never exposes the text of errors outside the taxonomy.
func GetMessage(err error) string {
	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Message
	}
	return ErrInternalServer.Message
}
