package errors

import "net/http"

// HTTPError is an error that carries the status code and message shown to API callers.
type HTTPError struct {
	Code       int    `json:"error_code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
}

// NewHTTPError creates an HTTPError. Codes outside the HTTP status range are
// reported as 400 Bad Request with the code kept as error_code.
func NewHTTPError(code int, message string) *HTTPError {
	status := code
	if status < 100 || status > 599 {
		status = http.StatusBadRequest
	}
	return &HTTPError{Code: code, Message: message, StatusCode: status}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// ValidationError is returned when a request body or query fails validation.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// NewValidationError creates a ValidationError for field.
func NewValidationError(field, message string) ValidationError {
	return ValidationError{Field: field, Message: message}
}
