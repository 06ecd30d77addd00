package errors

// HTTPError carries an HTTP status code and a user-facing message.
// Delivery layers map domain errors to HTTPError values before responding.
type HTTPError struct {
	StatusCode int
	Code       int
	Message    string
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTPError. The error code defaults to the status code.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Code:       statusCode,
		Message:    message,
	}
}
