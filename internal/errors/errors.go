package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrProductNotFound is returned when a product id does not exist.
	ErrProductNotFound = errors.New("product not found")
	// ErrInvalidCredentials is returned on login failure. The same value is
	// used for unknown email and wrong password so callers cannot tell which
	// case occurred.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrMissingFields is returned when a required product field is absent.
	ErrMissingFields = errors.New("missing required fields")
	// ErrInvalidPrice is returned when the price is not a non-negative number.
	ErrInvalidPrice = errors.New("invalid price")
	// ErrInvalidStock is returned when the stock is not a non-negative integer.
	ErrInvalidStock = errors.New("invalid stock")
	// ErrMissingFile is returned when an upload carries no file.
	ErrMissingFile = errors.New("no file provided")
	// ErrNotAnImage is returned when the uploaded file is not an image.
	ErrNotAnImage = errors.New("file must be an image")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrProductNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "PRODUCT_NOT_FOUND")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrMissingFields):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "MISSING_FIELDS")
	case errors.Is(err, ErrInvalidPrice):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_PRICE")
	case errors.Is(err, ErrInvalidStock):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_STOCK")
	case errors.Is(err, ErrMissingFile):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "MISSING_FILE")
	case errors.Is(err, ErrNotAnImage):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "NOT_AN_IMAGE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
