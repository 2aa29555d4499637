package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrEmailTaken is returned when the email fingerprint is already registered.
	ErrEmailTaken = errors.New("email already in use")
	// ErrCPFTaken is returned when the CPF fingerprint is already registered.
	ErrCPFTaken = errors.New("cpf already registered")
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrPatientNotFound is returned when a patient does not exist.
	ErrPatientNotFound = errors.New("patient not found")
	// ErrConsultaNotFound is returned when an appointment does not exist.
	ErrConsultaNotFound = errors.New("appointment not found")
	// ErrTranscricaoNotFound is returned when a transcription does not exist.
	ErrTranscricaoNotFound = errors.New("transcription not found")
	// ErrNotPsicologo is returned when the caller is not a registered professional.
	ErrNotPsicologo = errors.New("user is not a psicologo")
	// ErrMissingOwner is returned when a patient row has no associated user.
	// This is a data integrity fault, not a normal not-found.
	ErrMissingOwner = errors.New("patient has no associated user")
	// ErrPhotoUpload is returned when the image provider rejects an upload.
	ErrPhotoUpload = errors.New("photo upload failed")
	// ErrSuggestionUnavailable is returned when the AI provider cannot be reached.
	ErrSuggestionUnavailable = errors.New("suggestion provider unavailable")
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
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_TAKEN")
	case errors.Is(err, ErrCPFTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "CPF_TAKEN")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrPatientNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "PATIENT_NOT_FOUND")
	case errors.Is(err, ErrConsultaNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "CONSULTA_NOT_FOUND")
	case errors.Is(err, ErrTranscricaoNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "TRANSCRICAO_NOT_FOUND")
	case errors.Is(err, ErrNotPsicologo):
		return NewHTTPError(http.StatusForbidden, err.Error(), "NOT_PSICOLOGO")
	case errors.Is(err, ErrMissingOwner):
		return NewHTTPError(http.StatusInternalServerError, err.Error(), "DATA_INTEGRITY")
	case errors.Is(err, ErrPhotoUpload):
		return NewHTTPError(http.StatusBadGateway, err.Error(), "PHOTO_UPLOAD_FAILED")
	case errors.Is(err, ErrSuggestionUnavailable):
		return NewHTTPError(http.StatusBadGateway, err.Error(), "SUGGESTION_UNAVAILABLE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
