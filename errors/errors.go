package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/johnquangdev/transcript-archive/internal/domain/entities"
)

// AppError is the error type returned to API clients
type AppError struct {
	Raw       error
	HTTPCode  int
	Code      ErrorCode
	Message   string
	Details   map[string]string
	Timestamp time.Time
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the underlying error to errors.Is and errors.As
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// General Errors
func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  message,
	}
}

func ErrNotFound(resource string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_NOT_FOUND,
		Message:  fmt.Sprintf("%s not found", resource),
	}
}

func ErrInvalidPayload() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_PAYLOAD,
		Message:  "Invalid payload",
	}
}

// Registry Errors
func ErrFileNotFound(fileID int64) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_FILE_NOT_FOUND,
		Message:  "File not found",
	}.WithDetail("file_id", strconv.FormatInt(fileID, 10))
}

func ErrTranscriptNotFound(transcriptID int64) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_TRANSCRIPT_NOT_FOUND,
		Message:  "Transcript not found",
	}.WithDetail("transcript_id", strconv.FormatInt(transcriptID, 10))
}

func ErrConfidenceNotFound(transcriptID int64) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_CONFIDENCE_NOT_FOUND,
		Message:  "Transcript has no confidence payload",
	}.WithDetail("transcript_id", strconv.FormatInt(transcriptID, 10))
}

func ErrInvalidConfidence(reason string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_CONFIDENCE,
		Message:  "Invalid confidence payload",
	}.WithDetail("reason", reason)
}

// Database Errors
func ErrDBIntegrityViolation(op string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusConflict,
		Code:     ErrorCode_DB_INTEGRITY_VIOLATION,
		Message:  "Concurrent modification, retry the request",
	}.WithDetail("operation", op)
}

func ErrDBQueryFailed(query string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_DB_QUERY_FAILED,
		Message:  "Database query failed",
	}.WithDetail("query", query)
}

// FromDomain maps domain errors onto AppError. AppErrors pass through unchanged
// and anything unrecognised becomes an internal error.
func FromDomain(err error) AppError {
	var appErr AppError
	if stdErrors.As(err, &appErr) {
		return appErr
	}

	var validationErr *entities.ValidationError
	if stdErrors.As(err, &validationErr) {
		if validationErr.Field == "wer" {
			e := ErrInvalidConfidence(validationErr.Reason)
			e.Raw = err
			return e
		}
		e := ErrInvalidArgument(validationErr.Error())
		e.Raw = err
		if validationErr.Field != "" {
			e = e.WithDetail("field", validationErr.Field)
		}
		return e
	}

	var notFoundErr *entities.NotFoundError
	if stdErrors.As(err, &notFoundErr) {
		var e AppError
		switch notFoundErr.Entity {
		case entities.EntityFile:
			e = ErrFileNotFound(notFoundErr.ID)
		case entities.EntityTranscript:
			e = ErrTranscriptNotFound(notFoundErr.ID)
		case entities.EntityConfidence:
			e = ErrConfidenceNotFound(notFoundErr.ID)
		default:
			e = ErrNotFound(notFoundErr.Entity)
		}
		e.Raw = err
		return e
	}

	var integrityErr *entities.IntegrityError
	if stdErrors.As(err, &integrityErr) {
		return ErrDBIntegrityViolation(integrityErr.Op, err)
	}

	var storeErr *entities.StoreError
	if stdErrors.As(err, &storeErr) {
		return ErrDBQueryFailed(storeErr.Op, err)
	}

	return ErrInternal(err)
}
