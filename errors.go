package goggles

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies pipeline errors by their place in the request lifecycle.
type Kind string

const (
	// KindInvalidMediaType indicates the declared content type is not an
	// accepted image type. Always detected before storage or provider calls.
	KindInvalidMediaType Kind = "invalid_media_type"

	// KindNotFound indicates an identifier resolved to no stored image.
	KindNotFound Kind = "not_found"

	// KindStorageWrite indicates local persistence failed. Never retried.
	KindStorageWrite Kind = "storage_write"

	// KindGeneration indicates the external provider call failed or returned
	// an unusable response.
	KindGeneration Kind = "generation"
)

// Error is a classified pipeline error with an HTTP status code for the
// boundary layer.
type Error struct {
	Msg   string
	Kind  Kind
	Code  int   // HTTP status code
	Cause error // underlying error, nil for pure validation failures
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Cause)
	}
	return e.Msg
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// StatusCode returns the HTTP status code for this error.
func (e *Error) StatusCode() int {
	return e.Code
}

// NewInvalidMediaTypeError creates the rejection for an unsupported declared
// content type.
func NewInvalidMediaTypeError(contentType string) *Error {
	return &Error{
		Msg:  fmt.Sprintf("invalid file type %q: only JPEG, PNG, and WebP are allowed", contentType),
		Kind: KindInvalidMediaType,
		Code: http.StatusBadRequest,
	}
}

// NewNotFoundError creates the error for an identifier with no stored image.
func NewNotFoundError(id string) *Error {
	return &Error{
		Msg:  fmt.Sprintf("image %q not found", id),
		Kind: KindNotFound,
		Code: http.StatusNotFound,
	}
}

// NewStorageWriteError creates the error for a failed local write.
func NewStorageWriteError(msg string, cause error) *Error {
	return &Error{
		Msg:   msg,
		Kind:  KindStorageWrite,
		Code:  http.StatusInternalServerError,
		Cause: cause,
	}
}

// NewGenerationError creates the error for a failed provider call.
func NewGenerationError(msg string, cause error) *Error {
	return &Error{
		Msg:   msg,
		Kind:  KindGeneration,
		Code:  http.StatusInternalServerError,
		Cause: cause,
	}
}

// IsInvalidMediaType returns true if the error is a media type rejection.
func IsInvalidMediaType(err error) bool {
	return kindOf(err) == KindInvalidMediaType
}

// IsNotFound returns true if the error is a failed identifier resolution.
func IsNotFound(err error) bool {
	return kindOf(err) == KindNotFound
}

// IsStorageWrite returns true if the error is a local persistence failure.
func IsStorageWrite(err error) bool {
	return kindOf(err) == KindStorageWrite
}

// IsGeneration returns true if the error is a provider failure.
func IsGeneration(err error) bool {
	return kindOf(err) == KindGeneration
}

// StatusCodeOf returns the HTTP status code from a classified error, or 0
// when the error carries no classification.
func StatusCodeOf(err error) int {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.StatusCode()
	}
	return 0
}

func kindOf(err error) Kind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}
