/*
Package errs provides custom error types and application-level error code constants.

This file defines the CustomError struct, which implements the standard Go error
interface and carries a business code, the client-facing error label and message,
and the HTTP status code used for unified error reporting.
*/
package errs

import (
	"fmt"
	"net/http"
	"strings"

	"hpzbot/internal/pkg/logx"
)

// CustomError is the custom error structure used throughout the application.
// Label and Message map onto the `{error, message}` JSON body the frontend
// consumes; Code identifies the failure internally.
type CustomError struct {
	// Code is the business error code (see constants definition).
	Code int

	// Label is the short error category exposed as the `error` field.
	Label string

	// Message is the user-friendly error description.
	Message string

	// Status is the HTTP status code corresponding to this error.
	Status int
}

// Error implements the standard Go error interface.
func (e CustomError) Error() string {
	return fmt.Sprintf("Error Code %d (HTTP %d): %s: %s", e.Code, e.Status, e.Label, e.Message)
}

// NewError constructs a new *CustomError from a predefined error code.
// The optional details are printf-style arguments applied to the message
// template when it contains formatting placeholders. An unknown code falls
// back to ErrUnknown.
func NewError(code int, details ...any) *CustomError {
	templateErr, ok := errorMap[code]

	if !ok {
		logx.Error(
			fmt.Errorf("attempted to create an error with an unknown code in errorMap"),
			"Unknown error code requested",
			"requested_code", code,
		)

		unknownErr := errorMap[ErrUnknown]
		return &CustomError{
			Code:    unknownErr.Code,
			Label:   unknownErr.Label,
			Message: unknownErr.Message,
			Status:  unknownErr.Status,
		}
	}

	customErr := templateErr

	if customErr.Status == 0 {
		customErr.Status = http.StatusBadRequest
	}

	if code == ErrUnknown && len(details) > 0 {
		if originalErr, ok := details[0].(error); ok {
			logx.Error(
				originalErr,
				"Handling ErrUnknown with underlying error",
			)
		}
	} else if len(details) > 0 {
		if strings.Contains(customErr.Message, "%") {
			customErr.Message = fmt.Sprintf(customErr.Message, details...)
		} else {
			logx.Warn(
				"Details provided for error, but message template has no formatting placeholders. Details ignored.",
			)
		}
	}

	return &customErr
}
