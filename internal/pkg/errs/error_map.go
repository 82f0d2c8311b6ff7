/*
Package errs provides custom error types and application-level error code constants.

This file defines the map from error codes to the CustomError struct, used to
standardize HTTP responses and internal error handling.
*/
package errs

import "net/http"

// errorMap stores the detailed CustomError for every application error code.
// Labels and messages match the envelope the chat frontend already consumes.
var errorMap = map[int]CustomError{
	// 1xxx: General Request Handling Errors
	ErrInvalidParams:        {Code: ErrInvalidParams, Label: "Bad Request", Message: "Invalid request parameters."},
	ErrUnsupportedMediaType: {Code: ErrUnsupportedMediaType, Label: "Bad Request", Message: "Unsupported request format."},
	ErrInvalidJSONFormat:    {Code: ErrInvalidJSONFormat, Label: "Bad Request", Message: "Unsupported request format."},
	ErrExtraContentInBody:   {Code: ErrExtraContentInBody, Label: "Bad Request", Message: "Request contains unexpected data."},
	ErrMessageRequired:      {Code: ErrMessageRequired, Label: "Bad Request", Message: "Message is required and must be a string"},
	ErrCommandRequired:      {Code: ErrCommandRequired, Label: "Bad Request", Message: "Command is required"},
	ErrRateLimitExceeded:    {Code: ErrRateLimitExceeded, Label: "Too many requests", Message: "Rate limit exceeded. Try again in %d seconds.", Status: http.StatusTooManyRequests},

	// 2xxx: Chatbot Business Logic Errors
	ErrUnknownCommand: {Code: ErrUnknownCommand, Label: "Bad Request", Message: "Invalid command"},

	// 3xxx: Authentication Errors
	ErrNoToken:      {Code: ErrNoToken, Label: "Unauthorized", Message: "No authorization token provided.", Status: http.StatusUnauthorized},
	ErrInvalidToken: {Code: ErrInvalidToken, Label: "Unauthorized", Message: "Invalid or expired token.", Status: http.StatusUnauthorized},
	ErrAuthFailed:   {Code: ErrAuthFailed, Label: "Authentication Error", Message: "Failed to authenticate user.", Status: http.StatusInternalServerError},

	// 4xxx: Routing Errors
	ErrRouteNotFound: {Code: ErrRouteNotFound, Label: "Not Found", Message: "Route %s not found.", Status: http.StatusNotFound},

	// 5xxx: Internal System Errors
	ErrUnknown: {Code: ErrUnknown, Label: "Internal Server Error", Message: "An unexpected error occurred.", Status: http.StatusInternalServerError},
}
