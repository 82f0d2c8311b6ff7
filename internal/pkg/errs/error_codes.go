/*
Package errs provides custom error types and application-level error code constants.

These error codes identify specific request-handling, command, and auth
failures both internally and in communication with clients.
*/
package errs

// 1xxx: General Request Handling Errors
const (
	// ErrInvalidParams indicates that request parameter validation failed.
	ErrInvalidParams = 1001

	// ErrUnsupportedMediaType indicates that the request header Content-Type is not supported.
	ErrUnsupportedMediaType = 1002

	// ErrInvalidJSONFormat indicates that the request body JSON is malformed.
	ErrInvalidJSONFormat = 1003

	// ErrExtraContentInBody indicates that the request body contained extra content after valid JSON data.
	ErrExtraContentInBody = 1004

	// ErrMessageRequired indicates a chat request without a usable message string.
	ErrMessageRequired = 1005

	// ErrCommandRequired indicates a direct command request without a command field.
	ErrCommandRequired = 1006

	// ErrRateLimitExceeded indicates that the request rate has exceeded the set limit.
	ErrRateLimitExceeded = 1007
)

// 2xxx: Chatbot Business Logic Errors
const (
	// ErrUnknownCommand indicates a command token outside the registered set.
	ErrUnknownCommand = 2001
)

// 3xxx: Authentication Errors
const (
	// ErrNoToken indicates a protected route was hit without a bearer token.
	ErrNoToken = 3001

	// ErrInvalidToken indicates the bearer token failed verification.
	ErrInvalidToken = 3002

	// ErrAuthFailed indicates the identity provider could not be consulted.
	ErrAuthFailed = 3003
)

// 4xxx: Routing Errors
const (
	// ErrRouteNotFound indicates a request for an unregistered route.
	ErrRouteNotFound = 4004
)

// 5xxx: Internal System Errors
const (
	// ErrUnknown represents an unclassified, general server internal error.
	ErrUnknown = 5000
)
