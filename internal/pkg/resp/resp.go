/*
Package resp provides helper functions for constructing and sending HTTP JSON responses.

Success payloads are endpoint-specific maps; errors use the `{error, message}`
envelope, optionally extended with extra fields (e.g. availableCommands).
*/
package resp

import (
	"encoding/json"
	"net/http"

	"hpzbot/internal/pkg/errs"
	"hpzbot/internal/pkg/logx"
)

// ErrorResponse is the standardized JSON error envelope.
type ErrorResponse struct {
	// Error is the short error category (e.g. "Bad Request").
	Error string `json:"error"`

	// Message is the client-friendly error description.
	Message string `json:"message"`
}

// RespondJSON sets the Content-Type and sends the JSON payload.
func RespondJSON(w http.ResponseWriter, r *http.Request, httpStatus int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")

	response, err := json.Marshal(payload)
	if err != nil {
		logx.Error(
			err,
			"Error encoding JSON response",
			"http_status", httpStatus,
		)

		http.Error(w, "Error encoding JSON response", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(httpStatus)
	w.Write(response)
}

// RespondError sends the `{error, message}` envelope for a custom error.
func RespondError(w http.ResponseWriter, r *http.Request, customErr *errs.CustomError) {
	if customErr == nil {
		customErr = errs.NewError(errs.ErrUnknown)
	}

	res := ErrorResponse{
		Error:   customErr.Label,
		Message: customErr.Message,
	}
	RespondJSON(w, r, customErr.Status, res)
}

// RespondErrorExtra sends an error envelope extended with additional fields,
// such as the availableCommands list on an unknown command.
func RespondErrorExtra(w http.ResponseWriter, r *http.Request, customErr *errs.CustomError, extra map[string]any) {
	if customErr == nil {
		customErr = errs.NewError(errs.ErrUnknown)
	}

	body := map[string]any{
		"error":   customErr.Label,
		"message": customErr.Message,
	}
	for k, v := range extra {
		body[k] = v
	}

	RespondJSON(w, r, customErr.Status, body)
}
