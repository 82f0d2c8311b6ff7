/*
Package handler provides HTTP handler functions for authentication echoes
and provider credential checks.
*/
package handler

import (
	"net/http"

	"hpzbot/internal/app/identity"
	"hpzbot/internal/pkg/errs"
	"hpzbot/internal/pkg/resp"
)

// HandleValidateToken echoes the verified identity back to the caller,
// confirming the bearer token is valid.
func HandleValidateToken(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := identity.FromContext(r)
		if id == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrNoToken))
			return
		}

		resp.RespondJSON(w, r, http.StatusOK, map[string]any{
			"success": true,
			"user": map[string]any{
				"id":            id.ID.String(),
				"email":         id.Email,
				"user_metadata": id.UserMetadata,
			},
			"message": "Authentication successful",
		})
	}
}

// HandleMe returns the full verified identity, including provider-managed
// metadata and the account creation timestamp.
func HandleMe(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := identity.FromContext(r)
		if id == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrNoToken))
			return
		}

		resp.RespondJSON(w, r, http.StatusOK, map[string]any{
			"success": true,
			"user": map[string]any{
				"id":            id.ID.String(),
				"email":         id.Email,
				"user_metadata": id.UserMetadata,
				"app_metadata":  id.AppMetadata,
				"created_at":    id.CreatedAt,
			},
		})
	}
}

// HandleValidateKey checks the completion provider credential. Left
// unauthenticated so deploy tooling can probe it.
func HandleValidateKey(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		isValid := deps.AI.ValidateKey(r.Context())

		message := "Invalid OpenRouter API key"
		if isValid {
			message = "OpenRouter API key is valid"
		}

		resp.RespondJSON(w, r, http.StatusOK, map[string]any{
			"success": isValid,
			"message": message,
		})
	}
}
