/*
Package identity wraps the external identity provider's token verification.

A bearer token is exchanged for an Identity either by verifying the
provider-signed JWT locally (when the project's JWT secret is configured) or
by calling the provider's user endpoint. The verified Identity lives in the
request context for the duration of the request.
*/
package identity

import (
	"github.com/google/uuid"
)

// Identity is the authenticated caller, derived from a verified bearer token.
// It is created per request and discarded at request end.
type Identity struct {
	// ID is the provider-issued user id.
	ID uuid.UUID `json:"id"`

	// Email is the account email registered with the provider.
	Email string `json:"email"`

	// UserMetadata carries free-form profile data set by the user.
	UserMetadata map[string]any `json:"user_metadata"`

	// AppMetadata carries provider/application-managed claims.
	AppMetadata map[string]any `json:"app_metadata"`

	// CreatedAt is the account creation timestamp as reported by the
	// provider (RFC3339). Empty when the token was verified locally.
	CreatedAt string `json:"created_at"`
}

// DisplayName returns the metadata name if present, else the email.
func (i *Identity) DisplayName() string {
	if name, ok := i.UserMetadata["name"].(string); ok && name != "" {
		return name
	}
	return i.Email
}
