package identity

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"hpzbot/internal/pkg/errs"
	"hpzbot/internal/pkg/logx"
	"hpzbot/internal/pkg/resp"
)

// contextKey prevents key collisions with other packages.
type contextKey string

const (
	// ContextIdentityKey is the key used to store the verified Identity in
	// the request Context.
	ContextIdentityKey contextKey = "auth_identity"
)

// RequireAuth returns a middleware that verifies the bearer token on every
// request and rejects unauthenticated callers with HTTP 401. The verified
// Identity is injected into the request Context.
func RequireAuth(verifier Verifier) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				resp.RespondError(w, r, errs.NewError(errs.ErrNoToken))
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")

			id, err := verifier.Verify(r.Context(), token)
			if err != nil {
				if errors.Is(err, ErrTokenInvalid) {
					resp.RespondError(w, r, errs.NewError(errs.ErrInvalidToken))
					return
				}

				logx.Error(err, "identity verification failed")
				resp.RespondError(w, r, errs.NewError(errs.ErrAuthFailed))
				return
			}

			logx.Info("Authenticated user", "email", id.Email, "user_id", id.ID.String())

			ctx := context.WithValue(r.Context(), ContextIdentityKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// FromContext safely extracts the authenticated Identity from the request
// Context. A nil return means the request is unauthenticated.
func FromContext(r *http.Request) *Identity {
	id, ok := r.Context().Value(ContextIdentityKey).(*Identity)
	if !ok {
		return nil
	}
	return id
}
