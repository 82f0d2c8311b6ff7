package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "super-secret-signing-key"

func signToken(t *testing.T, claims accessClaims, secret string) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func validClaims(userID uuid.UUID) accessClaims {
	return accessClaims{
		StandardClaims: jwt.StandardClaims{
			Subject:   userID.String(),
			Audience:  "authenticated",
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
		Email:        "rider@hpztv.com",
		UserMetadata: map[string]any{"name": "Budi"},
	}
}

func TestVerifyLocal(t *testing.T) {
	userID := uuid.New()
	v := NewSupabaseVerifier("https://example.supabase.co", "anon", testSecret)

	token := signToken(t, validClaims(userID), testSecret)

	id, err := v.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, userID, id.ID)
	assert.Equal(t, "rider@hpztv.com", id.Email)
	assert.Equal(t, "Budi", id.UserMetadata["name"])
}

func TestVerifyLocalRejectsBadTokens(t *testing.T) {
	userID := uuid.New()
	v := NewSupabaseVerifier("https://example.supabase.co", "anon", testSecret)

	wrongSecret := signToken(t, validClaims(userID), "some-other-secret")

	expired := validClaims(userID)
	expired.ExpiresAt = time.Now().Add(-time.Hour).Unix()

	wrongAudience := validClaims(userID)
	wrongAudience.Audience = "anon"

	badSubject := validClaims(userID)
	badSubject.Subject = "not-a-uuid"

	cases := map[string]string{
		"empty token":    "",
		"garbage":        "not.a.jwt",
		"wrong secret":   wrongSecret,
		"expired":        signToken(t, expired, testSecret),
		"wrong audience": signToken(t, wrongAudience, testSecret),
		"bad subject":    signToken(t, badSubject, testSecret),
	}

	for name, token := range cases {
		_, err := v.Verify(context.Background(), token)
		assert.ErrorIs(t, err, ErrTokenInvalid, name)
	}
}

func TestVerifyRemote(t *testing.T) {
	userID := uuid.New()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/v1/user", r.URL.Path)
		require.Equal(t, "anon", r.Header.Get("apikey"))
		require.Equal(t, "Bearer opaque-token", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(map[string]any{
			"id":            userID.String(),
			"email":         "rider@hpztv.com",
			"user_metadata": map[string]any{"name": "Budi"},
			"app_metadata":  map[string]any{"provider": "email"},
			"created_at":    "2025-01-15T10:00:00Z",
		})
	}))
	defer server.Close()

	v := NewSupabaseVerifier(server.URL, "anon", "")

	id, err := v.Verify(context.Background(), "opaque-token")
	require.NoError(t, err)
	assert.Equal(t, userID, id.ID)
	assert.Equal(t, "rider@hpztv.com", id.Email)
	assert.Equal(t, "2025-01-15T10:00:00Z", id.CreatedAt)
	assert.Equal(t, "email", id.AppMetadata["provider"])
}

func TestVerifyRemoteRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	v := NewSupabaseVerifier(server.URL, "anon", "")

	_, err := v.Verify(context.Background(), "bad-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyRemoteProviderDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	v := NewSupabaseVerifier(server.URL, "anon", "")

	_, err := v.Verify(context.Background(), "any-token")
	assert.ErrorIs(t, err, ErrProviderUnavailable)
}

func TestDisplayName(t *testing.T) {
	withName := &Identity{Email: "rider@hpztv.com", UserMetadata: map[string]any{"name": "Budi"}}
	assert.Equal(t, "Budi", withName.DisplayName())

	withoutName := &Identity{Email: "rider@hpztv.com"}
	assert.Equal(t, "rider@hpztv.com", withoutName.DisplayName())
}
