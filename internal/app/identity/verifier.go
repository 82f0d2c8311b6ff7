package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

// VerifyTimeout bounds a single verification round-trip to the provider.
const VerifyTimeout = 5 * time.Second

var (
	// ErrTokenInvalid means the token failed verification (bad signature,
	// expired, or rejected by the provider).
	ErrTokenInvalid = errors.New("invalid or expired token")

	// ErrProviderUnavailable means the provider could not be consulted.
	ErrProviderUnavailable = errors.New("identity provider unavailable")
)

// Verifier exchanges a bearer token for an authenticated Identity.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

// accessClaims is the shape of the provider-signed access token.
type accessClaims struct {
	jwt.StandardClaims

	Email        string         `json:"email"`
	UserMetadata map[string]any `json:"user_metadata"`
	AppMetadata  map[string]any `json:"app_metadata"`
}

// SupabaseVerifier verifies bearer tokens against a Supabase project.
// With a JWT secret configured it verifies the HS256 signature locally;
// otherwise it calls the provider's user endpoint per request.
type SupabaseVerifier struct {
	baseURL   string
	anonKey   string
	jwtSecret string
	client    *http.Client
}

// NewSupabaseVerifier builds a verifier for the given project URL and anon
// key. jwtSecret may be empty to force remote verification.
func NewSupabaseVerifier(baseURL, anonKey, jwtSecret string) *SupabaseVerifier {
	return &SupabaseVerifier{
		baseURL:   strings.TrimRight(baseURL, "/"),
		anonKey:   anonKey,
		jwtSecret: jwtSecret,
		client:    &http.Client{Timeout: VerifyTimeout},
	}
}

// Verify resolves the token to an Identity or fails with ErrTokenInvalid /
// ErrProviderUnavailable.
func (v *SupabaseVerifier) Verify(ctx context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, ErrTokenInvalid
	}

	if v.jwtSecret != "" {
		return v.verifyLocal(token)
	}

	return v.verifyRemote(ctx, token)
}

// verifyLocal checks the provider's HS256 signature and standard claims
// without a network round-trip.
func (v *SupabaseVerifier) verifyLocal(tokenString string) (*Identity, error) {
	claims := &accessClaims{}

	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(v.jwtSecret), nil
	})

	if err != nil || !parsed.Valid {
		return nil, ErrTokenInvalid
	}

	// Access tokens carry aud "authenticated"; anything else (e.g. a
	// refresh token) is not a session credential.
	if claims.Audience != "" && claims.Audience != "authenticated" {
		return nil, ErrTokenInvalid
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, ErrTokenInvalid
	}

	return &Identity{
		ID:           userID,
		Email:        claims.Email,
		UserMetadata: claims.UserMetadata,
		AppMetadata:  claims.AppMetadata,
	}, nil
}

// providerUser is the provider's user endpoint response.
type providerUser struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	UserMetadata map[string]any `json:"user_metadata"`
	AppMetadata  map[string]any `json:"app_metadata"`
	CreatedAt    string         `json:"created_at"`
}

// verifyRemote asks the provider to resolve the token.
func (v *SupabaseVerifier) verifyRemote(ctx context.Context, token string) (*Identity, error) {
	ctx, cancel := context.WithTimeout(ctx, VerifyTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}

	req.Header.Set("apikey", v.anonKey)
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := v.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusOK:
		// fall through to decode
	case res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden:
		return nil, ErrTokenInvalid
	default:
		return nil, fmt.Errorf("%w: unexpected status %d", ErrProviderUnavailable, res.StatusCode)
	}

	var user providerUser
	if err := json.NewDecoder(res.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}

	userID, err := uuid.Parse(user.ID)
	if err != nil {
		return nil, ErrTokenInvalid
	}

	return &Identity{
		ID:           userID,
		Email:        user.Email,
		UserMetadata: user.UserMetadata,
		AppMetadata:  user.AppMetadata,
		CreatedAt:    user.CreatedAt,
	}, nil
}
