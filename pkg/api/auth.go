package api

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	echo "github.com/labstack/echo/v5"
)

// userIDContextKey is where requireAuth stores the authenticated user id.
const userIDContextKey = "user_id"

// ErrInvalidToken is returned by verifiers for malformed or forged tokens.
var ErrInvalidToken = errors.New("invalid token")

// TokenVerifier resolves a bearer token to a user id. The OAuth issuance
// flow lives elsewhere; this side only validates.
type TokenVerifier interface {
	Verify(token string) (userID string, err error)
}

// HMACVerifier validates tokens of the form
// base64url(user_id) + "." + base64url(HMAC-SHA256(payload)).
type HMACVerifier struct {
	secret []byte
}

// NewHMACVerifier creates a verifier for the given shared secret.
func NewHMACVerifier(secret string) *HMACVerifier {
	return &HMACVerifier{secret: []byte(secret)}
}

// Verify checks the signature and returns the embedded user id.
func (v *HMACVerifier) Verify(token string) (string, error) {
	payload, sig, ok := strings.Cut(token, ".")
	if !ok || payload == "" || sig == "" {
		return "", ErrInvalidToken
	}

	wantSig, err := base64.RawURLEncoding.DecodeString(sig)
	if err != nil {
		return "", ErrInvalidToken
	}
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(payload))
	if !hmac.Equal(mac.Sum(nil), wantSig) {
		return "", ErrInvalidToken
	}

	userID, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil || len(userID) == 0 {
		return "", ErrInvalidToken
	}
	return string(userID), nil
}

// Sign issues a token for a user id. Test helper and CLI tooling use it;
// the production issuer lives in the auth service.
func (v *HMACVerifier) Sign(userID string) string {
	payload := base64.RawURLEncoding.EncodeToString([]byte(userID))
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(payload))
	return payload + "." + base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// requireAuth authenticates the bearer token and stores the user id on the
// request context.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c *echo.Context) error {
		if s.verifier == nil {
			return echo.NewHTTPError(http.StatusServiceUnavailable, "autenticação não configurada")
		}

		header := c.Request().Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "token de acesso ausente")
		}

		userID, err := s.verifier.Verify(token)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "token de acesso inválido")
		}

		c.Set(userIDContextKey, userID)
		return next(c)
	}
}

// currentUserID returns the authenticated user id, or "" on routes without
// requireAuth.
func currentUserID(c *echo.Context) string {
	if v, ok := c.Get(userIDContextKey).(string); ok {
		return v
	}
	return ""
}
