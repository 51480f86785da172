package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHMACVerifier_RoundTrip(t *testing.T) {
	v := NewHMACVerifier("test-secret")

	token := v.Sign("user-123")
	userID, err := v.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestHMACVerifier_Rejections(t *testing.T) {
	v := NewHMACVerifier("test-secret")
	good := v.Sign("user-123")

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"no separator", "abcdef"},
		{"tampered payload", "x" + good},
		{"tampered signature", good[:len(good)-2] + "zz"},
		{"wrong secret", NewHMACVerifier("other-secret").Sign("user-123")},
		{"garbage signature encoding", strings.SplitN(good, ".", 2)[0] + ".!!!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.Verify(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestRequireAuth(t *testing.T) {
	verifier := NewHMACVerifier("test-secret")
	s := &Server{verifier: verifier}

	e := echo.New()
	e.GET("/protected", func(c *echo.Context) error {
		return c.String(http.StatusOK, currentUserID(c))
	}, s.requireAuth)

	t.Run("valid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+verifier.Sign("user-9"))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "user-9", rec.Body.String())
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("forged token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer not.a-token")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("verifier not configured", func(t *testing.T) {
		bare := &Server{}
		e2 := echo.New()
		e2.GET("/protected", func(c *echo.Context) error { return nil }, bare.requireAuth)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		rec := httptest.NewRecorder()
		e2.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
