package services

import (
	"context"
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bidiq/bidiq/ent/oauthtoken"
	"github.com/bidiq/bidiq/pkg/crypto"
	testdb "github.com/bidiq/bidiq/test/database"
)

func newTokenService(t *testing.T) (*TokenService, func() string) {
	t.Helper()
	client := testdb.NewTestClient(t)

	cipher, err := crypto.New(hex.EncodeToString(make([]byte, 32)))
	require.NoError(t, err)

	svc, err := NewTokenService(client.Client, cipher)
	require.NoError(t, err)

	raw := func() string {
		row, err := client.Client.OAuthToken.Query().
			Where(oauthtoken.UserID("user-1"), oauthtoken.Provider("google")).
			Only(context.Background())
		require.NoError(t, err)
		return row.AccessTokenEncrypted
	}
	return svc, raw
}

func TestTokenService_SaveAndGet(t *testing.T) {
	svc, raw := newTokenService(t)
	ctx := context.Background()

	expires := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	err := svc.Save(ctx, "user-1", "google", OAuthCredentials{
		AccessToken:  "access-secret",
		RefreshToken: "refresh-secret",
		ExpiresAt:    &expires,
	})
	require.NoError(t, err)

	// Stored ciphertext never contains the plaintext.
	assert.NotContains(t, raw(), "access-secret")

	creds, err := svc.Get(ctx, "user-1", "google")
	require.NoError(t, err)
	assert.Equal(t, "access-secret", creds.AccessToken)
	assert.Equal(t, "refresh-secret", creds.RefreshToken)
	require.NotNil(t, creds.ExpiresAt)
	assert.Equal(t, expires, creds.ExpiresAt.UTC().Truncate(time.Second))
}

func TestTokenService_SaveUpserts(t *testing.T) {
	svc, _ := newTokenService(t)
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, "user-1", "google", OAuthCredentials{AccessToken: "first"}))
	require.NoError(t, svc.Save(ctx, "user-1", "google", OAuthCredentials{AccessToken: "second"}))

	creds, err := svc.Get(ctx, "user-1", "google")
	require.NoError(t, err)
	assert.Equal(t, "second", creds.AccessToken)
}

func TestTokenService_GetNotFound(t *testing.T) {
	svc, _ := newTokenService(t)

	_, err := svc.Get(context.Background(), "user-1", "google")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTokenService_Delete(t *testing.T) {
	svc, _ := newTokenService(t)
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, "user-1", "google", OAuthCredentials{AccessToken: "tok"}))
	require.NoError(t, svc.Delete(ctx, "user-1", "google"))

	assert.ErrorIs(t, svc.Delete(ctx, "user-1", "google"), ErrNotFound)
}

func TestTokenService_RequiresCipher(t *testing.T) {
	client := testdb.NewTestClient(t)
	_, err := NewTokenService(client.Client, nil)
	assert.Error(t, err)
}

func TestTokenService_Validation(t *testing.T) {
	svc, _ := newTokenService(t)
	ctx := context.Background()

	var validErr *ValidationError
	err := svc.Save(ctx, "", "google", OAuthCredentials{AccessToken: "tok"})
	assert.ErrorAs(t, err, &validErr)

	err = svc.Save(ctx, "user-1", "google", OAuthCredentials{})
	assert.ErrorAs(t, err, &validErr)
}
