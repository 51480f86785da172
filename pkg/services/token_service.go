package services

import (
	"context"
	"fmt"
	"time"

	"github.com/bidiq/bidiq/ent"
	"github.com/bidiq/bidiq/ent/oauthtoken"
	"github.com/bidiq/bidiq/pkg/crypto"
)

// OAuthCredentials is a decrypted token pair for one provider.
type OAuthCredentials struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    *time.Time
}

// TokenService stores third-party OAuth tokens encrypted at rest. The OAuth
// flows themselves live in the auth service; this side only persists what it
// is handed.
type TokenService struct {
	client *ent.Client
	cipher *crypto.Cipher
}

// NewTokenService creates the token service. The cipher is mandatory: tokens
// are never written in the clear.
func NewTokenService(client *ent.Client, cipher *crypto.Cipher) (*TokenService, error) {
	if cipher == nil {
		return nil, fmt.Errorf("token service requires an encryption cipher")
	}
	return &TokenService{client: client, cipher: cipher}, nil
}

// Save upserts the encrypted credentials for (user, provider).
func (s *TokenService) Save(ctx context.Context, userID, provider string, creds OAuthCredentials) error {
	if userID == "" || provider == "" {
		return NewValidationError("user_id/provider", "required")
	}
	if creds.AccessToken == "" {
		return NewValidationError("access_token", "required")
	}

	access, err := s.cipher.Encrypt([]byte(creds.AccessToken))
	if err != nil {
		return fmt.Errorf("failed to encrypt access token: %w", err)
	}
	var refresh string
	if creds.RefreshToken != "" {
		if refresh, err = s.cipher.Encrypt([]byte(creds.RefreshToken)); err != nil {
			return fmt.Errorf("failed to encrypt refresh token: %w", err)
		}
	}

	existing, err := s.client.OAuthToken.Query().
		Where(oauthtoken.UserID(userID), oauthtoken.Provider(provider)).
		Only(ctx)
	switch {
	case err == nil:
		upd := existing.Update().
			SetAccessTokenEncrypted(access).
			SetRefreshTokenEncrypted(refresh)
		if creds.ExpiresAt != nil {
			upd.SetExpiresAt(*creds.ExpiresAt)
		}
		if _, err := upd.Save(ctx); err != nil {
			return fmt.Errorf("failed to update token: %w", err)
		}
		return nil
	case ent.IsNotFound(err):
		create := s.client.OAuthToken.Create().
			SetUserID(userID).
			SetProvider(provider).
			SetAccessTokenEncrypted(access).
			SetRefreshTokenEncrypted(refresh)
		if creds.ExpiresAt != nil {
			create.SetExpiresAt(*creds.ExpiresAt)
		}
		if _, err := create.Save(ctx); err != nil {
			return fmt.Errorf("failed to store token: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("failed to query token: %w", err)
	}
}

// Get decrypts the stored credentials for (user, provider).
func (s *TokenService) Get(ctx context.Context, userID, provider string) (*OAuthCredentials, error) {
	row, err := s.client.OAuthToken.Query().
		Where(oauthtoken.UserID(userID), oauthtoken.Provider(provider)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query token: %w", err)
	}

	access, err := s.cipher.Decrypt(row.AccessTokenEncrypted)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt access token: %w", err)
	}
	creds := &OAuthCredentials{
		AccessToken: string(access),
		ExpiresAt:   row.ExpiresAt,
	}
	if row.RefreshTokenEncrypted != "" {
		refresh, err := s.cipher.Decrypt(row.RefreshTokenEncrypted)
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt refresh token: %w", err)
		}
		creds.RefreshToken = string(refresh)
	}
	return creds, nil
}

// Delete removes the stored credentials for (user, provider).
func (s *TokenService) Delete(ctx context.Context, userID, provider string) error {
	n, err := s.client.OAuthToken.Delete().
		Where(oauthtoken.UserID(userID), oauthtoken.Provider(provider)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
