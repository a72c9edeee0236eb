package domain

import "context"

// Identity is an authenticated user as seen by the identity provider.
// Email and EmailVerified are read fresh on every request and are the
// source of truth over anything mirrored in the profile store.
type Identity struct {
	UserID        string
	Email         string
	EmailVerified bool
}

// IdentityProvider resolves a bearer credential to an Identity.
// It returns ErrUnauthorized when the credential is missing, invalid or expired.
type IdentityProvider interface {
	Resolve(ctx context.Context, bearerToken string) (*Identity, error)
}
