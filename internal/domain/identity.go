package domain

import "context"

// Identity is the verified caller attached to a request by the auth middleware.
type Identity struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}

// TokenVerifier verifies a bearer token against an identity provider.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}
