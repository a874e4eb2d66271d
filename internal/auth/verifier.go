package auth

import (
	"context"
	"errors"

	"github.com/SAI-CHANDHAN/My-portfolio/internal/auth/domain"
)

var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Verifier turns a bearer token into an identity. Any failure must be
// reported as an error so the caller fails closed.
type Verifier interface {
	Verify(ctx context.Context, token string) (domain.Identity, error)
}
