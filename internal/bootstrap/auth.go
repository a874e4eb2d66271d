package bootstrap

import (
	"context"
	"crypto/rand"

	"github.com/SAI-CHANDHAN/My-portfolio/config"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/auth"
	authrepo "github.com/SAI-CHANDHAN/My-portfolio/internal/auth/repository"
)

// NewVerifier picks the token verifier for the configured provider. tokens is
// nil for the firebase provider, which has no password login. An empty JWT
// secret is replaced by a random per-process key, so tokens do not survive a
// restart.
func NewVerifier(ctx context.Context, cfg config.AuthConfig, users authrepo.UserRepository) (verifier auth.Verifier, tokens *auth.TokenManager, err error) {
	if cfg.Provider == config.AuthFirebase {
		client, err := auth.InitializeFirebase(ctx, cfg.FirebaseCredentialsPath)
		if err != nil {
			return nil, nil, err
		}
		return auth.NewFirebaseVerifier(client), nil, nil
	}

	secret := cfg.JWTSecret
	if secret == "" {
		secret = rand.Text()
	}
	tokens = auth.NewTokenManager(secret, cfg.JWTExpiry, users)
	return tokens, tokens, nil
}
