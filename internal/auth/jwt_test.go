package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/SAI-CHANDHAN/My-portfolio/internal/auth/domain"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/auth/repository"
)

func seedUser(t *testing.T, repo *repository.MemoryRepository, role string) *domain.User {
	t.Helper()
	u := &domain.User{ID: primitive.NewObjectID(), Email: "owner@example.com", Role: role}
	require.NoError(t, repo.Insert(context.Background(), u))
	return u
}

func TestTokenRoundTrip(t *testing.T) {
	repo := repository.NewMemory()
	u := seedUser(t, repo, domain.RoleAdmin)
	m := NewTokenManager("secret", time.Hour, repo)

	token, exp, err := m.Issue(u)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	id, err := m.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, u.ID.Hex(), id.ID)
	assert.Equal(t, domain.RoleAdmin, id.Role)
	assert.Equal(t, "owner@example.com", id.Email)
}

func TestVerifyRejects(t *testing.T) {
	repo := repository.NewMemory()
	u := seedUser(t, repo, domain.RoleAdmin)
	m := NewTokenManager("secret", time.Hour, repo)

	t.Run("wrong secret", func(t *testing.T) {
		token, _, err := NewTokenManager("other", time.Hour, repo).Issue(u)
		require.NoError(t, err)
		_, err = m.Verify(context.Background(), token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		past := NewTokenManager("secret", time.Minute, repo)
		past.now = func() time.Time { return time.Now().Add(-time.Hour) }
		token, _, err := past.Issue(u)
		require.NoError(t, err)
		_, err = m.Verify(context.Background(), token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unknown user", func(t *testing.T) {
		ghost := &domain.User{ID: primitive.NewObjectID(), Email: "ghost@example.com", Role: domain.RoleAdmin}
		token, _, err := m.Issue(ghost)
		require.NoError(t, err)
		_, err = m.Verify(context.Background(), token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unsigned", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
			"sub": u.ID.Hex(),
			"exp": time.Now().Add(time.Hour).Unix(),
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = m.Verify(context.Background(), token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := m.Verify(context.Background(), "not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
