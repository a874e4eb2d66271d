package auth

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/SAI-CHANDHAN/My-portfolio/internal/auth/domain"
)

const CtxIdentity = "identity"

type identityKey struct{}

// WithIdentity stores the caller in ctx.
func WithIdentity(ctx context.Context, id domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom returns the caller stored by the auth middleware.
func IdentityFrom(ctx context.Context) (domain.Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(domain.Identity)
	return id, ok
}

// SetIdentity attaches the caller to both the Gin context and the request
// context.
func SetIdentity(c *gin.Context, id domain.Identity) {
	c.Set(CtxIdentity, id)
	c.Request = c.Request.WithContext(WithIdentity(c.Request.Context(), id))
}

// CurrentIdentity extracts the caller from the Gin context
// This is set by middleware.Authenticate
func CurrentIdentity(c *gin.Context) (domain.Identity, bool) {
	v, ok := c.Get(CtxIdentity)
	if !ok {
		return domain.Identity{}, false
	}
	id, ok := v.(domain.Identity)
	return id, ok
}
