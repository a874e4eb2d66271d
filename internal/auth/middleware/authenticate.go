package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/SAI-CHANDHAN/My-portfolio/internal/apperr"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/auth"
)

// Authenticate validates the bearer token and attaches the caller's identity.
// Every failure is a 401.
func Authenticate(v auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractToken(c)
		if !ok {
			apperr.Respond(c, apperr.Unauthenticated("No token provided, authorization denied"))
			return
		}

		id, err := v.Verify(c.Request.Context(), token)
		if err != nil {
			zerolog.Ctx(c.Request.Context()).Debug().Err(err).Msg("token rejected")
			apperr.Respond(c, apperr.Unauthenticated("Token is not valid"))
			return
		}

		auth.SetIdentity(c, id)
		c.Next()
	}
}

// RequireRole must run after Authenticate. Missing identity is a 401, a
// different role a 403.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := auth.CurrentIdentity(c)
		if !ok {
			apperr.Respond(c, apperr.Unauthenticated("Authentication required"))
			return
		}
		if !id.HasRole(role) {
			apperr.Respond(c, apperr.Forbidden(fmt.Sprintf("Access denied. %s role required.", role)))
			return
		}
		c.Next()
	}
}

// extractToken extracts the Bearer token from the Authorization header
func extractToken(c *gin.Context) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(c.GetHeader("Authorization")), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
