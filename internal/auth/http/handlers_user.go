package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAI-CHANDHAN/My-portfolio/internal/apperr"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/auth"
)

// Login exchanges email and password for a bearer token.
func (h *Handler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, apperr.Validation([]apperr.FieldError{{Field: "body", Message: err.Error()}}))
		return
	}

	res, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Me returns the identity resolved from the caller's token.
func (h *Handler) Me(c *gin.Context) {
	id, ok := auth.CurrentIdentity(c)
	if !ok {
		apperr.Respond(c, apperr.Unauthenticated("Authentication required"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": id})
}
