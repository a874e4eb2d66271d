package http

import (
	"github.com/gin-gonic/gin"

	"github.com/SAI-CHANDHAN/My-portfolio/internal/auth/service"
)

type Handler struct {
	authService *service.AuthService
	// loginLimit throttles password attempts; nil disables it.
	loginLimit gin.HandlerFunc
}

func New(authService *service.AuthService, loginLimit gin.HandlerFunc) *Handler {
	return &Handler{
		authService: authService,
		loginLimit:  loginLimit,
	}
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
