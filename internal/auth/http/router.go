package http

import (
	"github.com/gin-gonic/gin"

	"github.com/SAI-CHANDHAN/My-portfolio/internal/validation"
)

var loginRules = []validation.Rule{
	validation.Required("email").WithMessage("Email is required"),
	validation.Email("email"),
	validation.Required("password").WithMessage("Password is required"),
	validation.String("password"),
}

// Register attaches auth routes. authn must resolve the caller's identity.
// Password login is only mounted when the service can issue tokens.
func (h *Handler) Register(rg *gin.RouterGroup, authn gin.HandlerFunc, withLogin bool) {
	if withLogin {
		login := []gin.HandlerFunc{validation.Body(loginRules...), h.Login}
		if h.loginLimit != nil {
			login = append([]gin.HandlerFunc{h.loginLimit}, login...)
		}
		rg.POST("/login", login...)
	}
	rg.GET("/me", authn, h.Me)
}
