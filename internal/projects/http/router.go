package http

import (
	"github.com/gin-gonic/gin"

	"github.com/SAI-CHANDHAN/My-portfolio/internal/validation"
)

// Register attaches project routes to the given router group. admin guards the
// mutating and unfiltered routes.
func (h *Handler) Register(rg *gin.RouterGroup, admin ...gin.HandlerFunc) {
	guarded := func(hs ...gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, admin...), hs...)
	}

	rg.GET("", validation.Query(listQueryRules...), h.list)
	rg.GET("/featured", h.featured)
	rg.GET("/admin/all", guarded(h.adminList)...)
	rg.GET("/:identifier", h.get)
	rg.POST("", guarded(validation.Body(projectRules(true)...), h.create)...)
	rg.PUT("/:id", guarded(validation.Body(projectRules(false)...), h.update)...)
	rg.DELETE("/:id", guarded(h.delete)...)
}
