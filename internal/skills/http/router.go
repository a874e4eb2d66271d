package http

import (
	"github.com/gin-gonic/gin"

	"github.com/SAI-CHANDHAN/My-portfolio/internal/validation"
)

// Register attaches skill routes to the given router group. admin guards the
// mutating and unfiltered routes.
func (h *Handler) Register(rg *gin.RouterGroup, admin ...gin.HandlerFunc) {
	guarded := func(hs ...gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, admin...), hs...)
	}

	rg.GET("", validation.Query(listQueryRules...), h.list)
	rg.GET("/categories", h.categories)
	rg.GET("/admin/all", guarded(h.adminList)...)
	rg.GET("/:id", h.get)
	rg.POST("", guarded(validation.Body(skillRules(true)...), h.create)...)
	rg.POST("/bulk", guarded(validation.EachBody(skillRules(true)...), h.bulkCreate)...)
	rg.PUT("/:id", guarded(validation.Body(skillRules(false)...), h.update)...)
	rg.DELETE("/:id", guarded(h.delete)...)
}
