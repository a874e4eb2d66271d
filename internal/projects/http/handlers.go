package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAI-CHANDHAN/My-portfolio/internal/apperr"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/pagination"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/projects/domain"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/projects/service"
)

func (h *Handler) list(c *gin.Context) {
	q := service.ListQuery{
		Category: c.Query("category"),
		Featured: c.Query("featured") == "true",
		Search:   c.Query("search"),
		Exclude:  c.Query("exclude"),
		Page:     pagination.Parse(c.Query("page"), c.Query("limit")),
	}
	items, meta, err := h.svc.List(c.Request.Context(), q)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": items, "pagination": meta})
}

func (h *Handler) featured(c *gin.Context) {
	items, err := h.svc.Featured(c.Request.Context())
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) get(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) adminList(c *gin.Context) {
	items, err := h.svc.AdminList(c.Request.Context())
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func bindInput(c *gin.Context) (domain.Input, bool) {
	var in domain.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		apperr.Respond(c, apperr.Validation([]apperr.FieldError{{Field: "body", Message: err.Error()}}))
		return in, false
	}
	return in, true
}

func (h *Handler) create(c *gin.Context) {
	in, ok := bindInput(c)
	if !ok {
		return
	}
	p, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *Handler) update(c *gin.Context) {
	in, ok := bindInput(c)
	if !ok {
		return
	}
	p, err := h.svc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}
