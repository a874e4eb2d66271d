package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAI-CHANDHAN/My-portfolio/internal/apperr"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/skills/domain"
)

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context(), c.Query("category"), c.Query("sort"))
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) categories(c *gin.Context) {
	cats, err := h.svc.Categories(c.Request.Context())
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, cats)
}

func (h *Handler) adminList(c *gin.Context) {
	items, err := h.svc.AdminList(c.Request.Context())
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) get(c *gin.Context) {
	sk, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, sk)
}

func bind[T any](c *gin.Context) (T, bool) {
	var v T
	if err := c.ShouldBindJSON(&v); err != nil {
		apperr.Respond(c, apperr.Validation([]apperr.FieldError{{Field: "body", Message: err.Error()}}))
		return v, false
	}
	return v, true
}

func (h *Handler) create(c *gin.Context) {
	in, ok := bind[domain.Input](c)
	if !ok {
		return
	}
	sk, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, sk)
}

func (h *Handler) bulkCreate(c *gin.Context) {
	inputs, ok := bind[[]domain.Input](c)
	if !ok {
		return
	}
	res, err := h.svc.BulkCreate(c.Request.Context(), inputs)
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	status := http.StatusCreated
	if len(res.Created) == 0 {
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"message": res.Message(), "created": res.Created, "failed": res.Failed})
}

func (h *Handler) update(c *gin.Context) {
	in, ok := bind[domain.Input](c)
	if !ok {
		return
	}
	sk, err := h.svc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, sk)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Skill deleted successfully"})
}
