package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAI-CHANDHAN/My-portfolio/internal/apperr"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/contact/domain"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/pagination"
)

func (h *Handler) submit(c *gin.Context) {
	var sub domain.Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		apperr.Respond(c, apperr.Validation([]apperr.FieldError{{Field: "body", Message: err.Error()}}))
		return
	}
	sub.IPAddress = c.ClientIP()
	sub.UserAgent = c.Request.UserAgent()

	m, err := h.svc.Submit(c.Request.Context(), sub)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Thank you for your message! I'll get back to you soon.",
		"contact": m,
	})
}

func (h *Handler) list(c *gin.Context) {
	p := pagination.Parse(c.Query("page"), c.Query("limit"))
	items, meta, err := h.svc.List(c.Request.Context(), c.Query("status"), p)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": items, "pagination": meta})
}

func (h *Handler) setStatus(c *gin.Context) {
	var req statusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, apperr.Validation([]apperr.FieldError{{Field: "body", Message: err.Error()}}))
		return
	}
	m, err := h.svc.SetStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}
