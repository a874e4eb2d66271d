package http

import (
	"github.com/gin-gonic/gin"

	"github.com/SAI-CHANDHAN/My-portfolio/internal/contact/service"
)

// Handler bundles the dependencies for contact HTTP endpoints.
type Handler struct {
	svc *service.ContactService
	// submitLimit throttles public submissions; nil disables it.
	submitLimit gin.HandlerFunc
}

func New(svc *service.ContactService, submitLimit gin.HandlerFunc) *Handler {
	return &Handler{svc: svc, submitLimit: submitLimit}
}

type statusReq struct {
	Status string `json:"status"`
}
