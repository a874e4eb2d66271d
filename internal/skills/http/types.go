package http

import "github.com/SAI-CHANDHAN/My-portfolio/internal/skills/service"

// Handler bundles the dependencies for skills HTTP endpoints.
type Handler struct {
	svc *service.SkillService
}

func New(svc *service.SkillService) *Handler {
	return &Handler{svc: svc}
}
