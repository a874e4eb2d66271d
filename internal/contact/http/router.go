package http

import (
	"github.com/gin-gonic/gin"

	"github.com/SAI-CHANDHAN/My-portfolio/internal/contact/domain"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/validation"
)

var (
	submitRules = []validation.Rule{
		validation.Required("name").WithMessage("Name is required"),
		validation.String("name"),
		validation.MaxLen("name", 100).WithMessage("Name cannot exceed 100 characters"),
		validation.Required("email").WithMessage("Email is required"),
		validation.Email("email"),
		validation.Required("subject").WithMessage("Subject is required"),
		validation.String("subject"),
		validation.MaxLen("subject", 200).WithMessage("Subject cannot exceed 200 characters"),
		validation.Required("message").WithMessage("Message is required"),
		validation.String("message"),
		validation.MaxLen("message", 5000).WithMessage("Message cannot exceed 5000 characters"),
	}
	statusRules = []validation.Rule{
		validation.Required("status").WithMessage("Status is required"),
		validation.OneOf("status", domain.Statuses...),
	}
	listQueryRules = []validation.Rule{
		validation.OneOf("status", domain.Statuses...),
	}
)

// Register attaches contact routes to the given router group. Submission is
// public; reading and triaging messages needs admin.
func (h *Handler) Register(rg *gin.RouterGroup, admin ...gin.HandlerFunc) {
	guarded := func(hs ...gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, admin...), hs...)
	}

	submit := []gin.HandlerFunc{validation.Body(submitRules...), h.submit}
	if h.submitLimit != nil {
		submit = append([]gin.HandlerFunc{h.submitLimit}, submit...)
	}
	rg.POST("", submit...)
	rg.GET("", guarded(validation.Query(listQueryRules...), h.list)...)
	rg.PATCH("/:id", guarded(validation.Body(statusRules...), h.setStatus)...)
}
