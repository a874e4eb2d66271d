package bootstrap

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/SAI-CHANDHAN/My-portfolio/config"
	httpapi "github.com/SAI-CHANDHAN/My-portfolio/internal/api/http"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/api/http/middleware"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/api/http/routes"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/auth"
	authservice "github.com/SAI-CHANDHAN/My-portfolio/internal/auth/service"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/contact/notify"
	contactservice "github.com/SAI-CHANDHAN/My-portfolio/internal/contact/service"
	projectservice "github.com/SAI-CHANDHAN/My-portfolio/internal/projects/service"
	skillservice "github.com/SAI-CHANDHAN/My-portfolio/internal/skills/service"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	Environment string
	ClientURL   string
	Logger      zerolog.Logger
	Store       *Store
	Notifier    notify.Notifier
	Verifier    auth.Verifier
	// Tokens is nil when password login is not available.
	Tokens    *auth.TokenManager
	RateLimit config.RateLimitConfig
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	metrics := middleware.NewMetrics("portfolio")

	r.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(dep.Logger),
		metrics.Middleware(),
		middleware.Secure(middleware.SecureOptions(dep.Environment != "production")),
		middleware.CORS(dep.ClientURL),
	)

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Store.Pinger)
	healthHandler.RegisterRoutes(r)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/api")
	api.GET("/health", healthHandler.HealthCheck)

	var issuer authservice.TokenIssuer
	if dep.Tokens != nil {
		issuer = dep.Tokens
	}

	contactLimit := middleware.NewRateLimiter(dep.RateLimit.ContactPerMinute, dep.RateLimit.ContactBurst, 15*time.Minute)
	loginLimit := middleware.NewRateLimiter(dep.RateLimit.LoginPerMinute, dep.RateLimit.LoginPerMinute, 15*time.Minute)

	routes.RegisterV1(api, routes.V1Deps{
		Projects:      projectservice.NewProjectService(dep.Store.Projects),
		Skills:        skillservice.NewSkillService(dep.Store.Skills),
		Contact:       contactservice.NewContactService(dep.Store.Messages, dep.Notifier),
		Auth:          authservice.NewAuthService(dep.Store.Users, issuer),
		Verifier:      dep.Verifier,
		PasswordLogin: dep.Tokens != nil,
		ContactLimit:  contactLimit.Middleware("Too many messages sent. Please try again later."),
		LoginLimit:    loginLimit.Middleware("Too many login attempts. Please try again later."),
	})

	return r
}
