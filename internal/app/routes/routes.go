package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/kartavya/website/internal/app/controllers"
	"github.com/kartavya/website/internal/middleware"
	"github.com/kartavya/website/internal/pkg/apperrors"
	"github.com/kartavya/website/internal/pkg/metrics"
)

// Handlers groups the controllers mounted by SetupRouter
type Handlers struct {
	Page        *controllers.PageController
	Content     *controllers.ContentController
	Application *controllers.ApplicationController
	OGImage     *controllers.OGImageController
	Health      *controllers.HealthController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, h Handlers, limiter *middleware.RateLimiter, m *metrics.Metrics) {
	// --- Site pages and fragments ---
	router.GET("/", h.Page.Home)
	router.GET("/sections/:name", h.Page.Section)
	router.GET("/sections/:name/:id", h.Page.SectionItem)
	router.POST("/apply", middleware.RateLimit(limiter, func(c *gin.Context) {
		m.ApplicationSubmitted(metrics.OutcomeRateLimited)
		h.Page.ApplyRateLimited(c)
	}), h.Page.Apply)

	// --- Preview images (the alias keeps old share links working) ---
	for _, path := range []string{"/og-image", "/functions/v1/og-image"} {
		router.GET(path, h.OGImage.Image)
		router.POST(path, h.OGImage.Image)
		router.OPTIONS(path, h.OGImage.Preflight)
	}

	// --- JSON API ---
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", h.Health.Health)

		ngos := v1.Group("/ngos")
		{
			ngos.GET("", h.Content.GetOrganizations)
			ngos.GET("/:id/members", h.Content.GetOrganizationMembers)
		}
		v1.GET("/team", h.Content.GetTeam)
		v1.GET("/mentors", h.Content.GetMentors)
		v1.GET("/podcasts", h.Content.GetPodcasts)
		v1.GET("/events", h.Content.GetEvents)

		v1.POST("/applications", middleware.RateLimit(limiter, func(c *gin.Context) {
			m.ApplicationSubmitted(metrics.OutcomeRateLimited)
			middleware.HandleAPIError(c, apperrors.ErrRateLimited)
		}), h.Application.SubmitApplication)
	}

	router.GET("/metrics", gin.WrapH(m.Handler()))
}
