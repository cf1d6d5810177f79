package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mohiniBalmiki/taxwise-web/internal/middleware"
)

type RouterDeps struct {
	Verify     *VerifyHandler
	Sections   *SectionsHandler
	Properties *PropertiesHandler

	// per-client limit on the resend route; zero disables
	ResendWindow time.Duration
}

func RegisterRoutes(api *gin.RouterGroup, deps RouterDeps) {
	api.GET("/properties", deps.Properties.Get)

	api.GET("/pages/verify-email", deps.Verify.Show)
	api.POST("/pages/verify-email/resend", middleware.RateLimit(deps.ResendWindow), deps.Verify.Resend)

	api.GET("/sections/cta", deps.Sections.CallToAction)
	api.GET("/sections/testimonials", deps.Sections.Testimonials)
}
