package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/mohiniBalmiki/taxwise-web/internal/config"
	"github.com/mohiniBalmiki/taxwise-web/internal/content"
	"github.com/mohiniBalmiki/taxwise-web/internal/pkg/response"
)

type SectionsHandler struct {
	routes config.RoutesConfig
}

func NewSectionsHandler(routes config.RoutesConfig) *SectionsHandler {
	return &SectionsHandler{routes: routes}
}

func (h *SectionsHandler) CallToAction(c *gin.Context) {
	response.Success(c, content.CallToActionSection(h.routes))
}

func (h *SectionsHandler) Testimonials(c *gin.Context) {
	response.Success(c, content.TestimonialsSection())
}
