package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pytechdigital/content-api/internal/pages"
	"github.com/pytechdigital/content-api/pkg/metrics"
)

// PagesHandler serves the derived service-city landing pages and the sitemap
// cross product.
type PagesHandler struct {
	composer *pages.Composer
}

func NewPagesHandler(composer *pages.Composer) *PagesHandler {
	return &PagesHandler{composer: composer}
}

func (h *PagesHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/service-city/:serviceSlug/:citySlug", h.GetServiceCityPage)
	rg.GET("/sitemap-data", h.GetSitemapData)
}

func (h *PagesHandler) GetServiceCityPage(c *gin.Context) {
	page, err := h.composer.ComposePage(c.Request.Context(), c.Param("serviceSlug"), c.Param("citySlug"))
	if err != nil {
		if errors.Is(err, pages.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Service or City not found"})
			return
		}
		internalError(c, "compose page", err)
		return
	}
	metrics.PagesComposed.Inc()
	c.JSON(http.StatusOK, page)
}

// GetSitemapData returns every service×city URL combination plus the total,
// for external sitemap generation.
func (h *PagesHandler) GetSitemapData(c *gin.Context) {
	urls, err := h.composer.SitemapEntries(c.Request.Context())
	if err != nil {
		internalError(c, "sitemap data", err)
		return
	}
	metrics.SitemapRequests.Inc()
	c.JSON(http.StatusOK, gin.H{
		"total_pages": len(urls),
		"urls":        urls,
	})
}
