package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pytechdigital/content-api/internal/catalog/service"
	"github.com/pytechdigital/content-api/pkg/logger"
)

// CatalogHandler serves the read-only reference data: services, cities,
// testimonials and portfolio items.
type CatalogHandler struct {
	catalog *service.Service
	brand   string
}

func NewCatalogHandler(catalog *service.Service, brandName string) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, brand: brandName}
}

// Register mounts the catalog routes on the given group (normally /api).
func (h *CatalogHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/", h.Root)
	rg.GET("/services", h.ListServices)
	rg.GET("/services/:slug", h.GetService)
	rg.GET("/cities", h.ListCities)
	rg.GET("/cities/:slug", h.GetCity)
	rg.GET("/testimonials", h.ListTestimonials)
	rg.GET("/portfolio", h.ListPortfolio)
}

func (h *CatalogHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": h.brand + " API"})
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.catalog.ListServices(c.Request.Context())
	if err != nil {
		internalError(c, "list services", err)
		return
	}
	c.JSON(http.StatusOK, services)
}

func (h *CatalogHandler) GetService(c *gin.Context) {
	svc, err := h.catalog.GetService(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
			return
		}
		internalError(c, "get service", err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

func (h *CatalogHandler) ListCities(c *gin.Context) {
	cities, err := h.catalog.ListCities(c.Request.Context())
	if err != nil {
		internalError(c, "list cities", err)
		return
	}
	c.JSON(http.StatusOK, cities)
}

func (h *CatalogHandler) GetCity(c *gin.Context) {
	city, err := h.catalog.GetCity(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "City not found"})
			return
		}
		internalError(c, "get city", err)
		return
	}
	c.JSON(http.StatusOK, city)
}

func (h *CatalogHandler) ListTestimonials(c *gin.Context) {
	testimonials, err := h.catalog.ListTestimonials(c.Request.Context())
	if err != nil {
		internalError(c, "list testimonials", err)
		return
	}
	c.JSON(http.StatusOK, testimonials)
}

func (h *CatalogHandler) ListPortfolio(c *gin.Context) {
	portfolio, err := h.catalog.ListPortfolio(c.Request.Context())
	if err != nil {
		internalError(c, "list portfolio", err)
		return
	}
	c.JSON(http.StatusOK, portfolio)
}

// internalError logs the underlying store failure and answers with an opaque
// 500. Infrastructure errors are not recovered here.
func internalError(c *gin.Context, op string, err error) {
	logger.Errorf("%s: %v", op, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
