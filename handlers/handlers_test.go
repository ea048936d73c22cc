package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/pytechdigital/content-api/internal/catalog/repository"
	"github.com/pytechdigital/content-api/internal/catalog/service"
	"github.com/pytechdigital/content-api/internal/contact"
	"github.com/pytechdigital/content-api/internal/pages"
	"github.com/pytechdigital/content-api/internal/seed"
)

// newTestRouter builds the full /api surface over a seeded in-memory store,
// matching the wiring in main.
func newTestRouter() (*gin.Engine, *contact.MemoryRepository) {
	gin.SetMode(gin.TestMode)
	repo := repository.NewMemoryRepo()
	repo.Load(seed.Services(), seed.Cities(), seed.Testimonials(), seed.Portfolio())
	catalogSvc := service.New(repo)
	contactRepo := contact.NewMemoryRepository()
	composer := pages.NewComposer(catalogSvc, pages.Brand{Name: "PyTech Digital", Phone: "+91 9205 222 170"})

	g := gin.New()
	api := g.Group("/api")
	NewCatalogHandler(catalogSvc, "PyTech Digital").Register(api)
	NewPagesHandler(composer).Register(api)
	NewContactHandler(contact.NewService(contactRepo)).Register(api)
	RegisterSwagger(g)
	return g, contactRepo
}
