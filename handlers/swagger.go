package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the content API.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>pytech-content-api — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document describing the public content endpoints.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "pytech-content-api", "version": "v0.1.0" },
  "paths": {
    "/api/services": {
      "get": { "summary": "List all services", "responses": { "200": { "description": "service list" } } }
    },
    "/api/services/{slug}": {
      "get": { "summary": "Get a service by slug", "parameters": [{"name":"slug","in":"path","required":true,"schema":{"type":"string"}}], "responses": { "200": { "description": "service" }, "404": { "description": "service not found" } } }
    },
    "/api/cities": {
      "get": { "summary": "List all cities", "responses": { "200": { "description": "city list" } } }
    },
    "/api/cities/{slug}": {
      "get": { "summary": "Get a city by slug", "parameters": [{"name":"slug","in":"path","required":true,"schema":{"type":"string"}}], "responses": { "200": { "description": "city" }, "404": { "description": "city not found" } } }
    },
    "/api/service-city/{serviceSlug}/{citySlug}": {
      "get": { "summary": "Composed landing-page metadata for a service in a city", "parameters": [{"name":"serviceSlug","in":"path","required":true,"schema":{"type":"string"}},{"name":"citySlug","in":"path","required":true,"schema":{"type":"string"}}], "responses": { "200": { "description": "composed page" }, "404": { "description": "service or city not found" } } }
    },
    "/api/testimonials": {
      "get": { "summary": "List testimonials", "responses": { "200": { "description": "testimonial list" } } }
    },
    "/api/portfolio": {
      "get": { "summary": "List portfolio items", "responses": { "200": { "description": "portfolio list" } } }
    },
    "/api/contact": {
      "post": { "summary": "Submit a contact form", "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["name","email","phone","city","service","message"],"properties":{"name":{"type":"string"},"email":{"type":"string"},"phone":{"type":"string"},"city":{"type":"string"},"service":{"type":"string"},"message":{"type":"string"}}}}}}, "responses": { "200": { "description": "stored submission with id and timestamp" }, "400": { "description": "missing field" } } }
    },
    "/api/sitemap-data": {
      "get": { "summary": "All service-city URL combinations for sitemap generation", "responses": { "200": { "description": "total_pages and urls" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check with dependency detail", "responses": { "200": { "description": "ready" } } } }
  }
}`
