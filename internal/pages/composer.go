package pages

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pytechdigital/content-api/internal/catalog"
	"github.com/pytechdigital/content-api/internal/catalog/service"
)

var (
	// ErrNotFound covers service missing, city missing, or both. The two slugs
	// are validated together and the caller gets a single combined outcome.
	ErrNotFound = errors.New("service or city not found")
)

// Brand identifies the agency in generated page metadata.
type Brand struct {
	Name  string
	Phone string
}

// ServiceCityPage is the derived landing-page view for one service in one
// city. It is recomputed per request and never persisted.
type ServiceCityPage struct {
	Service         catalog.Service `json:"service"`
	City            catalog.City    `json:"city"`
	MetaTitle       string          `json:"meta_title"`
	MetaDescription string          `json:"meta_description"`
	Keywords        []string        `json:"keywords"`
}

// SitemapEntry is one service×city URL for sitemap generation.
type SitemapEntry struct {
	URL     string `json:"url"`
	Service string `json:"service"`
	City    string `json:"city"`
}

// Composer derives landing-page metadata and sitemap data from the catalog.
type Composer struct {
	catalog *service.Service
	brand   Brand
}

func NewComposer(cat *service.Service, brand Brand) *Composer {
	return &Composer{catalog: cat, brand: brand}
}

// ComposePage resolves both slugs and builds the SEO metadata for the pair.
func (c *Composer) ComposePage(ctx context.Context, serviceSlug, citySlug string) (*ServiceCityPage, error) {
	svc, err := c.catalog.GetService(ctx, serviceSlug)
	if err != nil && !errors.Is(err, service.ErrNotFound) {
		return nil, err
	}
	city, err := c.catalog.GetCity(ctx, citySlug)
	if err != nil && !errors.Is(err, service.ErrNotFound) {
		return nil, err
	}
	if svc == nil || city == nil {
		return nil, ErrNotFound
	}

	return &ServiceCityPage{
		Service:         *svc,
		City:            *city,
		MetaTitle:       fmt.Sprintf("%s Company in %s | %s", svc.Name, city.Name, c.brand.Name),
		MetaDescription: c.metaDescription(svc.Name, city.Name),
		Keywords:        pageKeywords(svc.Name, city.Name),
	}, nil
}

func (c *Composer) metaDescription(serviceName, cityName string) string {
	return fmt.Sprintf("Professional %s services in %s. %s offers expert %s solutions. Contact us: %s",
		serviceName, cityName, c.brand.Name, strings.ToLower(serviceName), c.brand.Phone)
}

// pageKeywords builds the fixed five-phrase keyword list from the lower-cased
// service and city names.
func pageKeywords(serviceName, cityName string) []string {
	s := strings.ToLower(serviceName)
	city := strings.ToLower(cityName)
	return []string{
		fmt.Sprintf("%s company in %s", s, city),
		fmt.Sprintf("%s services in %s", s, city),
		fmt.Sprintf("best %s agency in %s", s, city),
		fmt.Sprintf("%s near me", s),
		fmt.Sprintf("professional %s %s", s, city),
	}
}

// SitemapEntries emits one entry per (service, city) pair: all cities for the
// first service, then all cities for the second, preserving storage order in
// both collections.
func (c *Composer) SitemapEntries(ctx context.Context) ([]SitemapEntry, error) {
	services, err := c.catalog.ListServices(ctx)
	if err != nil {
		return nil, err
	}
	cities, err := c.catalog.ListCities(ctx)
	if err != nil {
		return nil, err
	}

	urls := make([]SitemapEntry, 0, len(services)*len(cities))
	for _, svc := range services {
		for _, city := range cities {
			urls = append(urls, SitemapEntry{
				URL:     "/" + svc.Slug + "/" + city.Slug,
				Service: svc.Name,
				City:    city.Name,
			})
		}
	}
	return urls, nil
}
