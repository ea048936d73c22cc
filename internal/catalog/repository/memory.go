package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/pytechdigital/content-api/internal/catalog"
)

var (
	ErrNotFound = errors.New("not found")
)

// MemoryRepo is an in-memory catalog used by unit tests and by the server when
// no MongoDB is configured. Listing order is insertion order, matching the
// storage-order contract of the Mongo repo.
type MemoryRepo struct {
	mu           sync.RWMutex
	services     []catalog.Service
	cities       []catalog.City
	testimonials []catalog.Testimonial
	portfolio    []catalog.PortfolioItem
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// Load replaces the repo contents wholesale. It backs both test fixtures and
// the in-memory seeding path.
func (m *MemoryRepo) Load(services []catalog.Service, cities []catalog.City, testimonials []catalog.Testimonial, portfolio []catalog.PortfolioItem) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.services = append([]catalog.Service(nil), services...)
	m.cities = append([]catalog.City(nil), cities...)
	m.testimonials = append([]catalog.Testimonial(nil), testimonials...)
	m.portfolio = append([]catalog.PortfolioItem(nil), portfolio...)
}

func (m *MemoryRepo) ListServices(ctx context.Context) ([]catalog.Service, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]catalog.Service(nil), m.services...), nil
}

func (m *MemoryRepo) GetServiceBySlug(ctx context.Context, slug string) (*catalog.Service, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.services {
		if m.services[i].Slug == slug {
			s := m.services[i]
			return &s, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryRepo) ListCities(ctx context.Context) ([]catalog.City, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]catalog.City(nil), m.cities...), nil
}

func (m *MemoryRepo) GetCityBySlug(ctx context.Context, slug string) (*catalog.City, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.cities {
		if m.cities[i].Slug == slug {
			c := m.cities[i]
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryRepo) ListTestimonials(ctx context.Context) ([]catalog.Testimonial, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]catalog.Testimonial(nil), m.testimonials...), nil
}

func (m *MemoryRepo) ListPortfolio(ctx context.Context) ([]catalog.PortfolioItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]catalog.PortfolioItem(nil), m.portfolio...), nil
}
