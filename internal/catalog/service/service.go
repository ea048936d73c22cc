package service

import (
	"context"
	"errors"

	"github.com/pytechdigital/content-api/internal/catalog"
	"github.com/pytechdigital/content-api/internal/catalog/repository"
)

var (
	ErrNotFound = errors.New("not found")
)

// Repository defines the persistence operations the catalog service needs.
// Satisfied by repository.MongoRepo and repository.MemoryRepo.
type Repository interface {
	ListServices(ctx context.Context) ([]catalog.Service, error)
	GetServiceBySlug(ctx context.Context, slug string) (*catalog.Service, error)
	ListCities(ctx context.Context) ([]catalog.City, error)
	GetCityBySlug(ctx context.Context, slug string) (*catalog.City, error)
	ListTestimonials(ctx context.Context) ([]catalog.Testimonial, error)
	ListPortfolio(ctx context.Context) ([]catalog.PortfolioItem, error)
}

// Service is the read-only catalog facade used by the HTTP handlers and the
// page composer.
type Service struct {
	repo Repository
}

func New(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListServices(ctx context.Context) ([]catalog.Service, error) {
	return s.repo.ListServices(ctx)
}

func (s *Service) GetService(ctx context.Context, slug string) (*catalog.Service, error) {
	svc, err := s.repo.GetServiceBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return svc, nil
}

func (s *Service) ListCities(ctx context.Context) ([]catalog.City, error) {
	return s.repo.ListCities(ctx)
}

func (s *Service) GetCity(ctx context.Context, slug string) (*catalog.City, error) {
	city, err := s.repo.GetCityBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return city, nil
}

func (s *Service) ListTestimonials(ctx context.Context) ([]catalog.Testimonial, error) {
	return s.repo.ListTestimonials(ctx)
}

func (s *Service) ListPortfolio(ctx context.Context) ([]catalog.PortfolioItem, error) {
	return s.repo.ListPortfolio(ctx)
}
