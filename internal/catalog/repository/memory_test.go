package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pytechdigital/content-api/internal/catalog"
)

func TestMemoryRepo_Lookups(t *testing.T) {
	m := NewMemoryRepo()
	m.Load(
		[]catalog.Service{
			{ID: "1", Name: "Website Design", Slug: "website-design"},
			{ID: "2", Name: "App Development", Slug: "app-development"},
		},
		[]catalog.City{
			{ID: "1", Name: "Mumbai", Slug: "mumbai", State: "Maharashtra", Tier: catalog.TierMetro},
		},
		[]catalog.Testimonial{{ID: "1", ClientName: "A", Rating: 5}},
		[]catalog.PortfolioItem{{ID: "1", Title: "Shop"}},
	)
	ctx := context.Background()

	services, err := m.ListServices(ctx)
	require.NoError(t, err)
	require.Len(t, services, 2)
	// storage order preserved
	require.Equal(t, "website-design", services[0].Slug)

	s, err := m.GetServiceBySlug(ctx, "app-development")
	require.NoError(t, err)
	require.Equal(t, "App Development", s.Name)

	_, err = m.GetServiceBySlug(ctx, "nonexistent")
	require.ErrorIs(t, err, ErrNotFound)

	c, err := m.GetCityBySlug(ctx, "mumbai")
	require.NoError(t, err)
	require.Equal(t, "Maharashtra", c.State)
}

func TestMemoryRepo_EmptyLists(t *testing.T) {
	m := NewMemoryRepo()
	ctx := context.Background()

	services, err := m.ListServices(ctx)
	require.NoError(t, err)
	require.Empty(t, services)

	testimonials, err := m.ListTestimonials(ctx)
	require.NoError(t, err)
	require.Empty(t, testimonials)

	_, err = m.GetCityBySlug(ctx, "mumbai")
	require.ErrorIs(t, err, ErrNotFound)
}
