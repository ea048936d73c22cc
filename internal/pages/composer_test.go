package pages

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pytechdigital/content-api/internal/catalog/repository"
	"github.com/pytechdigital/content-api/internal/catalog/service"
	"github.com/pytechdigital/content-api/internal/seed"
)

var testBrand = Brand{Name: "PyTech Digital", Phone: "+91 9205 222 170"}

func newSeededComposer() *Composer {
	repo := repository.NewMemoryRepo()
	repo.Load(seed.Services(), seed.Cities(), seed.Testimonials(), seed.Portfolio())
	return NewComposer(service.New(repo), testBrand)
}

func TestComposePage_Metadata(t *testing.T) {
	c := newSeededComposer()

	page, err := c.ComposePage(context.Background(), "website-design", "mumbai")
	require.NoError(t, err)

	require.Equal(t, "Website Design Company in Mumbai | PyTech Digital", page.MetaTitle)
	require.Equal(t,
		"Professional Website Design services in Mumbai. PyTech Digital offers expert website design solutions. Contact us: +91 9205 222 170",
		page.MetaDescription)

	require.Len(t, page.Keywords, 5)
	for _, kw := range page.Keywords {
		require.Contains(t, kw, "website design")
	}
	// four of the five phrases are city-specific; "near me" is not
	cityMentions := 0
	for _, kw := range page.Keywords {
		if strings.Contains(kw, "mumbai") {
			cityMentions++
		}
	}
	require.Equal(t, 4, cityMentions)

	require.Equal(t, "website-design", page.Service.Slug)
	require.Equal(t, "mumbai", page.City.Slug)
}

func TestComposePage_NotFound(t *testing.T) {
	c := newSeededComposer()
	ctx := context.Background()

	_, err := c.ComposePage(ctx, "bad-slug", "mumbai")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = c.ComposePage(ctx, "website-design", "bad-slug")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = c.ComposePage(ctx, "bad-slug", "bad-slug")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSitemapEntries_CrossProduct(t *testing.T) {
	c := newSeededComposer()

	urls, err := c.SitemapEntries(context.Background())
	require.NoError(t, err)

	services := seed.Services()
	cities := seed.Cities()
	require.Len(t, urls, len(services)*len(cities))
	require.Len(t, urls, 450)

	// nested iteration: all cities for the first service, in storage order
	require.Equal(t, "/"+services[0].Slug+"/"+cities[0].Slug, urls[0].URL)
	require.Equal(t, services[0].Name, urls[0].Service)
	require.Equal(t, cities[0].Name, urls[0].City)
	require.Equal(t, "/"+services[0].Slug+"/"+cities[len(cities)-1].Slug, urls[len(cities)-1].URL)
	require.Equal(t, "/"+services[1].Slug+"/"+cities[0].Slug, urls[len(cities)].URL)
}
