package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pytechdigital/content-api/internal/catalog"
)

// Listing caps. The catalog is small and unpaginated; the caps only bound a
// runaway collection.
const (
	maxServices     = 100
	maxCities       = 1000
	maxTestimonials = 100
	maxPortfolio    = 100
)

// MongoRepo implements the catalog over one MongoDB collection per entity
// type. Documents carry an application-assigned "id" field; slugs are the
// lookup key for services and cities.
type MongoRepo struct {
	services     *mongo.Collection
	cities       *mongo.Collection
	testimonials *mongo.Collection
	portfolio    *mongo.Collection
}

func NewMongoRepo(db *mongo.Database) *MongoRepo {
	r := &MongoRepo{
		services:     db.Collection("services"),
		cities:       db.Collection("cities"),
		testimonials: db.Collection("testimonials"),
		portfolio:    db.Collection("portfolio"),
	}
	// slug is the stable lookup key; enforce uniqueness where it matters
	idx := mongo.IndexModel{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)}
	r.services.Indexes().CreateOne(context.Background(), idx)
	r.cities.Indexes().CreateOne(context.Background(), idx)
	return r
}

func (r *MongoRepo) ListServices(ctx context.Context) ([]catalog.Service, error) {
	out := []catalog.Service{}
	if err := findAll(ctx, r.services, maxServices, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MongoRepo) GetServiceBySlug(ctx context.Context, slug string) (*catalog.Service, error) {
	var s catalog.Service
	if err := r.services.FindOne(ctx, bson.M{"slug": slug}).Decode(&s); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *MongoRepo) ListCities(ctx context.Context) ([]catalog.City, error) {
	out := []catalog.City{}
	if err := findAll(ctx, r.cities, maxCities, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MongoRepo) GetCityBySlug(ctx context.Context, slug string) (*catalog.City, error) {
	var c catalog.City
	if err := r.cities.FindOne(ctx, bson.M{"slug": slug}).Decode(&c); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *MongoRepo) ListTestimonials(ctx context.Context) ([]catalog.Testimonial, error) {
	out := []catalog.Testimonial{}
	if err := findAll(ctx, r.testimonials, maxTestimonials, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MongoRepo) ListPortfolio(ctx context.Context) ([]catalog.PortfolioItem, error) {
	out := []catalog.PortfolioItem{}
	if err := findAll(ctx, r.portfolio, maxPortfolio, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// findAll reads up to limit documents in natural (storage) order into dest,
// which must be a pointer to a slice of the entity type.
func findAll(ctx context.Context, col *mongo.Collection, limit int64, dest interface{}) error {
	cur, err := col.Find(ctx, bson.M{}, options.Find().SetLimit(limit))
	if err != nil {
		return err
	}
	defer cur.Close(ctx)
	return cur.All(ctx, dest)
}
