package seed

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pytechdigital/content-api/pkg/logger"
	"github.com/pytechdigital/content-api/pkg/metrics"
)

// collection is the slice of *mongo.Collection the seeder needs, kept small
// so tests can drive it with a fake.
type collection interface {
	CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error)
	InsertMany(ctx context.Context, documents []interface{}, opts ...*options.InsertManyOptions) (*mongo.InsertManyResult, error)
}

// Seeder populates empty reference collections with the built-in seed sets.
// Each collection is guarded by a count check, so re-running against a
// populated store is a no-op. The check-then-insert pair is not atomic across
// processes; run before the listener accepts requests.
type Seeder struct {
	col func(name string) collection
}

func NewSeeder(db *mongo.Database) *Seeder {
	return &Seeder{col: func(name string) collection { return db.Collection(name) }}
}

// Run seeds each empty collection. Individual collection failures are logged
// and the remaining collections are still attempted; Run returns the first
// error so callers can surface it without treating it as fatal.
func (s *Seeder) Run(ctx context.Context) error {
	var firstErr error
	for _, c := range []struct {
		name string
		docs []interface{}
	}{
		{"services", toDocs(Services())},
		{"cities", toDocs(Cities())},
		{"testimonials", toDocs(Testimonials())},
		{"portfolio", toDocs(Portfolio())},
	} {
		if err := seedCollection(ctx, s.col(c.name), c.name, c.docs); err != nil {
			logger.Errorf("seeding %s: %v", c.name, err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func seedCollection(ctx context.Context, col collection, name string, docs []interface{}) error {
	n, err := col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("count %s: %w", name, err)
	}
	if n > 0 {
		return nil
	}
	logger.Infof("Seeding %s...", name)
	if _, err := col.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert %s: %w", name, err)
	}
	metrics.DocumentsSeeded.WithLabelValues(name).Add(float64(len(docs)))
	return nil
}

func toDocs[T any](items []T) []interface{} {
	out := make([]interface{}, len(items))
	for i := range items {
		out[i] = items[i]
	}
	return out
}
