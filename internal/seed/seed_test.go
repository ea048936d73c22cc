package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type fakeCollection struct {
	count     int64
	countErr  error
	insertErr error
	inserted  [][]interface{}
}

func (f *fakeCollection) CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
	return f.count, f.countErr
}

func (f *fakeCollection) InsertMany(ctx context.Context, documents []interface{}, opts ...*options.InsertManyOptions) (*mongo.InsertManyResult, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	f.inserted = append(f.inserted, documents)
	return &mongo.InsertManyResult{}, nil
}

func newFakeSeeder() (*Seeder, map[string]*fakeCollection) {
	cols := map[string]*fakeCollection{
		"services":     {},
		"cities":       {},
		"testimonials": {},
		"portfolio":    {},
	}
	return &Seeder{col: func(name string) collection { return cols[name] }}, cols
}

func TestRun_SeedsEmptyCollections(t *testing.T) {
	s, cols := newFakeSeeder()

	require.NoError(t, s.Run(context.Background()))

	require.Len(t, cols["services"].inserted, 1)
	require.Len(t, cols["services"].inserted[0], 9)
	require.Len(t, cols["cities"].inserted, 1)
	require.Len(t, cols["cities"].inserted[0], 50)
	require.Len(t, cols["testimonials"].inserted, 1)
	require.Len(t, cols["testimonials"].inserted[0], 5)
	require.Len(t, cols["portfolio"].inserted, 1)
	require.Len(t, cols["portfolio"].inserted[0], 4)
}

func TestRun_SkipsPopulatedCollections(t *testing.T) {
	s, cols := newFakeSeeder()
	cols["services"].count = 9
	cols["cities"].count = 1

	require.NoError(t, s.Run(context.Background()))

	// collections with >=1 document are left untouched
	require.Empty(t, cols["services"].inserted)
	require.Empty(t, cols["cities"].inserted)
	require.Len(t, cols["testimonials"].inserted, 1)
	require.Len(t, cols["portfolio"].inserted, 1)
}

func TestRun_Rerun_NoDoubleInsert(t *testing.T) {
	s, cols := newFakeSeeder()

	require.NoError(t, s.Run(context.Background()))
	// simulate the store now holding the seeded documents
	for _, c := range cols {
		c.count = int64(len(c.inserted[0]))
	}
	require.NoError(t, s.Run(context.Background()))

	for name, c := range cols {
		require.Len(t, c.inserted, 1, "collection %s seeded twice", name)
	}
}

func TestRun_FailureDoesNotStopOthers(t *testing.T) {
	s, cols := newFakeSeeder()
	countErr := errors.New("count failed")
	insertErr := errors.New("insert failed")
	cols["services"].countErr = countErr
	cols["testimonials"].insertErr = insertErr

	err := s.Run(context.Background())
	// first failure is returned, remaining collections were still attempted
	require.ErrorIs(t, err, countErr)
	require.Len(t, cols["cities"].inserted, 1)
	require.Empty(t, cols["testimonials"].inserted)
	require.Len(t, cols["portfolio"].inserted, 1)
}
