package contact

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/mongo"
)

// Repository defines persistence for contact submissions.
type Repository interface {
	Insert(ctx context.Context, sub *Submission) error
}

// MongoRepository appends submissions to a MongoDB collection.
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Insert(ctx context.Context, sub *Submission) error {
	_, err := r.col.InsertOne(ctx, sub)
	return err
}

// MemoryRepository collects submissions in memory for tests and for running
// without a store.
type MemoryRepository struct {
	mu   sync.Mutex
	subs []Submission
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Insert(ctx context.Context, sub *Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs = append(r.subs, *sub)
	return nil
}

// All returns the stored submissions in insertion order.
func (r *MemoryRepository) All() []Submission {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Submission(nil), r.subs...)
}
