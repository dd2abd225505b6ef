package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/fitlog/internal/codec"
	"github.com/alexanderramin/fitlog/internal/domain"
)

// BlobWorkoutRepo stores the workout history as one JSON array under
// codec.StorageKey.
type BlobWorkoutRepo struct {
	store BlobStore
}

// NewBlobWorkoutRepo creates a WorkoutRepo over any BlobStore.
func NewBlobWorkoutRepo(store BlobStore) *BlobWorkoutRepo {
	return &BlobWorkoutRepo{store: store}
}

// Load returns the stored history. A missing or empty blob is an empty
// collection. Elements that are not workout objects are dropped.
func (r *BlobWorkoutRepo) Load(ctx context.Context) (*domain.Collection, error) {
	blob, ok, err := r.store.Get(ctx, codec.StorageKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &domain.Collection{}, nil
	}
	col, _, err := codec.DecodeCollection(blob)
	if err != nil {
		return nil, fmt.Errorf("loading workouts: %w", err)
	}
	return col, nil
}

// Save replaces the stored history with c.
func (r *BlobWorkoutRepo) Save(ctx context.Context, c *domain.Collection) error {
	blob, err := codec.Encode(c.All())
	if err != nil {
		return fmt.Errorf("saving workouts: %w", err)
	}
	return r.store.Set(ctx, codec.StorageKey, blob)
}
