package repository

import (
	"context"

	"github.com/alexanderramin/fitlog/internal/domain"
)

// BlobStore holds one string value per key. A missing key reports ok=false
// rather than an error.
type BlobStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// WorkoutRepo loads and saves the whole workout history at once.
type WorkoutRepo interface {
	Load(ctx context.Context) (*domain.Collection, error)
	Save(ctx context.Context, c *domain.Collection) error
}
