// Package dataloader provides per-request DataLoaders that batch lookups made
// while projecting REST responses into single SQL calls. Loaders call
// repositories directly; authorization happens in the service call that
// produced the rows being projected.
package dataloader

import (
	"context"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/editorial-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type userRepo interface {
	GetByIDs(ctx context.Context, ids []int64) ([]domain.User, error)
}

// Repos holds the repositories required by the loaders.
type Repos struct {
	User userRepo
}

// Loaders contains the per-request DataLoaders. Created per request via
// NewLoaders because results are cached for the loader's lifetime.
type Loaders struct {
	UserByID *dataloader.Loader[int64, *domain.User]
}

// NewLoaders creates a new set of DataLoaders backed by repos.
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		UserByID: newLoader(newUserBatchFn(repos.User)),
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[int64, V]) *dataloader.Loader[int64, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[int64, V](wait),
		dataloader.WithBatchCapacity[int64, V](maxBatch),
	)
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is the middleware configured?")
	}
	return l
}
