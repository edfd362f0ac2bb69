package ports

import "context"

// CatalogCache is a read-through cache for catalog list responses.
// Get reports a miss with found == false; cache failures are returned so
// callers can fall through to the repository.
type CatalogCache interface {
	Get(ctx context.Context, key string, dest any) (found bool, err error)
	Set(ctx context.Context, key string, value any) error
	Invalidate(ctx context.Context, keys ...string) error
}
