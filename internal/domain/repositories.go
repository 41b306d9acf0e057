package domain

import "context"

// CatalogRepository is the remote store behind the local library. Each call
// maps to one request against the collection resource; calls are independent
// and never retried.
type CatalogRepository interface {
	// List returns the full collection
	List(ctx context.Context) ([]Movie, error)

	// Create adds a new movie and returns the server's representation,
	// including the assigned ID
	Create(ctx context.Context, draft Draft) (Movie, error)

	// Update applies a partial change and returns the merged movie
	Update(ctx context.Context, id string, patch FieldPatch) (Movie, error)

	// Delete removes a movie; no payload is expected back
	Delete(ctx context.Context, id string) error
}
