package repository

import (
	"context"

	"github.com/transit-backoffice/internal/domain"
)

// MapRepository provides the read path for the public map.
type MapRepository interface {
	// FetchSnapshot loads services, stops, lanes, routes and zones in a
	// single read-only transaction. Every collection is filtered to
	// active, non-deleted rows and ordered by creation time; nested
	// relations apply the same filter independently. The fetch is
	// all-or-nothing: any query error fails the whole snapshot.
	FetchSnapshot(ctx context.Context) (*domain.MapSnapshot, error)
}
