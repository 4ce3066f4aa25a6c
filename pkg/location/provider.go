package location

import "context"

// Provider yields a location fix from one source. Implementations are
// time-bounded through the passed context.
type Provider interface {
	Name() string
	GetLocation(ctx context.Context) (Location, error)
}

// Searcher turns a free-form city/country query into candidate locations for
// manual override.
type Searcher interface {
	Search(ctx context.Context, query string) ([]Candidate, error)
}
