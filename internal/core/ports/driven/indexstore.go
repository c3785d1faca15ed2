package driven

import (
	"context"

	"github.com/vendra-labs/vendra-cli/internal/core/domain"
)

// IndexStore is the read path over the local secondary index mapping
// (search term, content type) to remote store keys. Backed by SQLite.
//
// The core only reads through this port. Index rows are written by
// the publishing pipeline, outside this core's scope, and removed via
// RemoteStore self-healing, which the index adapter observes.
//
// Any query failure wraps domain.ErrIndexUnavailable: without the
// index no catalog can be built, so callers treat it as fatal.
type IndexStore interface {
	// Lookup returns the distinct keys indexed under exactly term and
	// contentType. Multiple terms may map to one key and one key may
	// appear under multiple terms; the returned slice is deduplicated.
	Lookup(ctx context.Context, term string, contentType domain.ContentType) ([]string, error)

	// LookupExact returns the first key indexed under term, or
	// domain.ErrNotFound when no row matches.
	LookupExact(ctx context.Context, term string, contentType domain.ContentType) (string, error)

	// Search returns distinct keys whose term matches term exactly or
	// by prefix, capped at limit.
	Search(ctx context.Context, term string, contentType domain.ContentType, limit int) ([]string, error)

	// All returns every distinct key of the given content type.
	All(ctx context.Context, contentType domain.ContentType) ([]string, error)

	// CountByTerm returns the number of distinct (term, key) rows
	// indexed under term.
	CountByTerm(ctx context.Context, term string) (int, error)

	// DisplayName resolves a user id to its indexed display name.
	// Returns domain.ErrNotFound when the account has no usable
	// display-name row; callers fall back to the id itself.
	DisplayName(ctx context.Context, userID string) (string, error)
}
