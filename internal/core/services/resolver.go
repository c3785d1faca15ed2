package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/vendra-labs/vendra-cli/internal/core/domain"
	"github.com/vendra-labs/vendra-cli/internal/core/ports/driven"
	"github.com/vendra-labs/vendra-cli/internal/core/ports/driving"
	"github.com/vendra-labs/vendra-cli/internal/logger"
)

// Ensure Resolver implements the interface.
var _ driving.CatalogService = (*Resolver)(nil)

// DefaultMaxSearchResults caps search-style index queries when the
// config does not override it.
const DefaultMaxSearchResults = 50

// DefaultFetchWorkers bounds concurrent remote fetches per call.
const DefaultFetchWorkers = 8

// Outcome records the per-key result of a resolution pass. Failed
// keys stay in the outcome list so callers can see what degraded; the
// view slice only carries the successes.
type Outcome struct {
	// Key is the remote key the outcome belongs to.
	Key string

	// Err is nil for a resolved view, otherwise the per-key failure
	// (ErrNotFound, ErrRemoteUnavailable, ErrMalformedDocument,
	// ErrMetadataMismatch).
	Err error
}

// Resolver turns index entries into validated typed views, tolerating
// remote inconsistency: confirmed-missing keys are self-healed out of
// the index via the remote store, all other per-key failures are
// skipped without removal.
type Resolver struct {
	index     driven.IndexStore
	remote    driven.RemoteStore
	assembler *Assembler
	workers   int
	maxSearch int
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithFetchWorkers bounds concurrent remote fetches.
func WithFetchWorkers(n int) ResolverOption {
	return func(r *Resolver) {
		if n > 0 {
			r.workers = n
		}
	}
}

// WithMaxSearchResults caps search-style index queries.
func WithMaxSearchResults(n int) ResolverOption {
	return func(r *Resolver) {
		if n > 0 {
			r.maxSearch = n
		}
	}
}

// NewResolver creates a resolver over the given index and remote
// store. The assembler applies the content-policy filter to listing
// results; pass an assembler with an empty restricted category to
// disable filtering.
func NewResolver(index driven.IndexStore, remote driven.RemoteStore, assembler *Assembler, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		index:     index,
		remote:    remote,
		assembler: assembler,
		workers:   DefaultFetchWorkers,
		maxSearch: DefaultMaxSearchResults,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// fetched is the per-key result of the fan-out fetch phase.
type fetched struct {
	result driven.FetchResult
	err    error
}

// fetchAll retrieves every key over a bounded worker pool. Each
// worker writes only its own slot, so output order always follows the
// index enumeration order regardless of completion order.
func (r *Resolver) fetchAll(ctx context.Context, keys []string) []fetched {
	results := make([]fetched, len(keys))
	workers := r.workers
	if workers > len(keys) {
		workers = len(keys)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				res, err := r.remote.Get(ctx, keys[i])
				results[i] = fetched{result: res, err: err}
			}
		}()
	}
	for i := range keys {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}

// selfHeal removes a dangling index pointer via the remote store.
// Best-effort: a failed remove is logged and retried naturally on the
// next resolution pass.
func (r *Resolver) selfHeal(ctx context.Context, key string) {
	logger.Info("Self-healing: removing dangling key %s", key)
	if err := r.remote.Remove(ctx, key); err != nil {
		logger.Error("Self-healing remove failed for %s: %v", key, err)
	}
}

// resolveKeys fetches, validates and projects every key into a typed
// view. Per-key failures are collected as outcomes and never abort
// the pass; only an unavailable index (detected by the caller) is
// fatal.
func resolveKeys[T any](
	ctx context.Context,
	r *Resolver,
	keys []string,
	project func(key, raw string) (T, error),
) ([]T, []Outcome) {
	if len(keys) == 0 {
		return nil, nil
	}

	logger.Debug("Resolving %d keys", len(keys))
	results := r.fetchAll(ctx, keys)

	views := make([]T, 0, len(keys))
	outcomes := make([]Outcome, 0, len(keys))
	for i, key := range keys {
		outcome := Outcome{Key: key}

		switch {
		case results[i].err != nil && errors.Is(results[i].err, domain.ErrNotFound):
			// The remote store confirmed the key absent: purge the
			// dangling index pointer and move on.
			r.selfHeal(ctx, key)
			outcome.Err = results[i].err

		case results[i].err != nil:
			// Transport failure. The key may still exist remotely,
			// so no removal; degrade gracefully.
			logger.Warn("Fetch failed for %s: %v", key, results[i].err)
			outcome.Err = results[i].err

		case !results[i].result.HasValue:
			// The record exists but carries no value. Not proof of
			// corruption, only of this record lacking the optional
			// field; skip without removal.
			logger.Debug("Key %s has no value, skipping", key)
			outcome.Err = fmt.Errorf("%w: record has no value", domain.ErrMalformedDocument)

		default:
			view, err := project(key, results[i].result.Value)
			if err != nil {
				// Mismatched metadata or a malformed document is
				// never grounds for removal: schema drift is not a
				// confirmed absence.
				logger.Warn("Rejecting %s: %v", key, err)
				outcome.Err = err
			} else {
				views = append(views, view)
			}
		}

		outcomes = append(outcomes, outcome)
	}

	logger.Debug("Resolved %d of %d keys", len(views), len(keys))
	return views, outcomes
}

// resolveListings resolves listing keys and applies the content
// policy filter.
func (r *Resolver) resolveListings(ctx context.Context, keys []string) ([]domain.Listing, error) {
	listings, _ := resolveKeys(ctx, r, keys, ProjectListing)
	if r.assembler != nil {
		listings = r.assembler.Filter(listings)
	}
	return listings, nil
}

// ListingsBySearchTerm resolves listings matching term exactly or by
// prefix, bounded by the configured result cap.
func (r *Resolver) ListingsBySearchTerm(ctx context.Context, term string) ([]domain.Listing, error) {
	logger.Section("Search Resolution")
	keys, err := r.index.Search(ctx, term, domain.ContentListing, r.maxSearch)
	if err != nil {
		return nil, fmt.Errorf("index search %q: %w", term, err)
	}
	return r.resolveListings(ctx, keys)
}

// ListingsByCategory resolves listings indexed under the named
// category.
func (r *Resolver) ListingsByCategory(ctx context.Context, categoryID int) ([]domain.Listing, error) {
	category, ok := domain.CategoryByID(categoryID)
	if !ok {
		return nil, fmt.Errorf("%w: category id %d", domain.ErrInvalidInput, categoryID)
	}

	keys, err := r.index.Lookup(ctx, category.Name, domain.ContentListing)
	if err != nil {
		return nil, fmt.Errorf("index lookup category %q: %w", category.Name, err)
	}
	return r.resolveListings(ctx, keys)
}

// Listings resolves every indexed listing.
func (r *Resolver) Listings(ctx context.Context) ([]domain.Listing, error) {
	keys, err := r.index.All(ctx, domain.ContentListing)
	if err != nil {
		return nil, fmt.Errorf("index all listings: %w", err)
	}
	return r.resolveListings(ctx, keys)
}

// ListingsByMostRecent resolves all listings, newest first, capped at
// limit.
func (r *Resolver) ListingsByMostRecent(ctx context.Context, limit int) ([]domain.Listing, error) {
	listings, err := r.Listings(ctx)
	if err != nil {
		return nil, err
	}
	if r.assembler != nil {
		listings = r.assembler.SortBy(listings, domain.SortByMostRecent)
	}
	return Limit(listings, limit), nil
}

// Inventory resolves the listings published by a seller.
func (r *Resolver) Inventory(ctx context.Context, userID string) ([]domain.Listing, error) {
	keys, err := r.index.Lookup(ctx, userID, domain.ContentListing)
	if err != nil {
		return nil, fmt.Errorf("index lookup inventory %q: %w", userID, err)
	}
	return r.resolveListings(ctx, keys)
}

// User resolves a single account document.
func (r *Resolver) User(ctx context.Context, userID string) (*domain.User, error) {
	key, err := r.index.LookupExact(ctx, userID, domain.ContentUser)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("index lookup user %q: %w", userID, err)
	}

	users, _ := resolveKeys(ctx, r, []string{key}, ProjectUser)
	if len(users) == 0 {
		return nil, domain.ErrNotFound
	}
	return &users[0], nil
}

// ProductRatings resolves the ratings left on a product.
func (r *Resolver) ProductRatings(ctx context.Context, productID string) ([]domain.ProductRating, error) {
	keys, err := r.index.Lookup(ctx, productID, domain.ContentProductRating)
	if err != nil {
		return nil, fmt.Errorf("index lookup product ratings %q: %w", productID, err)
	}
	ratings, _ := resolveKeys(ctx, r, keys, ProjectProductRating)
	return ratings, nil
}

// SellerRatings resolves the ratings left on a seller.
func (r *Resolver) SellerRatings(ctx context.Context, userID string) ([]domain.SellerRating, error) {
	keys, err := r.index.Lookup(ctx, userID, domain.ContentSellerRating)
	if err != nil {
		return nil, fmt.Errorf("index lookup seller ratings %q: %w", userID, err)
	}
	ratings, _ := resolveKeys(ctx, r, keys, ProjectSellerRating)
	return ratings, nil
}

// StockAvailable reports the quantity of a resolved listing, 0 when
// the listing cannot be resolved.
func (r *Resolver) StockAvailable(ctx context.Context, productID string) (int, error) {
	key, err := r.index.LookupExact(ctx, productID, domain.ContentListing)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("index lookup stock %q: %w", productID, err)
	}

	listings, _ := resolveKeys(ctx, r, []string{key}, ProjectListing)
	if len(listings) == 0 {
		return 0, nil
	}
	return listings[0].Quantity, nil
}

// DisplayName resolves a user id to its indexed display name. An
// account without a usable display name resolves to the id itself:
// an empty name usually means the user never set one, so the index
// entry must not be pruned for it.
func (r *Resolver) DisplayName(ctx context.Context, userID string) (string, error) {
	name, err := r.index.DisplayName(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return userID, nil
		}
		return "", fmt.Errorf("index display name %q: %w", userID, err)
	}
	if name == "" {
		return userID, nil
	}
	return name, nil
}

// CategoryProductCount counts the index entries under a category.
func (r *Resolver) CategoryProductCount(ctx context.Context, categoryID int) (int, error) {
	category, ok := domain.CategoryByID(categoryID)
	if !ok {
		return 0, fmt.Errorf("%w: category id %d", domain.ErrInvalidInput, categoryID)
	}

	count, err := r.index.CountByTerm(ctx, category.Name)
	if err != nil {
		return 0, fmt.Errorf("index count %q: %w", category.Name, err)
	}
	return count, nil
}
