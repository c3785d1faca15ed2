package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/vendra-labs/vendra-cli/internal/core/domain"
	"github.com/vendra-labs/vendra-cli/internal/core/ports/driven"
)

// indexStore implements driven.IndexStore.
type indexStore struct {
	store *Store
}

var _ driven.IndexStore = (*indexStore)(nil)

// unavailable wraps a query failure as a fatal index error.
func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", domain.ErrIndexUnavailable, op, err)
}

// Lookup returns the distinct keys indexed under exactly term and
// contentType.
func (s *indexStore) Lookup(ctx context.Context, term string, contentType domain.ContentType) ([]string, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT DISTINCT key FROM mappings
		WHERE search_term = ? AND content = ?
	`, term, contentType.String())
	if err != nil {
		return nil, unavailable("lookup", err)
	}
	defer rows.Close()

	return collectKeys(rows, "lookup")
}

// LookupExact returns the first key indexed under term.
func (s *indexStore) LookupExact(ctx context.Context, term string, contentType domain.ContentType) (string, error) {
	var key string
	err := s.store.db.QueryRowContext(ctx, `
		SELECT key FROM mappings
		WHERE search_term = ? AND content = ?
		LIMIT 1
	`, term, contentType.String()).Scan(&key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.ErrNotFound
	}
	if err != nil {
		return "", unavailable("lookup exact", err)
	}
	return key, nil
}

// Search returns distinct keys whose term matches term exactly or by
// prefix, capped at limit.
func (s *indexStore) Search(ctx context.Context, term string, contentType domain.ContentType, limit int) ([]string, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT DISTINCT key FROM mappings
		WHERE (search_term = ? OR search_term LIKE ? ESCAPE '\')
		  AND content = ?
		LIMIT ?
	`, term, escapeLike(term)+"%", contentType.String(), limit)
	if err != nil {
		return nil, unavailable("search", err)
	}
	defer rows.Close()

	return collectKeys(rows, "search")
}

// All returns every distinct key of the given content type.
func (s *indexStore) All(ctx context.Context, contentType domain.ContentType) ([]string, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT DISTINCT key FROM mappings
		WHERE content = ?
	`, contentType.String())
	if err != nil {
		return nil, unavailable("all", err)
	}
	defer rows.Close()

	return collectKeys(rows, "all")
}

// CountByTerm returns the number of distinct keys indexed under term.
func (s *indexStore) CountByTerm(ctx context.Context, term string) (int, error) {
	var count int
	err := s.store.db.QueryRowContext(ctx, `
		SELECT COUNT(DISTINCT key) FROM mappings
		WHERE search_term = ?
	`, term).Scan(&count)
	if err != nil {
		return 0, unavailable("count", err)
	}
	return count, nil
}

// DisplayName resolves a user id to its indexed display name. A user
// key is indexed under both the account id and the display name; the
// display name is whichever term for that key is not the id itself.
func (s *indexStore) DisplayName(ctx context.Context, userID string) (string, error) {
	var name string
	err := s.store.db.QueryRowContext(ctx, `
		SELECT search_term FROM mappings
		WHERE content = ?
		  AND search_term != ?
		  AND key IN (
			SELECT key FROM mappings
			WHERE search_term = ? AND content = ?
		  )
		LIMIT 1
	`, domain.ContentUser.String(), userID, userID, domain.ContentUser.String()).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.ErrNotFound
	}
	if err != nil {
		return "", unavailable("display name", err)
	}
	return name, nil
}

// collectKeys drains a single-column key result set.
func collectKeys(rows *sql.Rows, op string) ([]string, error) {
	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, unavailable(op, err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable(op, err)
	}
	return keys, nil
}

// escapeLike escapes LIKE metacharacters in a user-supplied term.
func escapeLike(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(term)
}
