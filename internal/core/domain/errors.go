package domain

import "errors"

// Domain errors represent catalog and upload failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrIndexUnavailable indicates the local index cannot be queried.
	// This is fatal for a catalog operation: no catalog can be built
	// without the index.
	ErrIndexUnavailable = errors.New("index unavailable")

	// ErrRemoteUnavailable indicates a remote fetch failed at the
	// transport level (connection refused, timeout). Per-key and
	// non-fatal: the key is skipped and resolution continues.
	ErrRemoteUnavailable = errors.New("remote store unavailable")

	// ErrMalformedDocument indicates a remote document could not be
	// parsed. Per-key and non-fatal.
	ErrMalformedDocument = errors.New("malformed document")

	// ErrMetadataMismatch indicates a document's metadata tag does not
	// match the content type the index entry implied. Treated as
	// corruption: the document is excluded, but the index entry is NOT
	// removed (schema drift is not proof of absence).
	ErrMetadataMismatch = errors.New("metadata mismatch")

	// ErrEmptyPayload indicates a piece-hashing input yielded zero
	// pieces (empty or unreadable source). Fatal to that upload attempt.
	ErrEmptyPayload = errors.New("empty payload")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedCurrency indicates a currency pair has no known
	// price-source mapping.
	ErrUnsupportedCurrency = errors.New("unsupported currency")
)
