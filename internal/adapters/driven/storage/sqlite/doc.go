// Package sqlite implements the local secondary index over a SQLite
// mappings table.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation
// that requires no CGO, enabling easy cross-compilation. Each row maps a
// search term to a remote store key tagged with a content type; one key
// may be indexed under many terms and one term may point at many keys,
// so every read deduplicates with DISTINCT.
//
// The core reads through driven.IndexStore only. The write path
// (Put/DeleteKey) lives on Store directly for the publishing pipeline,
// the remote adapter's self-heal pruning and tests.
//
// # Schema
//
// The schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and
// .down.sql files.
//
// # Data Location
//
// By default, the database is stored at ~/.vendra/data/catalog.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking
// provided by SQLite in WAL mode.
package sqlite
