// Package memory provides in-memory implementations of the driven
// storage ports for unit tests and offline demos. Semantics mirror
// the real adapters, including ErrNotFound behaviour.
package memory
