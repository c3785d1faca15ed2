// Package driving defines the inbound ports of the hexagonal
// architecture: the use-case interfaces the CLI (and any future
// surface) calls into. Services under internal/core/services
// implement these interfaces.
package driving
