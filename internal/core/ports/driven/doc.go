// Package driven defines the outbound ports of the hexagonal
// architecture: contracts the core services require from
// infrastructure collaborators (remote store, local index, config,
// price source). Adapters under internal/adapters/driven implement
// these interfaces.
package driven
