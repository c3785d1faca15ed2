// Package dht implements the remote document store against the local
// DHT daemon's JSON-over-TCP protocol.
//
// Each request opens its own connection, writes one newline-delimited
// JSON envelope and reads one back. A shared token-bucket limiter
// throttles outgoing requests. Transport failures, including
// timeouts, map to domain.ErrRemoteUnavailable; an error envelope on
// a get maps to domain.ErrNotFound, the daemon's confirmation that
// the key holds no record.
package dht
