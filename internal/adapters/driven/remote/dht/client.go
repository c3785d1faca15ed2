package dht

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"time"

	"golang.org/x/time/rate"

	"github.com/vendra-labs/vendra-cli/internal/core/domain"
	"github.com/vendra-labs/vendra-cli/internal/core/ports/driven"
	"github.com/vendra-labs/vendra-cli/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.RemoteStore = (*Client)(nil)

const (
	// DefaultAddress is the local daemon endpoint.
	DefaultAddress = "127.0.0.1:50881"

	// DefaultTimeout bounds dial plus one round trip.
	DefaultTimeout = 5 * time.Second

	// Throttle defaults, shared across all in-flight requests.
	defaultRequestsPerSecond = 20.0
	defaultBurstSize         = 40
)

// Pruner receives the keys this client removes, so the local index
// can drop its rows for self-healed keys.
type Pruner interface {
	DeleteKey(ctx context.Context, key string) error
}

// request is the envelope written to the daemon.
type request struct {
	Query string   `json:"query"`
	Args  []string `json:"args"`
}

// response is the envelope read back. Exactly one of Response and
// Error is set.
type response struct {
	Response *struct {
		Value *string `json:"value"`
	} `json:"response"`
	Error json.RawMessage `json:"error"`
}

// Client is a JSON-over-TCP client for the local DHT daemon.
type Client struct {
	address string
	timeout time.Duration
	limiter *rate.Limiter
	pruner  Pruner
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout bounds each request (dial plus round trip).
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithRateLimit overrides the request throttle.
func WithRateLimit(requestsPerSecond float64, burst int) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), burst)
	}
}

// WithPruner attaches an index pruner notified after a successful
// Remove.
func WithPruner(p Pruner) Option {
	return func(c *Client) {
		c.pruner = p
	}
}

// NewClient creates a client for the daemon at address. An empty
// address selects DefaultAddress.
func NewClient(address string, opts ...Option) *Client {
	if address == "" {
		address = DefaultAddress
	}
	c := &Client{
		address: address,
		timeout: DefaultTimeout,
		limiter: rate.NewLimiter(rate.Limit(defaultRequestsPerSecond), defaultBurstSize),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the record stored under key. An error envelope from the
// daemon is the confirmation the key holds nothing and maps to
// domain.ErrNotFound.
func (c *Client) Get(ctx context.Context, key string) (driven.FetchResult, error) {
	resp, err := c.roundTrip(ctx, request{Query: "get", Args: []string{key}})
	if err != nil {
		return driven.FetchResult{}, err
	}
	if resp.Error != nil {
		logger.Debug("Daemon reports %s missing: %s", key, resp.Error)
		return driven.FetchResult{}, domain.ErrNotFound
	}
	if resp.Response == nil || resp.Response.Value == nil {
		return driven.FetchResult{}, nil
	}
	return driven.FetchResult{Value: *resp.Response.Value, HasValue: true}, nil
}

// Put stores value under key.
func (c *Client) Put(ctx context.Context, key, value string) error {
	resp, err := c.roundTrip(ctx, request{Query: "put", Args: []string{key, value}})
	if err != nil {
		return err
	}
	if resp.Error != nil {
		return fmt.Errorf("%w: put %s: %s", domain.ErrRemoteUnavailable, key, resp.Error)
	}
	return nil
}

// Remove deletes the record stored under key and prunes the local
// index, if a pruner is attached.
func (c *Client) Remove(ctx context.Context, key string) error {
	resp, err := c.roundTrip(ctx, request{Query: "remove", Args: []string{key}})
	if err != nil {
		return err
	}
	if resp.Error != nil {
		return fmt.Errorf("%w: remove %s: %s", domain.ErrRemoteUnavailable, key, resp.Error)
	}
	if c.pruner != nil {
		if err := c.pruner.DeleteKey(ctx, key); err != nil {
			return fmt.Errorf("pruning index rows for %s: %w", key, err)
		}
	}
	return nil
}

// roundTrip performs one request over a fresh connection.
func (c *Client) roundTrip(ctx context.Context, req request) (*response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRemoteUnavailable, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", c.address)
	if err != nil {
		return nil, fmt.Errorf("%w: dialing daemon at %s: %v", domain.ErrRemoteUnavailable, c.address, err)
	}
	defer conn.Close()

	deadline, ok := ctx.Deadline()
	if ok {
		if err := conn.SetDeadline(deadline); err != nil {
			return nil, fmt.Errorf("%w: setting deadline: %v", domain.ErrRemoteUnavailable, err)
		}
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encoding %s request: %w", req.Query, err)
	}
	payload = append(payload, '\n')
	if _, err := conn.Write(payload); err != nil {
		return nil, fmt.Errorf("%w: writing %s request: %v", domain.ErrRemoteUnavailable, req.Query, err)
	}

	line, err := bufio.NewReader(conn).ReadBytes('\n')
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s response: %v", domain.ErrRemoteUnavailable, req.Query, err)
	}

	var resp response
	if err := json.Unmarshal(line, &resp); err != nil {
		return nil, fmt.Errorf("%w: decoding %s response: %v", domain.ErrRemoteUnavailable, req.Query, err)
	}
	return &resp, nil
}
