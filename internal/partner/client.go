package partner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"dinarx-gateway/internal/config"

	"golang.org/x/time/rate"
)

// Breaker is the slice of the circuit breaker the client needs. Failures are
// recorded for transport errors and 5xx responses only; a 4xx is the partner
// working correctly.
type Breaker interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
}

// CallMetrics records the outcome of each outbound call.
type CallMetrics interface {
	RecordPartnerCall(call string, statusCode int, duration time.Duration)
}

// Client is the transport layer shared by every partner call. It executes the
// HTTP request with a bounded timeout and classifies the response into a
// typed result. It never catches a failure and substitutes default data; the
// retired sandbox mode that generated synthetic responses must not come back.
type Client struct {
	cfg        *config.PartnerConfig
	httpClient *http.Client
	headers    *HeaderBuilder
	limiter    *rate.Limiter
	breaker    Breaker
	metrics    CallMetrics
	logger     *slog.Logger
}

// ClientOption is a functional option for configuring the client
type ClientOption func(*Client)

// WithHTTPClient overrides the underlying HTTP client (used by tests)
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBreaker attaches a circuit breaker to the outbound path
func WithBreaker(b Breaker) ClientOption {
	return func(c *Client) {
		c.breaker = b
	}
}

// WithMetrics attaches a call metrics recorder
func WithMetrics(m CallMetrics) ClientOption {
	return func(c *Client) {
		c.metrics = m
	}
}

// WithLogger overrides the default logger
func WithLogger(l *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = l
	}
}

// NewClient creates a partner gateway client from immutable configuration.
func NewClient(cfg *config.PartnerConfig, opts ...ClientOption) *Client {
	client := &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		headers: NewHeaderBuilder(cfg),
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.RequestsPerSecond),
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Headers exposes the request context builder, mainly for tests asserting
// per-call header freshness.
func (c *Client) Headers() *HeaderBuilder {
	return c.headers
}

func (c *Client) get(ctx context.Context, kind CallKind, path string, query url.Values, headers RequestHeaders) ([]byte, error) {
	endpoint := c.cfg.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create %s request: %w", kind, err)
	}
	headers.apply(req)

	return c.do(req, kind)
}

func (c *Client) post(ctx context.Context, kind CallKind, path string, headers RequestHeaders, body any) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal %s request body: %w", kind, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create %s request: %w", kind, err)
	}
	headers.apply(req)

	return c.do(req, kind)
}

// do executes one outbound call and classifies the outcome:
// 2xx -> payload, 401/403 -> AuthError, other non-2xx -> PartnerError,
// network/timeout -> TransportError.
func (c *Client) do(req *http.Request, kind CallKind) ([]byte, error) {
	if c.breaker != nil && c.breaker.IsOpen() {
		return nil, &TransportError{Cause: ErrCircuitOpen}
	}

	if err := c.limiter.Wait(req.Context()); err != nil {
		return nil, &TransportError{Cause: err}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.recordFailure()
		c.record(kind, 0, time.Since(start))
		c.logger.Error("partner request failed",
			"call", kind.String(),
			"method", req.Method,
			"url", req.URL.String(),
			"error", err,
		)
		return nil, &TransportError{Cause: err}
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		c.recordFailure()
		c.record(kind, resp.StatusCode, time.Since(start))
		return nil, &TransportError{Cause: fmt.Errorf("read response body: %w", err)}
	}

	c.record(kind, resp.StatusCode, time.Since(start))

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if c.breaker != nil {
			c.breaker.RecordSuccess()
		}
		return body, nil

	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		c.logger.Error("partner rejected credentials",
			"call", kind.String(),
			"status", resp.StatusCode,
		)
		return nil, &AuthError{StatusCode: resp.StatusCode}

	default:
		if resp.StatusCode >= 500 {
			c.recordFailure()
		}
		c.logger.Error("partner call failed",
			"call", kind.String(),
			"status", resp.StatusCode,
			"body", string(body),
		)
		return nil, &PartnerError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
			Call:       kind.String(),
		}
	}
}

func (c *Client) recordFailure() {
	if c.breaker != nil {
		c.breaker.RecordFailure()
	}
}

func (c *Client) record(kind CallKind, status int, duration time.Duration) {
	if c.metrics != nil {
		c.metrics.RecordPartnerCall(kind.String(), status, duration)
	}
}
