package edenapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	// DefaultBaseURL is used when no API URL is configured.
	DefaultBaseURL = "https://api.edenhub.net"

	defaultTimeout = 15 * time.Second
	maxBodyBytes   = 4 << 20
)

// Config holds the API client settings.
type Config struct {
	BaseURL string
	Timeout time.Duration
	// HTTPClient overrides the instrumented default client; tests use it.
	HTTPClient *http.Client
}

// Client calls the Eden REST API on behalf of the browser session carried in the context.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	tracer     trace.Tracer
	metrics    *Metrics
}

// NewClient creates a new API client.
func NewClient(cfg Config, logger *slog.Logger, tracer trace.Tracer, metrics *Metrics) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("edenapi")
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger,
		tracer:     tracer,
		metrics:    metrics,
	}
}

// BaseURL returns the API base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// request describes one API call. route is the low-cardinality endpoint label.
type request struct {
	method string
	path   string
	route  string
	body   any
}

// send performs the request and returns the raw success body.
// Non-2xx responses and transport failures come back as *Error.
func (c *Client) send(ctx context.Context, r request) ([]byte, error) {
	ctx, span := c.tracer.Start(ctx, "EdenAPI "+r.method+" "+r.route)
	defer span.End()

	var payload io.Reader
	if r.body != nil {
		encoded, err := json.Marshal(r.body)
		if err != nil {
			return nil, &Error{Message: fmt.Sprintf("failed to encode request: %v", err)}
		}
		payload = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, c.baseURL+r.path, payload)
	if err != nil {
		return nil, &Error{Message: fmt.Sprintf("failed to build request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token, ok := SessionFrom(ctx); ok {
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.observe(r.method, r.route, 0, time.Since(start))
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport failure")
		c.logger.WarnContext(ctx, "Eden API request failed",
			slog.String("method", r.method),
			slog.String("endpoint", r.route),
			slog.String("error", err.Error()),
		)
		return nil, &Error{Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	elapsed := time.Since(start)
	c.metrics.observe(r.method, r.route, resp.StatusCode, elapsed)
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	c.logger.DebugContext(ctx, "Eden API request",
		slog.String("method", r.method),
		slog.String("endpoint", r.route),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", elapsed),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newStatusError(resp.StatusCode)
		var body struct {
			Message string `json:"message"`
		}
		if readErr == nil && json.Unmarshal(raw, &body) == nil && body.Message != "" {
			apiErr.Message = body.Message
		}
		span.SetStatus(codes.Error, apiErr.Message)
		return nil, apiErr
	}

	if resp.StatusCode == http.StatusNoContent || readErr != nil {
		return nil, nil
	}
	return raw, nil
}

// call performs the request and decodes a JSON success body into T.
// Empty or unparseable bodies resolve to the zero value.
func call[T any](ctx context.Context, c *Client, r request) (T, error) {
	var zero T

	raw, err := c.send(ctx, r)
	if err != nil {
		return zero, err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return zero, nil
	}

	var decoded T
	if err := json.Unmarshal(raw, &decoded); err != nil {
		c.logger.WarnContext(ctx, "Eden API returned an unparseable body",
			slog.String("endpoint", r.route),
			slog.String("error", err.Error()),
		)
		return zero, nil
	}
	return decoded, nil
}

// exec performs the request and discards any success body.
func exec(ctx context.Context, c *Client, r request) error {
	_, err := c.send(ctx, r)
	return err
}
