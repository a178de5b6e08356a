package hltv

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/riskibarqy/hltv-api/internal/platform/logging"
	"github.com/riskibarqy/hltv-api/internal/platform/resilience"
	"github.com/riskibarqy/hltv-api/internal/usecase"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/singleflight"
)

const (
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"
	defaultTimeout   = 10 * time.Second
)

var errTransient = errors.New("hltv transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	UserAgent      string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.BreakerConfig
}

// Client downloads raw documents from the stats site.
type Client struct {
	http    *resty.Client
	logger  *logging.Logger
	breaker *resilience.Breaker
	flight  singleflight.Group
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	rc := resty.NewWithClient(httpClient).
		SetHeader("user-agent", userAgent).
		SetTimeout(timeout).
		SetRetryCount(max(cfg.MaxRetries, 0)).
		SetRetryWaitTime(500 * time.Millisecond).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			return isRetryableStatus(resp.StatusCode())
		})

	breakerCfg := cfg.CircuitBreaker
	breakerCfg.IsFailure = isCircuitFailure

	return &Client{
		http:    rc,
		logger:  logger,
		breaker: resilience.NewBreaker(breakerCfg),
	}
}

// Fetch returns the body of a successful GET on rawURL. Concurrent calls
// for the same URL share one request. The shared request ignores caller
// cancellation and is bounded by the client timeout; each caller stops
// waiting when its own ctx is done.
func (c *Client) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	detached := context.WithoutCancel(ctx)
	ch := c.flight.DoChan(rawURL, func() (any, error) {
		var body []byte
		execErr := c.breaker.Execute(func() error {
			var reqErr error
			body, reqErr = c.get(detached, rawURL)
			return reqErr
		})
		return body, execErr
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %w", usecase.ErrUpstreamFetch, ctx.Err())
	case res = <-ch:
	}

	if errors.Is(res.Err, resilience.ErrCircuitOpen) {
		c.logger.WarnContext(ctx, "hltv circuit breaker rejected request", "url", rawURL, "state", c.breaker.State())
		return nil, fmt.Errorf("%w: hltv is temporarily unavailable", usecase.ErrDependencyUnavailable)
	}
	if res.Err != nil {
		return nil, res.Err
	}
	if res.Shared {
		c.logger.DebugContext(ctx, "hltv request shared", "url", rawURL)
	}

	raw, ok := res.Val.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected response payload type %T", res.Val)
	}
	return raw, nil
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	started := time.Now()
	resp, err := c.http.R().SetContext(ctx).Get(rawURL)
	if err != nil {
		c.logger.WarnContext(ctx, "hltv request failed", "url", rawURL, "error", err)
		return nil, fmt.Errorf("%w: %w: send request: %v", usecase.ErrUpstreamFetch, errTransient, err)
	}

	status := resp.StatusCode()
	c.logger.DebugContext(ctx, "hltv request",
		"url", rawURL,
		"status", status,
		"duration_ms", time.Since(started).Milliseconds(),
	)
	if resp.IsSuccess() {
		return resp.Body(), nil
	}

	if isRetryableStatus(status) {
		c.logger.WarnContext(ctx, "hltv request failed", "url", rawURL, "status", status)
		return nil, fmt.Errorf("%w: %w: status=%d body=%s", usecase.ErrUpstreamFetch, errTransient, status, abbreviateBody(resp.Body()))
	}
	if status == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %w: status=%d", usecase.ErrNotFound, usecase.ErrUpstreamFetch, status)
	}
	return nil, fmt.Errorf("%w: status=%d", usecase.ErrUpstreamFetch, status)
}

func isCircuitFailure(err error) bool {
	return errors.Is(err, errTransient)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
