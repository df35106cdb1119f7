// Package remote implements the catalog Source against the remote read-only
// product API: one GET of the full product list, guarded by per-attempt
// timeouts, bounded exponential backoff, and deduplication of concurrent
// fetches.
package remote

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/storefront-go/storefront/internal/domain/catalog"
	"github.com/storefront-go/storefront/pkg/httpclient"
)

// Compile-time check ensuring Client satisfies the catalog Source contract.
var _ catalog.Source = (*Client)(nil)

// Config holds the remote catalog client configuration.
type Config struct {
	// BaseURL is the catalog API root, e.g. https://dummyjson.com.
	BaseURL string
	// Timeout bounds each individual fetch attempt.
	Timeout time.Duration
	// MaxRetries is the number of retries after the first failed attempt.
	MaxRetries uint64
	// HTTPClient overrides the default instrumented client. Used in tests.
	HTTPClient *http.Client
}

// Client fetches the product catalog over HTTP.
type Client struct {
	http       *http.Client
	baseURL    string
	timeout    time.Duration
	maxRetries uint64
	group      singleflight.Group
}

// New creates a catalog client. Unless overridden, the transport stack is
// otelhttp instrumentation over request-ID stamping over request logging.
func New(cfg Config) *Client {
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{
			Transport: otelhttp.NewTransport(httpclient.Wrap(nil,
				httpclient.RequestID(),
				httpclient.LogRequests(),
			)),
		}
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	return &Client{
		http:       hc,
		baseURL:    cfg.BaseURL,
		timeout:    cfg.Timeout,
		maxRetries: cfg.MaxRetries,
	}
}

// Fetch returns the full product list. Concurrent calls share a single
// in-flight request. Every failure collapses into catalog.ErrUnavailable;
// the caller sees one opaque condition and no partial list.
func (c *Client) Fetch(ctx context.Context) ([]catalog.Product, error) {
	v, err, _ := c.group.Do("products", func() (interface{}, error) {
		return c.fetch(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]catalog.Product), nil
}

// fetch runs the retry loop around individual attempts.
func (c *Client) fetch(ctx context.Context) ([]catalog.Product, error) {
	var products []catalog.Product

	op := func() error {
		attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()

		fetched, err := c.fetchOnce(attemptCtx)
		if err != nil {
			zctx.From(ctx).Warn("Catalog fetch attempt failed", zap.Error(err))
			return err
		}
		products = fetched
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.maxRetries),
		ctx,
	)
	if err := backoff.Retry(op, policy); err != nil {
		return nil, errors.Wrap(catalog.ErrUnavailable, err.Error())
	}

	return products, nil
}

// fetchOnce performs a single GET and decode. Client errors (4xx) and decode
// failures are permanent: retrying cannot fix them.
func (c *Client) fetchOnce(ctx context.Context) ([]catalog.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/products", nil)
	if err != nil {
		return nil, backoff.Permanent(errors.Wrap(err, "build request"))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("unexpected status %d", resp.StatusCode)
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return nil, backoff.Permanent(err)
		}
		return nil, err
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read body")
	}

	products, err := catalog.DecodeProducts(data)
	if err != nil {
		return nil, backoff.Permanent(err)
	}
	return products, nil
}
