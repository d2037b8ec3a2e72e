// Package fetch retrieves actual documents over HTTP, with an optional
// rate-limited poll mode that re-fetches until the caller accepts a payload.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// maxBodyBytes bounds how much of a response body is read.
const maxBodyBytes = 10 << 20 // 10 MiB

// Fetcher retrieves documents with a tuned HTTP client. Polling is paced by
// a rate limiter so a slow endpoint is not hammered.
type Fetcher struct {
	client  *http.Client
	limiter *rate.Limiter
}

// New uses 0 or negative pollsPerSecond for unpaced polling.
func New(timeout time.Duration, pollsPerSecond float64) *Fetcher {
	limiter := rate.NewLimiter(rate.Inf, 1)
	if pollsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(pollsPerSecond), 1)
	}

	return &Fetcher{
		client:  newClient(timeout),
		limiter: limiter,
	}
}

func newClient(timeout time.Duration) *http.Client {
	dialer := &net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
	}

	transport := &http.Transport{
		Proxy:                  http.ProxyFromEnvironment,
		DialContext:            dialer.DialContext,
		TLSHandshakeTimeout:    10 * time.Second,
		ResponseHeaderTimeout:  10 * time.Second,
		ExpectContinueTimeout:  1 * time.Second,
		IdleConnTimeout:        60 * time.Second,
		MaxIdleConns:           100,
		MaxIdleConnsPerHost:    10,
		MaxConnsPerHost:        50,
		MaxResponseHeaderBytes: 1 << 20, // 1 MiB
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

// Get fetches url once and returns the response body. The status code is not
// interpreted: error payloads are still documents worth matching against.
func (f *Fetcher) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", url, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read body from %s: %w", url, err)
	}

	return body, nil
}

// Poll re-fetches url until accept returns true for a payload or ctx ends.
// The last retrieved body is returned alongside the context error so the
// caller can report what was seen before giving up. Transient fetch errors
// do not abort the loop.
func (f *Fetcher) Poll(ctx context.Context, url string, accept func([]byte) bool) ([]byte, error) {
	var last []byte
	for {
		if err := f.limiter.Wait(ctx); err != nil {
			return last, err
		}

		body, err := f.Get(ctx, url)
		if err != nil {
			if ctx.Err() != nil {
				return last, ctx.Err()
			}
			continue
		}

		last = body
		if accept(body) {
			return body, nil
		}
	}
}
