// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fetch

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/NVIDIA/cocktail-explorer/pkg/defaults"
	cerrors "github.com/NVIDIA/cocktail-explorer/pkg/errors"
)

const (
	// DefaultUserAgent is sent with every upstream request.
	DefaultUserAgent = "Cocktail-Explorer/1.0"

	// maxBodyBytes caps how much of an upstream body is read.
	maxBodyBytes = 8 << 20
)

// Fetcher issues a GET for url with the given query parameters and returns
// the JSON body. Failures are returned as *errors.StructuredError.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string, params url.Values) ([]byte, error)
}

// Option defines a configuration option for Client.
type Option func(*Client)

// WithTimeout overrides the total per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.Timeout = d
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.UserAgent = ua
	}
}

// WithHTTPClient supplies the underlying *http.Client. Its Timeout is
// replaced by the client timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// Client fetches JSON documents over HTTP. It issues exactly one request per
// call: no retries, no backoff.
type Client struct {
	UserAgent string
	Timeout   time.Duration
	http      *http.Client
}

// NewClient creates a Client with the default 12 second timeout.
func NewClient(opts ...Option) *Client {
	c := &Client{
		UserAgent: DefaultUserAgent,
		Timeout:   defaults.FetchTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = &http.Client{Transport: newDefaultTransport()}
	}
	if c.Timeout > 0 {
		c.http.Timeout = c.Timeout
	}
	return c
}

func newDefaultTransport() *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   defaults.FetchConnectTimeout,
			KeepAlive: defaults.FetchKeepAlive,
		}).DialContext,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       defaults.FetchIdleConnTimeout,
		TLSHandshakeTimeout:   defaults.FetchTLSHandshakeTimeout,
		ExpectContinueTimeout: 1 * time.Second,
		ForceAttemptHTTP2:     true,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
	}
}

// Fetch implements Fetcher.
func (c *Client) Fetch(ctx context.Context, rawURL string, params url.Values) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	target, err := BuildURL(rawURL, params)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	body, err := c.do(ctx, target)
	fetchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		fetchFailures.WithLabelValues(string(cerrors.CodeOf(err))).Inc()
		slog.Debug("upstream fetch failed", "url", target, "error", err)
		return nil, err
	}

	slog.Debug("upstream fetch completed",
		"url", target,
		"bytes", len(body),
		"duration", time.Since(start).String(),
	)
	return body, nil
}

func (c *Client) do(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, cerrors.Wrap(cerrors.ErrCodeInvalidRequest,
			"failed to create recipe API request", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, classifyTransportError(err, target)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, cerrors.NewWithContext(cerrors.ErrCodeUpstream,
			fmt.Sprintf("recipe API returned %s", resp.Status),
			map[string]any{"url": target, "status": resp.StatusCode})
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, classifyTransportError(err, target)
	}

	if !json.Valid(data) {
		return nil, cerrors.NewWithContext(cerrors.ErrCodeInvalidResponse,
			"recipe API returned a malformed response",
			map[string]any{"url": target, "bytes": len(data)})
	}

	return data, nil
}

func classifyTransportError(err error, target string) error {
	ctx := map[string]any{"url": target}

	if errors.Is(err, context.DeadlineExceeded) {
		return cerrors.WrapWithContext(cerrors.ErrCodeTimeout, "recipe API request timed out", err, ctx)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return cerrors.WrapWithContext(cerrors.ErrCodeTimeout, "recipe API request timed out", err, ctx)
	}
	if errors.Is(err, context.Canceled) {
		return cerrors.WrapWithContext(cerrors.ErrCodeUnavailable, "recipe API request canceled", err, ctx)
	}
	return cerrors.WrapWithContext(cerrors.ErrCodeUnavailable, "recipe API request failed", err, ctx)
}

// BuildURL merges params into the query of rawURL. Parameters already on
// rawURL are kept unless params sets the same key.
func BuildURL(rawURL string, params url.Values) (string, error) {
	if rawURL == "" {
		return "", cerrors.New(cerrors.ErrCodeInvalidRequest, "url is empty")
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", cerrors.Wrap(cerrors.ErrCodeInvalidRequest, "invalid url", err)
	}
	if !u.IsAbs() {
		return "", cerrors.NewWithContext(cerrors.ErrCodeInvalidRequest, "url must be absolute",
			map[string]any{"url": rawURL})
	}

	if len(params) > 0 {
		q := u.Query()
		for k, vs := range params {
			q.Del(k)
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}

	return u.String(), nil
}
