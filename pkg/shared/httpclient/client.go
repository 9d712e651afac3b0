// LocalGames Core
// Copyright (c) 2026 The LocalGames Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of LocalGames Core.
//
// LocalGames Core is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// LocalGames Core is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with LocalGames Core.  If not, see <http://www.gnu.org/licenses/>.

// Package httpclient provides the shared HTTP transport used for store API
// calls and image downloads.
package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	// DefaultTimeoutSeconds is the default timeout for HTTP requests.
	DefaultTimeoutSeconds = 30

	// maxBodyBytes caps in-memory response bodies (API payloads and
	// artwork downloads are small).
	maxBodyBytes = 32 << 20
)

// DefaultTransport provides a configured transport with connection pooling
// and reasonable timeouts.
var DefaultTransport = &http.Transport{
	DialContext: (&net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
	}).DialContext,
	ResponseHeaderTimeout: 30 * time.Second,
	TLSHandshakeTimeout:   10 * time.Second,
	MaxIdleConns:          100,
	MaxIdleConnsPerHost:   10,
	IdleConnTimeout:       90 * time.Second,
}

// Client provides an HTTP client with sensible defaults. Every request
// carries a context and is bounded by the client timeout so an unreachable
// vendor cannot stall aggregate operations indefinitely.
type Client struct {
	*http.Client
}

// NewClient creates a new HTTP client with the default timeout.
func NewClient() *Client {
	return NewClientWithTimeout(DefaultTimeoutSeconds * time.Second)
}

// NewClientWithTimeout creates a new HTTP client with a custom timeout.
func NewClientWithTimeout(timeout time.Duration) *Client {
	return &Client{
		Client: &http.Client{
			Transport: DefaultTransport,
			Timeout:   timeout,
		},
	}
}

// Response is the transport-boundary result of a request. A
// connection-level error (including a timeout) yields StatusCode -1 and a
// nil body; it is a normal failure value, identical in effect to a non-200
// response.
type Response struct {
	Headers    http.Header
	Body       []byte
	StatusCode int
}

// OK reports whether the response has status 200.
func (r *Response) OK() bool {
	return r.StatusCode == http.StatusOK
}

// Request performs an HTTP request and buffers the response body. It never
// returns a Go error for network failures; those are folded into StatusCode
// -1 per the transport contract.
func (c *Client) Request(
	ctx context.Context, method, url string, body io.Reader, headers map[string]string,
) *Response {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		log.Error().Err(err).Str("url", url).Msg("error creating request")
		return &Response{StatusCode: -1}
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.Do(req)
	if err != nil {
		log.Debug().Err(err).Str("url", url).Msg("request failed")
		return &Response{StatusCode: -1}
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("error closing response body")
		}
	}()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		log.Debug().Err(err).Str("url", url).Msg("error reading response body")
		return &Response{StatusCode: -1}
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       data,
		Headers:    resp.Header,
	}
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, url string) *Response {
	return c.Request(ctx, http.MethodGet, url, http.NoBody, nil)
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, url string, body io.Reader) *Response {
	return c.Request(ctx, http.MethodPost, url, body,
		map[string]string{"Content-Type": "application/json"})
}

// Patch performs a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, url string, body io.Reader) *Response {
	return c.Request(ctx, http.MethodPatch, url, body,
		map[string]string{"Content-Type": "application/json"})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, url string) *Response {
	return c.Request(ctx, http.MethodDelete, url, http.NoBody, nil)
}

// GetJSON performs a GET request and decodes a JSON response into out. A
// non-200 status or a connection failure is returned as an error since the
// caller asked for a decoded value.
func (c *Client) GetJSON(ctx context.Context, url string, out any) error {
	resp := c.Get(ctx, url)
	if !resp.OK() {
		return fmt.Errorf("GET %s: status %d", url, resp.StatusCode)
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return fmt.Errorf("GET %s: decode response: %w", url, err)
	}
	return nil
}

// DefaultClient provides a shared HTTP client instance.
var DefaultClient = NewClient()
