// Package kerberos is a thin client for the Kerberos.io cloud API.
//
// Every call is folded into a Result rather than a Go error: the
// dispatcher renders failure messages verbatim to the user, so transport
// errors, non-2xx statuses and decode errors all end up as a
// human-readable string in the same shape.
package kerberos

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/uug-ai/slackbot/internal/metrics"
)

const (
	loginEndpoint   = "/auth/login"
	profileEndpoint = "/profile"
	camerasEndpoint = "/cameras"
)

// Result is the uniform outcome of an API call. Exactly one of Data or
// Error is meaningful, selected by Success.
type Result struct {
	Success bool
	Data    map[string]any
	Error   string
}

func failure(msg string) Result {
	return Result{Success: false, Error: msg}
}

type Client struct {
	baseURL string
	httpc   *http.Client
	metrics metrics.MetricsCollector
	log     zerolog.Logger
}

func NewClient(baseURL string, mc metrics.MetricsCollector, log zerolog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpc: &http.Client{
			Timeout:   30 * time.Second,
			Transport: newLoggingTransport(http.DefaultTransport, log),
		},
		metrics: mc,
		log:     log,
	}
}

// Login authenticates against the cloud API. The response carries the
// bearer token under either "token" or "access_token".
func (c *Client) Login(ctx context.Context, username, password string) Result {
	body := map[string]string{
		"username": username,
		"password": password,
	}
	return c.Call(ctx, loginEndpoint, http.MethodPost, body, "")
}

// Profile fetches the profile of the user owning token.
func (c *Client) Profile(ctx context.Context, token string) Result {
	return c.Call(ctx, profileEndpoint, http.MethodGet, nil, token)
}

// Cameras lists the cameras visible to the user owning token.
func (c *Client) Cameras(ctx context.Context, token string) Result {
	return c.Call(ctx, camerasEndpoint, http.MethodGet, nil, token)
}

// Call sends a single request to the API. The body is attached only for
// POST and PUT, and the bearer header only when token is non-empty.
func (c *Client) Call(ctx context.Context, endpoint, method string, body any, token string) Result {
	var payload io.Reader
	if body != nil && (method == http.MethodPost || method == http.MethodPut) {
		data, err := json.Marshal(body)
		if err != nil {
			return failure(errors.Wrap(err, "encoding request body").Error())
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, payload)
	if err != nil {
		return failure(errors.Wrap(err, "building request").Error())
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		return failure(err.Error())
	}
	defer resp.Body.Close()
	c.metrics.RecordAPIRequest(resp.StatusCode, time.Since(start))

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return failure(errors.Wrap(err, "reading response").Error())
	}

	var data map[string]any
	decodeErr := json.Unmarshal(raw, &data)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return failure(remoteMessage(data, resp.StatusCode))
	}
	if decodeErr != nil {
		return failure(errors.Wrap(decodeErr, "decoding response").Error())
	}

	return Result{Success: true, Data: data}
}

// remoteMessage prefers the API's own "message" field and falls back to a
// generic status description.
func remoteMessage(data map[string]any, status int) string {
	if msg, ok := data["message"].(string); ok && msg != "" {
		return msg
	}
	return fmt.Sprintf("request failed with status %d %s", status, http.StatusText(status))
}
