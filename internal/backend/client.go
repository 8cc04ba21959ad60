// Package backend provides a minimal client for the test-case generation backend.
package backend

import (
    "bytes"
    "context"
    "encoding/json"
    "fmt"
    "io"
    "net/http"
    "strings"

    "github.com/rs/zerolog"
)

// Endpoint paths exposed by the FastAPI backend.
const (
    GenerateTestsPath = "/api/generate-tests"
    RunTaskPath       = "/api/runtask"
)

const userAgent = "testcase-mcp/1.0"

// Error describes a failed backend call, either an HTTP error status or a
// transport-level failure.
type Error struct {
    StatusCode int
    Body       string
    Err        error
}

func (e *Error) Error() string {
    if e.Err != nil {
        return fmt.Sprintf("backend request failed: %v", e.Err)
    }
    return fmt.Sprintf("backend status %d: %s", e.StatusCode, e.Body)
}

func (e *Error) Unwrap() error { return e.Err }

// Client is a minimal HTTP client for the test-case backend.
type Client struct {
    BaseURL string
    HTTP    *http.Client
    Log     zerolog.Logger
}

// New returns a new client. If httpClient is nil, a default client with no
// timeout is used; the backend owns the duration of a generation or
// execution run, so the call blocks until the backend answers.
func New(baseURL string, httpClient *http.Client, log zerolog.Logger) *Client {
    if httpClient == nil {
        httpClient = &http.Client{}
    }
    return &Client{BaseURL: strings.TrimRight(baseURL, "/"), HTTP: httpClient, Log: log}
}

// Post issues exactly one POST to {BaseURL}{path} with a JSON-encoded body
// and returns the backend's JSON response verbatim. The response shape is
// opaque to this layer.
func (c *Client) Post(ctx context.Context, path string, body any) (json.RawMessage, error) {
    payload, err := json.Marshal(body)
    if err != nil {
        return nil, fmt.Errorf("encode request body: %w", err)
    }
    req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(payload))
    if err != nil {
        return nil, fmt.Errorf("build request: %w", err)
    }
    req.Header.Set("Content-Type", "application/json")
    req.Header.Set("Accept", "application/json")
    req.Header.Set("User-Agent", userAgent)

    c.Log.Debug().Str("path", path).Msg("backend request")
    resp, err := c.HTTP.Do(req)
    if err != nil {
        c.Log.Error().Err(err).Str("path", path).Msg("backend unreachable")
        return nil, &Error{Err: err}
    }
    defer resp.Body.Close()

    raw, err := io.ReadAll(resp.Body)
    if err != nil {
        c.Log.Error().Err(err).Str("path", path).Msg("backend response read failed")
        return nil, &Error{Err: err}
    }
    if resp.StatusCode < 200 || resp.StatusCode >= 300 {
        c.Log.Error().Int("status", resp.StatusCode).Str("path", path).Str("body", string(raw)).Msg("backend error")
        return nil, &Error{StatusCode: resp.StatusCode, Body: string(raw)}
    }
    if !json.Valid(raw) {
        c.Log.Error().Str("path", path).Msg("backend returned malformed JSON")
        return nil, &Error{Err: fmt.Errorf("malformed JSON response")}
    }
    c.Log.Debug().Int("status", resp.StatusCode).Str("path", path).Msg("backend ok")
    return json.RawMessage(raw), nil
}
