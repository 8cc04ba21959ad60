package backend

import (
    "context"
    "encoding/json"
    "net/http"
    "net/http/httptest"
    "testing"

    "github.com/rs/zerolog"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

type testBody struct {
    URL           string            `json:"url"`
    InputGoal     string            `json:"input_goal"`
    Placeholders  map[string]string `json:"placeholders"`
    WorkflowRunID string            `json:"workflow_run_id"`
}

func TestPostSuccess(t *testing.T) {
    var gotHeaders http.Header
    var gotBody testBody
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        require.Equal(t, http.MethodPost, r.Method)
        require.Equal(t, GenerateTestsPath, r.URL.Path)
        gotHeaders = r.Header
        require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
        w.Header().Set("Content-Type", "application/json")
        _, _ = w.Write([]byte(`{"status":"ok"}`))
    }))
    defer srv.Close()

    c := New(srv.URL, nil, zerolog.Nop())
    body := testBody{
        URL:           "https://example.com",
        InputGoal:     "check login",
        Placeholders:  map[string]string{},
        WorkflowRunID: "run-42",
    }
    raw, err := c.Post(context.Background(), GenerateTestsPath, body)
    require.NoError(t, err)

    assert.Equal(t, "application/json", gotHeaders.Get("Content-Type"))
    assert.Equal(t, "application/json", gotHeaders.Get("Accept"))
    assert.Equal(t, "testcase-mcp/1.0", gotHeaders.Get("User-Agent"))
    assert.Equal(t, body, gotBody)
    assert.JSONEq(t, `{"status":"ok"}`, string(raw))
}

func TestPostHTTPError(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
        w.WriteHeader(http.StatusBadGateway)
        _, _ = w.Write([]byte("boom"))
    }))
    defer srv.Close()

    c := New(srv.URL, nil, zerolog.Nop())
    _, err := c.Post(context.Background(), RunTaskPath, map[string]string{})
    var berr *Error
    require.ErrorAs(t, err, &berr)
    assert.Equal(t, http.StatusBadGateway, berr.StatusCode)
    assert.Equal(t, "boom", berr.Body)
}

func TestPostTransportError(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
    srv.Close()

    c := New(srv.URL, nil, zerolog.Nop())
    _, err := c.Post(context.Background(), RunTaskPath, map[string]string{})
    var berr *Error
    require.ErrorAs(t, err, &berr)
    assert.Zero(t, berr.StatusCode)
    assert.Error(t, berr.Unwrap())
}

func TestPostMalformedResponse(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
        _, _ = w.Write([]byte("not json"))
    }))
    defer srv.Close()

    c := New(srv.URL, nil, zerolog.Nop())
    _, err := c.Post(context.Background(), GenerateTestsPath, map[string]string{})
    var berr *Error
    require.ErrorAs(t, err, &berr)
}

func TestBaseURLTrailingSlashTrimmed(t *testing.T) {
    c := New("http://localhost:8000/", nil, zerolog.Nop())
    assert.Equal(t, "http://localhost:8000", c.BaseURL)
}
