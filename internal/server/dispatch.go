package server

import (
    "bytes"
    "context"
    "encoding/json"
    "fmt"
    "time"

    "github.com/rs/zerolog"

    "testcase-mcp/internal/backend"
)

// UnknownToolError signals a call to a tool name not in the catalog.
type UnknownToolError struct {
    Name string
}

func (e *UnknownToolError) Error() string {
    return fmt.Sprintf("unknown tool: %s", e.Name)
}

// Dispatcher routes a named tool call to its backend endpoint and formats
// the outcome. Every call is independent; the only cross-call state is the
// optional reply cache.
type Dispatcher struct {
    backend  *backend.Client
    cache    *Cache
    cacheTTL time.Duration
    log      zerolog.Logger
    tools    map[string]toolSpec
}

// NewDispatcher constructs a Dispatcher over the given backend client. A
// cacheTTL of zero disables reply caching.
func NewDispatcher(b *backend.Client, cacheTTL time.Duration, log zerolog.Logger) *Dispatcher {
    d := &Dispatcher{backend: b, cacheTTL: cacheTTL, log: log, tools: map[string]toolSpec{}}
    for _, spec := range toolCatalog() {
        d.tools[spec.Name] = spec
    }
    if cacheTTL > 0 {
        d.cache = NewCache()
    }
    return d
}

// Dispatch validates raw arguments for the named tool, performs the backend
// call, and returns the formatted reply text.
//
// Failure semantics are asymmetric on purpose: unknown names and invalid
// arguments return a non-nil error (the caller sent a malformed request),
// while backend failures return the tool's fixed failure text with a nil
// error (the backend being down is expected operational degradation, and
// the caller may retry at its own discretion).
func (d *Dispatcher) Dispatch(ctx context.Context, name string, raw map[string]any) (string, error) {
    spec, ok := d.tools[name]
    if !ok {
        d.log.Warn().Str("tool", name).Msg("unknown tool requested")
        return "", &UnknownToolError{Name: name}
    }
    args, err := ParseToolArgs(raw)
    if err != nil {
        d.log.Warn().Err(err).Str("tool", name).Msg("argument validation failed")
        return "", err
    }

    // Only generation is memoized; executing a test case has side effects.
    var key string
    if d.cache != nil && name == ToolGenerateTestCase {
        key = cacheKey(name, args)
        if reply, ok := d.cache.Get(key); ok {
            d.log.Debug().Str("tool", name).Msg("cache hit")
            return reply, nil
        }
    }

    res, err := d.backend.Post(ctx, spec.Path, args)
    if err != nil {
        d.log.Error().Err(err).Str("tool", name).Msg("backend call failed")
        return spec.FailureText, nil
    }

    var pretty bytes.Buffer
    if err := json.Indent(&pretty, res, "", "  "); err != nil {
        pretty.Reset()
        pretty.Write(res)
    }
    reply := spec.SuccessPrefix + "\n\n```json\n" + pretty.String() + "\n```"
    if key != "" {
        d.cache.Set(key, reply, d.cacheTTL)
    }
    return reply, nil
}
