// Command testcase-mcp starts the stdio MCP server.
//
// Diagnostics go to stderr only; stdout carries MCP framing.
package main

import (
    "os"
    "time"

    mcpserver "github.com/mark3labs/mcp-go/server"
    "github.com/rs/zerolog"
    "github.com/subosito/gotenv"

    "testcase-mcp/internal/backend"
    "testcase-mcp/internal/server"
)

func main() {
    _ = gotenv.Load() // optional .env; missing file is fine

    logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

    baseURL := getEnv("FASTAPI_BASE_URL", "http://localhost:8000")
    cacheTTL := getEnvDuration("CACHE_TTL", 0)

    b := backend.New(baseURL, nil, logger)
    d := server.NewDispatcher(b, cacheTTL, logger)

    logger.Info().Str("backend", baseURL).Msg("starting stdio MCP server")
    if err := mcpserver.ServeStdio(server.NewStdioServer(d)); err != nil {
        logger.Fatal().Err(err).Msg("server error")
    }
}

func getEnv(key, def string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
    if v := os.Getenv(key); v != "" {
        if d, err := time.ParseDuration(v); err == nil {
            return d
        }
    }
    return def
}
