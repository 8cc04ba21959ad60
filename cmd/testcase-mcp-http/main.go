// Command testcase-mcp-http starts the MCP HTTP server.
package main

import (
    "net/http"
    "os"
    "time"

    "github.com/rs/zerolog"
    "github.com/subosito/gotenv"

    "testcase-mcp/internal/server"
)

func main() {
    _ = gotenv.Load() // optional .env; missing file is fine

    logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

    cfg := server.Config{
        Port:           getEnv("PORT", "3000"),
        Token:          os.Getenv("MCP_TOKEN"),
        BackendBaseURL: getEnv("FASTAPI_BASE_URL", "http://localhost:8000"),
        CacheTTL:       getEnvDuration("CACHE_TTL", 0),
    }
    if cfg.Token == "" {
        logger.Warn().Msg("MCP_TOKEN not set; endpoints will be open. Set MCP_TOKEN to secure.")
    }

    srv := server.New(cfg, logger)

    certFile := os.Getenv("TLS_CERT_FILE")
    keyFile := os.Getenv("TLS_KEY_FILE")
    if certFile != "" && keyFile != "" {
        logger.Info().Str("port", cfg.Port).Msg("starting MCP HTTP server with TLS")
        if err := http.ListenAndServeTLS(":"+cfg.Port, certFile, keyFile, srv.Router()); err != nil {
            logger.Fatal().Err(err).Msg("server error")
        }
        return
    }
    logger.Info().Str("port", cfg.Port).Msg("starting MCP HTTP server")
    if err := http.ListenAndServe(":"+cfg.Port, srv.Router()); err != nil {
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
