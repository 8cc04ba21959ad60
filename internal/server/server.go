// Package server provides the tool catalog, argument validation, dispatching,
// and both transports (stdio MCP and HTTP) for the test-case adapter.
package server

import (
    "encoding/json"
    "errors"
    "net/http"
    "time"

    "github.com/go-chi/chi/v5"
    "github.com/go-chi/chi/v5/middleware"
    "github.com/rs/zerolog"

    "testcase-mcp/internal/backend"
)

// Config contains server configuration values resolved once at startup.
type Config struct {
    Port           string
    Token          string
    BackendBaseURL string
    CacheTTL       time.Duration
}

// Server exposes the tool catalog and dispatcher over HTTP.
type Server struct {
    cfg        Config
    router     *chi.Mux
    dispatcher *Dispatcher
    log        zerolog.Logger
}

// New constructs a Server with middleware and routes configured.
func New(cfg Config, log zerolog.Logger) *Server {
    b := backend.New(cfg.BackendBaseURL, nil, log)
    s := &Server{
        cfg:        cfg,
        router:     chi.NewRouter(),
        dispatcher: NewDispatcher(b, cfg.CacheTTL, log),
        log:        log,
    }
    s.router.Use(middleware.RequestID)
    s.router.Use(middleware.RealIP)
    s.router.Use(middleware.Recoverer)
    s.router.Use(middleware.Timeout(60 * time.Second))

    s.router.Get("/health", s.handleHealth)

    s.router.Route("/mcp", func(r chi.Router) {
        r.Use(s.auth)
        r.Get("/tools", s.handleListTools)
        r.Post("/call", s.handleCall)
    })

    return s
}

// Router exposes the root HTTP handler for the server.
func (s *Server) Router() http.Handler { return s.router }

func (s *Server) auth(next http.Handler) http.Handler {
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        if s.cfg.Token == "" {
            next.ServeHTTP(w, r)
            return
        }
        if r.Header.Get("Authorization") != "Bearer "+s.cfg.Token {
            writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
            return
        }
        next.ServeHTTP(w, r)
    })
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
    writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListTools(w http.ResponseWriter, _ *http.Request) {
    writeJSON(w, http.StatusOK, map[string]any{"tools": Tools()})
}

func (s *Server) handleCall(w http.ResponseWriter, r *http.Request) {
    var req CallRequest
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
        writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
        return
    }

    text, err := s.dispatcher.Dispatch(r.Context(), req.Name, req.Args)
    if err != nil {
        var unknown *UnknownToolError
        if errors.As(err, &unknown) {
            writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
            return
        }
        var invalid *ValidationError
        if errors.As(err, &invalid) {
            writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
            return
        }
        s.log.Error().Err(err).Str("tool", req.Name).Msg("dispatch failed")
        writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
        return
    }

    writeJSON(w, http.StatusOK, map[string]any{
        "content": []map[string]string{{"type": "text", "text": text}},
    })
}

func writeJSON(w http.ResponseWriter, status int, body any) {
    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(status)
    _ = json.NewEncoder(w).Encode(body)
}
