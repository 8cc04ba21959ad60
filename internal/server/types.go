package server

import "encoding/json"

// Tool describes an advertised tool and its input schema.
type Tool struct {
    Name        string          `json:"name"`
    Description string          `json:"description"`
    InputSchema json.RawMessage `json:"inputSchema"`
}

// CallRequest is the body of a tool call over the HTTP transport.
type CallRequest struct {
    Name string         `json:"name"`
    Args map[string]any `json:"arguments"`
}
