package server

import (
    "context"

    "github.com/mark3labs/mcp-go/mcp"
    mcpserver "github.com/mark3labs/mcp-go/server"
)

// NewStdioServer wires the tool catalog and dispatcher into an MCP server
// suitable for serving over stdio. Hard failures (unknown tool, invalid
// arguments) propagate as invocation errors; backend failures come back as
// normal text results.
func NewStdioServer(d *Dispatcher) *mcpserver.MCPServer {
    s := mcpserver.NewMCPServer("testcase-mcp", "1.0.0", mcpserver.WithToolCapabilities(false))
    for _, spec := range toolCatalog() {
        name := spec.Name
        tool := mcp.NewToolWithRawSchema(spec.Name, spec.Description, spec.InputSchema)
        s.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
            text, err := d.Dispatch(ctx, name, req.GetArguments())
            if err != nil {
                return nil, err
            }
            return mcp.NewToolResultText(text), nil
        })
    }
    return s
}
