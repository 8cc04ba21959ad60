package server

import (
    "encoding/json"

    "testcase-mcp/internal/backend"
)

// Tool names advertised in the catalog.
const (
    ToolGenerateTestCase = "generate-test-case"
    ToolExecuteTestCase  = "execute-test-case"
)

// toolSpec couples an advertised tool with its dispatch metadata: the
// backend path it maps to, the prefix prepended to a successful reply, and
// the fixed text returned when the backend cannot be reached.
type toolSpec struct {
    Tool
    Path          string
    SuccessPrefix string
    FailureText   string
}

func toolCatalog() []toolSpec {
    schema := json.RawMessage(toolArgsSchemaJSON)
    return []toolSpec{
        {
            Tool: Tool{
                Name:        ToolGenerateTestCase,
                Description: "Generate a test case for the given URL and goal",
                InputSchema: schema,
            },
            Path:          backend.GenerateTestsPath,
            SuccessPrefix: "Generated test case:",
            FailureText:   "Failed to generate test case. Check that the backend service is running and try again.",
        },
        {
            Tool: Tool{
                Name:        ToolExecuteTestCase,
                Description: "Execute a previously generated test case for the given URL and goal",
                InputSchema: schema,
            },
            Path:          backend.RunTaskPath,
            SuccessPrefix: "Test case execution result:",
            FailureText:   "Failed to execute test case. Check that the backend service is running and try again.",
        },
    }
}

// Tools returns the static tool catalog. Stateless and idempotent.
func Tools() []Tool {
    specs := toolCatalog()
    out := make([]Tool, 0, len(specs))
    for _, s := range specs {
        out = append(out, s.Tool)
    }
    return out
}
