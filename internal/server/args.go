package server

import (
    "encoding/json"
    "fmt"
    "net/url"
    "strings"

    "github.com/xeipuuv/gojsonschema"
)

// toolArgsSchemaJSON is the input contract for both tools. It is the single
// source of truth: the registry advertises it and ParseToolArgs validates
// against it.
const toolArgsSchemaJSON = `{
  "type": "object",
  "properties": {
    "url": {
      "type": "string",
      "format": "uri",
      "description": "Target page URL the test case runs against"
    },
    "input_goal": {
      "type": "string",
      "description": "Natural-language goal the test case should achieve"
    },
    "placeholders": {
      "type": "object",
      "additionalProperties": {"type": "string"},
      "default": {},
      "description": "Key-value substitutions forwarded opaquely to the backend"
    },
    "workflow_run_id": {
      "type": "string",
      "description": "Identifier correlating this call with a workflow run"
    }
  },
  "required": ["url", "input_goal", "workflow_run_id"]
}`

var toolArgsSchema = mustSchema(toolArgsSchemaJSON)

func mustSchema(raw string) *gojsonschema.Schema {
    s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(raw))
    if err != nil {
        panic(fmt.Sprintf("compile tool args schema: %v", err))
    }
    return s
}

// ToolArgs is the validated argument set for a tool call. An instance exists
// only after passing schema validation; it is used once to build a backend
// request and then discarded.
type ToolArgs struct {
    URL           string            `json:"url"`
    InputGoal     string            `json:"input_goal"`
    Placeholders  map[string]string `json:"placeholders"`
    WorkflowRunID string            `json:"workflow_run_id"`
}

// FieldError is a single schema violation.
type FieldError struct {
    Field   string
    Message string
}

// ValidationError collects every field that violated its constraint.
type ValidationError struct {
    Fields []FieldError
}

func (e *ValidationError) Error() string {
    parts := make([]string, 0, len(e.Fields))
    for _, f := range e.Fields {
        parts = append(parts, f.Field+": "+f.Message)
    }
    return "invalid arguments: " + strings.Join(parts, "; ")
}

// ParseToolArgs validates raw caller input and returns a ToolArgs. All
// violations are collected rather than short-circuited at the first failure.
func ParseToolArgs(raw map[string]any) (*ToolArgs, error) {
    if raw == nil {
        raw = map[string]any{}
    }
    result, err := toolArgsSchema.Validate(gojsonschema.NewGoLoader(raw))
    if err != nil {
        return nil, fmt.Errorf("validate arguments: %w", err)
    }
    verr := &ValidationError{}
    for _, re := range result.Errors() {
        verr.Fields = append(verr.Fields, FieldError{Field: re.Field(), Message: re.Description()})
    }
    if len(verr.Fields) > 0 {
        return nil, verr
    }

    encoded, err := json.Marshal(raw)
    if err != nil {
        return nil, fmt.Errorf("encode arguments: %w", err)
    }
    var args ToolArgs
    if err := json.Unmarshal(encoded, &args); err != nil {
        return nil, fmt.Errorf("decode arguments: %w", err)
    }
    // The uri format checker accepts any string with a scheme; require a
    // parseable absolute URL.
    if u, err := url.Parse(args.URL); err != nil || !u.IsAbs() {
        return nil, &ValidationError{Fields: []FieldError{{Field: "url", Message: "must be a valid absolute URL"}}}
    }
    if args.Placeholders == nil {
        args.Placeholders = map[string]string{}
    }
    return &args, nil
}
