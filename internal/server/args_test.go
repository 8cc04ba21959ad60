package server

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func validArgs() map[string]any {
    return map[string]any{
        "url":             "https://example.com",
        "input_goal":      "check login",
        "workflow_run_id": "run-42",
    }
}

func TestParseToolArgsValid(t *testing.T) {
    args, err := ParseToolArgs(map[string]any{
        "url":             "https://example.com",
        "input_goal":      "check login",
        "placeholders":    map[string]any{"USER": "alice"},
        "workflow_run_id": "run-42",
    })
    require.NoError(t, err)
    assert.Equal(t, "https://example.com", args.URL)
    assert.Equal(t, "check login", args.InputGoal)
    assert.Equal(t, map[string]string{"USER": "alice"}, args.Placeholders)
    assert.Equal(t, "run-42", args.WorkflowRunID)
}

func TestParseToolArgsMissingFieldsEnumerated(t *testing.T) {
    _, err := ParseToolArgs(map[string]any{})
    var verr *ValidationError
    require.ErrorAs(t, err, &verr)
    assert.Len(t, verr.Fields, 3)
    for _, field := range []string{"url", "input_goal", "workflow_run_id"} {
        assert.Contains(t, err.Error(), field)
    }
}

func TestParseToolArgsNilInput(t *testing.T) {
    _, err := ParseToolArgs(nil)
    var verr *ValidationError
    require.ErrorAs(t, err, &verr)
    assert.Contains(t, err.Error(), "url")
}

func TestParseToolArgsPlaceholdersDefault(t *testing.T) {
    args, err := ParseToolArgs(validArgs())
    require.NoError(t, err)
    require.NotNil(t, args.Placeholders)
    assert.Empty(t, args.Placeholders)
}

func TestParseToolArgsInvalidURL(t *testing.T) {
    raw := validArgs()
    raw["url"] = "not-a-url"
    _, err := ParseToolArgs(raw)
    var verr *ValidationError
    require.ErrorAs(t, err, &verr)
    assert.Contains(t, err.Error(), "url")
}

func TestParseToolArgsPlaceholdersMustBeStrings(t *testing.T) {
    raw := validArgs()
    raw["placeholders"] = map[string]any{"COUNT": 3}
    _, err := ParseToolArgs(raw)
    var verr *ValidationError
    require.ErrorAs(t, err, &verr)
    assert.Contains(t, err.Error(), "placeholders")
}

func TestParseToolArgsCollectsAllViolations(t *testing.T) {
    _, err := ParseToolArgs(map[string]any{"input_goal": "check login"})
    var verr *ValidationError
    require.ErrorAs(t, err, &verr)
    // both missing required fields reported, not just the first
    assert.Len(t, verr.Fields, 2)
    assert.Contains(t, err.Error(), "url")
    assert.Contains(t, err.Error(), "workflow_run_id")
}
