package cli

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/RevCBH/tianniu/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogsCmd_RendersEntries(t *testing.T) {
	api := newFakeAPI(t, http.StatusOK,
		`{"logs":[{"timestamp":"2024-01-01T00:00:00Z","stream":"stdout","message":"hello"},`+
			`{"timestamp":"2024-01-01T00:00:01.5Z","stream":"stderr","message":"warn: slow"}]}`)

	out, _, err := api.run(t, "logs", "c1")
	require.NoError(t, err)

	assert.Contains(t, out, "[2024-01-01 00:00:00+00:00] [stdout] hello\n")
	assert.Contains(t, out, "[2024-01-01 00:00:01.500000+00:00] [stderr] warn: slow\n")
}

func TestLogsCmd_QueryParams(t *testing.T) {
	api := newFakeAPI(t, http.StatusOK, `{"logs":[]}`)

	_, _, err := api.run(t, "logs", "c1",
		"--tail", "0",
		"--since", "2024-01-01T00:00:00Z",
		"--until", "2024-01-02T00:00:00Z",
		"--follow")
	require.NoError(t, err)

	q := api.lastRequest(t).Query
	assert.Equal(t, []string{"0"}, q["tail"])
	assert.Equal(t, []string{"2024-01-01T00:00:00Z"}, q["since"])
	assert.Equal(t, []string{"2024-01-02T00:00:00Z"}, q["until"])
	assert.Equal(t, []string{"true"}, q["follow"])
}

func TestLogsCmd_NoParamsWhenUnset(t *testing.T) {
	api := newFakeAPI(t, http.StatusOK, `{"logs":[]}`)

	_, _, err := api.run(t, "logs", "c1")
	require.NoError(t, err)

	assert.Empty(t, api.lastRequest(t).Query)
}

func TestLogsCmd_MissingLogsList(t *testing.T) {
	api := newFakeAPI(t, http.StatusOK, `{"entries":[]}`)

	_, _, err := api.run(t, "logs", "c1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing "logs" list`)
}

func TestPrintLogs_SkipsMalformedEntries(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, config.OutputJSON)

	err := printLogs(p, map[string]any{
		"logs": []any{
			"not an object",
			map[string]any{"timestamp": "bogus", "stream": "stdout", "message": "kept"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "[bogus] [stdout] kept\n", buf.String())
}

func TestPrintLogs_NotAnObject(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, config.OutputJSON)

	err := printLogs(p, []any{})
	assert.Error(t, err)
}
