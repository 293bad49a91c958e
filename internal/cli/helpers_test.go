package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// recordedRequest is what the fake API saw for one call.
type recordedRequest struct {
	Method string
	Path   string
	Query  map[string][]string
	Header http.Header
	Body   []byte
}

// fakeAPI is an httptest server answering every request with a fixed
// status and body while recording what it received.
type fakeAPI struct {
	server     *httptest.Server
	configPath string

	mu       sync.Mutex
	requests []recordedRequest
}

func newFakeAPI(t *testing.T, status int, body string) *fakeAPI {
	t.Helper()

	api := &fakeAPI{}
	api.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		api.mu.Lock()
		api.requests = append(api.requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.EscapedPath(),
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
			Body:   data,
		})
		api.mu.Unlock()

		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(api.server.Close)

	api.configPath = filepath.Join(t.TempDir(), "tianniu-config.yaml")
	writeTestFile(t, api.configPath, fmt.Sprintf(`apiVersion: tianniu.baidu.com/v1
kind: ClientConfig
environments:
  - name: test
    api_endpoint: %s/api/v1
    default: true
  - name: other
    api_endpoint: %s/other/v1
    auth:
      api_key_env: TIANNIU_OTHER_KEY
`, api.server.URL, api.server.URL))

	t.Setenv("TIANNIU_API_KEY", "test-token")
	t.Setenv("TIANNIU_API_URL", "")
	t.Setenv("TIANNIU_OUTPUT", "")
	t.Setenv("TIANNIU_CONFIG", "")

	return api
}

func (f *fakeAPI) Requests() []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedRequest(nil), f.requests...)
}

// lastRequest returns the only request the API received.
func (f *fakeAPI) lastRequest(t *testing.T) recordedRequest {
	t.Helper()
	reqs := f.Requests()
	require.Len(t, reqs, 1, "expected exactly one request")
	return reqs[0]
}

// run executes the CLI against the fake API and returns stdout and stderr.
// --config is passed only while configPath is set.
func (f *fakeAPI) run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	app := New()
	app.SetVersion("1.0.0-test", "abc1234", "2024-01-01")
	app.httpClient = f.server.Client()

	var stdout, stderr bytes.Buffer
	app.rootCmd.SetOut(&stdout)
	app.rootCmd.SetErr(&stderr)
	if f.configPath != "" {
		args = append([]string{"--config", f.configPath}, args...)
	}
	app.rootCmd.SetArgs(args)

	err := app.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// firstJSON extracts the first JSON value printed in out.
func firstJSON(t *testing.T, out string) string {
	t.Helper()
	start := strings.IndexAny(out, "{[")
	require.GreaterOrEqual(t, start, 0, "no JSON in output:\n%s", out)

	dec := json.NewDecoder(strings.NewReader(out[start:]))
	var raw json.RawMessage
	require.NoError(t, dec.Decode(&raw), "output:\n%s", out)
	return string(raw)
}
