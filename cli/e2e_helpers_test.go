package cli_test

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mcdash/playerstats/cli"
	"github.com/stretchr/testify/require"
)

// statsServer fakes the stats endpoint. It answers with hourly samples
// starting at the requested from, or with a fixed status when failing.
type statsServer struct {
	*httptest.Server
	samples  int
	status   atomic.Int32
	requests atomic.Int32
	lastPath atomic.Value
}

func newStatsServer(t *testing.T, samples int) *statsServer {
	t.Helper()

	s := &statsServer{samples: samples}
	s.status.Store(http.StatusOK)
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

func (s *statsServer) handle(w http.ResponseWriter, r *http.Request) {
	s.requests.Add(1)
	s.lastPath.Store(r.URL.Path)

	if code := int(s.status.Load()); code != http.StatusOK {
		http.Error(w, "unavailable", code)
		return
	}

	from, err := strconv.ParseInt(r.URL.Query().Get("from"), 10, 64)
	if err != nil {
		http.Error(w, "bad from", http.StatusBadRequest)
		return
	}

	var b strings.Builder
	b.WriteString("[")
	for i := 0; i < s.samples; i++ {
		if i > 0 {
			b.WriteString(",")
		}
		ts := time.UnixMilli(from).Add(time.Duration(i) * time.Hour).UnixMilli()
		fmt.Fprintf(&b, `{"tsUtc":%d,"players":%d}`, ts, i)
	}
	b.WriteString("]")

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(b.String()))
}

type testEnv struct {
	t          *testing.T
	tmpDir     string
	configPath string
	stats      *statsServer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWithSamples(t, 24)
}

func newTestEnvWithSamples(t *testing.T, samples int) *testEnv {
	t.Helper()

	stats := newStatsServer(t, samples)
	return newTestEnvWithConfig(t, stats, fmt.Sprintf(`server:
  url: %s/api/
  breaker:
    enabled: false
display:
  colors: never
  timezone: utc
`, stats.URL))
}

func newTestEnvWithConfig(t *testing.T, stats *statsServer, configYAML string) *testEnv {
	t.Helper()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	err := os.WriteFile(configPath, []byte(configYAML), 0o600)
	require.NoError(t, err)

	return &testEnv{
		t:          t,
		tmpDir:     tmpDir,
		configPath: configPath,
		stats:      stats,
	}
}

func (env *testEnv) run(args ...string) (stdout, stderr string, err error) {
	env.t.Helper()

	var outBuf, errBuf bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)

	fullArgs := append([]string{"--config", env.configPath, "--no-color"}, args...)
	rootCmd.SetArgs(fullArgs)
	err = rootCmd.ExecuteContext(context.Background())
	return outBuf.String(), errBuf.String(), err
}

func exitCode(t *testing.T, err error) int {
	t.Helper()

	require.Error(t, err)
	coder, ok := err.(cli.ExitCoder)
	require.True(t, ok, "error %v does not carry an exit code", err)
	return coder.ExitCode()
}
