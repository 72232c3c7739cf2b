package cli_test

import (
	"encoding/csv"
	"net/http"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/mcdash/playerstats/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresets(t *testing.T) {
	env := newTestEnv(t)

	stdout, _, err := env.run("presets")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Presets (10)")
	assert.Contains(t, stdout, "* 1w")

	stdout, _, err = env.run("presets", "--format", "json")
	require.NoError(t, err)

	var presets []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(stdout), &presets))
	require.Len(t, presets, 10)
	assert.Equal(t, "6h", presets[0]["id"])
	assert.Equal(t, float64(2), presets[0]["bucket_minutes"])
	assert.Equal(t, true, presets[3]["default"])
	assert.Equal(t, int32(0), env.stats.requests.Load())
}

func TestFetch_JSON(t *testing.T) {
	env := newTestEnv(t)

	stdout, _, err := env.run("fetch", "--preset", "1d", "--format", "json")
	require.NoError(t, err)

	var series struct {
		Preset        string `json:"preset"`
		BucketMinutes int    `json:"bucket_minutes"`
		AxisFormat    string `json:"axis_format"`
		Peak          int    `json:"peak"`
		Points        []struct {
			Label   string `json:"label"`
			Players int    `json:"players"`
		} `json:"points"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &series))

	assert.Equal(t, "1d", series.Preset)
	assert.Equal(t, 6, series.BucketMinutes)
	assert.Equal(t, "hour:minute", series.AxisFormat)
	assert.Equal(t, 23, series.Peak)
	require.Len(t, series.Points, 24)
	assert.Equal(t, 5, series.Points[5].Players)
	assert.Equal(t, "/api/stats/players/concurrency", env.stats.lastPath.Load())
}

func TestFetch_CSV(t *testing.T) {
	env := newTestEnvWithSamples(t, 3)

	stdout, _, err := env.run("fetch", "--preset", "6h", "--format", "csv")
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(stdout)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, "6h", records[1][0])
	assert.Equal(t, "2", records[3][3])
}

func TestFetch_DefaultPresetResolvesToOneWeek(t *testing.T) {
	env := newTestEnv(t)

	stdout, _, err := env.run("fetch", "--format", "json")
	require.NoError(t, err)

	var series map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(stdout), &series))
	assert.Equal(t, "1w", series["preset"])
	assert.Equal(t, float64(42), series["bucket_minutes"])
}

func TestFetch_EmptySeries(t *testing.T) {
	env := newTestEnvWithSamples(t, 0)

	stdout, _, err := env.run("fetch", "--preset", "3d")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No data")
}

func TestFetch_Errors(t *testing.T) {
	t.Run("unknown preset", func(t *testing.T) {
		env := newTestEnv(t)

		_, _, err := env.run("fetch", "--preset", "10y")
		assert.Equal(t, cli.ExitInvalidPreset, exitCode(t, err))
		assert.Contains(t, err.Error(), "unknown preset: 10y")
		assert.Equal(t, int32(0), env.stats.requests.Load())
	})

	t.Run("upstream failure", func(t *testing.T) {
		env := newTestEnv(t)
		env.stats.status.Store(http.StatusBadGateway)

		_, _, err := env.run("fetch", "--preset", "6h")
		assert.Equal(t, cli.ExitUpstream, exitCode(t, err))
	})

	t.Run("invalid config", func(t *testing.T) {
		stats := newStatsServer(t, 1)
		env := newTestEnvWithConfig(t, stats, "display:\n  colors: rainbow\n")

		_, _, err := env.run("fetch")
		assert.Equal(t, cli.ExitConfig, exitCode(t, err))
	})
}

func TestStatus(t *testing.T) {
	env := newTestEnvWithSamples(t, 6)

	stdout, _, err := env.run("status", "--format", "json")
	require.NoError(t, err)

	var status map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(stdout), &status))
	assert.Equal(t, true, status["reachable"])
	assert.Equal(t, float64(6), status["samples"])
	assert.Equal(t, "utc", status["timezone"])
	assert.Equal(t, env.configPath, status["config_location"])

	env.stats.status.Store(http.StatusInternalServerError)
	stdout, _, err = env.run("status")
	require.NoError(t, err)
	assert.Contains(t, stdout, "[!!]")
	assert.Contains(t, stdout, "500")
}

func TestConfig(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		assert func(t *testing.T, stdout string, err error)
	}{
		{
			name: "show_defaults",
			args: []string{"config", "show"},
			assert: func(t *testing.T, stdout string, err error) {
				assert.NoError(t, err)
				assert.Contains(t, stdout, "dashboard.default_preset")
				assert.Contains(t, stdout, "server.url")
			},
		},
		{
			name: "show_json",
			args: []string{"config", "show", "--format", "json"},
			assert: func(t *testing.T, stdout string, err error) {
				assert.NoError(t, err)
				var result json.RawMessage
				assert.NoError(t, json.Unmarshal([]byte(stdout), &result))
			},
		},
		{
			name: "get_timezone",
			args: []string{"config", "get", "display.timezone"},
			assert: func(t *testing.T, stdout string, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "utc\n", stdout)
			},
		},
		{
			name: "get_nonexistent_key",
			args: []string{"config", "get", "nonexistent.key"},
			assert: func(t *testing.T, stdout string, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "key not found")
			},
		},
		{
			name: "set_value",
			args: []string{"config", "set", "dashboard.default_preset", "1d"},
			assert: func(t *testing.T, stdout string, err error) {
				assert.NoError(t, err)
				assert.Contains(t, stdout, "Set dashboard.default_preset = 1d")
			},
		},
		{
			name: "set_invalid_value",
			args: []string{"config", "set", "display.colors", "rainbow"},
			assert: func(t *testing.T, stdout string, err error) {
				assert.Equal(t, cli.ExitConfig, exitCode(t, err))
			},
		},
		{
			name: "set_unknown_key",
			args: []string{"config", "set", "logging.level", "full"},
			assert: func(t *testing.T, stdout string, err error) {
				assert.Equal(t, cli.ExitConfig, exitCode(t, err))
				assert.Contains(t, err.Error(), "unknown config key")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			stdout, _, err := env.run(tt.args...)
			tt.assert(t, stdout, err)
		})
	}
}

func TestConfig_SetAndVerify(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.run("config", "set", "dashboard.refresh_interval", "2m")
	require.NoError(t, err)

	stdout, _, err := env.run("config", "get", "dashboard.refresh_interval")
	require.NoError(t, err)
	assert.Equal(t, "2m\n", stdout)

	_, _, err = env.run("config", "set", "dashboard.default_preset", "3m")
	require.NoError(t, err)

	stdout, _, err = env.run("fetch", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"preset": "3m"`)
}

func TestConfig_ShowMasksPassword(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.run("config", "set", "server.password", "hunter2")
	require.NoError(t, err)

	stdout, _, err := env.run("config", "show")
	require.NoError(t, err)
	assert.NotContains(t, stdout, "hunter2")
	assert.Contains(t, stdout, "********")
}

func TestConfig_Reset(t *testing.T) {
	env := newTestEnv(t)

	stdout, _, err := env.run("config", "reset")
	require.NoError(t, err)
	assert.Contains(t, stdout, "reset to defaults")

	stdout, _, err = env.run("config", "get", "display.timezone")
	require.NoError(t, err)
	assert.Equal(t, "local\n", stdout)
}

func TestVersion(t *testing.T) {
	env := newTestEnv(t)

	stdout, _, err := env.run("version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "playerstats dev")
	assert.Contains(t, stdout, "commit: none")
}
