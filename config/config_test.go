package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lbptrace/config"
	"github.com/katalvlaran/lbptrace/similarity"
	"github.com/katalvlaran/lbptrace/store"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaults(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, config.DefaultWorkers, cfg.GetWorkers())
	assert.Equal(t, similarity.L1, cfg.GetMetric())
	assert.Equal(t, config.DefaultImageScale, cfg.GetImageScale())
	w, h := cfg.GetChartSize()
	assert.Equal(t, config.DefaultChartWidthIn, w)
	assert.Equal(t, config.DefaultChartHeightIn, h)
	driver, dsn := cfg.GetDB()
	assert.Equal(t, store.DriverSQLite, driver)
	assert.Empty(t, dsn)
	assert.Equal(t, slog.LevelInfo, cfg.GetLogLevel())
}

func TestLoad_Partial(t *testing.T) {
	path := writeConfig(t, "lbp.json", `{"workers": 4, "metric": "Hellinger", "db_dsn": "sig.db", "log_level": "debug"}`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.GetWorkers())
	assert.Equal(t, similarity.Hellinger, cfg.GetMetric())
	assert.Equal(t, config.DefaultImageScale, cfg.GetImageScale())
	_, dsn := cfg.GetDB()
	assert.Equal(t, "sig.db", dsn)
	assert.Equal(t, slog.LevelDebug, cfg.GetLogLevel())
}

func TestLoad_LogLevelWhitespace(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "lbp.json", `{"log_level": " warn\t"}`))
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, cfg.GetLogLevel())
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"workers":  `{"workers": 0}`,
		"metric":   `{"metric": "manhattan"}`,
		"scale":    `{"image_scale": -2}`,
		"width":    `{"chart_width_in": 0}`,
		"height":   `{"chart_height_in": -1}`,
		"driver":   `{"db_driver": "mysql"}`,
		"loglevel": `{"log_level": "loud"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, "lbp.json", body))
			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestLoad_FileChecks(t *testing.T) {
	_, err := config.Load(writeConfig(t, "lbp.yaml", `{}`))
	require.ErrorContains(t, err, ".json extension")

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorContains(t, err, "stat")

	_, err = config.Load(writeConfig(t, "broken.json", `{"workers":`))
	require.ErrorContains(t, err, "parse")

	big := `{"metric": "l1", "db_dsn": "` + strings.Repeat("a", 1<<20) + `"}`
	_, err = config.Load(writeConfig(t, "big.json", big))
	require.ErrorContains(t, err, "too large")
}
