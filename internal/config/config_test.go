package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func chTempDir(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(origDir) })
}

func TestLoadDefaults(t *testing.T) {
	// Change to temp dir so no config.yaml is found
	chTempDir(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Sheets.TimeoutSecs)
	assert.Equal(t, 3, cfg.Sheets.MaxRetries)
	assert.Equal(t, "Asia/Manila", cfg.Report.Timezone)
	assert.Equal(t, 0.0, cfg.Report.MdrtTargetPremium)
	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, "bigboard.db", cfg.Store.DatabaseURL)
	assert.Equal(t, 300, cfg.Cache.TTLSecs)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadFromYAML(t *testing.T) {
	chTempDir(t)

	yaml := `
sheets:
  spreadsheet_id: SHEET123
  sales_gid: "0"
  roster_gid: "111"
  dpr_gid: "222"
report:
  timezone: UTC
  mdrt_target_premium: 1000000
store:
  driver: postgres
  database_url: postgres://localhost/bigboard
log:
  level: debug
  format: console
server:
  port: 9090
`
	dir, _ := os.Getwd()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "SHEET123", cfg.Sheets.SpreadsheetID)
	assert.Equal(t, "0", cfg.Sheets.SalesGID)
	assert.Equal(t, "111", cfg.Sheets.RosterGID)
	assert.Equal(t, "222", cfg.Sheets.DprGID)
	assert.Equal(t, "UTC", cfg.Report.Timezone)
	assert.Equal(t, 1_000_000.0, cfg.Report.MdrtTargetPremium)
	assert.Equal(t, "postgres", cfg.Store.Driver)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 9090, cfg.Server.Port)
	// Defaults still apply for unset values
	assert.Equal(t, 300, cfg.Cache.TTLSecs)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	chTempDir(t)

	dir, _ := os.Getwd()
	yaml := "report:\n  timezone: UTC\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	t.Setenv("SUPERNOVA_REPORT_TIMEZONE", "Asia/Singapore")
	t.Setenv("SUPERNOVA_SERVER_PORT", "7070")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Asia/Singapore", cfg.Report.Timezone)
	assert.Equal(t, 7070, cfg.Server.Port)
}

func TestInitLogger(t *testing.T) {
	require.NoError(t, InitLogger(LogConfig{Level: "debug", Format: "console"}))
	assert.NotNil(t, zap.L())

	require.NoError(t, InitLogger(LogConfig{Level: "info", Format: "json"}))

	err := InitLogger(LogConfig{Level: "nope", Format: "json"})
	require.Error(t, err)
}
