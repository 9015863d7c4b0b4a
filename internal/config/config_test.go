package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "1y", cfg.DataSource.Period)
	assert.Equal(t, "1d", cfg.DataSource.Interval)
	assert.Equal(t, 300, cfg.Cache.TTLSeconds)
	assert.Equal(t, 4, cfg.Fetch.Concurrency)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 14, cfg.Indicators.RSIPeriod)
	assert.Equal(t, 26, cfg.Indicators.MACDSlow)
	assert.Equal(t, 80, cfg.Scoring.StrongBuyMin)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
watchlist: [AAPL, MSFT]
cache:
  ttl_seconds: 60
indicators:
  rsi_period: 21
scoring:
  strong_buy_min: 90
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"AAPL", "MSFT"}, cfg.Watchlist)
	assert.Equal(t, 60, cfg.Cache.TTLSeconds)
	assert.Equal(t, 21, cfg.Indicators.RSIPeriod)
	assert.Equal(t, 90, cfg.Scoring.StrongBuyMin)
	// untouched fields keep their defaults
	assert.Equal(t, 14, cfg.Indicators.StochPeriod)
	assert.Equal(t, 50, cfg.Scoring.HoldMin)
	assert.NoError(t, cfg.Validate())
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, `watchlist: [AAPL]`)
	t.Setenv("WATCHLIST", "NVDA, AMZN")
	t.Setenv("SERVER_ADDR", ":9090")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"NVDA", "AMZN"}, cfg.Watchlist)
	assert.Equal(t, ":9090", cfg.Server.Addr)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfig(t, "watchlist: [unterminated")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"fast not shorter than slow", "indicators:\n  macd_fast: 26\n  macd_slow: 12\n"},
		{"negative rsi period", "indicators:\n  rsi_period: -1\n"},
		{"bollinger period too small", "indicators:\n  bollinger_period: 1\n"},
		{"rsi band inverted", "scoring:\n  rsi_band_low: 80\n  rsi_band_high: 20\n"},
		{"sentiment threshold out of range", "scoring:\n  sentiment_threshold: 1.5\n"},
		{"thresholds not descending", "scoring:\n  strong_buy_min: 40\n  hold_min: 50\n  wait_min: 30\n"},
		{"negative delay", "fetch:\n  delay_ms: -5\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, c.yaml))
			require.NoError(t, err)
			assert.Error(t, cfg.Validate())
		})
	}
}
