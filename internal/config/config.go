// Package config loads and validates the application configuration.
// Invalid values are the one error class that is fatal at construction
// time; everything downstream degrades instead of failing.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"StockRadar/internal/calculator"
	"StockRadar/internal/strategy"
)

// Config holds all application configuration.
type Config struct {
	Watchlist  []string `yaml:"watchlist"`
	DataSource struct {
		BaseURL  string `yaml:"base_url"`
		APIKey   string `yaml:"api_key"`
		Period   string `yaml:"period"`
		Interval string `yaml:"interval"`
	} `yaml:"data_source"`
	Fetch struct {
		DelayMS     int  `yaml:"delay_ms"`
		Concurrency int  `yaml:"concurrency"`
		Parallel    bool `yaml:"parallel"`
	} `yaml:"fetch"`
	Cache struct {
		TTLSeconds int `yaml:"ttl_seconds"`
	} `yaml:"cache"`
	Indicators calculator.Config `yaml:"indicators"`
	Scoring    strategy.Config   `yaml:"scoring"`
	Telegram   struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Schedule struct {
		ScanCron string `yaml:"scan_cron"`
	} `yaml:"schedule"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("WATCHLIST"); v != "" {
		cfg.Watchlist = cfg.Watchlist[:0]
		for _, t := range strings.Split(v, ",") {
			if t = strings.TrimSpace(t); t != "" {
				cfg.Watchlist = append(cfg.Watchlist, t)
			}
		}
	}
	if v := os.Getenv("PROVIDER_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("PROVIDER_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("SERVER_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("SCAN_CRON"); v != "" {
		cfg.Schedule.ScanCron = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.DataSource.Period == "" {
		cfg.DataSource.Period = "1y"
	}
	if cfg.DataSource.Interval == "" {
		cfg.DataSource.Interval = "1d"
	}
	if cfg.Fetch.DelayMS == 0 {
		cfg.Fetch.DelayMS = 100
	}
	if cfg.Fetch.Concurrency == 0 {
		cfg.Fetch.Concurrency = 4
	}
	if cfg.Cache.TTLSeconds == 0 {
		cfg.Cache.TTLSeconds = 300
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Schedule.ScanCron == "" {
		cfg.Schedule.ScanCron = "0 0 18 * * 1-5"
	}

	ind := calculator.DefaultConfig()
	if cfg.Indicators.RSIPeriod == 0 {
		cfg.Indicators.RSIPeriod = ind.RSIPeriod
	}
	if cfg.Indicators.StochPeriod == 0 {
		cfg.Indicators.StochPeriod = ind.StochPeriod
	}
	if cfg.Indicators.MACDFast == 0 {
		cfg.Indicators.MACDFast = ind.MACDFast
	}
	if cfg.Indicators.MACDSlow == 0 {
		cfg.Indicators.MACDSlow = ind.MACDSlow
	}
	if cfg.Indicators.MACDSignal == 0 {
		cfg.Indicators.MACDSignal = ind.MACDSignal
	}
	if cfg.Indicators.BollingerPeriod == 0 {
		cfg.Indicators.BollingerPeriod = ind.BollingerPeriod
	}
	if cfg.Indicators.BollingerMult == 0 {
		cfg.Indicators.BollingerMult = ind.BollingerMult
	}
	if cfg.Indicators.SqueezeThreshold == 0 {
		cfg.Indicators.SqueezeThreshold = ind.SqueezeThreshold
	}
	if cfg.Indicators.TenkanPeriod == 0 {
		cfg.Indicators.TenkanPeriod = ind.TenkanPeriod
	}
	if cfg.Indicators.KijunPeriod == 0 {
		cfg.Indicators.KijunPeriod = ind.KijunPeriod
	}
	if cfg.Indicators.SenkouBPeriod == 0 {
		cfg.Indicators.SenkouBPeriod = ind.SenkouBPeriod
	}
	if cfg.Indicators.ATRPeriod == 0 {
		cfg.Indicators.ATRPeriod = ind.ATRPeriod
	}
	if cfg.Indicators.TrendEMAPeriod == 0 {
		cfg.Indicators.TrendEMAPeriod = ind.TrendEMAPeriod
	}
	if cfg.Indicators.SRWindow == 0 {
		cfg.Indicators.SRWindow = ind.SRWindow
	}

	sc := strategy.DefaultConfig()
	if cfg.Scoring.TrendEMAPoints == 0 {
		cfg.Scoring.TrendEMAPoints = sc.TrendEMAPoints
	}
	if cfg.Scoring.RSIBandPoints == 0 {
		cfg.Scoring.RSIBandPoints = sc.RSIBandPoints
	}
	if cfg.Scoring.RSIBandLow == 0 {
		cfg.Scoring.RSIBandLow = sc.RSIBandLow
	}
	if cfg.Scoring.RSIBandHigh == 0 {
		cfg.Scoring.RSIBandHigh = sc.RSIBandHigh
	}
	if cfg.Scoring.SqueezePoints == 0 {
		cfg.Scoring.SqueezePoints = sc.SqueezePoints
	}
	if cfg.Scoring.SentimentPoints == 0 {
		cfg.Scoring.SentimentPoints = sc.SentimentPoints
	}
	if cfg.Scoring.SentimentThreshold == 0 {
		cfg.Scoring.SentimentThreshold = sc.SentimentThreshold
	}
	if cfg.Scoring.MACDPoints == 0 {
		cfg.Scoring.MACDPoints = sc.MACDPoints
	}
	if cfg.Scoring.ValuationPoints == 0 {
		cfg.Scoring.ValuationPoints = sc.ValuationPoints
	}
	if cfg.Scoring.ROEMin == 0 {
		cfg.Scoring.ROEMin = sc.ROEMin
	}
	if cfg.Scoring.PriceToBookMax == 0 {
		cfg.Scoring.PriceToBookMax = sc.PriceToBookMax
	}
	if cfg.Scoring.StrongBuyMin == 0 {
		cfg.Scoring.StrongBuyMin = sc.StrongBuyMin
	}
	if cfg.Scoring.HoldMin == 0 {
		cfg.Scoring.HoldMin = sc.HoldMin
	}
	if cfg.Scoring.WaitMin == 0 {
		cfg.Scoring.WaitMin = sc.WaitMin
	}
}

// Validate checks every externally supplied period and threshold.
func (c *Config) Validate() error {
	ind := c.Indicators
	for name, v := range map[string]int{
		"indicators.rsi_period":       ind.RSIPeriod,
		"indicators.stoch_period":     ind.StochPeriod,
		"indicators.macd_fast":        ind.MACDFast,
		"indicators.macd_slow":        ind.MACDSlow,
		"indicators.macd_signal":      ind.MACDSignal,
		"indicators.tenkan_period":    ind.TenkanPeriod,
		"indicators.kijun_period":     ind.KijunPeriod,
		"indicators.senkou_b_period":  ind.SenkouBPeriod,
		"indicators.atr_period":       ind.ATRPeriod,
		"indicators.trend_ema_period": ind.TrendEMAPeriod,
		"indicators.sr_window":        ind.SRWindow,
	} {
		if v <= 0 {
			return fmt.Errorf("%s must be positive, got %d", name, v)
		}
	}
	if ind.MACDFast >= ind.MACDSlow {
		return fmt.Errorf("indicators.macd_fast (%d) must be shorter than macd_slow (%d)", ind.MACDFast, ind.MACDSlow)
	}
	if ind.BollingerPeriod < 2 {
		return fmt.Errorf("indicators.bollinger_period must be at least 2, got %d", ind.BollingerPeriod)
	}
	if ind.BollingerMult <= 0 {
		return fmt.Errorf("indicators.bollinger_mult must be positive, got %g", ind.BollingerMult)
	}
	if ind.SqueezeThreshold <= 0 {
		return fmt.Errorf("indicators.squeeze_threshold must be positive, got %g", ind.SqueezeThreshold)
	}

	sc := c.Scoring
	if sc.RSIBandLow < 0 || sc.RSIBandHigh > 100 || sc.RSIBandLow >= sc.RSIBandHigh {
		return fmt.Errorf("scoring rsi band [%g,%g] must satisfy 0 <= low < high <= 100", sc.RSIBandLow, sc.RSIBandHigh)
	}
	if sc.SentimentThreshold <= 0 || sc.SentimentThreshold >= 1 {
		return fmt.Errorf("scoring.sentiment_threshold must be in (0,1), got %g", sc.SentimentThreshold)
	}
	if !(sc.StrongBuyMin > sc.HoldMin && sc.HoldMin > sc.WaitMin && sc.WaitMin > 0) {
		return fmt.Errorf("scoring decision thresholds must be strictly descending and positive: %d/%d/%d",
			sc.StrongBuyMin, sc.HoldMin, sc.WaitMin)
	}
	if sc.StrongBuyMin > 100 {
		return fmt.Errorf("scoring.strong_buy_min must be <= 100, got %d", sc.StrongBuyMin)
	}

	if c.Cache.TTLSeconds <= 0 {
		return fmt.Errorf("cache.ttl_seconds must be positive, got %d", c.Cache.TTLSeconds)
	}
	if c.Fetch.Concurrency < 1 {
		return fmt.Errorf("fetch.concurrency must be at least 1, got %d", c.Fetch.Concurrency)
	}
	if c.Fetch.DelayMS < 0 {
		return fmt.Errorf("fetch.delay_ms must not be negative, got %d", c.Fetch.DelayMS)
	}
	return nil
}
