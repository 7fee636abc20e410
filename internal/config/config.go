package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Sector maps a sector ETF ticker to its display name.
type Sector struct {
	Ticker string `yaml:"ticker"`
	Name   string `yaml:"name"`
}

// Config holds all application configuration. Sector and symbol tables are
// loaded once and treated as immutable afterwards so the computation
// pipeline stays free of shared mutable state.
type Config struct {
	Server struct {
		Port        int    `yaml:"port"`
		MetricsAddr string `yaml:"metrics_addr"`
	} `yaml:"server"`
	DataSource struct {
		HistoryDays  int `yaml:"history_days"`
		NewsLimit    int `yaml:"news_limit"`
		HoldersLimit int `yaml:"holders_limit"`
	} `yaml:"data_source"`
	Translate struct {
		Enabled    bool   `yaml:"enabled"`
		TargetLang string `yaml:"target_lang"`
	} `yaml:"translate"`
	Analysis struct {
		StrongRSI float64 `yaml:"strong_rsi"`
	} `yaml:"analysis"`
	Heatmap struct {
		MinAreaPct    float64 `yaml:"min_area_pct"`
		SaturationPct float64 `yaml:"saturation_pct"`
	} `yaml:"heatmap"`
	Cache struct {
		SQLitePath string `yaml:"sqlite_path"`
		TTLSeconds int    `yaml:"ttl_seconds"`
	} `yaml:"cache"`
	Schedule struct {
		SectorRefreshCron string `yaml:"sector_refresh_cron"`
	} `yaml:"schedule"`
	Proxy   string   `yaml:"proxy"`
	Sectors []Sector `yaml:"sectors"`
	Symbols []string `yaml:"symbols"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error; defaults apply.
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
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = p
		}
	}
	if v := os.Getenv("METRICS_ADDR"); v != "" {
		cfg.Server.MetricsAddr = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Cache.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("SECTOR_REFRESH_CRON"); v != "" {
		cfg.Schedule.SectorRefreshCron = v
	}
	if v := os.Getenv("TRANSLATE_TARGET_LANG"); v != "" {
		cfg.Translate.TargetLang = v
	}

	// Defaults
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.DataSource.HistoryDays == 0 {
		cfg.DataSource.HistoryDays = 180
	}
	if cfg.DataSource.NewsLimit == 0 {
		cfg.DataSource.NewsLimit = 3
	}
	if cfg.DataSource.HoldersLimit == 0 {
		cfg.DataSource.HoldersLimit = 10
	}
	if cfg.Translate.TargetLang == "" {
		cfg.Translate.TargetLang = "zh-TW"
	}
	if cfg.Analysis.StrongRSI == 0 {
		cfg.Analysis.StrongRSI = 70
	}
	if cfg.Heatmap.MinAreaPct == 0 {
		cfg.Heatmap.MinAreaPct = 0.5
	}
	if cfg.Heatmap.SaturationPct == 0 {
		cfg.Heatmap.SaturationPct = 4.0
	}
	if cfg.Cache.TTLSeconds == 0 {
		cfg.Cache.TTLSeconds = 300
	}
	if cfg.Schedule.SectorRefreshCron == "" {
		cfg.Schedule.SectorRefreshCron = "0 */5 * * * *"
	}
	if len(cfg.Sectors) == 0 {
		cfg.Sectors = DefaultSectors()
	}
	if len(cfg.Symbols) == 0 {
		cfg.Symbols = DefaultSymbols()
	}

	return cfg, nil
}

// Validate checks that the tunables are inside sane ranges.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Analysis.StrongRSI <= 50 || c.Analysis.StrongRSI >= 100 {
		return fmt.Errorf("analysis.strong_rsi must be in (50, 100), got %.1f", c.Analysis.StrongRSI)
	}
	if c.Heatmap.MinAreaPct <= 0 {
		return fmt.Errorf("heatmap.min_area_pct must be positive")
	}
	if c.Heatmap.SaturationPct <= 0 {
		return fmt.Errorf("heatmap.saturation_pct must be positive")
	}
	if c.DataSource.HistoryDays < 61 {
		return fmt.Errorf("data_source.history_days must be at least 61 for the 60-day average")
	}
	if len(c.Sectors) == 0 {
		return fmt.Errorf("sectors table is empty")
	}
	return nil
}

// DefaultSectors returns the eleven S&P 500 sector ETFs tracked by the
// heatmap.
func DefaultSectors() []Sector {
	return []Sector{
		{Ticker: "XLK", Name: "科技 Technology"},
		{Ticker: "XLF", Name: "金融 Financial"},
		{Ticker: "XLV", Name: "醫療 Healthcare"},
		{Ticker: "XLY", Name: "消費 Consumer"},
		{Ticker: "XLC", Name: "通訊 Communication"},
		{Ticker: "XLI", Name: "工業 Industrial"},
		{Ticker: "XLP", Name: "民生 Staples"},
		{Ticker: "XLE", Name: "能源 Energy"},
		{Ticker: "XLRE", Name: "房產 Real Estate"},
		{Ticker: "XLB", Name: "原料 Materials"},
		{Ticker: "XLU", Name: "公用 Utilities"},
	}
}

// DefaultSymbols returns the popular-stock list offered by the dashboard.
func DefaultSymbols() []string {
	return []string{
		"AAPL", "MSFT", "GOOGL", "AMZN", "NVDA", "TSLA", "META",
		"V", "JNJ", "WMT", "JPM", "MA", "DIS", "NFLX", "COST",
	}
}
