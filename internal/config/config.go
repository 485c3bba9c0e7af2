package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Supported data source formats.
const (
	FormatCSV    = "csv"
	FormatSQLite = "sqlite"
	FormatMock   = "mock"
)

// Config holds all application configuration.
type Config struct {
	DataSource struct {
		Path        string  `yaml:"path"`
		Format      string  `yaml:"format"`
		Symbol      string  `yaml:"symbol"`
		DateColumn  string  `yaml:"date_column"`
		CloseColumn string  `yaml:"close_column"`
		Delimiter   string  `yaml:"delimiter"`
		Table       string  `yaml:"table"`
		TableSymbol string  `yaml:"table_symbol"`
		MockDays    int     `yaml:"mock_days"`
		MockPrice   float64 `yaml:"mock_price"`
	} `yaml:"data_source"`
	Indicators struct {
		ShortWindow  int    `yaml:"short_window"`
		LongWindow   int    `yaml:"long_window"`
		RSIWindow    int    `yaml:"rsi_window"`
		RSISmoothing string `yaml:"rsi_smoothing"`
	} `yaml:"indicators"`
	Signals struct {
		Overbought float64 `yaml:"overbought"`
		Oversold   float64 `yaml:"oversold"`
	} `yaml:"signals"`
	Chart struct {
		Output     string  `yaml:"output"`
		Title      string  `yaml:"title"`
		WidthInch  float64 `yaml:"width_inch"`
		HeightInch float64 `yaml:"height_inch"`
	} `yaml:"chart"`

	formatInferred bool
}

// Default returns a config holding the numeric indicator and signal defaults.
// Load seeds these before decoding so an explicit zero survives.
func Default() *Config {
	cfg := &Config{}
	cfg.Indicators.ShortWindow = 10
	cfg.Indicators.LongWindow = 50
	cfg.Indicators.RSIWindow = 14
	cfg.Signals.Overbought = 70
	cfg.Signals.Oversold = 30
	return cfg
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error; defaults fill the gaps.
func Load(path string) (*Config, error) {
	cfg := Default()

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
	if v := os.Getenv("DATA_PATH"); v != "" {
		cfg.DataSource.Path = v
	}
	if v := os.Getenv("DATA_FORMAT"); v != "" {
		cfg.DataSource.Format = v
	}
	if v := os.Getenv("SYMBOL"); v != "" {
		cfg.DataSource.Symbol = v
	}
	if v := os.Getenv("CHART_OUTPUT"); v != "" {
		cfg.Chart.Output = v
	}
	if v := os.Getenv("RSI_SMOOTHING"); v != "" {
		cfg.Indicators.RSISmoothing = v
	}

	cfg.ApplyDefaults()
	return cfg, nil
}

// ApplyDefaults fills unset string and size fields. Windows and thresholds
// come from Default. Format is inferred from the path extension when not given.
func (c *Config) ApplyDefaults() {
	if c.DataSource.Path == "" && c.DataSource.Format != FormatMock {
		c.DataSource.Path = "./xau-data/EURUSD.csv"
	}
	if c.DataSource.Format == "" {
		c.DataSource.Format = formatFromPath(c.DataSource.Path)
		c.formatInferred = true
	}
	c.DataSource.Format = strings.ToLower(c.DataSource.Format)
	if c.DataSource.Symbol == "" {
		c.DataSource.Symbol = "XAU"
	}
	if c.DataSource.Table == "" {
		c.DataSource.Table = "prices"
	}
	// Both CSV header matching and SQLite column names are case-insensitive.
	if c.DataSource.DateColumn == "" {
		c.DataSource.DateColumn = "Date"
	}
	if c.DataSource.CloseColumn == "" {
		c.DataSource.CloseColumn = "Close"
	}
	if c.DataSource.Delimiter == "" {
		c.DataSource.Delimiter = ","
	}
	if c.DataSource.MockDays == 0 {
		c.DataSource.MockDays = 365
	}
	if c.DataSource.MockPrice == 0 {
		c.DataSource.MockPrice = 2000
	}

	if c.Indicators.RSISmoothing == "" {
		c.Indicators.RSISmoothing = "simple"
	}
	c.Indicators.RSISmoothing = strings.ToLower(c.Indicators.RSISmoothing)

	if c.Chart.Output == "" {
		c.Chart.Output = "chart.png"
	}
	if c.Chart.Title == "" {
		c.Chart.Title = "Combined Trading Strategies"
	}
	if c.Chart.WidthInch == 0 {
		c.Chart.WidthInch = 10
	}
	if c.Chart.HeightInch == 0 {
		c.Chart.HeightInch = 6
	}
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	switch c.DataSource.Format {
	case FormatCSV, FormatSQLite:
		if c.DataSource.Path == "" {
			return fmt.Errorf("data_source.path is required")
		}
	case FormatMock:
		if c.DataSource.MockDays <= 0 {
			return fmt.Errorf("data_source.mock_days must be positive")
		}
	default:
		return fmt.Errorf("data_source.format %q is not one of csv, sqlite, mock", c.DataSource.Format)
	}
	if len([]rune(c.DataSource.Delimiter)) != 1 {
		return fmt.Errorf("data_source.delimiter must be a single character")
	}

	if c.Indicators.ShortWindow <= 0 || c.Indicators.LongWindow <= 0 || c.Indicators.RSIWindow <= 0 {
		return fmt.Errorf("indicator windows must be positive")
	}
	if c.Indicators.ShortWindow >= c.Indicators.LongWindow {
		return fmt.Errorf("indicators.short_window must be less than long_window")
	}
	switch c.Indicators.RSISmoothing {
	case "simple", "wilder":
	default:
		return fmt.Errorf("indicators.rsi_smoothing %q is not one of simple, wilder", c.Indicators.RSISmoothing)
	}

	if c.Signals.Oversold < 0 || c.Signals.Overbought > 100 {
		return fmt.Errorf("signal thresholds must lie within [0, 100]")
	}
	if c.Signals.Oversold >= c.Signals.Overbought {
		return fmt.Errorf("signals.oversold must be less than overbought")
	}

	if c.Chart.Output == "" {
		return fmt.Errorf("chart.output is required")
	}
	if c.Chart.WidthInch <= 0 || c.Chart.HeightInch <= 0 {
		return fmt.Errorf("chart size must be positive")
	}
	return nil
}

// SetDataPath replaces the input path, e.g. from a command-line flag.
// An inferred format follows the new extension; an explicit one is kept.
func (c *Config) SetDataPath(path string) {
	c.DataSource.Path = path
	if c.formatInferred {
		c.DataSource.Format = formatFromPath(path)
	}
}

// DelimiterRune returns the CSV delimiter as a rune.
func (c *Config) DelimiterRune() rune {
	for _, r := range c.DataSource.Delimiter {
		return r
	}
	return ','
}

func formatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite
	default:
		return FormatCSV
	}
}
