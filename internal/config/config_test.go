package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DataSource.Path != "./xau-data/EURUSD.csv" || cfg.DataSource.Format != FormatCSV {
		t.Errorf("unexpected source defaults: %+v", cfg.DataSource)
	}
	if cfg.Indicators.ShortWindow != 10 || cfg.Indicators.LongWindow != 50 || cfg.Indicators.RSIWindow != 14 {
		t.Errorf("unexpected window defaults: %+v", cfg.Indicators)
	}
	if cfg.Signals.Overbought != 70 || cfg.Signals.Oversold != 30 {
		t.Errorf("unexpected threshold defaults: %+v", cfg.Signals)
	}
	if cfg.Chart.Output != "chart.png" || cfg.Chart.WidthInch != 10 || cfg.Chart.HeightInch != 6 {
		t.Errorf("unexpected chart defaults: %+v", cfg.Chart)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_YAMLAndEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
data_source:
  path: data/gold.db
  symbol: GOLD
  table: daily
indicators:
  short_window: 5
  long_window: 20
  rsi_smoothing: Wilder
chart:
  output: out/gold.svg
`)
	t.Setenv("SYMBOL", "XAUUSD")
	t.Setenv("CHART_OUTPUT", "")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DataSource.Format != FormatSQLite {
		t.Errorf("expected sqlite inferred from .db, got %q", cfg.DataSource.Format)
	}
	if cfg.DataSource.Symbol != "XAUUSD" {
		t.Errorf("expected env override for symbol, got %q", cfg.DataSource.Symbol)
	}
	if cfg.DataSource.Table != "daily" || cfg.Indicators.ShortWindow != 5 || cfg.Indicators.LongWindow != 20 {
		t.Errorf("yaml values not applied: %+v %+v", cfg.DataSource, cfg.Indicators)
	}
	if cfg.Indicators.RSISmoothing != "wilder" {
		t.Errorf("expected lower-cased smoothing, got %q", cfg.Indicators.RSISmoothing)
	}
	if cfg.Chart.Output != "out/gold.svg" {
		t.Errorf("empty env must not override, got %q", cfg.Chart.Output)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}
}

func TestLoad_ExplicitZeroValuesKept(t *testing.T) {
	path := writeConfig(t, `
signals:
  overbought: 100
  oversold: 0
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Signals.Oversold != 0 || cfg.Signals.Overbought != 100 {
		t.Errorf("expected oversold=0 overbought=100, got %+v", cfg.Signals)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("[0, 100] thresholds should validate: %v", err)
	}

	path = writeConfig(t, `
indicators:
  rsi_window: 0
`)
	cfg, err = Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Indicators.RSIWindow != 0 || cfg.Indicators.ShortWindow != 10 {
		t.Errorf("explicit zero window must be kept, others defaulted: %+v", cfg.Indicators)
	}
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "windows must be positive") {
		t.Errorf("expected window error, got %v", err)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "data_source: [unclosed")
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestSetDataPath(t *testing.T) {
	cfg := Default()
	cfg.ApplyDefaults()
	cfg.SetDataPath("prices.sqlite")
	if cfg.DataSource.Format != FormatSQLite {
		t.Errorf("inferred format should follow the new path, got %q", cfg.DataSource.Format)
	}

	explicit := Default()
	explicit.DataSource.Format = FormatCSV
	explicit.ApplyDefaults()
	explicit.SetDataPath("prices.db")
	if explicit.DataSource.Format != FormatCSV {
		t.Errorf("explicit format must be kept, got %q", explicit.DataSource.Format)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		substr string
	}{
		{"unknown format", func(c *Config) { c.DataSource.Format = "parquet" }, "data_source.format"},
		{"empty path", func(c *Config) { c.DataSource.Path = "" }, "data_source.path"},
		{"long delimiter", func(c *Config) { c.DataSource.Delimiter = ";;" }, "delimiter"},
		{"zero window", func(c *Config) { c.Indicators.RSIWindow = -1 }, "windows must be positive"},
		{"short >= long", func(c *Config) { c.Indicators.ShortWindow = 50 }, "short_window"},
		{"bad smoothing", func(c *Config) { c.Indicators.RSISmoothing = "ema" }, "rsi_smoothing"},
		{"threshold range", func(c *Config) { c.Signals.Overbought = 120 }, "[0, 100]"},
		{"thresholds inverted", func(c *Config) { c.Signals.Oversold = 80 }, "oversold"},
		{"chart size", func(c *Config) { c.Chart.HeightInch = -2 }, "chart size"},
	}
	for _, tt := range tests {
		cfg := Default()
		cfg.ApplyDefaults()
		tt.mutate(cfg)
		err := cfg.Validate()
		if err == nil || !strings.Contains(err.Error(), tt.substr) {
			t.Errorf("%s: expected error containing %q, got %v", tt.name, tt.substr, err)
		}
	}

	mock := Default()
	mock.DataSource.Format = FormatMock
	mock.ApplyDefaults()
	if mock.DataSource.Path != "" {
		t.Errorf("mock source should not get a default path, got %q", mock.DataSource.Path)
	}
	if err := mock.Validate(); err != nil {
		t.Errorf("mock config should validate: %v", err)
	}
}

func TestDelimiterRune(t *testing.T) {
	cfg := &Config{}
	cfg.DataSource.Delimiter = "\t"
	if cfg.DelimiterRune() != '\t' {
		t.Errorf("expected tab delimiter")
	}
	cfg.DataSource.Delimiter = ""
	if cfg.DelimiterRune() != ',' {
		t.Errorf("expected comma fallback")
	}
}
