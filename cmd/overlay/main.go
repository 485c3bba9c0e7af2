package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"SignalOverlay/internal/calculator"
	"SignalOverlay/internal/chart"
	"SignalOverlay/internal/collector"
	"SignalOverlay/internal/config"
	"SignalOverlay/internal/pipeline"
	"SignalOverlay/internal/report"
	"SignalOverlay/internal/strategy"

	"github.com/joho/godotenv"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfgPath := flag.String("config", "", "Path to YAML config (default configs/config.yaml or $CONFIG_PATH)")
	dataPath := flag.String("data", "", "Price data file, overrides data_source.path")
	outPath := flag.String("out", "", "Chart output file, overrides chart.output")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[WARN] load .env: %v", err)
	}

	// Load config
	path := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}
	if *cfgPath != "" {
		path = *cfgPath
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if *dataPath != "" {
		cfg.SetDataPath(*dataPath)
	}
	if *outPath != "" {
		cfg.Chart.Output = *outPath
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init source
	var src collector.Source
	switch cfg.DataSource.Format {
	case config.FormatSQLite:
		s := collector.NewSQLiteSource(cfg.DataSource.Path)
		s.Table = cfg.DataSource.Table
		s.DateColumn = cfg.DataSource.DateColumn
		s.CloseColumn = cfg.DataSource.CloseColumn
		s.Symbol = cfg.DataSource.TableSymbol
		src = s
	case config.FormatMock:
		src = &collector.MockSource{BasePrice: cfg.DataSource.MockPrice, Days: cfg.DataSource.MockDays}
	default:
		s := collector.NewCSVSource(cfg.DataSource.Path)
		s.DateColumn = cfg.DataSource.DateColumn
		s.CloseColumn = cfg.DataSource.CloseColumn
		s.Delimiter = cfg.DelimiterRune()
		src = s
	}
	log.Printf("[INFO] data source: %s %s", src.Name(), cfg.DataSource.Path)

	params := calculator.Params{
		ShortWindow:  cfg.Indicators.ShortWindow,
		LongWindow:   cfg.Indicators.LongWindow,
		RSIWindow:    cfg.Indicators.RSIWindow,
		RSISmoothing: cfg.Indicators.RSISmoothing,
	}
	th := strategy.Thresholds{
		Overbought: cfg.Signals.Overbought,
		Oversold:   cfg.Signals.Oversold,
	}
	renderer := chart.NewRenderer(cfg.Chart.Output, cfg.Chart.Title, cfg.Chart.WidthInch, cfg.Chart.HeightInch)

	p := pipeline.New(collector.NewCollector(src, cfg.DataSource.Symbol), params, th, renderer)
	res, err := p.Run()
	if err != nil {
		log.Fatalf("[FATAL] run: %v", err)
	}

	fmt.Print(report.FormatSummary(res))
}
