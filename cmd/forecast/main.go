package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"StockForecast/internal/collector"
	"StockForecast/internal/config"
	"StockForecast/internal/notifier"
	"StockForecast/internal/recorder"
	"StockForecast/internal/scheduler"
)

func main() {
	cfgPath := flag.String("config", "configs/config.yaml", "Path to YAML config")
	dataPath := flag.String("data", "", "CSV or JSON price file (overrides data.path)")
	window := flag.Int("window", 0, "Forecast window size (overrides forecast.window_size)")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if v := os.Getenv("CONFIG_PATH"); v != "" {
		*cfgPath = v
	}
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	applyFlags(cfg, *dataPath, *window)
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("config validation")
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		log.Warn().Str("level", cfg.Log.Level).Msg("unknown log level, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	src, err := collector.NewSource(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("init source")
	}
	log.Info().Str("source", src.Name()).Int("window", cfg.Forecast.WindowSize).Msg("stock forecast starting")
	col := collector.NewCollector(src)

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Warn().Err(err).Msg("init sqlite recorder failed, using noop")
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}
	defer rec.Close()

	// Report sinks
	sinks := notifier.Multi{notifier.NewConsoleNotifier(os.Stdout)}
	if cfg.TelegramEnabled() {
		sinks = append(sinks, notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.NewScheduler(ctx, col, sinks, rec, cfg.Forecast.Symbol, cfg.Forecast.WindowSize)

	if cfg.Schedule.ReportCron == "" {
		if _, err := sched.RunOnce(); err != nil {
			rec.Close()
			log.Fatal().Err(err).Msg("forecast")
		}
		return
	}

	if _, err := sched.RunOnce(); err != nil {
		log.Error().Err(err).Msg("initial forecast")
	}
	if err := sched.Register(cfg.Schedule.ReportCron); err != nil {
		rec.Close()
		log.Fatal().Err(err).Msg("register cron task")
	}
	sched.Start()
	defer sched.Stop()

	log.Info().Str("cron", cfg.Schedule.ReportCron).Msg("running on schedule, press Ctrl+C to stop")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info().Msg("shutdown signal received, stopping")
	cancel()
}

// applyFlags lets command-line flags win over file and environment settings.
// The source kind follows the data file's extension.
func applyFlags(cfg *config.Config, dataPath string, window int) {
	if window != 0 {
		cfg.Forecast.WindowSize = window
	}
	if dataPath == "" {
		return
	}
	cfg.Data.Path = dataPath
	switch strings.ToLower(filepath.Ext(dataPath)) {
	case ".json":
		cfg.Data.Source = config.SourceJSON
	default:
		cfg.Data.Source = config.SourceCSV
	}
}
