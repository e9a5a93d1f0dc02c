package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"StockForecast/internal/collector"
	"StockForecast/internal/forecast"
	"StockForecast/internal/model"
	"StockForecast/internal/notifier"
	"StockForecast/internal/recorder"
)

// Scheduler runs the forecast report job, once or on a cron schedule.
type Scheduler struct {
	Cron       *cron.Cron
	Collector  *collector.Collector
	Notifier   notifier.Notifier
	Recorder   recorder.Recorder
	Symbol     string
	WindowSize int
	Ctx        context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, n notifier.Notifier, rec recorder.Recorder, symbol string, windowSize int) *Scheduler {
	return &Scheduler{
		Cron:       cron.New(cron.WithSeconds()),
		Collector:  col,
		Notifier:   n,
		Recorder:   rec,
		Symbol:     symbol,
		WindowSize: windowSize,
		Ctx:        ctx,
	}
}

// Register schedules the report job with a six-field (seconds-first) cron spec.
func (s *Scheduler) Register(reportCron string) error {
	if _, err := s.Cron.AddFunc(reportCron, s.reportTask); err != nil {
		return fmt.Errorf("register report task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Info().Msg("scheduler started")
}

// Stop stops the cron scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Info().Msg("scheduler stopped")
}

// RunOnce loads the sequence, forecasts, journals and delivers the report.
// Journal and delivery failures are logged; only load and forecast errors are returned.
func (s *Scheduler) RunOnce() (*model.Forecast, error) {
	store, err := s.Collector.Collect()
	if err != nil {
		return nil, fmt.Errorf("collect: %w", err)
	}

	f, err := forecast.Evaluate(store.Observations(), s.WindowSize)
	if err != nil {
		return nil, fmt.Errorf("forecast %s: %w", s.Symbol, err)
	}
	f.Symbol = s.Symbol

	if _, err := s.Recorder.RecordForecast(f); err != nil {
		log.Error().Err(err).Msg("record forecast")
	}
	if err := s.Notifier.Notify(s.Ctx, f); err != nil {
		log.Error().Err(err).Msg("deliver report")
	}

	log.Info().
		Str("symbol", f.Symbol).
		Int("observations", f.Observations).
		Float64("predicted", f.Predicted).
		Float64("accuracy", f.Accuracy).
		Msg("forecast complete")
	return f, nil
}

func (s *Scheduler) reportTask() {
	log.Info().Msg("running scheduled report")
	if _, err := s.RunOnce(); err != nil {
		log.Error().Err(err).Msg("scheduled report")
	}
}
