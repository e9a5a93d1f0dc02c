package recorder

import (
	"database/sql"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"StockForecast/internal/model"
)

// SQLiteRecorder journals forecast runs to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Info().Str("path", dbPath).Msg("sqlite recorder opened")
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS forecasts (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp     INTEGER NOT NULL,
			symbol        TEXT,
			window_size   INTEGER,
			observations  INTEGER,
			predicted     REAL,
			accuracy      REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_forecasts_ts ON forecasts(timestamp)`,

		`CREATE TABLE IF NOT EXISTS backtest_steps (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			forecast_id  INTEGER NOT NULL REFERENCES forecasts(id),
			step_index   INTEGER,
			observed_at  INTEGER,
			predicted    REAL,
			actual       REAL,
			abs_error    REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_steps_forecast ON backtest_steps(forecast_id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// nullable maps NaN (a zero forecast accumulator) to SQL NULL.
func nullable(v float64) sql.NullFloat64 {
	return sql.NullFloat64{Float64: v, Valid: !math.IsNaN(v)}
}

// RecordForecast writes one forecast row and its backtest steps in a single
// transaction and returns the forecast id.
func (r *SQLiteRecorder) RecordForecast(f *model.Forecast) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	at := f.GeneratedAt
	if at.IsZero() {
		at = time.Now()
	}

	tx, err := r.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`INSERT INTO forecasts
		(timestamp, symbol, window_size, observations, predicted, accuracy)
		VALUES (?,?,?,?,?,?)`,
		at.Unix(), f.Symbol, f.WindowSize, f.Observations,
		nullable(f.Predicted), nullable(f.Accuracy),
	)
	if err != nil {
		return 0, fmt.Errorf("insert forecast: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("forecast id: %w", err)
	}

	for _, s := range f.Steps {
		if _, err := tx.Exec(`INSERT INTO backtest_steps
			(forecast_id, step_index, observed_at, predicted, actual, abs_error)
			VALUES (?,?,?,?,?,?)`,
			id, s.Index, s.Time.Unix(), nullable(s.Predicted), s.Actual, nullable(s.Error),
		); err != nil {
			return 0, fmt.Errorf("insert step %d: %w", s.Index, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return id, nil
}

func (r *SQLiteRecorder) Close() error {
	log.Info().Msg("closing sqlite recorder")
	return r.db.Close()
}
