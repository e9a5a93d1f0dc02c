package notifier

import (
	"bytes"
	"context"
	"errors"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockForecast/internal/model"
)

func sampleForecast() *model.Forecast {
	at := time.Date(2024, 1, 7, 9, 0, 0, 0, time.UTC)
	return &model.Forecast{
		Symbol:       "DEMO",
		WindowSize:   5,
		Observations: 6,
		Predicted:    1.5,
		Accuracy:     -10075,
		GeneratedAt:  at,
		Steps: []model.BacktestStep{
			{Index: 5, Time: at.AddDate(0, 0, -1), Predicted: 2.25, Actual: 104, Error: 101.75},
		},
	}
}

func TestFormatFixed(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1.5, "1.50"},
		{2.25, "2.25"},
		{-10075, "-10075.00"},
		{0, "0.00"},
		{1.0 / 3, "0.33"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatFixed(tt.in), "input %v", tt.in)
	}
}

func TestFormatReport(t *testing.T) {
	got := FormatReport(sampleForecast())
	assert.Equal(t, "Predicted next price: 1.50\nModel accuracy: -10075.00%\n", got)
}

func TestFormatTelegramReport(t *testing.T) {
	got := FormatTelegramReport(sampleForecast())
	assert.Contains(t, got, "<b>DEMO forecast</b>")
	assert.Contains(t, got, "Observations: 6 (window 5)")
	assert.Contains(t, got, "Model accuracy: -10075.00%")
	assert.Contains(t, got, "2024-01-06  predicted 2.25, actual 104.00, error 101.75")
}

func TestConsoleNotifier(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewConsoleNotifier(&buf).Notify(context.Background(), sampleForecast()))
	assert.True(t, strings.HasPrefix(buf.String(), "Predicted next price: 1.50"))
}

type stubNotifier struct {
	err   error
	calls int
}

func (s *stubNotifier) Notify(context.Context, *model.Forecast) error {
	s.calls++
	return s.err
}

func TestMulti_RunsAllReturnsFirstError(t *testing.T) {
	first := &stubNotifier{err: errors.New("first")}
	second := &stubNotifier{err: errors.New("second")}
	ok := &stubNotifier{}

	err := Multi{ok, first, second}.Notify(context.Background(), sampleForecast())
	assert.EqualError(t, err, "first")
	assert.Equal(t, 1, ok.calls)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, second.calls)
}

func newTestTelegram(url string) *TelegramNotifier {
	tn := NewTelegramNotifier("TOKEN", "123", "")
	tn.APIBase = url
	tn.Backoff = time.Millisecond
	return tn
}

func TestTelegramNotifier_Send(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/botTOKEN/sendMessage", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	require.NoError(t, newTestTelegram(srv.URL).Notify(context.Background(), sampleForecast()))
	assert.Equal(t, "123", got["chat_id"])
	assert.Equal(t, "HTML", got["parse_mode"])
	assert.Contains(t, got["text"], "Predicted next price: 1.50")
}

func TestTelegramNotifier_RetriesThenSucceeds(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) < 3 {
			http.Error(w, "busy", http.StatusTooManyRequests)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	require.NoError(t, newTestTelegram(srv.URL).SendWithRetry(context.Background(), "hi", 3))
	assert.Equal(t, int32(3), hits.Load())
}

func TestTelegramNotifier_RetriesExhausted(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := newTestTelegram(srv.URL).SendWithRetry(context.Background(), "hi", 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all 3 retries exhausted")
	assert.Equal(t, int32(3), hits.Load())
}
