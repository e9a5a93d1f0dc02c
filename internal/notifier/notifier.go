package notifier

import (
	"context"
	"fmt"
	"io"
	"sync"

	"StockForecast/internal/model"
)

// Notifier delivers a finished forecast somewhere.
type Notifier interface {
	Notify(ctx context.Context, f *model.Forecast) error
}

// ConsoleNotifier writes the plain report to w.
type ConsoleNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

func NewConsoleNotifier(w io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{w: w}
}

func (c *ConsoleNotifier) Notify(_ context.Context, f *model.Forecast) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := io.WriteString(c.w, FormatReport(f)); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// Multi fans a forecast out to every notifier and returns the first error.
// Later notifiers still run when an earlier one fails.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, f *model.Forecast) error {
	var first error
	for _, n := range m {
		if err := n.Notify(ctx, f); err != nil && first == nil {
			first = err
		}
	}
	return first
}
