package notifier

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"StockForecast/internal/model"
)

// FormatFixed renders v with two decimal places. NaN and infinities, which
// decimal cannot represent, are spelled out.
func FormatFixed(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}

// FormatReport renders the two-line console report.
func FormatReport(f *model.Forecast) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Predicted next price: %s\n", FormatFixed(f.Predicted)))
	b.WriteString(fmt.Sprintf("Model accuracy: %s%%\n", FormatFixed(f.Accuracy)))
	return b.String()
}

// FormatTelegramReport renders the report as a Telegram HTML message with the
// backtest detail appended.
func FormatTelegramReport(f *model.Forecast) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📈 <b>%s forecast</b> | %s\n\n", f.Symbol, f.GeneratedAt.Format("2006-01-02 15:04")))
	b.WriteString(fmt.Sprintf("Observations: %d (window %d)\n", f.Observations, f.WindowSize))
	b.WriteString(fmt.Sprintf("Predicted next price: %s\n", FormatFixed(f.Predicted)))
	b.WriteString(fmt.Sprintf("Model accuracy: %s%%\n", FormatFixed(f.Accuracy)))

	if len(f.Steps) > 0 {
		b.WriteString("\n<b>Backtest:</b>\n")
		for _, s := range f.Steps {
			b.WriteString(fmt.Sprintf("  %s  predicted %s, actual %s, error %s\n",
				s.Time.Format("2006-01-02"), FormatFixed(s.Predicted), FormatFixed(s.Actual), FormatFixed(s.Error)))
		}
	}
	return b.String()
}
