package collector

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"StockForecast/internal/model"
)

var timeLayouts = []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"}

func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// CSVSource reads "timestamp,price" rows. A header row is skipped when its
// price column does not parse as a number.
type CSVSource struct {
	Path string
}

func (s *CSVSource) Name() string { return "csv:" + s.Path }

func (s *CSVSource) Load() ([]model.Observation, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()
	return ReadCSV(f)
}

// ReadCSV parses observations from r in file order.
func ReadCSV(r io.Reader) ([]model.Observation, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var obs []model.Observation
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}

		price, perr := decimal.NewFromString(strings.TrimSpace(rec[1]))
		if perr != nil {
			if line == 1 {
				continue // header
			}
			return nil, fmt.Errorf("csv line %d: parse price: %w", line, perr)
		}
		ts, err := parseTime(rec[0])
		if err != nil {
			return nil, fmt.Errorf("csv line %d: %w", line, err)
		}
		obs = append(obs, model.Observation{Price: price.InexactFloat64(), Time: ts})
	}
	return obs, nil
}

// jsonObservation accepts prices as JSON numbers or quoted decimals.
type jsonObservation struct {
	Price     decimal.Decimal `json:"price"`
	Timestamp string          `json:"timestamp"`
}

// JSONSource reads an array of {"price": ..., "timestamp": "..."} objects.
type JSONSource struct {
	Path string
}

func (s *JSONSource) Name() string { return "json:" + s.Path }

func (s *JSONSource) Load() ([]model.Observation, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read json: %w", err)
	}
	return DecodeJSON(data)
}

// DecodeJSON parses observations from a JSON array in array order.
func DecodeJSON(data []byte) ([]model.Observation, error) {
	var raw []jsonObservation
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	obs := make([]model.Observation, 0, len(raw))
	for i, r := range raw {
		ts, err := parseTime(r.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("json item %d: %w", i, err)
		}
		obs = append(obs, model.Observation{Price: r.Price.InexactFloat64(), Time: ts})
	}
	return obs, nil
}
