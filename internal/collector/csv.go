package collector

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"SignalOverlay/internal/model"

	"github.com/shopspring/decimal"
)

// CSVSource implements Source over a delimited file with a header row.
type CSVSource struct {
	Path        string
	DateColumn  string
	CloseColumn string
	Delimiter   rune
}

// NewCSVSource creates a CSV source with the Date/Close column names.
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{
		Path:        path,
		DateColumn:  "Date",
		CloseColumn: "Close",
		Delimiter:   ',',
	}
}

func (s *CSVSource) Name() string { return "csv" }

// Load reads the whole file. Rows are returned in file order.
func (s *CSVSource) Load() ([]model.PricePoint, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()
	return s.read(f)
}

func (s *CSVSource) read(r io.Reader) ([]model.PricePoint, error) {
	cr := csv.NewReader(r)
	if s.Delimiter != 0 {
		cr.Comma = s.Delimiter
	}
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %w", s.Path, ErrNoRows)
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	dateIdx := columnIndex(header, s.DateColumn)
	if dateIdx < 0 {
		return nil, fmt.Errorf("%w %q in %s", ErrMissingColumn, s.DateColumn, s.Path)
	}
	closeIdx := columnIndex(header, s.CloseColumn)
	if closeIdx < 0 {
		return nil, fmt.Errorf("%w %q in %s", ErrMissingColumn, s.CloseColumn, s.Path)
	}

	var points []model.PricePoint
	line := 1
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("read csv line %d: %w", line, err)
		}
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue
		}
		if dateIdx >= len(rec) || closeIdx >= len(rec) {
			return nil, fmt.Errorf("line %d: expected at least %d fields, got %d", line, max(dateIdx, closeIdx)+1, len(rec))
		}
		t, err := parseDate(rec[dateIdx])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		closePrice, err := parseClose(rec[closeIdx])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		points = append(points, model.PricePoint{Time: t, Close: closePrice})
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("%s: %w", s.Path, ErrNoRows)
	}
	return points, nil
}

func parseClose(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty close")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("parse close %q: %w", s, err)
	}
	f := d.InexactFloat64()
	if math.IsInf(f, 0) {
		return 0, fmt.Errorf("close %q out of range", s)
	}
	return f, nil
}

func columnIndex(header []string, name string) int {
	for i, h := range header {
		h = strings.TrimPrefix(h, "\ufeff")
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}
