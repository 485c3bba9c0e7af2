package collector

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestCSVSource_Load(t *testing.T) {
	path := writeFile(t, "EURUSD.csv", strings.Join([]string{
		"Date,Open,High,Low,Close,Volume",
		"2024-01-02,1.1040,1.1045,1.0940,1.0942,0",
		"2024-01-03,1.0942,1.0960,1.0910,1.0920,0",
		"2024-01-04,1.0920,1.0970,1.0915,1.0950,0",
		"",
	}, "\n"))

	points, err := NewCSVSource(path).Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}
	if !points[0].Time.Equal(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected first date %v", points[0].Time)
	}
	if points[2].Close != 1.0950 {
		t.Errorf("expected close 1.0950, got %v", points[2].Close)
	}
}

func TestCSVSource_CustomColumnsAndDelimiter(t *testing.T) {
	path := writeFile(t, "xau.csv", "\ufefftime;price\n2024.03.01 00:00;2050.5\n2024.03.04 00:00;2115.25\n")
	src := NewCSVSource(path)
	src.DateColumn = "TIME"
	src.CloseColumn = "Price"
	src.Delimiter = ';'

	points, err := src.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 2 || points[1].Close != 2115.25 {
		t.Fatalf("unexpected points: %+v", points)
	}
}

func TestCSVSource_KeepsFileOrder(t *testing.T) {
	path := writeFile(t, "unordered.csv", "Date,Close\n2024-01-05,3\n2024-01-01,1\n")
	points, err := NewCSVSource(path).Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if points[0].Close != 3 || points[1].Close != 1 {
		t.Errorf("rows should not be reordered, got %+v", points)
	}
}

func TestCSVSource_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		target  error
		substr  string
	}{
		{"empty file", "", ErrNoRows, ""},
		{"header only", "Date,Close\n", ErrNoRows, ""},
		{"missing close column", "Date,Open\n2024-01-01,1\n", ErrMissingColumn, "Close"},
		{"missing date column", "Day,Close\n2024-01-01,1\n", ErrMissingColumn, "Date"},
		{"bad date", "Date,Close\nyesterday,1\n", nil, "line 2"},
		{"bad close", "Date,Close\n2024-01-01,1.2\n2024-01-02,abc\n", nil, "line 3"},
		{"empty close", "Date,Close\n2024-01-01,\n", nil, "empty close"},
		{"close overflows", "Date,Close\n2024-01-01,1.5\n2024-01-02,1e400\n", nil, "line 3"},
		{"negative overflow", "Date,Close\n2024-01-01,-1e400\n", nil, "out of range"},
		{"short row", "Date,Open,Close\n2024-01-01,1\n", nil, "fields"},
	}
	for _, tt := range tests {
		path := writeFile(t, "bad.csv", tt.content)
		_, err := NewCSVSource(path).Load()
		if err == nil {
			t.Errorf("%s: expected error", tt.name)
			continue
		}
		if tt.target != nil && !errors.Is(err, tt.target) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.target, err)
		}
		if tt.substr != "" && !strings.Contains(err.Error(), tt.substr) {
			t.Errorf("%s: expected %q in %q", tt.name, tt.substr, err.Error())
		}
	}
}

func TestCSVSource_MissingFile(t *testing.T) {
	_, err := NewCSVSource(filepath.Join(t.TempDir(), "nope.csv")).Load()
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestParseDate_Layouts(t *testing.T) {
	want := time.Date(2023, 7, 14, 0, 0, 0, 0, time.UTC)
	for _, s := range []string{
		"2023-07-14",
		"2023-07-14 00:00:00",
		"2023-07-14T00:00:00Z",
		"2023.07.14",
		"2023/07/14",
		"07/14/2023",
		"7/14/2023",
		"14-Jul-2023",
		"Jul 14, 2023",
	} {
		got, err := parseDate(s)
		if err != nil {
			t.Errorf("%q: %v", s, err)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("%q: got %v, want %v", s, got, want)
		}
	}
	if _, err := parseDate("  "); err == nil {
		t.Error("expected error for blank date")
	}
}
