package collector

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"regexp"
	"strconv"
	"time"

	"SignalOverlay/internal/model"

	_ "modernc.org/sqlite"
)

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// SQLiteSource implements Source over a price table in a SQLite database.
// Dates may be stored as text in any accepted layout or as unix seconds.
type SQLiteSource struct {
	Path        string
	Table       string
	DateColumn  string
	CloseColumn string
	Symbol      string // optional filter on a "symbol" column
}

// NewSQLiteSource creates a source reading date/close from the prices table.
func NewSQLiteSource(path string) *SQLiteSource {
	return &SQLiteSource{
		Path:        path,
		Table:       "prices",
		DateColumn:  "date",
		CloseColumn: "close",
	}
}

func (s *SQLiteSource) Name() string { return "sqlite" }

// Load reads every row in rowid order. The database is closed before returning.
func (s *SQLiteSource) Load() ([]model.PricePoint, error) {
	for _, ident := range []string{s.Table, s.DateColumn, s.CloseColumn} {
		if !identPattern.MatchString(ident) {
			return nil, fmt.Errorf("invalid sqlite identifier %q", ident)
		}
	}

	// sql.Open would create a missing file.
	if _, err := os.Stat(s.Path); err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db, err := sql.Open("sqlite", s.Path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	defer db.Close()

	query := fmt.Sprintf("SELECT %s, %s FROM %s", s.DateColumn, s.CloseColumn, s.Table)
	var args []any
	if s.Symbol != "" {
		query += " WHERE symbol = ?"
		args = append(args, s.Symbol)
	}
	query += " ORDER BY rowid"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", s.Table, err)
	}
	defer rows.Close()

	var points []model.PricePoint
	for rows.Next() {
		var rawDate any
		var closePrice sql.NullFloat64
		if err := rows.Scan(&rawDate, &closePrice); err != nil {
			return nil, fmt.Errorf("scan row %d: %w", len(points)+1, err)
		}
		t, err := sqliteTime(rawDate)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", len(points)+1, err)
		}
		if !closePrice.Valid {
			return nil, fmt.Errorf("row %d: empty close", len(points)+1)
		}
		points = append(points, model.PricePoint{Time: t, Close: closePrice.Float64})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", s.Table, err)
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("%s.%s: %w", s.Path, s.Table, ErrNoRows)
	}

	log.Printf("[INFO] sqlite source read %d rows from %s", len(points), s.Table)
	return points, nil
}

func sqliteTime(v any) (time.Time, error) {
	switch d := v.(type) {
	case time.Time:
		return d.UTC(), nil
	case int64:
		return time.Unix(d, 0).UTC(), nil
	case float64:
		return time.Unix(int64(d), 0).UTC(), nil
	case string:
		if n, err := strconv.ParseInt(d, 10, 64); err == nil {
			return time.Unix(n, 0).UTC(), nil
		}
		return parseDate(d)
	case []byte:
		return sqliteTime(string(d))
	case nil:
		return time.Time{}, fmt.Errorf("empty date")
	default:
		return time.Time{}, fmt.Errorf("unsupported date type %T", v)
	}
}
