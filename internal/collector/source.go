package collector

import (
	"errors"

	"SignalOverlay/internal/model"
)

var (
	// ErrNoRows is returned when a source yields no price rows.
	ErrNoRows = errors.New("no price rows")
	// ErrMissingColumn is returned when a required column is absent.
	ErrMissingColumn = errors.New("missing column")
)

// Source defines the interface for loading a daily close series.
type Source interface {
	Load() ([]model.PricePoint, error)
	Name() string
}
