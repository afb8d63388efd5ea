package metrics

import (
	"context"
	"time"
)

// Collector defines the core domain interface
type Collector interface {
	Record(ctx context.Context, reading *Reading) error
	Close() error
}

// Repository defines the interface for readings storage
type Repository interface {
	Record(reading *Reading) error
	Close() error
}

// Reading is one emitted metric line in archival form. Percent is only
// meaningful when HasPercent is set (fan readings).
type Reading struct {
	Timestamp   time.Time
	Host        string
	Measurement string
	Key         string
	Sensor      string
	Value       float64
	Percent     float64
	HasPercent  bool
}
