// Package analytics derives read-only aggregate views over the log store and
// the catalog. Every function is pure with respect to its inputs and treats
// "no data yet" as the normal steady state: empty logs or an empty catalog
// produce empty or zeroed results, never errors.
package analytics

import (
	"log/slog"
	"math"
	"time"

	"github.com/outfitly/wardrobe-backend/internal/catalog"
)

// Config holds the analytics policy parameters. The wear-partition thresholds
// are deliberately configurable: the product never fixed a cutoff for
// "rarely" vs "frequently" worn.
type Config struct {
	// TopWornLimit is the default size of the most-worn-items ranking.
	TopWornLimit int
	// FrequentQuartile is the top fraction of outfits (by wear count)
	// considered frequently worn.
	FrequentQuartile float64
	// RareQuartile is the bottom fraction considered rarely worn.
	RareQuartile float64
	// RarelyIncludesZero forces never-worn outfits into the rarely bucket
	// regardless of quartile boundaries.
	RarelyIncludesZero bool
}

// DefaultConfig returns the standard thresholds.
func DefaultConfig() Config {
	return Config{
		TopWornLimit:       5,
		FrequentQuartile:   0.25,
		RareQuartile:       0.25,
		RarelyIncludesZero: true,
	}
}

// Service implements the usage analytics engine.
type Service struct {
	log     *slog.Logger
	catalog catalog.Provider
	cfg     Config
	loc     *time.Location
	now     func() time.Time
}

// NewService creates the analytics service.
func NewService(log *slog.Logger, cat catalog.Provider, cfg Config, loc *time.Location) *Service {
	if cfg.TopWornLimit <= 0 {
		cfg.TopWornLimit = 5
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		log:     log.With("service", "analytics"),
		catalog: cat,
		cfg:     cfg,
		loc:     loc,
		now:     time.Now,
	}
}

// percentage rounds count/total to a whole percent; 0 when total is 0.
func percentage(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}
