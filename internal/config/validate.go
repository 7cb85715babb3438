package config

import (
	"fmt"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Analytics.validate(); err != nil {
		return fmt.Errorf("analytics: %w", err)
	}

	return nil
}

func (a *AnalyticsConfig) validate() error {
	if a.TopWornLimit <= 0 {
		return fmt.Errorf("top_worn_limit must be > 0 (got %d)", a.TopWornLimit)
	}
	if a.FrequentQuartile <= 0 || a.FrequentQuartile > 1 {
		return fmt.Errorf("frequent_quartile must be in (0, 1] (got %v)", a.FrequentQuartile)
	}
	if a.RareQuartile <= 0 || a.RareQuartile > 1 {
		return fmt.Errorf("rare_quartile must be in (0, 1] (got %v)", a.RareQuartile)
	}
	if _, err := time.LoadLocation(a.Timezone); err != nil {
		return fmt.Errorf("timezone %q: %w", a.Timezone, err)
	}
	return nil
}

// Location resolves the configured analytics timezone. Validate guarantees it
// parses; UTC is the safety net.
func (a *AnalyticsConfig) Location() *time.Location {
	loc, err := time.LoadLocation(a.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
