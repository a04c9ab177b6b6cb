package config

import (
	"fmt"
	"time"
)

type (
	// Config conveys the properties of a Grid that one can configure
	// using Options
	Config struct {
		RowHeight      int
		ViewportHeight int
		Overscan       int
		Debounce       time.Duration
		Searchable     bool
		Sortable       bool
		Selectable     bool
	}

	// Option applies an option to a grid configuration instance
	Option func(*Config) error
)

// Error messages
const (
	ErrRowHeightRequired      = "row height must be positive: %d"
	ErrViewportHeightRequired = "viewport height must be positive: %d"
	ErrOverscanInvalid        = "overscan must not be negative: %d"
	ErrDebounceInvalid        = "debounce delay must not be negative: %s"
)

// Make produces a Config by applying Defaults followed by the provided
// Options
func Make(o ...Option) (*Config, error) {
	res := &Config{}
	opts := append([]Option{Defaults}, o...)
	for _, opt := range opts {
		if err := opt(res); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// WithRowHeight sets the fixed pixel height of a rendered row
func WithRowHeight(h int) Option {
	return func(c *Config) error {
		if h <= 0 {
			return fmt.Errorf(ErrRowHeightRequired, h)
		}
		c.RowHeight = h
		return nil
	}
}

// WithViewportHeight sets the visible pixel height of the viewport
func WithViewportHeight(h int) Option {
	return func(c *Config) error {
		if h <= 0 {
			return fmt.Errorf(ErrViewportHeightRequired, h)
		}
		c.ViewportHeight = h
		return nil
	}
}

// WithOverscan sets the number of rows materialized beyond each edge of
// the visible window
func WithOverscan(n int) Option {
	return func(c *Config) error {
		if n < 0 {
			return fmt.Errorf(ErrOverscanInvalid, n)
		}
		c.Overscan = n
		return nil
	}
}

// WithDebounce sets the quiet period applied to free-text search input.
// A zero delay propagates search input immediately
func WithDebounce(d time.Duration) Option {
	return func(c *Config) error {
		if d < 0 {
			return fmt.Errorf(ErrDebounceInvalid, d)
		}
		c.Debounce = d
		return nil
	}
}

// WithSearchable controls whether the grid accepts free-text search
func WithSearchable(enabled bool) Option {
	return func(c *Config) error {
		c.Searchable = enabled
		return nil
	}
}

// WithSortable controls whether the grid accepts sort toggling
func WithSortable(enabled bool) Option {
	return func(c *Config) error {
		c.Sortable = enabled
		return nil
	}
}

// WithSelectable controls whether the grid tracks row selection
func WithSelectable(enabled bool) Option {
	return func(c *Config) error {
		c.Selectable = enabled
		return nil
	}
}
