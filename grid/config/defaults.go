package config

import "time"

// Defaults
const (
	DefaultRowHeight      = 40
	DefaultViewportHeight = 600
	DefaultOverscan       = 5
	DefaultDebounce       = 300 * time.Millisecond
)

// Defaults is an Option that resets a Config to its default state
func Defaults(c *Config) error {
	*c = Config{
		RowHeight:      DefaultRowHeight,
		ViewportHeight: DefaultViewportHeight,
		Overscan:       DefaultOverscan,
		Debounce:       DefaultDebounce,
		Searchable:     true,
		Sortable:       true,
		Selectable:     true,
	}
	return nil
}
