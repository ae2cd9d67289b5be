package config

import (
	"fmt"
	"net/url"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if !validLogLevels[c.LogLevel] {
		errs = append(errs, fmt.Sprintf("log_level: must be one of debug, info, warn, error; got %q", c.LogLevel))
	}

	if c.Database.Path == "" {
		errs = append(errs, "database.path: required")
	}
	if c.Index.Path == "" {
		errs = append(errs, "index.path: required")
	}

	// Vision is optional; scan is the only command that needs it.
	if c.Vision.URL != "" {
		if u, err := url.Parse(c.Vision.URL); err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Sprintf("vision.url: not a valid URL: %q", c.Vision.URL))
		}
	}

	if c.Matching.SearchLimit < 1 || c.Matching.SearchLimit > 50 {
		errs = append(errs, fmt.Sprintf("matching.search_limit: must be between 1 and 50, got %d", c.Matching.SearchLimit))
	}
	if c.Matching.Concurrency < 1 || c.Matching.Concurrency > 64 {
		errs = append(errs, fmt.Sprintf("matching.concurrency: must be between 1 and 64, got %d", c.Matching.Concurrency))
	}
	if c.Matching.ItemTimeout <= 0 {
		errs = append(errs, "matching.item_timeout: must be positive")
	}

	return errs
}
