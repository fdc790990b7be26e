package am

import (
	"github.com/dongsukag/morse-code/errors"
	"github.com/dongsukag/morse-code/logger"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	switch c.CLI.Mode {
	case ModeRoundTrip, ModeTime:
	default:
		return errors.WithHintf(
			errors.NewInvalidRequestError("cli.mode %q", c.CLI.Mode),
			"use %q or %q", ModeRoundTrip, ModeTime)
	}

	// Empty theme falls back to the logger default
	if c.Log.Theme != "" && !logger.IsTheme(c.Log.Theme) {
		return errors.WithHintf(
			errors.NewInvalidRequestError("log.theme %q", c.Log.Theme),
			"use %q or %q", logger.ThemeEverforest, logger.ThemeGruvbox)
	}

	return nil
}
