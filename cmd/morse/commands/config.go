package commands

import (
	"github.com/spf13/viper"

	"github.com/dongsukag/morse-code/am"
	"github.com/dongsukag/morse-code/logger"
)

// LoadConfig returns the active configuration. Load and validation
// failures are logged at info level and replaced by the defaults, so a
// broken config file never changes the output or exit status of the codec
// modes.
func LoadConfig() *am.Config {
	cfg, err := am.Load()
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		logger.Infow("Configuration rejected, using defaults", logger.FieldError, err)
		return defaultConfig()
	}
	return cfg
}

func defaultConfig() *am.Config {
	v := viper.New()
	am.SetDefaults(v)
	cfg, err := am.LoadWithViper(v)
	if err != nil {
		// Defaults always unmarshal; keep the codec usable regardless
		return &am.Config{CLI: am.CLIConfig{Mode: am.ModeRoundTrip}}
	}
	return cfg
}
