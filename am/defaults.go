package am

import (
	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("cli.mode", ModeRoundTrip)
	v.SetDefault("cli.prompts", false)
	v.SetDefault("cli.input_prompt", "Enter text to encode as Morse:")
	v.SetDefault("cli.decode_prompt", "Decoded back to text:")

	v.SetDefault("log.json", false)
	v.SetDefault("log.theme", "everforest")
}

// BindEnvVars explicitly binds the settings most often overridden per shell
func BindEnvVars(v *viper.Viper) {
	v.BindEnv("cli.mode", "MORSE_MODE")
	v.BindEnv("log.theme", "MORSE_LOG_THEME")
}
