package am

// Config represents the morse CLI configuration
type Config struct {
	CLI CLIConfig `mapstructure:"cli" toml:"cli" json:"cli" yaml:"cli"`
	Log LogConfig `mapstructure:"log" toml:"log" json:"log" yaml:"log"`
}

// CLIConfig configures the behavior of the bare `morse` command
type CLIConfig struct {
	Mode         string `mapstructure:"mode" toml:"mode" json:"mode" yaml:"mode"`                                     // roundtrip or time
	Prompts      bool   `mapstructure:"prompts" toml:"prompts" json:"prompts" yaml:"prompts"`                         // print prompts around round-trip output (default: false)
	InputPrompt  string `mapstructure:"input_prompt" toml:"input_prompt" json:"input_prompt" yaml:"input_prompt"`     // shown before reading stdin
	DecodePrompt string `mapstructure:"decode_prompt" toml:"decode_prompt" json:"decode_prompt" yaml:"decode_prompt"` // shown before the decoded line
}

// LogConfig configures diagnostic output on stderr
type LogConfig struct {
	JSON  bool   `mapstructure:"json" toml:"json" json:"json" yaml:"json"`     // zap production JSON instead of the console encoder
	Theme string `mapstructure:"theme" toml:"theme" json:"theme" yaml:"theme"` // everforest or gruvbox
}

// Modes for cli.mode
const (
	ModeRoundTrip = "roundtrip"
	ModeTime      = "time"
)

// Config file names and locations
const (
	ConfigFileName   = "morse.toml"
	SystemConfigPath = "/etc/morse/morse.toml"
	UserConfigDir    = ".morse"
	EnvPrefix        = "MORSE"
)
