package am

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/dongsukag/morse-code/errors"
	"github.com/dongsukag/morse-code/logger"
)

var globalConfig *Config
var viperInstance *viper.Viper

// ConfigFile describes one candidate location in the config cascade
type ConfigFile struct {
	Source string `json:"source"`
	Path   string `json:"path"`
	Exists bool   `json:"exists"`
	Loaded bool   `json:"loaded"`
}

var configFiles []ConfigFile

// Load reads the configuration using Viper. The result is cached.
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	config, err := LoadWithViper(initViper())
	if err != nil {
		return nil, err
	}

	globalConfig = config
	return globalConfig, nil
}

// LoadWithViper loads configuration using a provided Viper instance
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &config, nil
}

// LoadFromFile loads configuration from a specific file path on top of the defaults
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	// Defaults only; the environment is not consulted for an explicit file
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	config, err := LoadWithViper(v)
	if err != nil {
		return nil, errors.Wrapf(err, "config file %s", configPath)
	}
	return config, nil
}

// Reset clears the cached configuration (useful for testing)
func Reset() {
	globalConfig = nil
	viperInstance = nil
	configFiles = nil
}

// Files returns the config cascade as checked by the last load, lowest
// precedence first.
func Files() []ConfigFile {
	initViper()
	out := make([]ConfigFile, len(configFiles))
	copy(out, configFiles)
	return out
}

// initViper initializes Viper with configuration sources and defaults
func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	BindEnvVars(v)

	SetDefaults(v)

	// system -> user -> project; env vars still win via AutomaticEnv
	configFiles = mergeConfigFiles(v, candidateFiles())

	viperInstance = v
	return v
}

func candidateFiles() []ConfigFile {
	files := []ConfigFile{{Source: "system", Path: SystemConfigPath}}

	if homeDir, err := os.UserHomeDir(); err == nil {
		files = append(files, ConfigFile{
			Source: "user",
			Path:   filepath.Join(homeDir, UserConfigDir, ConfigFileName),
		})
	}

	if cwd, err := os.Getwd(); err == nil {
		if project := findProjectConfig(cwd); project != "" {
			files = append(files, ConfigFile{Source: "project", Path: project})
		}
	}
	return files
}

// findProjectConfig walks up from dir looking for morse.toml.
// Returns the first match, or empty string if none found.
func findProjectConfig(dir string) string {
	for {
		path := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// mergeConfigFiles merges the files that exist, in order, into v
func mergeConfigFiles(v *viper.Viper, files []ConfigFile) []ConfigFile {
	configLog := logger.ComponentLogger("config")
	for i := range files {
		log := logger.ChildLogger(configLog, logger.FieldFile, files[i].Path)
		if _, err := os.Stat(files[i].Path); err != nil {
			continue
		}
		files[i].Exists = true

		tempViper := viper.New()
		tempViper.SetConfigFile(files[i].Path)
		tempViper.SetConfigType("toml")
		if err := tempViper.ReadInConfig(); err != nil {
			log.Infow("Skipping unreadable config file", logger.FieldError, err)
			continue
		}
		if err := v.MergeConfigMap(tempViper.AllSettings()); err != nil {
			log.Infow("Skipping config file that failed to merge", logger.FieldError, err)
			continue
		}
		files[i].Loaded = true
		log.Debugw("Config file merged", logger.FieldSource, files[i].Source)
	}
	return files
}

// Get returns a configuration value using dot notation
func Get(key string) interface{} {
	return initViper().Get(key)
}

// IsSet reports whether key has a value from any source, defaults included
func IsSet(key string) bool {
	return initViper().IsSet(key)
}
