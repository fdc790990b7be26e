package am

import (
	"os"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/dongsukag/morse-code/errors"
	"github.com/dongsukag/morse-code/logger"
)

// CheckFile decodes a config file strictly and returns the keys that do
// not belong to Config, sorted. Viper ignores such keys, so a typo such as
// `cli.mdoe` would otherwise go unnoticed.
func CheckFile(path string) ([]string, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("config file %s", path)
		}
		return nil, errors.Wrapf(err, "config file %s", path)
	}

	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, errors.WithHint(
			errors.Wrapf(errors.ErrInvalidRequest, "config file %s: %v", path, err),
			"the file must be valid TOML")
	}

	var unknown []string
	for _, key := range meta.Undecoded() {
		unknown = append(unknown, key.String())
		logger.Debugw("Unknown config key", logger.FieldFile, path, logger.FieldKey, key.String())
	}
	sort.Strings(unknown)
	return unknown, nil
}
