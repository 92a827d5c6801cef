package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"hyprnav/pkg/core"
)

// LoadFromFile loads the configuration from a TOML file.
func (c *Config) LoadFromFile(path string, log core.Logger) error {
	log.Debug("Loading configuration from file", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read config file")
	}
	log.Debug("Config file read successfully", "size_bytes", len(data))

	if err := toml.Unmarshal(data, c); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return errors.Wrapf(err, "parse config file %s:%d:%d", path, row, col)
		}
		return errors.Wrapf(err, "parse config file %s", path)
	}
	return nil
}
