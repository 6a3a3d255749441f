package cli

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/pdfmosaic/pdfmosaic/pkg/errors"
)

// Config holds optional user defaults loaded from the config file.
// Zero values mean "not set"; unset fields fall back to flags or prompts.
type Config struct {
	Columns int `toml:"columns"`
	Width   int `toml:"width"`
	Quality int `toml:"quality"`
}

// loadConfig reads the config file at path.
// A missing file is not an error; it returns an empty config.
func loadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config %s", path)
	}

	if cfg.Columns != 0 {
		if err := errors.ValidateColumns(cfg.Columns); err != nil {
			return Config{}, err
		}
	}
	if cfg.Width != 0 {
		if err := errors.ValidatePageWidth(cfg.Width); err != nil {
			return Config{}, err
		}
	}
	if cfg.Quality != 0 {
		if err := errors.ValidateQuality(cfg.Quality); err != nil {
			return Config{}, err
		}
	}

	return cfg, nil
}

// userConfig loads the config file from the XDG config path.
// Any failure degrades to an empty config; bad user config must not block a
// run where flags and prompts can still supply the values.
func userConfig(logger *log.Logger) Config {
	path, err := configPath()
	if err != nil {
		return Config{}
	}
	cfg, err := loadConfig(path)
	if err != nil {
		logger.Warn("ignoring config file", "path", path, "err", err)
		return Config{}
	}
	return cfg
}
