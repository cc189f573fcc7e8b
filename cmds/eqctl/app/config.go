package app

import (
	"os"
	"path/filepath"

	"github.com/mandelsoft/vfs/pkg/vfs"
	"sigs.k8s.io/yaml"

	"github.com/mandelsoft/equation/pkg/utils"
)

const CONFIG_FILE = ".eqctl"

type Config struct {
	LogLevel *string           `json:"logLevel,omitempty"`
	Vars     map[string]string `json:"vars,omitempty"`
}

// GetConfig merges the config files found in the home directory,
// the user config directory and the current directory, in this order.
// The log level can be overridden by EQCTL_LOG_LEVEL.
func GetConfig(fs vfs.FileSystem) *Config {
	var cfg Config

	dir, err := os.UserHomeDir()
	if err == nil {
		MergeConfig(&cfg, ReadConfig(fs, filepath.Join(dir, CONFIG_FILE)))
	}
	dir, err = os.UserConfigDir()
	if err == nil {
		MergeConfig(&cfg, ReadConfig(fs, filepath.Join(dir, CONFIG_FILE)))
	}
	MergeConfig(&cfg, ReadConfig(fs, CONFIG_FILE))

	if v := os.Getenv("EQCTL_LOG_LEVEL"); v != "" {
		cfg.LogLevel = utils.Pointer(v)
	}
	if cfg.LogLevel == nil || *cfg.LogLevel == "" {
		cfg.LogLevel = utils.Pointer("info")
	}
	return &cfg
}

func ReadConfig(fs vfs.FileSystem, path string) *Config {
	data, err := vfs.ReadFile(fs, path)
	if err != nil {
		return nil
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		log.Warn("invalid config file {{path}}", "path", path, "error", err)
		return nil
	}
	return &cfg
}

func MergeConfig(cfg *Config, add *Config) {
	if add == nil {
		return
	}
	if add.LogLevel != nil {
		cfg.LogLevel = add.LogLevel
	}
	for k, v := range add.Vars {
		if cfg.Vars == nil {
			cfg.Vars = map[string]string{}
		}
		cfg.Vars[k] = v
	}
}
