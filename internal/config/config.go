package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working directory and the
// user config dir.
const FileName = ".fieldkit.yaml"

// Constants for default values.
const (
	DefaultFormat       = "terminal"
	DefaultTheme        = "default"
	DefaultWidth        = 80
	DefaultMode         = "display"
	DefaultContext      = "form"
	DefaultFetchTimeout = 10 * time.Second
	DefaultMaxDepth     = 8
)

// AppConfig is the content of a .fieldkit.yaml file. Zero values mean
// "not set" and leave the setting to a lower-priority source.
type AppConfig struct {
	Format       string        `yaml:"format,omitempty"`
	Theme        string        `yaml:"theme,omitempty"`
	Width        int           `yaml:"width,omitempty"`
	Mode         string        `yaml:"mode,omitempty"`
	Context      string        `yaml:"context,omitempty"`
	Registry     string        `yaml:"registry,omitempty"`
	FetchTimeout time.Duration `yaml:"fetch_timeout,omitempty"`
	MaxDepth     int           `yaml:"max_depth,omitempty"`
	Debug        bool          `yaml:"debug,omitempty"`
	NoColor      bool          `yaml:"no_color,omitempty"`
}

// LoadConfig finds and loads the config file. It returns an empty config
// and an empty path when no file exists or the file cannot be read.
func LoadConfig() (*AppConfig, string) {
	path := getConfigPath()
	if path == "" {
		logrus.Debug("no config file found, using defaults")
		return &AppConfig{}, ""
	}
	cfg, err := LoadConfigFile(path)
	if err != nil {
		logrus.WithError(err).WithField("path", path).Warn("ignoring config file")
		return &AppConfig{}, ""
	}
	logrus.WithField("path", path).Debug("loaded config file")
	return cfg, path
}

// LoadConfigFile reads and parses the config file at path.
func LoadConfigFile(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// getConfigPath tries to find the config file.
// It checks local directory first, then the user config dir (XDG).
func getConfigPath() string {
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}

	configHome, err := os.UserConfigDir()
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	xdgPath := filepath.Join(configHome, "fieldkit", FileName)
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	}
	return ""
}
