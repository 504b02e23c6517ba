package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// FileName is the optional config file looked up in the working directory.
	FileName = "bankstat.yaml"

	DefaultReportPath = "category_month_report.csv"
	DefaultLogLevel   = "info"
)

type ReportConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

type Config struct {
	Report ReportConfig `mapstructure:"report" yaml:"report"`
	Log    LogConfig    `mapstructure:"log" yaml:"log"`

	file string
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		Report: ReportConfig{Path: DefaultReportPath},
		Log:    LogConfig{Level: DefaultLogLevel},
	}
}

// Load reads bankstat.yaml from dir on top of the defaults. A missing file is
// not an error.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)

	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("report.path", DefaultReportPath)
	v.SetDefault("log.level", DefaultLogLevel)

	found := true
	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		found = false
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if found {
		cfg.file = path
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Report.Path == "" {
		return fmt.Errorf("invalid config: report.path cannot be empty")
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid config: log.level %q: %w", c.Log.Level, err)
	}
	return nil
}

// LogLevel returns the configured level, falling back to info.
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// File is the config file that was read, or "" when defaults are in effect.
func (c *Config) File() string {
	return c.file
}

// String renders the effective configuration as YAML.
func (c *Config) String() string {
	out, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Sprintf("%+v", *c)
	}
	return string(out)
}
