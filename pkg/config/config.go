package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"github.com/xaenox/stataddict/internal/classifier"
	"github.com/xaenox/stataddict/internal/report"
	"go.uber.org/zap/zapcore"
)

const (
	DefaultPath = "stataddict.yaml"
	EnvPrefix   = "STATADDICT"
)

type Config struct {
	Report     ReportConfig     `mapstructure:"report"`
	Classifier ClassifierConfig `mapstructure:"classifier"`
	Log        LogConfig        `mapstructure:"log"`
}

type ReportConfig struct {
	ShowIDs bool   `mapstructure:"show_ids"`
	Top     int    `mapstructure:"top"`
	Credit  string `mapstructure:"credit"`
}

type ClassifierConfig struct {
	// MediaTypes maps extra media_type values to counter names.
	MediaTypes map[string]string `mapstructure:"media_types"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// LoadConfig reads defaults, the optional file at path and STATADDICT_*
// environment variables. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("report.show_ids", false)
	v.SetDefault("report.top", 0)
	v.SetDefault("report.credit", report.DefaultCredit)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.development", false)

	// Enable environment variable support
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat config %s: %w", path, err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if c.Report.Top < 0 {
		return fmt.Errorf("report.top must not be negative, got %d", c.Report.Top)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log.level: %w", err)
	}
	for mediaType, name := range c.Classifier.MediaTypes {
		if _, err := classifier.ParseMediaCategory(name); err != nil {
			return fmt.Errorf("classifier.media_types.%s: %w", mediaType, err)
		}
	}
	return nil
}
