package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Gemini GeminiConfig `yaml:"gemini" mapstructure:"gemini"`
	Scrape ScrapeConfig `yaml:"scrape" mapstructure:"scrape"`
	Sweep  SweepConfig  `yaml:"sweep" mapstructure:"sweep"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// GeminiConfig holds Gemini API settings.
type GeminiConfig struct {
	Key            string `yaml:"key" mapstructure:"key"`
	BaseURL        string `yaml:"base_url" mapstructure:"base_url"`
	FlashModel     string `yaml:"flash_model" mapstructure:"flash_model"`
	ProModel       string `yaml:"pro_model" mapstructure:"pro_model"`
	ImageModel     string `yaml:"image_model" mapstructure:"image_model"`
	ThinkingBudget int    `yaml:"thinking_budget" mapstructure:"thinking_budget"`
}

// ScrapeConfig configures listing-search behavior.
type ScrapeConfig struct {
	PageSize int `yaml:"page_size" mapstructure:"page_size"`
}

// SweepConfig configures the all-cities sweep.
type SweepConfig struct {
	DelayMillis int `yaml:"delay_millis" mapstructure:"delay_millis"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Validate checks that required settings are present and bounds hold.
// Called after Load, before any command talks to the API.
func (c *Config) Validate() error {
	var problems []string
	if c.Gemini.Key == "" {
		problems = append(problems, "gemini.key is required")
	}
	if c.Scrape.PageSize < 1 {
		problems = append(problems, "scrape.page_size must be > 0")
	}
	if c.Sweep.DelayMillis < 0 {
		problems = append(problems, "sweep.delay_millis must be >= 0")
	}
	if c.Gemini.ThinkingBudget < 0 {
		problems = append(problems, "gemini.thinking_budget must be >= 0")
	}
	if len(problems) > 0 {
		return eris.New("config: " + strings.Join(problems, "; "))
	}
	return nil
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("LEADLENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("gemini.base_url", "https://generativelanguage.googleapis.com/v1beta")
	v.SetDefault("gemini.flash_model", "gemini-2.5-flash")
	v.SetDefault("gemini.pro_model", "gemini-2.5-pro")
	v.SetDefault("gemini.image_model", "gemini-2.5-flash-image")
	v.SetDefault("gemini.thinking_budget", 32768)
	v.SetDefault("scrape.page_size", 100)
	v.SetDefault("sweep.delay_millis", 300)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
