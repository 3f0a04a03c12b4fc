package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sells-group/standardize-cli/internal/store"
)

// Config holds the full application configuration.
type Config struct {
	KB     KBConfig     `yaml:"kb" mapstructure:"kb"`
	Match  MatchConfig  `yaml:"match" mapstructure:"match"`
	Batch  BatchConfig  `yaml:"batch" mapstructure:"batch"`
	Fetch  FetchConfig  `yaml:"fetch" mapstructure:"fetch"`
	Store  store.Config `yaml:"store" mapstructure:"store"`
	Server ServerConfig `yaml:"server" mapstructure:"server"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// KBConfig locates the knowledge base document.
type KBConfig struct {
	Source string `yaml:"source" mapstructure:"source"`
}

// MatchConfig tunes fuzzy matching.
type MatchConfig struct {
	Threshold     float64 `yaml:"threshold" mapstructure:"threshold"`
	Confidence    float64 `yaml:"confidence" mapstructure:"confidence"`
	MaxCandidates int     `yaml:"max_candidates" mapstructure:"max_candidates"`
}

// BatchConfig configures batch processing.
type BatchConfig struct {
	Column      string `yaml:"column" mapstructure:"column"`
	Concurrency int    `yaml:"concurrency" mapstructure:"concurrency"`
}

// FetchConfig configures remote source retrieval.
type FetchConfig struct {
	RateLimit   float64 `yaml:"rate_limit" mapstructure:"rate_limit"`
	MaxRetries  int     `yaml:"max_retries" mapstructure:"max_retries"`
	TimeoutSecs int     `yaml:"timeout_secs" mapstructure:"timeout_secs"`
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Validate checks settings required for the given mode ("batch" or "serve").
func (c *Config) Validate(mode string) error {
	var missing []string

	check := func() {
		if c.KB.Source == "" {
			missing = append(missing, "kb.source is required")
		}
		if c.Match.Threshold < 0 || c.Match.Threshold > 1 {
			missing = append(missing, "match.threshold must be between 0 and 1")
		}
		if c.Match.Confidence < 0 || c.Match.Confidence > 1 {
			missing = append(missing, "match.confidence must be between 0 and 1")
		}
		if c.Batch.Concurrency < 1 || c.Batch.Concurrency > 64 {
			missing = append(missing, "batch.concurrency must be between 1 and 64")
		}
	}

	switch mode {
	case "batch":
		check()
	case "serve":
		check()
		if c.Server.Port <= 0 {
			missing = append(missing, "server.port must be > 0")
		}
	default:
		return eris.Errorf("config: unknown mode %q", mode)
	}

	if len(missing) > 0 {
		return eris.New("config: " + strings.Join(missing, "; "))
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
	v.SetEnvPrefix("STANDARDIZE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("kb.source", "kb.json")
	v.SetDefault("match.threshold", 0.4)
	v.SetDefault("match.confidence", 0.35)
	v.SetDefault("match.max_candidates", 10)
	v.SetDefault("batch.column", "Firm Name")
	v.SetDefault("batch.concurrency", 4)
	v.SetDefault("fetch.rate_limit", 10)
	v.SetDefault("fetch.max_retries", 3)
	v.SetDefault("fetch.timeout_secs", 30)
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

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
