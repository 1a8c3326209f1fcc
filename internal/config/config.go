package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	LLM      LLMConfig      `mapstructure:"llm"`
	Analyzer AnalyzerConfig `mapstructure:"analyzer"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	Host            string        `mapstructure:"host"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	// RequestTimeout, when set, bounds every request including the remote
	// call. 0 disables it.
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type LLMConfig struct {
	// Provider is one of gemini, openai or azure.
	Provider    string  `mapstructure:"provider"`
	APIKey      string  `mapstructure:"api_key"`
	APIEndpoint string  `mapstructure:"endpoint"`
	APIVersion  string  `mapstructure:"api_version"`
	Temperature float64 `mapstructure:"temperature"`
	MaxTokens   int64   `mapstructure:"max_tokens"`
}

type AnalyzerConfig struct {
	// Datatypes asks the model for a datatype per subfield.
	Datatypes       bool `mapstructure:"datatypes"`
	MinSchemaLength int  `mapstructure:"min_schema_length"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
	ProviderAzure  = "azure"
)

var defaultEndpoints = map[string]string{
	ProviderGemini: "https://generativelanguage.googleapis.com/v1beta/openai/",
	ProviderOpenAI: "https://api.openai.com/v1/",
}

// LoadConfig reads .env (if present), an optional config.yaml and the
// environment, in increasing order of precedence.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded, using environment variables", "error", err)
	}
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("llm.api_key", "LLM_API_KEY", "GEMINI_API_KEY", "GOOGLE_API_KEY")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	cfg.LLM.Provider = strings.ToLower(cfg.LLM.Provider)
	switch cfg.LLM.Provider {
	case ProviderGemini, ProviderOpenAI:
		if cfg.LLM.APIEndpoint == "" {
			cfg.LLM.APIEndpoint = defaultEndpoints[cfg.LLM.Provider]
		}
	case ProviderAzure:
		if cfg.LLM.APIEndpoint == "" {
			return nil, errors.New("llm.endpoint is required for the azure provider")
		}
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.LLM.Provider)
	}

	if cfg.LLM.APIKey == "" {
		slog.Warn("no LLM API key configured, analysis requests will fail")
	}

	slog.Info("configuration loaded successfully", "provider", cfg.LLM.Provider)
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "8000")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "120s")
	v.SetDefault("server.request_timeout", "0s")
	v.SetDefault("server.shutdown_timeout", "30s")

	v.SetDefault("llm.provider", ProviderGemini)
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.endpoint", "")
	v.SetDefault("llm.api_version", "2024-10-21")
	v.SetDefault("llm.temperature", 0)
	v.SetDefault("llm.max_tokens", 0)

	v.SetDefault("analyzer.datatypes", true)
	v.SetDefault("analyzer.min_schema_length", 100)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)
	v.SetDefault("log.compress", true)
}
