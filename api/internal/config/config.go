package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the full configuration surface. Every field has a default and an
// OCR_-prefixed environment override (OCR_LANGUAGE, OCR_ENGINE,
// OCR_GEMINI_API_KEY, ...); an optional config.yaml in the working directory
// sits in between.
type Config struct {
	Port         string        `mapstructure:"port"`
	Engine       string        `mapstructure:"engine"`
	Language     string        `mapstructure:"language"`
	FetchTimeout time.Duration `mapstructure:"fetch_timeout"`

	Gemini GeminiConfig `mapstructure:"gemini"`
	Ollama OllamaConfig `mapstructure:"ollama"`
}

type GeminiConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

type OllamaConfig struct {
	URL   string `mapstructure:"url"`
	Model string `mapstructure:"model"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("port", "8000")
	v.SetDefault("engine", "tesseract")
	v.SetDefault("language", "eng")
	v.SetDefault("fetch_timeout", 30*time.Second)
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.model", "gemini-2.5-flash")
	v.SetDefault("ollama.url", "")
	v.SetDefault("ollama.model", "")

	v.SetEnvPrefix("OCR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
