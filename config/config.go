package config

import (
	"errors"
	"fmt"
	"strings"

	"dario.cat/mergo"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/getzep/textparser/internal"
)

// We're bootstrapping so avoid any imports from other packages
var log = internal.GetLogger()

var validate = validator.New()

const (
	DefaultMaxAlternatives = 10
	DefaultNLPServerURL    = "http://localhost:5557"
	DefaultNLPTimeout      = 30
	DefaultNLPMaxRetries   = 3
	DefaultLanguage        = "en"
	DefaultEmbeddingModel  = "text-embedding-3-small"
)

// Defaults returns the configuration used for any key that neither the config
// file nor the environment sets.
func Defaults() Config {
	return Config{
		Log: LogConfig{Level: "warn"},
		Analysis: AnalysisConfig{
			MaxAlternatives: DefaultMaxAlternatives,
		},
		NLP: NLP{
			Service:   "server",
			ServerURL: DefaultNLPServerURL,
			Language:  DefaultLanguage,
		},
		Embeddings: EmbeddingsConfig{
			Service: "server",
			Model:   DefaultEmbeddingModel,
		},
	}
}

// LoadConfig loads the config file and ENV variables into a Config struct.
// The config file is optional unless configFile is set explicitly.
func LoadConfig(configFile string) (*Config, error) {
	v := viper.New()
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
	}

	v.SetConfigType("yaml")

	// Zero is a meaningful value for these keys so mergo can't default them
	v.SetDefault("nlp.timeout", DefaultNLPTimeout)
	v.SetDefault("nlp.max_retries", DefaultNLPMaxRetries)

	v.SetEnvPrefix("TEXTPARSER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		log.Debug("no config file found, using defaults and environment")
	}

	// Environment variables take precedence over config file
	loadDotEnv()

	// AutomaticEnv only resolves keys viper already knows about
	for key, env := range map[string]string{
		"log.level":                 "TEXTPARSER_LOG_LEVEL",
		"analysis.max_alternatives": "TEXTPARSER_ANALYSIS_MAX_ALTERNATIVES",
		"nlp.service":               "TEXTPARSER_NLP_SERVICE",
		"nlp.server_url":            "TEXTPARSER_NLP_SERVER_URL",
		"google.credentials":        "TEXTPARSER_GOOGLE_CREDENTIALS",
		"embeddings.service":        "TEXTPARSER_EMBEDDINGS_SERVICE",
		"embeddings.openai_api_key": "TEXTPARSER_OPENAI_API_KEY",
	} {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("error binding environment variable %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := mergo.Merge(&cfg, Defaults()); err != nil {
		return nil, fmt.Errorf("failed to apply config defaults: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cfg against the constraints declared on the config structs.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// loadDotEnv loads environment variables from .env file
func loadDotEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Debug(".env file not found or unable to load")
	}
}

// SetLogLevel sets the log level based on the config file. Defaults to WARN if not set or invalid
func SetLogLevel(cfg *Config) {
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logrus.WarnLevel
	}
	internal.SetLogLevel(level)
	log.Debug("Log level set to: ", level)
}
