package config

// Config holds the configuration of the application
// Use config.LoadConfig to create a new instance
type Config struct {
	Log        LogConfig        `mapstructure:"log" yaml:"log"`
	Analysis   AnalysisConfig   `mapstructure:"analysis" yaml:"analysis"`
	NLP        NLP              `mapstructure:"nlp" yaml:"nlp"`
	Google     GoogleConfig     `mapstructure:"google" yaml:"google"`
	Embeddings EmbeddingsConfig `mapstructure:"embeddings" yaml:"embeddings"`
}

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

type AnalysisConfig struct {
	// MaxAlternatives bounds the association results printed per lemma.
	MaxAlternatives int `mapstructure:"max_alternatives" yaml:"max_alternatives" validate:"gt=0" jsonschema:"minimum=1,default=10"`
}

// NLP configures the backend that provides the language, sentiment, lemma and
// entity primitives.
type NLP struct {
	Service    string `mapstructure:"service"     yaml:"service"     validate:"oneof=server google" jsonschema:"enum=server,enum=google,default=server"`
	ServerURL  string `mapstructure:"server_url"  yaml:"server_url"  validate:"omitempty,url"`
	Timeout    int    `mapstructure:"timeout"     yaml:"timeout"     validate:"gte=0" jsonschema:"description=Request timeout in seconds"`
	MaxRetries int    `mapstructure:"max_retries" yaml:"max_retries" validate:"gte=0"`
	Language   string `mapstructure:"language"    yaml:"language"`
}

type GoogleConfig struct {
	// Credentials is the base64 encoded service account JSON. Loaded from ENV
	// rather than the config file.
	Credentials string `mapstructure:"credentials" yaml:"-"`
}

// EmbeddingsConfig configures the backend that answers nearest neighbor
// lookups for the alternatives analysis.
type EmbeddingsConfig struct {
	Service string `mapstructure:"service" yaml:"service" validate:"oneof=server openai" jsonschema:"enum=server,enum=openai,default=server"`
	Model   string `mapstructure:"model"   yaml:"model"`
	// OpenAIAPIKey is loaded from ENV not config file.
	OpenAIAPIKey   string `mapstructure:"openai_api_key"  yaml:"-"`
	OpenAIEndpoint string `mapstructure:"openai_endpoint" yaml:"openai_endpoint" validate:"omitempty,url"`
	VocabularyFile string `mapstructure:"vocabulary_file" yaml:"vocabulary_file"`
}
