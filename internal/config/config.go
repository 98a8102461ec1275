package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// MaxBodyBytes caps the size of an inbound request body.
	MaxBodyBytes int64 `mapstructure:"max_body_bytes" validate:"required,gt=0"`

	// ShutdownTimeoutSeconds bounds graceful shutdown on SIGINT/SIGTERM.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" validate:"required,gt=0"`
}

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	// GeminiAPIKey is the upstream credential. It must never be logged.
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required"`

	ModelName   string  `mapstructure:"model_name"  validate:"required"`
	Temperature float32 `mapstructure:"temperature" validate:"gte=0,lte=2"`

	// PromptTemplatePath optionally overrides the embedded prompt template.
	PromptTemplatePath string `mapstructure:"prompt_template_path"`
}
