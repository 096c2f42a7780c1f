package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm" validate:"required"`
	Upload UploadConfig `mapstructure:"upload" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// LLMConfig contains all LLM integration related settings.
//
// API keys are optional here: a missing or placeholder key disables
// generation instead of preventing start-up.
type LLMConfig struct {
	Provider      string `mapstructure:"provider" validate:"required,oneof=gemini openai"`
	ModelName     string `mapstructure:"model_name"`
	GeminiAPIKey  string `mapstructure:"gemini_api_key"`
	OpenAIAPIKey  string `mapstructure:"openai_api_key"`
	OpenAIBaseURL string `mapstructure:"openai_base_url" validate:"omitempty,url"`
}

// UploadConfig limits the documents accepted with a generation request.
type UploadConfig struct {
	MaxUploadSizeMB int64 `mapstructure:"max_upload_size_mb" validate:"gt=0"`
	MaxFileSizeMB   int64 `mapstructure:"max_file_size_mb" validate:"gt=0"`
	MaxFiles        int   `mapstructure:"max_files" validate:"gt=0"`
}

// Default model names per provider.
const (
	DefaultGeminiModel = "gemini-2.5-flash"
	DefaultOpenAIModel = "gpt-4o-mini"
)

// Model returns the configured model name, or the provider default.
func (c LLMConfig) Model() string {
	if c.ModelName != "" {
		return c.ModelName
	}
	if c.Provider == "openai" {
		return DefaultOpenAIModel
	}
	return DefaultGeminiModel
}

// MaxUploadBytes returns the request body limit in bytes.
func (c UploadConfig) MaxUploadBytes() int64 {
	return c.MaxUploadSizeMB << 20
}

// MaxFileBytes returns the per-document limit in bytes.
func (c UploadConfig) MaxFileBytes() int64 {
	return c.MaxFileSizeMB << 20
}
