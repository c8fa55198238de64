package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"

	BackendWhisperCPP = "whispercpp"
	BackendOpenAI     = "openai"

	EnvGeminiAPIKey = "GEMINI_API_KEY"
	EnvOpenAIAPIKey = "OPENAI_API_KEY"
)

// ErrMissingCredential is returned by Load and Validate when the API key
// required by the configured backends is not set.
var ErrMissingCredential = errors.New("missing credential")

type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Whisper     WhisperConfig     `yaml:"whisper"`
	FFmpeg      FFmpegConfig      `yaml:"ffmpeg"`
	LLM         LLMConfig         `yaml:"llm"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`

	// Credentials come from the environment only.
	Credentials Credentials `yaml:"-"`
}

type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	MaxUploadMB    int64    `yaml:"max_upload_mb" validate:"gte=1"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type WhisperConfig struct {
	Backend    string `yaml:"backend" validate:"oneof=whispercpp openai"`
	ModelPath  string `yaml:"model_path" validate:"required_if=Backend whispercpp"`
	BinaryPath string `yaml:"binary_path" validate:"required_if=Backend whispercpp"`
	Language   string `yaml:"language" validate:"required"`
	Prompt     string `yaml:"prompt"`
	Threads    int    `yaml:"threads" validate:"gte=1"`
	Model      string `yaml:"model"`
	BaseURL    string `yaml:"base_url" validate:"omitempty,url"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
	SampleRate int    `yaml:"sample_rate" validate:"gte=8000"`
}

type LLMConfig struct {
	Provider      string `yaml:"provider" validate:"oneof=gemini openai"`
	Model         string `yaml:"model"`
	BaseURL       string `yaml:"base_url" validate:"omitempty,url"`
	MaxChars      int    `yaml:"max_chars" validate:"gte=1"`
	ChunkPrompt   string `yaml:"chunk_prompt"`
	CombinePrompt string `yaml:"combine_prompt"`
}

type PathsConfig struct {
	Input    string `yaml:"input" validate:"required"`
	Output   string `yaml:"output" validate:"required"`
	Archived string `yaml:"archived"`
	Failed   string `yaml:"failed"`
	Temp     string `yaml:"temp"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format" validate:"omitempty,oneof=text json"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent" validate:"gte=1"`
}

type Credentials struct {
	GeminiAPIKey string
	OpenAIAPIKey string
}

// Load reads the YAML file at path, merges credentials from the environment
// (after loading envFile if it exists) and validates the result.
func Load(path string, envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.Credentials = Credentials{
		GeminiAPIKey: os.Getenv(EnvGeminiAPIKey),
		OpenAIAPIKey: os.Getenv(EnvOpenAIAPIKey),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate fills defaults, checks field constraints and verifies that the
// credentials needed by the selected backends are present.
func (c *Config) Validate() error {
	c.setDefaults()

	if err := newValidator().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return describe(verrs[0])
		}
		return fmt.Errorf("validate config: %w", err)
	}

	if c.LLM.Provider == ProviderGemini && c.Credentials.GeminiAPIKey == "" {
		return fmt.Errorf("%s is not set: %w", EnvGeminiAPIKey, ErrMissingCredential)
	}
	if (c.LLM.Provider == ProviderOpenAI || c.Whisper.Backend == BackendOpenAI) && c.Credentials.OpenAIAPIKey == "" {
		return fmt.Errorf("%s is not set: %w", EnvOpenAIAPIKey, ErrMissingCredential)
	}

	return nil
}

func (c *Config) setDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.MaxUploadMB == 0 {
		c.Server.MaxUploadMB = 512
	}
	if len(c.Server.AllowedOrigins) == 0 {
		c.Server.AllowedOrigins = []string{"*"}
	}
	if c.Whisper.Backend == "" {
		c.Whisper.Backend = BackendWhisperCPP
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 8
	}
	if c.Whisper.Language == "" {
		c.Whisper.Language = "en"
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.FFmpeg.SampleRate == 0 {
		c.FFmpeg.SampleRate = 16000
	}
	if c.LLM.Provider == "" {
		c.LLM.Provider = ProviderGemini
	}
	if c.LLM.Model == "" {
		switch c.LLM.Provider {
		case ProviderOpenAI:
			c.LLM.Model = "gpt-4o-mini"
		default:
			c.LLM.Model = "gemini-1.5-flash"
		}
	}
	if c.LLM.MaxChars == 0 {
		c.LLM.MaxChars = 5000
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Paths.Failed == "" {
		c.Paths.Failed = "data/failed"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 1
	}
}

// newValidator reports fields by their yaml names so errors read like the file.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func describe(fe validator.FieldError) error {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "required", "required_if":
		return fmt.Errorf("%s is required", field)
	case "oneof":
		return fmt.Errorf("%s must be one of [%s], got %q", field, fe.Param(), fe.Value())
	default:
		return fmt.Errorf("%s is invalid (%s=%s)", field, fe.Tag(), fe.Param())
	}
}
