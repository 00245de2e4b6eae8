package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "config/config.yaml"
	DefaultEnvPath    = ".env"
)

type Config struct {
	App         AppConfig         `yaml:"app"`
	Server      ServerConfig      `yaml:"server"`
	Log         LogConfig         `yaml:"log"`
	Weather     WeatherConfig     `yaml:"weather"`
	Suggestions SuggestionsConfig `yaml:"suggestions"`
	Sentry      SentryConfig      `yaml:"sentry"`
}

type AppConfig struct {
	Name    string `yaml:"name" envconfig:"APP_NAME"`
	Version string `yaml:"version" envconfig:"APP_VERSION"`
	Env     string `yaml:"env" envconfig:"APP_ENV"`
}

// ServerConfig timeouts are in seconds.
type ServerConfig struct {
	Port         string `yaml:"port" envconfig:"SERVER_PORT"`
	ReadTimeout  int    `yaml:"read_timeout" envconfig:"SERVER_READ_TIMEOUT"`
	WriteTimeout int    `yaml:"write_timeout" envconfig:"SERVER_WRITE_TIMEOUT"`
	IdleTimeout  int    `yaml:"idle_timeout" envconfig:"SERVER_IDLE_TIMEOUT"`
}

type LogConfig struct {
	Level  string `yaml:"level" envconfig:"LOG_LEVEL"`
	Format string `yaml:"format" envconfig:"LOG_FORMAT"`
}

// WeatherConfig describes the forecast provider. The API key is never
// committed; it comes from the environment or a local .env file.
type WeatherConfig struct {
	BaseURL string `yaml:"base_url" envconfig:"WEATHER_API_BASE_URL"`
	APIKey  string `yaml:"api_key,omitempty" envconfig:"WEATHER_API_KEY"`
}

type SuggestionsConfig struct {
	MinQueryLength int           `yaml:"min_query_length" envconfig:"SUGGESTIONS_MIN_QUERY_LENGTH"`
	DisplayLimit   int           `yaml:"display_limit" envconfig:"SUGGESTIONS_DISPLAY_LIMIT"`
	Debounce       time.Duration `yaml:"debounce" envconfig:"SUGGESTIONS_DEBOUNCE"`
}

type SentryConfig struct {
	DSN   string `yaml:"dsn,omitempty" envconfig:"SENTRY_DSN"`
	Debug bool   `yaml:"debug" envconfig:"SENTRY_DEBUG"`
}

func defaultConfig() Config {
	return Config{
		App: AppConfig{
			Name:    "weather-finder",
			Version: "1.0.0",
			Env:     "development",
		},
		Server: ServerConfig{
			Port:         "8080",
			ReadTimeout:  10,
			WriteTimeout: 10,
			IdleTimeout:  120,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Weather: WeatherConfig{
			BaseURL: "https://api.weatherapi.com",
		},
		Suggestions: SuggestionsConfig{
			MinQueryLength: 2,
			DisplayLimit:   6,
			Debounce:       250 * time.Millisecond,
		},
	}
}

// ConfigProvider loads and validates a Config.
type ConfigProvider interface {
	Load() (*Config, error)
	Validate(config *Config) error
}

// FileConfigProvider starts from defaults, then applies a YAML file, a .env
// file and the process environment. Later sources win.
type FileConfigProvider struct {
	path    string
	envPath string
}

func NewFileConfigProvider(path string) *FileConfigProvider {
	return &FileConfigProvider{
		path:    path,
		envPath: DefaultEnvPath,
	}
}

// WithEnvFile overrides the dotenv file location.
func (p *FileConfigProvider) WithEnvFile(path string) *FileConfigProvider {
	p.envPath = path
	return p
}

func (p *FileConfigProvider) Load() (*Config, error) {
	cnf := defaultConfig()

	if err := p.loadFromFile(&cnf); err != nil {
		return nil, err
	}

	if err := p.loadDotEnv(); err != nil {
		return nil, err
	}

	if err := envconfig.Process("", &cnf); err != nil {
		return nil, fmt.Errorf("error environment variable parsing: %w", err)
	}

	return &cnf, nil
}

// loadFromFile is a no-op when the file does not exist.
func (p *FileConfigProvider) loadFromFile(cnf *Config) error {
	yamlData, err := os.ReadFile(p.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", p.path, err)
	}

	if err := yaml.Unmarshal(yamlData, cnf); err != nil {
		return fmt.Errorf("failed to parse YAML config: %w", err)
	}

	return nil
}

// loadDotEnv does not override variables that are already set.
func (p *FileConfigProvider) loadDotEnv() error {
	if p.envPath == "" {
		return nil
	}
	if _, err := os.Stat(p.envPath); err != nil {
		return nil
	}
	if err := godotenv.Load(p.envPath); err != nil {
		return fmt.Errorf("failed to load %s: %w", p.envPath, err)
	}
	return nil
}

func (p *FileConfigProvider) Validate(config *Config) error {
	var problems []string

	if strings.TrimSpace(config.App.Name) == "" {
		problems = append(problems, "app.name is required")
	}
	if strings.TrimSpace(config.Server.Port) == "" {
		problems = append(problems, "server.port is required")
	}
	if config.Server.ReadTimeout <= 0 || config.Server.WriteTimeout <= 0 || config.Server.IdleTimeout <= 0 {
		problems = append(problems, "server timeouts must be positive")
	}
	switch strings.ToLower(config.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("log.level %q is not supported", config.Log.Level))
	}
	if strings.TrimSpace(config.Weather.BaseURL) == "" {
		problems = append(problems, "weather.base_url is required")
	}
	if strings.TrimSpace(config.Weather.APIKey) == "" {
		problems = append(problems, "weather.api_key is required")
	}
	if config.Suggestions.MinQueryLength < 1 {
		problems = append(problems, "suggestions.min_query_length must be at least 1")
	}
	if config.Suggestions.DisplayLimit < 1 {
		problems = append(problems, "suggestions.display_limit must be positive")
	}
	if config.Suggestions.Debounce < 0 {
		problems = append(problems, "suggestions.debounce cannot be negative")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}

	return nil
}

// NewConfig loads the default config file and environment.
func NewConfig() (*Config, error) {
	return NewConfigWithProvider(NewFileConfigProvider(DefaultConfigPath))
}

func NewConfigWithProvider(provider ConfigProvider) (*Config, error) {
	cnf, err := provider.Load()
	if err != nil {
		return nil, err
	}

	if err := provider.Validate(cnf); err != nil {
		return nil, err
	}

	return cnf, nil
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

func (c *Config) ServerTimeouts() (read, write, idle time.Duration) {
	return time.Duration(c.Server.ReadTimeout) * time.Second,
		time.Duration(c.Server.WriteTimeout) * time.Second,
		time.Duration(c.Server.IdleTimeout) * time.Second
}
