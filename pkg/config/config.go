package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:reletino.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Stream StreamConfig `yaml:"stream" json:"stream" jsonschema:"description=Live post stream configuration"`

	LLM LLMConfig `yaml:"llm" json:"llm" jsonschema:"description=LLM configuration for relevance evaluation"`

	Profile ProfileConfig `yaml:"profile" json:"profile" jsonschema:"description=Author profile analysis configuration"`

	Examples ExamplesConfig `yaml:"examples" json:"examples" jsonschema:"description=Similarity example retrieval configuration"`

	Worker WorkerConfig `yaml:"worker" json:"worker" jsonschema:"description=Stream worker configuration"`
}

// StreamConfig holds live post stream settings
type StreamConfig struct {
	BaseURL      string        `yaml:"base_url" json:"base_url" jsonschema:"default=https://www.reddit.com,description=Base URL of the post listing API"`
	UserAgent    string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=reletino/1.0,description=User agent for listing requests"`
	PollInterval time.Duration `yaml:"poll_interval" json:"poll_interval" jsonschema:"default=15s,description=Interval between listing polls"`
	PageSize     int           `yaml:"page_size" json:"page_size" jsonschema:"default=100,maximum=100,description=Listing page size"`
	Timeout      time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
}

// TierConfig holds per-tier evaluator settings
type TierConfig struct {
	Model        string  `yaml:"model" json:"model" jsonschema:"required,description=Model name for this tier"`
	Temperature  float64 `yaml:"temperature" json:"temperature" jsonschema:"default=0.3,description=Temperature for response generation"`
	MaxTokens    int     `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=1000,description=Maximum tokens in response"`
	SystemPrompt string  `yaml:"system_prompt" json:"system_prompt" jsonschema:"description=System prompt override (optional)"`
}

// LLMConfig holds LLM configuration for the evaluation cascade
type LLMConfig struct {
	Endpoint    string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint"`
	APIKey      string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=60s,description=Request timeout"`
	UseJSONMode bool          `yaml:"use_json_mode" json:"use_json_mode" jsonschema:"default=true,description=Use JSON response format (not all models support this)"`
	Junior      TierConfig    `yaml:"junior" json:"junior" jsonschema:"description=Cheap broad first-pass evaluator"`
	Senior      TierConfig    `yaml:"senior" json:"senior" jsonschema:"description=Expensive precise second-pass evaluator"`
}

// ProfileConfig holds author profile analysis settings
type ProfileConfig struct {
	Enabled     bool          `yaml:"enabled" json:"enabled" jsonschema:"default=true,description=Enable profile enrichment between tiers"`
	Model       string        `yaml:"model" json:"model" jsonschema:"description=Model used for insight generation (defaults to junior model)"`
	Temperature float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.7,description=Temperature for insight generation"`
	MaxTokens   int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=800,description=Maximum tokens for insight generation"`
	MaxItems    int           `yaml:"max_items" json:"max_items" jsonschema:"default=25,description=Maximum profile posts/comments fetched"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Profile fetch timeout"`
}

// ExamplesConfig holds similarity example retrieval settings
type ExamplesConfig struct {
	Endpoint string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=Example retrieval service URL (empty disables retrieval)"`
	APIKey   string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key for the example retrieval service"`
	Timeout  time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Retrieval timeout"`
	Count    int           `yaml:"count" json:"count" jsonschema:"default=3,description=Number of examples to retrieve"`
}

// WorkerConfig holds stream worker settings
type WorkerConfig struct {
	RetryAttempts int           `yaml:"retry_attempts" json:"retry_attempts" jsonschema:"default=3,description=Attempts per item and per evaluator call"`
	RetryDelay    time.Duration `yaml:"retry_delay" json:"retry_delay" jsonschema:"default=1s,description=Fixed delay between retry attempts"`
	StopTimeout   time.Duration `yaml:"stop_timeout" json:"stop_timeout" jsonschema:"default=10s,description=Bounded wait for a worker to stop"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:reletino.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// set defaults for stream
	if cfg.Stream.BaseURL == "" {
		cfg.Stream.BaseURL = "https://www.reddit.com"
	}
	if cfg.Stream.UserAgent == "" {
		cfg.Stream.UserAgent = "reletino/1.0"
	}
	if cfg.Stream.PollInterval == 0 {
		cfg.Stream.PollInterval = 15 * time.Second
	}
	if cfg.Stream.PageSize == 0 {
		cfg.Stream.PageSize = 100
	}
	if cfg.Stream.Timeout == 0 {
		cfg.Stream.Timeout = 30 * time.Second
	}

	// set defaults for LLM
	if cfg.LLM.Timeout == 0 {
		cfg.LLM.Timeout = 60 * time.Second
	}
	applyTierDefaults(&cfg.LLM.Junior)
	applyTierDefaults(&cfg.LLM.Senior)

	// set defaults for profile analysis
	if cfg.Profile.Model == "" {
		cfg.Profile.Model = cfg.LLM.Junior.Model
	}
	if cfg.Profile.Temperature == 0 {
		cfg.Profile.Temperature = 0.7
	}
	if cfg.Profile.MaxTokens == 0 {
		cfg.Profile.MaxTokens = 800
	}
	if cfg.Profile.MaxItems == 0 {
		cfg.Profile.MaxItems = 25
	}
	if cfg.Profile.Timeout == 0 {
		cfg.Profile.Timeout = 30 * time.Second
	}

	// set defaults for example retrieval
	if cfg.Examples.Timeout == 0 {
		cfg.Examples.Timeout = 10 * time.Second
	}
	if cfg.Examples.Count == 0 {
		cfg.Examples.Count = 3
	}

	// set defaults for worker
	if cfg.Worker.RetryAttempts == 0 {
		cfg.Worker.RetryAttempts = 3
	}
	if cfg.Worker.RetryDelay == 0 {
		cfg.Worker.RetryDelay = time.Second
	}
	if cfg.Worker.StopTimeout == 0 {
		cfg.Worker.StopTimeout = 10 * time.Second
	}

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

func applyTierDefaults(tier *TierConfig) {
	if tier.Temperature == 0 {
		tier.Temperature = 0.3
	}
	if tier.MaxTokens == 0 {
		tier.MaxTokens = 1000
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// validate LLM config
	if cfg.LLM.Junior.Model == "" {
		return fmt.Errorf("llm.junior.model is required")
	}
	if cfg.LLM.Senior.Model == "" {
		return fmt.Errorf("llm.senior.model is required")
	}
	for _, tier := range []TierConfig{cfg.LLM.Junior, cfg.LLM.Senior} {
		if tier.Temperature < 0 || tier.Temperature > 2 {
			return fmt.Errorf("llm tier temperature must be between 0 and 2")
		}
	}

	// validate stream config
	if cfg.Stream.PageSize < 1 || cfg.Stream.PageSize > 100 {
		return fmt.Errorf("stream.page_size must be between 1 and 100")
	}
	if cfg.Stream.PollInterval < time.Second {
		return fmt.Errorf("stream.poll_interval must be at least 1 second")
	}

	// validate worker config
	if cfg.Worker.RetryAttempts < 1 {
		return fmt.Errorf("worker.retry_attempts must be at least 1")
	}

	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetStreamConfig returns live stream configuration
func (c *Config) GetStreamConfig() StreamConfig {
	return c.Stream
}

// GetLLMConfig returns LLM configuration
func (c *Config) GetLLMConfig() LLMConfig {
	return c.LLM
}

// GetWorkerConfig returns worker configuration
func (c *Config) GetWorkerConfig() WorkerConfig {
	return c.Worker
}
