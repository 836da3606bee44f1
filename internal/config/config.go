package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the stylerank API configuration.
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Database  DatabaseConfig  `yaml:"database"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	Embedding EmbeddingConfig `yaml:"embedding"`
	Search    SearchConfig    `yaml:"search"`
	Auth      AuthConfig      `yaml:"auth"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// AuthConfig holds API authentication settings.
type AuthConfig struct {
	APIKeys []string `yaml:"api_keys"`
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// DatabaseConfig holds database connection settings.
type DatabaseConfig struct {
	Addrs            []string `yaml:"addrs"`
	Password         string   `yaml:"password"`
	ReadinessTimeout int      `yaml:"readiness_timeout_sec"`
}

// CatalogConfig holds catalog index settings.
type CatalogConfig struct {
	IndexName string `yaml:"index_name"`
	KeyPrefix string `yaml:"key_prefix"`
	DefaultK  int    `yaml:"default_k"`
	MaxK      int    `yaml:"max_k"`
}

// EmbeddingConfig holds embedding provider settings.
type EmbeddingConfig struct {
	CLIP              CLIPConfig   `yaml:"clip"`
	OpenAI            OpenAIConfig `yaml:"openai"`
	HF                HFConfig     `yaml:"hf"`
	ImageBatchDelayMS int          `yaml:"image_batch_delay_ms"`
	BatchConcurrency  int          `yaml:"batch_concurrency"`
	CacheTTLSec       int          `yaml:"cache_ttl_sec"`
}

// CLIPConfig holds the fast-path embedding service settings.
type CLIPConfig struct {
	BaseURL           string   `yaml:"base_url"`
	HealthTimeoutMS   int      `yaml:"health_timeout_ms"`
	RequestTimeoutSec int      `yaml:"request_timeout_sec"`
	Environments      []string `yaml:"environments"` // envs where the fast path is attempted
}

// OpenAIConfig holds the hosted text-embedding provider settings.
type OpenAIConfig struct {
	APIKey     string `yaml:"api_key"`
	BaseURL    string `yaml:"base_url"`
	Model      string `yaml:"model"`
	Dimensions int    `yaml:"dimensions"`
}

// HFConfig holds the hosted feature-extraction provider settings.
type HFConfig struct {
	BaseURL    string `yaml:"base_url"`
	Token      string `yaml:"token"`
	TextModel  string `yaml:"text_model"`
	ImageModel string `yaml:"image_model"`
}

// SearchConfig holds ranking settings.
type SearchConfig struct {
	TextWeight      float64       `yaml:"text_weight"`
	ImageWeight     float64       `yaml:"image_weight"`
	VibeWeight      float64       `yaml:"vibe_weight"`
	SignalWeights   SignalWeights `yaml:"signal_weights"`
	PreferredBrands []string      `yaml:"preferred_brands"`
	RerankWorkers   int           `yaml:"rerank_workers"`
}

// SignalWeights holds per-signal blend weights for reranking.
type SignalWeights struct {
	Keyword    float64 `yaml:"keyword"`
	Attribute  float64 `yaml:"attribute"`
	Price      float64 `yaml:"price"`
	Season     float64 `yaml:"season"`
	Brand      float64 `yaml:"brand"`
	Popularity float64 `yaml:"popularity"`
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics.
func MustLoad(env string) Config {
	cfg, err := Load(env)
	if err != nil {
		panic(err)
	}
	return cfg
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 30
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Database.ReadinessTimeout <= 0 {
		c.Database.ReadinessTimeout = 10
	}
	if c.Catalog.IndexName == "" {
		c.Catalog.IndexName = "idx:products"
	}
	if c.Catalog.KeyPrefix == "" {
		c.Catalog.KeyPrefix = "product:"
	}
	if c.Catalog.DefaultK <= 0 {
		c.Catalog.DefaultK = 20
	}
	if c.Catalog.MaxK <= 0 {
		c.Catalog.MaxK = 100
	}
	if c.Embedding.CLIP.HealthTimeoutMS <= 0 {
		c.Embedding.CLIP.HealthTimeoutMS = 500
	}
	if c.Embedding.CLIP.RequestTimeoutSec <= 0 {
		c.Embedding.CLIP.RequestTimeoutSec = 10
	}
	if c.Embedding.OpenAI.Model == "" {
		c.Embedding.OpenAI.Model = "text-embedding-3-small"
	}
	if c.Embedding.OpenAI.Dimensions <= 0 {
		c.Embedding.OpenAI.Dimensions = 384
	}
	if c.Embedding.ImageBatchDelayMS <= 0 {
		c.Embedding.ImageBatchDelayMS = 100
	}
	if c.Embedding.BatchConcurrency <= 0 {
		c.Embedding.BatchConcurrency = 4
	}
	if c.Embedding.CacheTTLSec <= 0 {
		c.Embedding.CacheTTLSec = 3600
	}
	if c.Search.TextWeight <= 0 && c.Search.ImageWeight <= 0 && c.Search.VibeWeight <= 0 {
		c.Search.TextWeight = 0.5
		c.Search.ImageWeight = 0.3
		c.Search.VibeWeight = 0.2
	}
	sw := &c.Search.SignalWeights
	if sw.Keyword <= 0 && sw.Attribute <= 0 && sw.Price <= 0 &&
		sw.Season <= 0 && sw.Brand <= 0 && sw.Popularity <= 0 {
		sw.Keyword = 0.5
		sw.Attribute = 0.15
		sw.Price = 0.1
		sw.Season = 0.1
		sw.Brand = 0.1
		sw.Popularity = 0.05
	}
	if c.Search.RerankWorkers <= 0 {
		c.Search.RerankWorkers = 8
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	if len(c.Database.Addrs) == 0 {
		return fmt.Errorf("database.addrs is required")
	}
	if c.Catalog.DefaultK > c.Catalog.MaxK {
		return fmt.Errorf("catalog.default_k (%d) must not exceed catalog.max_k (%d)",
			c.Catalog.DefaultK, c.Catalog.MaxK)
	}
	if c.Embedding.HF.TextModel != "" && c.Embedding.HF.BaseURL == "" {
		return fmt.Errorf("embedding.hf.base_url is required when a hf model is set")
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}

// FastPathEnabled reports whether the CLIP fast path is configured for env.
func (c *Config) FastPathEnabled(env string) bool {
	if c.Embedding.CLIP.BaseURL == "" {
		return false
	}
	for _, e := range c.Embedding.CLIP.Environments {
		if e == env {
			return true
		}
	}
	return false
}
