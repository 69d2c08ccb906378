package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv  = "TEXT_HUMANIZER_CONFIG"
	serverAddrEnv  = "SERVER_ADDR"
	serverModeEnv  = "GIN_MODE"
	llmEndpointEnv = "LLM_ENDPOINT"
	llmModelEnv    = "LLM_MODEL"
	llmAPIKeyEnv   = "LLM_API_KEY"
	logLevelEnv    = "LOG_LEVEL"
)

// Config holds high-level settings required across the application.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	LLM       LLMConfig       `yaml:"llm"`
	Pipeline  PipelineConfig  `yaml:"pipeline"`
	RateLimit RateLimitConfig `yaml:"rateLimit"`
	Upload    UploadConfig    `yaml:"upload"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string `yaml:"addr"`
	Mode string `yaml:"mode"`
}

// LLMConfig defines how to contact the completion service.
type LLMConfig struct {
	Endpoint         string `yaml:"endpoint"`
	Model            string `yaml:"model"`
	APIKey           string `yaml:"apiKey"`
	TimeoutSeconds   int    `yaml:"timeoutSeconds"`
	RewriteMaxTokens int    `yaml:"rewriteMaxTokens"`
	DetectMaxTokens  int    `yaml:"detectMaxTokens"`
}

// Timeout resolves the per-call timeout for completion requests.
func (c LLMConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 60 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// PipelineConfig tunes the orchestration pipeline.
type PipelineConfig struct {
	ChunkSize int `yaml:"chunkSize"`
	// DetectSampleLimit caps how much of the joined rewrite is sent for
	// detection. A latency/cost knob, not a correctness requirement.
	DetectSampleLimit int `yaml:"detectSampleLimit"`
	RefineThreshold   int `yaml:"refineThreshold"`
}

// RateLimitConfig shapes the per-IP sliding window.
type RateLimitConfig struct {
	Requests int `yaml:"requests"`
	WindowMs int `yaml:"windowMs"`
}

// Window resolves the configured window duration.
func (c RateLimitConfig) Window() time.Duration {
	if c.WindowMs <= 0 {
		return time.Minute
	}
	return time.Duration(c.WindowMs) * time.Millisecond
}

// UploadConfig bounds file extraction requests.
type UploadConfig struct {
	MaxBytes int64 `yaml:"maxBytes"`
}

// LoggingConfig selects log verbosity and output shape.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads YAML configuration (if present) and applies environment
// overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(serverAddrEnv); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv(serverModeEnv); v != "" {
		c.Server.Mode = v
	}
	if v := os.Getenv(llmEndpointEnv); v != "" {
		c.LLM.Endpoint = v
	}
	if v := os.Getenv(llmModelEnv); v != "" {
		c.LLM.Model = v
	}
	if v := os.Getenv(llmAPIKeyEnv); v != "" {
		c.LLM.APIKey = v
	}
	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Server.Addr != "" {
		base.Server.Addr = override.Server.Addr
	}
	if override.Server.Mode != "" {
		base.Server.Mode = override.Server.Mode
	}

	if override.LLM.Endpoint != "" {
		base.LLM.Endpoint = override.LLM.Endpoint
	}
	if override.LLM.Model != "" {
		base.LLM.Model = override.LLM.Model
	}
	if override.LLM.APIKey != "" {
		base.LLM.APIKey = override.LLM.APIKey
	}
	if override.LLM.TimeoutSeconds > 0 {
		base.LLM.TimeoutSeconds = override.LLM.TimeoutSeconds
	}
	if override.LLM.RewriteMaxTokens > 0 {
		base.LLM.RewriteMaxTokens = override.LLM.RewriteMaxTokens
	}
	if override.LLM.DetectMaxTokens > 0 {
		base.LLM.DetectMaxTokens = override.LLM.DetectMaxTokens
	}

	if override.Pipeline.ChunkSize > 0 {
		base.Pipeline.ChunkSize = override.Pipeline.ChunkSize
	}
	if override.Pipeline.DetectSampleLimit > 0 {
		base.Pipeline.DetectSampleLimit = override.Pipeline.DetectSampleLimit
	}
	if override.Pipeline.RefineThreshold > 0 {
		base.Pipeline.RefineThreshold = override.Pipeline.RefineThreshold
	}

	if override.RateLimit.Requests > 0 {
		base.RateLimit.Requests = override.RateLimit.Requests
	}
	if override.RateLimit.WindowMs > 0 {
		base.RateLimit.WindowMs = override.RateLimit.WindowMs
	}

	if override.Upload.MaxBytes > 0 {
		base.Upload.MaxBytes = override.Upload.MaxBytes
	}

	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}
	if override.Logging.Format != "" {
		base.Logging.Format = override.Logging.Format
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Server: ServerConfig{Addr: ":8080", Mode: "release"},
		LLM: LLMConfig{
			Endpoint:         "https://api.openai.com/v1/chat/completions",
			Model:            "gpt-4o-mini",
			APIKey:           "",
			TimeoutSeconds:   60,
			RewriteMaxTokens: 2048,
			DetectMaxTokens:  512,
		},
		Pipeline: PipelineConfig{
			ChunkSize:         3000,
			DetectSampleLimit: 6000,
			RefineThreshold:   50,
		},
		RateLimit: RateLimitConfig{Requests: 20, WindowMs: 60_000},
		Upload:    UploadConfig{MaxBytes: 10 << 20},
		Logging:   LoggingConfig{Level: "info", Format: "text"},
	}
}
