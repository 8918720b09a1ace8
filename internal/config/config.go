// Package config loads fidelity settings from YAML, .env and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// DefaultConfigFile is the config path used when --config is not given.
const DefaultConfigFile = ".fidelity.yaml"

// Config holds every setting of the fidelity pipeline.
type Config struct {
	LLM       LLMConfig       `yaml:"llm"`
	Retrieval RetrievalConfig `yaml:"retrieval"`
	Paths     PathsConfig     `yaml:"paths"`
	Blocks    BlocksConfig    `yaml:"blocks"`
	Workers   int             `yaml:"workers"`
	// UI is auto, plain or tui.
	UI        string          `yaml:"ui"`
}

// LLMConfig selects the generation and embedding models.
type LLMConfig struct {
	Model          string  `yaml:"model"`
	Temperature    float32 `yaml:"temperature"`
	EmbeddingModel string  `yaml:"embedding_model"`
	APIKeyEnv      string  `yaml:"api_key_env"`
}

// RetrievalConfig controls knowledge-base lookups.
type RetrievalConfig struct {
	TopK int `yaml:"top_k"`
}

// PathsConfig names the files and directories the pipeline reads and writes.
type PathsConfig struct {
	Corpus        string `yaml:"corpus"`
	KnowledgeBase string `yaml:"knowledge_base"`
	InputDir      string `yaml:"input_dir"`
	OutputDir     string `yaml:"output_dir"`
	ReportsDir    string `yaml:"reports_dir"`
	RetrieveLog   string `yaml:"retrieve_log"`
}

// BlocksConfig controls when and how long queries are split.
type BlocksConfig struct {
	Threshold int `yaml:"threshold"`
	Size      int `yaml:"size"`
	Overlap   int `yaml:"overlap"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LLM: LLMConfig{
			Model:          "gemini-2.5-flash",
			Temperature:    0,
			EmbeddingModel: "gemini-embedding-001",
			APIKeyEnv:      "GEMINI_API_KEY",
		},
		Retrieval: RetrievalConfig{TopK: 4},
		Paths: PathsConfig{
			Corpus:        "fidelity_new.c",
			KnowledgeBase: "fidelity_new.c",
			InputDir:      "testdata",
			OutputDir:     "output",
			ReportsDir:    ".fidelity-reports",
			RetrieveLog:   "retrieve-new.txt",
		},
		Blocks: BlocksConfig{
			Threshold: 50,
			Size:      50,
			Overlap:   5,
		},
		Workers: 1,
		UI:      "auto",
	}
}

// Validate checks numeric ranges and required names.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	if strings.TrimSpace(c.LLM.Model) == "" {
		return fmt.Errorf("%w: llm.model is required", ErrInvalidConfig)
	}

	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return fmt.Errorf("%w: llm.temperature %.2f out of range [0, 2]", ErrInvalidConfig, c.LLM.Temperature)
	}

	if c.Retrieval.TopK <= 0 {
		return fmt.Errorf("%w: retrieval.top_k must be positive, got %d", ErrInvalidConfig, c.Retrieval.TopK)
	}

	if c.Blocks.Size <= 0 {
		return fmt.Errorf("%w: blocks.size must be positive, got %d", ErrInvalidConfig, c.Blocks.Size)
	}

	if c.Blocks.Overlap < 0 || c.Blocks.Overlap >= c.Blocks.Size {
		return fmt.Errorf("%w: blocks.overlap %d out of range [0, %d)", ErrInvalidConfig, c.Blocks.Overlap, c.Blocks.Size)
	}

	if c.Blocks.Threshold <= 0 {
		return fmt.Errorf("%w: blocks.threshold must be positive, got %d", ErrInvalidConfig, c.Blocks.Threshold)
	}

	if c.Workers <= 0 {
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidConfig, c.Workers)
	}

	return nil
}

// APIKey resolves the model API key from the configured environment variable.
func (c *Config) APIKey() string {
	if c.LLM.APIKeyEnv == "" {
		return ""
	}

	return strings.TrimSpace(os.Getenv(c.LLM.APIKeyEnv))
}
