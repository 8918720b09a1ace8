package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "FIDELITY_"

// Load builds the configuration: defaults, then the YAML file at path (a
// missing file is fine), then .env, then FIDELITY_* environment overrides.
// The result is validated.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		// #nosec G304 - config path is chosen by the user
		data, err := os.ReadFile(path)

		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	_ = godotenv.Load()

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	strs := map[string]*string{
		"MODEL":           &cfg.LLM.Model,
		"EMBEDDING_MODEL": &cfg.LLM.EmbeddingModel,
		"API_KEY_ENV":     &cfg.LLM.APIKeyEnv,
		"CORPUS":          &cfg.Paths.Corpus,
		"KNOWLEDGE_BASE":  &cfg.Paths.KnowledgeBase,
		"INPUT_DIR":       &cfg.Paths.InputDir,
		"OUTPUT_DIR":      &cfg.Paths.OutputDir,
		"REPORTS_DIR":     &cfg.Paths.ReportsDir,
		"RETRIEVE_LOG":    &cfg.Paths.RetrieveLog,
		"UI":              &cfg.UI,
	}
	for name, dst := range strs {
		if v, ok := lookup(name); ok {
			*dst = v
		}
	}

	ints := map[string]*int{
		"TOP_K":           &cfg.Retrieval.TopK,
		"BLOCK_THRESHOLD": &cfg.Blocks.Threshold,
		"BLOCK_SIZE":      &cfg.Blocks.Size,
		"BLOCK_OVERLAP":   &cfg.Blocks.Overlap,
		"WORKERS":         &cfg.Workers,
	}
	for name, dst := range ints {
		v, ok := lookup(name)
		if !ok {
			continue
		}

		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q is not an integer", ErrInvalidConfig, EnvPrefix, name, v)
		}

		*dst = n
	}

	if v, ok := lookup("TEMPERATURE"); ok {
		f, err := strconv.ParseFloat(v, 32)
		if err != nil {
			return fmt.Errorf("%w: %sTEMPERATURE=%q is not a number", ErrInvalidConfig, EnvPrefix, v)
		}

		cfg.LLM.Temperature = float32(f)
	}

	return nil
}

func lookup(name string) (string, bool) {
	v, ok := os.LookupEnv(EnvPrefix + name)
	if !ok {
		return "", false
	}

	v = strings.TrimSpace(v)

	return v, v != ""
}
