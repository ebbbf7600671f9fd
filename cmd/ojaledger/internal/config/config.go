// Package config loads the ojaledger CLI configuration.
//
// The configuration lives in a single YAML file under
// os.UserConfigDir()/ojaledger/config.yaml:
//
//	listen: ":8080"
//	data_dir: ""            # empty means <config dir>/data
//	backend: gemini          # gemini | openai
//	gemini:
//	  api_key: ""            # or env GEMINI_API_KEY
//	  model: gemini-2.5-flash
//	  tts_model: gemini-2.5-flash-preview-tts
//	openai:
//	  api_key: ""            # or env OPENAI_API_KEY
//	  model: gpt-4o-mini
//	  transcription_model: whisper-1
//
// API keys may come from the environment instead of the file, which wins
// over the file when both are set.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

const (
	appDir     = "ojaledger"
	configFile = "config.yaml"

	BackendGemini = "gemini"
	BackendOpenAI = "openai"
)

// Config is the full CLI configuration.
type Config struct {
	Listen  string       `yaml:"listen"`
	DataDir string       `yaml:"data_dir"`
	Backend string       `yaml:"backend"`
	Gemini  GeminiConfig `yaml:"gemini"`
	OpenAI  OpenAIConfig `yaml:"openai"`
}

type GeminiConfig struct {
	APIKey   string `yaml:"api_key"`
	Model    string `yaml:"model"`
	TTSModel string `yaml:"tts_model"`
}

type OpenAIConfig struct {
	APIKey             string `yaml:"api_key"`
	Model              string `yaml:"model"`
	TranscriptionModel string `yaml:"transcription_model"`
}

// Load reads the configuration from the default location. A missing file is
// not an error; defaults and environment variables still apply.
func Load() (*Config, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("cannot determine config directory: %w", err)
	}
	return LoadFrom(filepath.Join(base, appDir))
}

// LoadFrom reads the configuration rooted at a specific directory.
func LoadFrom(dir string) (*Config, error) {
	cfg := &Config{}
	data, err := os.ReadFile(filepath.Join(dir, configFile))
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", configFile, err)
		}
	}

	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.Gemini.APIKey = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.OpenAI.APIKey = v
	}
	if v := os.Getenv("OJALEDGER_LISTEN"); v != "" {
		cfg.Listen = v
	}
	if v := os.Getenv("OJALEDGER_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}

	if cfg.Listen == "" {
		cfg.Listen = ":8080"
	}
	if cfg.DataDir == "" {
		cfg.DataDir = filepath.Join(dir, "data")
	}
	if cfg.Backend == "" {
		cfg.Backend = BackendGemini
	}
	if cfg.Gemini.Model == "" {
		cfg.Gemini.Model = "gemini-2.5-flash"
	}
	if cfg.Gemini.TTSModel == "" {
		cfg.Gemini.TTSModel = "gemini-2.5-flash-preview-tts"
	}
	if cfg.OpenAI.Model == "" {
		cfg.OpenAI.Model = "gpt-4o-mini"
	}
	if cfg.OpenAI.TranscriptionModel == "" {
		cfg.OpenAI.TranscriptionModel = "whisper-1"
	}
	return cfg, nil
}

// Validate checks that the selected backend has its credentials. Only serve
// needs this; ledger maintenance commands run without any backend.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendGemini:
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("backend %q needs gemini.api_key or GEMINI_API_KEY", c.Backend)
		}
	case BackendOpenAI:
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("backend %q needs openai.api_key or OPENAI_API_KEY", c.Backend)
		}
	default:
		return fmt.Errorf("unknown backend %q, want %s or %s", c.Backend, BackendGemini, BackendOpenAI)
	}
	return nil
}
