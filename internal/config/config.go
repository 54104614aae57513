package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DocsConfig points at the corpus directory.
type DocsConfig struct {
	Dir string `yaml:"dir"`
}

// ChunkerConfig configures how documents are split into chunks.
type ChunkerConfig struct {
	Size    int `yaml:"size"`
	Overlap int `yaml:"overlap"`
}

// EmbedderConfig configures the embedding service client.
type EmbedderConfig struct {
	Model     string `yaml:"model"`
	APIKeyEnv string `yaml:"api_key_env"`
	BatchSize int    `yaml:"batch_size"`
}

// CompletionConfig configures the completion service client.
type CompletionConfig struct {
	Model     string `yaml:"model"`
	MaxTokens int    `yaml:"max_tokens"`
}

// RetrievalConfig controls how many chunks back a generated answer.
type RetrievalConfig struct {
	TopK int `yaml:"top_k"`
}

// WeatherConfig contains connection details for the weather provider.
type WeatherConfig struct {
	BaseURL   string `yaml:"base_url"`
	APIKeyEnv string `yaml:"api_key_env"`
}

// FlightConfig contains connection details for the flight provider.
type FlightConfig struct {
	BaseURL   string `yaml:"base_url"`
	APIKeyEnv string `yaml:"api_key_env"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Docs       DocsConfig       `yaml:"docs"`
	Chunker    ChunkerConfig    `yaml:"chunker"`
	Embedder   EmbedderConfig   `yaml:"embedder"`
	Completion CompletionConfig `yaml:"completion"`
	Retrieval  RetrievalConfig  `yaml:"retrieval"`
	Weather    WeatherConfig    `yaml:"weather"`
	Flight     FlightConfig     `yaml:"flight"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := defaultConfig()
			return cfg, nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/travelassist/config.yaml.
// If neither exists, it writes defaults to the user path and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "travelassist", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	cfg := &AppConfig{
		Docs:       DocsConfig{Dir: "brochures"},
		Chunker:    ChunkerConfig{Size: 500, Overlap: 50},
		Embedder:   EmbedderConfig{Model: "text-embedding-3-small", APIKeyEnv: "OPENAI_API_KEY", BatchSize: 32},
		Completion: CompletionConfig{Model: "gpt-4o-mini", MaxTokens: 512},
		Retrieval:  RetrievalConfig{TopK: 4},
		Weather:    WeatherConfig{BaseURL: "https://api.openweathermap.org/data/2.5", APIKeyEnv: "OPENWEATHER_API_KEY"},
		Flight:     FlightConfig{BaseURL: "https://api.aviationstack.com/v1", APIKeyEnv: "AVIATIONSTACK_API_KEY"},
	}
	return cfg
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Docs.Dir == "" {
		cfg.Docs.Dir = "brochures"
	}
	if cfg.Chunker.Size == 0 {
		cfg.Chunker.Size = 500
	}
	if cfg.Chunker.Overlap >= cfg.Chunker.Size {
		cfg.Chunker.Overlap = cfg.Chunker.Size / 10
	}
	if cfg.Embedder.Model == "" {
		cfg.Embedder.Model = "text-embedding-3-small"
	}
	if cfg.Embedder.APIKeyEnv == "" {
		cfg.Embedder.APIKeyEnv = "OPENAI_API_KEY"
	}
	if cfg.Embedder.BatchSize == 0 {
		cfg.Embedder.BatchSize = 32
	}
	if cfg.Completion.Model == "" {
		cfg.Completion.Model = "gpt-4o-mini"
	}
	if cfg.Completion.MaxTokens == 0 {
		cfg.Completion.MaxTokens = 512
	}
	if cfg.Retrieval.TopK == 0 {
		cfg.Retrieval.TopK = 4
	}
	if cfg.Weather.BaseURL == "" {
		cfg.Weather.BaseURL = "https://api.openweathermap.org/data/2.5"
	}
	if cfg.Weather.APIKeyEnv == "" {
		cfg.Weather.APIKeyEnv = "OPENWEATHER_API_KEY"
	}
	if cfg.Flight.BaseURL == "" {
		cfg.Flight.BaseURL = "https://api.aviationstack.com/v1"
	}
	if cfg.Flight.APIKeyEnv == "" {
		cfg.Flight.APIKeyEnv = "AVIATIONSTACK_API_KEY"
	}
}
