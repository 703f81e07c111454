package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// APIBaseURL is the persistence service endpoint the CLI talks to.
	APIBaseURL string `yaml:"api_url"`
	// DataDir is where the persistence service keeps its event store.
	DataDir string `yaml:"data_dir"`
	// Listen is the persistence service listen address.
	Listen string `yaml:"listen"`
}

func defaultConfig() *Config {
	return &Config{
		APIBaseURL: "http://127.0.0.1:8787",
		DataDir:    defaultDataDir(),
		Listen:     "127.0.0.1:8787",
	}
}

// Load reads path as YAML over the defaults, then applies environment
// overrides (HARU_API_URL, HARU_DATA_DIR, HARU_LISTEN). A missing config
// file is not an error; an empty path falls back to ./haru.yaml.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env file is optional
	}

	cfg := defaultConfig()

	if path == "" {
		path = "haru.yaml"
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	case errors.Is(err, fs.ErrNotExist):
		// defaults only
	default:
		return nil, err
	}

	if v := os.Getenv("HARU_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("HARU_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("HARU_LISTEN"); v != "" {
		cfg.Listen = v
	}
	return cfg, nil
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".haru"
	}
	return filepath.Join(home, ".haru", "events")
}
