package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Settings holds the runtime configuration of the server.
type Settings struct {
	Env        string `yaml:"env"`       // local, dev, prod
	LogLevel   string `yaml:"log_level"` // debug, info, warn, error
	Port       int    `yaml:"port"`
	DataSource string `yaml:"data_source"` // file path or http(s) URL of the poster JSON
	StaticDir  string `yaml:"static_dir"`
	ImageProxy bool   `yaml:"image_proxy"`
}

var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Load reads settings from the YAML file at path. An empty path or a missing
// file yields the defaults. POSTERS_DATA and PORT override the file values.
func Load(path string) (Settings, error) {
	s := Settings{ImageProxy: true}

	if path != "" {
		data, err := os.ReadFile(filepath.Clean(path))
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Settings{}, fmt.Errorf("failed to read config %s: %w", path, err)
		default:
			data = expandEnvVars(data)
			if err := yaml.Unmarshal(data, &s); err != nil {
				return Settings{}, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if v := os.Getenv("POSTERS_DATA"); v != "" {
		s.DataSource = v
	}
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		s.Port = port
	}

	s.ApplyDefaults()

	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid config: %w", err)
	}
	return s, nil
}

// ApplyDefaults fills zero values.
func (s *Settings) ApplyDefaults() {
	if s.Env == "" {
		s.Env = "local"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.DataSource == "" {
		s.DataSource = "data.json"
	}
	if s.StaticDir == "" {
		s.StaticDir = "./static"
	}
}

// Validate checks the settings for values the server cannot run with.
func (s Settings) Validate() error {
	switch s.Env {
	case "local", "dev", "prod":
	default:
		return fmt.Errorf("unknown env %q", s.Env)
	}
	if s.Port < 1 || s.Port > 65535 {
		return fmt.Errorf("port %d out of range", s.Port)
	}
	switch s.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", s.LogLevel)
	}
	return nil
}

// Addr returns the listen address.
func (s Settings) Addr() string {
	return ":" + strconv.Itoa(s.Port)
}

func expandEnvVars(data []byte) []byte {
	return envVarPattern.ReplaceAllFunc(data, func(m []byte) []byte {
		name := envVarPattern.FindSubmatch(m)[1]
		return []byte(os.Getenv(string(name)))
	})
}
