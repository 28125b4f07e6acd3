package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const DefaultGlamourStyle = "dark"

// Config holds the viewer configuration. Values come from an optional
// persona-trace.yaml in the working directory, overridden by
// environment variables.
type Config struct {
	ArchivePath string    `mapstructure:"archive_path"`
	DBPath      string    `mapstructure:"db_path"`
	ExportDir   string    `mapstructure:"export_dir"`
	Reset       bool      `mapstructure:"reset"`
	LLM         LLMConfig `mapstructure:"llm"`
}

// LLMConfig holds the completion endpoint configuration.
type LLMConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
}

func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("persona-trace")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("archive_path", "conversations.json")
	v.SetDefault("db_path", "")
	v.SetDefault("export_dir", "")
	v.SetDefault("reset", false)
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.model", "gpt-4o-mini")

	bindings := map[string]string{
		"archive_path": "PERSONA_TRACE_ARCHIVE",
		"db_path":      "PERSONA_TRACE_DB",
		"export_dir":   "PERSONA_TRACE_EXPORT_DIR",
		"reset":        "PERSONA_TRACE_RESET",
		"llm.api_key":  "OPENAI_API_KEY",
		"llm.base_url": "OPENAI_BASE_URL",
		"llm.model":    "PERSONA_TRACE_MODEL",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.DBPath == "" {
		path, err := DefaultDBPath()
		if err != nil {
			return Config{}, err
		}
		cfg.DBPath = path
	}
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return Config{}, fmt.Errorf("create state dir: %w", err)
	}

	return cfg, nil
}

// DefaultDBPath places the annotation store under the user's local data
// directory.
func DefaultDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "persona-trace", "state.sqlite"), nil
}
