package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// Viper ignores empty env values, so blanking shields the test from
	// whatever the host environment carries.
	t.Setenv("PERSONA_TRACE_ARCHIVE", "")
	t.Setenv("PERSONA_TRACE_MODEL", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("PERSONA_TRACE_DB", filepath.Join(t.TempDir(), "state.sqlite"))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "conversations.json", cfg.ArchivePath)
	require.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	require.Empty(t, cfg.LLM.APIKey)
	require.False(t, cfg.Reset)
}

func TestLoadEnvOverrides(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "custom.sqlite")
	t.Setenv("PERSONA_TRACE_ARCHIVE", "/data/export.json")
	t.Setenv("PERSONA_TRACE_DB", dbPath)
	t.Setenv("PERSONA_TRACE_EXPORT_DIR", "/data/exports")
	t.Setenv("PERSONA_TRACE_RESET", "true")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_BASE_URL", "http://localhost:8080/v1")
	t.Setenv("PERSONA_TRACE_MODEL", "gpt-4o")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "/data/export.json", cfg.ArchivePath)
	require.Equal(t, dbPath, cfg.DBPath)
	require.Equal(t, "/data/exports", cfg.ExportDir)
	require.True(t, cfg.Reset)
	require.Equal(t, "sk-test", cfg.LLM.APIKey)
	require.Equal(t, "http://localhost:8080/v1", cfg.LLM.BaseURL)
	require.Equal(t, "gpt-4o", cfg.LLM.Model)
}

func TestDefaultDBPathUnderHome(t *testing.T) {
	path, err := DefaultDBPath()
	require.NoError(t, err)
	require.Equal(t, "state.sqlite", filepath.Base(path))
	require.Contains(t, path, filepath.Join(".local", "share", "persona-trace"))
}
