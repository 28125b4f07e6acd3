package main

import (
	"context"
	"log/slog"
	"os"

	"persona-trace/internal/config"
	"persona-trace/internal/export"
	"persona-trace/internal/index"
	"persona-trace/internal/summarize"
	"persona-trace/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is the normal case.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	store, err := index.OpenStore(cfg.DBPath)
	if err != nil {
		slog.Error("failed to open annotation store", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	if cfg.Reset {
		if err := store.Reset(context.Background()); err != nil {
			slog.Error("failed to reset annotation store", "error", err)
			os.Exit(1)
		}
		slog.Info("annotation store reset", "path", cfg.DBPath)
	}

	exporter, err := export.New(cfg.ExportDir)
	if err != nil {
		slog.Error("failed to prepare exporter", "error", err)
		os.Exit(1)
	}

	summarizer := summarize.New(cfg.LLM.APIKey, cfg.LLM.BaseURL, cfg.LLM.Model)

	model := ui.NewModel(cfg, store, exporter, summarizer)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		slog.Error("viewer exited with error", "error", err)
		os.Exit(1)
	}
}
