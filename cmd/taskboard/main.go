package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/nhle/taskboard/internal/app"
	"github.com/nhle/taskboard/internal/board"
	"github.com/nhle/taskboard/internal/model"
	"github.com/nhle/taskboard/internal/notify"
	"github.com/nhle/taskboard/internal/store"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "taskboard",
		Short: "A terminal task board",
		Long:  "taskboard is a terminal task manager with filtering, search, analytics, and a notification inbox.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath)
		},
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", model.DefaultConfigPath(), "path to the config file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := model.LoadConfig(configPath)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Storage.Path), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	st, err := store.NewSQLiteStore(cfg.Storage.Path)
	if err != nil {
		return err
	}
	defer st.Close()

	log := notify.NewSeeded(time.Now())

	b := board.New(st, log)
	if err := b.Load(context.Background()); err != nil {
		return fmt.Errorf("loading tasks: %w", err)
	}

	program := tea.NewProgram(app.New(b, log, st), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}

	return nil
}
