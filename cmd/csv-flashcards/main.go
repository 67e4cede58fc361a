package main

import (
	"fmt"
	"os"

	"csv-flashcards/internal/config"
	"csv-flashcards/internal/logger"
	"csv-flashcards/internal/models"
	"csv-flashcards/internal/services"
	"csv-flashcards/internal/shutdown"
	"csv-flashcards/internal/tui"

	"github.com/spf13/cobra"
)

const (
	AppName    = "CSV Flashcards"
	AppID      = "com.flashcards.csv-flashcards"
	AppVersion = "1.0.0"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "csv-flashcards [file.csv]",
		Short:   "Study question and answer pairs from a pipe-delimited file",
		Version: AppVersion,
		Args:    cobra.MaximumNArgs(1),
		RunE:    run,

		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.Flags()
	flags.Bool("tui", false, "run in the terminal instead of opening a window")
	flags.Bool("loop", false, "start over with a fresh shuffle after the last card")
	flags.Uint64("seed", 0, "shuffle seed (0 picks one from the clock)")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.Bool("log-json", false, "write logs as JSON lines")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}
	if len(args) == 1 {
		cfg.File = args[0]
	}

	appLogger := logger.New(cfg.LogLevel, cfg.LogJSON)
	appLogger.Info("Application", "starting", map[string]interface{}{
		"version":   AppVersion,
		"tui":       cfg.TUI,
		"loop":      cfg.Loop,
		"file":      cfg.File,
		"log_level": cfg.LogLevel,
	})

	repo := models.NewSessionRepository()
	repo.Update(func(s models.Session) models.Session { return s.SetLoop(cfg.Loop) })
	rng := models.NewShuffler(cfg.Seed)
	deckService := services.NewDeckService(appLogger)

	manager := shutdown.NewManager(appLogger)
	manager.Listen()
	defer manager.Shutdown()

	if cfg.TUI {
		return tui.Run(manager.Context(), tui.New(deckService, repo, rng, appLogger, cfg.File))
	}

	application := NewApplication(cfg, appLogger, deckService, repo, rng, manager)
	application.Run()
	return nil
}
