package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/averyhale/briefer/internal/assist"
	"github.com/averyhale/briefer/internal/cli"
	"github.com/averyhale/briefer/internal/db"
	"github.com/averyhale/briefer/internal/llm"
	"github.com/averyhale/briefer/internal/repository"
	"github.com/averyhale/briefer/internal/role"
	"github.com/averyhale/briefer/internal/store"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env for local development; absence is fine.
	_ = godotenv.Load()

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("finding home directory: %w", err)
	}

	// Determine DB path: env var or default ~/.briefer/briefer.db
	dbPath := os.Getenv("BRIEFER_DB")
	if dbPath == "" {
		dbPath = filepath.Join(home, ".briefer", "briefer.db")
	}

	// Optional role copy overrides.
	overridesPath := os.Getenv("BRIEFER_ROLES")
	if overridesPath == "" {
		overridesPath = filepath.Join(home, ".briefer", "roles.yaml")
	}
	if err := role.LoadOverrides(overridesPath); err != nil {
		return err
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	stateRepo := repository.NewSQLiteStateRepo(database)
	exportLog := repository.NewSQLiteExportLogRepo(database)

	app := &cli.App{
		Store:     store.New(stateRepo),
		ExportLog: exportLog,
		Drafts:    assist.NewTracker(),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Wire generation services only when enabled.
	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		client := llm.NewOllamaClient(llmCfg, observer)
		app.ShotDraft = assist.NewShotDraftService(client)
		app.OverviewDraft = assist.NewOverviewDraftService(client)
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
