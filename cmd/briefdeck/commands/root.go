// Package commands wires the briefdeck CLI.
package commands

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"briefdeck/internal/channel"
	"briefdeck/internal/config"
	"briefdeck/internal/database"
	"briefdeck/internal/database/repository"
	"briefdeck/internal/format"
	"briefdeck/internal/logging"
	"briefdeck/internal/recipient"
	"briefdeck/internal/tui"
)

func Execute() error {
	root := &cobra.Command{
		Use:   "briefdeck",
		Short: "Meeting intelligence dashboard",
		Long:  "briefdeck lists meetings with AI-generated summaries and manages the communication formats used to distribute them.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI()
		},
		SilenceUsage: true,
	}
	root.AddCommand(formatsCmd(), checkCmd(), versionCmd())
	return root.Execute()
}

// env is the bootstrapped application state shared by the commands.
type env struct {
	cfg   config.Config
	log   *zap.Logger
	db    *sql.DB
	store *format.Store
}

func (e *env) close() {
	if e.db != nil {
		_ = e.db.Close()
	}
	if e.log != nil {
		_ = e.log.Sync()
	}
}

func bootstrap(ctx context.Context) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	log, err := logging.New(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}
	if err := database.RunMigrations(cfg.Database.Path); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := repository.NewMeetingRepo(db).SeedSamples(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("seed meetings: %w", err)
	}

	store := format.NewStore(repository.NewFormatRepo(db))
	if err := store.Load(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &env{cfg: cfg, log: log, db: db, store: store}, nil
}

func runTUI() error {
	ctx := context.Background()
	e, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer e.close()

	loc := time.Local
	if e.cfg.UI.Timezone != "" && e.cfg.UI.Timezone != "Local" {
		if l, err := time.LoadLocation(e.cfg.UI.Timezone); err == nil {
			loc = l
		} else {
			e.log.Warn("timezone load failed, using local", zap.Error(err))
		}
	}

	app := tui.New(ctx, e.cfg, e.log,
		channel.DefaultRegistry(),
		recipient.DefaultCatalog(),
		e.store,
		tui.Repos{Meetings: repository.NewMeetingRepo(e.db)},
		loc,
	)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
