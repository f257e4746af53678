package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"briefdeck/internal/database"
	"briefdeck/internal/database/repository"
	"briefdeck/internal/format"
)

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Run a headless end-to-end pass against a temporary database",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runCheck(); err != nil {
				return err
			}
			fmt.Println("ok")
			return nil
		},
	}
}

// runCheck walks the wizard through a full create flow against a throwaway
// database and verifies the persisted record.
func runCheck() error {
	ctx := context.Background()

	dir, err := os.MkdirTemp("", "briefdeck-check-")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	dbPath := filepath.Join(dir, "check.db")
	if err := database.RunMigrations(dbPath); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	db, err := database.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	meetings := repository.NewMeetingRepo(db)
	if err := meetings.SeedSamples(ctx); err != nil {
		return fmt.Errorf("seed meetings: %w", err)
	}
	n, err := meetings.Count(ctx)
	if err != nil {
		return fmt.Errorf("count meetings: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("no meetings seeded")
	}

	store := format.NewStore(repository.NewFormatRepo(db))
	if err := store.Load(ctx); err != nil {
		return err
	}

	// walk the wizard: channel toggling must gate step 1
	w := format.NewWizard()
	d := w.Draft()
	d.ToggleChannel("teams")
	if !w.CanAdvance() {
		return fmt.Errorf("step 1 should allow advance with a channel selected")
	}
	d.ToggleChannel("teams")
	if w.CanAdvance() {
		return fmt.Errorf("step 1 should block advance with no channels")
	}

	d.ToggleChannel("slack")
	if !w.Next() {
		return fmt.Errorf("advance to recipients failed")
	}
	d.ToggleRecipient("slack", 0, "dev-team")
	d.SetName("Dev Digest")
	if !w.Next() {
		return fmt.Errorf("advance to style failed")
	}
	d.SetStyle("slack", "terse technical notes")
	f, ok := w.Finalize()
	if !ok {
		return fmt.Errorf("finalize failed")
	}
	if err := store.Save(ctx, f); err != nil {
		return err
	}

	// reopen through a fresh store to prove the record round-trips
	fresh := format.NewStore(repository.NewFormatRepo(db))
	if err := fresh.Load(ctx); err != nil {
		return err
	}
	got, ok := fresh.Get(f.ID)
	if !ok {
		return fmt.Errorf("saved format not found after reload")
	}
	if got.Name != "Dev Digest" {
		return fmt.Errorf("name = %q, want Dev Digest", got.Name)
	}
	if len(got.Channels) != 1 || got.Channels[0] != "slack" {
		return fmt.Errorf("channels = %v, want [slack]", got.Channels)
	}
	if len(got.Recipients) != 1 || got.Recipients[0] != "dev-team" {
		return fmt.Errorf("recipients = %v, want [dev-team]", got.Recipients)
	}
	if styles := format.DecodeStyles(got.MessageStyle); styles["slack"] != "terse technical notes" {
		return fmt.Errorf("slack style = %q, want terse technical notes", styles["slack"])
	}
	return nil
}
