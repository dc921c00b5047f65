package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/config"
	"github.com/tally-dev/tally/internal/gitops"
	"github.com/tally-dev/tally/internal/store"
)

func newInitCommand() *cobra.Command {
	var backend string
	var noGit bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new tally ledger directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runInit(absDir, store.Backend(backend), noGit)
		},
	}

	cmd.Flags().StringVar(&backend, "backend", "file", "persistence backend (file or sqlite)")
	cmd.Flags().BoolVar(&noGit, "no-git", false, "skip git repository setup")

	return cmd
}

func runInit(dir string, backend store.Backend, noGit bool) error {
	if !backend.Valid() || backend == store.BackendMemory {
		return fmt.Errorf("backend must be file or sqlite, got %q", backend)
	}

	if err := os.MkdirAll(filepath.Join(dir, "logs"), 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	cfg := config.Default()
	cfg.Data.Backend = string(backend)
	if backend == store.BackendSQLite {
		cfg.Data.Path = "tally.db"
	}
	if noGit {
		cfg.Git.AutoCommit = false
	}
	if err := config.Save(filepath.Join(dir, config.Filename), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Keep secrets and sqlite scratch files out of the ledger's history.
	gitignore := ".env\n*.db-journal\n*.db-wal\n*.db-shm\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	// Write an empty document so the ledger exists before the first add.
	st, cleanup, err := store.Open(backend, filepath.Join(dir, cfg.Data.Path))
	if err != nil {
		return fmt.Errorf("opening %s backend: %w", backend, err)
	}
	defer cleanup()
	if err := st.Save(nil); err != nil {
		return fmt.Errorf("writing empty document: %w", err)
	}

	if noGit {
		fmt.Printf("Initialized tally ledger at %s (%s backend)\n", dir, backend)
		return nil
	}

	if !gitops.IsRepo(dir) {
		if err := gitops.Init(dir); err != nil {
			return fmt.Errorf("git init: %w", err)
		}
	}
	hash, err := gitops.AutoCommit(dir, "init: new tally ledger", cfg.Git.AuthorName, cfg.Git.AuthorEmail)
	if err != nil {
		return fmt.Errorf("initial commit: %w", err)
	}
	fmt.Printf("Initialized tally ledger at %s (%s backend, commit %s)\n", dir, backend, hash)
	return nil
}
