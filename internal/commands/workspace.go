package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tally-dev/tally/internal/activitylog"
	"github.com/tally-dev/tally/internal/config"
	"github.com/tally-dev/tally/internal/gitops"
	"github.com/tally-dev/tally/internal/ledger"
	"github.com/tally-dev/tally/internal/model"
	"github.com/tally-dev/tally/internal/store"
)

// workspace bundles everything a command needs for one ledger directory.
type workspace struct {
	dir     string
	cfg     *config.Config
	ledger  *ledger.Service
	docPath string
	cleanup store.CleanupFunc
}

func openWorkspace(dir string) (*workspace, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(absDir, config.Filename))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s is not a tally directory (run `tally init` first)", absDir)
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}

	backend := store.Backend(cfg.Data.Backend)
	docPath := filepath.Join(absDir, cfg.Data.Path)
	st, cleanup, err := store.Open(backend, docPath)
	if err != nil {
		return nil, fmt.Errorf("opening %s backend: %w", backend, err)
	}

	svc, err := ledger.NewService(st)
	if err != nil {
		cleanup()
		return nil, err
	}

	return &workspace{
		dir:     absDir,
		cfg:     cfg,
		ledger:  svc,
		docPath: docPath,
		cleanup: cleanup,
	}, nil
}

func (w *workspace) close() {
	if w.cleanup != nil {
		if err := w.cleanup(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: closing backend: %v\n", err)
		}
	}
}

// recordMutation appends to the activity log and auto-commits when enabled.
// Both are best-effort: a failure is a warning, never a crash.
func (w *workspace) recordMutation(action string, rec model.Record, message string) {
	entry := activitylog.Entry{
		Timestamp:   time.Now(),
		Action:      action,
		RecordID:    rec.ID,
		Description: rec.Description,
		Amount:      rec.SignedAmount().StringFixed(2),
	}
	if err := activitylog.Append(w.dir, []activitylog.Entry{entry}); err != nil {
		fmt.Fprintf(os.Stderr, "warning: writing activity log: %v\n", err)
	}

	if !w.cfg.Git.AutoCommit {
		return
	}
	if _, err := gitops.AutoCommit(w.dir, message, w.cfg.Git.AuthorName, w.cfg.Git.AuthorEmail); err != nil {
		fmt.Fprintf(os.Stderr, "warning: git auto-commit: %v\n", err)
	}
}
