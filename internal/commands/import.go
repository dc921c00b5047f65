package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/activitylog"
	"github.com/tally-dev/tally/internal/importer"
)

func newImportCommand() *cobra.Command {
	var dir string
	var format string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import records from a bank CSV export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := importer.DefaultRegistry()
			parser := registry.Get(format)
			if parser == nil {
				return fmt.Errorf("unknown format %q (available: %s)",
					format, strings.Join(registry.Formats(), ", "))
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()

			rows, err := parser.Parse(f)
			if err != nil {
				return fmt.Errorf("parsing %s: %w", args[0], err)
			}

			w, err := openWorkspace(dir)
			if err != nil {
				return err
			}
			defer w.close()

			added, err := importer.Import(w.ledger, rows, w.cfg.Categories.Default)
			for _, rec := range added {
				w.recordMutation(activitylog.ActionImport, rec, "import: "+rec.Description)
			}
			if err != nil {
				return fmt.Errorf("imported %d of %d rows: %w", len(added), len(rows), err)
			}

			fmt.Printf("Imported %d records from %s\n", len(added), args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "ledger directory")
	cmd.Flags().StringVar(&format, "format", "generic", "CSV format")
	return cmd
}
