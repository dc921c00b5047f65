package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/activitylog"
)

func newRemoveCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a record by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWorkspace(dir)
			if err != nil {
				return err
			}
			defer w.close()

			rec, ok := w.ledger.Find(args[0])
			if !ok {
				// Removing an unknown id is a no-op, not an error.
				fmt.Printf("No record with id %s\n", args[0])
				return nil
			}
			if err := w.ledger.Remove(rec.ID); err != nil {
				return err
			}

			w.recordMutation(activitylog.ActionRemove, rec, "remove: "+rec.Description)
			fmt.Printf("Removed %s (%s)\n", rec.Description, rec.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "ledger directory")
	return cmd
}
