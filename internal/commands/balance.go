package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/summary"
)

func newBalanceCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Print the current balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWorkspace(dir)
			if err != nil {
				return err
			}
			defer w.close()

			balance := summary.Balance(w.ledger.All())
			fmt.Printf("%s%s\n", w.cfg.UI.Currency, balance.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "ledger directory")
	return cmd
}
