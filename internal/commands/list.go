package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List records, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWorkspace(dir)
			if err != nil {
				return err
			}
			defer w.close()

			records := w.ledger.All()
			if len(records) == 0 {
				fmt.Println("No records yet.")
				return nil
			}

			for _, r := range records {
				sign := "+"
				if r.SignedAmount().IsNegative() {
					sign = "-"
				}
				fmt.Printf("%s  %s  %s%s%s  %-14s  %s\n",
					r.ID,
					r.Date.Format(dateFlagFormat),
					sign,
					w.cfg.UI.Currency,
					r.Amount.StringFixed(2),
					r.Category,
					r.Description,
				)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "ledger directory")
	return cmd
}
