package commands

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/summary"
)

const chartBarWidth = 30

func newChartCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Show expense totals per category",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWorkspace(dir)
			if err != nil {
				return err
			}
			defer w.close()

			totals := summary.CategoryTotals(w.ledger.All())
			if len(totals) == 0 {
				fmt.Println("No expenses recorded yet.")
				return nil
			}

			sum := summary.ExpenseTotal(totals)
			for _, t := range totals {
				share := t.Total.Div(sum).InexactFloat64()
				barw := int(math.Round(share * chartBarWidth))
				if barw < 1 {
					barw = 1
				}
				fmt.Printf("%-16s %10s %5.1f%%  %s\n",
					t.Category,
					w.cfg.UI.Currency+t.Total.StringFixed(2),
					share*100,
					strings.Repeat("█", barw),
				)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "ledger directory")
	return cmd
}
