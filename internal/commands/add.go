package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/activitylog"
	"github.com/tally-dev/tally/internal/ledger"
	"github.com/tally-dev/tally/internal/model"
)

const dateFlagFormat = "2006-01-02"

func newAddCommand() *cobra.Command {
	var dir string
	var description string
	var amount string
	var category string
	var recType string
	var date string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an income or expense record",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWorkspace(dir)
			if err != nil {
				return err
			}
			defer w.close()

			if category == "" {
				category = w.cfg.Categories.Default
			}
			when := time.Now()
			if date != "" {
				when, err = time.Parse(dateFlagFormat, date)
				if err != nil {
					return fmt.Errorf("parsing date %q (want YYYY-MM-DD): %w", date, err)
				}
			}

			rec, err := w.ledger.Add(ledger.AddParams{
				Description: description,
				RawAmount:   amount,
				Category:    category,
				Type:        model.RecordType(recType),
				Date:        when,
			})
			if err != nil {
				return err
			}

			w.recordMutation(activitylog.ActionAdd, rec, "add: "+rec.Description)
			fmt.Printf("Added %s %s%s (%s) %s\n",
				rec.Type, w.cfg.UI.Currency, rec.Amount.StringFixed(2), rec.Category, rec.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "ledger directory")
	cmd.Flags().StringVarP(&description, "description", "m", "", "record description (required)")
	cmd.Flags().StringVarP(&amount, "amount", "a", "", "positive amount (required)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "category label (defaults to the configured label)")
	cmd.Flags().StringVarP(&recType, "type", "t", string(model.TypeExpense), "Income or Expense")
	cmd.Flags().StringVar(&date, "date", "", "record date, YYYY-MM-DD (defaults to today)")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
