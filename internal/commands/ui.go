package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/model"
	"github.com/tally-dev/tally/internal/tui"
)

func newUICommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive tracker",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWorkspace(dir)
			if err != nil {
				return err
			}
			defer w.close()

			m := tui.New(w.cfg, w.ledger, w.docPath)
			m.OnMutate(func(action string, rec model.Record) {
				w.recordMutation(action, rec, action+": "+rec.Description)
			})
			p := tea.NewProgram(m, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running UI: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "ledger directory")
	return cmd
}
