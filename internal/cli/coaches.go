package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tessro/dialogcoach/internal/locale"
)

var coachesCmd = &cobra.Command{
	Use:   "coaches",
	Short: "List dialog coaches",
	Long:  "List the dialog coaches in the roster with the size of each roster.",
	Args:  cobra.NoArgs,
	RunE:  runCoaches,
}

func runCoaches(cmd *cobra.Command, args []string) error {
	d, err := loadDataset()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(d.Coaches) == 0 {
		fmt.Fprintln(out, "Нет доступных диалог-коучей")
		return nil
	}

	defaultID := d.DefaultCoach().ID
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tДИАЛОГ-КОУЧ\tКОМАНДА\tСОТРУДНИКИ\t")
	for _, c := range d.Coaches {
		var marks string
		if c.IsSelf {
			marks += " (вы)"
		}
		if c.ID == defaultID {
			marks += " *"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.FullName(), c.Label, locale.Employees(len(d.RosterFor(c.ID))), marks)
	}
	return w.Flush()
}

func init() {
	rootCmd.AddCommand(coachesCmd)
}
