package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tessro/dialogcoach/internal/locale"
)

var summaryCoach string

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show a coach's cadence distribution",
	Long:  "Print how a coach's employees split across meeting cycles and how many still have none.",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	_, coach, view, err := deriveView(summaryCoach, "")
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Диалог-коуч: %s\n", coach.FullName())
	fmt.Fprintf(out, "В работе: %s\n", locale.Employees(view.Total()))

	if len(view.Distribution) > 0 {
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		for _, seg := range view.Distribution {
			fmt.Fprintf(w, "  %s\t%d\t%.0f%%\n", seg.Label, seg.Count, seg.Percentage)
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}

	if view.WithoutCycleCount == 0 {
		fmt.Fprintln(out, "Без цикла: нет")
	} else {
		fmt.Fprintf(out, "Без цикла: %s\n", locale.WithoutActivity(view.WithoutCycleCount))
	}
	return nil
}

func init() {
	summaryCmd.Flags().StringVar(&summaryCoach, "coach", "", "coach to summarize")
	rootCmd.AddCommand(summaryCmd)
}
