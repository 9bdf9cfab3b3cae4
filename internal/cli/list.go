package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tessro/dialogcoach/internal/locale"
)

var listCoach string
var listQuery string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List a coach's employees",
	Long: "Print the employees the roster screen shows for a coach, earliest meeting first. " +
		"Employees without a cycle are left out, as on screen.",
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	_, _, view, err := deriveView(listCoach, listQuery)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(view.Visible) == 0 {
		if q := strings.TrimSpace(listQuery); q != "" {
			fmt.Fprintf(out, "Никого не нашли по запросу «%s»\n", q)
		} else {
			fmt.Fprintln(out, "Нет сотрудников")
		}
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tВСТРЕЧА\tСОТРУДНИК\tРОЛЬ\tЦИКЛ\tКАНАЛЫ")
	for _, e := range view.Visible {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			e.ID,
			locale.DayMonth(e.NextMeetingDate),
			e.FullName(),
			e.Role,
			e.Cycle.Label(),
			strings.Join(e.Channels, ", "),
		)
	}
	return w.Flush()
}

func init() {
	listCmd.Flags().StringVar(&listCoach, "coach", "", "coach whose roster to list")
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "search by name")
	rootCmd.AddCommand(listCmd)
}
