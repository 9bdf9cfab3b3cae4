package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tessro/dialogcoach/internal/paths"
	"github.com/tessro/dialogcoach/internal/report"
)

var (
	reportCoach  string
	reportFormat string
	reportOut    string
	reportSave   bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render a roster report",
	Long: "Render a coach's roster summary as Markdown or HTML. The report goes to stdout " +
		"unless --out names a file or --save writes it to ~/.dialogcoach/reports.",
	Args: cobra.NoArgs,
	RunE: runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	format := strings.ToLower(reportFormat)
	if format != "md" && format != "html" {
		return fmt.Errorf("unsupported report format %q (want md or html)", reportFormat)
	}
	if reportSave && reportOut != "" {
		return fmt.Errorf("--out and --save are mutually exclusive")
	}

	_, coach, view, err := deriveView(reportCoach, "")
	if err != nil {
		return err
	}

	md := report.Markdown(view, coach)
	data := []byte(md)
	if format == "html" {
		data, err = report.HTML(md)
		if err != nil {
			return fmt.Errorf("render html: %w", err)
		}
	}

	out := reportOut
	if reportSave {
		dir, err := paths.ReportsDir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create reports dir: %w", err)
		}
		name := fmt.Sprintf("%s-%s.%s", coach.ID, time.Now().Format("20060102-150405"), format)
		out = filepath.Join(dir, name)
	}

	if out == "" || out == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	slog.Info("cli: report written", "path", out, "coach", coach.ID, "format", format)
	fmt.Fprintf(cmd.OutOrStdout(), "Отчёт сохранён: %s\n", out)
	return nil
}

func init() {
	reportCmd.Flags().StringVar(&reportCoach, "coach", "", "coach to report on")
	reportCmd.Flags().StringVarP(&reportFormat, "format", "f", "md", "output format: md or html")
	reportCmd.Flags().StringVarP(&reportOut, "out", "o", "", "write the report to this file")
	reportCmd.Flags().BoolVar(&reportSave, "save", false, "write the report to the reports directory")
	rootCmd.AddCommand(reportCmd)
}
