package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tessro/dialogcoach/internal/roster"
)

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "Work with roster files",
	Long:  "Commands for checking and producing roster files.",
}

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a roster file",
	Long:  "Load a roster file (.toml, .yaml or .yml) and report the first problem found.",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

var exportFormat string
var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the current roster as a file",
	Long: "Write the loaded roster (the built-in data unless --roster is set) as TOML or YAML. " +
		"The output is a starting point for a custom roster file.",
	Args: cobra.NoArgs,
	RunE: runExport,
}

func runValidate(cmd *cobra.Command, args []string) error {
	d, err := roster.Load(args[0])
	if err != nil {
		return err
	}

	var employees int
	for _, c := range d.Coaches {
		employees += len(d.RosterFor(c.ID))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d coaches, %d roster entries)\n",
		args[0], len(d.Coaches), employees)
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	d, err := loadDataset()
	if err != nil {
		return err
	}

	f := roster.FileFrom(d, d.DefaultCoach().ID)
	if exportOut == "" || exportOut == "-" {
		return roster.Encode(cmd.OutOrStdout(), f, exportFormat)
	}

	file, err := os.Create(exportOut)
	if err != nil {
		return fmt.Errorf("create %s: %w", exportOut, err)
	}
	if err := roster.Encode(file, f, exportFormat); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "toml", "output format: toml or yaml")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "write to this file instead of stdout")

	rosterCmd.AddCommand(validateCmd)
	rosterCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(rosterCmd)

	// "dialogcoach validate FILE" is kept as a shortcut.
	rootCmd.AddCommand(&cobra.Command{
		Use:   validateCmd.Use,
		Short: validateCmd.Short,
		Long:  validateCmd.Long,
		Args:  validateCmd.Args,
		RunE:  runValidate,
	})
}
