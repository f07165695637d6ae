package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewExportCommand creates the export command
func NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export habits as plain text",
		Long: `Write a plain-text report of every habit and its full progress log.
With no argument the report goes to stdout, which makes it easy to
pipe or redirect.

Examples:
  habitd export
  habitd export habits.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: exportCommand,
	}
	return cmd
}

func exportCommand(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	report := st.ExportText()
	if len(args) == 0 {
		fmt.Print(report)
		return nil
	}
	if err := os.WriteFile(args[0], []byte(report), 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	fmt.Printf("Exported %d habits to %s\n", st.Len(), args[0])
	return nil
}
