package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewResetCommand creates the reset command
func NewResetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all habits",
		Long: `Delete every habit. The previous data file is kept next to the
original with a .bak suffix, so a mistaken reset is recoverable.

Requires --force; reset refuses to run without it.`,
		Args: cobra.NoArgs,
		RunE: resetCommand,
	}
	cmd.Flags().Bool("force", false, "Confirm deleting all habits")
	return cmd
}

func resetCommand(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	if !force {
		return fmt.Errorf("reset deletes all habits; re-run with --force to confirm")
	}

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	if err := st.Reset(); err != nil {
		return err
	}
	fmt.Println("All habits deleted. Previous data kept with a .bak suffix.")
	return nil
}
