package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/habitd/internal/model"
)

// NewAddCommand creates the add command
func NewAddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <name>...",
		Short: "Add a new habit",
		Long: `Add a new habit. Multiple arguments are joined into one name, so
quoting is optional.

Examples:
  habitd add Drink Water
  habitd add "Morning Run" --frequency weekly
  habitd add Stretch --target 3`,
		Args: cobra.MinimumNArgs(1),
		RunE: addCommand,
	}
	cmd.Flags().String("frequency", "daily", "Habit frequency: daily, weekly, or monthly")
	cmd.Flags().Int("target", 1, "Number of check-offs per day that count as done")
	return cmd
}

func addCommand(cmd *cobra.Command, args []string) error {
	name := strings.Join(args, " ")
	freqFlag, _ := cmd.Flags().GetString("frequency")
	target, _ := cmd.Flags().GetInt("target")

	freq, err := model.ParseFrequency(freqFlag)
	if err != nil {
		return err
	}

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	habit, err := st.Add(name, freq, target)
	if err != nil {
		return err
	}
	fmt.Printf("Added %q (%s, target %d/day)\n", habit.Name, habit.Frequency, habit.TargetCount)
	return nil
}
