package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewStatsCommand creates the stats command
func NewStatsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show summary statistics for today",
		Long: `Show how many habits exist, how many are completed today, and how
many still have progress to make.`,
		Args: cobra.NoArgs,
		RunE: statsCommand,
	}
	return cmd
}

func statsCommand(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	stats := st.Stats()

	decideColor()
	cyan := color.New(color.FgCyan, color.Bold)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)

	cyan.Println("Habit Statistics")
	fmt.Printf("  Total habits:    %d\n", stats.Total)
	fmt.Printf("  Completed today: %s\n", green.Sprint(stats.CompletedToday))
	fmt.Printf("  In progress:     %s\n", yellow.Sprint(stats.InProgress))
	return nil
}
