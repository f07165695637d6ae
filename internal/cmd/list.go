package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sandeepkv93/habitd/internal/model"
)

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all habits with today's status",
		Long: `List every tracked habit with its frequency, today's progress
against the daily target, and the overall completion ratio.

Examples:
  habitd list
  habitd list --data-file ./habits.json`,
		Args: cobra.NoArgs,
		RunE: listCommand,
	}
	return cmd
}

func listCommand(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	habits := st.List()
	if len(habits) == 0 {
		fmt.Println("No habits yet. Run 'habitd add <name>' to create one.")
		return nil
	}

	decideColor()
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)
	gray := color.New(color.FgHiBlack)

	today := st.Today()
	now := st.Now()
	for _, h := range habits {
		badge := yellow.Sprintf("[%d/%d]", h.CountOn(today), h.TargetCount)
		if h.DoneOn(today) {
			badge = green.Sprint("[done]")
		}
		fmt.Printf("%s %s %s\n", badge, h.Name, gray.Sprintf("(%s, %.0f%% of days, id %s)",
			h.Frequency, h.CompletionRatio(now)*100, shortID(h)))
	}
	return nil
}

func shortID(h model.Habit) string {
	if len(h.ID) > 8 {
		return h.ID[:8]
	}
	return h.ID
}
