package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/habitd/internal/model"
)

// NewDoneCommand creates the done command
func NewDoneCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <habit>",
		Short: "Check off a habit",
		Long: `Record one completion of the named habit. The habit can be given by
exact name or by a unique ID prefix. Defaults to today.

Examples:
  habitd done "Drink Water"
  habitd done 3f2a --date 2026-08-28`,
		Args: cobra.ExactArgs(1),
		RunE: doneCommand,
	}
	cmd.Flags().String("date", "", "Date to record, YYYY-MM-DD (default today)")
	return cmd
}

func doneCommand(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	habit, err := resolveHabit(st, args[0])
	if err != nil {
		return err
	}

	date, _ := cmd.Flags().GetString("date")
	if date == "" {
		date = st.Today()
	} else if _, err := model.ParseDate(date); err != nil {
		return err
	}

	updated, err := st.CheckOff(habit.ID, date)
	if err != nil {
		return err
	}
	count := updated.CountOn(date)
	if updated.DoneOn(date) {
		fmt.Printf("%q done for %s (%d/%d)\n", updated.Name, date, count, updated.TargetCount)
	} else {
		fmt.Printf("%q at %d/%d for %s\n", updated.Name, count, updated.TargetCount, date)
	}
	return nil
}
