package cmd

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sandeepkv93/habitd/internal/logging"
	"github.com/sandeepkv93/habitd/internal/store"
	"github.com/sandeepkv93/habitd/internal/theme"
	"github.com/sandeepkv93/habitd/internal/update"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for habitd
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "habitd",
		Short: "Terminal habit tracker",
		Long: `Habitd tracks daily habits from the terminal.

Running habitd without a subcommand opens the interactive TUI. The
subcommands (list, stats, add, done, export, reset) operate on the same
habit file without starting the TUI, which makes them usable from
scripts and cron jobs.

Habits live in a single JSON file. Its location comes from the config
file, the HABITD_DATA_FILE environment variable, or the --data-file
flag, in increasing order of precedence.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		RunE:         runTUI,
	}

	cmd.PersistentFlags().String("data-file", "", "Path to the habit data file (overrides config)")
	cmd.PersistentFlags().String("theme", "", "Color theme, dark or light (overrides config)")

	cmd.AddCommand(NewListCommand())
	cmd.AddCommand(NewStatsCommand())
	cmd.AddCommand(NewAddCommand())
	cmd.AddCommand(NewDoneCommand())
	cmd.AddCommand(NewExportCommand())
	cmd.AddCommand(NewResetCommand())

	return cmd
}

// runTUI launches the interactive shell. A corrupt data file does not
// abort here; the model starts on a recovery screen and lets the user
// decide whether to quarantine the file or quit.
func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	st, err := store.Open(cfg.DataFile, store.WithLogger(logger))
	if err != nil {
		if errors.Is(err, store.ErrLocked) {
			return fmt.Errorf("another habitd instance is using %s", cfg.DataFile)
		}
		return err
	}
	defer func() { _ = st.Close() }()

	loadErr := st.Load()
	if loadErr != nil && !errors.Is(loadErr, store.ErrCorruptData) {
		return loadErr
	}

	m := update.NewModelWithConfig(st, theme.ByName(cfg.Theme), logger, loadErr)
	program := tea.NewProgram(m, tea.WithAltScreen())

	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	if fm, ok := final.(update.Model); ok && fm.RecoveryAborted {
		return fmt.Errorf("habit data at %s is corrupt; run with a different --data-file or remove it", cfg.DataFile)
	}
	return nil
}
