package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/sandeepkv93/habitd/internal/config"
	"github.com/sandeepkv93/habitd/internal/model"
	"github.com/sandeepkv93/habitd/internal/store"
)

// resolveConfig loads the layered configuration and applies the
// persistent CLI flags on top, since flags outrank both the config
// file and the environment.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if v, _ := cmd.Flags().GetString("data-file"); v != "" {
		cfg.DataFile = v
	}
	if v, _ := cmd.Flags().GetString("theme"); v != "" {
		cfg.Theme = v
	}
	return cfg, nil
}

// openStore opens and loads the habit store for a headless subcommand.
// Unlike the TUI there is no recovery screen, so corrupt data is fatal.
// The caller must Close the returned store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}
	st, err := store.Open(cfg.DataFile)
	if err != nil {
		if errors.Is(err, store.ErrLocked) {
			return nil, fmt.Errorf("another habitd instance is using %s", cfg.DataFile)
		}
		return nil, err
	}
	if err := st.Load(); err != nil {
		_ = st.Close()
		if errors.Is(err, store.ErrCorruptData) {
			return nil, fmt.Errorf("%w\nrun the TUI to quarantine the file, or remove %s", err, cfg.DataFile)
		}
		return nil, err
	}
	return st, nil
}

// resolveHabit finds a habit by exact name first, then by unique ID
// prefix, so the subcommands accept whichever the user has at hand.
func resolveHabit(st *store.Store, target string) (model.Habit, error) {
	habits := st.List()
	for _, h := range habits {
		if h.Name == target {
			return h, nil
		}
	}
	var matched []model.Habit
	for _, h := range habits {
		if strings.HasPrefix(h.ID, target) {
			matched = append(matched, h)
		}
	}
	switch len(matched) {
	case 1:
		return matched[0], nil
	case 0:
		return model.Habit{}, fmt.Errorf("no habit matches %q", target)
	default:
		return model.Habit{}, fmt.Errorf("%q matches %d habits, use a longer ID prefix", target, len(matched))
	}
}

// decideColor disables color output when stdout is not a terminal
func decideColor() {
	color.NoColor = color.NoColor || !isatty.IsTerminal(os.Stdout.Fd())
}
