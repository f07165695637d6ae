package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sandeepkv93/habitd/internal/model"
	"github.com/sandeepkv93/habitd/internal/store"
)

func TestRootCommandHelp(t *testing.T) {
	cmd := NewRootCommand()

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--help"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("help should not error: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "habitd") {
		t.Errorf("help text should mention habitd, got: %s", output)
	}
	for _, sub := range []string{"list", "stats", "add", "done", "export", "reset"} {
		if !strings.Contains(output, sub) {
			t.Errorf("help text should list the %s subcommand", sub)
		}
	}
}

func TestRootCommandPersistentFlags(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"data-file", "theme"} {
		if cmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("missing persistent flag %q", name)
		}
	}
}

func TestResetRequiresForce(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"reset", "--data-file", filepath.Join(t.TempDir(), "habits.json")})

	if err := cmd.Execute(); err == nil {
		t.Fatal("reset without --force should fail")
	}
}

func TestResolveHabit(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "habits.json"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer func() { _ = st.Close() }()
	if err := st.Load(); err != nil {
		t.Fatalf("load store: %v", err)
	}

	water, err := st.Add("Drink Water", model.FrequencyDaily, 1)
	if err != nil {
		t.Fatalf("add habit: %v", err)
	}
	if _, err := st.Add("Read", model.FrequencyDaily, 1); err != nil {
		t.Fatalf("add habit: %v", err)
	}

	got, err := resolveHabit(st, "Drink Water")
	if err != nil {
		t.Fatalf("resolve by name: %v", err)
	}
	if got.ID != water.ID {
		t.Errorf("expected %q, got %q", water.ID, got.ID)
	}

	got, err = resolveHabit(st, water.ID[:8])
	if err != nil {
		t.Fatalf("resolve by ID prefix: %v", err)
	}
	if got.ID != water.ID {
		t.Errorf("expected %q, got %q", water.ID, got.ID)
	}

	if _, err := resolveHabit(st, "no such habit"); err == nil {
		t.Error("expected an error for an unknown habit")
	}
}
