package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	require.Equal(t, "dark", cfg.Theme)
	require.Equal(t, "habits.json", filepath.Base(cfg.DataFile))
	require.Equal(t, "habitd.log", filepath.Base(cfg.LogFile))
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("HABITD_DATA_FILE", "/tmp/h/habits.json")
	t.Setenv("HABITD_THEME", "light")
	t.Setenv("HABITD_LOG_FILE", "/tmp/h/out.log")

	cfg := FromEnv(Default())
	require.Equal(t, "/tmp/h/habits.json", cfg.DataFile)
	require.Equal(t, "light", cfg.Theme)
	require.Equal(t, "/tmp/h/out.log", cfg.LogFile)
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	payload := "data_file: /data/habits.json\ntheme: light\n"
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	cfg, err := FromFile(path)
	require.NoError(t, err)
	require.Equal(t, "/data/habits.json", cfg.DataFile)
	require.Equal(t, "light", cfg.Theme)
	require.Empty(t, cfg.LogFile)
}

func TestFromFileRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: [unterminated"), 0o644))

	_, err := FromFile(path)
	require.Error(t, err)
}

func TestLoadMergesFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: light\n"), 0o644))
	t.Setenv("HABITD_CONFIG", path)
	t.Setenv("HABITD_THEME", "dark")

	cfg, err := Load()
	require.NoError(t, err)
	// Env wins over the file, file wins over defaults.
	require.Equal(t, "dark", cfg.Theme)
	require.Equal(t, "habits.json", filepath.Base(cfg.DataFile))
}

func TestLoadMissingConfigFileIsFine(t *testing.T) {
	t.Setenv("HABITD_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "dark", cfg.Theme)
}
