package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pomo-cli/pomo/internal/domain"
)

func TestLoadFrom_CreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultSettings(), cfg.ToSettings())
	assert.True(t, cfg.Notifications.Desktop)

	// The file should now exist on disk.
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestSaveTo_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := DefaultConfig()
	cfg.Timer.WorkMinutes = 50
	cfg.Timer.AutoStartNext = true
	cfg.Timer.Sound = false
	require.NoError(t, SaveTo(path, cfg))

	loaded, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, 50, loaded.Timer.WorkMinutes)
	assert.True(t, loaded.Timer.AutoStartNext)
	assert.False(t, loaded.Timer.Sound)
	assert.Equal(t, 5, loaded.Timer.ShortBreakMinutes)
}

func TestLoadFrom_CorruptFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("{{{ not toml"), 0600))

	_, err := LoadFrom(path)
	// The caller falls back wholesale to DefaultConfig on error.
	assert.Error(t, err)
}

func TestLoadFrom_MissingFieldsFallBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[timer]\nwork_minutes = 30\n"), 0600))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Timer.WorkMinutes)
	assert.Equal(t, 5, cfg.Timer.ShortBreakMinutes)
	assert.Equal(t, 4, cfg.Timer.RoundsUntilLongBreak)
	assert.True(t, cfg.Timer.Sound)
}

func TestLoadFrom_ClampsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[timer]\nwork_minutes = 0\nlong_break_minutes = -4\n"), 0600))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Timer.WorkMinutes)
	assert.Equal(t, 1, cfg.Timer.LongBreakMinutes)
}

func TestCorruptConfigFallsBackToUsableDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("{{{ not toml"), 0600))

	// The caller-side recovery: a load failure means DefaultConfig wholesale.
	cfg, err := LoadFrom(path)
	if err != nil {
		cfg = DefaultConfig()
	}

	assert.Equal(t, domain.DefaultSettings(), cfg.ToSettings())

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	dbPath := GetDBPath(cfg)
	assert.Equal(t, filepath.Join(home, ".pomo", "pomo.db"), dbPath)
	assert.NotContains(t, dbPath, "~", "fallback db path must not keep a literal tilde")
}

func TestGetDBPath_ExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".pomo", "pomo.db"), GetDBPath(DefaultConfig()))

	cfg := DefaultConfig()
	cfg.Storage.DataDir = ""
	assert.Equal(t, filepath.Join(home, ".pomo", "pomo.db"), GetDBPath(cfg))

	cfg.Storage.DataDir = "/var/lib/pomo"
	assert.Equal(t, "/var/lib/pomo/pomo.db", GetDBPath(cfg))
}

func TestLoadFrom_ExpandsCustomTildeDataDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[storage]\ndata_dir = \"~/focus-data\"\n"), 0600))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "focus-data"), cfg.Storage.DataDir)
}

func TestSetSettings(t *testing.T) {
	cfg := DefaultConfig()

	cfg.SetSettings(domain.Settings{
		WorkMinutes:          45,
		ShortBreakMinutes:    10,
		LongBreakMinutes:     20,
		RoundsUntilLongBreak: 3,
		AutoStartNext:        true,
		Sound:                false,
	})

	assert.Equal(t, 45, cfg.Timer.WorkMinutes)
	assert.Equal(t, 3, cfg.Timer.RoundsUntilLongBreak)
	assert.True(t, cfg.Timer.AutoStartNext)
}
