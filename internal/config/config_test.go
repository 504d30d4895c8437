package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/B-1P/ledtomato/internal/domain"
)

func isolate(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, key := range []string{
		"LEDTOMATO_NETWORK_DEFAULT_DEVICE",
		"LEDTOMATO_NETWORK_PORT",
		"LEDTOMATO_DISPLAY_REFRESH_INTERVAL",
		"LEDTOMATO_SOUND_ENABLED",
		"LEDTOMATO_LOG_LEVEL",
		"LEDTOMATO_DATA_DIR",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	return home
}

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	home := isolate(t)

	cfg, err := Load(LoadOptions{EnvFile: filepath.Join(home, "missing.env")})

	require.NoError(t, err)
	assert.Empty(t, cfg.File)
	assert.Equal(t, 80, cfg.Network.Port)
	assert.Equal(t, "ledtomato", cfg.Network.Identifier)
	assert.Equal(t, 10*time.Second, cfg.Network.DiscoveryTimeout)
	assert.Equal(t, 10*time.Second, cfg.Network.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.Network.PingTimeout)
	assert.Equal(t, 2*time.Second, cfg.Network.ProbeTimeout)
	assert.Equal(t, time.Second, cfg.Display.RefreshInterval)
	assert.True(t, cfg.Display.Color)
	assert.True(t, cfg.Sound.Enabled)
	assert.Equal(t, 3, cfg.Pomodoro.LongBreakEvery)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, filepath.Join(home, ".ledtomato"), cfg.DataDir)
	assert.Equal(t, cfg.DataDir, cfg.Viper().GetString("data.dir"))
	assert.Empty(t, cfg.SoundFiles())

	visuals := cfg.Visuals()
	assert.Equal(t, "FF0000", visuals.WorkColor.Hex())
	assert.Equal(t, "00FF00", visuals.BreakColor.Hex())
	assert.Equal(t, "FFA500", visuals.StoppedColor.Hex())
	assert.False(t, visuals.WorkAnimation)
	assert.True(t, visuals.BreakAnimation)
}

func TestLoadReadsDefaultFileAndEnvOverrides(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".ledtomato")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[network]
default_device = "192.168.1.50"
port = 8080
request_timeout = "3s"

[sound]
session_end = "~/sounds/bell.wav"

[pomodoro]
work_color = "0000FF"
long_break_every = 4
`), 0o600))
	t.Setenv("LEDTOMATO_NETWORK_PORT", "9090")
	t.Setenv("LEDTOMATO_DISPLAY_REFRESH_INTERVAL", "250ms")

	cfg, err := Load(LoadOptions{EnvFile: filepath.Join(home, "missing.env")})

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.toml"), cfg.File)
	assert.Equal(t, "192.168.1.50", cfg.Network.DefaultDevice)
	assert.Equal(t, 9090, cfg.Network.Port)
	assert.Equal(t, 3*time.Second, cfg.Network.RequestTimeout)
	assert.Equal(t, 250*time.Millisecond, cfg.Display.RefreshInterval)
	assert.Equal(t, 4, cfg.Pomodoro.LongBreakEvery)
	assert.Equal(t, "0000FF", cfg.Visuals().WorkColor.Hex())
	assert.Equal(t, map[domain.SoundCue]string{
		domain.CueSessionEnd: filepath.Join(home, "sounds", "bell.wav"),
	}, cfg.SoundFiles())
}

func TestLoadDotEnvFile(t *testing.T) {
	home := isolate(t)
	envFile := filepath.Join(home, "ledtomato.env")
	require.NoError(t, os.WriteFile(envFile, []byte("LEDTOMATO_NETWORK_DEFAULT_DEVICE=10.0.0.9:8080\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("LEDTOMATO_NETWORK_DEFAULT_DEVICE") })

	cfg, err := Load(LoadOptions{EnvFile: envFile})

	require.NoError(t, err)
	assert.Equal(t, "10.0.0.9:8080", cfg.Network.DefaultDevice)
}

func TestLoadExplicitFileMustExist(t *testing.T) {
	home := isolate(t)

	_, err := Load(LoadOptions{
		Path:    filepath.Join(home, "nope.toml"),
		EnvFile: filepath.Join(home, "missing.env"),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.toml")
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[network]
probe_timeout = "0s"

[pomodoro]
break_color = "GREEN"
long_break_every = 0

[log]
level = "loud"
`), 0o600))

	_, err := Load(LoadOptions{Path: path, EnvFile: filepath.Join(home, "missing.env")})

	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorIs(t, err, domain.ErrInvalidColor)
	assert.Contains(t, err.Error(), "network.probe_timeout must be positive")
	assert.Contains(t, err.Error(), "pomodoro.long_break_every")
	assert.Contains(t, err.Error(), `log.level "loud"`)
}
