package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/B-1P/ledtomato/internal/adapters/sound"
	"github.com/B-1P/ledtomato/internal/domain"
	"github.com/B-1P/ledtomato/internal/logger"
)

const (
	EnvPrefix      = "LEDTOMATO"
	DefaultDirName = ".ledtomato"
	FileName       = "config.toml"
)

// Config holds every setting the CLI reads from config.toml, .env and
// LEDTOMATO_* variables.
type Config struct {
	Network  NetworkConfig
	Display  DisplayConfig
	Sound    SoundConfig
	Pomodoro PomodoroConfig
	LogLevel string
	DataDir  string

	// File is the config file that was read, empty when none existed.
	File string

	v *viper.Viper
}

type NetworkConfig struct {
	DefaultDevice    string
	Port             int
	Identifier       string
	DiscoveryTimeout time.Duration
	RequestTimeout   time.Duration
	PingTimeout      time.Duration
	ProbeTimeout     time.Duration
}

type DisplayConfig struct {
	RefreshInterval time.Duration
	Color           bool
}

type SoundConfig struct {
	Enabled    bool
	Player     string
	WorkStart  string
	BreakStart string
	SessionEnd string
}

type PomodoroConfig struct {
	WorkColor      string
	BreakColor     string
	WorkAnimation  bool
	BreakAnimation bool
	StoppedColor   string
	LongBreakEvery int
}

type LoadOptions struct {
	// Path is an explicit config file; it must exist when set.
	Path string
	// EnvFile is read when present. Defaults to ".env".
	EnvFile string
}

func Load(opts LoadOptions) (*Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	file, err := readConfigFile(v, opts.Path)
	if err != nil {
		return nil, err
	}

	cfg := fromViper(v)
	cfg.File = file
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func readConfigFile(v *viper.Viper, explicit string) (string, error) {
	path := explicit
	if path == "" {
		dir, err := defaultDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(dir, FileName)
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		if explicit == "" && errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read config %s: %w", path, err)
	}

	return path, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("network.default_device", "")
	v.SetDefault("network.port", domain.DefaultDevicePort)
	v.SetDefault("network.identifier", "ledtomato")
	v.SetDefault("network.discovery_timeout", 10*time.Second)
	v.SetDefault("network.request_timeout", 10*time.Second)
	v.SetDefault("network.ping_timeout", 5*time.Second)
	v.SetDefault("network.probe_timeout", 2*time.Second)

	v.SetDefault("display.refresh_interval", time.Second)
	v.SetDefault("display.color", true)

	v.SetDefault("sound.enabled", true)
	v.SetDefault("sound.player", sound.DefaultCommand())
	v.SetDefault("sound.work_start", "")
	v.SetDefault("sound.break_start", "")
	v.SetDefault("sound.session_end", "")

	v.SetDefault("pomodoro.work_color", "FF0000")
	v.SetDefault("pomodoro.break_color", "00FF00")
	v.SetDefault("pomodoro.work_animation", false)
	v.SetDefault("pomodoro.break_animation", true)
	v.SetDefault("pomodoro.stopped_color", "FFA500")
	v.SetDefault("pomodoro.long_break_every", domain.DefaultLongBreakEvery)

	v.SetDefault("log.level", logger.WarnLevel)
	v.SetDefault("data.dir", "")
}

func fromViper(v *viper.Viper) *Config {
	dataDir := expandHome(v.GetString("data.dir"))
	if dataDir == "" {
		if dir, err := defaultDir(); err == nil {
			dataDir = dir
		}
	}
	v.Set("data.dir", dataDir)

	return &Config{
		Network: NetworkConfig{
			DefaultDevice:    strings.TrimSpace(v.GetString("network.default_device")),
			Port:             v.GetInt("network.port"),
			Identifier:       v.GetString("network.identifier"),
			DiscoveryTimeout: v.GetDuration("network.discovery_timeout"),
			RequestTimeout:   v.GetDuration("network.request_timeout"),
			PingTimeout:      v.GetDuration("network.ping_timeout"),
			ProbeTimeout:     v.GetDuration("network.probe_timeout"),
		},
		Display: DisplayConfig{
			RefreshInterval: v.GetDuration("display.refresh_interval"),
			Color:           v.GetBool("display.color"),
		},
		Sound: SoundConfig{
			Enabled:    v.GetBool("sound.enabled"),
			Player:     v.GetString("sound.player"),
			WorkStart:  expandHome(v.GetString("sound.work_start")),
			BreakStart: expandHome(v.GetString("sound.break_start")),
			SessionEnd: expandHome(v.GetString("sound.session_end")),
		},
		Pomodoro: PomodoroConfig{
			WorkColor:      v.GetString("pomodoro.work_color"),
			BreakColor:     v.GetString("pomodoro.break_color"),
			WorkAnimation:  v.GetBool("pomodoro.work_animation"),
			BreakAnimation: v.GetBool("pomodoro.break_animation"),
			StoppedColor:   v.GetString("pomodoro.stopped_color"),
			LongBreakEvery: v.GetInt("pomodoro.long_break_every"),
		},
		LogLevel: v.GetString("log.level"),
		DataDir:  dataDir,
		v:        v,
	}
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	for name, value := range map[string]time.Duration{
		"network.discovery_timeout": c.Network.DiscoveryTimeout,
		"network.request_timeout":   c.Network.RequestTimeout,
		"network.ping_timeout":      c.Network.PingTimeout,
		"network.probe_timeout":     c.Network.ProbeTimeout,
		"display.refresh_interval":  c.Display.RefreshInterval,
	} {
		if value <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %s", name, value))
		}
	}

	if c.Network.Port <= 0 || c.Network.Port > 65535 {
		errs = append(errs, fmt.Errorf("network.port out of range: %d", c.Network.Port))
	}

	for name, value := range map[string]string{
		"pomodoro.work_color":    c.Pomodoro.WorkColor,
		"pomodoro.break_color":   c.Pomodoro.BreakColor,
		"pomodoro.stopped_color": c.Pomodoro.StoppedColor,
	} {
		if _, err := domain.ParseColor(value); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}

	if c.Pomodoro.LongBreakEvery < 1 {
		errs = append(errs, fmt.Errorf("pomodoro.long_break_every must be at least 1, got %d", c.Pomodoro.LongBreakEvery))
	}

	if !logger.ValidLevel(c.LogLevel) {
		errs = append(errs, fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.LogLevel))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

var ErrInvalidConfig = errors.New("invalid configuration")

// Viper exposes the resolved settings to adapters that read their own keys.
func (c *Config) Viper() *viper.Viper {
	return c.v
}

// Visuals must only be called on a validated config.
func (c *Config) Visuals() domain.SessionVisuals {
	return domain.SessionVisuals{
		WorkColor:      domain.MustParseColor(c.Pomodoro.WorkColor),
		BreakColor:     domain.MustParseColor(c.Pomodoro.BreakColor),
		WorkAnimation:  c.Pomodoro.WorkAnimation,
		BreakAnimation: c.Pomodoro.BreakAnimation,
		StoppedColor:   domain.MustParseColor(c.Pomodoro.StoppedColor),
	}
}

func (c *Config) SoundFiles() map[domain.SoundCue]string {
	files := map[domain.SoundCue]string{}
	for cue, path := range map[domain.SoundCue]string{
		domain.CueWorkStart:  c.Sound.WorkStart,
		domain.CueBreakStart: c.Sound.BreakStart,
		domain.CueSessionEnd: c.Sound.SessionEnd,
	} {
		if path != "" {
			files[cue] = path
		}
	}
	return files
}

func defaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, DefaultDirName), nil
}

func expandHome(path string) string {
	path = strings.TrimSpace(path)
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
