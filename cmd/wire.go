package cmd

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/B-1P/ledtomato/internal/adapters/device"
	"github.com/B-1P/ledtomato/internal/adapters/discovery/mdns"
	"github.com/B-1P/ledtomato/internal/adapters/network"
	statusadapter "github.com/B-1P/ledtomato/internal/adapters/render/status"
	tomlrepo "github.com/B-1P/ledtomato/internal/adapters/repo/toml"
	"github.com/B-1P/ledtomato/internal/adapters/sessionlog"
	"github.com/B-1P/ledtomato/internal/adapters/sound"
	"github.com/B-1P/ledtomato/internal/adapters/terminal"
	"github.com/B-1P/ledtomato/internal/application"
	"github.com/B-1P/ledtomato/internal/config"
	"github.com/B-1P/ledtomato/internal/domain"
	"github.com/B-1P/ledtomato/internal/logger"
	"github.com/B-1P/ledtomato/internal/ports"
)

type globalFlags struct {
	device     string
	configPath string
	verbose    bool
}

// app is built once per invocation, after flags are parsed.
type app struct {
	flags globalFlags

	cfg        *config.Config
	logger     *zap.Logger
	devices    *application.Service
	stats      *application.StatsService
	sessions   ports.SessionLog
	httpClient *http.Client
	now        func() time.Time
	wired      bool
}

func (a *app) wire(cmd *cobra.Command) error {
	if a.wired {
		return nil
	}

	cfg, err := config.Load(config.LoadOptions{Path: a.flags.configPath})
	if err != nil {
		return err
	}

	level := cfg.LogLevel
	if a.flags.verbose {
		level = logger.DebugLevel
	}
	log := logger.New(level, cmd.ErrOrStderr())

	cache, err := tomlrepo.NewRepository(cfg.Viper())
	if err != nil {
		return fmt.Errorf("wire device cache: %w", err)
	}

	httpClient := &http.Client{}
	discovery := application.NewDiscoveryService(
		mdns.Browser{},
		device.Prober{HTTPClient: httpClient, Timeout: cfg.Network.ProbeTimeout},
		network.Interfaces{},
		ports.SystemClock{},
		log.Named("discovery"),
		application.DiscoveryOptions{
			Identifier: cfg.Network.Identifier,
			Window:     cfg.Network.DiscoveryTimeout,
			Port:       cfg.Network.Port,
		},
	)

	dial := func(addr domain.DeviceAddress) ports.DeviceClient {
		return &device.Client{
			Addr:           addr,
			HTTPClient:     httpClient,
			RequestTimeout: cfg.Network.RequestTimeout,
			PingTimeout:    cfg.Network.PingTimeout,
		}
	}

	sessions := sessionlog.NewStore(cfg.DataDir, log.Named("sessionlog"))

	a.cfg = cfg
	a.logger = log
	a.devices = application.NewService(cache, discovery, dial, ports.SystemClock{}, log.Named("devices"))
	a.stats = application.NewStatsService(sessions, ports.SystemClock{})
	a.sessions = sessions
	a.httpClient = httpClient
	a.now = time.Now
	a.wired = true

	log.Debug("configuration loaded", zap.String("file", cfg.File), zap.String("data_dir", cfg.DataDir))
	return nil
}

// connect resolves the device for a command and pings it once.
func (a *app) connect(cmd *cobra.Command) (application.Resolved, error) {
	resolved, err := a.devices.Resolve(cmd.Context(), application.ResolveRequest{
		Explicit: a.flags.device,
		Default:  a.cfg.Network.DefaultDevice,
		Port:     a.cfg.Network.Port,
		OnDiscover: func() {
			fmt.Fprintln(cmd.ErrOrStderr(), "Searching for LED Tomato devices...")
		},
	})
	if err != nil {
		return application.Resolved{}, err
	}

	a.logger.Debug("using device", zap.Stringer("address", resolved.Device.Address), zap.String("source", string(resolved.Device.Source)))
	return resolved, nil
}

func (a *app) renderOptions() statusadapter.RenderOptions {
	return statusadapter.RenderOptions{Now: a.now(), Plain: !a.cfg.Display.Color}
}

func (a *app) soundPlayer(bell io.Writer) ports.SoundPlayer {
	if !a.cfg.Sound.Enabled {
		return nil
	}

	player, err := sound.NewCommandWithBellFallback(sound.Options{
		Command: a.cfg.Sound.Player,
		Files:   a.cfg.SoundFiles(),
	}, bell)
	if err != nil {
		a.logger.Warn("sound disabled", zap.Error(err))
		return nil
	}
	return player
}

// newMonitor builds a session monitor bound to one device. The returned func
// releases the terminal and the interrupt handler.
func (a *app) newMonitor(cmd *cobra.Command, client ports.DeviceClient) (context.Context, *application.SessionMonitor, func()) {
	ctx, stopSignals := signal.NotifyContext(cmd.Context(), os.Interrupt)

	cancel := ports.CancelSource(ports.NoCancel{})
	release := func() {}
	if in, ok := cmd.InOrStdin().(*os.File); ok {
		cancel, release = terminal.CancelSourceFor(in)
	}

	monitor := application.NewSessionMonitor(
		client,
		a.soundPlayer(cmd.OutOrStdout()),
		a.sessions,
		statusadapter.NewConsole(cmd.OutOrStdout(), a.renderOptions()),
		application.MonitorOptions{
			Interval: a.cfg.Display.RefreshInterval,
			Visuals:  a.cfg.Visuals(),
			Cancel:   cancel,
			Logger:   a.logger.Named("monitor"),
		},
	)

	return ctx, monitor, func() {
		release()
		stopSignals()
	}
}
