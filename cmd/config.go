package cmd

import (
	"github.com/spf13/cobra"

	statusadapter "github.com/B-1P/ledtomato/internal/adapters/render/status"
	"github.com/B-1P/ledtomato/internal/application"
	"github.com/B-1P/ledtomato/internal/domain"
)

type configFlags struct {
	work           int
	short          int
	long           int
	workColor      string
	breakColor     string
	workAnimation  bool
	breakAnimation bool
	brightness     int
	asJSON         bool
}

func newConfigCmd(app *app) *cobra.Command {
	var flags configFlags

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change the device configuration",
		Long:  "config prints the device configuration. Any update flag changes only that setting; everything else on the device is kept.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			update, err := flags.toUpdate(cmd)
			if err != nil {
				return err
			}
			if !update.Empty() {
				if err := update.Validate(); err != nil {
					return err
				}
			}

			resolved, err := app.connect(cmd)
			if err != nil {
				return err
			}
			return runConfig(cmd, app, resolved, update, flags.asJSON)
		},
	}

	f := cmd.Flags()
	f.IntVar(&flags.work, "work", 0, "Work session length in minutes")
	f.IntVar(&flags.short, "short", 0, "Short break length in minutes")
	f.IntVar(&flags.long, "long", 0, "Long break length in minutes")
	f.StringVar(&flags.workColor, "work-color", "", "Work color as hex (e.g. FF0000)")
	f.StringVar(&flags.breakColor, "break-color", "", "Break color as hex (e.g. 00FF00)")
	f.BoolVar(&flags.workAnimation, "work-animation", false, "Animate the LEDs during work sessions")
	f.BoolVar(&flags.breakAnimation, "break-animation", false, "Animate the LEDs during breaks")
	f.IntVar(&flags.brightness, "brightness", 0, "LED brightness (0-255)")
	f.BoolVar(&flags.asJSON, "json", false, "Render JSON output")

	return cmd
}

func (f configFlags) toUpdate(cmd *cobra.Command) (application.ConfigUpdate, error) {
	var update application.ConfigUpdate
	changed := cmd.Flags().Changed

	if changed("work") {
		update.WorkMinutes = &f.work
	}
	if changed("short") {
		update.ShortBreakMinutes = &f.short
	}
	if changed("long") {
		update.LongBreakMinutes = &f.long
	}
	if changed("work-color") {
		color, err := domain.ParseColor(f.workColor)
		if err != nil {
			return application.ConfigUpdate{}, err
		}
		update.WorkColor = &color
	}
	if changed("break-color") {
		color, err := domain.ParseColor(f.breakColor)
		if err != nil {
			return application.ConfigUpdate{}, err
		}
		update.BreakColor = &color
	}
	if changed("work-animation") {
		update.WorkAnimation = &f.workAnimation
	}
	if changed("break-animation") {
		update.BreakAnimation = &f.breakAnimation
	}
	if changed("brightness") {
		update.Brightness = &f.brightness
	}

	return update, nil
}

func runConfig(cmd *cobra.Command, app *app, resolved application.Resolved, update application.ConfigUpdate, asJSON bool) error {
	configs := application.NewConfigService(resolved.Client)

	var (
		cfg domain.DeviceConfig
		err error
	)
	if update.Empty() {
		cfg, err = configs.Get(cmd.Context())
	} else {
		cfg, err = configs.Update(cmd.Context(), update)
	}
	if err != nil {
		return err
	}

	if asJSON {
		return writeJSON(cmd.OutOrStdout(), toConfigJSON(cfg))
	}

	rendered, err := statusadapter.Config(cfg, app.renderOptions())
	return writeRendered(cmd.OutOrStdout(), rendered, err)
}
