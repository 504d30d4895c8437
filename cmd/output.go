package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/B-1P/ledtomato/internal/domain"
)

type timerJSON struct {
	State     string `json:"state"`
	Running   bool   `json:"running"`
	Remaining int    `json:"remaining"`
	Elapsed   int    `json:"elapsed"`
	Duration  int    `json:"duration"`
}

type statusJSON struct {
	Device        string    `json:"device"`
	Hostname      string    `json:"hostname"`
	IPAddress     string    `json:"ip_address,omitempty"`
	WiFiConnected bool      `json:"wifi_connected"`
	Timer         timerJSON `json:"timer"`
}

type configJSON struct {
	WorkMinutes       int    `json:"work_minutes"`
	ShortBreakMinutes int    `json:"short_break_minutes"`
	LongBreakMinutes  int    `json:"long_break_minutes"`
	WorkColor         string `json:"work_color"`
	BreakColor        string `json:"break_color"`
	WorkAnimation     bool   `json:"work_animation"`
	BreakAnimation    bool   `json:"break_animation"`
	Brightness        int    `json:"brightness"`
}

type deviceJSON struct {
	Address       string     `json:"address"`
	Hostname      string     `json:"hostname,omitempty"`
	Name          string     `json:"name,omitempty"`
	WiFiConnected bool       `json:"wifi_connected"`
	Source        string     `json:"source,omitempty"`
	LastSeen      *time.Time `json:"last_seen,omitempty"`
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeRendered(w io.Writer, rendered string, err error) error {
	if err != nil {
		return fmt.Errorf("render output: %w", err)
	}
	_, err = fmt.Fprintln(w, rendered)
	return err
}

func toStatusJSON(addr domain.DeviceAddress, status domain.DeviceStatus) statusJSON {
	return statusJSON{
		Device:        addr.String(),
		Hostname:      status.Hostname,
		IPAddress:     status.IPAddress,
		WiFiConnected: status.WiFiConnected,
		Timer: timerJSON{
			State:     status.Timer.Tag.String(),
			Running:   status.Timer.Running,
			Remaining: status.Timer.Remaining,
			Elapsed:   status.Timer.Elapsed,
			Duration:  status.Timer.Duration,
		},
	}
}

func toConfigJSON(cfg domain.DeviceConfig) configJSON {
	return configJSON{
		WorkMinutes:       cfg.WorkTime / 60,
		ShortBreakMinutes: cfg.ShortBreakTime / 60,
		LongBreakMinutes:  cfg.LongBreakTime / 60,
		WorkColor:         cfg.WorkColor.Hex(),
		BreakColor:        cfg.BreakColor.Hex(),
		WorkAnimation:     cfg.WorkAnimation,
		BreakAnimation:    cfg.BreakAnimation,
		Brightness:        cfg.Brightness,
	}
}

func toDevicesJSON(devices []domain.Device) []deviceJSON {
	out := make([]deviceJSON, 0, len(devices))
	for _, device := range devices {
		entry := deviceJSON{
			Address:       device.Address.String(),
			Hostname:      device.Hostname,
			Name:          device.Name,
			WiFiConnected: device.WiFiConnected,
			Source:        string(device.Source),
		}
		if !device.LastSeen.IsZero() {
			seen := device.LastSeen
			entry.LastSeen = &seen
		}
		out = append(out, entry)
	}
	return out
}
