package status

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/B-1P/ledtomato/internal/domain"
)

const (
	labelWidth = 18
	barWidth   = 24
)

type RenderOptions struct {
	Now   time.Time
	Plain bool
}

func DeviceStatus(addr domain.DeviceAddress, status domain.DeviceStatus, opts RenderOptions) (string, error) {
	return render(func(s styles) string { return statusView(addr, status, s) }, opts)
}

func Config(cfg domain.DeviceConfig, opts RenderOptions) (string, error) {
	return render(func(s styles) string { return configView(cfg, s) }, opts)
}

func Devices(devices []domain.Device, opts RenderOptions) (string, error) {
	return render(func(s styles) string { return devicesView(devices, opts.Now, s) }, opts)
}

func Stats(stats domain.SessionStats, opts RenderOptions) (string, error) {
	return render(func(s styles) string { return statsView(stats, s) }, opts)
}

func statusView(addr domain.DeviceAddress, status domain.DeviceStatus, s styles) string {
	timer := status.Timer
	lines := []string{
		s.title.Render("LED Tomato Status"),
		row("Device", addr.String(), s),
		row("Hostname", fallback(status.Hostname, "unknown"), s),
		row("WiFi Connected", yesNo(status.WiFiConnected), s),
		row("Timer State", tagStyle(timer.Tag, s).Render(timer.Tag.String()), s),
		row("Running", yesNo(timer.Running), s),
	}

	if timer.Running {
		lines = append(lines,
			row("Time Remaining", domain.FormatClock(timer.Remaining), s),
			row("Time Elapsed", domain.FormatClock(timer.Elapsed), s),
			row("Total Duration", domain.FormatClock(timer.Duration), s),
		)
		if timer.Duration > 0 {
			progress := lipgloss.JoinHorizontal(
				lipgloss.Top,
				renderProgressBar(timer.Progress(), barWidth, timer.Tag.IsBreak(), s),
				" ",
				fmt.Sprintf("%.1f%%", timer.Progress()*100),
			)
			lines = append(lines, row("Progress", progress, s))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func configView(cfg domain.DeviceConfig, s styles) string {
	lines := []string{
		s.title.Render("Device Configuration"),
		row("Work Time", minutes(cfg.WorkTime), s),
		row("Short Break", minutes(cfg.ShortBreakTime), s),
		row("Long Break", minutes(cfg.LongBreakTime), s),
		row("Work Color", cfg.WorkColor.String(), s),
		row("Break Color", cfg.BreakColor.String(), s),
		row("Work Animation", enabled(cfg.WorkAnimation), s),
		row("Break Animation", enabled(cfg.BreakAnimation), s),
		row("Brightness", fmt.Sprintf("%d (%.0f%%)", cfg.Brightness, float64(cfg.Brightness)/domain.MaxBrightness*100), s),
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func devicesView(devices []domain.Device, now time.Time, s styles) string {
	lines := []string{
		s.title.Render("LED Tomato Devices"),
		s.label.Render(fmt.Sprintf("devices: %d", len(devices))),
	}

	if len(devices) == 0 {
		lines = append(lines, s.warning.Render("No devices found."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, device := range devices {
		lines = append(lines, s.section.Render(deviceBlock(device, now, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func deviceBlock(device domain.Device, now time.Time, s styles) string {
	wifi := "AP mode"
	if device.WiFiConnected {
		wifi = "connected"
	}

	parts := []string{
		s.success.Render(device.Address.String()),
		row("Hostname", fallback(device.Hostname, "unknown"), s),
	}
	if device.Name != "" && device.Name != device.Hostname {
		parts = append(parts, row("Name", device.Name, s))
	}
	parts = append(parts,
		row("WiFi", wifi, s),
		row("Found via", fallback(string(device.Source), "unknown"), s),
	)
	if !device.LastSeen.IsZero() {
		parts = append(parts, row("Last seen", formatSeen(device.LastSeen, now), s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func statsView(stats domain.SessionStats, s styles) string {
	if stats.TotalSessions == 0 {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			s.title.Render("Session Statistics"),
			s.empty.Render("No sessions recorded yet."),
		)
	}

	rate := float64(stats.CompletedCount) / float64(stats.TotalSessions) * 100
	lines := []string{
		s.title.Render("Session Statistics"),
		row("Total Sessions", fmt.Sprintf("%d", stats.TotalSessions), s),
		row("Work Sessions", fmt.Sprintf("%d", stats.WorkSessions), s),
		row("Break Sessions", fmt.Sprintf("%d", stats.BreakSessions), s),
		row("Completed", fmt.Sprintf("%d (%.0f%%)", stats.CompletedCount, rate), s),
		row("Total Time", formatMinutes(stats.TotalMinutes), s),
		row("Today", fmt.Sprintf("%d", stats.TodaySessions), s),
		row("This Week", fmt.Sprintf("%d", stats.ThisWeekSessions), s),
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func row(label, value string, s styles) string {
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.label.Width(labelWidth).Render(label),
		s.value.Render(value),
	)
}

func tagStyle(tag domain.TimerTag, s styles) lipgloss.Style {
	return s.forTag(tag == domain.TagWorking, tag.IsBreak())
}

func renderProgressBar(fraction float64, width int, breaking bool, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * clampFraction(fraction)))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}

	fill := s.barWork
	if breaking {
		fill = s.barBreak
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		fill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func clampFraction(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func formatSeen(seen, now time.Time) string {
	if now.IsZero() {
		return seen.Format(time.RFC3339)
	}

	ago := now.Sub(seen)
	switch {
	case ago < time.Minute:
		return "just now"
	case ago < time.Hour:
		return plural(int(ago.Minutes()), "minute") + " ago"
	case ago < 24*time.Hour:
		return plural(int(ago.Hours()), "hour") + " ago"
	default:
		return seen.Format("15:04 on 02 Jan")
	}
}

func formatMinutes(total int) string {
	if total < 60 {
		return plural(total, "minute")
	}
	return fmt.Sprintf("%dh %02dm", total/60, total%60)
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

func minutes(seconds int) string {
	return plural(seconds/60, "minute")
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func enabled(v bool) string {
	if v {
		return "Enabled"
	}
	return "Disabled"
}

func fallback(value, otherwise string) string {
	if strings.TrimSpace(value) == "" {
		return otherwise
	}
	return value
}
