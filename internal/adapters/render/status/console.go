package status

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/B-1P/ledtomato/internal/domain"
	"github.com/B-1P/ledtomato/internal/ports"
)

// Console prints monitor events, redrawing a single progress line in place.
type Console struct {
	out    io.Writer
	styles styles

	mu      sync.Mutex
	inline  bool
	lastLen int
}

var _ ports.SessionObserver = (*Console)(nil)

func NewConsole(out io.Writer, opts RenderOptions) *Console {
	return &Console{out: out, styles: newStyles(opts.Plain)}
}

func (c *Console) SessionStarted(kind domain.SessionKind) {
	c.println(c.kindStyle(kind).Render(fmt.Sprintf("%s session started", kind.Label())))
}

func (c *Console) Progress(timer domain.TimerState) {
	line := progressLine(timer, c.styles)

	c.mu.Lock()
	defer c.mu.Unlock()

	width := lipgloss.Width(line)
	pad := ""
	if c.lastLen > width {
		pad = strings.Repeat(" ", c.lastLen-width)
	}
	fmt.Fprintf(c.out, "\r%s%s", line, pad)
	c.inline = true
	c.lastLen = width
}

func (c *Console) Transition(from, to domain.TimerTag) {
	c.println(tagStyle(to, c.styles).Render(fmt.Sprintf("Switched from %s to %s", from, to)))
}

func (c *Console) SessionCompleted(kind domain.SessionKind, durationSeconds int) {
	message := fmt.Sprintf("Work session complete! (%s)", minutes(durationSeconds))
	if kind.IsBreak() {
		message = fmt.Sprintf("Break time complete! (%s)", minutes(durationSeconds))
	}
	c.println(c.kindStyle(kind).Render(message))
	c.println("Time to switch activities!")
}

func (c *Console) SessionStopped(key string) {
	c.println(c.styles.warning.Render("Timer stopped."))
}

func (c *Console) ConnectionLost(err error) {
	c.println(c.styles.warning.Render(fmt.Sprintf("Lost connection to device: %v", err)))
}

func (c *Console) println(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.inline {
		fmt.Fprintln(c.out)
		c.inline = false
		c.lastLen = 0
	}
	fmt.Fprintln(c.out, text)
}

func (c *Console) kindStyle(kind domain.SessionKind) lipgloss.Style {
	return tagStyle(kind.Tag(), c.styles)
}

// progressLine renders "Work Session [=====-----]  42% 14:20 left".
func progressLine(timer domain.TimerState, s styles) string {
	label := timer.Tag.String()
	if timer.Tag == domain.TagWorking {
		label = "Work Session"
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		tagStyle(timer.Tag, s).Render(label),
		" ",
		renderProgressBar(timer.Progress(), barWidth, timer.Tag.IsBreak(), s),
		" ",
		fmt.Sprintf("%3.0f%%", timer.Progress()*100),
		" ",
		s.value.Render(domain.FormatClock(timer.Remaining)+" left"),
	)
}
