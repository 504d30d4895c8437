package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDevice serves the LED Tomato REST API. A started session finishes after
// pollsPerSession status requests.
type fakeDevice struct {
	mu sync.Mutex

	state     int
	running   bool
	remaining int
	duration  int
	pollsLeft int

	config url.Values

	pollsPerSession int
	rejectStartAt   int

	starts      []string
	stops       int
	configPosts []url.Values
	requests    int
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		pollsPerSession: 3,
		config: url.Values{
			"workTime":       {"1500"},
			"shortBreakTime": {"300"},
			"longBreakTime":  {"900"},
			"workColor":      {"FF0000"},
			"breakColor":     {"FF00"},
			"workAnimation":  {"false"},
			"breakAnimation": {"true"},
			"brightness":     {"128"},
		},
	}
}

func (d *fakeDevice) serve(t *testing.T) string {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(d.handle))
	t.Cleanup(server.Close)
	return server.URL
}

func (d *fakeDevice) handle(w http.ResponseWriter, r *http.Request) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.requests++

	switch {
	case r.URL.Path == "/api/status" && r.Method == http.MethodGet:
		d.tick()
		writeTestJSON(w, map[string]any{
			"wifiConnected": true,
			"ipAddress":     "192.168.1.50",
			"hostname":      "ledtomato",
			"pomodoro": map[string]any{
				"state":     d.state,
				"running":   d.running,
				"remaining": d.remaining,
				"elapsed":   d.duration - d.remaining,
				"duration":  d.duration,
			},
		})
	case r.URL.Path == "/api/pomodoro/config" && r.Method == http.MethodGet:
		writeTestJSON(w, map[string]any{
			"workTime":       atoi(d.config.Get("workTime")),
			"shortBreakTime": atoi(d.config.Get("shortBreakTime")),
			"longBreakTime":  atoi(d.config.Get("longBreakTime")),
			"workColor":      d.config.Get("workColor"),
			"breakColor":     d.config.Get("breakColor"),
			"workAnimation":  d.config.Get("workAnimation") == "true",
			"breakAnimation": d.config.Get("breakAnimation") == "true",
			"brightness":     atoi(d.config.Get("brightness")),
		})
	case r.URL.Path == "/api/pomodoro/config" && r.Method == http.MethodPost:
		_ = r.ParseForm()
		d.configPosts = append(d.configPosts, r.PostForm)
		d.config = r.PostForm
		writeTestJSON(w, map[string]any{"success": true, "message": "Configuration updated"})
	case r.URL.Path == "/api/pomodoro/start" && r.Method == http.MethodPost:
		_ = r.ParseForm()
		kind := r.PostForm.Get("type")
		d.starts = append(d.starts, kind)
		if d.rejectStartAt > 0 && len(d.starts) >= d.rejectStartAt {
			writeTestJSON(w, map[string]any{"success": false, "message": "Timer busy"})
			return
		}
		d.begin(kind)
		writeTestJSON(w, map[string]any{"success": true, "message": "Timer started"})
	case r.URL.Path == "/api/pomodoro/stop" && r.Method == http.MethodPost:
		d.stops++
		d.running = false
		d.state = 0
		writeTestJSON(w, map[string]any{"success": true, "message": "Timer stopped"})
	default:
		http.NotFound(w, r)
	}
}

func (d *fakeDevice) begin(kind string) {
	field := map[string]string{"work": "workTime", "short_break": "shortBreakTime", "long_break": "longBreakTime"}[kind]
	d.state = map[string]int{"work": 1, "short_break": 2, "long_break": 3}[kind]
	d.running = true
	d.duration = atoi(d.config.Get(field))
	d.remaining = d.duration
	d.pollsLeft = d.pollsPerSession
}

func (d *fakeDevice) tick() {
	if !d.running {
		return
	}
	if d.pollsLeft == 0 {
		d.running = false
		d.state = 0
		d.remaining = 0
		return
	}
	d.pollsLeft--
	d.remaining -= d.duration / (d.pollsPerSession + 1)
}

func (d *fakeDevice) snapshot() (starts []string, stops int, posts []url.Values, requests int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.starts...), d.stops, append([]url.Values(nil), d.configPosts...), d.requests
}

func writeTestJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "", "version")

	require.NoError(t, err)
	assert.Equal(t, "ledtomato dev\n", stdout)
}

func TestStatusJSONOutput(t *testing.T) {
	device := newFakeDevice()
	addr := device.serve(t)

	stdout, _, err := executeCLI(t, t.TempDir(), "", "--device", addr, "status", "--json")

	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, `"hostname": "ledtomato"`)
	assert.Contains(t, stdout, `"state": "Idle"`)
	assert.Contains(t, stdout, `"wifi_connected": true`)
}

func TestStatusRenderedOutput(t *testing.T) {
	device := newFakeDevice()
	addr := device.serve(t)

	stdout, _, err := executeCLI(t, t.TempDir(), "", "--device", addr, "status")

	require.NoError(t, err)
	assert.Contains(t, stdout, "LED Tomato Status")
	assert.Contains(t, stdout, "Idle")
	assert.Contains(t, stdout, strings.TrimPrefix(addr, "http://"))
}

func TestUnreachableDeviceIsReported(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "", "--device", "127.0.0.1:1", "status")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not connect to device at 127.0.0.1:1")
}

func TestStartWithDurationFollowsSessionAndLogsIt(t *testing.T) {
	home := t.TempDir()
	device := newFakeDevice()
	addr := device.serve(t)

	stdout, _, err := executeCLI(t, home, "", "--device", addr, "start", "work", "--duration", "50")
	require.NoError(t, err)

	starts, stops, posts, _ := device.snapshot()
	assert.Equal(t, []string{"work"}, starts)
	assert.Zero(t, stops)
	require.Len(t, posts, 1)
	assert.Equal(t, "3000", posts[0].Get("workTime"))
	assert.Equal(t, "300", posts[0].Get("shortBreakTime"))
	assert.Equal(t, "00FF00", posts[0].Get("breakColor"))

	assert.Contains(t, stdout, "Work session started")
	assert.Contains(t, stdout, "Work session complete! (50 minutes)")

	data, err := os.ReadFile(filepath.Join(home, ".ledtomato", "sessions.jsonl"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type":"work"`)
	assert.Contains(t, string(data), `"duration_minutes":50`)
	assert.Contains(t, string(data), `"completed":true`)

	stdout, _, err = executeCLI(t, home, "", "stats")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Session Statistics")
	assert.Contains(t, stdout, "50 minutes")
}

func TestStartDetachReturnsImmediately(t *testing.T) {
	device := newFakeDevice()
	addr := device.serve(t)

	stdout, _, err := executeCLI(t, t.TempDir(), "", "--device", addr, "start", "short", "--detach")

	require.NoError(t, err)
	starts, _, _, _ := device.snapshot()
	assert.Equal(t, []string{"short_break"}, starts)
	assert.Equal(t, "Started Short Break session\n", stdout)
}

func TestStartRejectsUnknownSessionType(t *testing.T) {
	device := newFakeDevice()
	addr := device.serve(t)

	_, _, err := executeCLI(t, t.TempDir(), "", "--device", addr, "start", "nap")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid session type")
	_, _, _, requests := device.snapshot()
	assert.Zero(t, requests)
}

func TestStopCommand(t *testing.T) {
	device := newFakeDevice()
	addr := device.serve(t)

	stdout, _, err := executeCLI(t, t.TempDir(), "", "--device", addr, "stop")

	require.NoError(t, err)
	_, stops, _, _ := device.snapshot()
	assert.Equal(t, 1, stops)
	assert.Equal(t, "Timer stopped\n", stdout)
}

func TestConfigUpdateKeepsOtherFields(t *testing.T) {
	device := newFakeDevice()
	addr := device.serve(t)

	stdout, _, err := executeCLI(t, t.TempDir(), "", "--device", addr, "config", "--brightness", "200", "--json")

	require.NoError(t, err)
	_, _, posts, _ := device.snapshot()
	require.Len(t, posts, 1)
	assert.Equal(t, url.Values{
		"workTime":       {"1500"},
		"shortBreakTime": {"300"},
		"longBreakTime":  {"900"},
		"workColor":      {"FF0000"},
		"breakColor":     {"00FF00"},
		"workAnimation":  {"false"},
		"breakAnimation": {"true"},
		"brightness":     {"200"},
	}, posts[0])
	assert.Contains(t, stdout, `"brightness": 200`)
	assert.Contains(t, stdout, `"work_minutes": 25`)
}

func TestConfigRejectsInvalidBrightnessBeforeContactingDevice(t *testing.T) {
	device := newFakeDevice()
	addr := device.serve(t)

	_, _, err := executeCLI(t, t.TempDir(), "", "--device", addr, "config", "--brightness", "300")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid brightness")
	_, _, _, requests := device.snapshot()
	assert.Zero(t, requests)
}

func TestConfigShowsCurrentSettings(t *testing.T) {
	device := newFakeDevice()
	addr := device.serve(t)

	stdout, _, err := executeCLI(t, t.TempDir(), "", "--device", addr, "config")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Device Configuration")
	assert.Contains(t, stdout, "#00FF00")
	_, _, posts, _ := device.snapshot()
	assert.Empty(t, posts)
}

func TestMonitorWithoutRunningSession(t *testing.T) {
	device := newFakeDevice()
	addr := device.serve(t)

	_, _, err := executeCLI(t, t.TempDir(), "", "--device", addr, "monitor")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no active timer session")
}

func TestCycleChainsSessionsUntilDeviceRejectsStart(t *testing.T) {
	device := newFakeDevice()
	device.rejectStartAt = 3
	addr := device.serve(t)

	stdout, _, err := executeCLI(t, t.TempDir(), "", "--device", addr, "cycle", "--short", "7")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Timer busy")
	starts, _, posts, _ := device.snapshot()
	assert.Equal(t, []string{"work", "short_break", "work"}, starts)
	require.Len(t, posts, 3)
	assert.Equal(t, "420", posts[1].Get("shortBreakTime"))
	assert.Contains(t, stdout, "Break time complete! (7 minutes)")
}

func TestDiscoverCachedListsRememberedDevices(t *testing.T) {
	home := t.TempDir()
	device := newFakeDevice()
	addr := device.serve(t)

	_, _, err := executeCLI(t, home, "", "--device", addr, "status")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "", "discover", "--cached", "--json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, strings.TrimPrefix(addr, "http://"))
	assert.Contains(t, stdout, `"source": "manual"`)
}

func TestShellRunsCommandsAndSurvivesErrors(t *testing.T) {
	device := newFakeDevice()
	addr := device.serve(t)

	stdout, stderr, err := executeCLI(t, t.TempDir(), "status\nbogus\nstart nap\nstop\nquit\nstatus\n", "--device", addr)

	require.NoError(t, err)
	assert.Contains(t, stdout, "Connected to LED Tomato at")
	assert.Contains(t, stdout, "LED Tomato Status")
	assert.Contains(t, stdout, "Timer stopped")
	assert.Contains(t, stdout, "Goodbye!")
	assert.Equal(t, 1, strings.Count(stdout, "LED Tomato Status"))
	assert.Contains(t, stderr, `unknown command "bogus"`)
	assert.Contains(t, stderr, "invalid session type")
}

func TestShellStartRefusesWhileRunning(t *testing.T) {
	device := newFakeDevice()
	device.state = 1
	device.running = true
	device.duration = 1500
	device.remaining = 600
	device.pollsLeft = 100
	addr := device.serve(t)

	_, stderr, err := executeCLI(t, t.TempDir(), "start\nq\n", "--device", addr)

	require.NoError(t, err)
	assert.Contains(t, stderr, "timer is already running")
	starts, _, _, _ := device.snapshot()
	assert.Empty(t, starts)
}

func TestUnknownCommand(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "", "limit")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command \"limit\"")
}

func executeCLI(t *testing.T, home string, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)
	t.Setenv("LEDTOMATO_DISPLAY_REFRESH_INTERVAL", "1ms")
	t.Setenv("LEDTOMATO_SOUND_ENABLED", "false")
	t.Setenv("LEDTOMATO_DISPLAY_COLOR", "false")
	t.Setenv("LEDTOMATO_NETWORK_DEFAULT_DEVICE", "")
	require.NoError(t, os.Unsetenv("LEDTOMATO_NETWORK_DEFAULT_DEVICE"))

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
