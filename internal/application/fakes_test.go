package application

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/B-1P/ledtomato/internal/domain"
	"github.com/B-1P/ledtomato/internal/ports"
)

var errUnreachable = fmt.Errorf("%w: connection refused", domain.ErrDeviceUnavailable)

func mockAnyContext() interface{} {
	return mock.Anything
}

func noSleep(context.Context, time.Duration) error { return nil }

type scriptStep struct {
	status domain.DeviceStatus
	err    error
}

func running(tag domain.TimerTag, elapsed, duration int) scriptStep {
	return scriptStep{status: domain.DeviceStatus{
		Hostname: "ledtomato",
		Timer: domain.TimerState{
			Tag:       tag,
			Running:   true,
			Elapsed:   elapsed,
			Remaining: duration - elapsed,
			Duration:  duration,
		},
	}}
}

func stopped() scriptStep {
	return scriptStep{status: domain.DeviceStatus{Hostname: "ledtomato", Timer: domain.TimerState{Tag: domain.TagIdle}}}
}

// fakeDevice is an in-memory device. With a script it replays status steps in
// order; without one every started session stays running for runningPolls
// polls and then reports idle.
type fakeDevice struct {
	mu sync.Mutex

	script       []scriptStep
	runningPolls int
	remaining    int
	current      domain.SessionKind

	config   domain.DeviceConfig
	startErr error

	starts      []domain.SessionKind
	stops       int
	updates     []domain.DeviceConfig
	statusCalls int
}

func newFakeDevice(steps ...scriptStep) *fakeDevice {
	return &fakeDevice{script: steps, config: domain.DefaultDeviceConfig()}
}

func (d *fakeDevice) Address() domain.DeviceAddress {
	return domain.DeviceAddress{Host: "10.0.0.7", Port: 80}
}

func (d *fakeDevice) Ping(context.Context) error { return nil }

func (d *fakeDevice) GetStatus(context.Context) (domain.DeviceStatus, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	call := d.statusCalls
	d.statusCalls++

	if d.script != nil {
		if call >= len(d.script) {
			return domain.DeviceStatus{}, errors.New("status script exhausted")
		}
		step := d.script[call]
		return step.status, step.err
	}

	if d.remaining > 0 {
		d.remaining--
		return running(d.current.Tag(), 60, d.config.DurationFor(d.current)).status, nil
	}
	return stopped().status, nil
}

func (d *fakeDevice) GetConfig(context.Context) (domain.DeviceConfig, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.config, nil
}

func (d *fakeDevice) UpdateConfig(_ context.Context, cfg domain.DeviceConfig) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.config = cfg
	d.updates = append(d.updates, cfg)
	return nil
}

func (d *fakeDevice) StartTimer(_ context.Context, kind domain.SessionKind) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.startErr != nil {
		return d.startErr
	}
	d.starts = append(d.starts, kind)
	d.current = kind
	d.remaining = d.runningPolls
	return nil
}

func (d *fakeDevice) StopTimer(context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stops++
	d.remaining = 0
	return nil
}

var _ ports.DeviceClient = (*fakeDevice)(nil)

type cancelFunc func() (string, bool)

func (f cancelFunc) Pending() (string, bool) { return f() }

// cancelAfter reports key on the n-th call and every call after it.
func cancelAfter(n int, key string) ports.CancelSource {
	calls := 0
	return cancelFunc(func() (string, bool) {
		calls++
		if calls >= n {
			return key, true
		}
		return "", false
	})
}

type transition struct {
	From, To domain.TimerTag
}

type recordingObserver struct {
	started     []domain.SessionKind
	progress    []domain.TimerState
	transitions []transition
	completed   []domain.SessionKind
	stoppedKeys []string
	lost        []error
}

func (o *recordingObserver) SessionStarted(kind domain.SessionKind) {
	o.started = append(o.started, kind)
}

func (o *recordingObserver) Progress(timer domain.TimerState) {
	o.progress = append(o.progress, timer)
}

func (o *recordingObserver) Transition(from, to domain.TimerTag) {
	o.transitions = append(o.transitions, transition{From: from, To: to})
}

func (o *recordingObserver) SessionCompleted(kind domain.SessionKind, _ int) {
	o.completed = append(o.completed, kind)
}

func (o *recordingObserver) SessionStopped(key string) {
	o.stoppedKeys = append(o.stoppedKeys, key)
}

func (o *recordingObserver) ConnectionLost(err error) {
	o.lost = append(o.lost, err)
}

type memorySessionLog struct {
	records []domain.SessionRecord
	err     error
}

func (l *memorySessionLog) Append(_ context.Context, record domain.SessionRecord) error {
	l.records = append(l.records, record)
	return nil
}

func (l *memorySessionLog) List(context.Context) ([]domain.SessionRecord, error) {
	return l.records, l.err
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type fakeBrowser struct {
	entries []ports.ServiceEntry
	err     error
	calls   int
	window  time.Duration
}

func (b *fakeBrowser) Browse(_ context.Context, service string, window time.Duration) ([]ports.ServiceEntry, error) {
	b.calls++
	b.window = window
	return b.entries, b.err
}

// fakeProber answers for the hosts in its table and refuses everything else.
type fakeProber struct {
	mu     sync.Mutex
	hosts  map[string]domain.DeviceStatus
	probed map[string]bool
}

func newFakeProber(hosts map[string]domain.DeviceStatus) *fakeProber {
	return &fakeProber{hosts: hosts, probed: map[string]bool{}}
}

func (p *fakeProber) Probe(_ context.Context, addr domain.DeviceAddress) (domain.DeviceStatus, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.probed[addr.Host] = true
	status, ok := p.hosts[addr.Host]
	if !ok {
		return domain.DeviceStatus{}, errUnreachable
	}
	return status, nil
}

type fakeNetwork struct {
	ip  net.IP
	err error
}

func (n fakeNetwork) LocalIPv4() (net.IP, error) { return n.ip, n.err }

type memoryCache struct {
	devices []domain.Device
	saved   []domain.Device
}

func (c *memoryCache) List(context.Context) ([]domain.Device, error) {
	return append([]domain.Device(nil), c.devices...), nil
}

func (c *memoryCache) Save(_ context.Context, devices ...domain.Device) error {
	c.saved = append(c.saved, devices...)
	return nil
}
