package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/B-1P/ledtomato/internal/domain"
	"github.com/B-1P/ledtomato/internal/ports"
)

// cancelOnStart cancels as soon as the device has seen n starts.
func cancelOnStart(device *fakeDevice, n int) ports.CancelSource {
	return cancelFunc(func() (string, bool) {
		device.mu.Lock()
		defer device.mu.Unlock()
		if len(device.starts) >= n {
			return "q", true
		}
		return "", false
	})
}

func newTestCycle(device *fakeDevice, cancel ports.CancelSource) *CycleRunner {
	monitor := newTestMonitor(device, nil, nil, nil, cancel)
	return NewCycleRunner(monitor, NewConfigService(device), testVisuals, nil)
}

func TestCycleRunnerLongBreakAfterEveryThirdWorkSession(t *testing.T) {
	device := newFakeDevice()
	device.runningPolls = 1

	result, err := newTestCycle(device, cancelOnStart(device, 7)).Run(context.Background(), domain.NewCycleState(3, nil))

	require.NoError(t, err)
	assert.Equal(t, []domain.SessionKind{
		domain.SessionWork, domain.SessionShortBreak,
		domain.SessionWork, domain.SessionShortBreak,
		domain.SessionWork, domain.SessionLongBreak,
		domain.SessionWork,
	}, device.starts)
	assert.Equal(t, 3, result.WorkSessions)

	last, ok := result.Last()
	require.True(t, ok)
	assert.Equal(t, StateInterrupted, last.State)
	assert.Equal(t, 1, device.stops)
}

func TestCycleRunnerAppliesSessionVisualsBeforeEachSession(t *testing.T) {
	device := newFakeDevice()
	device.runningPolls = 1
	device.config.WorkColor = domain.MustParseColor("0000FF")
	device.config.BreakColor = domain.MustParseColor("0000FF")

	_, err := newTestCycle(device, cancelOnStart(device, 2)).Run(context.Background(), domain.NewCycleState(3, nil))

	require.NoError(t, err)
	require.Len(t, device.updates, 3, "one update per session plus the stopped state")

	beforeWork := device.updates[0]
	assert.Equal(t, "FF0000", beforeWork.WorkColor.Hex())
	assert.Equal(t, "0000FF", beforeWork.BreakColor.Hex())

	beforeBreak := device.updates[1]
	assert.Equal(t, "00FF00", beforeBreak.BreakColor.Hex())
	assert.True(t, beforeBreak.BreakAnimation)

	assert.Equal(t, "FFA500", device.updates[2].WorkColor.Hex())
}

func TestCycleRunnerMergesDurationOverrides(t *testing.T) {
	device := newFakeDevice()
	device.runningPolls = 1

	state := domain.NewCycleState(3, map[domain.SessionKind]int{domain.SessionWork: 50 * 60})
	_, err := newTestCycle(device, cancelOnStart(device, 1)).Run(context.Background(), state)

	require.NoError(t, err)
	require.NotEmpty(t, device.updates)
	assert.Equal(t, 3000, device.updates[0].WorkTime)
	assert.Equal(t, domain.DefaultShortBreakSeconds, device.updates[0].ShortBreakTime)
}

func TestCycleRunnerStopsOnLostConnection(t *testing.T) {
	device := newFakeDevice(
		running(domain.TagWorking, 1, 1500),
		scriptStep{err: errUnreachable},
	)

	result, err := newTestCycle(device, nil).Run(context.Background(), nil)

	require.NoError(t, err)
	require.Len(t, result.Sessions, 1)
	assert.Equal(t, StateFailed, result.Sessions[0].State)
	assert.Equal(t, []domain.SessionKind{domain.SessionWork}, device.starts)
}

func TestCycleRunnerReturnsStartError(t *testing.T) {
	device := newFakeDevice()
	device.startErr = errUnreachable

	_, err := newTestCycle(device, nil).Run(context.Background(), nil)

	require.ErrorIs(t, err, domain.ErrDeviceUnavailable)
}
