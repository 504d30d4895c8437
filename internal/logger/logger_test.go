package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestToZapLevel(t *testing.T) {
	testCases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"INFO":    zapcore.InfoLevel,
		" warn ":  zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"verbose": zapcore.WarnLevel,
		"":        zapcore.WarnLevel,
	}

	for input, want := range testCases {
		assert.Equal(t, want, toZapLevel(input), input)
	}
}

func TestValidLevel(t *testing.T) {
	assert.True(t, ValidLevel("Debug"))
	assert.False(t, ValidLevel("trace"))
}

func TestNewFiltersBelowLevel(t *testing.T) {
	var out bytes.Buffer
	log := New(WarnLevel, &out)

	log.Debug("probing subnet")
	log.Warn("device cache unreadable")
	_ = log.Sync()

	assert.NotContains(t, out.String(), "probing subnet")
	assert.Contains(t, out.String(), "WARN")
	assert.Contains(t, out.String(), "device cache unreadable")
}
