package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestErrorfAddsErrorField(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewFromCore(core)

	log.Errorf(errors.New("boom"), "failed to save %s", "customer")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "failed to save customer", entries[0].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "boom", entries[0].ContextMap()["error"])
}

func TestErrorfWithoutError(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	NewFromCore(core).Errorf(nil, "plain %d", 1)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "plain 1", entries[0].Message)
	assert.NotContains(t, entries[0].ContextMap(), "error")
}

func TestLevelFiltering(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	log := NewFromCore(core)

	log.Debugf("hidden")
	log.Infof("hidden")
	assert.Zero(t, logs.Len())

	log.Warnf("shown %d", 1)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "shown 1", logs.All()[0].Message)
}

func TestWithKeepsFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := NewFromCore(core).With("vendor_id", "v-1")

	log.Infof("hello")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "v-1", entries[0].ContextMap()["vendor_id"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warning"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel(""))
}

func TestNopDiscards(t *testing.T) {
	log := Nop()
	log.Errorf(errors.New("boom"), "ignored")
	log.With("k", "v").Infof("ignored")
}
