package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesStructuredLine(t *testing.T) {
	var buf bytes.Buffer
	l := New(&Options{Level: slog.LevelDebug, Writer: &buf, NoColor: true})

	l.Debug("solver finished", "bets", 14, "method", "greedy")

	out := buf.String()
	assert.Contains(t, out, "DBG")
	assert.Contains(t, out, "solver finished")
	assert.Contains(t, out, "bets=14")
	assert.Contains(t, out, "method=greedy")
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&Options{Level: slog.LevelWarn, Writer: &buf, NoColor: true})

	l.Info("hidden")
	l.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		" warn": slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	require.Error(t, err)
}

func TestL_FallsBackToDefault(t *testing.T) {
	require.NotNil(t, L())
	require.NotNil(t, With("k", "v"))
}

func TestNew_NoColorForNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	New(&Options{Writer: &buf}).Info("plain", "k", "v")

	assert.NotContains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "k=v")
}

func TestInit_InstallsGlobal(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() {
		current.Store(nil)
		slog.SetDefault(prev)
	})

	var first, second bytes.Buffer
	l := Init(&Options{Level: slog.LevelDebug, Writer: &first})
	require.Same(t, l, L())

	Debug("dbg line", "n", 1)
	Info("info line")
	Warn("warn line")
	Error("error line", "err", "boom")
	With("component", "store").Info("scoped")
	slog.Info("through slog default")

	out := first.String()
	for _, want := range []string{"dbg line", "n=1", "info line", "warn line", "error line", "err=boom", "component=store", "through slog default"} {
		assert.Contains(t, out, want)
	}

	Init(&Options{Level: slog.LevelWarn, Writer: &second})
	Info("dropped")
	Error("replaced")
	assert.NotContains(t, first.String(), "replaced")
	assert.NotContains(t, second.String(), "dropped")
	assert.Contains(t, second.String(), "replaced")
}
