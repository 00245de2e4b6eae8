package observe

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var lines []map[string]any
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if raw == "" {
			continue
		}
		var line map[string]any
		require.NoError(t, json.Unmarshal([]byte(raw), &line))
		lines = append(lines, line)
	}
	return lines
}

func TestLogger_InfoWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(Options{AppName: "test-app", AppEnv: "test", Writers: []io.Writer{&buf}})

	l.Info("fetched forecast", map[string]any{"query": "London", "days": 7})

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "info", lines[0]["level"])
	assert.Equal(t, "fetched forecast", lines[0]["msg"])
	assert.Equal(t, "test-app", lines[0]["app_name"])
	assert.Equal(t, "test", lines[0]["app_env"])
	assert.Equal(t, "London", lines[0]["query"])
	assert.EqualValues(t, 7, lines[0]["days"])
	assert.Contains(t, lines[0]["caller_func"], "TestLogger_InfoWritesJSON")
	assert.NotEmpty(t, lines[0]["timestamp"])
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(Options{AppName: "test-app", Level: "warn", Writers: []io.Writer{&buf}})

	l.Debug("hidden")
	l.Info("hidden")
	l.Warning("shown")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "warn", lines[0]["level"])
	assert.Equal(t, "shown", lines[0]["msg"])
}

func TestLogger_ErrorCarriesErrorAndStack(t *testing.T) {
	var buf bytes.Buffer
	l := NewZapLogger("test-app", &buf)

	l.Error(errors.New("provider unavailable"), map[string]any{"query": "Paris"})

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "error", lines[0]["level"])
	assert.Equal(t, "provider unavailable", lines[0]["error"])
	assert.Equal(t, "Paris", lines[0]["query"])
	assert.NotEmpty(t, lines[0]["stack"])
	assert.Contains(t, lines[0]["caller_func"], "TestLogger_ErrorCarriesErrorAndStack")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "debug", parseLevel("").String())
	assert.Equal(t, "error", parseLevel("error").String())
	assert.Equal(t, "info", parseLevel("nonsense").String())
}

func TestNopLogger(t *testing.T) {
	l := NewNopLogger()
	assert.NotPanics(t, func() {
		l.Info("nothing")
		l.Error(errors.New("nothing"))
	})
}

func TestSentryHook_ForwardsOnlyErrors(t *testing.T) {
	var captured []*sentry.Event
	hook := &SentryHook{
		appEnv:  "production",
		appName: "test-app",
		capture: func(e *sentry.Event) { captured = append(captured, e) },
	}

	l := NewLogger(Options{AppName: "test-app", AppEnv: "production", Writers: []io.Writer{hook}})

	l.Info("routine")
	l.Warning("suspicious")
	l.Error(errors.New("decode failed"), map[string]any{"query": "Lon"})

	require.Len(t, captured, 1)
	event := captured[0]
	assert.Equal(t, "decode failed", event.Message)
	assert.Equal(t, sentry.LevelError, event.Level)
	assert.Equal(t, "production", event.Environment)
	assert.Equal(t, "decode failed", event.Extra["Error"])
	assert.Equal(t, "test-app", event.Extra["AppName"])
	require.Len(t, event.Exception, 1)
	assert.Equal(t, "decode failed", event.Exception[0].Value)
	assert.False(t, event.Timestamp.IsZero())
}

func TestSentryHook_ConsoleFormatStillForwardsErrors(t *testing.T) {
	var captured []*sentry.Event
	hook := &SentryHook{
		appEnv:  "production",
		appName: "test-app",
		capture: func(e *sentry.Event) { captured = append(captured, e) },
	}

	var buf bytes.Buffer
	l := NewLogger(Options{
		AppName: "test-app",
		AppEnv:  "production",
		Format:  "console",
		Writers: []io.Writer{&buf, hook},
	})

	l.Warning("suspicious")
	l.Error(errors.New("decode failed"))

	require.Len(t, captured, 1)
	assert.Equal(t, "decode failed", captured[0].Message)
	assert.Equal(t, sentry.LevelError, captured[0].Level)

	out := buf.String()
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "decode failed")
	assert.False(t, strings.HasPrefix(strings.TrimSpace(out), "{"))
}

func TestNewLogger_HookOnlyWriters(t *testing.T) {
	var captured int
	hook := &SentryHook{capture: func(*sentry.Event) { captured++ }}

	l := NewLogger(Options{Format: "console", Writers: []io.Writer{hook}})
	l.Info("routine")
	l.Error(errors.New("boom"))

	assert.Equal(t, 1, captured)
}

func TestSentryHook_MalformedLine(t *testing.T) {
	hook := &SentryHook{capture: func(*sentry.Event) { t.Fatal("unexpected capture") }}

	n, err := hook.Write([]byte("not json"))
	assert.NoError(t, err)
	assert.Equal(t, len("not json"), n)

	_, err = hook.eventFromLine([]byte(`{"level":"loud","msg":"x"}`))
	assert.Error(t, err)
}

func TestNewSentryHook_RequiresDSN(t *testing.T) {
	_, err := NewSentryHook("test", "test-app", false, "")
	assert.Error(t, err)
}
