package logging

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, GetLevel("debug"))
	assert.Equal(t, logrus.WarnLevel, GetLevel("WARN"))
	assert.Equal(t, logrus.InfoLevel, GetLevel("info"))
	assert.Equal(t, logrus.TraceLevel, GetLevel("whatever"))
	assert.Equal(t, logrus.TraceLevel, GetLevel(""))
}

func TestSetup_LogFile(t *testing.T) {
	defer logrus.SetOutput(os.Stderr)

	logFile := filepath.Join(t.TempDir(), "fitcal")
	closer := Setup(LoggerSetupParams{
		LogFileName: logFile,
		LogLevel:    "info",
	})
	defer func() { assert.NoError(t, closer.Close()) }()

	logrus.Info("saved a log")
	logrus.Debug("below level")

	content, err := os.ReadFile(logFile + ".log")
	require.NoError(t, err)
	assert.Contains(t, string(content), "saved a log")
	assert.NotContains(t, string(content), "below level")
}

func TestSetup_StdoutOnly(t *testing.T) {
	defer logrus.SetOutput(os.Stderr)

	closer := Setup(LoggerSetupParams{LogLevel: "debug"})
	assert.NoError(t, closer.Close())
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
}

type recordingTransport struct {
	events []*sentry.Event
}

func (r *recordingTransport) Configure(sentry.ClientOptions) {}

func (r *recordingTransport) SendEvent(event *sentry.Event) {
	r.events = append(r.events, event)
}

func (r *recordingTransport) Flush(time.Duration) bool { return true }

func (r *recordingTransport) FlushWithContext(context.Context) bool { return true }

func (r *recordingTransport) Close() {}

func TestSentryHook_Fire(t *testing.T) {
	transport := &recordingTransport{}
	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:       "https://public@sentry.example.com/1",
		Transport: transport,
	})
	require.NoError(t, err)

	hook := &SentryHook{
		levels: []logrus.Level{logrus.ErrorLevel},
		hub:    sentry.NewHub(client, sentry.NewScope()),
	}
	assert.Equal(t, []logrus.Level{logrus.ErrorLevel}, hook.Levels())

	entry := logrus.NewEntry(logrus.StandardLogger()).
		WithError(errors.New("slot unavailable")).
		WithField("date", "2024-01-02")
	entry.Level = logrus.ErrorLevel
	entry.Message = "save log failed"

	require.NoError(t, hook.Fire(entry))
	require.Len(t, transport.events, 1)

	event := transport.events[0]
	assert.Equal(t, sentry.LevelError, event.Level)
	assert.Equal(t, "save log failed", event.Message)
	assert.Equal(t, "2024-01-02", event.Extra["date"])
	require.Len(t, event.Exception, 1)
	assert.Equal(t, "slot unavailable", event.Exception[0].Value)
}
