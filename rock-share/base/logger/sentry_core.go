package logger

import (
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/zap/zapcore"
)

func sentryLevel(lvl zapcore.Level) sentry.Level {
	switch lvl {
	case zapcore.DebugLevel:
		return sentry.LevelDebug
	case zapcore.InfoLevel:
		return sentry.LevelInfo
	case zapcore.WarnLevel:
		return sentry.LevelWarning
	case zapcore.ErrorLevel:
		return sentry.LevelError
	default:
		return sentry.LevelFatal
	}
}

// sentryCore 只上报error以上的日志，fields作为Extra
type sentryCore struct {
	zapcore.LevelEnabler
	client       *sentry.Client
	flushTimeout time.Duration
	fields       map[string]interface{}
}

func newSentryCore(client *sentry.Client) zapcore.Core {
	return &sentryCore{
		LevelEnabler: zapcore.ErrorLevel,
		client:       client,
		flushTimeout: 3 * time.Second,
		fields:       make(map[string]interface{}),
	}
}

func (c *sentryCore) with(fs []zapcore.Field) *sentryCore {
	enc := zapcore.NewMapObjectEncoder()
	for k, v := range c.fields {
		enc.Fields[k] = v
	}
	for _, f := range fs {
		f.AddTo(enc)
	}
	return &sentryCore{
		LevelEnabler: c.LevelEnabler,
		client:       c.client,
		flushTimeout: c.flushTimeout,
		fields:       enc.Fields,
	}
}

func (c *sentryCore) With(fs []zapcore.Field) zapcore.Core {
	return c.with(fs)
}

func (c *sentryCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *sentryCore) Write(ent zapcore.Entry, fs []zapcore.Field) error {
	event := sentry.NewEvent()
	event.Message = ent.Message
	event.Timestamp = ent.Time
	event.Level = sentryLevel(ent.Level)
	event.Extra = c.with(fs).fields
	event.Tags = map[string]string{"project": projectName}
	if trace := sentry.NewStacktrace(); trace != nil {
		event.Exception = []sentry.Exception{{
			Type:       ent.Message,
			Value:      ent.Caller.TrimmedPath(),
			Stacktrace: trace,
		}}
	}
	_ = c.client.CaptureEvent(event, nil, sentry.CurrentHub().Scope())
	if ent.Level > zapcore.ErrorLevel {
		c.client.Flush(c.flushTimeout)
	}
	return nil
}

func (c *sentryCore) Sync() error {
	c.client.Flush(c.flushTimeout)
	return nil
}
