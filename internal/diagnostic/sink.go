package diagnostic

import "github.com/rs/zerolog"

// Sink receives warning diagnostics. Implementations must not block the
// caller for long; emission is fire-and-forget.
type Sink interface {
	Warn(d Diagnostic)
}

// NopSink discards every diagnostic.
type NopSink struct{}

// Warn implements Sink.
func (NopSink) Warn(Diagnostic) {}

// MultiSink forwards each diagnostic to every sink in order.
type MultiSink []Sink

// Warn implements Sink.
func (m MultiSink) Warn(d Diagnostic) {
	for _, s := range m {
		if s != nil {
			s.Warn(d)
		}
	}
}

// LogSink writes warnings to a zerolog logger.
type LogSink struct {
	Logger zerolog.Logger
}

// NewLogSink creates a LogSink bound to logger.
func NewLogSink(logger zerolog.Logger) *LogSink {
	return &LogSink{Logger: logger}
}

// Warn implements Sink.
func (s *LogSink) Warn(d Diagnostic) {
	ev := s.Logger.Warn().Str("code", d.Code)
	if d.Entity != "" {
		ev = ev.Str("entity", d.Entity)
	}
	if d.Name != "" {
		ev = ev.Str("param", d.Name)
	}
	if len(d.Suggestions) > 0 {
		ev = ev.Strs("suggestions", d.Suggestions)
	}

	ev.Str("file", d.Location.File).
		Int("line", d.Location.Line).
		Msg(d.Message)
}
