package buildpipeline

import (
	"log/slog"
	"sync"
)

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

// LogSink writes every event as a debug record.
type LogSink struct {
	Logger *slog.Logger
}

func (s LogSink) OnEvent(evt Event) {
	if s.Logger == nil {
		return
	}
	attrs := []any{"file", evt.File, "stage", string(evt.Stage), "status", string(evt.Status)}
	if evt.Elapsed > 0 {
		attrs = append(attrs, "elapsed", evt.Elapsed)
	}
	if evt.Err != nil {
		attrs = append(attrs, "error", evt.Err)
	}
	s.Logger.Debug("pipeline", attrs...)
}

// Recorder keeps every event; tests use it.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) OnEvent(evt Event) {
	r.mu.Lock()
	r.events = append(r.events, evt)
	r.mu.Unlock()
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Multi fans events out to several sinks; nil sinks are skipped.
func Multi(sinks ...ProgressSink) ProgressSink {
	out := make(multiSink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

type multiSink []ProgressSink

func (m multiSink) OnEvent(evt Event) {
	for _, s := range m {
		s.OnEvent(evt)
	}
}

// Emit sends evt to sink when it is not nil.
func Emit(sink ProgressSink, evt Event) {
	if sink != nil {
		sink.OnEvent(evt)
	}
}
