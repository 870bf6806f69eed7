// Package logger accumulates log records in memory. Every record is
// timestamped, rendered into a display line, mirrored to a console-like sink
// and delivered to subscribers, while a bounded history keeps the most recent
// records available for snapshot and export.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"
)

// DefaultMaxStackSize is the record capacity used when the configuration
// leaves MaxStackSize unset or non-positive.
const DefaultMaxStackSize = 500

const timestampLayout = "1/2/2006, 3:04:05 PM"

// Logger is the record-creation facade. It composes the clock, formatter,
// bounded buffer and subscriber registry behind the level methods.
//
// Creation methods are safe for concurrent use; the buffer holds its own lock
// for append, eviction and snapshot. Subscriber delivery happens on the
// calling goroutine after the buffer lock is released, so a slow subscriber
// blocks the logging call but never the buffer.
type Logger struct {
	format *formatter
	buffer *recordBuffer
	events *emitter
	sink   io.Writer
	now    func() time.Time
	stamp  func(time.Time) string
}

// New creates a logger. Calling it without arguments yields the defaults:
// capacity 500, no colors, stdout sink, wall-clock timestamps.
func New(cfg ...Config) *Logger {
	var c Config
	if len(cfg) > 0 {
		c = cfg[0]
	}

	l := &Logger{
		format: newFormatter(c.Colored),
		buffer: newRecordBuffer(c.MaxStackSize),
		events: newEmitter(),
		sink:   c.Sink,
		now:    c.Now,
		stamp:  c.Timestamp,
	}
	if l.sink == nil {
		l.sink = os.Stdout
	}
	if l.now == nil {
		l.now = time.Now
	}
	if l.stamp == nil {
		l.stamp = renderTimestamp
	}
	return l
}

// renderTimestamp renders t as a date-time string with a zero-padded
// millisecond suffix. Padding keeps the format stable across calls.
func renderTimestamp(t time.Time) string {
	return fmt.Sprintf("%s.%03d", t.Format(timestampLayout), t.Nanosecond()/int(time.Millisecond))
}

// write is the record-creation path shared by every level method: clock read,
// line render, buffer append with eviction, sink mirror, subscriber emit.
func (l *Logger) write(sev Severity, message, source string, hasSource bool) {
	ts := l.stamp(l.now())
	r := Record{
		Timestamp: ts,
		Message:   message,
		Source:    source,
		HasSource: hasSource,
		Severity:  sev,
		Line:      l.format.render(sev, ts, message, source, hasSource),
	}

	l.buffer.append(r)
	fmt.Fprintln(l.sink, r.Line)
	l.events.emit(EventRecord, r)
}

func optional(source []string) (string, bool) {
	if len(source) == 0 {
		return "", false
	}
	return source[0], true
}

// Log records a message with no severity prefix.
func (l *Logger) Log(message string, source ...string) {
	src, ok := optional(source)
	l.write(SeverityDefault, message, src, ok)
}

// Info records an informational message.
func (l *Logger) Info(message string, source ...string) {
	src, ok := optional(source)
	l.write(SeverityInfo, message, src, ok)
}

// Warn records a warning message.
func (l *Logger) Warn(message string, source ...string) {
	src, ok := optional(source)
	l.write(SeverityWarn, message, src, ok)
}

// Error records an error message.
func (l *Logger) Error(message string, source ...string) {
	src, ok := optional(source)
	l.write(SeverityError, message, src, ok)
}

// Logf records a formatted message with no severity prefix.
func (l *Logger) Logf(format string, args ...interface{}) {
	l.write(SeverityDefault, fmt.Sprintf(format, args...), "", false)
}

// Infof records a formatted informational message.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.write(SeverityInfo, fmt.Sprintf(format, args...), "", false)
}

// Warnf records a formatted warning message.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.write(SeverityWarn, fmt.Sprintf(format, args...), "", false)
}

// Errorf records a formatted error message.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.write(SeverityError, fmt.Sprintf(format, args...), "", false)
}

// Snapshot returns a copy of the retained records, oldest first. Mutating the
// returned slice does not affect the logger.
func (l *Logger) Snapshot() []Record {
	return l.buffer.snapshot()
}

// Export returns every retained line joined by newlines, oldest first.
func (l *Logger) Export() string {
	return l.buffer.export()
}

// Count returns the number of retained records.
func (l *Logger) Count() int {
	return l.buffer.count()
}

// Generate returns the joined export string.
//
// Deprecated: Use Export.
func (l *Logger) Generate() string {
	return l.Export()
}

// GenerateArray returns a copy of the retained records.
//
// Deprecated: Use Snapshot.
func (l *Logger) GenerateArray() []Record {
	return l.Snapshot()
}

// Subscribe registers a handler for every future record and returns an id for
// Unsubscribe. Handlers run synchronously in subscription order; a panicking
// handler is recovered and the remaining handlers still run.
func (l *Logger) Subscribe(h Handler) int {
	return l.events.subscribe(EventRecord, h)
}

// SubscribeEvent registers a handler for a named event.
func (l *Logger) SubscribeEvent(event string, h Handler) int {
	return l.events.subscribe(event, h)
}

// Unsubscribe removes a previously registered handler. Unknown ids are
// ignored.
func (l *Logger) Unsubscribe(id int) {
	l.events.unsubscribe(id)
}
