package logger

import (
	"io"
	"time"
)

//
// LOGGER
//

// Severity classifies a log record. The set is closed: formatting and
// colorization both switch exhaustively over these four values.
type Severity int

const (
	SeverityDefault Severity = iota
	SeverityInfo
	SeverityWarn
	SeverityError
)

// String returns the uppercase severity name. Default returns the empty
// string because it carries no prefix in output.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityWarn:
		return "WARN"
	case SeverityError:
		return "ERROR"
	default:
		return ""
	}
}

// Record represents a single log entry. Records are immutable once created;
// Line is rendered at creation time and never recomputed.
type Record struct {
	Timestamp string
	Message   string
	Source    string
	HasSource bool
	Severity  Severity
	Line      string
}

// Config holds all logger settings. It is read once by New; changing a Config
// after construction has no effect on the logger built from it.
type Config struct {
	// MaxStackSize is the number of records retained before the oldest is
	// evicted. Zero or negative values fall back to DefaultMaxStackSize.
	MaxStackSize int

	// Colored enables ANSI color decoration of rendered lines.
	Colored bool

	// Sink receives every rendered line followed by a newline.
	// Defaults to os.Stdout.
	Sink io.Writer

	// Now supplies the wall-clock time for new records. Defaults to time.Now.
	Now func() time.Time

	// Timestamp renders a time into the string stored on each record.
	// Defaults to a locale-style date-time with a millisecond suffix.
	Timestamp func(time.Time) string
}
