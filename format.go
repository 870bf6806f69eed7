package logger

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles
var (
	infoStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	warnStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	timestampStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	sourceStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// decorate wraps a string for terminal display.
type decorate func(string) string

func plain(s string) string { return s }

func styled(style lipgloss.Style) decorate {
	return func(s string) string { return style.Render(s) }
}

// formatter renders records into display lines. The decoration function for
// each slot is resolved once at construction, so rendering never consults the
// colored flag again.
type formatter struct {
	severity  map[Severity]decorate
	timestamp decorate
	source    decorate
}

func newFormatter(colored bool) *formatter {
	if !colored {
		return &formatter{
			severity: map[Severity]decorate{
				SeverityDefault: plain,
				SeverityInfo:    plain,
				SeverityWarn:    plain,
				SeverityError:   plain,
			},
			timestamp: plain,
			source:    plain,
		}
	}
	return &formatter{
		severity: map[Severity]decorate{
			SeverityDefault: plain,
			SeverityInfo:    styled(infoStyle),
			SeverityWarn:    styled(warnStyle),
			SeverityError:   styled(errorStyle),
		},
		timestamp: styled(timestampStyle),
		source:    styled(sourceStyle),
	}
}

// render builds the display line. Field order is fixed: severity prefix,
// bracketed timestamp, optional source tag, then the raw message. The message
// is never truncated, escaped or wrapped.
func (f *formatter) render(sev Severity, timestamp, message, source string, hasSource bool) string {
	var b strings.Builder
	if sev != SeverityDefault {
		b.WriteString(f.severity[sev](sev.String()))
		b.WriteString(": ")
	}
	b.WriteString("[")
	b.WriteString(f.timestamp(timestamp))
	b.WriteString("]")
	if hasSource {
		b.WriteString(" (")
		b.WriteString(f.source(source))
		b.WriteString("): ")
	} else {
		b.WriteString(": ")
	}
	b.WriteString(message)
	return b.String()
}
