package logger

import (
	"log/slog"
	"strings"
)

// Field records a validated field name under "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Rule records a rule name under "rule".
func Rule(name string) slog.Attr {
	return slog.String("rule", name)
}

// Path records a file path under "path".
func Path(p string) slog.Attr {
	return slog.String("path", p)
}

// Component records the component name under "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Error records err under "error". A nil err gives an empty Attr, which slog
// drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Messages records validation messages joined with "; " under "messages",
// or an empty Attr when there are none.
func Messages(msgs []string) slog.Attr {
	if len(msgs) == 0 {
		return slog.Attr{}
	}
	return slog.String("messages", strings.Join(msgs, "; "))
}
