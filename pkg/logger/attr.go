package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Field records the validated field name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Rule records a rule descriptor as written, e.g. "range:1:3".
func Rule(descriptor string) slog.Attr {
	return slog.String("rule", descriptor)
}

// RuleKey records a registry key, e.g. "range:$1:$2".
func RuleKey(key string) slog.Attr {
	return slog.String("rule_key", key)
}

func Count(n int) slog.Attr {
	return slog.Int("count", n)
}
