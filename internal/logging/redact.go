package logging

import (
	"log/slog"

	"github.com/m-mizutani/masq"
)

// redactOptions lists the fields that must never appear in log output.
// The database password is the main secret this service handles.
func redactOptions() []masq.Option {
	return []masq.Option{
		masq.WithFieldName("Password"),
		masq.WithFieldName("password"),
		masq.WithFieldName("secret"),
		masq.WithFieldName("token"),
		masq.WithFieldPrefix("secret"),
	}
}

// NewReplaceAttr creates a ReplaceAttr function for slog.HandlerOptions that
// redacts sensitive values.
func NewReplaceAttr(opts ...masq.Option) func(groups []string, a slog.Attr) slog.Attr {
	allOpts := append(redactOptions(), opts...)
	return masq.New(allOpts...)
}
