// Package sl contains small helpers for building slog attributes.
package sl

import "log/slog"

// Err wraps an error into an "error" attribute. A nil error yields an empty value.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{Key: "error", Value: slog.StringValue("")}
	}

	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}
