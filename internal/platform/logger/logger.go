package logger

import (
	"log/slog"
	"os"
)

// New returns a JSON slog logger; services receive it through options.
func New() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}
