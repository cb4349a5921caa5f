package log

import (
	"context"
	"io"

	"github.com/rs/zerolog"
)

type loggerKey struct{}

// New creates the logger of the command line tools: warnings and errors only
// unless verbose is set.
func New(w io.Writer, verbose bool) *zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	lg := zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(level).
		With().
		Timestamp().
		Logger()
	return &lg
}

func Set(ctx context.Context, lg *zerolog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, lg)
}

// Get returns the logger stored in ctx or a disabled one.
func Get(ctx context.Context) *zerolog.Logger {
	if lg, ok := ctx.Value(loggerKey{}).(*zerolog.Logger); ok && lg != nil {
		return lg
	}
	nop := zerolog.Nop()
	return &nop
}
