package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger builds the diagnostics logger for hwgraph commands. Output goes
// to w (stderr by default) so that graph data written to stdout stays clean
// for piping into dot or jq. Timestamps carry hundredths of a second.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// stage times one step of a command, such as loading a graph document or
// encoding a component for export. Its key/value pairs are logged with
// every completion.
type stage struct {
	logger *log.Logger
	fields []any
	start  time.Time
}

func newStage(l *log.Logger, keyvals ...any) *stage {
	return &stage{logger: l, fields: keyvals, start: time.Now()}
}

// done logs msg at info level followed by the stage fields, keyvals and the
// elapsed time:
//
//	14:32:01.45 INFO loaded input=top.json name=top nodes=12 edges=9 elapsed=3ms
func (s *stage) done(msg string, keyvals ...any) {
	kv := make([]any, 0, len(s.fields)+len(keyvals)+2)
	kv = append(kv, s.fields...)
	kv = append(kv, keyvals...)
	kv = append(kv, "elapsed", time.Since(s.start).Round(time.Millisecond))
	s.logger.Info(msg, kv...)
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger attaches the command logger to ctx. The root command stores it
// on the cobra context in PersistentPreRunE so every subcommand shares one
// level and writer.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached by withLogger, or
// log.Default when a subcommand runs without the root (as in tests).
func loggerFromContext(ctx context.Context) *log.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
			return l
		}
	}
	return log.Default()
}
