package pg

import (
	"context"
	"fmt"
	"strings"

	"gridiron/internal/platform/logger"

	"github.com/rs/zerolog"
)

// maxArgLen bounds how much of a text or byte argument reaches the log
// play documents are bound as jsonb and run to hundreds of kilobytes
const maxArgLen = 128

// QueryEvent is one executed statement as seen by the adapter
type QueryEvent struct {
	SQL       string
	Args      []any
	ElapsedUS int64
	Err       error
	Slow      bool
}

// QueryTracer receives every statement the adapter runs
type QueryTracer interface {
	OnQuery(ctx context.Context, ev QueryEvent)
}

// Tracer logs every statement at info, slow ones at warn
// the root level is lifted to debug so LogSQL alone decides
func Tracer(root logger.Logger) QueryTracer {
	ll := root.Level(zerolog.DebugLevel).With().Str("component", "pg").Logger()
	return &zlTracer{log: ll}
}

type zlTracer struct{ log logger.Logger }

func (z *zlTracer) OnQuery(_ context.Context, ev QueryEvent) {
	evt := z.log.Info()
	if ev.Slow {
		evt = z.log.Warn()
	}
	evt.Float64("elapsed_ms", float64(ev.ElapsedUS)/1000.0).
		Bool("slow", ev.Slow).
		Str("sql", compact(ev.SQL)).
		Interface("args", shortArgs(ev.Args)).
		Err(ev.Err).
		Msg("pg query")
}

// shortArgs replaces long text and byte arguments with a bounded preview
func shortArgs(args []any) []any {
	out := make([]any, len(args))
	for i, a := range args {
		switch v := a.(type) {
		case []byte:
			out[i] = fmt.Sprintf("<%d bytes>", len(v))
		case string:
			if len(v) > maxArgLen {
				out[i] = v[:maxArgLen] + "..."
				continue
			}
			out[i] = v
		default:
			out[i] = a
		}
	}
	return out
}

// compact puts a statement on one line
func compact(s string) string { return strings.Join(strings.Fields(s), " ") }
