package database

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
)

// QueryTracer echoes every statement and its outcome through zerolog.
// Attached to the pool only when DB_ECHO is enabled.
type QueryTracer struct{}

func NewQueryTracer() *QueryTracer {
	return &QueryTracer{}
}

type traceCtxKey struct{}

type traceData struct {
	sql     string
	started time.Time
}

func (t *QueryTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, traceCtxKey{}, traceData{sql: data.SQL, started: time.Now()})
}

func (t *QueryTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	td, ok := ctx.Value(traceCtxKey{}).(traceData)
	if !ok {
		return
	}

	ev := log.Debug()
	if data.Err != nil {
		ev = log.Error().Err(data.Err)
	}
	ev.Str("sql", td.sql).
		Dur("duration", time.Since(td.started)).
		Str("command_tag", data.CommandTag.String()).
		Msg("query executed")
}
