package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrPoolExhausted is returned when no session becomes available within the
// configured pool timeout.
var ErrPoolExhausted = errors.New("connection pool exhausted")

// Querier is the statement surface shared by the pool, an acquired session
// and a transaction, so repositories run unchanged in any of them.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

type sessionCtxKey struct{}

// WithSessionConn binds an acquired connection to the context so every
// statement issued while handling the request shares one session.
func WithSessionConn(ctx context.Context, conn *pgxpool.Conn) context.Context {
	return context.WithValue(ctx, sessionCtxKey{}, conn)
}

// SessionConn returns the request-scoped connection, if one was acquired.
func SessionConn(ctx context.Context) (*pgxpool.Conn, bool) {
	conn, ok := ctx.Value(sessionCtxKey{}).(*pgxpool.Conn)
	return conn, ok
}

// Querier resolves the statement target for ctx: the request session when
// present, otherwise the pool itself.
func (db *PostgresDB) Querier(ctx context.Context) Querier {
	if conn, ok := SessionConn(ctx); ok {
		return conn
	}
	return db.Pool
}

// Acquire checks a connection out of the pool, waiting at most the configured
// pool timeout. A timed-out wait is reported as ErrPoolExhausted.
func (db *PostgresDB) Acquire(ctx context.Context) (*pgxpool.Conn, error) {
	if db.Pool == nil {
		return nil, fmt.Errorf("database pool is not initialized")
	}

	acquireCtx := ctx
	if db.Config.PoolTimeout > 0 {
		var cancel context.CancelFunc
		acquireCtx, cancel = context.WithTimeout(ctx, db.Config.PoolTimeout)
		defer cancel()
	}

	conn, err := db.Pool.Acquire(acquireCtx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return nil, fmt.Errorf("%w: no session available within %s", ErrPoolExhausted, db.Config.PoolTimeout)
		}
		return nil, fmt.Errorf("failed to acquire session: %w", err)
	}

	return conn, nil
}
