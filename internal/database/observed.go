package database

import (
	"context"
	"strings"
	"time"

	"go-gin-concert-booking/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// Observer 接收每一個 SQL 呼叫的結果
type Observer interface {
	Observe(ctx context.Context, op string, sql string, elapsed time.Duration, err error)
}

// ObservedDB 包裝 DB，在不改變行為的前提下回報每次呼叫
type ObservedDB struct {
	db       DB
	observer Observer
}

func NewObservedDB(db DB, observer Observer) *ObservedDB {
	return &ObservedDB{db: db, observer: observer}
}

func (o *ObservedDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	start := time.Now()
	tag, err := o.db.Exec(ctx, sql, args...)
	o.observer.Observe(ctx, "exec", sql, time.Since(start), err)
	return tag, err
}

func (o *ObservedDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	start := time.Now()
	rows, err := o.db.Query(ctx, sql, args...)
	o.observer.Observe(ctx, "query", sql, time.Since(start), err)
	return rows, err
}

func (o *ObservedDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return &observedRow{
		row:      o.db.QueryRow(ctx, sql, args...),
		ctx:      ctx,
		sql:      sql,
		start:    time.Now(),
		observer: o.observer,
	}
}

func (o *ObservedDB) BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error) {
	start := time.Now()
	tx, err := o.db.BeginTx(ctx, txOptions)
	o.observer.Observe(ctx, "begin", "BEGIN", time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return &observedTx{Tx: tx, observer: o.observer}, nil
}

type observedRow struct {
	row      pgx.Row
	ctx      context.Context
	sql      string
	start    time.Time
	observer Observer
}

func (r *observedRow) Scan(dest ...any) error {
	err := r.row.Scan(dest...)
	r.observer.Observe(r.ctx, "query_row", r.sql, time.Since(r.start), err)
	return err
}

// observedTx 只攔截 Exec/Query/QueryRow/Commit/Rollback，其餘方法沿用內嵌的 pgx.Tx
type observedTx struct {
	pgx.Tx
	observer Observer
}

func (t *observedTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	start := time.Now()
	tag, err := t.Tx.Exec(ctx, sql, args...)
	t.observer.Observe(ctx, "tx_exec", sql, time.Since(start), err)
	return tag, err
}

func (t *observedTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	start := time.Now()
	rows, err := t.Tx.Query(ctx, sql, args...)
	t.observer.Observe(ctx, "tx_query", sql, time.Since(start), err)
	return rows, err
}

func (t *observedTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return &observedRow{
		row:      t.Tx.QueryRow(ctx, sql, args...),
		ctx:      ctx,
		sql:      sql,
		start:    time.Now(),
		observer: t.observer,
	}
}

func (t *observedTx) Commit(ctx context.Context) error {
	start := time.Now()
	err := t.Tx.Commit(ctx)
	t.observer.Observe(ctx, "commit", "COMMIT", time.Since(start), err)
	return err
}

func (t *observedTx) Rollback(ctx context.Context) error {
	start := time.Now()
	err := t.Tx.Rollback(ctx)
	if err == pgx.ErrTxClosed {
		return err
	}
	t.observer.Observe(ctx, "rollback", "ROLLBACK", time.Since(start), err)
	return err
}

// LogObserver 以 zap 記錄 SQL：錯誤與慢查詢為 Warn，其餘為 Debug
type LogObserver struct {
	log           *zap.Logger
	slowThreshold time.Duration
}

func NewLogObserver(slowThreshold time.Duration) *LogObserver {
	return &LogObserver{log: logger.WithComponent("db"), slowThreshold: slowThreshold}
}

func (l *LogObserver) Observe(ctx context.Context, op string, sql string, elapsed time.Duration, err error) {
	fields := []zap.Field{
		zap.String("op", op),
		zap.String("sql", compactSQL(sql)),
		zap.Duration("elapsed", elapsed),
	}
	switch {
	case err != nil && err != pgx.ErrNoRows:
		l.log.Warn("sql failed", append(fields, zap.Error(err))...)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold:
		l.log.Warn("slow sql", fields...)
	default:
		l.log.Debug("sql", fields...)
	}
}

func compactSQL(sql string) string {
	s := strings.Join(strings.Fields(sql), " ")
	if len(s) > 120 {
		return s[:120] + "..."
	}
	return s
}
