package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/maineblanc/camping-booking/pkg/metrics"
)

const defaultPoolStatsInterval = 15 * time.Second

// Collector часть metrics.Metrics, нужная обертке
type Collector interface {
	ObserveDBQuery(operation string, duration time.Duration)
	SetDBPoolStats(db string, open, inUse, idle int, waitCount int64)
}

// DB обертка над *sql.DB, замеряющая длительность запросов
// collector может быть nil - тогда метрики не пишутся
type DB struct {
	db        *sql.DB
	collector Collector
}

// Wrap оборачивает *sql.DB без сбора статистики пула
func Wrap(db *sql.DB, collector Collector) *DB {
	return &DB{db: db, collector: collector}
}

// WrapWithDefault оборачивает *sql.DB и запускает периодический сбор статистики пула
// до закрытия stopCh
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, dbName string, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, m)
	go wrapped.collectPoolStats(dbName, defaultPoolStatsInterval, stopCh)
	return wrapped
}

func (d *DB) collectPoolStats(dbName string, interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			s := d.db.Stats()
			d.collector.SetDBPoolStats(dbName, s.OpenConnections, s.InUse, s.Idle, s.WaitCount)
		}
	}
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	defer d.observe(query, time.Now())
	return d.db.ExecContext(ctx, query, args...)
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	defer d.observe(query, time.Now())
	return d.db.QueryContext(ctx, query, args...)
}

func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	defer d.observe(query, time.Now())
	return d.db.QueryRowContext(ctx, query, args...)
}

// BeginTx открывает транзакцию, запросы которой тоже замеряются
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx, collector: d.collector}, nil
}

func (d *DB) observe(query string, start time.Time) {
	if d.collector == nil {
		return
	}
	d.collector.ObserveDBQuery(operationOf(query), time.Since(start))
}

// Tx обертка над *sql.Tx
type Tx struct {
	tx        *sql.Tx
	collector Collector
}

func (t *Tx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	defer t.observe(query, time.Now())
	return t.tx.ExecContext(ctx, query, args...)
}

func (t *Tx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	defer t.observe(query, time.Now())
	return t.tx.QueryContext(ctx, query, args...)
}

func (t *Tx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	defer t.observe(query, time.Now())
	return t.tx.QueryRowContext(ctx, query, args...)
}

func (t *Tx) Commit() error {
	return t.tx.Commit()
}

func (t *Tx) Rollback() error {
	return t.tx.Rollback()
}

func (t *Tx) observe(query string, start time.Time) {
	if t.collector == nil {
		return
	}
	t.collector.ObserveDBQuery(operationOf(query), time.Since(start))
}

// operationOf SELECT/INSERT/UPDATE/DELETE - первое слово запроса
func operationOf(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToLower(fields[0])
}
