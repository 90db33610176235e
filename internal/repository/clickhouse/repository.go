// Package clickhouse stores nonce reuse findings in ClickHouse.
package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
)

// Repository writes findings to ClickHouse.
type Repository struct {
	conn    Conn
	metrics Metrics
	now     func() time.Time
}

// NewRepository opens a connection described by dsn.
func NewRepository(dsn string, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}
	if metrics == nil {
		return nil, errors.New("clickhouse metrics is required")
	}

	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}

	return &Repository{conn: &driverConn{conn: conn}, metrics: metrics, now: time.Now}, nil
}

// Close releases the connection.
func (r *Repository) Close() error {
	return r.conn.Close()
}

type driverConn struct {
	conn clickhouse.Conn
}

func (c *driverConn) PrepareBatch(ctx context.Context, query string) (Batch, error) {
	return c.conn.PrepareBatch(ctx, query)
}

func (c *driverConn) Close() error {
	return c.conn.Close()
}
