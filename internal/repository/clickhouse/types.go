package clickhouse

import (
	"context"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Metrics records repository operations.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
	// Conn is the subset of a ClickHouse connection the repository uses.
	Conn interface {
		PrepareBatch(ctx context.Context, query string) (Batch, error)
		Close() error
	}
	// Batch is a prepared insert.
	Batch interface {
		Append(v ...any) error
		Send() error
	}
)
