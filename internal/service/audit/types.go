package audit

import (
	"context"
	"time"

	"github.com/goodnatureofminers/nonceaudit/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Fetcher interface {
		Fetch(ctx context.Context, address string, count int) ([]model.Transaction, error)
	}
	Detector interface {
		DetectTransaction(tx model.Transaction) ([]model.DuplicateGroup, error)
		DetectAddress(txs []model.Transaction, skip func(tx model.Transaction, err error)) []model.ReuseFinding
	}
	ReportWriter interface {
		Write(ctx context.Context, r model.Report) error
	}
	FindingsRepository interface {
		InsertFindings(ctx context.Context, address string, mode model.DetectionMode, findings []model.ReuseFinding) error
	}
	AddressScannerMetrics interface {
		ObserveScan(err error, transactions int, reuseFound bool, started time.Time)
		ObserveSkippedTransaction()
	}

	Scanner interface {
		Scan(ctx context.Context, address string, count int, totals model.Totals) (model.Totals, error)
	}
	CheckpointStore interface {
		Load(ctx context.Context) (model.Checkpoint, error)
		Save(ctx context.Context, cp model.Checkpoint) error
	}
	BatchDriverMetrics interface {
		ObserveCheckpoint(cp model.Checkpoint, err error)
	}
)
