package audit

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/nonceaudit/internal/addresslist"
	"github.com/goodnatureofminers/nonceaudit/internal/clock"
	"github.com/goodnatureofminers/nonceaudit/internal/model"
)

// BatchDriver scans an address list in order and checkpoints after every address.
type BatchDriver struct {
	scanner      Scanner
	checkpoints  CheckpointStore
	metrics      BatchDriverMetrics
	validate     func(address string) error
	logger       *zap.Logger
	sleep        clock.SleepFunc
	addressDelay time.Duration
}

// NewBatchDriver builds a BatchDriver. validate may be nil; a failing validation is only logged.
func NewBatchDriver(
	scanner Scanner,
	checkpoints CheckpointStore,
	metrics BatchDriverMetrics,
	validate func(address string) error,
	logger *zap.Logger,
) (*BatchDriver, error) {
	if scanner == nil || checkpoints == nil {
		return nil, errors.New("scanner and checkpoint store are required")
	}
	if metrics == nil {
		return nil, errors.New("batch driver metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &BatchDriver{
		scanner:      scanner,
		checkpoints:  checkpoints,
		metrics:      metrics,
		validate:     validate,
		logger:       logger,
		sleep:        clock.SleepWithContext,
		addressDelay: addressDelay,
	}, nil
}

// WithAddressDelay overrides the pause between addresses.
func (d *BatchDriver) WithAddressDelay(delay time.Duration) *BatchDriver {
	d.addressDelay = delay
	return d
}

// Run scans the addresses of addressFile that follow the saved checkpoint, requesting up to
// count transactions each, and returns the final totals.
func (d *BatchDriver) Run(ctx context.Context, addressFile string, count int) (model.Totals, error) {
	if count < 1 {
		return model.Totals{}, fmt.Errorf("transaction count %d must be at least 1", count)
	}

	cp, err := d.checkpoints.Load(ctx)
	if err != nil {
		return model.Totals{}, err
	}
	totals := cp.Totals()

	lines, err := addresslist.Read(addressFile)
	if err != nil {
		return totals, err
	}
	start, err := addresslist.ResumeIndex(lines, cp.Address)
	if err != nil {
		return totals, err
	}
	if cp.Address != "" {
		d.logger.Info("resuming batch",
			zap.String("after", cp.Address),
			zap.Int("checked", totals.Checked),
			zap.Int("found", totals.Found),
		)
	}

	addresses := make([]string, 0, len(lines)-start)
	for _, line := range lines[start:] {
		if address := strings.TrimSpace(line); address != "" {
			addresses = append(addresses, address)
		}
	}

	for i, address := range addresses {
		if err := ctx.Err(); err != nil {
			return totals, err
		}
		if d.validate != nil {
			if err := d.validate(address); err != nil {
				d.logger.Warn("address does not decode for the configured network", zap.String("address", address), zap.Error(err))
			}
		}

		d.logger.Info("processing address", zap.String("address", address))
		next, err := d.scanner.Scan(ctx, address, count, totals)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return totals, ctxErr
			}
			d.logger.Error("scan address failed", zap.String("address", address), zap.Error(err))
		}
		totals = next

		saved := model.Checkpoint{
			Address: address,
			TxCount: count,
			Checked: totals.Checked,
			Found:   totals.Found,
		}
		err = d.checkpoints.Save(ctx, saved)
		d.metrics.ObserveCheckpoint(saved, err)
		if err != nil {
			return totals, err
		}

		if i == len(addresses)-1 {
			break
		}
		d.logger.Debug("waiting before next address", zap.Duration("delay", d.addressDelay))
		if err := d.sleep(ctx, d.addressDelay); err != nil {
			return totals, err
		}
	}

	d.logger.Info("batch finished", zap.Int("checked", totals.Checked), zap.Int("found", totals.Found))
	return totals, nil
}
