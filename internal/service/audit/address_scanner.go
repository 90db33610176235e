// Package audit scans addresses for reused ECDSA nonces and drives batch runs.
package audit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/nonceaudit/internal/model"
	"github.com/goodnatureofminers/nonceaudit/internal/nonce"
)

// AddressScanner fetches the transactions of one address and reports reused R-values.
type AddressScanner struct {
	fetcher  Fetcher
	detector Detector
	reports  ReportWriter
	findings FindingsRepository
	metrics  AddressScannerMetrics
	mode     model.DetectionMode
	logger   *zap.Logger
}

// NewAddressScanner builds an AddressScanner. findings may be nil.
func NewAddressScanner(
	fetcher Fetcher,
	detector Detector,
	reports ReportWriter,
	findings FindingsRepository,
	metrics AddressScannerMetrics,
	mode model.DetectionMode,
	logger *zap.Logger,
) (*AddressScanner, error) {
	if fetcher == nil || detector == nil || reports == nil {
		return nil, errors.New("fetcher, detector and report writer are required")
	}
	if metrics == nil {
		return nil, errors.New("address scanner metrics is required")
	}
	if mode == "" {
		mode = model.ModeTransaction
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &AddressScanner{
		fetcher:  fetcher,
		detector: detector,
		reports:  reports,
		findings: findings,
		metrics:  metrics,
		mode:     mode,
		logger:   logger.With(zap.String("mode", string(mode))),
	}, nil
}

// Scan analyzes address and returns totals advanced by this address. Addresses whose
// transactions cannot be fetched leave totals unchanged.
func (s *AddressScanner) Scan(ctx context.Context, address string, count int, totals model.Totals) (model.Totals, error) {
	started := time.Now()
	var (
		scanErr error
		txCount int
		reuse   bool
	)
	defer func() {
		s.metrics.ObserveScan(scanErr, txCount, reuse, started)
	}()

	logger := s.logger.With(zap.String("address", address))

	txs, err := s.fetcher.Fetch(ctx, address, count)
	if err != nil {
		scanErr = err
		if ctxErr := ctx.Err(); ctxErr != nil {
			return totals, ctxErr
		}
		logger.Error("fetch transactions failed, skipping address", zap.Error(err))
		return totals, nil
	}
	if len(txs) == 0 {
		logger.Info("no transactions fetched, skipping address")
		return totals, nil
	}
	txCount = len(txs)

	logger.Info("analyzing transactions", zap.Int("transactions", txCount))
	report := model.Report{Address: address, Mode: s.mode, Findings: s.detect(txs, logger)}

	totals.Checked++
	if report.Empty() {
		logger.Info("no R-value reuse detected")
		s.logTotals(logger, totals)
		return totals, nil
	}

	reuse = true
	totals.Found++
	logger.Warn("R-value reuse found", zap.Int("findings", len(report.Findings)))

	if s.findings != nil {
		if err := s.findings.InsertFindings(ctx, address, s.mode, report.Findings); err != nil {
			logger.Error("store findings failed", zap.Error(err))
		}
	}
	if err := s.reports.Write(ctx, report); err != nil {
		scanErr = err
		s.logTotals(logger, totals)
		return totals, fmt.Errorf("address %s: %w", address, err)
	}

	s.logTotals(logger, totals)
	return totals, nil
}

func (s *AddressScanner) detect(txs []model.Transaction, logger *zap.Logger) []model.ReuseFinding {
	skip := func(tx model.Transaction, err error) {
		s.metrics.ObserveSkippedTransaction()
		logger.Warn("skipping malformed transaction", zap.String("tx", tx.Hash), zap.Error(err))
	}

	if s.mode == model.ModeAddress {
		return s.detector.DetectAddress(txs, skip)
	}

	var findings []model.ReuseFinding
	for _, tx := range txs {
		groups, err := s.detector.DetectTransaction(tx)
		if err != nil {
			skip(tx, err)
			continue
		}
		findings = append(findings, nonce.TransactionFindings(tx.Hash, groups)...)
	}
	return findings
}

func (s *AddressScanner) logTotals(logger *zap.Logger, totals model.Totals) {
	logger.Info("scan totals",
		zap.Int("checked", totals.Checked),
		zap.Int("found", totals.Found),
	)
}
