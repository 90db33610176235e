// Package fetcher retrieves every transaction of an address page by page.
package fetcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/nonceaudit/internal/clock"
	"github.com/goodnatureofminers/nonceaudit/internal/model"
	"github.com/goodnatureofminers/nonceaudit/internal/retry"
	"github.com/goodnatureofminers/nonceaudit/internal/storage"
	"github.com/goodnatureofminers/nonceaudit/pkg/safe"
)

// ErrInitialPage is returned when the first page of an address cannot be fetched.
var ErrInitialPage = errors.New("initial page request failed")

// Fetcher pages through the provider and caches complete results.
type Fetcher struct {
	client   PageClient
	cache    Cache
	metrics  Metrics
	policy   retry.Policy
	pageSize int
	logger   *zap.Logger
	sleep    clock.SleepFunc
}

// New creates a Fetcher. cache may be nil to disable caching.
func New(client PageClient, cache Cache, metrics Metrics, policy retry.Policy, logger *zap.Logger) (*Fetcher, error) {
	if client == nil {
		return nil, errors.New("page client is required")
	}
	if metrics == nil {
		return nil, errors.New("fetcher metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Fetcher{
		client:   client,
		cache:    cache,
		metrics:  metrics,
		policy:   policy,
		pageSize: PageSize,
		logger:   logger.Named("fetcher"),
		sleep:    clock.SleepWithContext,
	}, nil
}

// Fetch returns up to count transactions of address in provider order.
// A cached result is returned as stored, whatever count is.
func (f *Fetcher) Fetch(ctx context.Context, address string, count int) ([]model.Transaction, error) {
	if count < 1 {
		return nil, fmt.Errorf("requested transaction count %d must be at least 1", count)
	}

	if txs, ok := f.cached(ctx, address); ok {
		return txs, nil
	}

	first, firstRaw, err := f.client.FetchPage(ctx, address, 0)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: address %s: %w", ErrInitialPage, address, err)
	}
	f.metrics.ObservePage()

	total, err := safe.Int(first.NTx)
	if err != nil {
		return nil, fmt.Errorf("%w: address %s: n_tx: %w", ErrInitialPage, address, err)
	}
	limit := safe.Min(count, total)

	f.logger.Debug("fetching transactions",
		zap.String("address", address),
		zap.Int("n_tx", total),
		zap.Int("limit", limit),
	)

	txs := make([]model.Transaction, 0, limit)
	raws := make([][]byte, 0, limit/f.pageSize+1)
	for offset := 0; offset < limit; offset += f.pageSize {
		if offset == 0 {
			txs = append(txs, first.Txs...)
			raws = append(raws, firstRaw)
			continue
		}
		page, raw, err := f.fetchPage(ctx, address, offset)
		if err != nil {
			return nil, err
		}
		txs = append(txs, page.Txs...)
		raws = append(raws, raw)
	}

	f.store(ctx, address, firstRaw, raws)
	return txs, nil
}

func (f *Fetcher) fetchPage(ctx context.Context, address string, offset int) (*model.AddressPage, []byte, error) {
	var (
		page *model.AddressPage
		raw  []byte
	)
	err := f.policy.Do(ctx, f.sleep, func(ctx context.Context) error {
		p, r, err := f.client.FetchPage(ctx, address, offset)
		if err != nil {
			return err
		}
		page, raw = p, r
		return nil
	}, func(attempt int, err error) {
		f.metrics.ObserveRetry()
		f.logger.Warn("page request failed, retrying",
			zap.String("address", address),
			zap.Int("offset", offset),
			zap.Int("attempt", attempt),
			zap.Duration("delay", f.policy.Delay),
			zap.Error(err),
		)
	})
	if err != nil {
		return nil, nil, fmt.Errorf("fetch address %s offset %d: %w", address, offset, err)
	}
	f.metrics.ObservePage()
	return page, raw, nil
}

func (f *Fetcher) cached(ctx context.Context, address string) ([]model.Transaction, bool) {
	if f.cache == nil {
		return nil, false
	}

	raw, err := f.cache.Get(ctx, address)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			f.logger.Warn("read cache failed", zap.String("address", address), zap.Error(err))
		}
		f.metrics.ObserveCache(false)
		return nil, false
	}

	page, err := model.DecodeAddressPage(raw)
	if err != nil {
		f.logger.Warn("ignoring corrupt cache entry", zap.String("address", address), zap.Error(err))
		f.metrics.ObserveCache(false)
		return nil, false
	}

	f.metrics.ObserveCache(true)
	if page.Txs == nil {
		return []model.Transaction{}, true
	}
	return page.Txs, true
}

// store writes the first page envelope with its txs replaced by the transactions of every
// fetched page, kept verbatim.
func (f *Fetcher) store(ctx context.Context, address string, firstRaw []byte, raws [][]byte) {
	if f.cache == nil {
		return
	}

	entry, err := cacheEntry(firstRaw, raws)
	if err != nil {
		f.logger.Warn("build cache entry failed", zap.String("address", address), zap.Error(err))
		return
	}
	if err := f.cache.Put(ctx, address, entry); err != nil {
		f.logger.Warn("write cache failed", zap.String("address", address), zap.Error(err))
	}
}

func cacheEntry(firstRaw []byte, raws [][]byte) ([]byte, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(firstRaw, &envelope); err != nil {
		return nil, fmt.Errorf("decode first page: %w", err)
	}
	if envelope == nil {
		envelope = make(map[string]json.RawMessage)
	}

	txs := make([]json.RawMessage, 0)
	for _, raw := range raws {
		var page struct {
			Txs []json.RawMessage `json:"txs"`
		}
		if err := json.Unmarshal(raw, &page); err != nil {
			return nil, fmt.Errorf("decode page: %w", err)
		}
		txs = append(txs, page.Txs...)
	}

	encoded, err := json.Marshal(txs)
	if err != nil {
		return nil, fmt.Errorf("encode transactions: %w", err)
	}
	envelope["txs"] = encoded
	return json.Marshal(envelope)
}
