package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/nonceaudit/internal/addresslist"
	"github.com/goodnatureofminers/nonceaudit/internal/checkpoint"
	"github.com/goodnatureofminers/nonceaudit/internal/fetcher"
	"github.com/goodnatureofminers/nonceaudit/internal/metrics"
	"github.com/goodnatureofminers/nonceaudit/internal/model"
	"github.com/goodnatureofminers/nonceaudit/internal/nonce"
	"github.com/goodnatureofminers/nonceaudit/internal/prompt"
	"github.com/goodnatureofminers/nonceaudit/internal/provider/blockchaininfo"
	"github.com/goodnatureofminers/nonceaudit/internal/report"
	"github.com/goodnatureofminers/nonceaudit/internal/repository/clickhouse"
	"github.com/goodnatureofminers/nonceaudit/internal/retry"
	"github.com/goodnatureofminers/nonceaudit/internal/service/audit"
	"github.com/goodnatureofminers/nonceaudit/internal/storage"
	"github.com/goodnatureofminers/nonceaudit/internal/storage/file"
	"github.com/goodnatureofminers/nonceaudit/internal/storage/leveldb"
)

const (
	backendFile    = "file"
	backendLevelDB = "leveldb"
)

type config struct {
	ProviderURL    string        `long:"provider-url" env:"NONCE_AUDIT_PROVIDER_URL" description:"Transaction provider base URL" default:"https://blockchain.info"`
	HTTPTimeout    time.Duration `long:"http-timeout" env:"NONCE_AUDIT_HTTP_TIMEOUT" description:"HTTP timeout for provider requests" default:"30s"`
	RPS            int           `long:"rps" env:"NONCE_AUDIT_RPS" description:"Provider requests per second, 0 disables pacing" default:"0"`
	RetryDelay     time.Duration `long:"retry-delay" env:"NONCE_AUDIT_RETRY_DELAY" description:"Pause between failed page requests" default:"5s"`
	RetryAttempts  int           `long:"retry-attempts" env:"NONCE_AUDIT_RETRY_ATTEMPTS" description:"Attempts per page, 0 retries forever" default:"0"`
	AddressDelay   time.Duration `long:"address-delay" env:"NONCE_AUDIT_ADDRESS_DELAY" description:"Pause between addresses" default:"5s"`
	StoreBackend   string        `long:"store" env:"NONCE_AUDIT_STORE" description:"Cache and checkpoint backend" choice:"file" choice:"leveldb" default:"file"`
	CacheDir       string        `long:"cache-dir" env:"NONCE_AUDIT_CACHE_DIR" description:"Directory of response cache files" default:"."`
	CheckpointPath string        `long:"checkpoint" env:"NONCE_AUDIT_CHECKPOINT" description:"Checkpoint file" default:"progress.json"`
	LevelDBPath    string        `long:"leveldb-path" env:"NONCE_AUDIT_LEVELDB_PATH" description:"LevelDB directory for the leveldb backend" default:"nonceaudit.db"`
	ReportDir      string        `long:"report-dir" env:"NONCE_AUDIT_REPORT_DIR" description:"Directory of reuse reports" default:"."`
	ReportFormat   string        `long:"report-format" env:"NONCE_AUDIT_REPORT_FORMAT" description:"Report format" choice:"txt" choice:"xlsx" default:"txt"`
	Mode           string        `long:"mode" env:"NONCE_AUDIT_MODE" description:"Detection mode" choice:"transaction" choice:"address" default:"transaction"`
	Extractor      string        `long:"extractor" env:"NONCE_AUDIT_EXTRACTOR" description:"R-value extractor" choice:"offset" choice:"der" default:"offset"`
	Network        string        `long:"network" env:"NONCE_AUDIT_NETWORK" description:"Network used to validate addresses" default:"mainnet"`
	MetricsAddr    string        `long:"metrics-addr" env:"NONCE_AUDIT_METRICS_ADDR" description:"Address for metrics server, empty disables it" default:":2112"`
	ClickhouseDSN  string        `long:"clickhouse-dsn" env:"NONCE_AUDIT_CLICKHOUSE_DSN" description:"ClickHouse DSN for the findings table, empty disables it"`
	AddressFile    string        `long:"address-file" env:"NONCE_AUDIT_ADDRESS_FILE" description:"Address list; prompted for when empty"`
	TxCount        int           `long:"tx-count" env:"NONCE_AUDIT_TX_COUNT" description:"Transactions to fetch per address; prompted for when 0"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("nonce audit interrupted")
			return
		}
		logger.Fatal("nonce audit failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	if cfg.MetricsAddr != "" {
		startMetricsServer(ctx, cfg.MetricsAddr, logger)
	}

	cache, checkpoints, closeStores, err := openStores(cfg)
	if err != nil {
		return err
	}
	defer closeStores()

	tracker := checkpoint.NewTracker(checkpoints)
	addressFile, count, err := askInputs(ctx, cfg, tracker, os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	scanner, closeScanner, err := newScanner(cfg, cache, logger)
	if err != nil {
		return err
	}
	defer closeScanner()

	params, err := addresslist.NetworkParams(cfg.Network)
	if err != nil {
		return err
	}
	driver, err := audit.NewBatchDriver(
		scanner,
		tracker,
		metrics.NewBatchDriver(),
		func(address string) error { return addresslist.Validate(address, params) },
		logger,
	)
	if err != nil {
		return err
	}

	totals, err := driver.WithAddressDelay(cfg.AddressDelay).Run(ctx, addressFile, count)
	if err != nil {
		return err
	}
	logger.Info("nonce audit finished",
		zap.Int("checked", totals.Checked),
		zap.Int("found", totals.Found),
	)
	return nil
}

// askInputs resolves the address file and transaction count, prompting for whichever is
// not configured.
func askInputs(ctx context.Context, cfg config, tracker *checkpoint.Tracker, in io.Reader, out io.Writer) (string, int, error) {
	cp, err := tracker.Load(ctx)
	if err != nil {
		return "", 0, err
	}

	fmt.Fprintln(out, "Welcome to the CRYPTOGRAPHYTUBE!")
	resuming := cp.Address != ""
	if resuming {
		fmt.Fprintf(out, "Resuming from address: %s with %d transactions.\n", cp.Address, cp.TxCount)
	}

	p := prompt.New(in, out)
	addressFile := cfg.AddressFile
	if addressFile == "" {
		if addressFile, err = p.AddressFile(resuming); err != nil {
			return "", 0, fmt.Errorf("read address file path: %w", err)
		}
	}
	count := cfg.TxCount
	if count < 1 {
		if count, err = p.TxCount(); err != nil {
			return "", 0, fmt.Errorf("read transaction count: %w", err)
		}
	}
	return addressFile, count, nil
}

func newScanner(cfg config, cache storage.Store, logger *zap.Logger) (*audit.AddressScanner, func(), error) {
	mode, err := model.ParseDetectionMode(cfg.Mode)
	if err != nil {
		return nil, nil, err
	}
	extractor, err := nonce.ParseExtractor(cfg.Extractor)
	if err != nil {
		return nil, nil, err
	}
	format, err := report.ParseFormat(cfg.ReportFormat)
	if err != nil {
		return nil, nil, err
	}

	client, err := blockchaininfo.NewClient(
		cfg.ProviderURL,
		&http.Client{Timeout: cfg.HTTPTimeout},
		cfg.RPS,
		metrics.NewProviderClient("blockchaininfo"),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("init provider client: %w", err)
	}
	txFetcher, err := fetcher.New(
		client,
		cache,
		metrics.NewFetcher(),
		retry.Policy{Delay: cfg.RetryDelay, MaxAttempts: cfg.RetryAttempts},
		logger,
	)
	if err != nil {
		return nil, nil, err
	}

	reportStore, err := file.NewStore(cfg.ReportDir, format.FileName)
	if err != nil {
		return nil, nil, err
	}
	reports, err := report.NewWriter(reportStore, format)
	if err != nil {
		return nil, nil, err
	}

	var (
		findings audit.FindingsRepository
		closeFn  = func() {}
	)
	if cfg.ClickhouseDSN != "" {
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return nil, nil, fmt.Errorf("init repository: %w", err)
		}
		findings = repo
		closeFn = func() {
			if err := repo.Close(); err != nil {
				logger.Warn("failed to close clickhouse connection", zap.Error(err))
			}
		}
	}

	scanner, err := audit.NewAddressScanner(
		txFetcher,
		nonce.NewDetector(extractor),
		reports,
		findings,
		metrics.NewAddressScanner(mode),
		mode,
		logger,
	)
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return scanner, closeFn, nil
}

// openStores returns the response cache and checkpoint stores of the configured backend.
func openStores(cfg config) (cache, checkpoints storage.Store, closeFn func(), err error) {
	switch cfg.StoreBackend {
	case backendLevelDB:
		db, err := leveldb.Open(cfg.LevelDBPath)
		if err != nil {
			return nil, nil, nil, err
		}
		return storage.WithPrefix(db, "cache:"), storage.WithPrefix(db, "checkpoint:"), func() { _ = db.Close() }, nil
	case backendFile, "":
		cache, err := file.NewStore(cfg.CacheDir, file.CacheName)
		if err != nil {
			return nil, nil, nil, err
		}
		name := filepath.Base(cfg.CheckpointPath)
		checkpoints, err := file.NewStore(filepath.Dir(cfg.CheckpointPath), func(string) string { return name })
		if err != nil {
			return nil, nil, nil, err
		}
		return cache, checkpoints, func() {}, nil
	default:
		return nil, nil, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
