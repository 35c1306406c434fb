package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/goodnatureofminers/powchain/internal/metrics"
	"github.com/goodnatureofminers/powchain/internal/miner"
	"github.com/goodnatureofminers/powchain/internal/service"
	"github.com/goodnatureofminers/powchain/pkg/safe"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type config struct {
	Difficulty    int           `long:"difficulty" env:"POW_MINER_DIFFICULTY" description:"trailing zero bits required in block digests" default:"16"`
	Workers       int           `long:"workers" env:"POW_MINER_WORKERS" description:"mining workers, 0 uses every CPU" default:"0"`
	Chunks        int           `long:"chunks" env:"POW_MINER_CHUNKS" description:"tasks a proof search is split into" default:"2345"`
	Blocks        int           `long:"blocks" env:"POW_MINER_BLOCKS" description:"blocks to mine including genesis, 0 for unbounded" default:"10"`
	Data          []string      `long:"data" env:"POW_MINER_DATA" env-delim:"," description:"block payloads, cycled through in order"`
	BlockInterval time.Duration `long:"block-interval" env:"POW_MINER_BLOCK_INTERVAL" description:"pause between blocks" default:"0s"`
	Output        string        `long:"output" env:"POW_MINER_OUTPUT" description:"file receiving mined blocks as JSON lines, - for stdout" default:"-"`
	FlushSize     int           `long:"flush-size" env:"POW_MINER_FLUSH_SIZE" description:"blocks per output batch" default:"16"`
	FlushInterval time.Duration `long:"flush-interval" env:"POW_MINER_FLUSH_INTERVAL" description:"max delay before a partial batch is written" default:"1s"`
	FlushRPS      int           `long:"flush-rps" env:"POW_MINER_FLUSH_RPS" description:"max output batches per second, 0 for unlimited" default:"0"`
	MetricsAddr   string        `long:"metrics-addr" env:"POW_MINER_METRICS_ADDR" description:"address for metrics server, empty disables it" default:":2112"`
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

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("chain miner failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	difficulty, err := safe.Uint8(cfg.Difficulty)
	if err != nil {
		return fmt.Errorf("difficulty: %w", err)
	}
	chunks, err := safe.Uint64(cfg.Chunks)
	if err != nil {
		return fmt.Errorf("chunks: %w", err)
	}
	blocks, err := safe.Uint64(cfg.Blocks)
	if err != nil {
		return fmt.Errorf("blocks: %w", err)
	}
	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	out, closeOut, err := openOutput(cfg.Output)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeOut(); err != nil {
			logger.Error("failed to close output", zap.Error(err))
		}
	}()

	if cfg.MetricsAddr != "" {
		startMetricsServer(ctx, cfg.MetricsAddr, logger)
	}

	m := miner.New(logger.Named("miner"), metrics.NewMiner(difficulty), chunks)
	writer := service.NewJSONBlockWriter(out, cfg.FlushSize, cfg.FlushInterval, cfg.FlushRPS, logger.Named("blockWriter"))

	svc, err := service.NewChainMinerService(
		m,
		writer,
		metrics.NewChainMiner(difficulty),
		service.ChainMinerConfig{
			Difficulty:    difficulty,
			Workers:       workers,
			Blocks:        blocks,
			Payloads:      cfg.Data,
			BlockInterval: cfg.BlockInterval,
		},
		logger,
	)
	if err != nil {
		return err
	}

	logger.Info("starting chain miner",
		zap.Uint8("difficulty", difficulty),
		zap.Int("workers", workers),
		zap.Uint64("chunks", chunks),
		zap.Uint64("blocks", blocks),
	)
	return svc.Run(ctx)
}

func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return os.Stdout, func() error { return nil }, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output %s: %w", path, err)
	}
	return f, f.Close, nil
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
