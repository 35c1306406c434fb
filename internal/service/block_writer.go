package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/goodnatureofminers/powchain/pkg/batcher"
	"go.uber.org/zap"
)

// JSONBlockWriter batches mined blocks and writes them to out as JSON lines.
type JSONBlockWriter struct {
	out          io.Writer
	logger       *zap.Logger
	blockBatcher *batcher.Batcher[MinedBlock]

	mu sync.Mutex
}

// NewJSONBlockWriter constructs a JSONBlockWriter. rps caps flushes per second; zero disables the cap.
func NewJSONBlockWriter(out io.Writer, flushSize int, flushInterval time.Duration, rps int, logger *zap.Logger) *JSONBlockWriter {
	w := &JSONBlockWriter{
		out:    out,
		logger: logger,
	}

	w.blockBatcher = batcher.New[MinedBlock](
		logger.Named("blockBatcher"),
		w.flush,
		flushSize,
		flushInterval,
		rps,
	)
	return w
}

func (w *JSONBlockWriter) Start(ctx context.Context) {
	w.blockBatcher.Start(ctx)
}

// Stop flushes pending blocks and stops the writer.
func (w *JSONBlockWriter) Stop() {
	w.blockBatcher.Stop()
}

func (w *JSONBlockWriter) WriteBlock(ctx context.Context, b MinedBlock) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return w.blockBatcher.Add(ctx, b)
}

func (w *JSONBlockWriter) flush(_ context.Context, blocks []MinedBlock) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, b := range blocks {
		if err := enc.Encode(b); err != nil {
			return fmt.Errorf("encode block generation %d: %w", b.Generation, err)
		}
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if _, err := w.out.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write %d blocks: %w", len(blocks), err)
	}
	w.logger.Debug("blocks written", zap.Int("count", len(blocks)))
	return nil
}
