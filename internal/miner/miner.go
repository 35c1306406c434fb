// Package miner searches for block proofs on a pool of workers.
package miner

import (
	"context"
	"math"
	"time"

	"github.com/goodnatureofminers/powchain/internal/block"
	"github.com/goodnatureofminers/powchain/pkg/workerpool"
	"go.uber.org/zap"
)

// Miner splits a nonce range into chunks and scans them concurrently.
type Miner struct {
	logger  *zap.Logger
	metrics Metrics
	chunks  uint64
}

// New constructs a Miner. chunks of zero selects DefaultChunks; metrics may be nil.
func New(logger *zap.Logger, metrics Metrics, chunks uint64) *Miner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if chunks == 0 {
		chunks = DefaultChunks
	}
	return &Miner{
		logger:  logger,
		metrics: metrics,
		chunks:  chunks,
	}
}

// MineRange scans [start, end) with workers goroutines split into chunks tasks
// and returns the first proof reported. end means no proof exists in the range.
//
// When several proofs exist any of them may be returned; within a chunk the
// lowest one is reported.
func (m *Miner) MineRange(b *block.Block, workers int, start, end, chunks uint64) (proof uint64) {
	started := time.Now()
	spans := partition(start, end, chunks)
	defer func() {
		m.observeMineRange(proof < end, len(spans), started)
	}()

	if len(spans) == 0 {
		return end
	}
	if workers < 1 {
		workers = 1
	}

	logger := m.logger.With(
		zap.Uint64("generation", b.Generation),
		zap.Uint8("difficulty", b.Difficulty),
	)
	logger.Debug("mining range",
		zap.Uint64("start", start),
		zap.Uint64("end", end),
		zap.Int("tasks", len(spans)),
		zap.Int("workers", workers),
	)

	// Workers share one snapshot so later changes to b cannot race with them.
	snapshot := *b

	q := workerpool.New[chunkOutcome](workers, len(spans))
	defer q.Shutdown()

	submitted := 0
	for _, s := range spans {
		err := q.Enqueue(chunkTask{
			task:    MiningTask{Block: &snapshot, Start: s.start, End: s.end},
			metrics: m.metrics,
		})
		if err != nil {
			logger.Error("enqueue mining task failed", zap.Error(err))
			break
		}
		submitted++
	}

	for i := 0; i < submitted; i++ {
		out, err := q.Recv(context.Background())
		if err != nil {
			logger.Error("receive mining result failed", zap.Error(err))
			break
		}
		if out.found {
			logger.Debug("proof found",
				zap.Uint64("proof", out.proof),
				zap.Duration("elapsed", time.Since(started)),
			)
			return out.proof
		}
	}

	logger.Debug("no proof in range", zap.Uint64("start", start), zap.Uint64("end", end))
	return end
}

// MineForProof searches [0, 8*2^difficulty), which holds a proof with
// overwhelming probability for modest difficulties.
func (m *Miner) MineForProof(b *block.Block, workers int) uint64 {
	return m.MineRange(b, workers, 0, searchEnd(b.Difficulty), m.chunks)
}

// Mine stores the result of MineForProof in b. The stored proof is only valid
// if the search succeeded; check b.IsValid.
func (m *Miner) Mine(b *block.Block, workers int) {
	b.SetProof(m.MineForProof(b, workers))
}

// MineSerial scans upward from zero on the calling goroutine until a proof is
// found. It never gives up.
func MineSerial(b *block.Block) {
	proof := uint64(0)
	for !b.IsValidForProof(proof) {
		proof++
	}
	b.SetProof(proof)
}

func searchEnd(difficulty uint8) uint64 {
	if uint64(difficulty) > 60 {
		return math.MaxUint64
	}
	return searchRangeFactor << difficulty
}

func (m *Miner) observeMineRange(found bool, tasks int, started time.Time) {
	if m.metrics == nil {
		return
	}
	m.metrics.ObserveMineRange(found, tasks, started)
}
