// Package service contains long-running application services.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/powchain/internal/block"
	"github.com/goodnatureofminers/powchain/internal/clock"
	"go.uber.org/zap"
)

// ErrProofNotFound is returned when the miner gave up without a valid proof.
var ErrProofNotFound = errors.New("no valid proof in search range")

// ChainMinerConfig controls the chain a ChainMinerService produces.
type ChainMinerConfig struct {
	Difficulty uint8
	Workers    int
	// Blocks is the number of blocks to mine, genesis included. Zero means unbounded.
	Blocks uint64
	// Payloads are cycled through as block data. "block <generation>" is used when empty.
	Payloads      []string
	BlockInterval time.Duration
}

// ChainMinerService mines a chain of blocks starting from genesis.
type ChainMinerService struct {
	logger  *zap.Logger
	miner   BlockMiner
	writer  BlockWriter
	metrics ChainMinerMetrics
	sleep   func(context.Context, time.Duration) error
	cfg     ChainMinerConfig
}

func NewChainMinerService(
	miner BlockMiner,
	writer BlockWriter,
	metrics ChainMinerMetrics,
	cfg ChainMinerConfig,
	logger *zap.Logger,
) (*ChainMinerService, error) {
	if miner == nil {
		return nil, errors.New("block miner is required")
	}
	if writer == nil {
		return nil, errors.New("block writer is required")
	}
	if metrics == nil {
		return nil, errors.New("chain miner metrics is required")
	}
	if cfg.Workers < 1 {
		return nil, fmt.Errorf("workers must be positive, got %d", cfg.Workers)
	}

	return &ChainMinerService{
		logger:  logger.With(zap.Uint8("difficulty", cfg.Difficulty)),
		miner:   miner,
		writer:  writer,
		metrics: metrics,
		sleep:   clock.Wait,
		cfg:     cfg,
	}, nil
}

// Run mines blocks until the configured count is reached or ctx is done.
// Mining a single block is not interruptible; cancellation is observed between blocks.
func (s *ChainMinerService) Run(ctx context.Context) error {
	s.writer.Start(ctx)
	defer s.writer.Stop()

	var prev *block.Block
	for generation := uint64(0); s.more(generation); generation++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		b, err := s.mineBlock(ctx, prev, generation)
		if err != nil {
			return err
		}
		prev = b

		if !s.more(generation + 1) {
			break
		}
		if err := s.sleep(ctx, s.cfg.BlockInterval); err != nil {
			return err
		}
	}

	s.logger.Info("chain complete", zap.Uint64("blocks", s.cfg.Blocks))
	return nil
}

func (s *ChainMinerService) more(generation uint64) bool {
	return s.cfg.Blocks == 0 || generation < s.cfg.Blocks
}

func (s *ChainMinerService) mineBlock(ctx context.Context, prev *block.Block, generation uint64) (b *block.Block, err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveBlock(err, generation, started)
	}()

	b, err = s.candidate(prev, generation)
	if err != nil {
		return nil, err
	}

	s.miner.Mine(b, s.cfg.Workers)
	proof, _ := b.Proof()
	if !b.IsValid() {
		s.logger.Error("mining gave up", zap.Uint64("generation", generation), zap.Uint64("proof", proof))
		return nil, fmt.Errorf("mine generation %d: %w", generation, ErrProofNotFound)
	}

	digest, err := b.Digest()
	if err != nil {
		return nil, fmt.Errorf("digest generation %d: %w", generation, err)
	}

	if err = s.writer.WriteBlock(ctx, newMinedBlock(b, proof, digest)); err != nil {
		s.logger.Error("write block failed", zap.Uint64("generation", generation), zap.Error(err))
		return nil, fmt.Errorf("write block generation %d: %w", generation, err)
	}

	s.logger.Info("block mined",
		zap.Uint64("generation", generation),
		zap.Uint64("proof", proof),
		zap.String("hash", block.Hex(digest)),
		zap.Duration("elapsed", time.Since(started)),
	)
	return b, nil
}

func (s *ChainMinerService) candidate(prev *block.Block, generation uint64) (*block.Block, error) {
	if prev == nil {
		return block.Initial(s.cfg.Difficulty), nil
	}

	b, err := block.Next(prev, s.payload(generation))
	if err != nil {
		return nil, fmt.Errorf("build generation %d: %w", generation, err)
	}
	return b, nil
}

func (s *ChainMinerService) payload(generation uint64) string {
	if len(s.cfg.Payloads) == 0 {
		return fmt.Sprintf("block %d", generation)
	}
	return s.cfg.Payloads[(generation-1)%uint64(len(s.cfg.Payloads))]
}
