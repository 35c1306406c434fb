package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/powchain/internal/block"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	BlockMiner interface {
		Mine(b *block.Block, workers int)
	}
	BlockWriter interface {
		Start(ctx context.Context)
		Stop()
		WriteBlock(ctx context.Context, b MinedBlock) error
	}
	ChainMinerMetrics interface {
		ObserveBlock(err error, generation uint64, started time.Time)
	}
)

// MinedBlock is the output record of a mined block.
type MinedBlock struct {
	Generation uint64 `json:"generation"`
	PrevHash   string `json:"prev_hash"`
	Difficulty uint8  `json:"difficulty"`
	Data       string `json:"data"`
	Proof      uint64 `json:"proof"`
	Hash       string `json:"hash"`
}

func newMinedBlock(b *block.Block, proof uint64, digest block.Digest) MinedBlock {
	return MinedBlock{
		Generation: b.Generation,
		PrevHash:   block.Hex(b.PrevHash),
		Difficulty: b.Difficulty,
		Data:       b.Data,
		Proof:      proof,
		Hash:       block.Hex(digest),
	}
}
