package miner

import (
	"time"

	"github.com/goodnatureofminers/powchain/internal/block"
)

// MiningTask scans the nonces [Start, End) of a shared, read-only block.
type MiningTask struct {
	Block *block.Block
	Start uint64
	End   uint64
}

// Run returns the lowest nonce in the chunk that makes the block valid.
func (t MiningTask) Run() (uint64, bool) {
	for proof := t.Start; proof < t.End; proof++ {
		if t.Block.IsValidForProof(proof) {
			return proof, true
		}
	}
	return 0, false
}

type chunkOutcome struct {
	proof uint64
	found bool
}

// chunkTask always publishes so the collector can tell when every chunk is done.
type chunkTask struct {
	task    MiningTask
	metrics Metrics
}

func (t chunkTask) Run() (chunkOutcome, bool) {
	started := time.Now()
	proof, found := t.task.Run()

	if t.metrics != nil {
		scanned := t.task.End - t.task.Start
		if found {
			scanned = proof - t.task.Start + 1
		}
		t.metrics.ObserveTask(found, scanned, started)
	}

	return chunkOutcome{proof: proof, found: found}, true
}
