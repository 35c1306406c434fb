// Package block defines the chain block, its canonical digest and the difficulty rule.
package block

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// ErrMissingProof is returned when an operation needs a mined block.
var ErrMissingProof = errors.New("block has no proof")

// Digest is the SHA-256 digest of a block pre-image. Byte 0 is rendered first.
type Digest = chainhash.Hash

// Block is a chain entry. Apart from SetProof it is treated as immutable.
type Block struct {
	PrevHash   Digest
	Generation uint64
	// Difficulty is the number of trailing zero bits the digest must have.
	Difficulty uint8
	Data       string

	proof    uint64
	hasProof bool
}

// Initial returns the generation 0 block.
func Initial(difficulty uint8) *Block {
	return &Block{
		Difficulty: difficulty,
	}
}

// Next returns an unmined successor of prev carrying data.
func Next(prev *Block, data string) (*Block, error) {
	prevHash, err := prev.Digest()
	if err != nil {
		return nil, fmt.Errorf("chain generation %d: %w", prev.Generation+1, err)
	}

	return &Block{
		PrevHash:   prevHash,
		Generation: prev.Generation + 1,
		Difficulty: prev.Difficulty,
		Data:       data,
	}, nil
}

// SetProof records proof without validating it.
func (b *Block) SetProof(proof uint64) {
	b.proof = proof
	b.hasProof = true
}

// Proof returns the recorded proof, if any.
func (b *Block) Proof() (uint64, bool) {
	return b.proof, b.hasProof
}

// IsValidForProof reports whether proof would make b valid.
func (b *Block) IsValidForProof(proof uint64) bool {
	return Satisfies(b.Difficulty, b.DigestForProof(proof))
}

// IsValid reports whether b carries a proof satisfying its difficulty.
func (b *Block) IsValid() bool {
	if !b.hasProof {
		return false
	}
	return b.IsValidForProof(b.proof)
}
