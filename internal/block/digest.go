package block

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

const separator = ':'

// Hex renders d as lowercase hex in byte order.
//
// chainhash.Hash.String reverses the bytes for display, which does not match
// the pre-image format.
func Hex(d Digest) string {
	return hex.EncodeToString(d[:])
}

// PreimageForProof returns "<hex prev>:<generation>:<difficulty>:<data>:<proof>".
// Changing this format changes every digest.
func (b *Block) PreimageForProof(proof uint64) string {
	var sb strings.Builder
	sb.Grow(2*chainhash.HashSize + len(b.Data) + 48)

	sb.WriteString(Hex(b.PrevHash))
	sb.WriteByte(separator)
	sb.WriteString(strconv.FormatUint(b.Generation, 10))
	sb.WriteByte(separator)
	sb.WriteString(strconv.FormatUint(uint64(b.Difficulty), 10))
	sb.WriteByte(separator)
	sb.WriteString(b.Data)
	sb.WriteByte(separator)
	sb.WriteString(strconv.FormatUint(proof, 10))

	return sb.String()
}

// Preimage returns the pre-image for the recorded proof.
func (b *Block) Preimage() (string, error) {
	if !b.hasProof {
		return "", ErrMissingProof
	}
	return b.PreimageForProof(b.proof), nil
}

// DigestForProof returns the digest b would have with proof.
func (b *Block) DigestForProof(proof uint64) Digest {
	return chainhash.HashH([]byte(b.PreimageForProof(proof)))
}

// Digest returns the digest for the recorded proof.
func (b *Block) Digest() (Digest, error) {
	if !b.hasProof {
		return Digest{}, ErrMissingProof
	}
	return b.DigestForProof(b.proof), nil
}
