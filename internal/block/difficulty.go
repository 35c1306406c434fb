package block

import "github.com/btcsuite/btcd/chaincfg/chainhash"

// Satisfies reports whether d ends with at least difficulty zero bits, counting
// from the low bits of the last byte backwards.
func Satisfies(difficulty uint8, d Digest) bool {
	if difficulty == 0 {
		return true
	}

	zeroBytes := int(difficulty / 8)
	zeroBits := difficulty % 8

	for i := 0; i < zeroBytes; i++ {
		if d[chainhash.HashSize-1-i] != 0 {
			return false
		}
	}

	if zeroBits == 0 {
		return true
	}
	mask := byte(1)<<zeroBits - 1
	return d[chainhash.HashSize-1-zeroBytes]&mask == 0
}
