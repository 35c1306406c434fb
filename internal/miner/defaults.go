package miner

const (
	// DefaultChunks is the number of tasks a proof search is split into. It
	// should stay well above the worker count.
	DefaultChunks uint64 = 2345

	// searchRangeFactor scales 2^difficulty into the upper bound of a proof search.
	searchRangeFactor uint64 = 8
)
